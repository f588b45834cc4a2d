package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cosolve/internal/config"
)

func imageTestConfig() *config.Config {
	return &config.Config{
		Image: config.Image{
			MaxDimension: 800,
			JPEGQuality:  80,
		},
	}
}

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessAndUploadResizesLargeImage(t *testing.T) {
	storage := new(MockStorage)

	var uploaded []byte
	storage.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(1).(io.Reader))
			require.NoError(t, err)
			uploaded = data
			assert.Equal(t, int64(len(data)), args.Get(2).(int64))
		}).
		Return("http://localhost:9000/post-images/posts/abc.jpg", nil)

	svc := NewImageService(storage, imageTestConfig())

	url, err := svc.ProcessAndUpload(context.Background(), encodePNG(t, 1600, 1200))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/post-images/posts/abc.jpg", url)

	out, err := jpeg.Decode(bytes.NewReader(uploaded))
	require.NoError(t, err)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestProcessAndUploadKeepsSmallImageSize(t *testing.T) {
	storage := new(MockStorage)

	var uploaded []byte
	storage.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(1).(io.Reader))
			require.NoError(t, err)
			uploaded = data
		}).
		Return("http://localhost:9000/post-images/posts/small.jpg", nil)

	svc := NewImageService(storage, imageTestConfig())

	_, err := svc.ProcessAndUpload(context.Background(), encodePNG(t, 400, 300))

	require.NoError(t, err)

	out, err := jpeg.Decode(bytes.NewReader(uploaded))
	require.NoError(t, err)
	assert.Equal(t, 400, out.Bounds().Dx())
	assert.Equal(t, 300, out.Bounds().Dy())
}

func TestProcessAndUploadRejectsCorruptInput(t *testing.T) {
	storage := new(MockStorage)
	svc := NewImageService(storage, imageTestConfig())

	url, err := svc.ProcessAndUpload(context.Background(), strings.NewReader("definitely not an image"))

	assert.Empty(t, url)
	assert.ErrorIs(t, err, ErrImageProcessing)
	storage.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessAndUploadWrapsStorageFailure(t *testing.T) {
	storage := new(MockStorage)
	storage.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("", errors.New("connection refused"))

	svc := NewImageService(storage, imageTestConfig())

	url, err := svc.ProcessAndUpload(context.Background(), encodePNG(t, 100, 100))

	assert.Empty(t, url)
	assert.ErrorIs(t, err, ErrImageProcessing)
}
