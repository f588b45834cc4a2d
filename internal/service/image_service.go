package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"cosolve/internal/config"
	"cosolve/internal/storage"
)

type ImageService interface {
	ProcessAndUpload(ctx context.Context, file io.Reader) (string, error)
}

type imageService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewImageService(storage storage.Storage, cfg *config.Config) ImageService {
	return &imageService{
		storage: storage,
		cfg:     cfg,
	}
}

// ProcessAndUpload normalizes an uploaded image and hands it to object
// storage, returning the durable URL. The image is fitted inside the
// configured bounding box preserving aspect ratio, never upscaled, and
// re-encoded as JPEG at the configured quality.
func (s *imageService) ProcessAndUpload(ctx context.Context, file io.Reader) (string, error) {
	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrImageProcessing, err)
	}

	maxDim := s.cfg.Image.MaxDimension
	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(s.cfg.Image.JPEGQuality)); err != nil {
		return "", fmt.Errorf("%w: encode: %v", ErrImageProcessing, err)
	}

	imageURL, err := s.storage.UploadImage(ctx, &buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("%w: upload: %v", ErrImageProcessing, err)
	}

	return imageURL, nil
}
