package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"cosolve/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, data io.Reader, size int64, contentType string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage stores the encoded image and returns its durable public URL.
func (m *MinIOClient) UploadImage(ctx context.Context, data io.Reader, size int64, contentType string) (string, error) {
	now := time.Now()
	objectName := fmt.Sprintf("posts/%d/%02d/%s.jpg", now.Year(), now.Month(), uuid.New().String())

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, data, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(m.cfg.MinIO.PublicURL, "/"), m.cfg.MinIO.BucketName, objectName), nil
}

// DeleteImage removes the object addressed by a URL previously returned by
// UploadImage. Unknown URL shapes are ignored.
func (m *MinIOClient) DeleteImage(ctx context.Context, imageURL string) error {
	prefix := fmt.Sprintf("%s/%s/", strings.TrimSuffix(m.cfg.MinIO.PublicURL, "/"), m.cfg.MinIO.BucketName)
	if !strings.HasPrefix(imageURL, prefix) {
		return nil
	}
	objectName := strings.TrimPrefix(imageURL, prefix)

	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}

	return nil
}
