package objstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rjwedding/rsvp-backend/pkg/config"
)

// MinioStore talks to any S3-compatible endpoint. Missing credentials leave
// the store constructed but disabled; Put then fails with ErrNoCredentials so
// the caller can surface a distinct error instead of crashing at boot.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	enabled bool
}

func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	s := &MinioStore{
		bucket:  cfg.Bucket,
		enabled: cfg.AccessKey != "" && cfg.SecretKey != "",
	}
	if !s.enabled {
		return s, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *MinioStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if !s.enabled {
		return ErrNoCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Bucket() string { return s.bucket }

var _ Store = (*MinioStore)(nil)
