package storage

import (
	"bytes"
	"context"
	"fmt"

	"recipeshare-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageUploader is what the recipe service needs from image storage.
type ImageUploader interface {
	UploadImage(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// MinIOStorage handles recipe image uploads to MinIO
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage khởi tạo MinIO client
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	// Tạo MinIO client với credentials
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false cho local, true cho production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Kiểm tra bucket có tồn tại không, nếu không thì tạo mới
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// UploadImage uploads one recipe image and returns its public URL.
// key: đường dẫn file trong bucket (vd: recipes/<uuid>.png)
// contentType: loại file (image/jpeg, image/png...)
func (s *MinIOStorage) UploadImage(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	// Tạo URL truy cập file
	// Format: http://localhost:9000/recipeshare/recipes/<uuid>.png
	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, key)

	return url, nil
}

// DeleteImage xóa một file khỏi MinIO
func (s *MinIOStorage) DeleteImage(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
