package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sohaum/nepalibazar/internal/platform/logger"
)

// ImageStorage uploads listing images to a MinIO bucket and hands back
// their public URLs. It satisfies domain.ImageStorage.
type ImageStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

func NewImageStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool, log *logger.Logger) (*ImageStorage, error) {
	log.Info("initializing MinIO image storage", "endpoint", endpoint, "bucket", bucketName, "use_ssl", useSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucketName)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucketName, err, errBucketExists)
		}
	}

	return &ImageStorage{client: client, bucket: bucketName, logger: log}, nil
}

// Upload stores the bytes under a fresh object key that keeps the
// original extension, and returns the object's URL.
func (s *ImageStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("images/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("image upload failed", "bucket", s.bucket, "key", objectKey, "error", err.Error())
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Info("image uploaded", "bucket", s.bucket, "key", objectKey, "url", fileURL, "size_bytes", len(data))
	return fileURL, nil
}
