package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/BerylCAtieno/career-feedback-api/internal/config"
	"github.com/BerylCAtieno/career-feedback-api/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const s3KeyPrefix = "uploads/"

// objectClient is the subset of the S3 API used by s3Storage.
type objectClient interface {
	put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error)
	get(ctx context.Context, key string) (io.ReadCloser, error)
	remove(ctx context.Context, key string) error
}

type minioClient struct {
	client     *minio.Client
	bucketName string
}

func (m *minioClient) put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error) {
	info, err := m.client.PutObject(ctx, m.bucketName, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

func (m *minioClient) get(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := m.client.GetObject(ctx, m.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return object, nil
}

func (m *minioClient) remove(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucketName, key, minio.RemoveObjectOptions{})
}

// s3Storage keeps uploads as objects in an S3-compatible bucket. Objects live only
// until Release.
type s3Storage struct {
	objects objectClient
}

func NewS3Storage(cfg *config.Config) (Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	// Ensure bucket exists
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.S3BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.S3BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return newS3Storage(&minioClient{client: client, bucketName: cfg.S3BucketName}), nil
}

func newS3Storage(objects objectClient) *s3Storage {
	return &s3Storage{objects: objects}
}

func (s *s3Storage) Acquire(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*models.UploadedDocument, error) {
	if size <= 0 {
		size = -1
	}

	key := s3KeyPrefix + handleName(filename)
	n, err := s.objects.put(ctx, key, r, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &models.UploadedDocument{
		Handle:      key,
		Filename:    filename,
		ContentType: contentType,
		Size:        n,
	}, nil
}

func (s *s3Storage) Open(ctx context.Context, doc *models.UploadedDocument) ([]byte, error) {
	object, err := s.objects.get(ctx, doc.Handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object data: %w", err)
	}

	return data, nil
}

func (s *s3Storage) Release(ctx context.Context, doc *models.UploadedDocument) error {
	if err := s.objects.remove(ctx, doc.Handle); err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
