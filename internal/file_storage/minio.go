package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

type MinioStorage struct {
	s3     *minio.Client
	bucket string
}

func NewMinioStorage(ctx context.Context, s3 *minio.Client, bucket string) (*MinioStorage, error) {
	if err := createBucketIfNotExists(ctx, s3, bucket); err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &MinioStorage{s3: s3, bucket: bucket}, nil
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		if err := s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}

func (s MinioStorage) Put(ctx context.Context, path string, data []byte) error {
	_, err := s.s3.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: util.ContentTypeByPath(path),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return nil
}

func (s MinioStorage) Get(ctx context.Context, path string) ([]byte, error) {
	obj, err := s.s3.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer obj.Close()

	// GetObject is lazy, a missing key only surfaces on the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file from S3: %w", err)
	}

	return data, nil
}

func (s MinioStorage) Exists(ctx context.Context, path string) (bool, error) {
	if _, err := s.s3.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s MinioStorage) Delete(ctx context.Context, path string) error {
	// S3 treats removing a missing key as success
	if err := s.s3.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}
