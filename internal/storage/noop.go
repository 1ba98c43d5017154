package storage

import (
	"context"
	"errors"
	"time"
)

var errStorageNotConfigured = errors.New("file storage is not configured")

// NoopStorage stands in when no S3 endpoint is configured; every
// operation fails with a clear error instead of a nil dereference.
type NoopStorage struct{}

func NewNoopStorage() *NoopStorage {
	return &NoopStorage{}
}

func (NoopStorage) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	return "", errStorageNotConfigured
}

func (NoopStorage) DeleteFile(ctx context.Context, fileURL string) error {
	return errStorageNotConfigured
}

func (NoopStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	return nil, errStorageNotConfigured
}

func (NoopStorage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	return "", errStorageNotConfigured
}
