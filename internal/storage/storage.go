package storage

import (
	"context"
	"time"
)

// FileStorage holds medical image attachments. The URL returned by
// UploadFile is persisted on the image row and is the handle for every
// later operation.
type FileStorage interface {
	// UploadFile stores the blob under a generated object name derived
	// from filename and returns its URL.
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error

	GetFile(ctx context.Context, fileURL string) ([]byte, error)

	// GetPresignedURL returns a time-limited link suitable for handing
	// to a browser without proxying the bytes.
	GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error)
}
