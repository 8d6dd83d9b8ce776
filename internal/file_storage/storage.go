package filestorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dipii/backoffice/internal/config"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("file not found")

// Storage keeps generated documents under slash separated relative paths
// such as "certificados/certificado-1.pdf".
type Storage interface {
	// Put creates or overwrites the file at path.
	Put(ctx context.Context, path string, data []byte) error
	// Get returns ErrNotFound when nothing is stored at path.
	Get(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	// Delete does not fail when the file is already gone.
	Delete(ctx context.Context, path string) error
}

func NewStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.SugaredLogger) (Storage, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal, "":
		logger.Infof("Using local document storage at %s", cfg.Root)
		return NewLocalStorage(cfg.Root)
	case config.StorageDriverMinio:
		client, err := NewMinioClient(&cfg.Minio)
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		logger.Infof("Using minio document storage, bucket %s", cfg.Minio.BUCKET)
		return NewMinioStorage(ctx, client, cfg.Minio.BUCKET)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
