package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"
)

type diskStorage struct {
	dir string
}

// NewDiskStorage stores uploads as files under dir, creating it if needed.
func NewDiskStorage(dir string) (Storage, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}

	if err := os.MkdirAll(absDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &diskStorage{dir: absDir}, nil
}

func (s *diskStorage) Acquire(_ context.Context, r io.Reader, filename, contentType string, _ int64) (*models.UploadedDocument, error) {
	path := filepath.Join(s.dir, handleName(filename))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return nil, fmt.Errorf("failed to write temp file: %w", copyErr)
		}
		return nil, fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	return &models.UploadedDocument{
		Handle:      path,
		Filename:    filename,
		ContentType: contentType,
		Size:        n,
	}, nil
}

func (s *diskStorage) Open(_ context.Context, doc *models.UploadedDocument) ([]byte, error) {
	data, err := os.ReadFile(doc.Handle)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp file: %w", err)
	}
	return data, nil
}

func (s *diskStorage) Release(_ context.Context, doc *models.UploadedDocument) error {
	if err := os.Remove(doc.Handle); err != nil {
		return fmt.Errorf("failed to delete temp file: %w", err)
	}
	return nil
}
