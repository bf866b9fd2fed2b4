// Package storage holds uploaded documents for the duration of one request.
//
// Every document returned by Acquire must be passed to Release exactly once.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"
	"github.com/BerylCAtieno/career-feedback-api/internal/utils"
)

type Storage interface {
	// Acquire copies r into a fresh, uniquely named location. size may be -1 when unknown.
	Acquire(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*models.UploadedDocument, error)
	// Open returns the full payload of an acquired document.
	Open(ctx context.Context, doc *models.UploadedDocument) ([]byte, error)
	// Release deletes the document.
	Release(ctx context.Context, doc *models.UploadedDocument) error
}

const maxExtLen = 10

// handleName returns a unique base name that keeps the upload's extension.
func handleName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > maxExtLen || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return utils.GenerateID() + ext
}
