package mocks

import (
	"context"
	"io"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Acquire(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*models.UploadedDocument, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if doc, ok := args.Get(0).(*models.UploadedDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, doc *models.UploadedDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) Release(ctx context.Context, doc *models.UploadedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
