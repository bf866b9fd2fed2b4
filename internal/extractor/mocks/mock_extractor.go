package mocks

import "github.com/stretchr/testify/mock"

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}
