package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobdesk/internal/domain"
)

// MockDocumentConverter is a mock implementation of port.DocumentConverter.
type MockDocumentConverter struct {
	mock.Mock
}

func (m *MockDocumentConverter) Convert(ctx context.Context, data []byte, contentType string) (*domain.Artifact, error) {
	args := m.Called(ctx, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}
