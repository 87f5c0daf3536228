package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobdesk/internal/port"
)

// MockResumeExtractor is a mock implementation of port.ResumeExtractor.
type MockResumeExtractor struct {
	mock.Mock
}

func (m *MockResumeExtractor) Supports(kind port.ArtifactKind) bool {
	args := m.Called(kind)
	return args.Bool(0)
}

func (m *MockResumeExtractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}
