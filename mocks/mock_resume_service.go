package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobdesk/internal/domain"
	"jobdesk/internal/service"
)

// MockResumeService is a mock implementation of service.ResumeService.
type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) ParseResume(ctx context.Context, input service.ParseResumeInput) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockResumeService) ProcessImage(ctx context.Context, input service.ProcessImageInput) (*service.ImageExtractResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageExtractResult), args.Error(1)
}
