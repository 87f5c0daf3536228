package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobdesk/internal/domain"
)

// MockApplicationStore is a mock implementation of port.ApplicationStore.
type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) GetApplicationJob(ctx context.Context, applicationID string) (*domain.JobContext, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobContext), args.Error(1)
}

func (m *MockApplicationStore) UpdateApplication(ctx context.Context, applicationID string, profile *domain.CandidateProfile) error {
	args := m.Called(ctx, applicationID, profile)
	return args.Error(0)
}
