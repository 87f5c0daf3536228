package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of convert.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	callArgs := m.Called(ctx, name, args)
	var stdout, stderr []byte
	if callArgs.Get(0) != nil {
		stdout = callArgs.Get(0).([]byte)
	}
	if callArgs.Get(1) != nil {
		stderr = callArgs.Get(1).([]byte)
	}
	return stdout, stderr, callArgs.Error(2)
}
