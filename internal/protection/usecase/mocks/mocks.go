// Package mocks provides mock implementations of the protection use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
)

// MockPipelineUseCase is a mock implementation of PipelineUseCase for testing.
type MockPipelineUseCase struct {
	mock.Mock
}

// Run mocks the Run method of PipelineUseCase.
func (m *MockPipelineUseCase) Run(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*protectionDomain.Result), args.Error(1)
}

// Restore mocks the Restore method of PipelineUseCase.
func (m *MockPipelineUseCase) Restore(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.RestoreResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*protectionDomain.RestoreResult), args.Error(1)
}
