// Package mocks provides mock implementations of the crypto use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// MockKeyRepository is a mock implementation of KeyRepository for testing.
type MockKeyRepository struct {
	mock.Mock
}

// Load mocks the Load method of KeyRepository.
func (m *MockKeyRepository) Load(ctx context.Context, location string) ([]byte, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Create mocks the Create method of KeyRepository.
func (m *MockKeyRepository) Create(ctx context.Context, location string, data []byte) error {
	args := m.Called(ctx, location, data)
	return args.Error(0)
}

// MockKeyUseCase is a mock implementation of KeyUseCase for testing.
type MockKeyUseCase struct {
	mock.Mock
}

// Obtain mocks the Obtain method of KeyUseCase.
func (m *MockKeyUseCase) Obtain(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.Key), args.Error(1)
}

// Load mocks the Load method of KeyUseCase.
func (m *MockKeyUseCase) Load(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.Key), args.Error(1)
}

// Create mocks the Create method of KeyUseCase.
func (m *MockKeyUseCase) Create(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.Key), args.Error(1)
}
