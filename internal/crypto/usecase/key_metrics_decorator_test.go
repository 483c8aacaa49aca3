package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	"github.com/allisson/datamask/internal/crypto/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordCells(ctx context.Context, domain, operation, outcome string, count int64) {
	m.Called(ctx, domain, operation, outcome, count)
}

func expectKeyMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "keys", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "keys", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestKeyUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Obtain_RecordsGeneration", func(t *testing.T) {
		mockUseCase := &mocks.MockKeyUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		key := &cryptoDomain.Key{Generated: true}

		mockUseCase.On("Obtain", ctx, "secret.key").Return(key, nil).Once()
		expectKeyMetrics(mockMetrics, "key_obtain", "success")
		mockMetrics.On("RecordOperation", mock.Anything, "keys", "key_generate", "success").Once()

		got, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Obtain(ctx, "secret.key")

		assert.NoError(t, err)
		assert.Equal(t, key, got)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Load_RecordsError", func(t *testing.T) {
		mockUseCase := &mocks.MockKeyUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Load", ctx, "secret.key").Return(nil, cryptoDomain.ErrKeyNotFound).Once()
		expectKeyMetrics(mockMetrics, "key_load", "error")

		got, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Load(ctx, "secret.key")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotFound)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create_RecordsSuccess", func(t *testing.T) {
		mockUseCase := &mocks.MockKeyUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		key := &cryptoDomain.Key{Generated: true}

		mockUseCase.On("Create", ctx, "secret.key").Return(key, nil).Once()
		expectKeyMetrics(mockMetrics, "key_create", "success")

		got, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Create(ctx, "secret.key")

		assert.NoError(t, err)
		assert.Equal(t, key, got)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
