package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	"github.com/allisson/datamask/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Obtain records metrics for key obtain operations.
func (k *keyUseCaseWithMetrics) Obtain(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	start := time.Now()
	key, err := k.next.Obtain(ctx, location)
	k.record(ctx, "key_obtain", start, err)
	if err == nil && key.Generated {
		k.metrics.RecordOperation(ctx, "keys", "key_generate", "success")
	}
	return key, err
}

// Load records metrics for key load operations.
func (k *keyUseCaseWithMetrics) Load(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	start := time.Now()
	key, err := k.next.Load(ctx, location)
	k.record(ctx, "key_load", start, err)
	return key, err
}

// Create records metrics for key creation operations.
func (k *keyUseCaseWithMetrics) Create(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	start := time.Now()
	key, err := k.next.Create(ctx, location)
	k.record(ctx, "key_create", start, err)
	return key, err
}

func (k *keyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "keys", operation, status)
	k.metrics.RecordDuration(ctx, "keys", operation, time.Since(start), status)
}
