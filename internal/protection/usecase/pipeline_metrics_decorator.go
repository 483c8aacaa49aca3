package usecase

import (
	"context"
	"time"

	"github.com/allisson/datamask/internal/metrics"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
)

// pipelineUseCaseWithMetrics decorates PipelineUseCase with metrics instrumentation.
type pipelineUseCaseWithMetrics struct {
	next    PipelineUseCase
	metrics metrics.BusinessMetrics
}

// NewPipelineUseCaseWithMetrics wraps a PipelineUseCase with metrics recording.
func NewPipelineUseCaseWithMetrics(useCase PipelineUseCase, m metrics.BusinessMetrics) PipelineUseCase {
	return &pipelineUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Run records metrics for masking and tokenization runs.
func (p *pipelineUseCaseWithMetrics) Run(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.Result, error) {
	start := time.Now()
	result, err := p.next.Run(ctx, input)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result.HasWarnings():
		status = "warning"
	}

	p.metrics.RecordOperation(ctx, "pipeline", "run", status)
	p.metrics.RecordDuration(ctx, "pipeline", "run", time.Since(start), status)
	if result != nil {
		p.recordCells(ctx, "mask", result.MaskReport)
		p.recordCells(ctx, "tokenize", result.TokenReport)
	}

	return result, err
}

// Restore records metrics for restore runs.
func (p *pipelineUseCaseWithMetrics) Restore(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.RestoreResult, error) {
	start := time.Now()
	result, err := p.next.Restore(ctx, input)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result.HasWarnings():
		status = "warning"
	}

	p.metrics.RecordOperation(ctx, "pipeline", "restore", status)
	p.metrics.RecordDuration(ctx, "pipeline", "restore", time.Since(start), status)
	if result != nil {
		p.recordCells(ctx, "detokenize", result.Report)
	}

	return result, err
}

func (p *pipelineUseCaseWithMetrics) recordCells(
	ctx context.Context,
	operation string,
	report *protectionDomain.Report,
) {
	for outcome, count := range report.Totals() {
		p.metrics.RecordCells(ctx, "pipeline", operation, outcome, int64(count))
	}
}
