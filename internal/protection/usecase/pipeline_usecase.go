package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
	tokenizationDomain "github.com/allisson/datamask/internal/tokenization/domain"
	tokenizationService "github.com/allisson/datamask/internal/tokenization/service"
)

// pipelineUseCase implements PipelineUseCase.
type pipelineUseCase struct {
	processor        *FieldProcessor
	classifier       Selector
	masker           Masker
	keyProvider      KeyProvider
	tokenizerFactory TokenizerFactory
	logger           *slog.Logger
}

// NewPipelineUseCase creates a new PipelineUseCase.
func NewPipelineUseCase(
	processor *FieldProcessor,
	classifier Selector,
	masker Masker,
	keyProvider KeyProvider,
	tokenizerFactory TokenizerFactory,
	logger *slog.Logger,
) PipelineUseCase {
	return &pipelineUseCase{
		processor:        processor,
		classifier:       classifier,
		masker:           masker,
		keyProvider:      keyProvider,
		tokenizerFactory: tokenizerFactory,
		logger:           logger,
	}
}

// Run masks the sensitive columns, then obtains the key and tokenizes them.
func (p *pipelineUseCase) Run(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := newRunID()
	logger := p.logger.With(slog.String("run_id", runID))
	logger.InfoContext(ctx, "starting run",
		slog.Int("rows", input.Table.NumRows()),
		slog.Any("columns", input.SensitiveColumns))

	masked, maskReport := p.processor.Process(
		ctx,
		input.Table,
		input.SensitiveColumns,
		p.classifier,
		func(value string) (string, error) {
			return p.masker.Mask(value), nil
		},
	)

	key, err := p.keyProvider.Obtain(ctx, input.KeyLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain key: %w", err)
	}
	defer key.Close()
	if key.Generated {
		logger.InfoContext(ctx, "generated new key",
			slog.String("location", input.KeyLocation),
			slog.String("fingerprint", key.Fingerprint))
	}

	tokenizer, err := p.tokenizerFactory(key.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	tokenized, tokenReport := p.processor.Process(
		ctx,
		input.Table,
		input.SensitiveColumns,
		p.classifier,
		func(value string) (string, error) {
			token, err := tokenizer.Tokenize(value)
			return token.String(), err
		},
	)

	result := &protectionDomain.Result{
		RunID:       runID,
		Masked:      masked,
		Tokenized:   tokenized,
		MaskReport:  maskReport,
		TokenReport: tokenReport,
		Key:         keyInfo(input.KeyLocation, key),
	}

	logger.InfoContext(ctx, "run completed",
		slog.Int("masked", maskReport.Totals()[protectionDomain.OutcomeTransformed]),
		slog.Int("tokenized", tokenReport.Totals()[protectionDomain.OutcomeTransformed]),
		slog.Int("failed", tokenReport.Totals()[protectionDomain.OutcomeFailed]),
		slog.Bool("warnings", result.HasWarnings()))

	return result, nil
}

// Restore loads the existing key and detokenizes the token cells of the sensitive columns.
func (p *pipelineUseCase) Restore(
	ctx context.Context,
	input protectionDomain.RunInput,
) (*protectionDomain.RestoreResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := newRunID()
	logger := p.logger.With(slog.String("run_id", runID))
	logger.InfoContext(ctx, "starting restore",
		slog.Int("rows", input.Table.NumRows()),
		slog.Any("columns", input.SensitiveColumns))

	key, err := p.keyProvider.Load(ctx, input.KeyLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to load key: %w", err)
	}
	defer key.Close()

	tokenizer, err := p.tokenizerFactory(key.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	restored, report := p.processor.Process(
		ctx,
		input.Table,
		input.SensitiveColumns,
		tokenizationService.NewTokenDetector(tokenizer),
		func(value string) (string, error) {
			return tokenizer.Detokenize(tokenizationDomain.Token(value))
		},
	)

	logger.InfoContext(ctx, "restore completed",
		slog.Int("restored", report.Totals()[protectionDomain.OutcomeTransformed]),
		slog.Int("failed", report.Totals()[protectionDomain.OutcomeFailed]),
		slog.Bool("warnings", report.HasWarnings()))

	return &protectionDomain.RestoreResult{
		RunID:    runID,
		Restored: restored,
		Report:   report,
		Key:      keyInfo(input.KeyLocation, key),
	}, nil
}

func keyInfo(location string, key *cryptoDomain.Key) protectionDomain.KeyInfo {
	return protectionDomain.KeyInfo{
		Location:    location,
		Fingerprint: key.Fingerprint,
		Generated:   key.Generated,
		Wrapped:     key.Wrapped,
	}
}

// newRunID returns a time-ordered identifier for log correlation.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
