package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
	protectionUseCase "github.com/allisson/datamask/internal/protection/usecase"
)

// RunPipelineOptions holds the flags of the run command.
type RunPipelineOptions struct {
	KeyPath          string
	MaskedOutputPath string
	FailOnWarnings   bool
	Format           string
}

// RunPipeline reads the input dataset, masks and tokenizes its sensitive columns and writes
// the tokenized table to the output path. The masked table is written only when
// MaskedOutputPath is set.
//
// The key at KeyPath is created on first use and reused afterwards; losing it makes the
// tokenized output unrecoverable. Missing columns and failed cells are printed as warnings
// and, with FailOnWarnings, reported as ErrCompletedWithWarnings after all output is written.
func RunPipeline(
	ctx context.Context,
	pipelineUseCase protectionUseCase.PipelineUseCase,
	datasetRepo DatasetRepository,
	logger *slog.Logger,
	writer io.Writer,
	args PipelineArgs,
	opts RunPipelineOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	logger.Info("reading dataset", slog.String("path", args.InputPath))
	table, err := datasetRepo.Read(ctx, args.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	result, err := pipelineUseCase.Run(ctx, protectionDomain.RunInput{
		Table:            table,
		SensitiveColumns: args.Columns,
		KeyLocation:      opts.KeyPath,
	})
	if err != nil {
		return fmt.Errorf("failed to run pipeline: %w", err)
	}

	if err := datasetRepo.Write(ctx, args.OutputPath, result.Tokenized); err != nil {
		return fmt.Errorf("failed to write tokenized dataset: %w", err)
	}
	logger.Info("tokenized dataset written", slog.String("path", args.OutputPath))

	if opts.MaskedOutputPath != "" {
		if err := datasetRepo.Write(ctx, opts.MaskedOutputPath, result.Masked); err != nil {
			return fmt.Errorf("failed to write masked dataset: %w", err)
		}
		logger.Info("masked dataset written", slog.String("path", opts.MaskedOutputPath))
	}

	if opts.Format == "json" {
		if err := writeJSON(writer, map[string]any{
			"run_id":          result.RunID,
			"rows":            table.NumRows(),
			"tokenized_path":  args.OutputPath,
			"masked_path":     opts.MaskedOutputPath,
			"key_path":        result.Key.Location,
			"key_fingerprint": result.Key.Fingerprint,
			"key_generated":   result.Key.Generated,
			"mask":            newReportOutput(result.MaskReport),
			"tokenize":        newReportOutput(result.TokenReport),
		}); err != nil {
			return err
		}
	} else {
		if result.Key.Generated {
			_, _ = fmt.Fprintf(writer, "Generated new key at %s (fingerprint %s), keep it safe\n",
				result.Key.Location, result.Key.Fingerprint)
		}
		writeReportText(writer, "Masked", result.MaskReport)
		writeReportText(writer, "Tokenized", result.TokenReport)
		_, _ = fmt.Fprintf(writer, "Wrote %d row(s) to %s\n", table.NumRows(), args.OutputPath)
	}

	if opts.FailOnWarnings && result.HasWarnings() {
		return ErrCompletedWithWarnings
	}
	return nil
}
