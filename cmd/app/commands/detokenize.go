package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
	protectionUseCase "github.com/allisson/datamask/internal/protection/usecase"
)

// DetokenizeOptions holds the flags of the detokenize command.
type DetokenizeOptions struct {
	KeyPath        string
	FailOnWarnings bool
	Format         string
}

// RunDetokenize reads a tokenized dataset, restores the token cells of the named columns
// with the existing key and writes the result. It never creates a key.
func RunDetokenize(
	ctx context.Context,
	pipelineUseCase protectionUseCase.PipelineUseCase,
	datasetRepo DatasetRepository,
	logger *slog.Logger,
	writer io.Writer,
	args PipelineArgs,
	opts DetokenizeOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	logger.Info("reading dataset", slog.String("path", args.InputPath))
	table, err := datasetRepo.Read(ctx, args.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	result, err := pipelineUseCase.Restore(ctx, protectionDomain.RunInput{
		Table:            table,
		SensitiveColumns: args.Columns,
		KeyLocation:      opts.KeyPath,
	})
	if err != nil {
		return fmt.Errorf("failed to restore dataset: %w", err)
	}

	if err := datasetRepo.Write(ctx, args.OutputPath, result.Restored); err != nil {
		return fmt.Errorf("failed to write restored dataset: %w", err)
	}
	logger.Info("restored dataset written", slog.String("path", args.OutputPath))

	if opts.Format == "json" {
		if err := writeJSON(writer, map[string]any{
			"run_id":          result.RunID,
			"rows":            table.NumRows(),
			"restored_path":   args.OutputPath,
			"key_fingerprint": result.Key.Fingerprint,
			"detokenize":      newReportOutput(result.Report),
		}); err != nil {
			return err
		}
	} else {
		writeReportText(writer, "Detokenized", result.Report)
		_, _ = fmt.Fprintf(writer, "Wrote %d row(s) to %s\n", table.NumRows(), args.OutputPath)
	}

	if opts.FailOnWarnings && result.HasWarnings() {
		return ErrCompletedWithWarnings
	}
	return nil
}
