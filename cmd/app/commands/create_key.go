package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/datamask/internal/crypto/usecase"
)

// RunCreateKey generates a new tokenization key and stores it at keyPath.
// Fails without touching the existing file if a key is already stored there.
// Only the key fingerprint is printed; the material never leaves the key store.
func RunCreateKey(
	ctx context.Context,
	keyUseCase cryptoUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	keyPath string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("creating new key", slog.String("path", keyPath))

	key, err := keyUseCase.Create(ctx, keyPath)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	defer key.Close()

	logger.Info("key created successfully",
		slog.String("path", keyPath),
		slog.String("fingerprint", key.Fingerprint),
		slog.Bool("kms_wrapped", key.Wrapped),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"key_path":    keyPath,
			"fingerprint": key.Fingerprint,
			"kms_wrapped": key.Wrapped,
		})
	}

	_, _ = fmt.Fprintf(writer, "Created key at %s\n", keyPath)
	_, _ = fmt.Fprintf(writer, "Fingerprint: %s\n", key.Fingerprint)
	if key.Wrapped {
		_, _ = fmt.Fprintln(writer, "The key is wrapped by KMS_KEY_URI and cannot be loaded without it.")
	}
	return nil
}
