// Package usecase applies masking and tokenization to the sensitive columns of a table.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	protectionDomain "github.com/allisson/datamask/internal/protection/domain"
	tokenizationService "github.com/allisson/datamask/internal/tokenization/service"
)

// Selector decides which cells a transform applies to.
// Classify returns the matched pattern name and true for cells that must be transformed.
type Selector interface {
	Classify(value string) (string, bool)
}

// Masker irreversibly masks a value.
type Masker interface {
	Mask(value string) string
}

// KeyProvider obtains the tokenization key.
type KeyProvider interface {
	// Obtain loads the key or creates it on first use.
	Obtain(ctx context.Context, location string) (*cryptoDomain.Key, error)

	// Load loads an existing key and never creates one.
	Load(ctx context.Context, location string) (*cryptoDomain.Key, error)
}

// TokenizerFactory builds a Tokenizer bound to key material.
type TokenizerFactory func(key []byte) (tokenizationService.Tokenizer, error)

// PipelineUseCase orchestrates masking, tokenization and restore of a table.
type PipelineUseCase interface {
	// Run masks and tokenizes the sensitive columns of the input table.
	// The input table is never modified. A key store failure aborts the run with an error;
	// missing columns and failed cells are reported as warnings in the result.
	Run(ctx context.Context, input protectionDomain.RunInput) (*protectionDomain.Result, error)

	// Restore detokenizes the token cells of the sensitive columns using an existing key.
	// Cells that do not hold a token are left unchanged.
	Restore(ctx context.Context, input protectionDomain.RunInput) (*protectionDomain.RestoreResult, error)
}
