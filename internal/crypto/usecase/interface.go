// Package usecase implements the key lifecycle behind tokenization: load an existing key
// from the key store or generate and persist a new one.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// KeyRepository persists encoded keys.
type KeyRepository interface {
	// Load returns the stored content at location.
	// Returns ErrKeyNotFound if nothing is stored there and ErrKeyStoreIO on read failures.
	Load(ctx context.Context, location string) ([]byte, error)

	// Create stores data at location.
	// Returns ErrKeyAlreadyExists if something is already stored there and ErrKeyStoreIO on write failures.
	Create(ctx context.Context, location string, data []byte) error
}

// KeyUseCase manages the lifecycle of the tokenization key.
type KeyUseCase interface {
	// Obtain loads the key at location, or generates and persists a new one when none exists.
	// A key store failure is returned as is and must abort the caller: no default key exists.
	Obtain(ctx context.Context, location string) (*cryptoDomain.Key, error)

	// Load loads the key at location. It never generates a key.
	Load(ctx context.Context, location string) (*cryptoDomain.Key, error)

	// Create generates and persists a new key at location.
	// Returns ErrKeyAlreadyExists if a key is already stored there.
	Create(ctx context.Context, location string) (*cryptoDomain.Key, error)
}
