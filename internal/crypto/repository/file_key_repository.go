// Package repository implements key store persistence.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// keyFileMode restricts the key file to its owner.
const keyFileMode = 0o600

// FileKeyRepository stores encoded keys as files on the local filesystem.
//
// The location passed to each call is the key file path. Parent directories are not
// created: an unwritable location is a key store failure, never a silent fallback.
type FileKeyRepository struct{}

// NewFileKeyRepository creates a new FileKeyRepository.
func NewFileKeyRepository() *FileKeyRepository {
	return &FileKeyRepository{}
}

// Load reads the encoded key stored at location verbatim.
// Returns ErrKeyNotFound if nothing exists at location and ErrKeyStoreIO for any other failure.
func (r *FileKeyRepository) Load(ctx context.Context, location string) ([]byte, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrKeyNotFound, location)
		}
		return nil, fmt.Errorf("%w: read %s: %v", cryptoDomain.ErrKeyStoreIO, location, err)
	}
	return data, nil
}

// Create writes data to location, failing if a file already exists there.
//
// The file is created with O_EXCL so two concurrent first runs cannot both install a key;
// the loser receives ErrKeyAlreadyExists. A partially written file is removed.
func (r *FileKeyRepository) Create(ctx context.Context, location string, data []byte) error {
	f, err := os.OpenFile(location, os.O_WRONLY|os.O_CREATE|os.O_EXCL, keyFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", cryptoDomain.ErrKeyAlreadyExists, location)
		}
		return fmt.Errorf("%w: create %s: %v", cryptoDomain.ErrKeyStoreIO, location, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(location)
		return fmt.Errorf("%w: write %s: %v", cryptoDomain.ErrKeyStoreIO, location, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(location)
		return fmt.Errorf("%w: sync %s: %v", cryptoDomain.ErrKeyStoreIO, location, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(location)
		return fmt.Errorf("%w: close %s: %v", cryptoDomain.ErrKeyStoreIO, location, err)
	}
	return nil
}
