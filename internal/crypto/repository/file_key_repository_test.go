package repository

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	apperrors "github.com/allisson/datamask/internal/errors"
)

func TestFileKeyRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewFileKeyRepository()

	t.Run("Success_CreateNewFile", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "secret.key")

		err := repo.Create(ctx, location, []byte("encoded-key"))
		require.NoError(t, err)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.Equal(t, "encoded-key", string(data))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(location)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		}
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "secret.key")
		require.NoError(t, os.WriteFile(location, []byte("original"), 0o600))

		err := repo.Create(ctx, location, []byte("replacement"))
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.Equal(t, "original", string(data))
	})

	t.Run("Error_MissingDirectory", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "missing", "secret.key")

		err := repo.Create(ctx, location, []byte("encoded-key"))
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyStoreIO)
		assert.ErrorIs(t, err, apperrors.ErrIO)
	})
}

func TestFileKeyRepository_Load(t *testing.T) {
	ctx := context.Background()
	repo := NewFileKeyRepository()

	t.Run("Success_ReadsVerbatim", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "secret.key")
		require.NoError(t, os.WriteFile(location, []byte("encoded-key\n"), 0o600))

		data, err := repo.Load(ctx, location)
		require.NoError(t, err)
		assert.Equal(t, "encoded-key\n", string(data))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		data, err := repo.Load(ctx, filepath.Join(t.TempDir(), "absent.key"))
		assert.Nil(t, data)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotFound)
		assert.NotErrorIs(t, err, cryptoDomain.ErrKeyStoreIO)
	})

	t.Run("Error_LocationIsDirectory", func(t *testing.T) {
		data, err := repo.Load(ctx, t.TempDir())
		assert.Nil(t, data)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyStoreIO)
	})
}
