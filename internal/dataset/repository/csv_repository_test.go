package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCSVRepository_Read(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(',')

	t.Run("Success", func(t *testing.T) {
		path := writeFile(t, "in.csv", "name,email\nAnn,ann@example.com\n\"Doe, Jane\",\"\"\n")

		table, err := repo.Read(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "email"}, table.Columns())
		assert.Equal(t, [][]string{{"Ann", "ann@example.com"}, {"Doe, Jane", ""}}, table.Rows())
	})

	t.Run("Success_HeaderOnly", func(t *testing.T) {
		table, err := repo.Read(ctx, writeFile(t, "in.csv", "email\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, table.NumRows())
	})

	t.Run("Success_StripsByteOrderMark", func(t *testing.T) {
		table, err := repo.Read(ctx, writeFile(t, "in.csv", "\uFEFFemail\na@b.com\n"))
		require.NoError(t, err)
		assert.True(t, table.HasColumn("email"))
	})

	t.Run("Success_CustomDelimiter", func(t *testing.T) {
		table, err := NewCSVRepository(';').Read(ctx, writeFile(t, "in.csv", "a;b\n1,5;2\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1,5", "2"}}, table.Rows())
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "Error_Empty", content: ""},
		{name: "Error_RaggedRow", content: "a,b\n1,2\n3\n"},
		{name: "Error_DuplicateHeader", content: "a,a\n1,2\n"},
		{name: "Error_BadQuote", content: "a\n\"unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := repo.Read(ctx, writeFile(t, "in.csv", tt.content))
			assert.Nil(t, table)
			assert.ErrorIs(t, err, datasetDomain.ErrInvalidTable)
		})
	}

	t.Run("Error_MissingFile", func(t *testing.T) {
		table, err := repo.Read(ctx, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Nil(t, table)
		assert.ErrorIs(t, err, datasetDomain.ErrDatasetIO)
	})
}

func TestCSVRepository_Write(t *testing.T) {
	ctx := context.Background()
	repo := NewCSVRepository(',')

	table, err := datasetDomain.NewTable(
		[]string{"name", "email"},
		[][]string{{"Doe, Jane", "j@d.com"}, {"Bob", ""}},
	)
	require.NoError(t, err)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")

		require.NoError(t, repo.Write(ctx, path, table))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "name,email\n\"Doe, Jane\",j@d.com\nBob,\n", string(data))

		read, err := repo.Read(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, table.Rows(), read.Rows())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Success_ReplacesExistingFile", func(t *testing.T) {
		path := writeFile(t, "out.csv", "stale content that is longer than the new one\n")

		require.NoError(t, repo.Write(ctx, path, table))

		read, err := repo.Read(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, table.Rows(), read.Rows())
	})

	t.Run("Error_MissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.csv")

		err := repo.Write(ctx, path, table)
		assert.ErrorIs(t, err, datasetDomain.ErrDatasetIO)
	})
}
