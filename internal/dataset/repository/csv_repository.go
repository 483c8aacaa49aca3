// Package repository reads and writes datasets as CSV files.
package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	datasetDomain "github.com/allisson/datamask/internal/dataset/domain"
)

const (
	outputFileMode = 0o644
	utf8BOM        = "\uFEFF"
)

// CSVRepository stores tables as CSV files with a header row.
type CSVRepository struct {
	delimiter rune
}

// NewCSVRepository creates a CSVRepository using delimiter as the field separator.
func NewCSVRepository(delimiter rune) *CSVRepository {
	return &CSVRepository{delimiter: delimiter}
}

// Read loads the CSV file at path into a Table. The first record is the header.
//
// Returns ErrDatasetIO if the file cannot be opened or read and ErrInvalidTable if the
// content is not a well-formed table (no header, ragged rows, duplicate columns).
func (r *CSVRepository) Read(ctx context.Context, path string) (*datasetDomain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.Comma = r.delimiter

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header row", datasetDomain.ErrInvalidTable, path)
		}
		return nil, r.readError(path, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, r.readError(path, err)
	}

	table, err := datasetDomain.NewTable(header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Write stores table at path, replacing any existing file.
//
// The table is written to a temporary file in the destination directory and renamed into
// place, so a failed write never leaves a truncated dataset behind.
func (r *CSVRepository) Write(ctx context.Context, path string, table *datasetDomain.Table) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	writer := csv.NewWriter(tmp)
	writer.Comma = r.delimiter
	if err := writer.Write(table.Columns()); err != nil {
		return fmt.Errorf("%w: write %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	if err := writer.WriteAll(table.Rows()); err != nil {
		return fmt.Errorf("%w: write %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}

	if err := tmp.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", datasetDomain.ErrDatasetIO, path, err)
	}
	return nil
}

// readError separates malformed CSV content from read failures.
func (r *CSVRepository) readError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %s: %v", datasetDomain.ErrInvalidTable, path, err)
	}
	return fmt.Errorf("%w: read %s: %v", datasetDomain.ErrDatasetIO, path, err)
}
