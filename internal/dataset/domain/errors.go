package domain

import (
	"github.com/allisson/datamask/internal/errors"
)

var (
	// ErrColumnNotFound indicates the table has no column with the requested name.
	ErrColumnNotFound = errors.Wrap(errors.ErrNotFound, "column not found")

	// ErrRowOutOfRange indicates a row index outside the table.
	ErrRowOutOfRange = errors.Wrap(errors.ErrInvalidInput, "row out of range")

	// ErrInvalidTable indicates the header or rows do not form a valid table.
	ErrInvalidTable = errors.Wrap(errors.ErrInvalidInput, "invalid table")

	// ErrDatasetIO indicates a dataset could not be read or written.
	ErrDatasetIO = errors.Wrap(errors.ErrIO, "dataset i/o failure")
)
