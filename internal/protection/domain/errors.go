package domain

import (
	"github.com/allisson/datamask/internal/errors"
)

// ErrCellTransformFailed indicates the transform of a single cell failed.
// The cell is replaced with the failure marker and processing continues.
var ErrCellTransformFailed = errors.New("cell transform failed")
