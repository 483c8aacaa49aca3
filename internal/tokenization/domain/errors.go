package domain

import (
	"github.com/allisson/datamask/internal/errors"
)

var (
	// ErrTokenInvalid indicates a token could not be detokenized: it is malformed, truncated,
	// tampered with, of an unknown version or algorithm, or was produced under another key.
	// The cause is never disclosed.
	ErrTokenInvalid = errors.Wrap(errors.ErrInvalidInput, "token is invalid")

	// ErrPlaintextTooLarge indicates the value exceeds MaxPlaintextSize.
	ErrPlaintextTooLarge = errors.Wrap(errors.ErrInvalidInput, "plaintext exceeds maximum size")
)
