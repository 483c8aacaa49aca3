package domain

import (
	"github.com/allisson/datamask/internal/errors"
)

// Algorithm names an AEAD construction usable for tokens. Both supported algorithms
// take a 32-byte key, a 12-byte nonce and append a 16-byte tag, so tokens of either have
// the same length for the same input.
type Algorithm string

const (
	// AESGCM is AES-256-GCM, the default. Fastest on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305, constant time without hardware AES support.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the length in bytes of every symmetric key handled by the application.
const KeySize = 32

// ParseAlgorithm converts an algorithm name to an Algorithm.
// Returns ErrUnsupportedAlgorithm if the name is unknown.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AESGCM, ChaCha20:
		return Algorithm(name), nil
	default:
		return "", errors.Wrapf(
			ErrUnsupportedAlgorithm,
			"%q (valid options: aes-gcm, chacha20-poly1305)",
			name,
		)
	}
}
