package domain

import (
	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// TokenVersion is the current token format version, the first byte of every token.
const TokenVersion byte = 0x01

// HeaderSize is the number of bytes before the nonce: version and algorithm id.
const HeaderSize = 2

// MaxPlaintextSize is the largest plaintext, in bytes, that can be tokenized.
const MaxPlaintextSize = 64 * 1024

// Algorithm identifiers carried in the second byte of a token.
const (
	AlgorithmIDAESGCM   byte = 0x01
	AlgorithmIDChaCha20 byte = 0x02
)

// AlgorithmID returns the token algorithm id for alg.
// Returns ErrUnsupportedAlgorithm for algorithms that cannot appear in a token.
func AlgorithmID(alg cryptoDomain.Algorithm) (byte, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return AlgorithmIDAESGCM, nil
	case cryptoDomain.ChaCha20:
		return AlgorithmIDChaCha20, nil
	default:
		return 0, cryptoDomain.ErrUnsupportedAlgorithm
	}
}

// AlgorithmFromID is the inverse of AlgorithmID.
func AlgorithmFromID(id byte) (cryptoDomain.Algorithm, bool) {
	switch id {
	case AlgorithmIDAESGCM:
		return cryptoDomain.AESGCM, true
	case AlgorithmIDChaCha20:
		return cryptoDomain.ChaCha20, true
	default:
		return "", false
	}
}

// PatternToken is the classification reported for cells that hold a token.
const PatternToken = "token"
