package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

type cipherConstructor func(key []byte) (*AEADCipher, error)

// AEADManagerService builds AEAD ciphers from a fixed registry of algorithms.
type AEADManagerService struct {
	constructors map[cryptoDomain.Algorithm]cipherConstructor
	algorithms   []cryptoDomain.Algorithm
}

// NewAEADManager creates an AEADManagerService supporting AES-256-GCM and ChaCha20-Poly1305.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{
		constructors: map[cryptoDomain.Algorithm]cipherConstructor{
			cryptoDomain.AESGCM:   NewAESGCM,
			cryptoDomain.ChaCha20: NewChaCha20Poly1305,
		},
		algorithms: []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20},
	}
}

// Algorithms returns the supported algorithms, AES-256-GCM first.
func (am *AEADManagerService) Algorithms() []cryptoDomain.Algorithm {
	out := make([]cryptoDomain.Algorithm, len(am.algorithms))
	copy(out, am.algorithms)
	return out
}

// CreateCipher binds key to a cipher for alg.
// Returns ErrInvalidKeySize if key is not KeySize bytes or ErrUnsupportedAlgorithm if alg is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", cryptoDomain.ErrInvalidKeySize, cryptoDomain.KeySize, len(key))
	}

	constructor, ok := am.constructors[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, alg)
	}
	return constructor(key)
}
