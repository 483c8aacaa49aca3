// Package service provides the AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) behind
// tokenization and the KMS access used to wrap keys at rest.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and a fresh random nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	// Returns ErrDecryptionFailed when authentication fails.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes.
	NonceSize() int

	// Overhead returns the authentication tag length in bytes.
	Overhead() int

	// Algorithm returns the algorithm implemented by the cipher.
	Algorithm() cryptoDomain.Algorithm
}

// AEADManager builds AEAD ciphers bound to a key.
type AEADManager interface {
	// Algorithms returns every algorithm CreateCipher accepts.
	Algorithms() []cryptoDomain.Algorithm

	// CreateCipher binds key to a cipher for alg.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KMSService opens KMS keepers and wraps small secrets with them.
type KMSService interface {
	// OpenKeeper opens a keeper for the KMS key URI.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)

	// Wrap encrypts plaintext with the KMS key at keyURI.
	Wrap(ctx context.Context, keyURI string, plaintext []byte) ([]byte, error)

	// Unwrap decrypts ciphertext produced by Wrap with the same keyURI.
	Unwrap(ctx context.Context, keyURI string, ciphertext []byte) ([]byte, error)
}
