package domain

import (
	"github.com/allisson/datamask/internal/errors"
)

// Cipher and key store errors.
var (
	// ErrUnsupportedAlgorithm indicates an algorithm other than AESGCM or ChaCha20.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates key material that is not KeySize bytes long.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidKeyEncoding indicates the key store content is not a valid encoded key.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid key encoding")

	// ErrDecryptionFailed indicates authentication failed: wrong key, tampered ciphertext
	// or header, or a bad nonce. The cause is deliberately not distinguished.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrKeyNotFound indicates no key exists at the key store location.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrKeyAlreadyExists indicates a key already exists at the key store location.
	ErrKeyAlreadyExists = errors.Wrap(errors.ErrConflict, "key already exists")

	// ErrKeyStoreIO indicates the key store could not be read or written.
	// It aborts the run: a missing key is never replaced by a default.
	ErrKeyStoreIO = errors.Wrap(errors.ErrIO, "key store i/o failure")

	// ErrKMSNotConfigured indicates a KMS-wrapped key was found but no KMS key URI is configured.
	ErrKMSNotConfigured = errors.Wrap(errors.ErrInvalidInput, "key is kms-wrapped but no kms key uri is configured")
)
