package domain

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// WrappedKeyPrefix marks key store content that was encrypted by a KMS keeper.
const WrappedKeyPrefix = "kms:"

// Key is the symmetric key that every tokenization in a run shares.
//
// Key material is stored in the key store as URL-safe, padded base64 (the same textual
// shape as a Fernet key), optionally wrapped by a KMS keeper. Material never leaves the
// process in any other form; Fingerprint is safe to log.
type Key struct {
	Material    []byte
	Fingerprint string
	// Generated reports whether the key was created by the call that returned it.
	Generated bool
	// Wrapped reports whether the key is stored encrypted by a KMS keeper.
	Wrapped bool
}

// NewKey builds a Key from raw material. The material is copied.
// Returns ErrInvalidKeySize if material is not exactly KeySize bytes.
func NewKey(material []byte) (*Key, error) {
	if len(material) != KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(material))
	}
	m := make([]byte, KeySize)
	copy(m, material)
	return &Key{Material: m, Fingerprint: Fingerprint(m)}, nil
}

// GenerateKey creates a new key from crypto/rand.
func GenerateKey() (*Key, error) {
	material := make([]byte, KeySize)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	defer Zero(material)

	key, err := NewKey(material)
	if err != nil {
		return nil, err
	}
	key.Generated = true
	return key, nil
}

// Close zeroes the key material.
func (k *Key) Close() {
	if k == nil {
		return
	}
	Zero(k.Material)
}

// Fingerprint returns a short non-secret identifier for key material:
// the hex encoding of the first 8 bytes of its SHA-256 digest.
func Fingerprint(material []byte) string {
	sum := sha256.Sum256(material)
	return hex.EncodeToString(sum[:8])
}

// EncodeKey encodes key material for the key store.
func EncodeKey(material []byte) []byte {
	out := make([]byte, base64.URLEncoding.EncodedLen(len(material)))
	base64.URLEncoding.Encode(out, material)
	return out
}

// DecodeKey decodes key store content produced by EncodeKey.
// Surrounding whitespace is ignored. The returned material must be zeroed by the caller.
func DecodeKey(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	material := make([]byte, base64.URLEncoding.DecodedLen(len(trimmed)))
	n, err := base64.URLEncoding.Decode(material, trimmed)
	if err != nil {
		Zero(material)
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	material = material[:n]
	if len(material) != KeySize {
		Zero(material)
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(material))
	}
	return material, nil
}

// EncodeWrappedKey encodes a KMS ciphertext of key material for the key store.
func EncodeWrappedKey(ciphertext []byte) []byte {
	return append([]byte(WrappedKeyPrefix), EncodeKey(ciphertext)...)
}

// DecodeWrappedKey returns the KMS ciphertext held in wrapped key store content.
func DecodeWrappedKey(data []byte) ([]byte, error) {
	trimmed := bytes.TrimPrefix(bytes.TrimSpace(data), []byte(WrappedKeyPrefix))
	ciphertext := make([]byte, base64.URLEncoding.DecodedLen(len(trimmed)))
	n, err := base64.URLEncoding.Decode(ciphertext, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return ciphertext[:n], nil
}

// IsWrappedKey reports whether key store content was wrapped by a KMS keeper.
func IsWrappedKey(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(WrappedKeyPrefix))
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
