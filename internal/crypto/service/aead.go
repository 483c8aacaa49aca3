package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
)

// AEADCipher implements AEAD on top of a standard library or x/crypto cipher.AEAD.
//
// Both supported algorithms use a 32-byte key, a 12-byte nonce drawn from crypto/rand
// for every encryption and a 16-byte authentication tag appended to the ciphertext.
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Each encryption operation generates a unique nonce independently.
type AEADCipher struct {
	aead      cipher.AEAD
	algorithm cryptoDomain.Algorithm
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
// The key must be exactly 32 bytes.
func NewAESGCM(key []byte) (*AEADCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AEADCipher{aead: aead, algorithm: cryptoDomain.AESGCM}, nil
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
// ChaCha20-Poly1305 is efficient on platforms without hardware AES acceleration.
// The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*AEADCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &AEADCipher{aead: aead, algorithm: cryptoDomain.ChaCha20}, nil
}

// Encrypt encrypts plaintext with optional additional authenticated data.
//
// The AAD is authenticated but not encrypted; the same AAD must be supplied to Decrypt.
// A new random nonce is generated for every call, so encrypting the same plaintext
// twice yields different ciphertexts. The returned ciphertext carries the tag.
func (a *AEADCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt verifies the authentication tag and decrypts ciphertext.
//
// No plaintext is returned unless verification succeeds. A wrong key, nonce or AAD,
// and any modification of the ciphertext all surface as ErrDecryptionFailed.
func (a *AEADCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("%w: invalid nonce size", cryptoDomain.ErrDecryptionFailed)
	}

	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// NonceSize returns the nonce length in bytes.
func (a *AEADCipher) NonceSize() int {
	return a.aead.NonceSize()
}

// Overhead returns the authentication tag length in bytes.
func (a *AEADCipher) Overhead() int {
	return a.aead.Overhead()
}

// Algorithm returns the algorithm implemented by the cipher.
func (a *AEADCipher) Algorithm() cryptoDomain.Algorithm {
	return a.algorithm
}
