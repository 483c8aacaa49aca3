package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	cryptoService "github.com/allisson/datamask/internal/crypto/service"
	tokenizationDomain "github.com/allisson/datamask/internal/tokenization/domain"
)

// TokenCipher implements Tokenizer with the AEAD ciphers of one key.
//
// New tokens use the configured algorithm. Tokens of either supported algorithm are
// accepted by Detokenize since the algorithm travels in the token header.
//
// The cipher holds no mutable state and is safe for concurrent use.
type TokenCipher struct {
	algorithmID byte
	ciphers     map[byte]cryptoService.AEAD
	nonceSize   int
	overhead    int
}

// NewTokenCipher creates a TokenCipher bound to key. alg selects the algorithm of new tokens.
// Returns ErrInvalidKeySize or ErrUnsupportedAlgorithm when the cipher cannot be built.
func NewTokenCipher(
	aeadManager cryptoService.AEADManager,
	key []byte,
	alg cryptoDomain.Algorithm,
) (*TokenCipher, error) {
	algorithmID, err := tokenizationDomain.AlgorithmID(alg)
	if err != nil {
		return nil, err
	}

	algorithms := aeadManager.Algorithms()
	tc := &TokenCipher{
		algorithmID: algorithmID,
		ciphers:     make(map[byte]cryptoService.AEAD, len(algorithms)),
	}
	for _, a := range algorithms {
		id, err := tokenizationDomain.AlgorithmID(a)
		if err != nil {
			return nil, err
		}
		aead, err := aeadManager.CreateCipher(key, a)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s cipher: %w", a, err)
		}
		tc.ciphers[id] = aead
	}

	if _, ok := tc.ciphers[algorithmID]; !ok {
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, alg)
	}

	// Both algorithms share nonce and tag sizes.
	tc.nonceSize = tc.ciphers[algorithmID].NonceSize()
	tc.overhead = tc.ciphers[algorithmID].Overhead()
	return tc, nil
}

// Tokenize encrypts value into a token.
func (tc *TokenCipher) Tokenize(value string) (tokenizationDomain.Token, error) {
	if len(value) > tokenizationDomain.MaxPlaintextSize {
		return "", fmt.Errorf(
			"%w: %d bytes (max %d)",
			tokenizationDomain.ErrPlaintextTooLarge,
			len(value),
			tokenizationDomain.MaxPlaintextSize,
		)
	}

	envelope := &tokenizationDomain.Envelope{
		Version:     tokenizationDomain.TokenVersion,
		AlgorithmID: tc.algorithmID,
	}
	ciphertext, nonce, err := tc.ciphers[tc.algorithmID].Encrypt([]byte(value), envelope.Header())
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	envelope.Nonce = nonce
	envelope.Ciphertext = ciphertext

	return envelope.Encode(), nil
}

// Detokenize decrypts a token produced by Tokenize under the same key.
func (tc *TokenCipher) Detokenize(token tokenizationDomain.Token) (string, error) {
	envelope, err := tc.parse(token)
	if err != nil {
		return "", err
	}

	plaintext, err := tc.ciphers[envelope.AlgorithmID].Decrypt(
		envelope.Ciphertext,
		envelope.Nonce,
		envelope.Header(),
	)
	if err != nil {
		return "", tokenizationDomain.ErrTokenInvalid
	}
	return string(plaintext), nil
}

// LooksLikeToken reports whether value decodes to a token of a known version and algorithm.
func (tc *TokenCipher) LooksLikeToken(value string) bool {
	_, err := tc.parse(tokenizationDomain.Token(value))
	return err == nil
}

func (tc *TokenCipher) parse(token tokenizationDomain.Token) (*tokenizationDomain.Envelope, error) {
	envelope, err := tokenizationDomain.ParseToken(token, tc.nonceSize, tc.overhead)
	if err != nil {
		return nil, err
	}
	if envelope.Version != tokenizationDomain.TokenVersion {
		return nil, fmt.Errorf("%w: unknown version", tokenizationDomain.ErrTokenInvalid)
	}
	if _, ok := tc.ciphers[envelope.AlgorithmID]; !ok {
		return nil, fmt.Errorf("%w: unknown algorithm", tokenizationDomain.ErrTokenInvalid)
	}
	return envelope, nil
}
