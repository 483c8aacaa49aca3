// Package service turns cell values into reversible tokens and back.
package service

import (
	tokenizationDomain "github.com/allisson/datamask/internal/tokenization/domain"
)

// Tokenizer encrypts cell values into self-contained tokens bound to one key.
type Tokenizer interface {
	// Tokenize encrypts value under a fresh random nonce. Tokenizing the same value twice
	// yields different tokens. Returns ErrPlaintextTooLarge above MaxPlaintextSize.
	Tokenize(value string) (tokenizationDomain.Token, error)

	// Detokenize recovers the value of a token produced under the same key.
	// Every failure is reported as ErrTokenInvalid.
	Detokenize(token tokenizationDomain.Token) (string, error)

	// LooksLikeToken reports whether value has the structure of a token.
	// It does not authenticate the value.
	LooksLikeToken(value string) bool
}
