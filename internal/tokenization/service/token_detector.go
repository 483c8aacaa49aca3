package service

import (
	tokenizationDomain "github.com/allisson/datamask/internal/tokenization/domain"
)

// TokenDetector selects cells that hold a token, for use where a cell classifier is expected.
type TokenDetector struct {
	tokenizer Tokenizer
}

// NewTokenDetector creates a TokenDetector backed by tokenizer.
func NewTokenDetector(tokenizer Tokenizer) *TokenDetector {
	return &TokenDetector{tokenizer: tokenizer}
}

// Classify returns PatternToken when value looks like a token.
func (d *TokenDetector) Classify(value string) (string, bool) {
	if d.tokenizer.LooksLikeToken(value) {
		return tokenizationDomain.PatternToken, true
	}
	return "", false
}
