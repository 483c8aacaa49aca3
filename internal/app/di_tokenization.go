package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	protectionUseCase "github.com/allisson/datamask/internal/protection/usecase"
	tokenizationService "github.com/allisson/datamask/internal/tokenization/service"
)

// TokenizerFactory returns the factory that binds a token cipher to key material.
func (c *Container) TokenizerFactory() (protectionUseCase.TokenizerFactory, error) {
	var err error
	c.tokenizerFactoryInit.Do(func() {
		c.tokenizerFactory, err = c.initTokenizerFactory()
		if err != nil {
			c.initErrors["tokenizerFactory"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenizerFactory"]; exists {
		return nil, storedErr
	}
	return c.tokenizerFactory, nil
}

// initTokenizerFactory creates a factory producing token ciphers for the configured algorithm.
func (c *Container) initTokenizerFactory() (protectionUseCase.TokenizerFactory, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cipher algorithm: %w", err)
	}

	aeadManager := c.AEADManager()

	return func(key []byte) (tokenizationService.Tokenizer, error) {
		tokenCipher, err := tokenizationService.NewTokenCipher(aeadManager, key, algorithm)
		if err != nil {
			return nil, err
		}
		return tokenCipher, nil
	}, nil
}
