package app

import (
	"fmt"

	cryptoRepository "github.com/allisson/datamask/internal/crypto/repository"
	cryptoService "github.com/allisson/datamask/internal/crypto/service"
	cryptoUseCase "github.com/allisson/datamask/internal/crypto/usecase"
)

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = c.initAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = c.initKMSService()
	})
	return c.kmsService
}

// KeyRepository returns the key store repository.
func (c *Container) KeyRepository() cryptoUseCase.KeyRepository {
	c.keyRepositoryInit.Do(func() {
		c.keyRepository = c.initKeyRepository()
	})
	return c.keyRepository
}

// KeyUseCase returns the key use case.
func (c *Container) KeyUseCase() (cryptoUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// initAEADManager creates the AEAD manager service.
func (c *Container) initAEADManager() cryptoService.AEADManager {
	return cryptoService.NewAEADManager()
}

// initKMSService creates the KMS service for wrapping keys at rest.
func (c *Container) initKMSService() cryptoService.KMSService {
	return cryptoService.NewKMSService()
}

// initKeyRepository creates the file backed key store repository.
func (c *Container) initKeyRepository() cryptoUseCase.KeyRepository {
	return cryptoRepository.NewFileKeyRepository()
}

// initKeyUseCase creates the key use case with all its dependencies.
func (c *Container) initKeyUseCase() (cryptoUseCase.KeyUseCase, error) {
	baseUseCase := cryptoUseCase.NewKeyUseCase(
		c.KeyRepository(),
		c.KMSService(),
		c.config.KMSKeyURI,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
		}
		return cryptoUseCase.NewKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
