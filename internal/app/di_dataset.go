package app

import (
	datasetRepository "github.com/allisson/datamask/internal/dataset/repository"
)

// DatasetRepository returns the CSV dataset repository.
func (c *Container) DatasetRepository() *datasetRepository.CSVRepository {
	c.datasetRepositoryInit.Do(func() {
		c.datasetRepository = c.initDatasetRepository()
	})
	return c.datasetRepository
}

// initDatasetRepository creates the CSV repository with the configured delimiter.
func (c *Container) initDatasetRepository() *datasetRepository.CSVRepository {
	return datasetRepository.NewCSVRepository(c.config.Delimiter())
}
