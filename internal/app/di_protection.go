package app

import (
	"fmt"

	protectionService "github.com/allisson/datamask/internal/protection/service"
	protectionUseCase "github.com/allisson/datamask/internal/protection/usecase"
)

// Classifier returns the sensitive cell classifier.
func (c *Container) Classifier() *protectionService.PatternClassifier {
	c.classifierInit.Do(func() {
		c.classifier = protectionService.NewPatternClassifier()
	})
	return c.classifier
}

// Masker returns the masking transform.
func (c *Container) Masker() *protectionService.Masker {
	c.maskerInit.Do(func() {
		c.masker = protectionService.NewMasker(c.config.MaskRune())
	})
	return c.masker
}

// FieldProcessor returns the field processor.
func (c *Container) FieldProcessor() *protectionUseCase.FieldProcessor {
	c.fieldProcessorInit.Do(func() {
		c.fieldProcessor = protectionUseCase.NewFieldProcessor(c.Logger(), c.config.FailureMarker)
	})
	return c.fieldProcessor
}

// PipelineUseCase returns the pipeline use case.
func (c *Container) PipelineUseCase() (protectionUseCase.PipelineUseCase, error) {
	var err error
	c.pipelineUseCaseInit.Do(func() {
		c.pipelineUseCase, err = c.initPipelineUseCase()
		if err != nil {
			c.initErrors["pipelineUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["pipelineUseCase"]; exists {
		return nil, storedErr
	}
	return c.pipelineUseCase, nil
}

// initPipelineUseCase creates the pipeline use case with all its dependencies.
func (c *Container) initPipelineUseCase() (protectionUseCase.PipelineUseCase, error) {
	keyUseCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for pipeline use case: %w", err)
	}

	tokenizerFactory, err := c.TokenizerFactory()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer factory for pipeline use case: %w", err)
	}

	baseUseCase := protectionUseCase.NewPipelineUseCase(
		c.FieldProcessor(),
		c.Classifier(),
		c.Masker(),
		keyUseCase,
		tokenizerFactory,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for pipeline use case: %w", err)
		}
		return protectionUseCase.NewPipelineUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
