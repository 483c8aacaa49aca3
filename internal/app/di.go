// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/allisson/datamask/internal/config"
	cryptoService "github.com/allisson/datamask/internal/crypto/service"
	cryptoUseCase "github.com/allisson/datamask/internal/crypto/usecase"
	datasetRepository "github.com/allisson/datamask/internal/dataset/repository"
	"github.com/allisson/datamask/internal/metrics"
	protectionService "github.com/allisson/datamask/internal/protection/service"
	protectionUseCase "github.com/allisson/datamask/internal/protection/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	aeadManager      cryptoService.AEADManager
	kmsService       cryptoService.KMSService
	classifier       *protectionService.PatternClassifier
	masker           *protectionService.Masker
	tokenizerFactory protectionUseCase.TokenizerFactory

	// Repositories
	keyRepository     cryptoUseCase.KeyRepository
	datasetRepository *datasetRepository.CSVRepository

	// Use Cases
	keyUseCase      cryptoUseCase.KeyUseCase
	fieldProcessor  *protectionUseCase.FieldProcessor
	pipelineUseCase protectionUseCase.PipelineUseCase

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	aeadManagerInit       sync.Once
	kmsServiceInit        sync.Once
	classifierInit        sync.Once
	maskerInit            sync.Once
	tokenizerFactoryInit  sync.Once
	keyRepositoryInit     sync.Once
	datasetRepositoryInit sync.Once
	keyUseCaseInit        sync.Once
	fieldProcessorInit    sync.Once
	pipelineUseCaseInit   sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// Metrics recorded during the run are pushed and written before the provider shuts down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		c.metricsProvider.MarkRunFinished(time.Now())
		if url := c.config.MetricsPushgatewayURL; url != "" {
			if err := c.metricsProvider.Push(ctx, url, c.config.MetricsJobName, pushGrouping()); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics push: %w", err))
			}
		}
		if path := c.config.MetricsTextfilePath; path != "" {
			if err := c.metricsProvider.WriteTextfile(path); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics textfile: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
// Logs go to stderr so they never mix with command output.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// pushGrouping labels pushed metrics with the host name so runs on different hosts do not
// replace each other on the Pushgateway.
func pushGrouping() map[string]string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return nil
	}
	return map[string]string{"instance": hostname}
}
