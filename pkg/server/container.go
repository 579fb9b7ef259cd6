package server

import (
	"context"
	"fmt"

	"game-generator-api/internal/adapters/gemini"
	"game-generator-api/internal/config"
	"game-generator-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	GameService services.GameService
}

// NewContainer creates a new dependency injection container backed by Gemini
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithGenerator(cfg, newGeminiGenerator)
}

// NewContainerWithGenerator creates a container that uses factory for text generation
func NewContainerWithGenerator(cfg *config.Config, factory services.GeneratorFactory) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if factory == nil {
		return nil, fmt.Errorf("generator factory cannot be nil")
	}

	return &Container{
		Config:      cfg,
		GameService: services.NewGameService(cfg.Gemini, factory),
	}, nil
}

// Close cleans up all resources. Generators are per-invocation, so there is
// nothing long-lived to release yet.
func (c *Container) Close() error {
	return nil
}

func newGeminiGenerator(ctx context.Context, apiKey, model string) (services.TextGenerator, error) {
	generator, err := gemini.NewGenerator(ctx, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return generator, nil
}
