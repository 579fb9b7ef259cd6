package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"game-generator-api/internal/config"
	"game-generator-api/internal/models"
	"game-generator-api/internal/prompt"
)

// ErrAPIKeyNotConfigured is returned when no Gemini API key is available.
// Its text is sent to clients as-is.
var ErrAPIKeyNotConfigured = errors.New("GEMINI_API_KEY not configured")

// gameService implements the GameService interface
type gameService struct {
	config       config.GeminiConfig
	newGenerator GeneratorFactory
}

// NewGameService creates a new game service instance
func NewGameService(cfg config.GeminiConfig, newGenerator GeneratorFactory) GameService {
	return &gameService{
		config:       cfg,
		newGenerator: newGenerator,
	}
}

// GenerateGame generates a single-file HTML game from the request prompt
func (s *gameService) GenerateGame(ctx context.Context, req *models.GenerateGameRequest) (*models.GeneratedGame, error) {
	if req == nil {
		return nil, fmt.Errorf("generate game request cannot be nil")
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if s.config.APIKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	if s.newGenerator == nil {
		return nil, fmt.Errorf("no text generator configured")
	}

	generator, err := s.newGenerator(ctx, s.config.APIKey, s.config.Model)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := generator.Close(); cerr != nil {
			logrus.WithError(cerr).Debug("Failed to close text generator")
		}
	}()

	complexity := req.EffectiveComplexity()
	raw, err := generator.Generate(ctx, prompt.BuildGamePrompt(req.Prompt, complexity))
	if err != nil {
		return nil, err
	}

	return models.NewGeneratedGame(prompt.StripCodeFences(raw), req.Prompt, complexity), nil
}
