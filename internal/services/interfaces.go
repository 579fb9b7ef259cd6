package services

import (
	"context"

	"game-generator-api/internal/models"
)

// GameService defines the interface for game generation business logic
type GameService interface {
	// GenerateGame validates req, asks the text model for a game and returns
	// the cleaned HTML. Errors from the model are returned unwrapped.
	GenerateGame(ctx context.Context, req *models.GenerateGameRequest) (*models.GeneratedGame, error)
}

// TextGenerator is a single-turn completion backend
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeneratorFactory creates a TextGenerator for one invocation
type GeneratorFactory func(ctx context.Context, apiKey, model string) (TextGenerator, error)
