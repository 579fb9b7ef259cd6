package models

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultComplexity is used when a request omits the complexity field
	DefaultComplexity = 2
	MinComplexity     = 1
	MaxComplexity     = 5
)

var validate = validator.New()

// GenerateGameRequest is the JSON body accepted by the generate endpoint
type GenerateGameRequest struct {
	Prompt     string `json:"prompt" validate:"required"`
	Complexity *int   `json:"complexity,omitempty"`
}

// Validate validates the request. Only emptiness of the prompt is checked;
// complexity is passed through to the model untouched.
func (r *GenerateGameRequest) Validate() error {
	return validate.Struct(r)
}

// DecodeGenerateGameRequest reads the exact "prompt" and "complexity" keys of
// a JSON object. Keys that differ only in case are ignored, a null value counts
// as absent, and an integral number such as 3.0 is accepted as a complexity.
func DecodeGenerateGameRequest(data []byte) (*GenerateGameRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	req := &GenerateGameRequest{}
	if raw, ok := fields["prompt"]; ok {
		var prompt *string
		if err := json.Unmarshal(raw, &prompt); err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		if prompt != nil {
			req.Prompt = *prompt
		}
	}

	if raw, ok := fields["complexity"]; ok {
		var complexity *float64
		if err := json.Unmarshal(raw, &complexity); err != nil {
			return nil, fmt.Errorf("complexity: %w", err)
		}
		if complexity != nil {
			c := *complexity
			if c != math.Trunc(c) || c > math.MaxInt32 || c < math.MinInt32 {
				return nil, fmt.Errorf("complexity must be an integer, got %v", c)
			}
			n := int(c)
			req.Complexity = &n
		}
	}

	return req, nil
}

// EffectiveComplexity returns the requested complexity or DefaultComplexity
func (r *GenerateGameRequest) EffectiveComplexity() int {
	if r.Complexity == nil {
		return DefaultComplexity
	}
	return *r.Complexity
}

// GeneratedGame is the result of one generation. It is never stored.
type GeneratedGame struct {
	Code       string `json:"code"`
	Prompt     string `json:"prompt"`
	Complexity int    `json:"complexity"`
}

// NewGeneratedGame creates a generated game result
func NewGeneratedGame(code, prompt string, complexity int) *GeneratedGame {
	return &GeneratedGame{
		Code:       code,
		Prompt:     prompt,
		Complexity: complexity,
	}
}

// ValidateComplexityRange checks a complexity against the 1..5 scale offered to users
func ValidateComplexityRange(complexity int) error {
	rule := fmt.Sprintf("min=%d,max=%d", MinComplexity, MaxComplexity)
	if err := validate.Var(complexity, rule); err != nil {
		return fmt.Errorf("complexity must be between %d and %d, got %d", MinComplexity, MaxComplexity, complexity)
	}
	return nil
}

// ExamplePrompt is a preset prompt offered to users who don't know what to ask for
type ExamplePrompt struct {
	Title      string `json:"title"`
	Prompt     string `json:"prompt"`
	Complexity int    `json:"complexity"`
}

// ExamplePrompts returns the preset prompts in display order
func ExamplePrompts() []ExamplePrompt {
	return []ExamplePrompt{
		{Title: "Змейка", Prompt: "Создай классическую игру змейка с управлением стрелками", Complexity: 2},
		{Title: "Крестики-нолики", Prompt: "Игра крестики-нолики 3x3 против компьютера", Complexity: 1},
		{Title: "Flappy Bird", Prompt: "Игра как Flappy Bird с препятствиями", Complexity: 3},
		{Title: "Платформер", Prompt: "Простой 2D платформер с прыжками и монетами", Complexity: 4},
		{Title: "Пинг-понг", Prompt: "Классический пинг-понг на двоих игроков", Complexity: 2},
		{Title: "Memory Game", Prompt: "Игра на память с переворачивающимися карточками", Complexity: 1},
	}
}
