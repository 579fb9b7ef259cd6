// Package gemini adapts the Google generative AI SDK to a plain
// prompt-in, text-out generator.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNoText is returned when the model answers without any text part
var ErrNoText = errors.New("model response contained no text")

// Generator sends single-turn completion requests to one Gemini model
type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGenerator creates a client authenticated with apiKey for the named model.
// The caller must Close it.
func NewGenerator(ctx context.Context, apiKey, modelName string) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Generate performs one completion request and returns the concatenated text
// of the first candidate. SDK errors are returned unwrapped.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := ResponseText(resp)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// Close releases the underlying client connection
func (g *Generator) Close() error {
	return g.client.Close()
}

// ResponseText collects the text parts of the first candidate
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
