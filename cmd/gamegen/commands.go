package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"game-generator-api/internal/config"
	"game-generator-api/internal/models"
	"game-generator-api/internal/services"
	"game-generator-api/pkg/server"
)

// newContainer is swapped in tests to avoid calling the real model
var newContainer = server.NewContainer

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gamegen",
		Short:         "Generate single-file HTML5 browser games with Gemini",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand(), newExamplesCommand())
	return root
}

type generateOptions struct {
	prompt     string
	complexity int
	example    int
	out        string
	timeout    time.Duration
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a game and write its HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.prompt, "prompt", "p", "", "description of the game")
	flags.IntVarP(&opts.complexity, "complexity", "c", models.DefaultComplexity, "complexity from 1 to 5")
	flags.IntVarP(&opts.example, "example", "e", 0, "use the Nth example prompt instead of --prompt")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	flags.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "maximum time to wait for the model")

	return cmd
}

func runGenerate(ctx context.Context, stdout io.Writer, opts *generateOptions) error {
	if opts.example > 0 {
		examples := models.ExamplePrompts()
		if opts.example > len(examples) {
			return fmt.Errorf("example must be between 1 and %d", len(examples))
		}
		ex := examples[opts.example-1]
		opts.prompt = ex.Prompt
		opts.complexity = ex.Complexity
	}

	if opts.prompt == "" {
		return fmt.Errorf("--prompt or --example is required")
	}
	if err := models.ValidateComplexityRange(opts.complexity); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.ConfigureLogging(cfg)

	container, err := newContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	game, err := generate(ctx, container.GameService, opts)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err := fmt.Fprintln(stdout, game.Code)
		return err
	}

	if err := os.WriteFile(opts.out, []byte(game.Code+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	color.Fprintf(stdout, "<green>Game written to %s</> (%d bytes)\n", opts.out, len(game.Code))
	return nil
}

func generate(ctx context.Context, svc services.GameService, opts *generateOptions) (*models.GeneratedGame, error) {
	complexity := opts.complexity
	return svc.GenerateGame(ctx, &models.GenerateGameRequest{
		Prompt:     opts.prompt,
		Complexity: &complexity,
	})
}

func newExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List example prompts",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, ex := range models.ExamplePrompts() {
				color.Fprintf(out, "<cyan>%d.</> <bold>%s</> (complexity %d)\n   %s\n", i+1, ex.Title, ex.Complexity, ex.Prompt)
			}
		},
	}
}
