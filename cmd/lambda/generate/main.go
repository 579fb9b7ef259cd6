package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"game-generator-api/internal/config"
	"game-generator-api/internal/handlers"
	"game-generator-api/pkg/lambda"
)

var connections *lambda.ConnectionManager

func init() {
	cfg := loadConfig()

	sc := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function_name": sc.FunctionName,
		"region":        sc.Region,
		"stage":         sc.Stage,
		"model":         cfg.Gemini.Model,
	}).Info("Cold start")

	connections = lambda.GetConnectionManager()
	if err := connections.Initialize(cfg); err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

// loadConfig never fails: an invalid environment falls back to defaults so
// every invocation still gets a response with CORS headers.
func loadConfig() *config.Config {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		cfg = config.AdaptConfigForServerless(config.Defaults(), config.IsServerlessMode())
		config.ConfigureLogging(cfg)
		logrus.WithError(err).Warn("Invalid configuration, falling back to defaults")
		return cfg
	}

	config.ConfigureLogging(cfg)
	return cfg
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := connections.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to get service container")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers: map[string]string{
				"Access-Control-Allow-Origin": "*",
				"Content-Type":                "application/json",
			},
			Body: `{"error": "Internal server error"}`,
		}, nil
	}

	gameHandler := handlers.NewGameHandler(container.GameService)

	resp, _ := gameHandler.HandleGenerate(ctx, lambda.FromAPIGatewayProxyRequest(event))
	return lambda.ToAPIGatewayProxyResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
