package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"game-generator-api/internal/models"
	"game-generator-api/internal/services"
	"game-generator-api/pkg/lambda"
)

// GameHandler handles game generation requests
type GameHandler struct {
	gameService services.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// HandleGenerate maps one request to one response. It never returns an error:
// every failure is rendered as a JSON error body.
func (h *GameHandler) HandleGenerate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	start := time.Now()
	fields := logrus.Fields{
		"request_id": requestID(ctx, req),
		"method":     req.Method,
	}

	resp := h.generate(ctx, req, fields)

	fields["status_code"] = resp.StatusCode
	fields["latency_ms"] = float64(time.Since(start).Nanoseconds()) / 1000000

	entry := logrus.WithFields(fields)
	switch {
	case resp.StatusCode >= 500:
		entry.Error("Game generation failed")
	case resp.StatusCode >= 400:
		entry.Warn("Game generation request rejected")
	default:
		entry.Info("Request completed")
	}

	return resp, nil
}

func (h *GameHandler) generate(ctx context.Context, req *lambda.Request, fields logrus.Fields) *lambda.Response {
	switch req.Method {
	case http.MethodOptions:
		return preflightResponse()
	case http.MethodPost:
	default:
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	body, err := req.DecodedBody()
	if err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidJSON)
	}
	if strings.TrimSpace(string(body)) == "" {
		return errorResponse(http.StatusBadRequest, msgPromptRequired)
	}

	genReq, err := models.DecodeGenerateGameRequest(body)
	if err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidJSON)
	}
	if err := genReq.Validate(); err != nil {
		return errorResponse(http.StatusBadRequest, msgPromptRequired)
	}

	fields["prompt_length"] = len(genReq.Prompt)
	fields["complexity"] = genReq.EffectiveComplexity()

	game, err := h.generateGame(ctx, genReq)
	if err != nil {
		fields["error"] = err.Error()
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	fields["code_length"] = len(game.Code)
	return jsonResponse(http.StatusOK, game)
}

// generateGame turns a panic anywhere below the service into an error
func (h *GameHandler) generateGame(ctx context.Context, req *models.GenerateGameRequest) (game *models.GeneratedGame, err error) {
	defer func() {
		if r := recover(); r != nil {
			game = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	return h.gameService.GenerateGame(ctx, req)
}

// @Summary Generate a game
// @Description Generate a single-file HTML5 game from a text prompt
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.GenerateGameRequest true "Game description"
// @Success 200 {object} models.GeneratedGame
// @Failure 400 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games/generate [post]
func (h *GameHandler) GenerateGame(c *gin.Context) {
	req, err := lambda.FromHTTPRequest(c.Request)
	if err != nil {
		writeResponse(c, errorResponse(http.StatusBadRequest, msgInvalidJSON))
		return
	}

	resp, _ := h.HandleGenerate(c.Request.Context(), req)
	writeResponse(c, resp)
}

// @Summary List example prompts
// @Description Preset prompts with suggested complexity
// @Tags games
// @Produce json
// @Success 200 {array} models.ExamplePrompt
// @Router /games/examples [get]
func (h *GameHandler) ListExamples(c *gin.Context) {
	c.JSON(http.StatusOK, models.ExamplePrompts())
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Status(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = c.Writer.Write(resp.Body)
	}
}

// requestID prefers the Lambda request ID, then X-Request-ID, then a fresh UUID
func requestID(ctx context.Context, req *lambda.Request) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if id := req.Header("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}
