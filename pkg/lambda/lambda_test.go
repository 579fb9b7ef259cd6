package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"game-generator-api/internal/config"
)

func TestDecodedBody(t *testing.T) {
	plain := &Request{Body: []byte(`{"prompt":"snake"}`)}
	body, err := plain.DecodedBody()
	if err != nil || string(body) != `{"prompt":"snake"}` {
		t.Errorf("Expected plain body, got %q, %v", body, err)
	}

	encoded := &Request{
		Body:            []byte(base64.StdEncoding.EncodeToString([]byte(`{"prompt":"pong"}`))),
		IsBase64Encoded: true,
	}
	body, err = encoded.DecodedBody()
	if err != nil || string(body) != `{"prompt":"pong"}` {
		t.Errorf("Expected decoded body, got %q, %v", body, err)
	}

	broken := &Request{Body: []byte("%%%"), IsBase64Encoded: true}
	if _, err := broken.DecodedBody(); err == nil {
		t.Error("Expected error for invalid base64")
	}
}

func TestHeader(t *testing.T) {
	req := &Request{Headers: map[string]string{"x-request-id": "abc"}}

	if got := req.Header("X-Request-ID"); got != "abc" {
		t.Errorf("Header() = %q, want abc", got)
	}
	if got := req.Header("Content-Type"); got != "" {
		t.Errorf("Header() = %q, want empty", got)
	}
}

func TestAPIGatewayConversion(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/generate-game",
		Headers:         map[string]string{"Content-Type": "application/json"},
		Body:            `{"prompt":"snake"}`,
		IsBase64Encoded: false,
	}

	req := FromAPIGatewayProxyRequest(event)
	if req.Method != "POST" || req.Path != "/generate-game" {
		t.Errorf("Unexpected request: %+v", req)
	}
	if string(req.Body) != event.Body {
		t.Errorf("Body = %q, want %q", req.Body, event.Body)
	}

	resp := ToAPIGatewayProxyResponse(&Response{
		StatusCode: 405,
		Headers:    map[string]string{"Access-Control-Allow-Origin": "*"},
		Body:       []byte(`{"error":"Method not allowed"}`),
	})
	if resp.StatusCode != 405 || resp.Body != `{"error":"Method not allowed"}` || resp.IsBase64Encoded {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("CORS header lost in conversion")
	}
}

func TestFromHTTPRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/games/generate?debug=1", bytes.NewBufferString(`{"prompt":"maze"}`))
	r.Header.Set("Content-Type", "application/json")

	req, err := FromHTTPRequest(r)
	if err != nil {
		t.Fatalf("FromHTTPRequest failed: %v", err)
	}

	if req.Method != "POST" || req.Path != "/api/v1/games/generate" {
		t.Errorf("Unexpected request: %+v", req)
	}
	if string(req.Body) != `{"prompt":"maze"}` {
		t.Errorf("Body = %q", req.Body)
	}
	if req.Header("content-type") != "application/json" {
		t.Errorf("Content-Type header = %q", req.Header("content-type"))
	}
	if req.QueryParams["debug"] != "1" {
		t.Errorf("Query param debug = %q", req.QueryParams["debug"])
	}
}

func TestConnectionManager(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return &config.Config{Environment: "test", Gemini: config.GeminiConfig{Model: config.DefaultGeminiModel}}, nil
	})

	if cm.IsHealthy() {
		t.Error("Uninitialized manager should not be healthy")
	}

	first, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}
	second, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}

	if first != second {
		t.Error("Expected the same container on warm invocations")
	}
	if loads != 1 {
		t.Errorf("Expected config to load once, loaded %d times", loads)
	}
	if !cm.IsHealthy() {
		t.Error("Initialized manager should be healthy")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if cm.IsHealthy() {
		t.Error("Manager should not be healthy after cleanup")
	}
}

func TestConnectionManagerConfigError(t *testing.T) {
	cm := NewConnectionManager(func() (*config.Config, error) {
		return nil, errors.New("bad config")
	})

	if _, err := cm.GetContainer(context.Background()); err == nil {
		t.Error("Expected config error to propagate")
	}
}
