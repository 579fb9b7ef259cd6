package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"game-generator-api/pkg/lambda"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerMaxAge       = "Access-Control-Max-Age"
	headerContentType  = "Content-Type"
)

// preflightResponse answers a CORS preflight with an empty body
func preflightResponse() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			headerAllowOrigin:  "*",
			headerAllowMethods: "POST, OPTIONS",
			headerAllowHeaders: "Content-Type",
			headerMaxAge:       "86400",
		},
		Body: []byte{},
	}
}

// jsonResponse encodes body as JSON with the permissive CORS origin header.
// HTML is left unescaped since generated games are returned verbatim.
func jsonResponse(statusCode int, body interface{}) *lambda.Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	data := []byte(`{"error":"failed to encode response"}`)
	if err := enc.Encode(body); err != nil {
		statusCode = http.StatusInternalServerError
	} else {
		data = bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers: map[string]string{
			headerAllowOrigin: "*",
			headerContentType: "application/json",
		},
		Body: data,
	}
}

func errorResponse(statusCode int, message string) *lambda.Response {
	return jsonResponse(statusCode, ErrorResponse{Error: message})
}
