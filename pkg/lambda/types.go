package lambda

import (
	"encoding/base64"
	"strings"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method          string            `json:"method"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	QueryParams     map[string]string `json:"query_params"`
	Body            []byte            `json:"body"`
	PathParams      map[string]string `json:"path_params"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode      int               `json:"status_code"`
	Headers         map[string]string `json:"headers"`
	Body            []byte            `json:"body"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
}

// DecodedBody returns the request body, base64-decoding it when the gateway
// flagged it as encoded
func (r *Request) DecodedBody() ([]byte, error) {
	if !r.IsBase64Encoded || len(r.Body) == 0 {
		return r.Body, nil
	}
	return base64.StdEncoding.DecodeString(string(r.Body))
}

// Header looks up a request header case-insensitively
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
