package handlers

const (
	msgMethodNotAllowed = "Method not allowed"
	msgPromptRequired   = "Prompt is required"
	msgInvalidJSON      = "Invalid JSON in request body"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}
