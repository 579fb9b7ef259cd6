package prompt

import "strings"

const (
	htmlFenceOpen = "```html"
	fence         = "```"
)

// StripCodeFences removes every "```html" marker, then every remaining "```",
// and trims surrounding whitespace. Fences in the middle of the text are removed
// too; the model is asked for bare HTML so any fence is noise.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, htmlFenceOpen, "")
	text = strings.ReplaceAll(text, fence, "")
	return strings.TrimSpace(text)
}
