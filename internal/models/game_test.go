package models

import (
	"encoding/json"
	"testing"
)

func TestGenerateGameRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateGameRequest
		wantErr bool
	}{
		{name: "prompt present", req: GenerateGameRequest{Prompt: "a maze game"}},
		{name: "whitespace prompt is accepted", req: GenerateGameRequest{Prompt: "   "}},
		{name: "empty prompt", req: GenerateGameRequest{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEffectiveComplexity(t *testing.T) {
	req := &GenerateGameRequest{Prompt: "snake"}
	if got := req.EffectiveComplexity(); got != DefaultComplexity {
		t.Errorf("Expected default complexity %d, got %d", DefaultComplexity, got)
	}

	// Out-of-range values are passed through unchanged
	seven := 7
	req.Complexity = &seven
	if got := req.EffectiveComplexity(); got != 7 {
		t.Errorf("Expected complexity 7, got %d", got)
	}
}

func TestGeneratedGameJSONFieldOrder(t *testing.T) {
	game := NewGeneratedGame("canvas", "a maze game", 2)

	data, err := json.Marshal(game)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"code":"canvas","prompt":"a maze game","complexity":2}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, string(data))
	}
}

func TestDecodeGenerateGameRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantErr        bool
		wantPrompt     string
		wantComplexity int
	}{
		{name: "prompt only", body: `{"prompt":"snake"}`, wantPrompt: "snake", wantComplexity: DefaultComplexity},
		{name: "with complexity", body: `{"prompt":"snake","complexity":4}`, wantPrompt: "snake", wantComplexity: 4},
		{name: "integral float", body: `{"prompt":"snake","complexity":3.0}`, wantPrompt: "snake", wantComplexity: 3},
		{name: "null values", body: `{"prompt":null,"complexity":null}`, wantComplexity: DefaultComplexity},
		{name: "case mismatch ignored", body: `{"PROMPT":"snake","Complexity":5}`, wantComplexity: DefaultComplexity},
		{name: "exact key wins", body: `{"prompt":"snake","Prompt":""}`, wantPrompt: "snake", wantComplexity: DefaultComplexity},
		{name: "null body", body: `null`, wantComplexity: DefaultComplexity},
		{name: "fractional complexity", body: `{"prompt":"snake","complexity":2.5}`, wantErr: true},
		{name: "string complexity", body: `{"prompt":"snake","complexity":"3"}`, wantErr: true},
		{name: "numeric prompt", body: `{"prompt":1}`, wantErr: true},
		{name: "array body", body: `["snake"]`, wantErr: true},
		{name: "malformed", body: `{"prompt":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeGenerateGameRequest([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Prompt != tt.wantPrompt {
				t.Errorf("Prompt = %q, want %q", req.Prompt, tt.wantPrompt)
			}
			if got := req.EffectiveComplexity(); got != tt.wantComplexity {
				t.Errorf("EffectiveComplexity() = %d, want %d", got, tt.wantComplexity)
			}
		})
	}
}

func TestValidateComplexityRange(t *testing.T) {
	for _, c := range []int{MinComplexity, 3, MaxComplexity} {
		if err := ValidateComplexityRange(c); err != nil {
			t.Errorf("Expected complexity %d to be valid: %v", c, err)
		}
	}
	for _, c := range []int{0, -1, 6} {
		if err := ValidateComplexityRange(c); err == nil {
			t.Errorf("Expected complexity %d to be rejected", c)
		}
	}
}

func TestExamplePrompts(t *testing.T) {
	examples := ExamplePrompts()
	if len(examples) != 6 {
		t.Fatalf("Expected 6 example prompts, got %d", len(examples))
	}

	for _, ex := range examples {
		if ex.Title == "" || ex.Prompt == "" {
			t.Errorf("Example has empty field: %+v", ex)
		}
		if err := ValidateComplexityRange(ex.Complexity); err != nil {
			t.Errorf("Example %q: %v", ex.Title, err)
		}
	}
}
