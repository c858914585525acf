package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var answerSchema = &Schema{
	Name:        "candidate-answer-test",
	Description: "A single literal answer sentence",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestSchemaValidate_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "CPU load is 42%."}`)
	if err := answerSchema.Validate(raw); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestSchemaValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"other": 1}`)
	err := answerSchema.Validate(raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestSchemaValidate_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := answerSchema.Validate(raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "watson"}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
}
