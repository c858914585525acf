package llm

import (
	"context"
	"encoding/json"
	"strconv"
)

// Provider is the abstraction over the external text-generation service.
// It is never on the grading path: verdicts come from the deterministic
// validator, providers only produce candidate answers and feedback prose.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the response. When
	// the request carries a Schema the content is JSON validated against
	// it; otherwise the content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM. Generation here is always
// single-turn: prior context (like rejected-answer feedback) is folded
// into the prompt by the caller, not carried as conversation history.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Prompt is the user turn.
	Prompt string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it via its native structured output mechanism.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// LatencyMs is the wall-clock duration of the call, set by the
	// logging decorator.
	LatencyMs int64
}

// Text returns the response content as plain text, unquoting it when the
// provider wrapped it as a JSON string.
func (r *Response) Text() string {
	raw := string(r.Content)
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return raw
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
