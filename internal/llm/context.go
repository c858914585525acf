package llm

import "context"

// Purpose labels what a request was for. It rides the context so the
// logging decorator can attribute events without widening Generate.
type Purpose string

const (
	// PurposeAnswer marks candidate answer generation by the student agent.
	PurposeAnswer Purpose = "answer"

	// PurposeFeedback marks teacher feedback elaboration.
	PurposeFeedback Purpose = "feedback"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) Purpose {
	if v, ok := ctx.Value(purposeKey).(Purpose); ok {
		return v
	}
	return "unknown"
}
