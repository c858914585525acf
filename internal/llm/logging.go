package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/opsdojo/internal/store"
)

// LoggingProvider is a decorator that measures latency and records every
// LLM request as a store event.
type LoggingProvider struct {
	inner  Provider
	events store.LLMEventRepo
}

// WithLogging wraps a Provider with latency measurement and event logging.
// The event repo may be nil (e.g. in tests); latency is still measured.
func WithLogging(p Provider, events store.LLMEventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   string(purpose),
		LatencyMs: latencyMs,
		Success:   err == nil,
	}

	if resp != nil {
		resp.LatencyMs = latencyMs
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the request because logging failed.
	if l.events != nil {
		if logErr := l.events.Append(ctx, data); logErr != nil {
			slog.Warn("failed to log LLM event", "error", logErr)
		}
	}

	slog.Debug("llm request",
		"purpose", purpose,
		"model", data.Model,
		"latency_ms", latencyMs,
		"success", err == nil)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
