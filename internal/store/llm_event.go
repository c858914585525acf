package store

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entllmevent "github.com/abhisek/opsdojo/ent/llmevent"
)

type llmEventRepo struct {
	client *ent.Client
}

func (r *llmEventRepo) Append(ctx context.Context, data LLMEventData) error {
	_, err := r.client.LLMEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Recent(ctx context.Context, limit int) ([]*ent.LLMEvent, error) {
	q := r.client.LLMEvent.Query().
		Order(ent.Desc(entllmevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	return events, nil
}
