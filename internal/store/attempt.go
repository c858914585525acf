package store

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entattempt "github.com/abhisek/opsdojo/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) CountFor(ctx context.Context, runID, questionID string) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(
			entattempt.RunID(runID),
			entattempt.QuestionID(questionID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) ListFor(ctx context.Context, runID, questionID string) ([]*ent.Attempt, error) {
	attempts, err := r.client.Attempt.Query().
		Where(
			entattempt.RunID(runID),
			entattempt.QuestionID(questionID),
		).
		Order(ent.Asc(entattempt.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

func (r *attemptRepo) FailedQuestionIDs(ctx context.Context, runID string) ([]string, error) {
	attempts, err := r.client.Attempt.Query().
		Where(entattempt.RunID(runID)).
		Order(ent.Asc(entattempt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list run attempts: %w", err)
	}

	passed := make(map[string]bool)
	for _, a := range attempts {
		if a.Verdict == entattempt.VerdictPass {
			passed[a.QuestionID] = true
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, a := range attempts {
		if passed[a.QuestionID] || seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true
		out = append(out, a.QuestionID)
	}
	return out, nil
}
