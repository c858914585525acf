package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/opsdojo/ent"
	entquestion "github.com/abhisek/opsdojo/ent/question"
)

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Get(ctx context.Context, id string) (*ent.Question, error) {
	q, err := r.client.Question.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	return q, nil
}

// ByLevel returns questions for a level in seq order. An empty domain
// matches any domain (level-range runs carry no domain).
func (r *questionRepo) ByLevel(ctx context.Context, domain string, level int) ([]*ent.Question, error) {
	q := r.client.Question.Query().
		Where(entquestion.Level(level))
	if domain != "" {
		q = q.Where(entquestion.Domain(domain))
	}
	qs, err := q.
		Order(ent.Asc(entquestion.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for %s level %d: %w", domain, level, err)
	}
	return qs, nil
}

func (r *questionRepo) ByIDs(ctx context.Context, ids []string) ([]*ent.Question, error) {
	qs, err := r.client.Question.Query().
		Where(entquestion.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by ids: %w", err)
	}

	byID := make(map[string]*ent.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = q
	}

	// Preserve the caller's order: a retry set replays failures in the
	// order they happened.
	out := make([]*ent.Question, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("question %s not seeded", id)
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *questionRepo) Levels(ctx context.Context, domain string) ([]int, error) {
	levels, err := r.client.Question.Query().
		Where(entquestion.Domain(domain)).
		Unique(true).
		Select(entquestion.FieldLevel).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query levels for %s: %w", domain, err)
	}
	sort.Ints(levels)
	return levels, nil
}
