package store

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Create(ctx context.Context, id string, mode entrun.Mode, meta schema.RunMetadata) (*ent.Run, error) {
	run, err := r.client.Run.Create().
		SetID(id).
		SetMode(mode).
		SetState(entrun.StateRunning).
		SetMetadata(meta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	return run, nil
}

func (r *runRepo) Get(ctx context.Context, id string) (*ent.Run, error) {
	run, err := r.client.Run.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

func (r *runRepo) Update(ctx context.Context, id string, upd RunUpdate) (*ent.Run, error) {
	run, err := r.client.Run.UpdateOneID(id).
		SetState(upd.State).
		SetCursor(upd.Cursor).
		SetQuestionsCompleted(upd.QuestionsCompleted).
		SetQuestionsFailed(upd.QuestionsFailed).
		SetMetadata(upd.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update run %s: %w", id, err)
	}
	return run, nil
}
