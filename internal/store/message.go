package store

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entmessage "github.com/abhisek/opsdojo/ent/message"
)

type transcriptRepo struct {
	client *ent.Client
	seq    *transcriptSequence
}

func (r *transcriptRepo) Append(ctx context.Context, runID, role, body, status string) (*ent.Message, error) {
	seqNum, err := r.seq.Next(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	msg, err := r.client.Message.Create().
		SetRunID(runID).
		SetSequence(seqNum).
		SetRole(entmessage.Role(role)).
		SetBody(body).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return msg, nil
}

func (r *transcriptRepo) List(ctx context.Context, runID string) ([]*ent.Message, error) {
	msgs, err := r.client.Message.Query().
		Where(entmessage.RunID(runID)).
		Order(ent.Asc(entmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
