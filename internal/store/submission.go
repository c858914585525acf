package store

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entattempt "github.com/abhisek/opsdojo/ent/attempt"
	entmessage "github.com/abhisek/opsdojo/ent/message"
)

type submissionRepo struct {
	client *ent.Client
	seq    *transcriptSequence
}

// Commit writes one graded answer in a single transaction: the attempt
// (attempt_number computed as count+1, so numbers stay gapless even under
// concurrent submissions), the feedback message, and the run row with
// counters recomputed from the full attempt history. The message sequence
// number is allocated before the transaction opens; a rollback leaves a
// gap in the sequence but never breaks its ordering.
func (r *submissionRepo) Commit(ctx context.Context, in SubmissionInput) (*SubmissionResult, error) {
	runID := in.Attempt.RunID

	seqNum, err := r.seq.Next(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submission tx: %w", err)
	}

	n, err := tx.Attempt.Query().
		Where(
			entattempt.RunID(runID),
			entattempt.QuestionID(in.Attempt.QuestionID),
		).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	builder := tx.Attempt.Create().
		SetRunID(runID).
		SetQuestionID(in.Attempt.QuestionID).
		SetAttemptNumber(n + 1).
		SetAnswerText(in.Attempt.AnswerText).
		SetVerdict(entattempt.Verdict(in.Attempt.Verdict)).
		SetSeverity(in.Attempt.Severity)

	if in.Attempt.ErrorType != "" {
		builder = builder.SetErrorType(in.Attempt.ErrorType)
	}

	attempt, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	msg, err := tx.Message.Create().
		SetRunID(runID).
		SetSequence(seqNum).
		SetRole(entmessage.RoleTeacher).
		SetBody(in.Feedback).
		SetStatus("").
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	// Counters are derived sums over the attempt history, recomputed here
	// rather than incrementally patched, with the new attempt included.
	passes, err := tx.Attempt.Query().
		Where(
			entattempt.RunID(runID),
			entattempt.VerdictEQ(entattempt.VerdictPass),
		).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("count pass attempts: %w", err)
	}
	total, err := tx.Attempt.Query().
		Where(entattempt.RunID(runID)).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	run, err := tx.Run.UpdateOneID(runID).
		SetState(in.Run.State).
		SetCursor(in.Run.Cursor).
		SetQuestionsCompleted(passes).
		SetQuestionsFailed(total - passes).
		SetMetadata(in.Run.Metadata).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("update run %s: %w", runID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submission: %w", err)
	}
	return &SubmissionResult{Attempt: attempt, Feedback: msg, Run: run}, nil
}
