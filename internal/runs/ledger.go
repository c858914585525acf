package runs

import (
	"context"

	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
	"github.com/abhisek/opsdojo/internal/store"
	"github.com/abhisek/opsdojo/internal/validator"
)

// Ledger appends graded submissions to the attempt history. It only
// records; whether an attempt was the last one is the Manager's call.
type Ledger struct {
	attempts    store.AttemptRepo
	submissions store.SubmissionRepo
}

// NewLedger creates a Ledger over the store repos.
func NewLedger(attempts store.AttemptRepo, submissions store.SubmissionRepo) *Ledger {
	return &Ledger{attempts: attempts, submissions: submissions}
}

// NextAttemptNumber returns the number the next attempt for
// (run, question) will take. Stable only while the caller holds the
// run's submission lock.
func (l *Ledger) NextAttemptNumber(ctx context.Context, runID, questionID string) (int, error) {
	n, err := l.attempts.CountFor(ctx, runID, questionID)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// RecordInput is one graded answer plus the run mutation it implies.
type RecordInput struct {
	RunID      string
	QuestionID string
	AnswerText string
	Result     validator.Result
	Feedback   string
	State      entrun.State
	Cursor     int
	Metadata   schema.RunMetadata
}

// Record persists the attempt, its feedback message, and the run row in
// one store transaction, so a crash between writes can never leave an
// attempt on the ledger without its feedback or run update.
func (l *Ledger) Record(ctx context.Context, in RecordInput) (*store.SubmissionResult, error) {
	verdict := "fail"
	if in.Result.IsCorrect {
		verdict = "pass"
	}
	return l.submissions.Commit(ctx, store.SubmissionInput{
		Attempt: store.AttemptInput{
			RunID:      in.RunID,
			QuestionID: in.QuestionID,
			AnswerText: in.AnswerText,
			Verdict:    verdict,
			Severity:   string(in.Result.Severity),
			ErrorType:  string(in.Result.ErrorType),
		},
		Feedback: in.Feedback,
		Run: store.RunPatch{
			State:    in.State,
			Cursor:   in.Cursor,
			Metadata: in.Metadata,
		},
	})
}
