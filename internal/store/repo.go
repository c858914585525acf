package store

import (
	"context"

	"github.com/abhisek/opsdojo/ent"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

// RunUpdate carries the mutable fields persisted on each submission.
type RunUpdate struct {
	State              entrun.State
	Cursor             int
	QuestionsCompleted int
	QuestionsFailed    int
	Metadata           schema.RunMetadata
}

// RunRepo manages run records.
type RunRepo interface {
	// Create inserts a new run. The run is created in the running state.
	Create(ctx context.Context, id string, mode entrun.Mode, meta schema.RunMetadata) (*ent.Run, error)

	// Get returns the run by id, or ent.NotFoundError.
	Get(ctx context.Context, id string) (*ent.Run, error)

	// Update persists cursor, counters, state and metadata in one write.
	Update(ctx context.Context, id string, upd RunUpdate) (*ent.Run, error)
}

// QuestionRepo provides read access to seeded curriculum questions.
type QuestionRepo interface {
	// Get returns the question by id, or ent.NotFoundError.
	Get(ctx context.Context, id string) (*ent.Question, error)

	// ByLevel returns all questions for (domain, level) in seq order.
	ByLevel(ctx context.Context, domain string, level int) ([]*ent.Question, error)

	// ByIDs returns questions in the order of ids. Unknown ids are an error.
	ByIDs(ctx context.Context, ids []string) ([]*ent.Question, error)

	// Levels returns the distinct level numbers seeded for a domain, ascending.
	Levels(ctx context.Context, domain string) ([]int, error)
}

// AttemptInput is the payload for recording one graded submission.
type AttemptInput struct {
	RunID      string
	QuestionID string
	AnswerText string
	Verdict    string // "pass" or "fail"
	Severity   string
	ErrorType  string
}

// AttemptRepo provides read access to the append-only attempt ledger.
// Writes go through SubmissionRepo so an attempt is never persisted
// without its feedback and run update.
type AttemptRepo interface {
	// CountFor returns the number of attempts recorded for (run, question).
	CountFor(ctx context.Context, runID, questionID string) (int, error)

	// ListFor returns attempts for (run, question) ordered by attempt_number.
	ListFor(ctx context.Context, runID, questionID string) ([]*ent.Attempt, error)

	// FailedQuestionIDs returns ids of questions a run never passed,
	// in first-attempt order. Input for retry-set runs.
	FailedQuestionIDs(ctx context.Context, runID string) ([]string, error)
}

// RunPatch is the non-derived slice of a run update. Counters are not
// part of it: SubmissionRepo recomputes them from the attempt history
// inside the submission transaction.
type RunPatch struct {
	State    entrun.State
	Cursor   int
	Metadata schema.RunMetadata
}

// SubmissionInput bundles the writes of one graded answer.
type SubmissionInput struct {
	Attempt  AttemptInput
	Feedback string
	Run      RunPatch
}

// SubmissionResult carries the rows written by one submission.
type SubmissionResult struct {
	Attempt  *ent.Attempt
	Feedback *ent.Message
	Run      *ent.Run
}

// SubmissionRepo persists one graded answer: the attempt row, its
// feedback message, and the run row, in a single transaction. A failure
// in any write rolls back all of them.
type SubmissionRepo interface {
	Commit(ctx context.Context, in SubmissionInput) (*SubmissionResult, error)
}

// TranscriptRepo manages the per-run ordered message log.
type TranscriptRepo interface {
	// Append adds a message with the next per-run sequence number.
	Append(ctx context.Context, runID, role, body, status string) (*ent.Message, error)

	// List returns all messages for a run in sequence order.
	List(ctx context.Context, runID string) ([]*ent.Message, error)
}

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRepo provides append and query access to LLM call events.
type LLMEventRepo interface {
	// Append records an LLM API call event.
	Append(ctx context.Context, data LLMEventData) error

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]*ent.LLMEvent, error)
}
