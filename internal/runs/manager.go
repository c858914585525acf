// Package runs owns the run lifecycle: creation, question sequencing,
// answer grading, retry/advance decisions, and termination.
package runs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/opsdojo/ent"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/store"
	"github.com/abhisek/opsdojo/internal/validator"
)

// DefaultMaxAttempts is the at-most-N-attempts policy: after the fifth
// fail on a question the answer is revealed and the cursor advances.
const DefaultMaxAttempts = 5

// SubmitResult is the outcome of one submission, returned to the caller.
// Validation outcomes live here as data; only state and infrastructure
// problems surface as errors.
type SubmitResult struct {
	Correct       bool                `json:"correct"`
	Severity      validator.Severity  `json:"severity"`
	ErrorType     validator.ErrorType `json:"errorType,omitempty"`
	AttemptNumber int                 `json:"attemptNumber"`
	MaxAttempts   int                 `json:"maxAttempts"`
	ShouldAdvance bool                `json:"shouldAdvance"`
	CanRetry      bool                `json:"canRetry"`
	Feedback      string              `json:"feedback"`
	RunState      string              `json:"runState"`
}

// Manager orchestrates runs. All state transitions of a run go through it;
// nothing else mutates run rows.
type Manager struct {
	runs       store.RunRepo
	questions  store.QuestionRepo
	transcript store.TranscriptRepo
	attempts   store.AttemptRepo

	sequencer *Sequencer
	ledger    *Ledger
	composer  *feedback.Composer

	maxAttempts int

	// Per-run serialization point: concurrent submissions to the same run
	// must not interleave attempt numbers or transcript order.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Options tunes Manager policy.
type Options struct {
	// MaxAttempts overrides DefaultMaxAttempts when > 0.
	MaxAttempts int
}

// NewManager wires a Manager over the store repos.
func NewManager(s *store.Store, composer *feedback.Composer, opts Options) *Manager {
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	questions := s.QuestionRepo()
	attempts := s.AttemptRepo()
	return &Manager{
		runs:        s.RunRepo(),
		questions:   questions,
		transcript:  s.TranscriptRepo(),
		attempts:    attempts,
		sequencer:   NewSequencer(questions),
		ledger:      NewLedger(attempts, s.SubmissionRepo()),
		composer:    composer,
		maxAttempts: maxAttempts,
		locks:       make(map[string]*sync.Mutex),
	}
}

// MaxAttempts returns the per-question attempt cap.
func (m *Manager) MaxAttempts() int {
	return m.maxAttempts
}

// StartRun creates a single-level run for a domain. The run starts in the
// running state; the first question comes from NextQuestion.
func (m *Manager) StartRun(ctx context.Context, domain string, level int) (*ent.Run, error) {
	// Fail early on unseeded levels rather than at the first submission.
	qs, err := m.questions.ByLevel(ctx, domain, level)
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("domain %s level %d: %w", domain, level, ErrNoQuestions)
	}

	meta := schema.RunMetadata{Domain: domain, LevelNumber: level}
	run, err := m.runs.Create(ctx, uuid.New().String(), entrun.ModeSingleLevel, meta)
	if err != nil {
		return nil, err
	}

	m.announce(ctx, run.ID, fmt.Sprintf("Run started: domain %s, level %d.", domain, level))
	return run, nil
}

// StartAutoRun creates a level-range run spanning [startLevel, endLevel].
// The run has no domain; levels advance on mastery and the run completes
// itself past endLevel.
func (m *Manager) StartAutoRun(ctx context.Context, startLevel, endLevel int) (*ent.Run, error) {
	if startLevel < 1 || endLevel < startLevel {
		return nil, fmt.Errorf("invalid level range %d..%d", startLevel, endLevel)
	}
	qs, err := m.questions.ByLevel(ctx, "", startLevel)
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("level %d: %w", startLevel, ErrNoQuestions)
	}

	meta := schema.RunMetadata{
		StartLevel:   startLevel,
		EndLevel:     endLevel,
		CurrentLevel: startLevel,
		AutoMode:     true,
	}
	run, err := m.runs.Create(ctx, uuid.New().String(), entrun.ModeLevelRange, meta)
	if err != nil {
		return nil, err
	}

	m.announce(ctx, run.ID, fmt.Sprintf("Auto run started: levels %d through %d.", startLevel, endLevel))
	return run, nil
}

// StartRetrySet creates a run that replays previously failed questions in
// the order given.
func (m *Manager) StartRetrySet(ctx context.Context, questionIDs []string) (*ent.Run, error) {
	if len(questionIDs) == 0 {
		return nil, fmt.Errorf("retry set: %w", ErrNoQuestions)
	}
	// Resolve up front so a bad id fails the start, not the first answer.
	if _, err := m.questions.ByIDs(ctx, questionIDs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuestionNotFound, err)
	}

	meta := schema.RunMetadata{RetryIDs: questionIDs}
	run, err := m.runs.Create(ctx, uuid.New().String(), entrun.ModeRetrySet, meta)
	if err != nil {
		return nil, err
	}

	m.announce(ctx, run.ID, fmt.Sprintf("Retry set started: %d questions.", len(questionIDs)))
	return run, nil
}

// GetRun returns the run by id.
func (m *Manager) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	run, err := m.runs.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	return run, nil
}

// NextQuestion returns the question at the run's cursor.
func (m *Manager) NextQuestion(ctx context.Context, runID string) (*ent.Question, int, error) {
	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return nil, 0, err
	}
	if run.State != entrun.StateRunning {
		return nil, 0, fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}
	return m.sequencer.Next(ctx, run)
}

// NextTwoQuestions returns the two-question lookahead at the run's cursor.
func (m *Manager) NextTwoQuestions(ctx context.Context, runID string) ([2]*ent.Question, [2]int, error) {
	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return [2]*ent.Question{}, [2]int{}, err
	}
	if run.State != entrun.StateRunning {
		return [2]*ent.Question{}, [2]int{}, fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}
	return m.sequencer.NextTwo(ctx, run)
}

// SubmitAnswer grades one submission and applies the advancement law:
// the cursor advances iff the answer passed or the attempt cap is hit.
func (m *Manager) SubmitAnswer(ctx context.Context, runID, questionID, answerText string) (*SubmitResult, error) {
	lock := m.runLock(runID)
	lock.Lock()
	defer lock.Unlock()

	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.State != entrun.StateRunning {
		return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}

	question, err := m.questions.Get(ctx, questionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("question %s: %w", questionID, ErrQuestionNotFound)
		}
		return nil, err
	}

	// Raw answer goes on the transcript before grading.
	if _, err := m.transcript.Append(ctx, runID, "agent", answerText, "pending-validation"); err != nil {
		return nil, err
	}

	res := validator.Validate(answerText, validator.Spec{
		ExpectedCategory: validator.Category(question.ExpectedCategory),
		ExpectedFormat:   string(question.ExpectedFormat),
	})

	// The run lock keeps this number stable until the ledger write below.
	attemptNumber, err := m.ledger.NextAttemptNumber(ctx, runID, questionID)
	if err != nil {
		return nil, err
	}

	fb := m.composer.Compose(ctx, question, res, attemptNumber, m.maxAttempts)

	shouldAdvance := res.IsCorrect || attemptNumber >= m.maxAttempts

	state := run.State
	cursor := run.Cursor
	meta := run.Metadata
	var notes []string
	if shouldAdvance {
		cursor++
		if meta.AutoMode {
			state, meta, notes, err = m.advanceLevel(ctx, run, meta, state, questionID, res.IsCorrect)
			if err != nil {
				return nil, err
			}
		}
	}

	// Attempt, feedback, and run update land in one transaction; counters
	// are recomputed from the attempt history inside it.
	rec, err := m.ledger.Record(ctx, RecordInput{
		RunID:      runID,
		QuestionID: questionID,
		AnswerText: answerText,
		Result:     res,
		Feedback:   fb,
		State:      state,
		Cursor:     cursor,
		Metadata:   meta,
	})
	if err != nil {
		return nil, err
	}

	// Level announcements only after the submission committed.
	for _, n := range notes {
		m.announce(ctx, runID, n)
	}
	if rec.Run.State != entrun.StateRunning {
		m.releaseLock(runID)
	}

	slog.Debug("answer submitted",
		"run", runID,
		"question", questionID,
		"correct", res.IsCorrect,
		"attempt", rec.Attempt.AttemptNumber,
		"advance", shouldAdvance)

	return &SubmitResult{
		Correct:       res.IsCorrect,
		Severity:      res.Severity,
		ErrorType:     res.ErrorType,
		AttemptNumber: rec.Attempt.AttemptNumber,
		MaxAttempts:   m.maxAttempts,
		ShouldAdvance: shouldAdvance,
		CanRetry:      !res.IsCorrect && rec.Attempt.AttemptNumber < m.maxAttempts,
		Feedback:      fb,
		RunState:      string(rec.Run.State),
	}, nil
}

// StopRun completes a run. Completed and failed runs stay terminal:
// stopping one again is a state error.
func (m *Manager) StopRun(ctx context.Context, runID string) (*ent.Run, error) {
	lock := m.runLock(runID)
	lock.Lock()
	defer lock.Unlock()

	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.State != entrun.StateRunning {
		return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}

	updated, err := m.runs.Update(ctx, runID, store.RunUpdate{
		State:              entrun.StateCompleted,
		Cursor:             run.Cursor,
		QuestionsCompleted: run.QuestionsCompleted,
		QuestionsFailed:    run.QuestionsFailed,
		Metadata:           run.Metadata,
	})
	if err != nil {
		return nil, err
	}

	m.announce(ctx, runID, "Run stopped.")
	m.releaseLock(runID)
	return updated, nil
}

// FailRun marks a run failed after an unrecoverable error in an adjacent
// subsystem. Terminal like completed; nothing resurrects it.
func (m *Manager) FailRun(ctx context.Context, runID string, cause error) (*ent.Run, error) {
	lock := m.runLock(runID)
	lock.Lock()
	defer lock.Unlock()

	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.State != entrun.StateRunning {
		return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}

	updated, err := m.runs.Update(ctx, runID, store.RunUpdate{
		State:              entrun.StateFailed,
		Cursor:             run.Cursor,
		QuestionsCompleted: run.QuestionsCompleted,
		QuestionsFailed:    run.QuestionsFailed,
		Metadata:           run.Metadata,
	})
	if err != nil {
		return nil, err
	}

	m.announce(ctx, runID, fmt.Sprintf("Run failed: %v", cause))
	m.releaseLock(runID)
	return updated, nil
}

// FailedQuestionIDs lists the questions a run never passed, for seeding a
// retry set.
func (m *Manager) FailedQuestionIDs(ctx context.Context, runID string) ([]string, error) {
	if _, err := m.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	return m.attempts.FailedQuestionIDs(ctx, runID)
}

// RunQuestions returns the run's active question set in sequence order.
func (m *Manager) RunQuestions(ctx context.Context, runID string) ([]*ent.Question, error) {
	run, err := m.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return m.sequencer.questionsFor(ctx, run)
}

// Transcript returns the run's full ordered message log.
func (m *Manager) Transcript(ctx context.Context, runID string) ([]*ent.Message, error) {
	if _, err := m.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	return m.transcript.List(ctx, runID)
}

// advanceLevel applies auto-mode mastery: when every question in the
// current level has at least one pass, the level increments; past
// EndLevel the run completes itself. The submission being graded is not
// on the ledger yet, so (pendingID, pendingPass) stands in for it.
// Announcements are returned for the caller to emit after the
// submission commits.
func (m *Manager) advanceLevel(ctx context.Context, run *ent.Run, meta schema.RunMetadata, state entrun.State, pendingID string, pendingPass bool) (entrun.State, schema.RunMetadata, []string, error) {
	qs, err := m.questions.ByLevel(ctx, meta.Domain, meta.CurrentLevel)
	if err != nil {
		return state, meta, nil, err
	}

	for _, q := range qs {
		if q.ID == pendingID && pendingPass {
			continue
		}
		attempts, err := m.attempts.ListFor(ctx, run.ID, q.ID)
		if err != nil {
			return state, meta, nil, err
		}
		passed := false
		for _, a := range attempts {
			if a.Verdict == "pass" {
				passed = true
				break
			}
		}
		if !passed {
			return state, meta, nil, nil
		}
	}

	meta.CurrentLevel++
	notes := []string{fmt.Sprintf("Level mastered. Advancing to level %d.", meta.CurrentLevel)}

	if meta.CurrentLevel > meta.EndLevel {
		state = entrun.StateCompleted
		notes = append(notes, "All levels complete. Run finished.")
	}
	return state, meta, notes, nil
}

// announce appends a system message; transcript failures never abort the
// operation that triggered them.
func (m *Manager) announce(ctx context.Context, runID, body string) {
	if _, err := m.transcript.Append(ctx, runID, "system", body, ""); err != nil {
		slog.Warn("transcript append failed", "run", runID, "error", err)
	}
}

// runLock returns the serialization mutex for a run.
func (m *Manager) runLock(runID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[runID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[runID] = lock
	}
	return lock
}

// releaseLock drops a run's mutex once the run is terminal, so a
// long-lived process doesn't accumulate one entry per run ever touched.
// A caller racing the terminal transition re-creates the entry, but the
// state check rejects it before any write.
func (m *Manager) releaseLock(runID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, runID)
}
