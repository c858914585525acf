package store

import (
	"context"
	"fmt"
	"testing"

	entquestion "github.com/abhisek/opsdojo/ent/question"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRunCreateGetUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	meta := schema.RunMetadata{Domain: "monitoring", LevelNumber: 1}
	run, err := repo.Create(ctx, "run-1", entrun.ModeSingleLevel, meta)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if run.State != entrun.StateRunning {
		t.Errorf("state = %q, want running", run.State)
	}
	if run.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", run.Cursor)
	}

	got, err := repo.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Metadata.Domain != "monitoring" {
		t.Errorf("metadata domain = %q, want monitoring", got.Metadata.Domain)
	}

	upd := RunUpdate{
		State:              entrun.StateCompleted,
		Cursor:             3,
		QuestionsCompleted: 2,
		QuestionsFailed:    4,
		Metadata:           meta,
	}
	updated, err := repo.Update(ctx, "run-1", upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Cursor != 3 || updated.State != entrun.StateCompleted {
		t.Errorf("update not applied: cursor=%d state=%q", updated.Cursor, updated.State)
	}
}

// seedRun creates a run row for submission tests.
func seedRun(t *testing.T, s *Store, id string) {
	t.Helper()
	_, err := s.RunRepo().Create(context.Background(), id, entrun.ModeSingleLevel,
		schema.RunMetadata{Domain: "monitoring", LevelNumber: 1})
	if err != nil {
		t.Fatalf("seed run %s: %v", id, err)
	}
}

// submit records one attempt through the transactional submission path.
func submit(t *testing.T, s *Store, runID, questionID, verdict string) *SubmissionResult {
	t.Helper()
	ctx := context.Background()
	run, err := s.RunRepo().Get(ctx, runID)
	if err != nil {
		t.Fatalf("get run %s: %v", runID, err)
	}
	res, err := s.SubmissionRepo().Commit(ctx, SubmissionInput{
		Attempt: AttemptInput{
			RunID:      runID,
			QuestionID: questionID,
			AnswerText: "CPU load is 42%.",
			Verdict:    verdict,
			Severity:   "SEVERE",
		},
		Feedback: "feedback",
		Run: RunPatch{
			State:    run.State,
			Cursor:   run.Cursor,
			Metadata: run.Metadata,
		},
	})
	if err != nil {
		t.Fatalf("commit submission: %v", err)
	}
	return res
}

func TestAttemptNumbersAreGapless(t *testing.T) {
	s := openTestStore(t)
	seedRun(t, s, "run-1")

	for i := range 3 {
		res := submit(t, s, "run-1", "q-1", "fail")
		if res.Attempt.AttemptNumber != i+1 {
			t.Errorf("attempt number = %d, want %d", res.Attempt.AttemptNumber, i+1)
		}
	}

	// A different question starts its own sequence.
	res := submit(t, s, "run-1", "q-2", "pass")
	if res.Attempt.AttemptNumber != 1 {
		t.Errorf("new question attempt number = %d, want 1", res.Attempt.AttemptNumber)
	}

	// Counters sum attempt verdicts: one pass, three fails.
	if res.Run.QuestionsCompleted != 1 || res.Run.QuestionsFailed != 3 {
		t.Errorf("counters = (%d, %d), want (1, 3)",
			res.Run.QuestionsCompleted, res.Run.QuestionsFailed)
	}
}

func TestSubmissionWritesAtomically(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedRun(t, s, "run-1")

	res := submit(t, s, "run-1", "q-1", "fail")
	if res.Feedback == nil || res.Feedback.Body != "feedback" {
		t.Fatalf("feedback message not written: %+v", res.Feedback)
	}

	// A submission against a missing run fails the run update and must
	// roll back the attempt and feedback writes with it.
	_, err := s.SubmissionRepo().Commit(ctx, SubmissionInput{
		Attempt:  AttemptInput{RunID: "ghost", QuestionID: "q-1", Verdict: "fail", Severity: "SEVERE"},
		Feedback: "orphan",
		Run:      RunPatch{State: entrun.StateRunning},
	})
	if err == nil {
		t.Fatal("expected error for unknown run")
	}

	n, err := s.AttemptRepo().CountFor(ctx, "ghost", "q-1")
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if n != 0 {
		t.Errorf("attempt persisted for rolled-back submission: %d", n)
	}
	msgs, err := s.TranscriptRepo().List(ctx, "ghost")
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("feedback persisted for rolled-back submission: %d messages", len(msgs))
	}
}

func TestFailedQuestionIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedRun(t, s, "r")

	// q-1 fails twice, q-2 fails then passes, q-3 fails once.
	records := []struct{ questionID, verdict string }{
		{"q-1", "fail"},
		{"q-2", "fail"},
		{"q-1", "fail"},
		{"q-2", "pass"},
		{"q-3", "fail"},
	}
	for _, in := range records {
		submit(t, s, "r", in.questionID, in.verdict)
	}

	ids, err := s.AttemptRepo().FailedQuestionIDs(ctx, "r")
	if err != nil {
		t.Fatalf("failed ids: %v", err)
	}
	want := []string{"q-1", "q-3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestTranscriptSequencePerRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.TranscriptRepo()
	ctx := context.Background()

	for i := range 3 {
		m, err := repo.Append(ctx, "run-a", "agent", fmt.Sprintf("msg %d", i), "")
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if m.Sequence != int64(i+1) {
			t.Errorf("run-a sequence = %d, want %d", m.Sequence, i+1)
		}
	}

	// A second run gets its own sequence starting at 1.
	m, err := repo.Append(ctx, "run-b", "system", "hello", "")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if m.Sequence != 1 {
		t.Errorf("run-b sequence = %d, want 1", m.Sequence)
	}

	msgs, err := repo.List(ctx, "run-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	for i, msg := range msgs {
		if msg.Sequence != int64(i+1) {
			t.Errorf("msgs[%d].Sequence = %d, want %d", i, msg.Sequence, i+1)
		}
	}
}

func TestQuestionByIDsPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"q-a", "q-b", "q-c"} {
		_, err := s.Client().Question.Create().
			SetID(id).
			SetDomain("monitoring").
			SetLevel(1).
			SetSeq(i).
			SetPrompt("prompt").
			SetExpectedCategory("CPU_LOAD").
			SetExpectedFormat(entquestion.ExpectedFormatLiteral).
			SetExpectedValue("CPU load is 42%").
			Save(ctx)
		if err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	repo := s.QuestionRepo()
	qs, err := repo.ByIDs(ctx, []string{"q-c", "q-a"})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(qs) != 2 || qs[0].ID != "q-c" || qs[1].ID != "q-a" {
		t.Errorf("order not preserved: %v", []string{qs[0].ID, qs[1].ID})
	}

	if _, err := repo.ByIDs(ctx, []string{"q-a", "q-missing"}); err == nil {
		t.Error("expected error for unseeded question id")
	}

	levels, err := repo.Levels(ctx, "monitoring")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 1 || levels[0] != 1 {
		t.Errorf("levels = %v, want [1]", levels)
	}
}
