package runs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	entquestion "github.com/abhisek/opsdojo/ent/question"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/store"
	"github.com/abhisek/opsdojo/internal/validator"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewManager(s, feedback.New(), Options{}), s
}

func seedQuestion(t *testing.T, s *store.Store, id, domain string, level, seq int, category, value string) {
	t.Helper()
	_, err := s.Client().Question.Create().
		SetID(id).
		SetDomain(domain).
		SetLevel(level).
		SetSeq(seq).
		SetPrompt("Report the metric.").
		SetExpectedCategory(category).
		SetExpectedFormat(entquestion.ExpectedFormatLiteral).
		SetExpectedValue(value).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed question %s: %v", id, err)
	}
}

func TestStartRunUnseededLevel(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.StartRun(ctx, "monitoring", 7)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestStartRunAndNextQuestion(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if run.State != entrun.StateRunning {
		t.Errorf("state = %q, want running", run.State)
	}

	q, idx, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.ID != "q-1" || idx != 0 {
		t.Errorf("next = (%s, %d), want (q-1, 0)", q.ID, idx)
	}

	pair, idxs, err := m.NextTwoQuestions(ctx, run.ID)
	if err != nil {
		t.Fatalf("next two: %v", err)
	}
	if pair[0].ID != "q-1" || pair[1].ID != "q-2" {
		t.Errorf("pair = (%s, %s), want (q-1, q-2)", pair[0].ID, pair[1].ID)
	}
	if idxs != [2]int{0, 1} {
		t.Errorf("idxs = %v, want [0 1]", idxs)
	}
}

func TestSubmitCorrectAdvancesCursor(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	res, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Fatalf("correct = false, feedback: %s", res.Feedback)
	}
	if !res.ShouldAdvance || res.CanRetry {
		t.Errorf("advance = %v, canRetry = %v, want true/false", res.ShouldAdvance, res.CanRetry)
	}
	if res.AttemptNumber != 1 {
		t.Errorf("attempt = %d, want 1", res.AttemptNumber)
	}

	q, _, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.ID != "q-2" {
		t.Errorf("next after advance = %s, want q-2", q.ID)
	}

	got, err := m.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.QuestionsCompleted != 1 || got.QuestionsFailed != 0 {
		t.Errorf("counters = %d/%d, want 1/0", got.QuestionsCompleted, got.QuestionsFailed)
	}
}

func TestSubmitIncorrectRetries(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	res, err := m.SubmitAnswer(ctx, run.ID, "q-1", "Memory usage is 42%")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Fatal("category mismatch graded correct")
	}
	if res.ErrorType != validator.ErrorWrongCategory {
		t.Errorf("errorType = %s, want WRONG_CATEGORY", res.ErrorType)
	}
	if res.ShouldAdvance || !res.CanRetry {
		t.Errorf("advance = %v, canRetry = %v, want false/true", res.ShouldAdvance, res.CanRetry)
	}

	// Same question comes back; cursor is unchanged.
	q, _, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.ID != "q-1" {
		t.Errorf("question after fail = %s, want q-1", q.ID)
	}

	res, err = m.SubmitAnswer(ctx, run.ID, "q-1", "Disk usage is 90%")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if res.AttemptNumber != 2 {
		t.Errorf("attempt = %d, want 2", res.AttemptNumber)
	}
}

func TestSubmitExhaustionAdvances(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	var res *SubmitResult
	for i := 0; i < m.MaxAttempts(); i++ {
		res, err = m.SubmitAnswer(ctx, run.ID, "q-1", "Memory usage is 42%")
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}
	if res.Correct {
		t.Fatal("final attempt graded correct")
	}
	if !res.ShouldAdvance || res.CanRetry {
		t.Errorf("advance = %v, canRetry = %v after exhaustion, want true/false", res.ShouldAdvance, res.CanRetry)
	}
	if !strings.Contains(res.Feedback, "CPU load is 42%") {
		t.Errorf("exhaustion feedback does not reveal answer: %s", res.Feedback)
	}

	q, _, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.ID != "q-2" {
		t.Errorf("question after exhaustion = %s, want q-2", q.ID)
	}

	got, err := m.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.QuestionsFailed != m.MaxAttempts() {
		t.Errorf("questionsFailed = %d, want %d", got.QuestionsFailed, m.MaxAttempts())
	}
}

func TestCountersAreVerdictSums(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	// Three fails then a pass on the same question: the counters sum
	// attempt verdicts, not question outcomes.
	for i := 0; i < 3; i++ {
		if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "Memory usage is 42%"); err != nil {
			t.Fatalf("submit fail %d: %v", i+1, err)
		}
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%"); err != nil {
		t.Fatalf("submit pass: %v", err)
	}

	got, err := m.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.QuestionsCompleted != 1 || got.QuestionsFailed != 3 {
		t.Errorf("counters = %d/%d, want 1/3", got.QuestionsCompleted, got.QuestionsFailed)
	}
}

func TestSubmitUnknownRunAndQuestion(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	_, err := m.SubmitAnswer(ctx, "no-such-run", "q-1", "CPU load is 42%")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	_, err = m.SubmitAnswer(ctx, run.ID, "no-such-question", "CPU load is 42%")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestStopRunIsTerminal(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	stopped, err := m.StopRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stopped.State != entrun.StateCompleted {
		t.Errorf("state = %q, want completed", stopped.State)
	}

	if _, err := m.StopRun(ctx, run.ID); !errors.Is(err, ErrRunNotActive) {
		t.Errorf("second stop err = %v, want ErrRunNotActive", err)
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%"); !errors.Is(err, ErrRunNotActive) {
		t.Errorf("submit after stop err = %v, want ErrRunNotActive", err)
	}
	if _, _, err := m.NextQuestion(ctx, run.ID); !errors.Is(err, ErrRunNotActive) {
		t.Errorf("next after stop err = %v, want ErrRunNotActive", err)
	}
}

func TestTerminalRunsDropTheirLock(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := m.StopRun(ctx, run.ID); err != nil {
		t.Fatalf("stop: %v", err)
	}

	failing, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start second run: %v", err)
	}
	if _, err := m.FailRun(ctx, failing.ID, errors.New("provider unreachable")); err != nil {
		t.Fatalf("fail run: %v", err)
	}

	m.mu.Lock()
	n := len(m.locks)
	m.mu.Unlock()
	if n != 0 {
		t.Errorf("locks retained for terminal runs: %d entries", n)
	}
}

func TestTranscriptOrder(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "The CPU is busy"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	msgs, err := m.Transcript(ctx, run.ID)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	// system (run started), agent (raw answer), teacher (feedback)
	if len(msgs) != 3 {
		t.Fatalf("len(msgs) = %d, want 3", len(msgs))
	}
	roles := []string{string(msgs[0].Role), string(msgs[1].Role), string(msgs[2].Role)}
	want := []string{"system", "agent", "teacher"}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("msgs[%d].Role = %s, want %s", i, roles[i], want[i])
		}
	}
	if msgs[1].Body != "The CPU is busy" {
		t.Errorf("agent message body = %q, want raw answer", msgs[1].Body)
	}
	if msgs[1].Status != "pending-validation" {
		t.Errorf("agent message status = %q, want pending-validation", msgs[1].Status)
	}
}

func TestRetrySetRun(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")
	seedQuestion(t, s, "q-3", "monitoring", 2, 0, "DISK_USAGE", "Disk usage is 90%")

	run, err := m.StartRetrySet(ctx, []string{"q-3", "q-1"})
	if err != nil {
		t.Fatalf("start retry set: %v", err)
	}

	q, _, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q.ID != "q-3" {
		t.Errorf("first retry question = %s, want q-3", q.ID)
	}

	if _, err := m.SubmitAnswer(ctx, run.ID, "q-3", "Disk usage is 90%"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q, _, err = m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q.ID != "q-1" {
		t.Errorf("second retry question = %s, want q-1", q.ID)
	}

	if _, err := m.StartRetrySet(ctx, nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty retry set err = %v, want ErrNoQuestions", err)
	}
	if _, err := m.StartRetrySet(ctx, []string{"q-missing"}); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("unknown id err = %v, want ErrQuestionNotFound", err)
	}
}

func TestAutoRunLevelAdvancement(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")
	seedQuestion(t, s, "q-3", "monitoring", 2, 0, "DISK_USAGE", "Disk usage is 90%")

	run, err := m.StartAutoRun(ctx, 1, 2)
	if err != nil {
		t.Fatalf("start auto run: %v", err)
	}

	// Passing one of two level-1 questions does not master the level.
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%"); err != nil {
		t.Fatalf("submit q-1: %v", err)
	}
	got, err := m.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.Metadata.CurrentLevel != 1 {
		t.Errorf("currentLevel = %d after partial pass, want 1", got.Metadata.CurrentLevel)
	}

	// Passing the second masters level 1 and advances to level 2.
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-2", "Memory usage is 71%"); err != nil {
		t.Fatalf("submit q-2: %v", err)
	}
	got, err = m.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.Metadata.CurrentLevel != 2 {
		t.Errorf("currentLevel = %d, want 2", got.Metadata.CurrentLevel)
	}
	if got.State != entrun.StateRunning {
		t.Errorf("state = %q, want running", got.State)
	}

	q, _, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next in level 2: %v", err)
	}
	if q.ID != "q-3" {
		t.Errorf("level-2 question = %s, want q-3", q.ID)
	}

	// Mastering the final level completes the run.
	res, err := m.SubmitAnswer(ctx, run.ID, "q-3", "Disk usage is 90%")
	if err != nil {
		t.Fatalf("submit q-3: %v", err)
	}
	if res.RunState != string(entrun.StateCompleted) {
		t.Errorf("runState = %s, want completed", res.RunState)
	}

	_, err = m.StartAutoRun(ctx, 3, 1)
	if err == nil {
		t.Error("expected error for inverted level range")
	}
}

func TestFailedQuestionIDs(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	for i := 0; i < m.MaxAttempts(); i++ {
		if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "Disk usage is 10%"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-2", "Memory usage is 71%"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	failed, err := m.FailedQuestionIDs(ctx, run.ID)
	if err != nil {
		t.Fatalf("failed ids: %v", err)
	}
	if len(failed) != 1 || failed[0] != "q-1" {
		t.Errorf("failed = %v, want [q-1]", failed)
	}
}

func TestSequencerWrapsAround(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", "monitoring", 1, 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	answers := map[string]string{
		"q-1": "CPU load is 42%",
		"q-2": "Memory usage is 71%",
	}
	for i := 0; i < 3; i++ {
		q, _, err := m.NextQuestion(ctx, run.ID)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if _, err := m.SubmitAnswer(ctx, run.ID, q.ID, answers[q.ID]); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	// Cursor 3 mod 2 wraps back to the second question.
	q, idx, err := m.NextQuestion(ctx, run.ID)
	if err != nil {
		t.Fatalf("next after wrap: %v", err)
	}
	if q.ID != "q-2" || idx != 1 {
		t.Errorf("wrapped = (%s, %d), want (q-2, 1)", q.ID, idx)
	}
}

func TestFailRun(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", "monitoring", 1, 0, "CPU_LOAD", "CPU load is 42%")

	run, err := m.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	failed, err := m.FailRun(ctx, run.ID, errors.New("provider unreachable"))
	if err != nil {
		t.Fatalf("fail run: %v", err)
	}
	if failed.State != entrun.StateFailed {
		t.Errorf("state = %q, want failed", failed.State)
	}
	if _, err := m.SubmitAnswer(ctx, run.ID, "q-1", "CPU load is 42%"); !errors.Is(err, ErrRunNotActive) {
		t.Errorf("submit after fail err = %v, want ErrRunNotActive", err)
	}
}
