package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/opsdojo/ent"
	entquestion "github.com/abhisek/opsdojo/ent/question"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/runs"
	"github.com/abhisek/opsdojo/internal/store"
)

func answerJSON(answer string) json.RawMessage {
	b, _ := json.Marshal(map[string]string{"answer": answer})
	return b
}

func newTestRig(t *testing.T) (*runs.Manager, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return runs.NewManager(s, feedback.New(), runs.Options{}), s
}

func seedQuestion(t *testing.T, s *store.Store, id string, seq int, category, value string) {
	t.Helper()
	_, err := s.Client().Question.Create().
		SetID(id).
		SetDomain("monitoring").
		SetLevel(1).
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

func TestAnswerParsesPayload(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: answerJSON("CPU load is 42%")})
	a := New(mock)

	q := &ent.Question{ID: "q-1", Prompt: "What is the CPU load?"}
	got, err := a.Answer(context.Background(), q, "")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if got != "CPU load is 42%" {
		t.Errorf("answer = %q", got)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "candidate-answer" {
		t.Error("request missing candidate-answer schema")
	}
	if !strings.Contains(req.Prompt, "What is the CPU load?") {
		t.Error("prompt not forwarded to provider")
	}
}

func TestAnswerIncludesPriorFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: answerJSON("CPU load is 42%")})
	a := New(mock)

	q := &ent.Question{ID: "q-1", Prompt: "What is the CPU load?"}
	if _, err := a.Answer(context.Background(), q, "Name only the CPU load metric."); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Name only the CPU load metric.") {
		t.Error("prior feedback not included in retry prompt")
	}
}

func TestAnswerRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name    string
		content json.RawMessage
	}{
		{"not json", json.RawMessage(`not json at all`)},
		{"empty answer", answerJSON("   ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: tt.content})
			a := New(mock)
			_, err := a.Answer(context.Background(), &ent.Question{ID: "q-1", Prompt: "p"}, "")
			var invalid *llm.ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestDriverCompletesSingleLevelRun(t *testing.T) {
	mgr, s := newTestRig(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", 1, "MEMORY_USAGE", "Memory usage is 71%")

	run, err := mgr.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: answerJSON("CPU load is 42%")},
		llm.MockResponse{Content: answerJSON("Memory usage is 71%")},
	)

	var events []Event
	d := NewDriver(mgr, New(mock), WithObserver(func(e Event) { events = append(events, e) }))

	final, err := d.Run(ctx, run.ID)
	if err != nil {
		t.Fatalf("drive run: %v", err)
	}
	if final.State != entrun.StateCompleted {
		t.Errorf("state = %q, want completed", final.State)
	}
	if final.QuestionsCompleted != 2 || final.QuestionsFailed != 0 {
		t.Errorf("counters = %d/%d, want 2/0", final.QuestionsCompleted, final.QuestionsFailed)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	for i, e := range events {
		if !e.Result.Correct {
			t.Errorf("events[%d] incorrect: %s", i, e.Result.Feedback)
		}
	}
}

func TestDriverRetriesWithFeedback(t *testing.T) {
	mgr, s := newTestRig(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")

	run, err := mgr.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: answerJSON("Memory usage is 42%")},
		llm.MockResponse{Content: answerJSON("CPU load is 42%")},
	)
	d := NewDriver(mgr, New(mock))

	final, err := d.Run(ctx, run.ID)
	if err != nil {
		t.Fatalf("drive run: %v", err)
	}
	if final.State != entrun.StateCompleted {
		t.Errorf("state = %q, want completed", final.State)
	}
	if len(mock.Calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(mock.Calls))
	}
	// The retry prompt must carry the grader's feedback forward.
	if !strings.Contains(mock.Calls[1].Prompt, "rejected") {
		t.Error("retry prompt missing prior feedback")
	}
}

func TestDriverFailsRunOnProviderError(t *testing.T) {
	mgr, s := newTestRig(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")

	run, err := mgr.StartRun(ctx, "monitoring", 1)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	// Empty mock queue means ErrProviderUnavailable on first call.
	d := NewDriver(mgr, New(llm.NewMockProvider()))

	_, err = d.Run(ctx, run.ID)
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}

	got, err := mgr.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.State != entrun.StateFailed {
		t.Errorf("state = %q, want failed", got.State)
	}
}

func TestDriverStopsAtSubmissionBudget(t *testing.T) {
	mgr, s := newTestRig(t)
	ctx := context.Background()
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")

	run, err := mgr.StartAutoRun(ctx, 1, 3)
	if err != nil {
		t.Fatalf("start auto run: %v", err)
	}

	// Always wrong: the auto run can never master the level.
	mock := llm.NewMockProvider()
	for i := 0; i < 12; i++ {
		mock.AddResponse(llm.MockResponse{Content: answerJSON("Disk usage is 90%")})
	}
	d := NewDriver(mgr, New(mock), WithMaxSubmissions(10))

	final, err := d.Run(ctx, run.ID)
	if err != nil {
		t.Fatalf("drive run: %v", err)
	}
	if final.State != entrun.StateCompleted {
		t.Errorf("state = %q, want completed (stopped)", final.State)
	}
	if len(mock.Calls) != 10 {
		t.Errorf("calls = %d, want 10", len(mock.Calls))
	}
}
