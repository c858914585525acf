package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/opsdojo/ent"
	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/validator"
)

func cpuQuestion() *ent.Question {
	return &ent.Question{
		ID:               "q-1",
		Prompt:           "Report the current CPU load.",
		ExpectedCategory: "CPU_LOAD",
		ExpectedValue:    "CPU load is 42%",
	}
}

func failResult(et validator.ErrorType) validator.Result {
	return validator.Result{
		IsCorrect: false,
		Severity:  validator.SeveritySevere,
		ErrorType: et,
		Messages:  []string{"detail"},
	}
}

func TestCompose_Pass(t *testing.T) {
	c := New()
	res := validator.Result{IsCorrect: true, Severity: validator.SeverityNone, NormalizedAnswer: "CPU load is 42%"}
	fb := c.Compose(context.Background(), cpuQuestion(), res, 1, 5)
	if !strings.Contains(fb, "Correct") {
		t.Errorf("pass feedback missing congratulation: %q", fb)
	}
}

func TestCompose_FailAlwaysIncludesExpectedValue(t *testing.T) {
	c := New()
	for _, et := range []validator.ErrorType{
		validator.ErrorEmptyAnswer,
		validator.ErrorMultiSentence,
		validator.ErrorFormatViolation,
		validator.ErrorWrongCategory,
		validator.ErrorMultipleMetrics,
		validator.ErrorValueVariance,
	} {
		fb := c.Compose(context.Background(), cpuQuestion(), failResult(et), 2, 5)
		if !strings.Contains(fb, "CPU load is 42%") {
			t.Errorf("%s: feedback does not include expected value: %q", et, fb)
		}
		if !strings.Contains(fb, "try again") {
			t.Errorf("%s: feedback does not invite a retry: %q", et, fb)
		}
	}
}

func TestCompose_ExhaustionRevealsAnswer(t *testing.T) {
	c := New()
	fb := c.Compose(context.Background(), cpuQuestion(), failResult(validator.ErrorFormatViolation), 5, 5)
	if !strings.Contains(fb, "CPU load is 42%") {
		t.Errorf("exhaustion feedback must reveal the expected value: %q", fb)
	}
	if !strings.Contains(fb, "moving on") {
		t.Errorf("exhaustion feedback must signal advancement: %q", fb)
	}
	if strings.Contains(fb, "try again") {
		t.Errorf("exhaustion feedback must not invite a retry: %q", fb)
	}
}

func TestCompose_ElaborationAppended(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Think about the subject of your sentence."`)})
	c := New(WithElaboration(mock))

	fb := c.Compose(context.Background(), cpuQuestion(), failResult(validator.ErrorWrongCategory), 1, 5)
	if !strings.Contains(fb, "CPU load is 42%") {
		t.Errorf("canonical hint missing with elaboration enabled: %q", fb)
	}
	if !strings.Contains(fb, "Think about the subject") {
		t.Errorf("elaboration missing: %q", fb)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestCompose_ProviderFailureFallsBackToTemplate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := New(WithElaboration(mock), WithTimeout(50*time.Millisecond))

	fb := c.Compose(context.Background(), cpuQuestion(), failResult(validator.ErrorEmptyAnswer), 1, 5)
	if !strings.Contains(fb, "CPU load is 42%") {
		t.Errorf("template fallback missing expected value: %q", fb)
	}
}

func TestCompose_NoProviderCallOnPass(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(WithElaboration(mock))

	res := validator.Result{IsCorrect: true, Severity: validator.SeverityNone}
	c.Compose(context.Background(), cpuQuestion(), res, 1, 5)
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 on pass", mock.CallCount())
	}
}
