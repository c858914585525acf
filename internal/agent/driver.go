package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/opsdojo/ent"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/internal/runs"
)

// DefaultMaxSubmissions bounds a driven run. An agent that keeps failing
// an auto run would otherwise cycle its level forever.
const DefaultMaxSubmissions = 200

// Event reports one graded submission to the driver's observer.
type Event struct {
	Question *ent.Question
	Answer   string
	Result   *runs.SubmitResult
}

// Driver runs a learning run end to end: fetch question, generate a
// candidate answer, submit, repeat. Single-level and retry-set runs stop
// after one full advancement cycle; auto runs stop when the manager
// completes them.
type Driver struct {
	mgr     *runs.Manager
	student *Agent

	maxSubmissions int
	onEvent        func(Event)
}

// DriverOption tunes a Driver.
type DriverOption func(*Driver)

// WithMaxSubmissions overrides DefaultMaxSubmissions.
func WithMaxSubmissions(n int) DriverOption {
	return func(d *Driver) { d.maxSubmissions = n }
}

// WithObserver registers a callback invoked after every graded submission.
func WithObserver(fn func(Event)) DriverOption {
	return func(d *Driver) { d.onEvent = fn }
}

// NewDriver creates a Driver.
func NewDriver(mgr *runs.Manager, student *Agent, opts ...DriverOption) *Driver {
	d := &Driver{
		mgr:            mgr,
		student:        student,
		maxSubmissions: DefaultMaxSubmissions,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run drives the run until it reaches a terminal state. A provider
// failure fails the run; the error is returned either way.
func (d *Driver) Run(ctx context.Context, runID string) (*ent.Run, error) {
	questions, err := d.mgr.RunQuestions(ctx, runID)
	if err != nil {
		return nil, err
	}
	cycleLen := len(questions)

	advanced := 0
	feedback := ""
	for submissions := 0; submissions < d.maxSubmissions; submissions++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		run, err := d.mgr.GetRun(ctx, runID)
		if err != nil {
			return nil, err
		}
		if run.State != entrun.StateRunning {
			return run, nil
		}

		question, _, err := d.mgr.NextQuestion(ctx, runID)
		if err != nil {
			return nil, err
		}

		answer, err := d.student.Answer(ctx, question, feedback)
		if err != nil {
			slog.Error("agent answer failed", "run", runID, "question", question.ID, "error", err)
			if _, failErr := d.mgr.FailRun(ctx, runID, err); failErr != nil {
				return nil, fmt.Errorf("fail run after provider error: %v (provider: %w)", failErr, err)
			}
			return nil, err
		}

		res, err := d.mgr.SubmitAnswer(ctx, runID, question.ID, answer)
		if err != nil {
			return nil, err
		}
		if d.onEvent != nil {
			d.onEvent(Event{Question: question, Answer: answer, Result: res})
		}

		if res.CanRetry {
			feedback = res.Feedback
			continue
		}
		feedback = ""
		advanced++

		// Auto runs complete themselves on mastery. Fixed question sets
		// stop after every question has been advanced past once.
		if !run.Metadata.AutoMode && advanced >= cycleLen {
			return d.mgr.StopRun(ctx, runID)
		}
	}

	slog.Warn("submission budget exhausted, stopping run", "run", runID, "budget", d.maxSubmissions)
	return d.mgr.StopRun(ctx, runID)
}
