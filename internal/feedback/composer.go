// Package feedback composes the teacher messages shown after every graded
// submission. The templates are canonical: LLM elaboration, when enabled,
// is appended to the template text, never substituted for it.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/opsdojo/ent"
	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/validator"
)

// DefaultTimeout bounds the optional elaboration call. On timeout or any
// provider error the template text stands alone.
const DefaultTimeout = 10 * time.Second

// Composer builds feedback text from a verdict and attempt count.
type Composer struct {
	provider llm.Provider // nil disables elaboration
	timeout  time.Duration
}

// Option configures a Composer.
type Option func(*Composer)

// WithElaboration enables LLM elaboration of the template feedback.
func WithElaboration(p llm.Provider) Option {
	return func(c *Composer) { c.provider = p }
}

// WithTimeout overrides the elaboration timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) { c.timeout = d }
}

// New creates a Composer. Without options it is purely template-based.
func New(opts ...Option) *Composer {
	c := &Composer{timeout: DefaultTimeout}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Compose returns the feedback for one graded attempt.
//
// The hint ladder is deliberate scaffolding: the expected value appears in
// every failure message, and is revealed verbatim when attempts run out.
// The learner is never advanced past a question without seeing the answer.
func (c *Composer) Compose(ctx context.Context, q *ent.Question, res validator.Result, attemptNumber, maxAttempts int) string {
	base := c.template(q, res, attemptNumber, maxAttempts)

	if c.provider == nil || res.IsCorrect {
		return base
	}

	elaboration, err := c.elaborate(ctx, q, res, base)
	if err != nil {
		slog.Debug("feedback elaboration skipped", "error", err)
		return base
	}
	return base + "\n\n" + elaboration
}

func (c *Composer) template(q *ent.Question, res validator.Result, attemptNumber, maxAttempts int) string {
	if res.IsCorrect {
		return fmt.Sprintf("Correct! %q is exactly right. Moving on to the next question.", res.NormalizedAnswer)
	}

	if attemptNumber >= maxAttempts {
		return fmt.Sprintf(
			"That was attempt %d of %d. The expected answer is: %s\nStudy the shape of that sentence — we're moving on to the next question.",
			attemptNumber, maxAttempts, q.ExpectedValue)
	}

	hint := c.hintFor(q, res)
	return fmt.Sprintf("%s\nA correct answer looks like: %s\nAttempt %d of %d — try again.",
		hint, q.ExpectedValue, attemptNumber, maxAttempts)
}

// hintFor picks guidance by error class: structural errors point at the
// sentence shape, semantic errors at the expected content.
func (c *Composer) hintFor(q *ent.Question, res validator.Result) string {
	detail := ""
	if len(res.Messages) > 0 {
		detail = res.Messages[0]
	}

	switch res.ErrorType {
	case validator.ErrorEmptyAnswer:
		return "You submitted an empty answer. Write one sentence naming the metric and its value."
	case validator.ErrorMultiSentence:
		return fmt.Sprintf("Not quite: %s. Report exactly one observation in one sentence.", detail)
	case validator.ErrorFormatViolation:
		return "The answer isn't in the expected shape. Use \"<metric> is <value>\" — subject, verb, value, nothing else."
	case validator.ErrorWrongCategory:
		return fmt.Sprintf("Wrong metric: %s. Re-read the question and report the metric it asks about (%s).", detail, q.ExpectedCategory)
	case validator.ErrorMultipleMetrics:
		return fmt.Sprintf("Too much: %s. Name the one metric the question asks about and nothing else.", detail)
	case validator.ErrorValueVariance:
		return "Almost. Drop the hedging (\"seems\", \"appears\") and leading articles — state the value plainly."
	default:
		return "That answer doesn't pass."
	}
}

func (c *Composer) elaborate(ctx context.Context, q *ent.Question, res validator.Result, base string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, llm.PurposeFeedback)

	req := llm.Request{
		System: "You are a patient operations instructor. In at most two short sentences, " +
			"expand on the feedback below without contradicting it. Do not reveal anything " +
			"beyond what the feedback already states.",
		Prompt: fmt.Sprintf("Question: %s\nLearner error: %s\nFeedback given: %s",
			q.Prompt, res.ErrorType, base),
		MaxTokens: 160,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
