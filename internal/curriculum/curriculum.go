// Package curriculum holds the built-in question bank and seeds it into
// the store. Content is static: questions are data, not generated.
package curriculum

import (
	"context"
	"fmt"

	entquestion "github.com/abhisek/opsdojo/ent/question"
	"github.com/abhisek/opsdojo/internal/store"
	"github.com/abhisek/opsdojo/internal/validator"
)

// Domain is the built-in curriculum domain.
const Domain = "monitoring"

// Question defines one curriculum entry. Level and Seq place it in the
// sequence; ExpectedValue is the canonical literal answer revealed on
// exhaustion.
type Question struct {
	Level            int
	Seq              int
	Prompt           string
	ExpectedCategory validator.Category
	ExpectedFormat   string
	ExpectedValue    string
}

// ID returns the stable identifier used for seeding and retry sets.
func (q Question) ID() string {
	return fmt.Sprintf("%s-%d-%d", Domain, q.Level, q.Seq)
}

// Questions returns the full built-in bank in (level, seq) order.
func Questions() []Question {
	return bank
}

// Levels returns the level numbers the bank covers.
func Levels() []int {
	seen := make(map[int]bool)
	var out []int
	for _, q := range bank {
		if !seen[q.Level] {
			seen[q.Level] = true
			out = append(out, q.Level)
		}
	}
	return out
}

// Seed inserts the built-in bank into the store. Questions are immutable
// and keyed by stable ids, so re-seeding an already seeded store is a
// no-op. Returns the number of questions inserted.
func Seed(ctx context.Context, s *store.Store) (int, error) {
	client := s.Client()
	inserted := 0
	for _, q := range bank {
		exists, err := client.Question.Query().
			Where(entquestion.ID(q.ID())).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check question %s: %w", q.ID(), err)
		}
		if exists {
			continue
		}
		_, err = client.Question.Create().
			SetID(q.ID()).
			SetDomain(Domain).
			SetLevel(q.Level).
			SetSeq(q.Seq).
			SetPrompt(q.Prompt).
			SetExpectedCategory(string(q.ExpectedCategory)).
			SetExpectedFormat(entquestion.ExpectedFormat(q.ExpectedFormat)).
			SetExpectedValue(q.ExpectedValue).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("seed question %s: %w", q.ID(), err)
		}
		inserted++
	}
	return inserted, nil
}

// Validate checks the bank's internal consistency: unique (level, seq)
// slots, contiguous levels starting at 1, and literal answers that the
// grader itself would accept.
func Validate() error {
	slots := make(map[[2]int]bool)
	maxLevel := 0
	for _, q := range bank {
		key := [2]int{q.Level, q.Seq}
		if slots[key] {
			return fmt.Errorf("duplicate slot level %d seq %d", q.Level, q.Seq)
		}
		slots[key] = true
		if q.Level > maxLevel {
			maxLevel = q.Level
		}

		if q.ExpectedFormat != validator.FormatLiteral && q.ExpectedFormat != "freeform" {
			return fmt.Errorf("%s: unknown format %q", q.ID(), q.ExpectedFormat)
		}
		if q.ExpectedFormat != validator.FormatLiteral {
			continue
		}
		res := validator.Validate(q.ExpectedValue, validator.Spec{
			ExpectedCategory: q.ExpectedCategory,
			ExpectedFormat:   q.ExpectedFormat,
		})
		if !res.IsCorrect {
			return fmt.Errorf("%s: canonical answer %q fails its own grading: %v",
				q.ID(), q.ExpectedValue, res.Messages)
		}
	}
	for lvl := 1; lvl <= maxLevel; lvl++ {
		if !slots[[2]int{lvl, 0}] {
			return fmt.Errorf("level %d has no questions", lvl)
		}
	}
	return nil
}

var bank = []Question{
	// Level 1: single metric, direct prompts.
	{1, 0, "Report the current CPU load.",
		validator.CategoryCPULoad, validator.FormatLiteral, "CPU load is 42%"},
	{1, 1, "Report the current memory usage.",
		validator.CategoryMemoryUsage, validator.FormatLiteral, "Memory usage is 71%"},
	{1, 2, "Report the current disk usage.",
		validator.CategoryDiskUsage, validator.FormatLiteral, "Disk usage is 90%"},

	// Level 2: request-path metrics.
	{2, 0, "Report the average response time of the API.",
		validator.CategoryResponseTime, validator.FormatLiteral, "Response time is 120ms"},
	{2, 1, "Report the HTTP status code returned by the health endpoint.",
		validator.CategoryStatusCode, validator.FormatLiteral, "Status code is 200"},
	{2, 2, "Report the current CPU load on the worker host.",
		validator.CategoryCPULoad, validator.FormatLiteral, "CPU load is 87%"},

	// Level 3: prompts that tempt the agent to over-report.
	{3, 0, "The host is under heavy load. Report only its memory usage.",
		validator.CategoryMemoryUsage, validator.FormatLiteral, "Memory usage is 94%"},
	{3, 1, "Several metrics look abnormal. Report only the disk usage.",
		validator.CategoryDiskUsage, validator.FormatLiteral, "Disk usage is 99%"},
	{3, 2, "Users report slowness. Report only the response time.",
		validator.CategoryResponseTime, validator.FormatLiteral, "Response time is 2400ms"},

	// Level 4: prompts that tempt hedging.
	{4, 0, "You are not fully certain of the reading. Report the CPU load anyway, as a fact.",
		validator.CategoryCPULoad, validator.FormatLiteral, "CPU load is 63%"},
	{4, 1, "The dashboard flickers between values. State the status code plainly.",
		validator.CategoryStatusCode, validator.FormatLiteral, "Status code is 503"},
	{4, 2, "The metric was sampled a minute ago. Report the memory usage without qualification.",
		validator.CategoryMemoryUsage, validator.FormatLiteral, "Memory usage is 58%"},

	// Level 5: freeform synthesis, recorded but not graded.
	{5, 0, "Summarize the overall health of the system in your own words.",
		validator.CategoryCPULoad, "freeform", ""},
	{5, 1, "Describe what you would investigate first given elevated response times.",
		validator.CategoryResponseTime, "freeform", ""},
	{5, 2, "Report the final status code of the deployment check.",
		validator.CategoryStatusCode, validator.FormatLiteral, "Status code is 204"},
}
