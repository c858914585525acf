package runs

import (
	"context"
	"fmt"

	"github.com/abhisek/opsdojo/ent"
	entrun "github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/internal/store"
)

// Sequencer selects the next question(s) for a run from its cursor.
//
// Selection is cursor mod count: when a level is exhausted the sequence
// wraps around to the top. Repetition is the point — a run cycles its level
// indefinitely until stopped or advanced, so the same cursor always resolves
// to the same question.
type Sequencer struct {
	questions store.QuestionRepo
}

// NewSequencer creates a Sequencer over the question repo.
func NewSequencer(questions store.QuestionRepo) *Sequencer {
	return &Sequencer{questions: questions}
}

// Next returns the question at the run's cursor and its index in the
// level sequence.
func (s *Sequencer) Next(ctx context.Context, run *ent.Run) (*ent.Question, int, error) {
	qs, err := s.questionsFor(ctx, run)
	if err != nil {
		return nil, 0, err
	}
	idx := run.Cursor % len(qs)
	return qs[idx], idx, nil
}

// NextTwo returns the questions at cursor and cursor+1 (mod count), for the
// two-question lookahead used by dual-question callers. With a single
// question in the level both slots hold that question.
func (s *Sequencer) NextTwo(ctx context.Context, run *ent.Run) ([2]*ent.Question, [2]int, error) {
	qs, err := s.questionsFor(ctx, run)
	if err != nil {
		return [2]*ent.Question{}, [2]int{}, err
	}
	first := run.Cursor % len(qs)
	second := (run.Cursor + 1) % len(qs)
	return [2]*ent.Question{qs[first], qs[second]}, [2]int{first, second}, nil
}

// questionsFor resolves the run's active question list. An empty list is a
// data defect upstream (unseeded level), fatal to the call.
func (s *Sequencer) questionsFor(ctx context.Context, run *ent.Run) ([]*ent.Question, error) {
	meta := run.Metadata

	var (
		qs  []*ent.Question
		err error
	)
	switch run.Mode {
	case entrun.ModeRetrySet:
		qs, err = s.questions.ByIDs(ctx, meta.RetryIDs)
	case entrun.ModeLevelRange:
		qs, err = s.questions.ByLevel(ctx, meta.Domain, meta.CurrentLevel)
	default: // single-level
		qs, err = s.questions.ByLevel(ctx, meta.Domain, meta.LevelNumber)
	}
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("run %s: %w", run.ID, ErrNoQuestions)
	}
	return qs, nil
}
