package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one graded submission for a (run, question) pair.
// Attempts are append-only: never updated, never deleted.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable().
			NotEmpty(),
		field.String("question_id").
			Immutable().
			NotEmpty(),
		field.Int("attempt_number").
			Immutable().
			Positive().
			Comment("1-based, gapless per (run, question)"),
		field.String("answer_text").
			Immutable(),
		field.Enum("verdict").
			Values("pass", "fail").
			Immutable(),
		field.String("severity").
			Immutable().
			Comment("NONE, MILD, MODERATE or SEVERE"),
		field.String("error_type").
			Optional().
			Immutable().
			Comment("Classification tag, empty on pass"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "question_id"),
		index.Fields("run_id", "question_id", "attempt_number").Unique(),
		index.Fields("run_id"),
	}
}
