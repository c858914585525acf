package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one transcript entry: everything shown to the user during a
// run, in strict per-run order. Used for audit and replay, never for
// decision logic.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable().
			NotEmpty(),
		field.Int64("sequence").
			Immutable().
			Comment("Per-run monotonically increasing sequence number"),
		field.Enum("role").
			Values("system", "agent", "teacher").
			Immutable(),
		field.String("body").
			Immutable(),
		field.String("status").
			Default("").
			Comment("pending-validation on raw answers until graded"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "sequence").Unique(),
		index.Fields("run_id"),
	}
}
