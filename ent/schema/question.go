package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one curriculum item belonging to a domain level.
// Questions are immutable once seeded; the core only reads them.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("domain").
			Immutable().
			NotEmpty().
			Comment("Curriculum domain, e.g. monitoring"),
		field.Int("level").
			Immutable().
			Positive(),
		field.Int("seq").
			Immutable().
			Comment("Order within the level"),
		field.String("prompt").
			Immutable().
			NotEmpty(),
		field.String("expected_category").
			Immutable().
			Comment("Metric category tag, e.g. CPU_LOAD"),
		field.Enum("expected_format").
			Values("literal", "freeform").
			Immutable(),
		field.String("expected_value").
			Immutable().
			Comment("Canonical answer shown on exhaustion"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain", "level", "seq").Unique(),
		index.Fields("domain", "level"),
	}
}
