package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run is a single learning session progressing through curriculum questions.
type Run struct {
	ent.Schema
}

// RunMetadata is the free-form bag of mode-specific run fields. Optional
// fields are zero-valued when they don't apply to the run's mode.
type RunMetadata struct {
	Domain       string   `json:"domain,omitempty"`
	LevelNumber  int      `json:"level_number,omitempty"`
	StartLevel   int      `json:"start_level,omitempty"`
	EndLevel     int      `json:"end_level,omitempty"`
	CurrentLevel int      `json:"current_level,omitempty"`
	AutoMode     bool     `json:"auto_mode,omitempty"`
	RetryIDs     []string `json:"retry_ids,omitempty"`
}

func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.Enum("mode").
			Values("single-level", "level-range", "retry-set").
			Immutable(),
		field.Enum("state").
			Values("pending", "running", "completed", "failed").
			Default("running").
			Comment("Monotonic: no transition out of completed/failed"),
		field.Int("cursor").
			Default(0).
			Comment("Index into the question sequence; only ever advances"),
		field.Int("questions_completed").
			Default(0).
			Comment("Count of pass attempts, recomputed on every submission"),
		field.Int("questions_failed").
			Default(0).
			Comment("Count of fail attempts, recomputed on every submission"),
		field.JSON("metadata", RunMetadata{}).
			Comment("Mode-specific fields (domain, level bounds, auto-mode cursor)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
