// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "answer_text", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"pass", "fail"}},
		{Name: "severity", Type: field.TypeString},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_run_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
			{
				Name:    "attempt_run_id_question_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2], AttemptsColumns[3]},
			},
			{
				Name:    "attempt_run_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
		},
	}
	// LlmEventsColumns holds the columns for the "llm_events" table.
	LlmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmEventsTable holds the schema information for the "llm_events" table.
	LlmEventsTable = &schema.Table{
		Name:       "llm_events",
		Columns:    LlmEventsColumns,
		PrimaryKey: []*schema.Column{LlmEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[1]},
			},
			{
				Name:    "llmevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[3]},
			},
			{
				Name:    "llmevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[9]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "agent", "teacher"}},
		{Name: "body", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_run_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[2]},
			},
			{
				Name:    "message_run_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "seq", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString},
		{Name: "expected_category", Type: field.TypeString},
		{Name: "expected_format", Type: field.TypeEnum, Enums: []string{"literal", "freeform"}},
		{Name: "expected_value", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_domain_level_seq",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2], QuestionsColumns[3]},
			},
			{
				Name:    "question_domain_level",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"single-level", "level-range", "retry-set"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "running"},
		{Name: "cursor", Type: field.TypeInt, Default: 0},
		{Name: "questions_completed", Type: field.TypeInt, Default: 0},
		{Name: "questions_failed", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_state",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		LlmEventsTable,
		MessagesTable,
		QuestionsTable,
		RunsTable,
	}
)

func init() {
}
