// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCursor holds the string denoting the cursor field in the database.
	FieldCursor = "cursor"
	// FieldQuestionsCompleted holds the string denoting the questions_completed field in the database.
	FieldQuestionsCompleted = "questions_completed"
	// FieldQuestionsFailed holds the string denoting the questions_failed field in the database.
	FieldQuestionsFailed = "questions_failed"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the run in the database.
	Table = "runs"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldMode,
	FieldState,
	FieldCursor,
	FieldQuestionsCompleted,
	FieldQuestionsFailed,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCursor holds the default value on creation for the "cursor" field.
	DefaultCursor int
	// DefaultQuestionsCompleted holds the default value on creation for the "questions_completed" field.
	DefaultQuestionsCompleted int
	// DefaultQuestionsFailed holds the default value on creation for the "questions_failed" field.
	DefaultQuestionsFailed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeSingleLevel Mode = "single-level"
	ModeLevelRange  Mode = "level-range"
	ModeRetrySet    Mode = "retry-set"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeSingleLevel, ModeLevelRange, ModeRetrySet:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for mode field: %q", m)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateRunning is the default value of the State enum.
const DefaultState = StateRunning

// State values.
const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateRunning, StateCompleted, StateFailed:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCursor orders the results by the cursor field.
func ByCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCursor, opts...).ToFunc()
}

// ByQuestionsCompleted orders the results by the questions_completed field.
func ByQuestionsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCompleted, opts...).ToFunc()
}

// ByQuestionsFailed orders the results by the questions_failed field.
func ByQuestionsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsFailed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
