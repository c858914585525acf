// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldExpectedCategory holds the string denoting the expected_category field in the database.
	FieldExpectedCategory = "expected_category"
	// FieldExpectedFormat holds the string denoting the expected_format field in the database.
	FieldExpectedFormat = "expected_format"
	// FieldExpectedValue holds the string denoting the expected_value field in the database.
	FieldExpectedValue = "expected_value"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldDomain,
	FieldLevel,
	FieldSeq,
	FieldPrompt,
	FieldExpectedCategory,
	FieldExpectedFormat,
	FieldExpectedValue,
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
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// ExpectedFormat defines the type for the "expected_format" enum field.
type ExpectedFormat string

// ExpectedFormat values.
const (
	ExpectedFormatLiteral  ExpectedFormat = "literal"
	ExpectedFormatFreeform ExpectedFormat = "freeform"
)

func (ef ExpectedFormat) String() string {
	return string(ef)
}

// ExpectedFormatValidator is a validator for the "expected_format" field enum values. It is called by the builders before save.
func ExpectedFormatValidator(ef ExpectedFormat) error {
	switch ef {
	case ExpectedFormatLiteral, ExpectedFormatFreeform:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for expected_format field: %q", ef)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByExpectedCategory orders the results by the expected_category field.
func ByExpectedCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedCategory, opts...).ToFunc()
}

// ByExpectedFormat orders the results by the expected_format field.
func ByExpectedFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedFormat, opts...).ToFunc()
}

// ByExpectedValue orders the results by the expected_value field.
func ByExpectedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedValue, opts...).ToFunc()
}
