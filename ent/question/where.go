// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/opsdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDomain, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLevel, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSeq, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// ExpectedCategory applies equality check predicate on the "expected_category" field. It's identical to ExpectedCategoryEQ.
func ExpectedCategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExpectedCategory, v))
}

// ExpectedValue applies equality check predicate on the "expected_value" field. It's identical to ExpectedValueEQ.
func ExpectedValue(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExpectedValue, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDomain, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldLevel, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSeq, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// ExpectedCategoryEQ applies the EQ predicate on the "expected_category" field.
func ExpectedCategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExpectedCategory, v))
}

// ExpectedCategoryNEQ applies the NEQ predicate on the "expected_category" field.
func ExpectedCategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExpectedCategory, v))
}

// ExpectedCategoryIn applies the In predicate on the "expected_category" field.
func ExpectedCategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExpectedCategory, vs...))
}

// ExpectedCategoryNotIn applies the NotIn predicate on the "expected_category" field.
func ExpectedCategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExpectedCategory, vs...))
}

// ExpectedCategoryGT applies the GT predicate on the "expected_category" field.
func ExpectedCategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExpectedCategory, v))
}

// ExpectedCategoryGTE applies the GTE predicate on the "expected_category" field.
func ExpectedCategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExpectedCategory, v))
}

// ExpectedCategoryLT applies the LT predicate on the "expected_category" field.
func ExpectedCategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExpectedCategory, v))
}

// ExpectedCategoryLTE applies the LTE predicate on the "expected_category" field.
func ExpectedCategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExpectedCategory, v))
}

// ExpectedCategoryContains applies the Contains predicate on the "expected_category" field.
func ExpectedCategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExpectedCategory, v))
}

// ExpectedCategoryHasPrefix applies the HasPrefix predicate on the "expected_category" field.
func ExpectedCategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExpectedCategory, v))
}

// ExpectedCategoryHasSuffix applies the HasSuffix predicate on the "expected_category" field.
func ExpectedCategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExpectedCategory, v))
}

// ExpectedCategoryEqualFold applies the EqualFold predicate on the "expected_category" field.
func ExpectedCategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExpectedCategory, v))
}

// ExpectedCategoryContainsFold applies the ContainsFold predicate on the "expected_category" field.
func ExpectedCategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExpectedCategory, v))
}

// ExpectedFormatEQ applies the EQ predicate on the "expected_format" field.
func ExpectedFormatEQ(v ExpectedFormat) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExpectedFormat, v))
}

// ExpectedFormatNEQ applies the NEQ predicate on the "expected_format" field.
func ExpectedFormatNEQ(v ExpectedFormat) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExpectedFormat, v))
}

// ExpectedFormatIn applies the In predicate on the "expected_format" field.
func ExpectedFormatIn(vs ...ExpectedFormat) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExpectedFormat, vs...))
}

// ExpectedFormatNotIn applies the NotIn predicate on the "expected_format" field.
func ExpectedFormatNotIn(vs ...ExpectedFormat) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExpectedFormat, vs...))
}

// ExpectedValueEQ applies the EQ predicate on the "expected_value" field.
func ExpectedValueEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExpectedValue, v))
}

// ExpectedValueNEQ applies the NEQ predicate on the "expected_value" field.
func ExpectedValueNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExpectedValue, v))
}

// ExpectedValueIn applies the In predicate on the "expected_value" field.
func ExpectedValueIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExpectedValue, vs...))
}

// ExpectedValueNotIn applies the NotIn predicate on the "expected_value" field.
func ExpectedValueNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExpectedValue, vs...))
}

// ExpectedValueGT applies the GT predicate on the "expected_value" field.
func ExpectedValueGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExpectedValue, v))
}

// ExpectedValueGTE applies the GTE predicate on the "expected_value" field.
func ExpectedValueGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExpectedValue, v))
}

// ExpectedValueLT applies the LT predicate on the "expected_value" field.
func ExpectedValueLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExpectedValue, v))
}

// ExpectedValueLTE applies the LTE predicate on the "expected_value" field.
func ExpectedValueLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExpectedValue, v))
}

// ExpectedValueContains applies the Contains predicate on the "expected_value" field.
func ExpectedValueContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExpectedValue, v))
}

// ExpectedValueHasPrefix applies the HasPrefix predicate on the "expected_value" field.
func ExpectedValueHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExpectedValue, v))
}

// ExpectedValueHasSuffix applies the HasSuffix predicate on the "expected_value" field.
func ExpectedValueHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExpectedValue, v))
}

// ExpectedValueEqualFold applies the EqualFold predicate on the "expected_value" field.
func ExpectedValueEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExpectedValue, v))
}

// ExpectedValueContainsFold applies the ContainsFold predicate on the "expected_value" field.
func ExpectedValueContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExpectedValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
