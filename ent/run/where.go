// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/opsdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// Cursor applies equality check predicate on the "cursor" field. It's identical to CursorEQ.
func Cursor(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCursor, v))
}

// QuestionsCompleted applies equality check predicate on the "questions_completed" field. It's identical to QuestionsCompletedEQ.
func QuestionsCompleted(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestionsCompleted, v))
}

// QuestionsFailed applies equality check predicate on the "questions_failed" field. It's identical to QuestionsFailedEQ.
func QuestionsFailed(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestionsFailed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldMode, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldState, vs...))
}

// CursorEQ applies the EQ predicate on the "cursor" field.
func CursorEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCursor, v))
}

// CursorNEQ applies the NEQ predicate on the "cursor" field.
func CursorNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCursor, v))
}

// CursorIn applies the In predicate on the "cursor" field.
func CursorIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCursor, vs...))
}

// CursorNotIn applies the NotIn predicate on the "cursor" field.
func CursorNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCursor, vs...))
}

// CursorGT applies the GT predicate on the "cursor" field.
func CursorGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCursor, v))
}

// CursorGTE applies the GTE predicate on the "cursor" field.
func CursorGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCursor, v))
}

// CursorLT applies the LT predicate on the "cursor" field.
func CursorLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCursor, v))
}

// CursorLTE applies the LTE predicate on the "cursor" field.
func CursorLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCursor, v))
}

// QuestionsCompletedEQ applies the EQ predicate on the "questions_completed" field.
func QuestionsCompletedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestionsCompleted, v))
}

// QuestionsCompletedNEQ applies the NEQ predicate on the "questions_completed" field.
func QuestionsCompletedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQuestionsCompleted, v))
}

// QuestionsCompletedIn applies the In predicate on the "questions_completed" field.
func QuestionsCompletedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQuestionsCompleted, vs...))
}

// QuestionsCompletedNotIn applies the NotIn predicate on the "questions_completed" field.
func QuestionsCompletedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQuestionsCompleted, vs...))
}

// QuestionsCompletedGT applies the GT predicate on the "questions_completed" field.
func QuestionsCompletedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQuestionsCompleted, v))
}

// QuestionsCompletedGTE applies the GTE predicate on the "questions_completed" field.
func QuestionsCompletedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQuestionsCompleted, v))
}

// QuestionsCompletedLT applies the LT predicate on the "questions_completed" field.
func QuestionsCompletedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQuestionsCompleted, v))
}

// QuestionsCompletedLTE applies the LTE predicate on the "questions_completed" field.
func QuestionsCompletedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQuestionsCompleted, v))
}

// QuestionsFailedEQ applies the EQ predicate on the "questions_failed" field.
func QuestionsFailedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestionsFailed, v))
}

// QuestionsFailedNEQ applies the NEQ predicate on the "questions_failed" field.
func QuestionsFailedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQuestionsFailed, v))
}

// QuestionsFailedIn applies the In predicate on the "questions_failed" field.
func QuestionsFailedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQuestionsFailed, vs...))
}

// QuestionsFailedNotIn applies the NotIn predicate on the "questions_failed" field.
func QuestionsFailedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQuestionsFailed, vs...))
}

// QuestionsFailedGT applies the GT predicate on the "questions_failed" field.
func QuestionsFailedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQuestionsFailed, v))
}

// QuestionsFailedGTE applies the GTE predicate on the "questions_failed" field.
func QuestionsFailedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQuestionsFailed, v))
}

// QuestionsFailedLT applies the LT predicate on the "questions_failed" field.
func QuestionsFailedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQuestionsFailed, v))
}

// QuestionsFailedLTE applies the LTE predicate on the "questions_failed" field.
func QuestionsFailedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQuestionsFailed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
