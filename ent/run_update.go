// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/opsdojo/ent/predicate"
	"github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *RunUpdate) SetState(v run.State) *RunUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdate) SetNillableState(v *run.State) *RunUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *RunUpdate) SetCursor(v int) *RunUpdate {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCursor(v *int) *RunUpdate {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *RunUpdate) AddCursor(v int) *RunUpdate {
	_u.mutation.AddCursor(v)
	return _u
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (_u *RunUpdate) SetQuestionsCompleted(v int) *RunUpdate {
	_u.mutation.ResetQuestionsCompleted()
	_u.mutation.SetQuestionsCompleted(v)
	return _u
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuestionsCompleted(v *int) *RunUpdate {
	if v != nil {
		_u.SetQuestionsCompleted(*v)
	}
	return _u
}

// AddQuestionsCompleted adds value to the "questions_completed" field.
func (_u *RunUpdate) AddQuestionsCompleted(v int) *RunUpdate {
	_u.mutation.AddQuestionsCompleted(v)
	return _u
}

// SetQuestionsFailed sets the "questions_failed" field.
func (_u *RunUpdate) SetQuestionsFailed(v int) *RunUpdate {
	_u.mutation.ResetQuestionsFailed()
	_u.mutation.SetQuestionsFailed(v)
	return _u
}

// SetNillableQuestionsFailed sets the "questions_failed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuestionsFailed(v *int) *RunUpdate {
	if v != nil {
		_u.SetQuestionsFailed(*v)
	}
	return _u
}

// AddQuestionsFailed adds value to the "questions_failed" field.
func (_u *RunUpdate) AddQuestionsFailed(v int) *RunUpdate {
	_u.mutation.AddQuestionsFailed(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunUpdate) SetMetadata(v schema.RunMetadata) *RunUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *RunUpdate) SetNillableMetadata(v *schema.RunMetadata) *RunUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdate) SetUpdatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(run.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(run.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCompleted(); ok {
		_spec.SetField(run.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCompleted(); ok {
		_spec.AddField(run.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsFailed(); ok {
		_spec.SetField(run.FieldQuestionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsFailed(); ok {
		_spec.AddField(run.FieldQuestionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(run.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetState sets the "state" field.
func (_u *RunUpdateOne) SetState(v run.State) *RunUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableState(v *run.State) *RunUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *RunUpdateOne) SetCursor(v int) *RunUpdateOne {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCursor(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *RunUpdateOne) AddCursor(v int) *RunUpdateOne {
	_u.mutation.AddCursor(v)
	return _u
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (_u *RunUpdateOne) SetQuestionsCompleted(v int) *RunUpdateOne {
	_u.mutation.ResetQuestionsCompleted()
	_u.mutation.SetQuestionsCompleted(v)
	return _u
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuestionsCompleted(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetQuestionsCompleted(*v)
	}
	return _u
}

// AddQuestionsCompleted adds value to the "questions_completed" field.
func (_u *RunUpdateOne) AddQuestionsCompleted(v int) *RunUpdateOne {
	_u.mutation.AddQuestionsCompleted(v)
	return _u
}

// SetQuestionsFailed sets the "questions_failed" field.
func (_u *RunUpdateOne) SetQuestionsFailed(v int) *RunUpdateOne {
	_u.mutation.ResetQuestionsFailed()
	_u.mutation.SetQuestionsFailed(v)
	return _u
}

// SetNillableQuestionsFailed sets the "questions_failed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuestionsFailed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetQuestionsFailed(*v)
	}
	return _u
}

// AddQuestionsFailed adds value to the "questions_failed" field.
func (_u *RunUpdateOne) AddQuestionsFailed(v int) *RunUpdateOne {
	_u.mutation.AddQuestionsFailed(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunUpdateOne) SetMetadata(v schema.RunMetadata) *RunUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableMetadata(v *schema.RunMetadata) *RunUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdateOne) SetUpdatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(run.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(run.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCompleted(); ok {
		_spec.SetField(run.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCompleted(); ok {
		_spec.AddField(run.FieldQuestionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsFailed(); ok {
		_spec.SetField(run.FieldQuestionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsFailed(); ok {
		_spec.AddField(run.FieldQuestionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(run.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
