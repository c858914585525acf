// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetMode sets the "mode" field.
func (_c *RunCreate) SetMode(v run.Mode) *RunCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetState sets the "state" field.
func (_c *RunCreate) SetState(v run.State) *RunCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RunCreate) SetNillableState(v *run.State) *RunCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCursor sets the "cursor" field.
func (_c *RunCreate) SetCursor(v int) *RunCreate {
	_c.mutation.SetCursor(v)
	return _c
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_c *RunCreate) SetNillableCursor(v *int) *RunCreate {
	if v != nil {
		_c.SetCursor(*v)
	}
	return _c
}

// SetQuestionsCompleted sets the "questions_completed" field.
func (_c *RunCreate) SetQuestionsCompleted(v int) *RunCreate {
	_c.mutation.SetQuestionsCompleted(v)
	return _c
}

// SetNillableQuestionsCompleted sets the "questions_completed" field if the given value is not nil.
func (_c *RunCreate) SetNillableQuestionsCompleted(v *int) *RunCreate {
	if v != nil {
		_c.SetQuestionsCompleted(*v)
	}
	return _c
}

// SetQuestionsFailed sets the "questions_failed" field.
func (_c *RunCreate) SetQuestionsFailed(v int) *RunCreate {
	_c.mutation.SetQuestionsFailed(v)
	return _c
}

// SetNillableQuestionsFailed sets the "questions_failed" field if the given value is not nil.
func (_c *RunCreate) SetNillableQuestionsFailed(v *int) *RunCreate {
	if v != nil {
		_c.SetQuestionsFailed(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *RunCreate) SetMetadata(v schema.RunMetadata) *RunCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunCreate) SetUpdatedAt(v time.Time) *RunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableUpdatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := run.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		v := run.DefaultCursor
		_c.mutation.SetCursor(v)
	}
	if _, ok := _c.mutation.QuestionsCompleted(); !ok {
		v := run.DefaultQuestionsCompleted
		_c.mutation.SetQuestionsCompleted(v)
	}
	if _, ok := _c.mutation.QuestionsFailed(); !ok {
		v := run.DefaultQuestionsFailed
		_c.mutation.SetQuestionsFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := run.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Run.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := run.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Run.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Run.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		return &ValidationError{Name: "cursor", err: errors.New(`ent: missing required field "Run.cursor"`)}
	}
	if _, ok := _c.mutation.QuestionsCompleted(); !ok {
		return &ValidationError{Name: "questions_completed", err: errors.New(`ent: missing required field "Run.questions_completed"`)}
	}
	if _, ok := _c.mutation.QuestionsFailed(); !ok {
		return &ValidationError{Name: "questions_failed", err: errors.New(`ent: missing required field "Run.questions_failed"`)}
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "Run.metadata"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Run.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := run.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Run.id": %w`, err)}
		}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(run.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Cursor(); ok {
		_spec.SetField(run.FieldCursor, field.TypeInt, value)
		_node.Cursor = value
	}
	if value, ok := _c.mutation.QuestionsCompleted(); ok {
		_spec.SetField(run.FieldQuestionsCompleted, field.TypeInt, value)
		_node.QuestionsCompleted = value
	}
	if value, ok := _c.mutation.QuestionsFailed(); ok {
		_spec.SetField(run.FieldQuestionsFailed, field.TypeInt, value)
		_node.QuestionsFailed = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(run.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
