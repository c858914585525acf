// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/opsdojo/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetDomain sets the "domain" field.
func (_c *QuestionCreate) SetDomain(v string) *QuestionCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuestionCreate) SetLevel(v int) *QuestionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *QuestionCreate) SetSeq(v int) *QuestionCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionCreate) SetPrompt(v string) *QuestionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetExpectedCategory sets the "expected_category" field.
func (_c *QuestionCreate) SetExpectedCategory(v string) *QuestionCreate {
	_c.mutation.SetExpectedCategory(v)
	return _c
}

// SetExpectedFormat sets the "expected_format" field.
func (_c *QuestionCreate) SetExpectedFormat(v question.ExpectedFormat) *QuestionCreate {
	_c.mutation.SetExpectedFormat(v)
	return _c
}

// SetExpectedValue sets the "expected_value" field.
func (_c *QuestionCreate) SetExpectedValue(v string) *QuestionCreate {
	_c.mutation.SetExpectedValue(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Question.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := question.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Question.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Question.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Question.seq"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Question.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedCategory(); !ok {
		return &ValidationError{Name: "expected_category", err: errors.New(`ent: missing required field "Question.expected_category"`)}
	}
	if _, ok := _c.mutation.ExpectedFormat(); !ok {
		return &ValidationError{Name: "expected_format", err: errors.New(`ent: missing required field "Question.expected_format"`)}
	}
	if v, ok := _c.mutation.ExpectedFormat(); ok {
		if err := question.ExpectedFormatValidator(v); err != nil {
			return &ValidationError{Name: "expected_format", err: fmt.Errorf(`ent: validator failed for field "Question.expected_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedValue(); !ok {
		return &ValidationError{Name: "expected_value", err: errors.New(`ent: missing required field "Question.expected_value"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := question.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Question.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(question.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(question.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ExpectedCategory(); ok {
		_spec.SetField(question.FieldExpectedCategory, field.TypeString, value)
		_node.ExpectedCategory = value
	}
	if value, ok := _c.mutation.ExpectedFormat(); ok {
		_spec.SetField(question.FieldExpectedFormat, field.TypeEnum, value)
		_node.ExpectedFormat = value
	}
	if value, ok := _c.mutation.ExpectedValue(); ok {
		_spec.SetField(question.FieldExpectedValue, field.TypeString, value)
		_node.ExpectedValue = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
