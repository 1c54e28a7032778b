// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lucidbard/codequest/ent/validationevent"
)

// ValidationEventCreate is the builder for creating a ValidationEvent entity.
type ValidationEventCreate struct {
	config
	mutation *ValidationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ValidationEventCreate) SetSequence(v int64) *ValidationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationEventCreate) SetTimestamp(v time.Time) *ValidationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableTimestamp(v *time.Time) *ValidationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ValidationEventCreate) SetSessionID(v string) *ValidationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *ValidationEventCreate) SetStageID(v string) *ValidationEventCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetCellIndex sets the "cell_index" field.
func (_c *ValidationEventCreate) SetCellIndex(v int) *ValidationEventCreate {
	_c.mutation.SetCellIndex(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ValidationEventCreate) SetPassed(v bool) *ValidationEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *ValidationEventCreate) SetStrategy(v string) *ValidationEventCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableStrategy(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ValidationEventCreate) SetCategory(v string) *ValidationEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableCategory(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ValidationEventCreate) SetDetail(v string) *ValidationEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableDetail(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetConfigProblem sets the "config_problem" field.
func (_c *ValidationEventCreate) SetConfigProblem(v bool) *ValidationEventCreate {
	_c.mutation.SetConfigProblem(v)
	return _c
}

// SetNillableConfigProblem sets the "config_problem" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableConfigProblem(v *bool) *ValidationEventCreate {
	if v != nil {
		_c.SetConfigProblem(*v)
	}
	return _c
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_c *ValidationEventCreate) Mutation() *ValidationEventMutation {
	return _c.mutation
}

// Save creates the ValidationEvent in the database.
func (_c *ValidationEventCreate) Save(ctx context.Context) (*ValidationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationEventCreate) SaveX(ctx context.Context) *ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		v := validationevent.DefaultStrategy
		_c.mutation.SetStrategy(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := validationevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := validationevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.ConfigProblem(); !ok {
		v := validationevent.DefaultConfigProblem
		_c.mutation.SetConfigProblem(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ValidationEvent.session_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "ValidationEvent.stage_id"`)}
	}
	if _, ok := _c.mutation.CellIndex(); !ok {
		return &ValidationError{Name: "cell_index", err: errors.New(`ent: missing required field "ValidationEvent.cell_index"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ValidationEvent.passed"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "ValidationEvent.strategy"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ValidationEvent.category"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ValidationEvent.detail"`)}
	}
	if _, ok := _c.mutation.ConfigProblem(); !ok {
		return &ValidationError{Name: "config_problem", err: errors.New(`ent: missing required field "ValidationEvent.config_problem"`)}
	}
	return nil
}

func (_c *ValidationEventCreate) sqlSave(ctx context.Context) (*ValidationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationEventCreate) createSpec() (*ValidationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationevent.Table, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(validationevent.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.CellIndex(); ok {
		_spec.SetField(validationevent.FieldCellIndex, field.TypeInt, value)
		_node.CellIndex = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(validationevent.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(validationevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(validationevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.ConfigProblem(); ok {
		_spec.SetField(validationevent.FieldConfigProblem, field.TypeBool, value)
		_node.ConfigProblem = value
	}
	return _node, _spec
}

// ValidationEventCreateBulk is the builder for creating many ValidationEvent entities in bulk.
type ValidationEventCreateBulk struct {
	config
	err      error
	builders []*ValidationEventCreate
}

// Save creates the ValidationEvent entities in the database.
func (_c *ValidationEventCreateBulk) Save(ctx context.Context) ([]*ValidationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ValidationEventCreateBulk) SaveX(ctx context.Context) []*ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
