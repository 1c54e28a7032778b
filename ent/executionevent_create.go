// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lucidbard/codequest/ent/executionevent"
)

// ExecutionEventCreate is the builder for creating a ExecutionEvent entity.
type ExecutionEventCreate struct {
	config
	mutation *ExecutionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionEventCreate) SetSequence(v int64) *ExecutionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExecutionEventCreate) SetTimestamp(v time.Time) *ExecutionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableTimestamp(v *time.Time) *ExecutionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExecutionEventCreate) SetSessionID(v string) *ExecutionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *ExecutionEventCreate) SetStageID(v string) *ExecutionEventCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetCellIndex sets the "cell_index" field.
func (_c *ExecutionEventCreate) SetCellIndex(v int) *ExecutionEventCreate {
	_c.mutation.SetCellIndex(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ExecutionEventCreate) SetSource(v string) *ExecutionEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExecutionEventCreate) SetOutput(v string) *ExecutionEventCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableOutput(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExecutionEventCreate) SetSuccess(v bool) *ExecutionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionEventCreate) SetErrorMessage(v string) *ExecutionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableErrorMessage(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionEventCreate) SetDurationMs(v int64) *ExecutionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableDurationMs(v *int64) *ExecutionEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_c *ExecutionEventCreate) Mutation() *ExecutionEventMutation {
	return _c.mutation
}

// Save creates the ExecutionEvent in the database.
func (_c *ExecutionEventCreate) Save(ctx context.Context) (*ExecutionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionEventCreate) SaveX(ctx context.Context) *ExecutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := executionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Output(); !ok {
		v := executionevent.DefaultOutput
		_c.mutation.SetOutput(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := executionevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := executionevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExecutionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExecutionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "ExecutionEvent.stage_id"`)}
	}
	if _, ok := _c.mutation.CellIndex(); !ok {
		return &ValidationError{Name: "cell_index", err: errors.New(`ent: missing required field "ExecutionEvent.cell_index"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ExecutionEvent.source"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "ExecutionEvent.output"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ExecutionEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "ExecutionEvent.error_message"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ExecutionEvent.duration_ms"`)}
	}
	return nil
}

func (_c *ExecutionEventCreate) sqlSave(ctx context.Context) (*ExecutionEvent, error) {
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

func (_c *ExecutionEventCreate) createSpec() (*ExecutionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionevent.Table, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(executionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(executionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(executionevent.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.CellIndex(); ok {
		_spec.SetField(executionevent.FieldCellIndex, field.TypeInt, value)
		_node.CellIndex = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(executionevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(executionevent.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(executionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// ExecutionEventCreateBulk is the builder for creating many ExecutionEvent entities in bulk.
type ExecutionEventCreateBulk struct {
	config
	err      error
	builders []*ExecutionEventCreate
}

// Save creates the ExecutionEvent entities in the database.
func (_c *ExecutionEventCreateBulk) Save(ctx context.Context) ([]*ExecutionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionEventMutation)
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
func (_c *ExecutionEventCreateBulk) SaveX(ctx context.Context) []*ExecutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
