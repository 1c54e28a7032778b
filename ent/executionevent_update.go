// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lucidbard/codequest/ent/executionevent"
	"github.com/lucidbard/codequest/ent/predicate"
)

// ExecutionEventUpdate is the builder for updating ExecutionEvent entities.
type ExecutionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionEventMutation
}

// Where appends a list predicates to the ExecutionEventUpdate builder.
func (_u *ExecutionEventUpdate) Where(ps ...predicate.ExecutionEvent) *ExecutionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionEventUpdate) SetSessionID(v string) *ExecutionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableSessionID(v *string) *ExecutionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *ExecutionEventUpdate) SetStageID(v string) *ExecutionEventUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableStageID(v *string) *ExecutionEventUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetCellIndex sets the "cell_index" field.
func (_u *ExecutionEventUpdate) SetCellIndex(v int) *ExecutionEventUpdate {
	_u.mutation.ResetCellIndex()
	_u.mutation.SetCellIndex(v)
	return _u
}

// SetNillableCellIndex sets the "cell_index" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableCellIndex(v *int) *ExecutionEventUpdate {
	if v != nil {
		_u.SetCellIndex(*v)
	}
	return _u
}

// AddCellIndex adds value to the "cell_index" field.
func (_u *ExecutionEventUpdate) AddCellIndex(v int) *ExecutionEventUpdate {
	_u.mutation.AddCellIndex(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ExecutionEventUpdate) SetSource(v string) *ExecutionEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableSource(v *string) *ExecutionEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionEventUpdate) SetOutput(v string) *ExecutionEventUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableOutput(v *string) *ExecutionEventUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExecutionEventUpdate) SetSuccess(v bool) *ExecutionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableSuccess(v *bool) *ExecutionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionEventUpdate) SetErrorMessage(v string) *ExecutionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableErrorMessage(v *string) *ExecutionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionEventUpdate) SetDurationMs(v int64) *ExecutionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionEventUpdate) SetNillableDurationMs(v *int64) *ExecutionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionEventUpdate) AddDurationMs(v int64) *ExecutionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_u *ExecutionEventUpdate) Mutation() *ExecutionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionevent.Table, executionevent.Columns, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(executionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(executionevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CellIndex(); ok {
		_spec.SetField(executionevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCellIndex(); ok {
		_spec.AddField(executionevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(executionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executionevent.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(executionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionEventUpdateOne is the builder for updating a single ExecutionEvent entity.
type ExecutionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionEventUpdateOne) SetSessionID(v string) *ExecutionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableSessionID(v *string) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *ExecutionEventUpdateOne) SetStageID(v string) *ExecutionEventUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableStageID(v *string) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetCellIndex sets the "cell_index" field.
func (_u *ExecutionEventUpdateOne) SetCellIndex(v int) *ExecutionEventUpdateOne {
	_u.mutation.ResetCellIndex()
	_u.mutation.SetCellIndex(v)
	return _u
}

// SetNillableCellIndex sets the "cell_index" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableCellIndex(v *int) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetCellIndex(*v)
	}
	return _u
}

// AddCellIndex adds value to the "cell_index" field.
func (_u *ExecutionEventUpdateOne) AddCellIndex(v int) *ExecutionEventUpdateOne {
	_u.mutation.AddCellIndex(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ExecutionEventUpdateOne) SetSource(v string) *ExecutionEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableSource(v *string) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionEventUpdateOne) SetOutput(v string) *ExecutionEventUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableOutput(v *string) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExecutionEventUpdateOne) SetSuccess(v bool) *ExecutionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableSuccess(v *bool) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionEventUpdateOne) SetErrorMessage(v string) *ExecutionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableErrorMessage(v *string) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionEventUpdateOne) SetDurationMs(v int64) *ExecutionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionEventUpdateOne) SetNillableDurationMs(v *int64) *ExecutionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionEventUpdateOne) AddDurationMs(v int64) *ExecutionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_u *ExecutionEventUpdateOne) Mutation() *ExecutionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionEventUpdate builder.
func (_u *ExecutionEventUpdateOne) Where(ps ...predicate.ExecutionEvent) *ExecutionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionEventUpdateOne) Select(field string, fields ...string) *ExecutionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionEvent entity.
func (_u *ExecutionEventUpdateOne) Save(ctx context.Context) (*ExecutionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionEventUpdateOne) SaveX(ctx context.Context) *ExecutionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionEventUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionevent.Table, executionevent.Columns, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionevent.FieldID)
		for _, f := range fields {
			if !executionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(executionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(executionevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CellIndex(); ok {
		_spec.SetField(executionevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCellIndex(); ok {
		_spec.AddField(executionevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(executionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executionevent.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(executionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &ExecutionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
