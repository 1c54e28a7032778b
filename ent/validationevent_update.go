// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lucidbard/codequest/ent/predicate"
	"github.com/lucidbard/codequest/ent/validationevent"
)

// ValidationEventUpdate is the builder for updating ValidationEvent entities.
type ValidationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationEventMutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdate) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationEventUpdate) SetSessionID(v string) *ValidationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableSessionID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *ValidationEventUpdate) SetStageID(v string) *ValidationEventUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableStageID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetCellIndex sets the "cell_index" field.
func (_u *ValidationEventUpdate) SetCellIndex(v int) *ValidationEventUpdate {
	_u.mutation.ResetCellIndex()
	_u.mutation.SetCellIndex(v)
	return _u
}

// SetNillableCellIndex sets the "cell_index" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableCellIndex(v *int) *ValidationEventUpdate {
	if v != nil {
		_u.SetCellIndex(*v)
	}
	return _u
}

// AddCellIndex adds value to the "cell_index" field.
func (_u *ValidationEventUpdate) AddCellIndex(v int) *ValidationEventUpdate {
	_u.mutation.AddCellIndex(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ValidationEventUpdate) SetPassed(v bool) *ValidationEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillablePassed(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ValidationEventUpdate) SetStrategy(v string) *ValidationEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableStrategy(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ValidationEventUpdate) SetCategory(v string) *ValidationEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableCategory(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ValidationEventUpdate) SetDetail(v string) *ValidationEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableDetail(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetConfigProblem sets the "config_problem" field.
func (_u *ValidationEventUpdate) SetConfigProblem(v bool) *ValidationEventUpdate {
	_u.mutation.SetConfigProblem(v)
	return _u
}

// SetNillableConfigProblem sets the "config_problem" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableConfigProblem(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetConfigProblem(*v)
	}
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdate) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ValidationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(validationevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CellIndex(); ok {
		_spec.SetField(validationevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCellIndex(); ok {
		_spec.AddField(validationevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(validationevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(validationevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(validationevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigProblem(); ok {
		_spec.SetField(validationevent.FieldConfigProblem, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationEventUpdateOne is the builder for updating a single ValidationEvent entity.
type ValidationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationEventUpdateOne) SetSessionID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableSessionID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *ValidationEventUpdateOne) SetStageID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableStageID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetCellIndex sets the "cell_index" field.
func (_u *ValidationEventUpdateOne) SetCellIndex(v int) *ValidationEventUpdateOne {
	_u.mutation.ResetCellIndex()
	_u.mutation.SetCellIndex(v)
	return _u
}

// SetNillableCellIndex sets the "cell_index" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableCellIndex(v *int) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetCellIndex(*v)
	}
	return _u
}

// AddCellIndex adds value to the "cell_index" field.
func (_u *ValidationEventUpdateOne) AddCellIndex(v int) *ValidationEventUpdateOne {
	_u.mutation.AddCellIndex(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ValidationEventUpdateOne) SetPassed(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillablePassed(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ValidationEventUpdateOne) SetStrategy(v string) *ValidationEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableStrategy(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ValidationEventUpdateOne) SetCategory(v string) *ValidationEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableCategory(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ValidationEventUpdateOne) SetDetail(v string) *ValidationEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableDetail(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetConfigProblem sets the "config_problem" field.
func (_u *ValidationEventUpdateOne) SetConfigProblem(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetConfigProblem(v)
	return _u
}

// SetNillableConfigProblem sets the "config_problem" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableConfigProblem(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetConfigProblem(*v)
	}
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdateOne) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdateOne) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationEventUpdateOne) Select(field string, fields ...string) *ValidationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationEvent entity.
func (_u *ValidationEventUpdateOne) Save(ctx context.Context) (*ValidationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) SaveX(ctx context.Context) *ValidationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ValidationEventUpdateOne) sqlSave(ctx context.Context) (_node *ValidationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationevent.FieldID)
		for _, f := range fields {
			if !validationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationevent.FieldID {
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
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(validationevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CellIndex(); ok {
		_spec.SetField(validationevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCellIndex(); ok {
		_spec.AddField(validationevent.FieldCellIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(validationevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(validationevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(validationevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigProblem(); ok {
		_spec.SetField(validationevent.FieldConfigProblem, field.TypeBool, value)
	}
	_node = &ValidationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
