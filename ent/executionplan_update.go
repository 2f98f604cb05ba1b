// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/elliebot/relay/ent/executionplan"
	"github.com/elliebot/relay/ent/predicate"
)

// ExecutionPlanUpdate is the builder for updating ExecutionPlan entities.
type ExecutionPlanUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionPlanMutation
}

// Where appends a list predicates to the ExecutionPlanUpdate builder.
func (_u *ExecutionPlanUpdate) Where(ps ...predicate.ExecutionPlan) *ExecutionPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ExecutionPlanUpdate) SetChannel(v string) *ExecutionPlanUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableChannel(v *string) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExecutionPlanUpdate) SetMode(v executionplan.Mode) *ExecutionPlanUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableMode(v *executionplan.Mode) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionPlanUpdate) SetSteps(v []map[string]interface{}) *ExecutionPlanUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ExecutionPlanUpdate) AppendSteps(v []map[string]interface{}) *ExecutionPlanUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionPlanUpdate) SetStatus(v executionplan.Status) *ExecutionPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableStatus(v *executionplan.Status) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPartialOutput sets the "partial_output" field.
func (_u *ExecutionPlanUpdate) SetPartialOutput(v string) *ExecutionPlanUpdate {
	_u.mutation.SetPartialOutput(v)
	return _u
}

// SetNillablePartialOutput sets the "partial_output" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillablePartialOutput(v *string) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetPartialOutput(*v)
	}
	return _u
}

// ClearPartialOutput clears the value of the "partial_output" field.
func (_u *ExecutionPlanUpdate) ClearPartialOutput() *ExecutionPlanUpdate {
	_u.mutation.ClearPartialOutput()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionPlanUpdate) SetCompletedAt(v time.Time) *ExecutionPlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionPlanUpdate) ClearCompletedAt() *ExecutionPlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_u *ExecutionPlanUpdate) Mutation() *ExecutionPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionPlanUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := executionplan.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionplan.Table, executionplan.Columns, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(executionplan.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(executionplan.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionplan.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionplan.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PartialOutput(); ok {
		_spec.SetField(executionplan.FieldPartialOutput, field.TypeString, value)
	}
	if _u.mutation.PartialOutputCleared() {
		_spec.ClearField(executionplan.FieldPartialOutput, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionplan.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionPlanUpdateOne is the builder for updating a single ExecutionPlan entity.
type ExecutionPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionPlanMutation
}

// SetChannel sets the "channel" field.
func (_u *ExecutionPlanUpdateOne) SetChannel(v string) *ExecutionPlanUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableChannel(v *string) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExecutionPlanUpdateOne) SetMode(v executionplan.Mode) *ExecutionPlanUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableMode(v *executionplan.Mode) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionPlanUpdateOne) SetSteps(v []map[string]interface{}) *ExecutionPlanUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ExecutionPlanUpdateOne) AppendSteps(v []map[string]interface{}) *ExecutionPlanUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionPlanUpdateOne) SetStatus(v executionplan.Status) *ExecutionPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableStatus(v *executionplan.Status) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPartialOutput sets the "partial_output" field.
func (_u *ExecutionPlanUpdateOne) SetPartialOutput(v string) *ExecutionPlanUpdateOne {
	_u.mutation.SetPartialOutput(v)
	return _u
}

// SetNillablePartialOutput sets the "partial_output" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillablePartialOutput(v *string) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetPartialOutput(*v)
	}
	return _u
}

// ClearPartialOutput clears the value of the "partial_output" field.
func (_u *ExecutionPlanUpdateOne) ClearPartialOutput() *ExecutionPlanUpdateOne {
	_u.mutation.ClearPartialOutput()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionPlanUpdateOne) SetCompletedAt(v time.Time) *ExecutionPlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionPlanUpdateOne) ClearCompletedAt() *ExecutionPlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_u *ExecutionPlanUpdateOne) Mutation() *ExecutionPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionPlanUpdate builder.
func (_u *ExecutionPlanUpdateOne) Where(ps ...predicate.ExecutionPlan) *ExecutionPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionPlanUpdateOne) Select(field string, fields ...string) *ExecutionPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionPlan entity.
func (_u *ExecutionPlanUpdateOne) Save(ctx context.Context) (*ExecutionPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionPlanUpdateOne) SaveX(ctx context.Context) *ExecutionPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := executionplan.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionPlanUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionplan.Table, executionplan.Columns, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionplan.FieldID)
		for _, f := range fields {
			if !executionplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionplan.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(executionplan.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(executionplan.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionplan.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionplan.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PartialOutput(); ok {
		_spec.SetField(executionplan.FieldPartialOutput, field.TypeString, value)
	}
	if _u.mutation.PartialOutputCleared() {
		_spec.ClearField(executionplan.FieldPartialOutput, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionplan.FieldCompletedAt, field.TypeTime)
	}
	_node = &ExecutionPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
