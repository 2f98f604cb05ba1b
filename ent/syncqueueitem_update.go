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
	"github.com/elliebot/relay/ent/predicate"
	"github.com/elliebot/relay/ent/syncqueueitem"
)

// SyncQueueItemUpdate is the builder for updating SyncQueueItem entities.
type SyncQueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *SyncQueueItemMutation
}

// Where appends a list predicates to the SyncQueueItemUpdate builder.
func (_u *SyncQueueItemUpdate) Where(ps ...predicate.SyncQueueItem) *SyncQueueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *SyncQueueItemUpdate) SetAction(v syncqueueitem.Action) *SyncQueueItemUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableAction(v *syncqueueitem.Action) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *SyncQueueItemUpdate) SetTargetID(v string) *SyncQueueItemUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableTargetID(v *string) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *SyncQueueItemUpdate) ClearTargetID() *SyncQueueItemUpdate {
	_u.mutation.ClearTargetID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SyncQueueItemUpdate) SetPayload(v map[string]interface{}) *SyncQueueItemUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *SyncQueueItemUpdate) ClearPayload() *SyncQueueItemUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncQueueItemUpdate) SetStatus(v syncqueueitem.Status) *SyncQueueItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableStatus(v *syncqueueitem.Status) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SyncQueueItemUpdate) SetAttempts(v int) *SyncQueueItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableAttempts(v *int) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SyncQueueItemUpdate) AddAttempts(v int) *SyncQueueItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *SyncQueueItemUpdate) SetMaxAttempts(v int) *SyncQueueItemUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableMaxAttempts(v *int) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *SyncQueueItemUpdate) AddMaxAttempts(v int) *SyncQueueItemUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SyncQueueItemUpdate) SetLastError(v string) *SyncQueueItemUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableLastError(v *string) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SyncQueueItemUpdate) ClearLastError() *SyncQueueItemUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SyncQueueItemUpdate) SetNextRetryAt(v time.Time) *SyncQueueItemUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableNextRetryAt(v *time.Time) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncQueueItemUpdate) SetCompletedAt(v time.Time) *SyncQueueItemUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncQueueItemUpdate) SetNillableCompletedAt(v *time.Time) *SyncQueueItemUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncQueueItemUpdate) ClearCompletedAt() *SyncQueueItemUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SyncQueueItemMutation object of the builder.
func (_u *SyncQueueItemUpdate) Mutation() *SyncQueueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncQueueItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncQueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncQueueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncQueueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncQueueItemUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := syncqueueitem.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncQueueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncqueueitem.Table, syncqueueitem.Columns, sqlgraph.NewFieldSpec(syncqueueitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(syncqueueitem.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(syncqueueitem.FieldTargetID, field.TypeString, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(syncqueueitem.FieldTargetID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(syncqueueitem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(syncqueueitem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(syncqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(syncqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(syncqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(syncqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(syncqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(syncqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(syncqueueitem.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncqueueitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncqueueitem.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncQueueItemUpdateOne is the builder for updating a single SyncQueueItem entity.
type SyncQueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncQueueItemMutation
}

// SetAction sets the "action" field.
func (_u *SyncQueueItemUpdateOne) SetAction(v syncqueueitem.Action) *SyncQueueItemUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableAction(v *syncqueueitem.Action) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *SyncQueueItemUpdateOne) SetTargetID(v string) *SyncQueueItemUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableTargetID(v *string) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *SyncQueueItemUpdateOne) ClearTargetID() *SyncQueueItemUpdateOne {
	_u.mutation.ClearTargetID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SyncQueueItemUpdateOne) SetPayload(v map[string]interface{}) *SyncQueueItemUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *SyncQueueItemUpdateOne) ClearPayload() *SyncQueueItemUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncQueueItemUpdateOne) SetStatus(v syncqueueitem.Status) *SyncQueueItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableStatus(v *syncqueueitem.Status) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SyncQueueItemUpdateOne) SetAttempts(v int) *SyncQueueItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableAttempts(v *int) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SyncQueueItemUpdateOne) AddAttempts(v int) *SyncQueueItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *SyncQueueItemUpdateOne) SetMaxAttempts(v int) *SyncQueueItemUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableMaxAttempts(v *int) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *SyncQueueItemUpdateOne) AddMaxAttempts(v int) *SyncQueueItemUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SyncQueueItemUpdateOne) SetLastError(v string) *SyncQueueItemUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableLastError(v *string) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SyncQueueItemUpdateOne) ClearLastError() *SyncQueueItemUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SyncQueueItemUpdateOne) SetNextRetryAt(v time.Time) *SyncQueueItemUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableNextRetryAt(v *time.Time) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncQueueItemUpdateOne) SetCompletedAt(v time.Time) *SyncQueueItemUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncQueueItemUpdateOne) SetNillableCompletedAt(v *time.Time) *SyncQueueItemUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncQueueItemUpdateOne) ClearCompletedAt() *SyncQueueItemUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SyncQueueItemMutation object of the builder.
func (_u *SyncQueueItemUpdateOne) Mutation() *SyncQueueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncQueueItemUpdate builder.
func (_u *SyncQueueItemUpdateOne) Where(ps ...predicate.SyncQueueItem) *SyncQueueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncQueueItemUpdateOne) Select(field string, fields ...string) *SyncQueueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncQueueItem entity.
func (_u *SyncQueueItemUpdateOne) Save(ctx context.Context) (*SyncQueueItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncQueueItemUpdateOne) SaveX(ctx context.Context) *SyncQueueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncQueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncQueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncQueueItemUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := syncqueueitem.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncQueueItemUpdateOne) sqlSave(ctx context.Context) (_node *SyncQueueItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncqueueitem.Table, syncqueueitem.Columns, sqlgraph.NewFieldSpec(syncqueueitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncQueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncqueueitem.FieldID)
		for _, f := range fields {
			if !syncqueueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncqueueitem.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(syncqueueitem.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(syncqueueitem.FieldTargetID, field.TypeString, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(syncqueueitem.FieldTargetID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(syncqueueitem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(syncqueueitem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(syncqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(syncqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(syncqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(syncqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(syncqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(syncqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(syncqueueitem.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncqueueitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncqueueitem.FieldCompletedAt, field.TypeTime)
	}
	_node = &SyncQueueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
