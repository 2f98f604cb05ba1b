// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliebot/relay/ent/syncqueueitem"
)

// SyncQueueItemCreate is the builder for creating a SyncQueueItem entity.
type SyncQueueItemCreate struct {
	config
	mutation *SyncQueueItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAction sets the "action" field.
func (_c *SyncQueueItemCreate) SetAction(v syncqueueitem.Action) *SyncQueueItemCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *SyncQueueItemCreate) SetTargetID(v string) *SyncQueueItemCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableTargetID(v *string) *SyncQueueItemCreate {
	if v != nil {
		_c.SetTargetID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SyncQueueItemCreate) SetPayload(v map[string]interface{}) *SyncQueueItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncQueueItemCreate) SetStatus(v syncqueueitem.Status) *SyncQueueItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableStatus(v *syncqueueitem.Status) *SyncQueueItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SyncQueueItemCreate) SetAttempts(v int) *SyncQueueItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableAttempts(v *int) *SyncQueueItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *SyncQueueItemCreate) SetMaxAttempts(v int) *SyncQueueItemCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableMaxAttempts(v *int) *SyncQueueItemCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SyncQueueItemCreate) SetLastError(v string) *SyncQueueItemCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableLastError(v *string) *SyncQueueItemCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *SyncQueueItemCreate) SetNextRetryAt(v time.Time) *SyncQueueItemCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableNextRetryAt(v *time.Time) *SyncQueueItemCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncQueueItemCreate) SetCreatedAt(v time.Time) *SyncQueueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableCreatedAt(v *time.Time) *SyncQueueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SyncQueueItemCreate) SetCompletedAt(v time.Time) *SyncQueueItemCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SyncQueueItemCreate) SetNillableCompletedAt(v *time.Time) *SyncQueueItemCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncQueueItemCreate) SetID(v string) *SyncQueueItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SyncQueueItemMutation object of the builder.
func (_c *SyncQueueItemCreate) Mutation() *SyncQueueItemMutation {
	return _c.mutation
}

// Save creates the SyncQueueItem in the database.
func (_c *SyncQueueItemCreate) Save(ctx context.Context) (*SyncQueueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncQueueItemCreate) SaveX(ctx context.Context) *SyncQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncQueueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncQueueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncQueueItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := syncqueueitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := syncqueueitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := syncqueueitem.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		v := syncqueueitem.DefaultNextRetryAt()
		_c.mutation.SetNextRetryAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncqueueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncQueueItemCreate) check() error {
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SyncQueueItem.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := syncqueueitem.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncQueueItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncQueueItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SyncQueueItem.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "SyncQueueItem.max_attempts"`)}
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		return &ValidationError{Name: "next_retry_at", err: errors.New(`ent: missing required field "SyncQueueItem.next_retry_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncQueueItem.created_at"`)}
	}
	return nil
}

func (_c *SyncQueueItemCreate) sqlSave(ctx context.Context) (*SyncQueueItem, error) {
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
			return nil, fmt.Errorf("unexpected SyncQueueItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncQueueItemCreate) createSpec() (*SyncQueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncQueueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncqueueitem.Table, sqlgraph.NewFieldSpec(syncqueueitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(syncqueueitem.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(syncqueueitem.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(syncqueueitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncqueueitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(syncqueueitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(syncqueueitem.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(syncqueueitem.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(syncqueueitem.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncqueueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(syncqueueitem.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncQueueItem.Create().
//		SetAction(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncQueueItemUpsert) {
//			SetAction(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncQueueItemCreate) OnConflict(opts ...sql.ConflictOption) *SyncQueueItemUpsertOne {
	_c.conflict = opts
	return &SyncQueueItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncQueueItemCreate) OnConflictColumns(columns ...string) *SyncQueueItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncQueueItemUpsertOne{
		create: _c,
	}
}

type (
	// SyncQueueItemUpsertOne is the builder for "upsert"-ing
	//  one SyncQueueItem node.
	SyncQueueItemUpsertOne struct {
		create *SyncQueueItemCreate
	}

	// SyncQueueItemUpsert is the "OnConflict" setter.
	SyncQueueItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetAction sets the "action" field.
func (u *SyncQueueItemUpsert) SetAction(v syncqueueitem.Action) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateAction() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldAction)
	return u
}

// SetTargetID sets the "target_id" field.
func (u *SyncQueueItemUpsert) SetTargetID(v string) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldTargetID, v)
	return u
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateTargetID() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldTargetID)
	return u
}

// ClearTargetID clears the value of the "target_id" field.
func (u *SyncQueueItemUpsert) ClearTargetID() *SyncQueueItemUpsert {
	u.SetNull(syncqueueitem.FieldTargetID)
	return u
}

// SetPayload sets the "payload" field.
func (u *SyncQueueItemUpsert) SetPayload(v map[string]interface{}) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdatePayload() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *SyncQueueItemUpsert) ClearPayload() *SyncQueueItemUpsert {
	u.SetNull(syncqueueitem.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *SyncQueueItemUpsert) SetStatus(v syncqueueitem.Status) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateStatus() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SyncQueueItemUpsert) SetAttempts(v int) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateAttempts() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *SyncQueueItemUpsert) AddAttempts(v int) *SyncQueueItemUpsert {
	u.Add(syncqueueitem.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *SyncQueueItemUpsert) SetMaxAttempts(v int) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateMaxAttempts() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *SyncQueueItemUpsert) AddMaxAttempts(v int) *SyncQueueItemUpsert {
	u.Add(syncqueueitem.FieldMaxAttempts, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *SyncQueueItemUpsert) SetLastError(v string) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateLastError() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *SyncQueueItemUpsert) ClearLastError() *SyncQueueItemUpsert {
	u.SetNull(syncqueueitem.FieldLastError)
	return u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *SyncQueueItemUpsert) SetNextRetryAt(v time.Time) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldNextRetryAt, v)
	return u
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateNextRetryAt() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldNextRetryAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncQueueItemUpsert) SetCompletedAt(v time.Time) *SyncQueueItemUpsert {
	u.Set(syncqueueitem.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsert) UpdateCompletedAt() *SyncQueueItemUpsert {
	u.SetExcluded(syncqueueitem.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncQueueItemUpsert) ClearCompletedAt() *SyncQueueItemUpsert {
	u.SetNull(syncqueueitem.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(syncqueueitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncQueueItemUpsertOne) UpdateNewValues() *SyncQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(syncqueueitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(syncqueueitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncQueueItemUpsertOne) Ignore() *SyncQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncQueueItemUpsertOne) DoNothing() *SyncQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncQueueItemCreate.OnConflict
// documentation for more info.
func (u *SyncQueueItemUpsertOne) Update(set func(*SyncQueueItemUpsert)) *SyncQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncQueueItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *SyncQueueItemUpsertOne) SetAction(v syncqueueitem.Action) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateAction() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateAction()
	})
}

// SetTargetID sets the "target_id" field.
func (u *SyncQueueItemUpsertOne) SetTargetID(v string) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateTargetID() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateTargetID()
	})
}

// ClearTargetID clears the value of the "target_id" field.
func (u *SyncQueueItemUpsertOne) ClearTargetID() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearTargetID()
	})
}

// SetPayload sets the "payload" field.
func (u *SyncQueueItemUpsertOne) SetPayload(v map[string]interface{}) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdatePayload() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *SyncQueueItemUpsertOne) ClearPayload() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *SyncQueueItemUpsertOne) SetStatus(v syncqueueitem.Status) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateStatus() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SyncQueueItemUpsertOne) SetAttempts(v int) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SyncQueueItemUpsertOne) AddAttempts(v int) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateAttempts() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *SyncQueueItemUpsertOne) SetMaxAttempts(v int) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *SyncQueueItemUpsertOne) AddMaxAttempts(v int) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateMaxAttempts() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *SyncQueueItemUpsertOne) SetLastError(v string) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateLastError() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SyncQueueItemUpsertOne) ClearLastError() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearLastError()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *SyncQueueItemUpsertOne) SetNextRetryAt(v time.Time) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateNextRetryAt() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateNextRetryAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncQueueItemUpsertOne) SetCompletedAt(v time.Time) *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsertOne) UpdateCompletedAt() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncQueueItemUpsertOne) ClearCompletedAt() *SyncQueueItemUpsertOne {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SyncQueueItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncQueueItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncQueueItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncQueueItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SyncQueueItemUpsertOne.ID is not supported by MySQL driver. Use SyncQueueItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncQueueItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncQueueItemCreateBulk is the builder for creating many SyncQueueItem entities in bulk.
type SyncQueueItemCreateBulk struct {
	config
	err      error
	builders []*SyncQueueItemCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncQueueItem entities in the database.
func (_c *SyncQueueItemCreateBulk) Save(ctx context.Context) ([]*SyncQueueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncQueueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncQueueItemMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *SyncQueueItemCreateBulk) SaveX(ctx context.Context) []*SyncQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncQueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncQueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncQueueItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncQueueItemUpsert) {
//			SetAction(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncQueueItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncQueueItemUpsertBulk {
	_c.conflict = opts
	return &SyncQueueItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncQueueItemCreateBulk) OnConflictColumns(columns ...string) *SyncQueueItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncQueueItemUpsertBulk{
		create: _c,
	}
}

// SyncQueueItemUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncQueueItem nodes.
type SyncQueueItemUpsertBulk struct {
	create *SyncQueueItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(syncqueueitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncQueueItemUpsertBulk) UpdateNewValues() *SyncQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(syncqueueitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(syncqueueitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncQueueItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncQueueItemUpsertBulk) Ignore() *SyncQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncQueueItemUpsertBulk) DoNothing() *SyncQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncQueueItemCreateBulk.OnConflict
// documentation for more info.
func (u *SyncQueueItemUpsertBulk) Update(set func(*SyncQueueItemUpsert)) *SyncQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncQueueItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *SyncQueueItemUpsertBulk) SetAction(v syncqueueitem.Action) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateAction() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateAction()
	})
}

// SetTargetID sets the "target_id" field.
func (u *SyncQueueItemUpsertBulk) SetTargetID(v string) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateTargetID() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateTargetID()
	})
}

// ClearTargetID clears the value of the "target_id" field.
func (u *SyncQueueItemUpsertBulk) ClearTargetID() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearTargetID()
	})
}

// SetPayload sets the "payload" field.
func (u *SyncQueueItemUpsertBulk) SetPayload(v map[string]interface{}) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdatePayload() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *SyncQueueItemUpsertBulk) ClearPayload() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *SyncQueueItemUpsertBulk) SetStatus(v syncqueueitem.Status) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateStatus() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SyncQueueItemUpsertBulk) SetAttempts(v int) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SyncQueueItemUpsertBulk) AddAttempts(v int) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateAttempts() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *SyncQueueItemUpsertBulk) SetMaxAttempts(v int) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *SyncQueueItemUpsertBulk) AddMaxAttempts(v int) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateMaxAttempts() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *SyncQueueItemUpsertBulk) SetLastError(v string) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateLastError() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SyncQueueItemUpsertBulk) ClearLastError() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearLastError()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *SyncQueueItemUpsertBulk) SetNextRetryAt(v time.Time) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateNextRetryAt() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateNextRetryAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncQueueItemUpsertBulk) SetCompletedAt(v time.Time) *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncQueueItemUpsertBulk) UpdateCompletedAt() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncQueueItemUpsertBulk) ClearCompletedAt() *SyncQueueItemUpsertBulk {
	return u.Update(func(s *SyncQueueItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SyncQueueItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncQueueItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncQueueItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncQueueItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
