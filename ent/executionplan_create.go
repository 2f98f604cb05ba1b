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
	"github.com/elliebot/relay/ent/executionplan"
)

// ExecutionPlanCreate is the builder for creating a ExecutionPlan entity.
type ExecutionPlanCreate struct {
	config
	mutation *ExecutionPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannel sets the "channel" field.
func (_c *ExecutionPlanCreate) SetChannel(v string) *ExecutionPlanCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ExecutionPlanCreate) SetMode(v executionplan.Mode) *ExecutionPlanCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ExecutionPlanCreate) SetSteps(v []map[string]interface{}) *ExecutionPlanCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionPlanCreate) SetStatus(v executionplan.Status) *ExecutionPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableStatus(v *executionplan.Status) *ExecutionPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPartialOutput sets the "partial_output" field.
func (_c *ExecutionPlanCreate) SetPartialOutput(v string) *ExecutionPlanCreate {
	_c.mutation.SetPartialOutput(v)
	return _c
}

// SetNillablePartialOutput sets the "partial_output" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillablePartialOutput(v *string) *ExecutionPlanCreate {
	if v != nil {
		_c.SetPartialOutput(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionPlanCreate) SetCreatedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableCreatedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionPlanCreate) SetCompletedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableCompletedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionPlanCreate) SetID(v string) *ExecutionPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_c *ExecutionPlanCreate) Mutation() *ExecutionPlanMutation {
	return _c.mutation
}

// Save creates the ExecutionPlan in the database.
func (_c *ExecutionPlanCreate) Save(ctx context.Context) (*ExecutionPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionPlanCreate) SaveX(ctx context.Context) *ExecutionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionPlanCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionPlanCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "ExecutionPlan.channel"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ExecutionPlan.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := executionplan.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "ExecutionPlan.steps"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionPlan.created_at"`)}
	}
	return nil
}

func (_c *ExecutionPlanCreate) sqlSave(ctx context.Context) (*ExecutionPlan, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionPlanCreate) createSpec() (*ExecutionPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionplan.Table, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(executionplan.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(executionplan.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(executionplan.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PartialOutput(); ok {
		_spec.SetField(executionplan.FieldPartialOutput, field.TypeString, value)
		_node.PartialOutput = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionPlan.Create().
//		SetChannel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionPlanUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionPlanCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionPlanUpsertOne {
	_c.conflict = opts
	return &ExecutionPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionPlanCreate) OnConflictColumns(columns ...string) *ExecutionPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionPlanUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionPlanUpsertOne is the builder for "upsert"-ing
	//  one ExecutionPlan node.
	ExecutionPlanUpsertOne struct {
		create *ExecutionPlanCreate
	}

	// ExecutionPlanUpsert is the "OnConflict" setter.
	ExecutionPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannel sets the "channel" field.
func (u *ExecutionPlanUpsert) SetChannel(v string) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdateChannel() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldChannel)
	return u
}

// SetMode sets the "mode" field.
func (u *ExecutionPlanUpsert) SetMode(v executionplan.Mode) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdateMode() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldMode)
	return u
}

// SetSteps sets the "steps" field.
func (u *ExecutionPlanUpsert) SetSteps(v []map[string]interface{}) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdateSteps() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldSteps)
	return u
}

// SetStatus sets the "status" field.
func (u *ExecutionPlanUpsert) SetStatus(v executionplan.Status) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdateStatus() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldStatus)
	return u
}

// SetPartialOutput sets the "partial_output" field.
func (u *ExecutionPlanUpsert) SetPartialOutput(v string) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldPartialOutput, v)
	return u
}

// UpdatePartialOutput sets the "partial_output" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdatePartialOutput() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldPartialOutput)
	return u
}

// ClearPartialOutput clears the value of the "partial_output" field.
func (u *ExecutionPlanUpsert) ClearPartialOutput() *ExecutionPlanUpsert {
	u.SetNull(executionplan.FieldPartialOutput)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionPlanUpsert) SetCompletedAt(v time.Time) *ExecutionPlanUpsert {
	u.Set(executionplan.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionPlanUpsert) UpdateCompletedAt() *ExecutionPlanUpsert {
	u.SetExcluded(executionplan.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionPlanUpsert) ClearCompletedAt() *ExecutionPlanUpsert {
	u.SetNull(executionplan.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionplan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionPlanUpsertOne) UpdateNewValues() *ExecutionPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(executionplan.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(executionplan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionPlanUpsertOne) Ignore() *ExecutionPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionPlanUpsertOne) DoNothing() *ExecutionPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionPlanCreate.OnConflict
// documentation for more info.
func (u *ExecutionPlanUpsertOne) Update(set func(*ExecutionPlanUpsert)) *ExecutionPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *ExecutionPlanUpsertOne) SetChannel(v string) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdateChannel() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateChannel()
	})
}

// SetMode sets the "mode" field.
func (u *ExecutionPlanUpsertOne) SetMode(v executionplan.Mode) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdateMode() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateMode()
	})
}

// SetSteps sets the "steps" field.
func (u *ExecutionPlanUpsertOne) SetSteps(v []map[string]interface{}) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdateSteps() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateSteps()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionPlanUpsertOne) SetStatus(v executionplan.Status) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdateStatus() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateStatus()
	})
}

// SetPartialOutput sets the "partial_output" field.
func (u *ExecutionPlanUpsertOne) SetPartialOutput(v string) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetPartialOutput(v)
	})
}

// UpdatePartialOutput sets the "partial_output" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdatePartialOutput() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdatePartialOutput()
	})
}

// ClearPartialOutput clears the value of the "partial_output" field.
func (u *ExecutionPlanUpsertOne) ClearPartialOutput() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.ClearPartialOutput()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionPlanUpsertOne) SetCompletedAt(v time.Time) *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionPlanUpsertOne) UpdateCompletedAt() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionPlanUpsertOne) ClearCompletedAt() *ExecutionPlanUpsertOne {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ExecutionPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionPlanUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExecutionPlanUpsertOne.ID is not supported by MySQL driver. Use ExecutionPlanUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionPlanUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionPlanCreateBulk is the builder for creating many ExecutionPlan entities in bulk.
type ExecutionPlanCreateBulk struct {
	config
	err      error
	builders []*ExecutionPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionPlan entities in the database.
func (_c *ExecutionPlanCreateBulk) Save(ctx context.Context) ([]*ExecutionPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionPlanMutation)
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
func (_c *ExecutionPlanCreateBulk) SaveX(ctx context.Context) []*ExecutionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionPlanUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionPlanUpsertBulk {
	_c.conflict = opts
	return &ExecutionPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionPlanCreateBulk) OnConflictColumns(columns ...string) *ExecutionPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionPlanUpsertBulk{
		create: _c,
	}
}

// ExecutionPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionPlan nodes.
type ExecutionPlanUpsertBulk struct {
	create *ExecutionPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionplan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionPlanUpsertBulk) UpdateNewValues() *ExecutionPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(executionplan.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(executionplan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionPlanUpsertBulk) Ignore() *ExecutionPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionPlanUpsertBulk) DoNothing() *ExecutionPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionPlanCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionPlanUpsertBulk) Update(set func(*ExecutionPlanUpsert)) *ExecutionPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *ExecutionPlanUpsertBulk) SetChannel(v string) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdateChannel() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateChannel()
	})
}

// SetMode sets the "mode" field.
func (u *ExecutionPlanUpsertBulk) SetMode(v executionplan.Mode) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdateMode() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateMode()
	})
}

// SetSteps sets the "steps" field.
func (u *ExecutionPlanUpsertBulk) SetSteps(v []map[string]interface{}) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdateSteps() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateSteps()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionPlanUpsertBulk) SetStatus(v executionplan.Status) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdateStatus() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateStatus()
	})
}

// SetPartialOutput sets the "partial_output" field.
func (u *ExecutionPlanUpsertBulk) SetPartialOutput(v string) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetPartialOutput(v)
	})
}

// UpdatePartialOutput sets the "partial_output" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdatePartialOutput() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdatePartialOutput()
	})
}

// ClearPartialOutput clears the value of the "partial_output" field.
func (u *ExecutionPlanUpsertBulk) ClearPartialOutput() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.ClearPartialOutput()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionPlanUpsertBulk) SetCompletedAt(v time.Time) *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionPlanUpsertBulk) UpdateCompletedAt() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionPlanUpsertBulk) ClearCompletedAt() *ExecutionPlanUpsertBulk {
	return u.Update(func(s *ExecutionPlanUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ExecutionPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
