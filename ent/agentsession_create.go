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
	"github.com/elliebot/relay/ent/agentsession"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannel sets the "channel" field.
func (_c *AgentSessionCreate) SetChannel(v string) *AgentSessionCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *AgentSessionCreate) SetAgent(v string) *AgentSessionCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetState sets the "state" field.
func (_c *AgentSessionCreate) SetState(v agentsession.State) *AgentSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableState(v *agentsession.State) *AgentSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *AgentSessionCreate) SetLastActivity(v time.Time) *AgentSessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastActivity(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := agentsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := agentsession.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "AgentSession.channel"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "AgentSession.agent"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "AgentSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := agentsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "AgentSession.last_activity"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(agentsession.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(agentsession.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(agentsession.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.Create().
//		SetChannel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertOne {
	_c.conflict = opts
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflictColumns(columns ...string) *AgentSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

type (
	// AgentSessionUpsertOne is the builder for "upsert"-ing
	//  one AgentSession node.
	AgentSessionUpsertOne struct {
		create *AgentSessionCreate
	}

	// AgentSessionUpsert is the "OnConflict" setter.
	AgentSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannel sets the "channel" field.
func (u *AgentSessionUpsert) SetChannel(v string) *AgentSessionUpsert {
	u.Set(agentsession.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateChannel() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldChannel)
	return u
}

// SetAgent sets the "agent" field.
func (u *AgentSessionUpsert) SetAgent(v string) *AgentSessionUpsert {
	u.Set(agentsession.FieldAgent, v)
	return u
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateAgent() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldAgent)
	return u
}

// SetState sets the "state" field.
func (u *AgentSessionUpsert) SetState(v agentsession.State) *AgentSessionUpsert {
	u.Set(agentsession.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateState() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldState)
	return u
}

// SetLastActivity sets the "last_activity" field.
func (u *AgentSessionUpsert) SetLastActivity(v time.Time) *AgentSessionUpsert {
	u.Set(agentsession.FieldLastActivity, v)
	return u
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateLastActivity() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldLastActivity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertOne) UpdateNewValues() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentSessionUpsertOne) Ignore() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertOne) DoNothing() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreate.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertOne) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *AgentSessionUpsertOne) SetChannel(v string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateChannel() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateChannel()
	})
}

// SetAgent sets the "agent" field.
func (u *AgentSessionUpsertOne) SetAgent(v string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateAgent() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateAgent()
	})
}

// SetState sets the "state" field.
func (u *AgentSessionUpsertOne) SetState(v agentsession.State) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateState() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateState()
	})
}

// SetLastActivity sets the "last_activity" field.
func (u *AgentSessionUpsertOne) SetLastActivity(v time.Time) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetLastActivity(v)
	})
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateLastActivity() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateLastActivity()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentSessionUpsertOne.ID is not supported by MySQL driver. Use AgentSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertBulk {
	_c.conflict = opts
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflictColumns(columns ...string) *AgentSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// AgentSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentSession nodes.
type AgentSessionUpsertBulk struct {
	create *AgentSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) UpdateNewValues() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) Ignore() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertBulk) DoNothing() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertBulk) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *AgentSessionUpsertBulk) SetChannel(v string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateChannel() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateChannel()
	})
}

// SetAgent sets the "agent" field.
func (u *AgentSessionUpsertBulk) SetAgent(v string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateAgent() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateAgent()
	})
}

// SetState sets the "state" field.
func (u *AgentSessionUpsertBulk) SetState(v agentsession.State) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateState() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateState()
	})
}

// SetLastActivity sets the "last_activity" field.
func (u *AgentSessionUpsertBulk) SetLastActivity(v time.Time) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetLastActivity(v)
	})
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateLastActivity() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateLastActivity()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
