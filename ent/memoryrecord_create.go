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
	"github.com/elliebot/relay/ent/memoryrecord"
)

// MemoryRecordCreate is the builder for creating a MemoryRecord entity.
type MemoryRecordCreate struct {
	config
	mutation *MemoryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *MemoryRecordCreate) SetType(v memoryrecord.Type) *MemoryRecordCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryRecordCreate) SetContent(v string) *MemoryRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSourceAgent sets the "source_agent" field.
func (_c *MemoryRecordCreate) SetSourceAgent(v string) *MemoryRecordCreate {
	_c.mutation.SetSourceAgent(v)
	return _c
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableSourceAgent(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetSourceAgent(*v)
	}
	return _c
}

// SetVisibility sets the "visibility" field.
func (_c *MemoryRecordCreate) SetVisibility(v memoryrecord.Visibility) *MemoryRecordCreate {
	_c.mutation.SetVisibility(v)
	return _c
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableVisibility(v *memoryrecord.Visibility) *MemoryRecordCreate {
	if v != nil {
		_c.SetVisibility(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *MemoryRecordCreate) SetDeadline(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableDeadline(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MemoryRecordCreate) SetCompletedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableCompletedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *MemoryRecordCreate) SetConversationID(v string) *MemoryRecordCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableConversationID(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MemoryRecordCreate) SetMetadata(v map[string]interface{}) *MemoryRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryRecordCreate) SetEmbedding(v []byte) *MemoryRecordCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryRecordCreate) SetCreatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableCreatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryRecordCreate) SetUpdatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryRecordCreate) SetID(v string) *MemoryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_c *MemoryRecordCreate) Mutation() *MemoryRecordMutation {
	return _c.mutation
}

// Save creates the MemoryRecord in the database.
func (_c *MemoryRecordCreate) Save(ctx context.Context) (*MemoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryRecordCreate) SaveX(ctx context.Context) *MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryRecordCreate) defaults() {
	if _, ok := _c.mutation.SourceAgent(); !ok {
		v := memoryrecord.DefaultSourceAgent
		_c.mutation.SetSourceAgent(v)
	}
	if _, ok := _c.mutation.Visibility(); !ok {
		v := memoryrecord.DefaultVisibility
		_c.mutation.SetVisibility(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memoryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryRecordCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "MemoryRecord.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := memoryrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryRecord.content"`)}
	}
	if _, ok := _c.mutation.SourceAgent(); !ok {
		return &ValidationError{Name: "source_agent", err: errors.New(`ent: missing required field "MemoryRecord.source_agent"`)}
	}
	if _, ok := _c.mutation.Visibility(); !ok {
		return &ValidationError{Name: "visibility", err: errors.New(`ent: missing required field "MemoryRecord.visibility"`)}
	}
	if v, ok := _c.mutation.Visibility(); ok {
		if err := memoryrecord.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.visibility": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MemoryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MemoryRecordCreate) sqlSave(ctx context.Context) (*MemoryRecord, error) {
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
			return nil, fmt.Errorf("unexpected MemoryRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryRecordCreate) createSpec() (*MemoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryrecord.Table, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(memoryrecord.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SourceAgent(); ok {
		_spec.SetField(memoryrecord.FieldSourceAgent, field.TypeString, value)
		_node.SourceAgent = value
	}
	if value, ok := _c.mutation.Visibility(); ok {
		_spec.SetField(memoryrecord.FieldVisibility, field.TypeEnum, value)
		_node.Visibility = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(memoryrecord.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(memoryrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(memoryrecord.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(memoryrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MemoryRecord.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemoryRecordUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *MemoryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MemoryRecordUpsertOne {
	_c.conflict = opts
	return &MemoryRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemoryRecordCreate) OnConflictColumns(columns ...string) *MemoryRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemoryRecordUpsertOne{
		create: _c,
	}
}

type (
	// MemoryRecordUpsertOne is the builder for "upsert"-ing
	//  one MemoryRecord node.
	MemoryRecordUpsertOne struct {
		create *MemoryRecordCreate
	}

	// MemoryRecordUpsert is the "OnConflict" setter.
	MemoryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *MemoryRecordUpsert) SetType(v memoryrecord.Type) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateType() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldType)
	return u
}

// SetContent sets the "content" field.
func (u *MemoryRecordUpsert) SetContent(v string) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateContent() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldContent)
	return u
}

// SetSourceAgent sets the "source_agent" field.
func (u *MemoryRecordUpsert) SetSourceAgent(v string) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldSourceAgent, v)
	return u
}

// UpdateSourceAgent sets the "source_agent" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateSourceAgent() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldSourceAgent)
	return u
}

// SetVisibility sets the "visibility" field.
func (u *MemoryRecordUpsert) SetVisibility(v memoryrecord.Visibility) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldVisibility, v)
	return u
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateVisibility() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldVisibility)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *MemoryRecordUpsert) SetDeadline(v time.Time) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateDeadline() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldDeadline)
	return u
}

// ClearDeadline clears the value of the "deadline" field.
func (u *MemoryRecordUpsert) ClearDeadline() *MemoryRecordUpsert {
	u.SetNull(memoryrecord.FieldDeadline)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MemoryRecordUpsert) SetCompletedAt(v time.Time) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateCompletedAt() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MemoryRecordUpsert) ClearCompletedAt() *MemoryRecordUpsert {
	u.SetNull(memoryrecord.FieldCompletedAt)
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *MemoryRecordUpsert) SetConversationID(v string) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateConversationID() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldConversationID)
	return u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *MemoryRecordUpsert) ClearConversationID() *MemoryRecordUpsert {
	u.SetNull(memoryrecord.FieldConversationID)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *MemoryRecordUpsert) SetMetadata(v map[string]interface{}) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateMetadata() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MemoryRecordUpsert) ClearMetadata() *MemoryRecordUpsert {
	u.SetNull(memoryrecord.FieldMetadata)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *MemoryRecordUpsert) SetEmbedding(v []byte) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateEmbedding() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MemoryRecordUpsert) ClearEmbedding() *MemoryRecordUpsert {
	u.SetNull(memoryrecord.FieldEmbedding)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MemoryRecordUpsert) SetUpdatedAt(v time.Time) *MemoryRecordUpsert {
	u.Set(memoryrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemoryRecordUpsert) UpdateUpdatedAt() *MemoryRecordUpsert {
	u.SetExcluded(memoryrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(memoryrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MemoryRecordUpsertOne) UpdateNewValues() *MemoryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(memoryrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(memoryrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MemoryRecordUpsertOne) Ignore() *MemoryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemoryRecordUpsertOne) DoNothing() *MemoryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemoryRecordCreate.OnConflict
// documentation for more info.
func (u *MemoryRecordUpsertOne) Update(set func(*MemoryRecordUpsert)) *MemoryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemoryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *MemoryRecordUpsertOne) SetType(v memoryrecord.Type) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateType() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateType()
	})
}

// SetContent sets the "content" field.
func (u *MemoryRecordUpsertOne) SetContent(v string) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateContent() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateContent()
	})
}

// SetSourceAgent sets the "source_agent" field.
func (u *MemoryRecordUpsertOne) SetSourceAgent(v string) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetSourceAgent(v)
	})
}

// UpdateSourceAgent sets the "source_agent" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateSourceAgent() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateSourceAgent()
	})
}

// SetVisibility sets the "visibility" field.
func (u *MemoryRecordUpsertOne) SetVisibility(v memoryrecord.Visibility) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateVisibility() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateVisibility()
	})
}

// SetDeadline sets the "deadline" field.
func (u *MemoryRecordUpsertOne) SetDeadline(v time.Time) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateDeadline() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *MemoryRecordUpsertOne) ClearDeadline() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearDeadline()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MemoryRecordUpsertOne) SetCompletedAt(v time.Time) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateCompletedAt() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MemoryRecordUpsertOne) ClearCompletedAt() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *MemoryRecordUpsertOne) SetConversationID(v string) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateConversationID() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *MemoryRecordUpsertOne) ClearConversationID() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearConversationID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MemoryRecordUpsertOne) SetMetadata(v map[string]interface{}) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateMetadata() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MemoryRecordUpsertOne) ClearMetadata() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *MemoryRecordUpsertOne) SetEmbedding(v []byte) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateEmbedding() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MemoryRecordUpsertOne) ClearEmbedding() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MemoryRecordUpsertOne) SetUpdatedAt(v time.Time) *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemoryRecordUpsertOne) UpdateUpdatedAt() *MemoryRecordUpsertOne {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MemoryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemoryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemoryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MemoryRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MemoryRecordUpsertOne.ID is not supported by MySQL driver. Use MemoryRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MemoryRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MemoryRecordCreateBulk is the builder for creating many MemoryRecord entities in bulk.
type MemoryRecordCreateBulk struct {
	config
	err      error
	builders []*MemoryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MemoryRecord entities in the database.
func (_c *MemoryRecordCreateBulk) Save(ctx context.Context) ([]*MemoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryRecordMutation)
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
func (_c *MemoryRecordCreateBulk) SaveX(ctx context.Context) []*MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MemoryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemoryRecordUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *MemoryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MemoryRecordUpsertBulk {
	_c.conflict = opts
	return &MemoryRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemoryRecordCreateBulk) OnConflictColumns(columns ...string) *MemoryRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemoryRecordUpsertBulk{
		create: _c,
	}
}

// MemoryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MemoryRecord nodes.
type MemoryRecordUpsertBulk struct {
	create *MemoryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(memoryrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MemoryRecordUpsertBulk) UpdateNewValues() *MemoryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(memoryrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(memoryrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MemoryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MemoryRecordUpsertBulk) Ignore() *MemoryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemoryRecordUpsertBulk) DoNothing() *MemoryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemoryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MemoryRecordUpsertBulk) Update(set func(*MemoryRecordUpsert)) *MemoryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemoryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *MemoryRecordUpsertBulk) SetType(v memoryrecord.Type) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateType() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateType()
	})
}

// SetContent sets the "content" field.
func (u *MemoryRecordUpsertBulk) SetContent(v string) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateContent() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateContent()
	})
}

// SetSourceAgent sets the "source_agent" field.
func (u *MemoryRecordUpsertBulk) SetSourceAgent(v string) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetSourceAgent(v)
	})
}

// UpdateSourceAgent sets the "source_agent" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateSourceAgent() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateSourceAgent()
	})
}

// SetVisibility sets the "visibility" field.
func (u *MemoryRecordUpsertBulk) SetVisibility(v memoryrecord.Visibility) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateVisibility() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateVisibility()
	})
}

// SetDeadline sets the "deadline" field.
func (u *MemoryRecordUpsertBulk) SetDeadline(v time.Time) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateDeadline() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *MemoryRecordUpsertBulk) ClearDeadline() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearDeadline()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MemoryRecordUpsertBulk) SetCompletedAt(v time.Time) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateCompletedAt() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MemoryRecordUpsertBulk) ClearCompletedAt() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *MemoryRecordUpsertBulk) SetConversationID(v string) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateConversationID() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *MemoryRecordUpsertBulk) ClearConversationID() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearConversationID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MemoryRecordUpsertBulk) SetMetadata(v map[string]interface{}) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateMetadata() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MemoryRecordUpsertBulk) ClearMetadata() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *MemoryRecordUpsertBulk) SetEmbedding(v []byte) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateEmbedding() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MemoryRecordUpsertBulk) ClearEmbedding() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MemoryRecordUpsertBulk) SetUpdatedAt(v time.Time) *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemoryRecordUpsertBulk) UpdateUpdatedAt() *MemoryRecordUpsertBulk {
	return u.Update(func(s *MemoryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MemoryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MemoryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemoryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemoryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
