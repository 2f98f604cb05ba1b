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
	"github.com/elliebot/relay/ent/memoryrecord"
	"github.com/elliebot/relay/ent/predicate"
)

// MemoryRecordUpdate is the builder for updating MemoryRecord entities.
type MemoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdate) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *MemoryRecordUpdate) SetType(v memoryrecord.Type) *MemoryRecordUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableType(v *memoryrecord.Type) *MemoryRecordUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryRecordUpdate) SetContent(v string) *MemoryRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableContent(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *MemoryRecordUpdate) SetSourceAgent(v string) *MemoryRecordUpdate {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableSourceAgent(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *MemoryRecordUpdate) SetVisibility(v memoryrecord.Visibility) *MemoryRecordUpdate {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableVisibility(v *memoryrecord.Visibility) *MemoryRecordUpdate {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *MemoryRecordUpdate) SetDeadline(v time.Time) *MemoryRecordUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableDeadline(v *time.Time) *MemoryRecordUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *MemoryRecordUpdate) ClearDeadline() *MemoryRecordUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MemoryRecordUpdate) SetCompletedAt(v time.Time) *MemoryRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableCompletedAt(v *time.Time) *MemoryRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MemoryRecordUpdate) ClearCompletedAt() *MemoryRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MemoryRecordUpdate) SetConversationID(v string) *MemoryRecordUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableConversationID(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *MemoryRecordUpdate) ClearConversationID() *MemoryRecordUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryRecordUpdate) SetMetadata(v map[string]interface{}) *MemoryRecordUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryRecordUpdate) ClearMetadata() *MemoryRecordUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryRecordUpdate) SetEmbedding(v []byte) *MemoryRecordUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryRecordUpdate) ClearEmbedding() *MemoryRecordUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryRecordUpdate) SetUpdatedAt(v time.Time) *MemoryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdate) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := memoryrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Visibility(); ok {
		if err := memoryrecord.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.visibility": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(memoryrecord.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(memoryrecord.FieldSourceAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(memoryrecord.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(memoryrecord.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(memoryrecord.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(memoryrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(memoryrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(memoryrecord.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(memoryrecord.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryrecord.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryRecordUpdateOne is the builder for updating a single MemoryRecord entity.
type MemoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// SetType sets the "type" field.
func (_u *MemoryRecordUpdateOne) SetType(v memoryrecord.Type) *MemoryRecordUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableType(v *memoryrecord.Type) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryRecordUpdateOne) SetContent(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableContent(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *MemoryRecordUpdateOne) SetSourceAgent(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableSourceAgent(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *MemoryRecordUpdateOne) SetVisibility(v memoryrecord.Visibility) *MemoryRecordUpdateOne {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableVisibility(v *memoryrecord.Visibility) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *MemoryRecordUpdateOne) SetDeadline(v time.Time) *MemoryRecordUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableDeadline(v *time.Time) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *MemoryRecordUpdateOne) ClearDeadline() *MemoryRecordUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MemoryRecordUpdateOne) SetCompletedAt(v time.Time) *MemoryRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MemoryRecordUpdateOne) ClearCompletedAt() *MemoryRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MemoryRecordUpdateOne) SetConversationID(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableConversationID(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *MemoryRecordUpdateOne) ClearConversationID() *MemoryRecordUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryRecordUpdateOne) SetMetadata(v map[string]interface{}) *MemoryRecordUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryRecordUpdateOne) ClearMetadata() *MemoryRecordUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryRecordUpdateOne) SetEmbedding(v []byte) *MemoryRecordUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryRecordUpdateOne) ClearEmbedding() *MemoryRecordUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryRecordUpdateOne) SetUpdatedAt(v time.Time) *MemoryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdateOne) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdateOne) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryRecordUpdateOne) Select(field string, fields ...string) *MemoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryRecord entity.
func (_u *MemoryRecordUpdateOne) Save(ctx context.Context) (*MemoryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) SaveX(ctx context.Context) *MemoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := memoryrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Visibility(); ok {
		if err := memoryrecord.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.visibility": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MemoryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryrecord.FieldID)
		for _, f := range fields {
			if !memoryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryrecord.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(memoryrecord.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(memoryrecord.FieldSourceAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(memoryrecord.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(memoryrecord.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(memoryrecord.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(memoryrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(memoryrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(memoryrecord.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(memoryrecord.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryrecord.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MemoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
