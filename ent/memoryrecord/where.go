// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliebot/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldID, id))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldContent, v))
}

// SourceAgent applies equality check predicate on the "source_agent" field. It's identical to SourceAgentEQ.
func SourceAgent(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldSourceAgent, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldDeadline, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConversationID, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldContent, v))
}

// SourceAgentEQ applies the EQ predicate on the "source_agent" field.
func SourceAgentEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldSourceAgent, v))
}

// SourceAgentNEQ applies the NEQ predicate on the "source_agent" field.
func SourceAgentNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldSourceAgent, v))
}

// SourceAgentIn applies the In predicate on the "source_agent" field.
func SourceAgentIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldSourceAgent, vs...))
}

// SourceAgentNotIn applies the NotIn predicate on the "source_agent" field.
func SourceAgentNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldSourceAgent, vs...))
}

// SourceAgentGT applies the GT predicate on the "source_agent" field.
func SourceAgentGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldSourceAgent, v))
}

// SourceAgentGTE applies the GTE predicate on the "source_agent" field.
func SourceAgentGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldSourceAgent, v))
}

// SourceAgentLT applies the LT predicate on the "source_agent" field.
func SourceAgentLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldSourceAgent, v))
}

// SourceAgentLTE applies the LTE predicate on the "source_agent" field.
func SourceAgentLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldSourceAgent, v))
}

// SourceAgentContains applies the Contains predicate on the "source_agent" field.
func SourceAgentContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldSourceAgent, v))
}

// SourceAgentHasPrefix applies the HasPrefix predicate on the "source_agent" field.
func SourceAgentHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldSourceAgent, v))
}

// SourceAgentHasSuffix applies the HasSuffix predicate on the "source_agent" field.
func SourceAgentHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldSourceAgent, v))
}

// SourceAgentEqualFold applies the EqualFold predicate on the "source_agent" field.
func SourceAgentEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldSourceAgent, v))
}

// SourceAgentContainsFold applies the ContainsFold predicate on the "source_agent" field.
func SourceAgentContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldSourceAgent, v))
}

// VisibilityEQ applies the EQ predicate on the "visibility" field.
func VisibilityEQ(v Visibility) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldVisibility, v))
}

// VisibilityNEQ applies the NEQ predicate on the "visibility" field.
func VisibilityNEQ(v Visibility) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldVisibility, v))
}

// VisibilityIn applies the In predicate on the "visibility" field.
func VisibilityIn(vs ...Visibility) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldVisibility, vs...))
}

// VisibilityNotIn applies the NotIn predicate on the "visibility" field.
func VisibilityNotIn(vs ...Visibility) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldVisibility, vs...))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldDeadline))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldCompletedAt))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldConversationID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldMetadata))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...[]byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...[]byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v []byte) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.NotPredicates(p))
}
