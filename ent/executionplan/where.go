// Code generated by ent, DO NOT EDIT.

package executionplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliebot/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldID, id))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldChannel, v))
}

// PartialOutput applies equality check predicate on the "partial_output" field. It's identical to PartialOutputEQ.
func PartialOutput(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldPartialOutput, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldChannel, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// PartialOutputEQ applies the EQ predicate on the "partial_output" field.
func PartialOutputEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldPartialOutput, v))
}

// PartialOutputNEQ applies the NEQ predicate on the "partial_output" field.
func PartialOutputNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldPartialOutput, v))
}

// PartialOutputIn applies the In predicate on the "partial_output" field.
func PartialOutputIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldPartialOutput, vs...))
}

// PartialOutputNotIn applies the NotIn predicate on the "partial_output" field.
func PartialOutputNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldPartialOutput, vs...))
}

// PartialOutputGT applies the GT predicate on the "partial_output" field.
func PartialOutputGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldPartialOutput, v))
}

// PartialOutputGTE applies the GTE predicate on the "partial_output" field.
func PartialOutputGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldPartialOutput, v))
}

// PartialOutputLT applies the LT predicate on the "partial_output" field.
func PartialOutputLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldPartialOutput, v))
}

// PartialOutputLTE applies the LTE predicate on the "partial_output" field.
func PartialOutputLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldPartialOutput, v))
}

// PartialOutputContains applies the Contains predicate on the "partial_output" field.
func PartialOutputContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldPartialOutput, v))
}

// PartialOutputHasPrefix applies the HasPrefix predicate on the "partial_output" field.
func PartialOutputHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldPartialOutput, v))
}

// PartialOutputHasSuffix applies the HasSuffix predicate on the "partial_output" field.
func PartialOutputHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldPartialOutput, v))
}

// PartialOutputIsNil applies the IsNil predicate on the "partial_output" field.
func PartialOutputIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldPartialOutput))
}

// PartialOutputNotNil applies the NotNil predicate on the "partial_output" field.
func PartialOutputNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldPartialOutput))
}

// PartialOutputEqualFold applies the EqualFold predicate on the "partial_output" field.
func PartialOutputEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldPartialOutput, v))
}

// PartialOutputContainsFold applies the ContainsFold predicate on the "partial_output" field.
func PartialOutputContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldPartialOutput, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.NotPredicates(p))
}
