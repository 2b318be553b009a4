// Code generated by ent, DO NOT EDIT.

package smsmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"kolekta.io/kolekta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecipientGroup applies equality check predicate on the "recipient_group" field. It's identical to RecipientGroupEQ.
func RecipientGroup(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldRecipientGroup, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldBody, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldScheduledFor, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSentAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldLastError, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldUpdatedAt, v))
}

// RecipientGroupEQ applies the EQ predicate on the "recipient_group" field.
func RecipientGroupEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldRecipientGroup, v))
}

// RecipientGroupNEQ applies the NEQ predicate on the "recipient_group" field.
func RecipientGroupNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldRecipientGroup, v))
}

// RecipientGroupIn applies the In predicate on the "recipient_group" field.
func RecipientGroupIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldRecipientGroup, vs...))
}

// RecipientGroupNotIn applies the NotIn predicate on the "recipient_group" field.
func RecipientGroupNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldRecipientGroup, vs...))
}

// RecipientGroupGT applies the GT predicate on the "recipient_group" field.
func RecipientGroupGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldRecipientGroup, v))
}

// RecipientGroupGTE applies the GTE predicate on the "recipient_group" field.
func RecipientGroupGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldRecipientGroup, v))
}

// RecipientGroupLT applies the LT predicate on the "recipient_group" field.
func RecipientGroupLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldRecipientGroup, v))
}

// RecipientGroupLTE applies the LTE predicate on the "recipient_group" field.
func RecipientGroupLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldRecipientGroup, v))
}

// RecipientGroupContains applies the Contains predicate on the "recipient_group" field.
func RecipientGroupContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldRecipientGroup, v))
}

// RecipientGroupHasPrefix applies the HasPrefix predicate on the "recipient_group" field.
func RecipientGroupHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldRecipientGroup, v))
}

// RecipientGroupHasSuffix applies the HasSuffix predicate on the "recipient_group" field.
func RecipientGroupHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldRecipientGroup, v))
}

// RecipientGroupEqualFold applies the EqualFold predicate on the "recipient_group" field.
func RecipientGroupEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldRecipientGroup, v))
}

// RecipientGroupContainsFold applies the ContainsFold predicate on the "recipient_group" field.
func RecipientGroupContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldRecipientGroup, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldScheduledFor, v))
}

// ScheduledForIsNil applies the IsNil predicate on the "scheduled_for" field.
func ScheduledForIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldScheduledFor))
}

// ScheduledForNotNil applies the NotNil predicate on the "scheduled_for" field.
func ScheduledForNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldScheduledFor))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldSentAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldLastError, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldArchived, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.NotPredicates(p))
}
