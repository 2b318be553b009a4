// Code generated by ent, DO NOT EDIT.

package reportstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"kolekta.io/kolekta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldReportID, v))
}

// OfficialResponse applies equality check predicate on the "official_response" field. It's identical to OfficialResponseEQ.
func OfficialResponse(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldOfficialResponse, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldContainsFold(FieldReportID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldStatus, vs...))
}

// OfficialResponseEQ applies the EQ predicate on the "official_response" field.
func OfficialResponseEQ(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEQ(FieldOfficialResponse, v))
}

// OfficialResponseNEQ applies the NEQ predicate on the "official_response" field.
func OfficialResponseNEQ(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNEQ(FieldOfficialResponse, v))
}

// OfficialResponseIn applies the In predicate on the "official_response" field.
func OfficialResponseIn(vs ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIn(FieldOfficialResponse, vs...))
}

// OfficialResponseNotIn applies the NotIn predicate on the "official_response" field.
func OfficialResponseNotIn(vs ...string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotIn(FieldOfficialResponse, vs...))
}

// OfficialResponseGT applies the GT predicate on the "official_response" field.
func OfficialResponseGT(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGT(FieldOfficialResponse, v))
}

// OfficialResponseGTE applies the GTE predicate on the "official_response" field.
func OfficialResponseGTE(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldGTE(FieldOfficialResponse, v))
}

// OfficialResponseLT applies the LT predicate on the "official_response" field.
func OfficialResponseLT(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLT(FieldOfficialResponse, v))
}

// OfficialResponseLTE applies the LTE predicate on the "official_response" field.
func OfficialResponseLTE(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldLTE(FieldOfficialResponse, v))
}

// OfficialResponseContains applies the Contains predicate on the "official_response" field.
func OfficialResponseContains(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldContains(FieldOfficialResponse, v))
}

// OfficialResponseHasPrefix applies the HasPrefix predicate on the "official_response" field.
func OfficialResponseHasPrefix(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldHasPrefix(FieldOfficialResponse, v))
}

// OfficialResponseHasSuffix applies the HasSuffix predicate on the "official_response" field.
func OfficialResponseHasSuffix(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldHasSuffix(FieldOfficialResponse, v))
}

// OfficialResponseIsNil applies the IsNil predicate on the "official_response" field.
func OfficialResponseIsNil() predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldIsNull(FieldOfficialResponse))
}

// OfficialResponseNotNil applies the NotNil predicate on the "official_response" field.
func OfficialResponseNotNil() predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldNotNull(FieldOfficialResponse))
}

// OfficialResponseEqualFold applies the EqualFold predicate on the "official_response" field.
func OfficialResponseEqualFold(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldEqualFold(FieldOfficialResponse, v))
}

// OfficialResponseContainsFold applies the ContainsFold predicate on the "official_response" field.
func OfficialResponseContainsFold(v string) predicate.ReportStatus {
	return predicate.ReportStatus(sql.FieldContainsFold(FieldOfficialResponse, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportStatus) predicate.ReportStatus {
	return predicate.ReportStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportStatus) predicate.ReportStatus {
	return predicate.ReportStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportStatus) predicate.ReportStatus {
	return predicate.ReportStatus(sql.NotPredicates(p))
}
