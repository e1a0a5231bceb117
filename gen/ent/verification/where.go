// Code generated by ent, DO NOT EDIT.

package verification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/byb-ai/progress-verifier/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldJobID, v))
}

// ResponsibleEngineer applies equality check predicate on the "responsible_engineer" field. It's identical to ResponsibleEngineerEQ.
func ResponsibleEngineer(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldResponsibleEngineer, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReportDate, v))
}

// ProgressPercent applies equality check predicate on the "progress_percent" field. It's identical to ProgressPercentEQ.
func ProgressPercent(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldProgressPercent, v))
}

// Valid applies equality check predicate on the "valid" field. It's identical to ValidEQ.
func Valid(v bool) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldValid, v))
}

// ReleaseTxHash applies equality check predicate on the "release_tx_hash" field. It's identical to ReleaseTxHashEQ.
func ReleaseTxHash(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReleaseTxHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldJobID, vs...))
}

// ResponsibleEngineerEQ applies the EQ predicate on the "responsible_engineer" field.
func ResponsibleEngineerEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerNEQ applies the NEQ predicate on the "responsible_engineer" field.
func ResponsibleEngineerNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerIn applies the In predicate on the "responsible_engineer" field.
func ResponsibleEngineerIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldResponsibleEngineer, vs...))
}

// ResponsibleEngineerNotIn applies the NotIn predicate on the "responsible_engineer" field.
func ResponsibleEngineerNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldResponsibleEngineer, vs...))
}

// ResponsibleEngineerGT applies the GT predicate on the "responsible_engineer" field.
func ResponsibleEngineerGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerGTE applies the GTE predicate on the "responsible_engineer" field.
func ResponsibleEngineerGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerLT applies the LT predicate on the "responsible_engineer" field.
func ResponsibleEngineerLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerLTE applies the LTE predicate on the "responsible_engineer" field.
func ResponsibleEngineerLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerContains applies the Contains predicate on the "responsible_engineer" field.
func ResponsibleEngineerContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerHasPrefix applies the HasPrefix predicate on the "responsible_engineer" field.
func ResponsibleEngineerHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerHasSuffix applies the HasSuffix predicate on the "responsible_engineer" field.
func ResponsibleEngineerHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerEqualFold applies the EqualFold predicate on the "responsible_engineer" field.
func ResponsibleEngineerEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldResponsibleEngineer, v))
}

// ResponsibleEngineerContainsFold applies the ContainsFold predicate on the "responsible_engineer" field.
func ResponsibleEngineerContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldResponsibleEngineer, v))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldReportDate, v))
}

// ReportDateContains applies the Contains predicate on the "report_date" field.
func ReportDateContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldReportDate, v))
}

// ReportDateHasPrefix applies the HasPrefix predicate on the "report_date" field.
func ReportDateHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldReportDate, v))
}

// ReportDateHasSuffix applies the HasSuffix predicate on the "report_date" field.
func ReportDateHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldReportDate, v))
}

// ReportDateEqualFold applies the EqualFold predicate on the "report_date" field.
func ReportDateEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldReportDate, v))
}

// ReportDateContainsFold applies the ContainsFold predicate on the "report_date" field.
func ReportDateContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldReportDate, v))
}

// ProgressPercentEQ applies the EQ predicate on the "progress_percent" field.
func ProgressPercentEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldProgressPercent, v))
}

// ProgressPercentNEQ applies the NEQ predicate on the "progress_percent" field.
func ProgressPercentNEQ(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldProgressPercent, v))
}

// ProgressPercentIn applies the In predicate on the "progress_percent" field.
func ProgressPercentIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldProgressPercent, vs...))
}

// ProgressPercentNotIn applies the NotIn predicate on the "progress_percent" field.
func ProgressPercentNotIn(vs ...float64) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldProgressPercent, vs...))
}

// ProgressPercentGT applies the GT predicate on the "progress_percent" field.
func ProgressPercentGT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldProgressPercent, v))
}

// ProgressPercentGTE applies the GTE predicate on the "progress_percent" field.
func ProgressPercentGTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldProgressPercent, v))
}

// ProgressPercentLT applies the LT predicate on the "progress_percent" field.
func ProgressPercentLT(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldProgressPercent, v))
}

// ProgressPercentLTE applies the LTE predicate on the "progress_percent" field.
func ProgressPercentLTE(v float64) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldProgressPercent, v))
}

// ValidEQ applies the EQ predicate on the "valid" field.
func ValidEQ(v bool) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldValid, v))
}

// ValidNEQ applies the NEQ predicate on the "valid" field.
func ValidNEQ(v bool) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldValid, v))
}

// FieldOriginsIsNil applies the IsNil predicate on the "field_origins" field.
func FieldOriginsIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldFieldOrigins))
}

// FieldOriginsNotNil applies the NotNil predicate on the "field_origins" field.
func FieldOriginsNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldFieldOrigins))
}

// ReleaseTxHashEQ applies the EQ predicate on the "release_tx_hash" field.
func ReleaseTxHashEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldReleaseTxHash, v))
}

// ReleaseTxHashNEQ applies the NEQ predicate on the "release_tx_hash" field.
func ReleaseTxHashNEQ(v string) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldReleaseTxHash, v))
}

// ReleaseTxHashIn applies the In predicate on the "release_tx_hash" field.
func ReleaseTxHashIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldReleaseTxHash, vs...))
}

// ReleaseTxHashNotIn applies the NotIn predicate on the "release_tx_hash" field.
func ReleaseTxHashNotIn(vs ...string) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldReleaseTxHash, vs...))
}

// ReleaseTxHashGT applies the GT predicate on the "release_tx_hash" field.
func ReleaseTxHashGT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldReleaseTxHash, v))
}

// ReleaseTxHashGTE applies the GTE predicate on the "release_tx_hash" field.
func ReleaseTxHashGTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldReleaseTxHash, v))
}

// ReleaseTxHashLT applies the LT predicate on the "release_tx_hash" field.
func ReleaseTxHashLT(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldReleaseTxHash, v))
}

// ReleaseTxHashLTE applies the LTE predicate on the "release_tx_hash" field.
func ReleaseTxHashLTE(v string) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldReleaseTxHash, v))
}

// ReleaseTxHashContains applies the Contains predicate on the "release_tx_hash" field.
func ReleaseTxHashContains(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContains(FieldReleaseTxHash, v))
}

// ReleaseTxHashHasPrefix applies the HasPrefix predicate on the "release_tx_hash" field.
func ReleaseTxHashHasPrefix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasPrefix(FieldReleaseTxHash, v))
}

// ReleaseTxHashHasSuffix applies the HasSuffix predicate on the "release_tx_hash" field.
func ReleaseTxHashHasSuffix(v string) predicate.Verification {
	return predicate.Verification(sql.FieldHasSuffix(FieldReleaseTxHash, v))
}

// ReleaseTxHashIsNil applies the IsNil predicate on the "release_tx_hash" field.
func ReleaseTxHashIsNil() predicate.Verification {
	return predicate.Verification(sql.FieldIsNull(FieldReleaseTxHash))
}

// ReleaseTxHashNotNil applies the NotNil predicate on the "release_tx_hash" field.
func ReleaseTxHashNotNil() predicate.Verification {
	return predicate.Verification(sql.FieldNotNull(FieldReleaseTxHash))
}

// ReleaseTxHashEqualFold applies the EqualFold predicate on the "release_tx_hash" field.
func ReleaseTxHashEqualFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldEqualFold(FieldReleaseTxHash, v))
}

// ReleaseTxHashContainsFold applies the ContainsFold predicate on the "release_tx_hash" field.
func ReleaseTxHashContainsFold(v string) predicate.Verification {
	return predicate.Verification(sql.FieldContainsFold(FieldReleaseTxHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Verification {
	return predicate.Verification(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Verification {
	return predicate.Verification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractJob) predicate.Verification {
	return predicate.Verification(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verification) predicate.Verification {
	return predicate.Verification(sql.NotPredicates(p))
}
