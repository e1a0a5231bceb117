// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/predicate"
	"github.com/byb-ai/progress-verifier/gen/ent/verification"
	"github.com/google/uuid"
)

// VerificationUpdate is the builder for updating Verification entities.
type VerificationUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationMutation
}

// Where appends a list predicates to the VerificationUpdate builder.
func (_u *VerificationUpdate) Where(ps ...predicate.Verification) *VerificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *VerificationUpdate) SetJobID(v uuid.UUID) *VerificationUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableJobID(v *uuid.UUID) *VerificationUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetResponsibleEngineer sets the "responsible_engineer" field.
func (_u *VerificationUpdate) SetResponsibleEngineer(v string) *VerificationUpdate {
	_u.mutation.SetResponsibleEngineer(v)
	return _u
}

// SetNillableResponsibleEngineer sets the "responsible_engineer" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableResponsibleEngineer(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetResponsibleEngineer(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *VerificationUpdate) SetReportDate(v string) *VerificationUpdate {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableReportDate(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *VerificationUpdate) SetProgressPercent(v float64) *VerificationUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableProgressPercent(v *float64) *VerificationUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *VerificationUpdate) AddProgressPercent(v float64) *VerificationUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *VerificationUpdate) SetValid(v bool) *VerificationUpdate {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableValid(v *bool) *VerificationUpdate {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetFieldOrigins sets the "field_origins" field.
func (_u *VerificationUpdate) SetFieldOrigins(v json.RawMessage) *VerificationUpdate {
	_u.mutation.SetFieldOrigins(v)
	return _u
}

// AppendFieldOrigins appends value to the "field_origins" field.
func (_u *VerificationUpdate) AppendFieldOrigins(v json.RawMessage) *VerificationUpdate {
	_u.mutation.AppendFieldOrigins(v)
	return _u
}

// ClearFieldOrigins clears the value of the "field_origins" field.
func (_u *VerificationUpdate) ClearFieldOrigins() *VerificationUpdate {
	_u.mutation.ClearFieldOrigins()
	return _u
}

// SetReleaseTxHash sets the "release_tx_hash" field.
func (_u *VerificationUpdate) SetReleaseTxHash(v string) *VerificationUpdate {
	_u.mutation.SetReleaseTxHash(v)
	return _u
}

// SetNillableReleaseTxHash sets the "release_tx_hash" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableReleaseTxHash(v *string) *VerificationUpdate {
	if v != nil {
		_u.SetReleaseTxHash(*v)
	}
	return _u
}

// ClearReleaseTxHash clears the value of the "release_tx_hash" field.
func (_u *VerificationUpdate) ClearReleaseTxHash() *VerificationUpdate {
	_u.mutation.ClearReleaseTxHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationUpdate) SetCreatedAt(v time.Time) *VerificationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationUpdate) SetNillableCreatedAt(v *time.Time) *VerificationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *VerificationUpdate) SetJob(v *ExtractJob) *VerificationUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the VerificationMutation object of the builder.
func (_u *VerificationUpdate) Mutation() *VerificationMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *VerificationUpdate) ClearJob() *VerificationUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verification.job"`)
	}
	return nil
}

func (_u *VerificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verification.Table, verification.Columns, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponsibleEngineer(); ok {
		_spec.SetField(verification.FieldResponsibleEngineer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(verification.FieldReportDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(verification.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(verification.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(verification.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldOrigins(); ok {
		_spec.SetField(verification.FieldFieldOrigins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldOrigins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verification.FieldFieldOrigins, value)
		})
	}
	if _u.mutation.FieldOriginsCleared() {
		_spec.ClearField(verification.FieldFieldOrigins, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReleaseTxHash(); ok {
		_spec.SetField(verification.FieldReleaseTxHash, field.TypeString, value)
	}
	if _u.mutation.ReleaseTxHashCleared() {
		_spec.ClearField(verification.FieldReleaseTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verification.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verification.JobTable,
			Columns: []string{verification.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verification.JobTable,
			Columns: []string{verification.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationUpdateOne is the builder for updating a single Verification entity.
type VerificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationMutation
}

// SetJobID sets the "job_id" field.
func (_u *VerificationUpdateOne) SetJobID(v uuid.UUID) *VerificationUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableJobID(v *uuid.UUID) *VerificationUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetResponsibleEngineer sets the "responsible_engineer" field.
func (_u *VerificationUpdateOne) SetResponsibleEngineer(v string) *VerificationUpdateOne {
	_u.mutation.SetResponsibleEngineer(v)
	return _u
}

// SetNillableResponsibleEngineer sets the "responsible_engineer" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableResponsibleEngineer(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetResponsibleEngineer(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *VerificationUpdateOne) SetReportDate(v string) *VerificationUpdateOne {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableReportDate(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *VerificationUpdateOne) SetProgressPercent(v float64) *VerificationUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableProgressPercent(v *float64) *VerificationUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *VerificationUpdateOne) AddProgressPercent(v float64) *VerificationUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *VerificationUpdateOne) SetValid(v bool) *VerificationUpdateOne {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableValid(v *bool) *VerificationUpdateOne {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetFieldOrigins sets the "field_origins" field.
func (_u *VerificationUpdateOne) SetFieldOrigins(v json.RawMessage) *VerificationUpdateOne {
	_u.mutation.SetFieldOrigins(v)
	return _u
}

// AppendFieldOrigins appends value to the "field_origins" field.
func (_u *VerificationUpdateOne) AppendFieldOrigins(v json.RawMessage) *VerificationUpdateOne {
	_u.mutation.AppendFieldOrigins(v)
	return _u
}

// ClearFieldOrigins clears the value of the "field_origins" field.
func (_u *VerificationUpdateOne) ClearFieldOrigins() *VerificationUpdateOne {
	_u.mutation.ClearFieldOrigins()
	return _u
}

// SetReleaseTxHash sets the "release_tx_hash" field.
func (_u *VerificationUpdateOne) SetReleaseTxHash(v string) *VerificationUpdateOne {
	_u.mutation.SetReleaseTxHash(v)
	return _u
}

// SetNillableReleaseTxHash sets the "release_tx_hash" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableReleaseTxHash(v *string) *VerificationUpdateOne {
	if v != nil {
		_u.SetReleaseTxHash(*v)
	}
	return _u
}

// ClearReleaseTxHash clears the value of the "release_tx_hash" field.
func (_u *VerificationUpdateOne) ClearReleaseTxHash() *VerificationUpdateOne {
	_u.mutation.ClearReleaseTxHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationUpdateOne) SetCreatedAt(v time.Time) *VerificationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationUpdateOne) SetNillableCreatedAt(v *time.Time) *VerificationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *VerificationUpdateOne) SetJob(v *ExtractJob) *VerificationUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the VerificationMutation object of the builder.
func (_u *VerificationUpdateOne) Mutation() *VerificationMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *VerificationUpdateOne) ClearJob() *VerificationUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the VerificationUpdate builder.
func (_u *VerificationUpdateOne) Where(ps ...predicate.Verification) *VerificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationUpdateOne) Select(field string, fields ...string) *VerificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verification entity.
func (_u *VerificationUpdateOne) Save(ctx context.Context) (*Verification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationUpdateOne) SaveX(ctx context.Context) *Verification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verification.job"`)
	}
	return nil
}

func (_u *VerificationUpdateOne) sqlSave(ctx context.Context) (_node *Verification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verification.Table, verification.Columns, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verification.FieldID)
		for _, f := range fields {
			if !verification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verification.FieldID {
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
	if value, ok := _u.mutation.ResponsibleEngineer(); ok {
		_spec.SetField(verification.FieldResponsibleEngineer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(verification.FieldReportDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(verification.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(verification.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(verification.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldOrigins(); ok {
		_spec.SetField(verification.FieldFieldOrigins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldOrigins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verification.FieldFieldOrigins, value)
		})
	}
	if _u.mutation.FieldOriginsCleared() {
		_spec.ClearField(verification.FieldFieldOrigins, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReleaseTxHash(); ok {
		_spec.SetField(verification.FieldReleaseTxHash, field.TypeString, value)
	}
	if _u.mutation.ReleaseTxHashCleared() {
		_spec.ClearField(verification.FieldReleaseTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verification.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verification.JobTable,
			Columns: []string{verification.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verification.JobTable,
			Columns: []string{verification.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Verification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
