// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/verification"
	"github.com/google/uuid"
)

// VerificationCreate is the builder for creating a Verification entity.
type VerificationCreate struct {
	config
	mutation *VerificationMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *VerificationCreate) SetJobID(v uuid.UUID) *VerificationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetResponsibleEngineer sets the "responsible_engineer" field.
func (_c *VerificationCreate) SetResponsibleEngineer(v string) *VerificationCreate {
	_c.mutation.SetResponsibleEngineer(v)
	return _c
}

// SetReportDate sets the "report_date" field.
func (_c *VerificationCreate) SetReportDate(v string) *VerificationCreate {
	_c.mutation.SetReportDate(v)
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *VerificationCreate) SetProgressPercent(v float64) *VerificationCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetValid sets the "valid" field.
func (_c *VerificationCreate) SetValid(v bool) *VerificationCreate {
	_c.mutation.SetValid(v)
	return _c
}

// SetFieldOrigins sets the "field_origins" field.
func (_c *VerificationCreate) SetFieldOrigins(v json.RawMessage) *VerificationCreate {
	_c.mutation.SetFieldOrigins(v)
	return _c
}

// SetReleaseTxHash sets the "release_tx_hash" field.
func (_c *VerificationCreate) SetReleaseTxHash(v string) *VerificationCreate {
	_c.mutation.SetReleaseTxHash(v)
	return _c
}

// SetNillableReleaseTxHash sets the "release_tx_hash" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableReleaseTxHash(v *string) *VerificationCreate {
	if v != nil {
		_c.SetReleaseTxHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationCreate) SetCreatedAt(v time.Time) *VerificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableCreatedAt(v *time.Time) *VerificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationCreate) SetID(v uuid.UUID) *VerificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationCreate) SetNillableID(v *uuid.UUID) *VerificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_c *VerificationCreate) SetJob(v *ExtractJob) *VerificationCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the VerificationMutation object of the builder.
func (_c *VerificationCreate) Mutation() *VerificationMutation {
	return _c.mutation
}

// Save creates the Verification in the database.
func (_c *VerificationCreate) Save(ctx context.Context) (*Verification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationCreate) SaveX(ctx context.Context) *Verification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Verification.job_id"`)}
	}
	if _, ok := _c.mutation.ResponsibleEngineer(); !ok {
		return &ValidationError{Name: "responsible_engineer", err: errors.New(`ent: missing required field "Verification.responsible_engineer"`)}
	}
	if _, ok := _c.mutation.ReportDate(); !ok {
		return &ValidationError{Name: "report_date", err: errors.New(`ent: missing required field "Verification.report_date"`)}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "Verification.progress_percent"`)}
	}
	if _, ok := _c.mutation.Valid(); !ok {
		return &ValidationError{Name: "valid", err: errors.New(`ent: missing required field "Verification.valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Verification.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Verification.job"`)}
	}
	return nil
}

func (_c *VerificationCreate) sqlSave(ctx context.Context) (*Verification, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationCreate) createSpec() (*Verification, *sqlgraph.CreateSpec) {
	var (
		_node = &Verification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verification.Table, sqlgraph.NewFieldSpec(verification.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ResponsibleEngineer(); ok {
		_spec.SetField(verification.FieldResponsibleEngineer, field.TypeString, value)
		_node.ResponsibleEngineer = value
	}
	if value, ok := _c.mutation.ReportDate(); ok {
		_spec.SetField(verification.FieldReportDate, field.TypeString, value)
		_node.ReportDate = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(verification.FieldProgressPercent, field.TypeFloat64, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.Valid(); ok {
		_spec.SetField(verification.FieldValid, field.TypeBool, value)
		_node.Valid = value
	}
	if value, ok := _c.mutation.FieldOrigins(); ok {
		_spec.SetField(verification.FieldFieldOrigins, field.TypeJSON, value)
		_node.FieldOrigins = value
	}
	if value, ok := _c.mutation.ReleaseTxHash(); ok {
		_spec.SetField(verification.FieldReleaseTxHash, field.TypeString, value)
		_node.ReleaseTxHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationCreateBulk is the builder for creating many Verification entities in bulk.
type VerificationCreateBulk struct {
	config
	err      error
	builders []*VerificationCreate
}

// Save creates the Verification entities in the database.
func (_c *VerificationCreateBulk) Save(ctx context.Context) ([]*Verification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationMutation)
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
func (_c *VerificationCreateBulk) SaveX(ctx context.Context) []*Verification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
