// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/reportfile"
	"github.com/google/uuid"
)

// ReportFileCreate is the builder for creating a ReportFile entity.
type ReportFileCreate struct {
	config
	mutation *ReportFileMutation
	hooks    []Hook
}

// SetBuildingID sets the "building_id" field.
func (_c *ReportFileCreate) SetBuildingID(v int64) *ReportFileCreate {
	_c.mutation.SetBuildingID(v)
	return _c
}

// SetMilestoneID sets the "milestone_id" field.
func (_c *ReportFileCreate) SetMilestoneID(v int64) *ReportFileCreate {
	_c.mutation.SetMilestoneID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ReportFileCreate) SetFilename(v string) *ReportFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *ReportFileCreate) SetFileExt(v string) *ReportFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ReportFileCreate) SetFileSize(v int) *ReportFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ReportFileCreate) SetContentHash(v []byte) *ReportFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ReportFileCreate) SetUploadedAt(v time.Time) *ReportFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ReportFileCreate) SetNillableUploadedAt(v *time.Time) *ReportFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportFileCreate) SetID(v uuid.UUID) *ReportFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportFileCreate) SetNillableID(v *uuid.UUID) *ReportFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ReportFileCreate) AddJobIDs(ids ...uuid.UUID) *ReportFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ReportFileCreate) AddJobs(v ...*ExtractJob) *ReportFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ReportFileMutation object of the builder.
func (_c *ReportFileCreate) Mutation() *ReportFileMutation {
	return _c.mutation
}

// Save creates the ReportFile in the database.
func (_c *ReportFileCreate) Save(ctx context.Context) (*ReportFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportFileCreate) SaveX(ctx context.Context) *ReportFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := reportfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reportfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportFileCreate) check() error {
	if _, ok := _c.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "ReportFile.building_id"`)}
	}
	if v, ok := _c.mutation.BuildingID(); ok {
		if err := reportfile.BuildingIDValidator(v); err != nil {
			return &ValidationError{Name: "building_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.building_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MilestoneID(); !ok {
		return &ValidationError{Name: "milestone_id", err: errors.New(`ent: missing required field "ReportFile.milestone_id"`)}
	}
	if v, ok := _c.mutation.MilestoneID(); ok {
		if err := reportfile.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.milestone_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ReportFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := reportfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ReportFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "ReportFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := reportfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ReportFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := reportfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ReportFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := reportfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ReportFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "ReportFile.uploaded_at"`)}
	}
	return nil
}

func (_c *ReportFileCreate) sqlSave(ctx context.Context) (*ReportFile, error) {
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

func (_c *ReportFileCreate) createSpec() (*ReportFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportfile.Table, sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BuildingID(); ok {
		_spec.SetField(reportfile.FieldBuildingID, field.TypeInt64, value)
		_node.BuildingID = value
	}
	if value, ok := _c.mutation.MilestoneID(); ok {
		_spec.SetField(reportfile.FieldMilestoneID, field.TypeInt64, value)
		_node.MilestoneID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(reportfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(reportfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(reportfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(reportfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(reportfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportFileCreateBulk is the builder for creating many ReportFile entities in bulk.
type ReportFileCreateBulk struct {
	config
	err      error
	builders []*ReportFileCreate
}

// Save creates the ReportFile entities in the database.
func (_c *ReportFileCreateBulk) Save(ctx context.Context) ([]*ReportFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportFileMutation)
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
func (_c *ReportFileCreateBulk) SaveX(ctx context.Context) []*ReportFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
