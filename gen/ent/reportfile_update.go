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
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/predicate"
	"github.com/byb-ai/progress-verifier/gen/ent/reportfile"
	"github.com/google/uuid"
)

// ReportFileUpdate is the builder for updating ReportFile entities.
type ReportFileUpdate struct {
	config
	hooks    []Hook
	mutation *ReportFileMutation
}

// Where appends a list predicates to the ReportFileUpdate builder.
func (_u *ReportFileUpdate) Where(ps ...predicate.ReportFile) *ReportFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBuildingID sets the "building_id" field.
func (_u *ReportFileUpdate) SetBuildingID(v int64) *ReportFileUpdate {
	_u.mutation.ResetBuildingID()
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableBuildingID(v *int64) *ReportFileUpdate {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// AddBuildingID adds value to the "building_id" field.
func (_u *ReportFileUpdate) AddBuildingID(v int64) *ReportFileUpdate {
	_u.mutation.AddBuildingID(v)
	return _u
}

// SetMilestoneID sets the "milestone_id" field.
func (_u *ReportFileUpdate) SetMilestoneID(v int64) *ReportFileUpdate {
	_u.mutation.ResetMilestoneID()
	_u.mutation.SetMilestoneID(v)
	return _u
}

// SetNillableMilestoneID sets the "milestone_id" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableMilestoneID(v *int64) *ReportFileUpdate {
	if v != nil {
		_u.SetMilestoneID(*v)
	}
	return _u
}

// AddMilestoneID adds value to the "milestone_id" field.
func (_u *ReportFileUpdate) AddMilestoneID(v int64) *ReportFileUpdate {
	_u.mutation.AddMilestoneID(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportFileUpdate) SetFilename(v string) *ReportFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableFilename(v *string) *ReportFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ReportFileUpdate) SetFileExt(v string) *ReportFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableFileExt(v *string) *ReportFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ReportFileUpdate) SetFileSize(v int) *ReportFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableFileSize(v *int) *ReportFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ReportFileUpdate) AddFileSize(v int) *ReportFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReportFileUpdate) SetContentHash(v []byte) *ReportFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReportFileUpdate) SetUploadedAt(v time.Time) *ReportFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableUploadedAt(v *time.Time) *ReportFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ReportFileUpdate) AddJobIDs(ids ...uuid.UUID) *ReportFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ReportFileUpdate) AddJobs(v ...*ExtractJob) *ReportFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReportFileMutation object of the builder.
func (_u *ReportFileUpdate) Mutation() *ReportFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ReportFileUpdate) ClearJobs() *ReportFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ReportFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *ReportFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ReportFileUpdate) RemoveJobs(v ...*ExtractJob) *ReportFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportFileUpdate) check() error {
	if v, ok := _u.mutation.BuildingID(); ok {
		if err := reportfile.BuildingIDValidator(v); err != nil {
			return &ValidationError{Name: "building_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.building_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MilestoneID(); ok {
		if err := reportfile.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.milestone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := reportfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ReportFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := reportfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := reportfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := reportfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ReportFile.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportfile.Table, reportfile.Columns, sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(reportfile.FieldBuildingID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBuildingID(); ok {
		_spec.AddField(reportfile.FieldBuildingID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MilestoneID(); ok {
		_spec.SetField(reportfile.FieldMilestoneID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMilestoneID(); ok {
		_spec.AddField(reportfile.FieldMilestoneID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(reportfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(reportfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(reportfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(reportfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(reportfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(reportfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportFileUpdateOne is the builder for updating a single ReportFile entity.
type ReportFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportFileMutation
}

// SetBuildingID sets the "building_id" field.
func (_u *ReportFileUpdateOne) SetBuildingID(v int64) *ReportFileUpdateOne {
	_u.mutation.ResetBuildingID()
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableBuildingID(v *int64) *ReportFileUpdateOne {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// AddBuildingID adds value to the "building_id" field.
func (_u *ReportFileUpdateOne) AddBuildingID(v int64) *ReportFileUpdateOne {
	_u.mutation.AddBuildingID(v)
	return _u
}

// SetMilestoneID sets the "milestone_id" field.
func (_u *ReportFileUpdateOne) SetMilestoneID(v int64) *ReportFileUpdateOne {
	_u.mutation.ResetMilestoneID()
	_u.mutation.SetMilestoneID(v)
	return _u
}

// SetNillableMilestoneID sets the "milestone_id" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableMilestoneID(v *int64) *ReportFileUpdateOne {
	if v != nil {
		_u.SetMilestoneID(*v)
	}
	return _u
}

// AddMilestoneID adds value to the "milestone_id" field.
func (_u *ReportFileUpdateOne) AddMilestoneID(v int64) *ReportFileUpdateOne {
	_u.mutation.AddMilestoneID(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportFileUpdateOne) SetFilename(v string) *ReportFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableFilename(v *string) *ReportFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ReportFileUpdateOne) SetFileExt(v string) *ReportFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableFileExt(v *string) *ReportFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ReportFileUpdateOne) SetFileSize(v int) *ReportFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableFileSize(v *int) *ReportFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ReportFileUpdateOne) AddFileSize(v int) *ReportFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReportFileUpdateOne) SetContentHash(v []byte) *ReportFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReportFileUpdateOne) SetUploadedAt(v time.Time) *ReportFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableUploadedAt(v *time.Time) *ReportFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ReportFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *ReportFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ReportFileUpdateOne) AddJobs(v ...*ExtractJob) *ReportFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReportFileMutation object of the builder.
func (_u *ReportFileUpdateOne) Mutation() *ReportFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ReportFileUpdateOne) ClearJobs() *ReportFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ReportFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ReportFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ReportFileUpdateOne) RemoveJobs(v ...*ExtractJob) *ReportFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ReportFileUpdate builder.
func (_u *ReportFileUpdateOne) Where(ps ...predicate.ReportFile) *ReportFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportFileUpdateOne) Select(field string, fields ...string) *ReportFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportFile entity.
func (_u *ReportFileUpdateOne) Save(ctx context.Context) (*ReportFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportFileUpdateOne) SaveX(ctx context.Context) *ReportFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportFileUpdateOne) check() error {
	if v, ok := _u.mutation.BuildingID(); ok {
		if err := reportfile.BuildingIDValidator(v); err != nil {
			return &ValidationError{Name: "building_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.building_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MilestoneID(); ok {
		if err := reportfile.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "ReportFile.milestone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := reportfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ReportFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := reportfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := reportfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ReportFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := reportfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ReportFile.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportFileUpdateOne) sqlSave(ctx context.Context) (_node *ReportFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportfile.Table, reportfile.Columns, sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportfile.FieldID)
		for _, f := range fields {
			if !reportfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportfile.FieldID {
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
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(reportfile.FieldBuildingID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBuildingID(); ok {
		_spec.AddField(reportfile.FieldBuildingID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MilestoneID(); ok {
		_spec.SetField(reportfile.FieldMilestoneID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMilestoneID(); ok {
		_spec.AddField(reportfile.FieldMilestoneID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(reportfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(reportfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(reportfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(reportfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(reportfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(reportfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
