package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/byb-ai/progress-verifier/gen/ent"
	entfile "github.com/byb-ai/progress-verifier/gen/ent/reportfile"
	"github.com/byb-ai/progress-verifier/internal/entity"
)

type ReportFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.ReportFile, error)
	GetByHash(ctx context.Context, hash []byte) (entity.ReportFile, error)
	Create(ctx context.Context, buildingID, milestoneID int64, filename, ext string, size int, hash []byte, uploadedAt time.Time) (entity.ReportFile, error)
	UpsertByHash(ctx context.Context, buildingID, milestoneID int64, filename, ext string, size int, hash []byte, uploadedAt time.Time) (entity.ReportFile, bool, error)
}

type reportFileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReportFileRepository(entc *ent.Client, logger *slog.Logger) ReportFileRepository {
	return &reportFileRepo{ent: entc, log: logger}
}

func (r *reportFileRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.ReportFile, error) {
	row, err := r.ent.ReportFile.Get(ctx, id)
	if err != nil {
		return entity.ReportFile{}, err
	}
	return toReportFile(row), nil
}

func (r *reportFileRepo) GetByHash(ctx context.Context, hash []byte) (entity.ReportFile, error) {
	row, err := r.ent.ReportFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return entity.ReportFile{}, err
	}
	return toReportFile(row), nil
}

func (r *reportFileRepo) Create(ctx context.Context, buildingID, milestoneID int64, filename, ext string, size int, hash []byte, uploadedAt time.Time) (entity.ReportFile, error) {
	row, err := r.ent.ReportFile.Create().
		SetBuildingID(buildingID).
		SetMilestoneID(milestoneID).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to create report file", "building_id", buildingID, "milestone_id", milestoneID, "filename", filename, "error", err)
		return entity.ReportFile{}, err
	}
	return toReportFile(row), nil
}

func (r *reportFileRepo) UpsertByHash(ctx context.Context, buildingID, milestoneID int64, filename, ext string, size int, hash []byte, uploadedAt time.Time) (entity.ReportFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, buildingID, milestoneID, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return entity.ReportFile{}, false, err
	}
	return row, false, nil
}

func toReportFile(row *ent.ReportFile) entity.ReportFile {
	return entity.ReportFile{
		ID:          row.ID,
		BuildingID:  row.BuildingID,
		MilestoneID: row.MilestoneID,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		FileSize:    row.FileSize,
		ContentHash: row.ContentHash,
		UploadedAt:  row.UploadedAt,
	}
}
