package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/byb-ai/progress-verifier/gen/ent"
	entverification "github.com/byb-ai/progress-verifier/gen/ent/verification"
	"github.com/byb-ai/progress-verifier/internal/entity"
)

type VerificationRepository interface {
	Record(ctx context.Context, jobID uuid.UUID, verdict entity.ValidationVerdict) (entity.Verification, error)
	SetReleaseTxHash(ctx context.Context, id uuid.UUID, txHash string) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.Verification, error)
	List(ctx context.Context, onlyValid bool, limit int) ([]entity.Verification, error)
}

type verificationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVerificationRepository(entc *ent.Client, log *slog.Logger) VerificationRepository {
	return &verificationRepo{ent: entc, log: log}
}

func (r *verificationRepo) Record(ctx context.Context, jobID uuid.UUID, verdict entity.ValidationVerdict) (entity.Verification, error) {
	origins, err := json.Marshal(verdict.Result.Origins)
	if err != nil {
		return entity.Verification{}, err
	}
	row, err := r.ent.Verification.Create().
		SetJobID(jobID).
		SetResponsibleEngineer(verdict.Result.ResponsibleEngineer).
		SetReportDate(verdict.Result.Date).
		SetProgressPercent(verdict.Result.ConstructionProgressPercentage).
		SetValid(verdict.Valid).
		SetFieldOrigins(origins).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to record verification", "job_id", jobID, "err", err)
		return entity.Verification{}, err
	}
	r.log.Info("verification recorded", "verification_id", row.ID, "job_id", jobID, "valid", verdict.Valid)
	return toVerification(row), nil
}

func (r *verificationRepo) SetReleaseTxHash(ctx context.Context, id uuid.UUID, txHash string) error {
	_, err := r.ent.Verification.UpdateOneID(id).
		SetReleaseTxHash(txHash).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to set release tx hash", "verification_id", id, "err", err)
	}
	return err
}

func (r *verificationRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.Verification, error) {
	row, err := r.ent.Verification.Get(ctx, id)
	if err != nil {
		return entity.Verification{}, err
	}
	return toVerification(row), nil
}

func (r *verificationRepo) List(ctx context.Context, onlyValid bool, limit int) ([]entity.Verification, error) {
	q := r.ent.Verification.Query().
		Order(ent.Desc(entverification.FieldCreatedAt))
	if onlyValid {
		q = q.Where(entverification.Valid(true))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Verification, 0, len(rows))
	for _, row := range rows {
		out = append(out, toVerification(row))
	}
	return out, nil
}

func toVerification(row *ent.Verification) entity.Verification {
	v := entity.Verification{
		ID:                  row.ID,
		JobID:               row.JobID,
		ResponsibleEngineer: row.ResponsibleEngineer,
		ReportDate:          row.ReportDate,
		ProgressPercent:     row.ProgressPercent,
		Valid:               row.Valid,
		CreatedAt:           row.CreatedAt,
	}
	if row.ReleaseTxHash != nil {
		v.ReleaseTxHash = *row.ReleaseTxHash
	}
	if len(row.FieldOrigins) > 0 {
		_ = json.Unmarshal(row.FieldOrigins, &v.FieldOrigins)
	}
	return v
}
