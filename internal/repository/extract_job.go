package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/byb-ai/progress-verifier/constants"
	"github.com/byb-ai/progress-verifier/gen/ent"
	"github.com/byb-ai/progress-verifier/internal/entity"
)

// OCROutcome is what the text-extraction stage persists onto a job.
type OCROutcome struct {
	OCRText    string
	Method     string
	Confidence float32
	Pages      int
}

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (entity.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (entity.ExtractJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error
	FinishEntities(ctx context.Context, jobID uuid.UUID, extractedJSON []byte, modelName string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	MarkValidated(ctx context.Context, jobID uuid.UUID) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return entity.ExtractJob{}, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return toExtractJob(job), nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (entity.ExtractJob, error) {
	row, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return entity.ExtractJob{}, err
	}
	return toExtractJob(row), nil
}

func (r *extractJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(out.OCRText).
		SetOcrMethod(out.Method).
		SetOcrConfidence(out.Confidence).
		SetPages(out.Pages).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished OCR", "job_id", jobID, "method", out.Method)
	return nil
}

func (r *extractJobRepo) FinishEntities(ctx context.Context, jobID uuid.UUID, extractedJSON []byte, modelName string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedJSON(extractedJSON).
		SetModelName(modelName).
		SetStatus(string(constants.JobStatusEntityOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(ENTITY_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *extractJobRepo) MarkValidated(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusValidated)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(VALIDATED) failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func toExtractJob(row *ent.ExtractJob) entity.ExtractJob {
	j := entity.ExtractJob{
		ID:         row.ID,
		FileID:     row.FileID,
		Format:     row.Format,
		Status:     row.Status,
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
	}
	if row.OcrMethod != nil {
		j.OCRMethod = *row.OcrMethod
	}
	if row.OcrText != nil {
		j.OCRText = *row.OcrText
	}
	if row.OcrConfidence != nil {
		j.OCRConfidence = *row.OcrConfidence
	}
	if row.Pages != nil {
		j.Pages = *row.Pages
	}
	if row.ErrorMessage != nil {
		j.ErrorMessage = *row.ErrorMessage
	}
	return j
}
