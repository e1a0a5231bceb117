package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/byb-ai/progress-verifier/constants"
	reportspb "github.com/byb-ai/progress-verifier/gen/proto/reports/v1"
	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/entity"
	"github.com/byb-ai/progress-verifier/internal/escrow"
	"github.com/byb-ai/progress-verifier/internal/export"
	"github.com/byb-ai/progress-verifier/internal/extract"
	"github.com/byb-ai/progress-verifier/internal/pipeline"
	"github.com/byb-ai/progress-verifier/internal/repository"
	"github.com/byb-ai/progress-verifier/internal/validation"
)

type VerifierService struct {
	reportspb.UnimplementedVerifierServiceServer

	processor     *pipeline.Processor
	files         repository.ReportFileRepository
	jobs          repository.ExtractJobRepository
	verifications repository.VerificationRepository
	exporter      *export.Service
	escrow        *escrow.Service // nil when escrow is not configured
	modelName     string
	logger        *slog.Logger
}

func NewVerifierService(
	processor *pipeline.Processor,
	files repository.ReportFileRepository,
	jobs repository.ExtractJobRepository,
	verifications repository.VerificationRepository,
	exporter *export.Service,
	escrowSvc *escrow.Service,
	modelName string,
	logger *slog.Logger,
) *VerifierService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifierService{
		processor:     processor,
		files:         files,
		jobs:          jobs,
		verifications: verifications,
		exporter:      exporter,
		escrow:        escrowSvc,
		modelName:     modelName,
		logger:        logger,
	}
}

func (s *VerifierService) ExtractText(ctx context.Context, req *reportspb.ExtractTextRequest) (*reportspb.ExtractTextResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	res, err := s.processor.Text.Extract(ctx, extract.Document{
		Content:  req.GetContent(),
		Filename: req.GetFilename(),
	})
	if err != nil {
		s.logger.Error("extract text failed", "filename", req.GetFilename(), "err", err)
		return nil, common.GRPCStatus(err)
	}
	return toProtoText(res), nil
}

func (s *VerifierService) ExtractEntities(ctx context.Context, req *reportspb.ExtractEntitiesRequest) (*reportspb.ExtractEntitiesResponse, error) {
	result := s.processor.Entities.Extract(ctx, req.GetText())
	return &reportspb.ExtractEntitiesResponse{Result: toProtoResult(result)}, nil
}

func (s *VerifierService) ValidateReport(_ context.Context, req *reportspb.ValidateReportRequest) (*reportspb.ValidateReportResponse, error) {
	if req.GetResult() == nil {
		return nil, common.InvalidArgumentError("result is required")
	}
	return &reportspb.ValidateReportResponse{
		Valid: validation.Validate(fromProtoResult(req.GetResult())),
	}, nil
}

func (s *VerifierService) ProcessReport(ctx context.Context, req *reportspb.ProcessReportRequest) (*reportspb.ProcessReportResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(req.GetFilename()))
	if ext != "" && !constants.IsAllowedExt(ext) {
		return nil, common.InvalidArgumentErrorf("unsupported file extension: %s", ext)
	}

	format := constants.MapExtToFormat(ext)
	if format == "" {
		format = constants.SniffFormat(req.GetContent())
	}
	if ext == "" {
		ext = strings.ToLower(format)
	}

	hash := sha256.Sum256(req.GetContent())
	file, _, err := s.files.UpsertByHash(ctx, req.GetBuildingId(), req.GetMilestoneId(),
		req.GetFilename(), ext, len(req.GetContent()), hash[:], time.Now())
	if err != nil {
		s.logger.Error("persist report file failed", "filename", req.GetFilename(), "err", err)
		return nil, common.InternalError("persist report file failed")
	}

	job, err := s.jobs.Start(ctx, file.ID, format)
	if err != nil {
		return nil, common.InternalError("start extract job failed")
	}

	outcome, err := s.processor.Process(ctx, extract.Document{
		Content:  req.GetContent(),
		Filename: req.GetFilename(),
	})
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, common.GRPCStatus(err)
	}

	if err := s.jobs.FinishOCR(ctx, job.ID, repository.OCROutcome{
		OCRText:    outcome.Text.Text,
		Method:     outcome.Text.Method,
		Confidence: outcome.Text.Confidence,
		Pages:      outcome.Text.Pages,
	}); err != nil {
		return nil, common.InternalError("persist ocr result failed")
	}

	extracted, _ := json.Marshal(outcome.Result)
	if err := s.jobs.FinishEntities(ctx, job.ID, extracted, s.modelName); err != nil {
		return nil, common.InternalError("persist extraction result failed")
	}

	verdict := entity.ValidationVerdict{Valid: outcome.Valid, Result: outcome.Result}
	verification, err := s.verifications.Record(ctx, job.ID, verdict)
	if err != nil {
		return nil, common.InternalError("record verification failed")
	}
	if err := s.jobs.MarkValidated(ctx, job.ID); err != nil {
		return nil, common.InternalError("finalize job failed")
	}

	resp := &reportspb.ProcessReportResponse{
		JobId:          job.ID.String(),
		VerificationId: verification.ID.String(),
		Text:           toProtoText(outcome.Text),
		Result:         toProtoResult(outcome.Result),
		Valid:          outcome.Valid,
	}

	if outcome.Valid && req.GetReleaseFunds() {
		if s.escrow == nil || !s.escrow.CanRelease() {
			return nil, status.Error(codes.FailedPrecondition, "fund release requested but escrow is not configured")
		}
		txHash, err := s.escrow.ReleaseMilestoneFunds(ctx, req.GetBuildingId())
		if err != nil {
			s.logger.Error("fund release failed", "building_id", req.GetBuildingId(), "verification_id", verification.ID, "err", err)
			return nil, common.GRPCStatus(err)
		}
		if err := s.verifications.SetReleaseTxHash(ctx, verification.ID, txHash); err != nil {
			s.logger.Error("record tx hash failed", "verification_id", verification.ID, "err", err)
		}
		resp.ReleaseTxHash = txHash
	}

	return resp, nil
}

func (s *VerifierService) ListVerifications(ctx context.Context, req *reportspb.ListVerificationsRequest) (*reportspb.ListVerificationsResponse, error) {
	rows, err := s.verifications.List(ctx, req.GetOnlyValid(), int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list verifications failed", "err", err)
		return nil, common.InternalError("list verifications failed")
	}
	out := make([]*reportspb.Verification, 0, len(rows))
	for _, v := range rows {
		out = append(out, &reportspb.Verification{
			Id:                  v.ID.String(),
			JobId:               v.JobID.String(),
			ResponsibleEngineer: v.ResponsibleEngineer,
			ReportDate:          v.ReportDate,
			ProgressPercent:     v.ProgressPercent,
			Valid:               v.Valid,
			ReleaseTxHash:       v.ReleaseTxHash,
			CreatedAt:           v.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return &reportspb.ListVerificationsResponse{Verifications: out}, nil
}

func (s *VerifierService) ExportVerifications(ctx context.Context, req *reportspb.ExportVerificationsRequest) (*reportspb.ExportVerificationsResponse, error) {
	xlsx, err := s.exporter.ExportVerificationsXLSX(ctx, req.GetOnlyValid())
	if err != nil {
		s.logger.Error("export verifications failed", "err", err)
		return nil, common.InternalError("export verifications failed")
	}
	return &reportspb.ExportVerificationsResponse{Xlsx: xlsx}, nil
}

func toProtoText(res extract.TextExtractionResult) *reportspb.ExtractTextResponse {
	return &reportspb.ExtractTextResponse{
		Text:       res.Text,
		Pages:      int32(res.Pages),
		SourceType: res.SourceType,
		Method:     res.Method,
		Confidence: res.Confidence,
		DurationMs: res.Duration.Milliseconds(),
	}
}

func toProtoResult(res entity.ExtractionResult) *reportspb.ExtractionResult {
	origins := make(map[string]string, len(res.Origins))
	for field, origin := range res.Origins {
		origins[field] = string(origin)
	}
	return &reportspb.ExtractionResult{
		ResponsibleEngineer:            res.ResponsibleEngineer,
		Date:                           res.Date,
		ConstructionProgressPercentage: res.ConstructionProgressPercentage,
		Origins:                        origins,
	}
}

func fromProtoResult(pb *reportspb.ExtractionResult) entity.ExtractionResult {
	origins := make(map[string]entity.FieldOrigin, len(pb.GetOrigins()))
	for field, origin := range pb.GetOrigins() {
		origins[field] = entity.FieldOrigin(origin)
	}
	return entity.ExtractionResult{
		ResponsibleEngineer:            pb.GetResponsibleEngineer(),
		Date:                           pb.GetDate(),
		ConstructionProgressPercentage: pb.GetConstructionProgressPercentage(),
		Origins:                        origins,
	}
}
