package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/byb-ai/progress-verifier/constants"
	"github.com/byb-ai/progress-verifier/gen/ent"
	"github.com/byb-ai/progress-verifier/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	// One named in-memory database per test; cache=shared keeps every pooled
	// connection on the same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestVerificationLifecycle(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	logger := slog.Default()

	files := NewReportFileRepository(client, logger)
	jobs := NewExtractJobRepository(client, logger)
	verifications := NewVerificationRepository(client, logger)

	file, err := files.Create(ctx, 7, 2, "report.pdf", "pdf", 1024, []byte{0xAB, 0xCD}, time.Now())
	if err != nil {
		t.Fatalf("create file: %v", err)
	}

	job, err := jobs.Start(ctx, file.ID, constants.PDF)
	if err != nil {
		t.Fatalf("start job: %v", err)
	}
	if err := jobs.FinishOCR(ctx, job.ID, OCROutcome{OCRText: "Progress: 75%", Method: "pdf-batch-ocr", Confidence: 0.92, Pages: 3}); err != nil {
		t.Fatalf("finish ocr: %v", err)
	}

	verdict := entity.ValidationVerdict{
		Valid: true,
		Result: entity.ExtractionResult{
			ResponsibleEngineer:            "João Silva",
			Date:                           "15/03/2024",
			ConstructionProgressPercentage: 75.0,
			Origins: map[string]entity.FieldOrigin{
				"responsible_engineer":             entity.OriginExtracted,
				"date":                             entity.OriginExtracted,
				"construction_progress_percentage": entity.OriginExtracted,
			},
		},
	}
	row, err := verifications.Record(ctx, job.ID, verdict)
	if err != nil {
		t.Fatalf("record verification: %v", err)
	}
	if err := verifications.SetReleaseTxHash(ctx, row.ID, "0xdeadbeef"); err != nil {
		t.Fatalf("set tx hash: %v", err)
	}

	got, err := verifications.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("get verification: %v", err)
	}
	if got.ResponsibleEngineer != "João Silva" || got.ProgressPercent != 75.0 || !got.Valid {
		t.Errorf("unexpected verification: %+v", got)
	}
	if got.ReleaseTxHash != "0xdeadbeef" {
		t.Errorf("tx hash: got %q", got.ReleaseTxHash)
	}
	if got.FieldOrigins["date"] != entity.OriginExtracted {
		t.Errorf("field origins not round-tripped: %+v", got.FieldOrigins)
	}
}

func TestFileAndJobRowsMappedToDomainTypes(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	logger := slog.Default()

	files := NewReportFileRepository(client, logger)
	jobs := NewExtractJobRepository(client, logger)

	hash := []byte{0xAA, 0xBB}
	file, err := files.Create(ctx, 7, 2, "report.pdf", "pdf", 2048, hash, time.Now())
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if file.BuildingID != 7 || file.MilestoneID != 2 || file.Filename != "report.pdf" || file.FileSize != 2048 {
		t.Errorf("unexpected file row: %+v", file)
	}

	same, existed, err := files.UpsertByHash(ctx, 7, 2, "report.pdf", "pdf", 2048, hash, time.Now())
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !existed || same.ID != file.ID {
		t.Errorf("upsert did not dedupe by hash: existed=%v id=%s want %s", existed, same.ID, file.ID)
	}

	job, err := jobs.Start(ctx, file.ID, constants.PDF)
	if err != nil {
		t.Fatalf("start job: %v", err)
	}
	if job.FileID != file.ID || job.Status != string(constants.JobStatusRunning) {
		t.Errorf("unexpected job row: %+v", job)
	}

	out := OCROutcome{OCRText: "Progresso: 75%", Method: "pdf-batch-ocr", Confidence: 0.92, Pages: 3}
	if err := jobs.FinishOCR(ctx, job.ID, out); err != nil {
		t.Fatalf("finish ocr: %v", err)
	}
	got, err := jobs.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.OCRText != out.OCRText || got.OCRMethod != out.Method || got.OCRConfidence != out.Confidence || got.Pages != out.Pages {
		t.Errorf("ocr outcome not mapped back: %+v", got)
	}
	if got.Status != string(constants.JobStatusOCROK) {
		t.Errorf("status = %q", got.Status)
	}
}

func TestVerificationListFiltersValid(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	logger := slog.Default()

	files := NewReportFileRepository(client, logger)
	jobs := NewExtractJobRepository(client, logger)
	verifications := NewVerificationRepository(client, logger)

	file, err := files.Create(ctx, 1, 1, "a.pdf", "pdf", 10, []byte{0x01}, time.Now())
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	job, err := jobs.Start(ctx, file.ID, constants.PDF)
	if err != nil {
		t.Fatalf("start job: %v", err)
	}

	for _, valid := range []bool{true, false, true} {
		verdict := entity.ValidationVerdict{
			Valid:  valid,
			Result: entity.ExtractionResult{ResponsibleEngineer: "A", Date: "d", ConstructionProgressPercentage: 50},
		}
		if _, err := verifications.Record(ctx, job.ID, verdict); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	all, err := verifications.List(ctx, false, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rows, got %d", len(all))
	}

	valid, err := verifications.List(ctx, true, 0)
	if err != nil {
		t.Fatalf("list valid: %v", err)
	}
	if len(valid) != 2 {
		t.Errorf("expected 2 valid rows, got %d", len(valid))
	}
}
