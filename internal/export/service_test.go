package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/byb-ai/progress-verifier/internal/entity"
)

type fakeSource struct {
	rows      []entity.Verification
	onlyValid bool
}

func (f *fakeSource) List(_ context.Context, onlyValid bool, _ int) ([]entity.Verification, error) {
	f.onlyValid = onlyValid
	if !onlyValid {
		return f.rows, nil
	}
	var out []entity.Verification
	for _, v := range f.rows {
		if v.Valid {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestExportVerificationsXLSX(t *testing.T) {
	src := &fakeSource{rows: []entity.Verification{
		{
			ResponsibleEngineer: "João Silva",
			ReportDate:          "15/03/2024",
			ProgressPercent:     75.0,
			Valid:               true,
			ReleaseTxHash:       "0xabc",
			CreatedAt:           time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			ResponsibleEngineer: "",
			ReportDate:          "",
			ProgressPercent:     0,
			Valid:               false,
			CreatedAt:           time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewService(src, nil)

	data, err := svc.ExportVerificationsXLSX(context.Background(), false)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Verifications", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "João Silva" {
		t.Errorf("B2: got %q", got)
	}
	rows, err := f.GetRows("Verifications")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 { // header + 2 data rows
		t.Errorf("expected 3 rows, got %d", len(rows))
	}
}

func TestExportOnlyValidFilterPropagates(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, nil)

	if _, err := svc.ExportVerificationsXLSX(context.Background(), true); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !src.onlyValid {
		t.Errorf("only_valid filter not passed to the source")
	}
}
