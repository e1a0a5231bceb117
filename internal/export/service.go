package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/byb-ai/progress-verifier/internal/entity"
)

// VerificationSource is the slice of the persistence layer exports depend on.
type VerificationSource interface {
	List(ctx context.Context, onlyValid bool, limit int) ([]entity.Verification, error)
}

// Service produces XLSX bytes for verification exports.
type Service struct {
	source VerificationSource
	logger *slog.Logger
}

func NewService(source VerificationSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// ExportVerificationsXLSX returns an XLSX workbook (as bytes) listing
// recorded verifications, optionally restricted to valid ones.
func (s *Service) ExportVerificationsXLSX(ctx context.Context, onlyValid bool) ([]byte, error) {
	start := time.Now()

	rows, err := s.source.List(ctx, onlyValid, 0)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verifications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Verified At",
		"Responsible Engineer",
		"Report Date",
		"Progress (%)",
		"Valid",
		"Release Tx Hash",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, v := range rows {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, val)
		}
		write(1, v.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, v.ResponsibleEngineer)
		write(3, v.ReportDate)
		write(4, v.ProgressPercent)
		write(5, v.Valid)
		write(6, v.ReleaseTxHash)
		rowNum++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 70)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"only_valid", onlyValid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
