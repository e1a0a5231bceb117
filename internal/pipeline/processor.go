package pipeline

import (
	"context"
	"log/slog"

	"github.com/byb-ai/progress-verifier/internal/entity"
	"github.com/byb-ai/progress-verifier/internal/extract"
	"github.com/byb-ai/progress-verifier/internal/validation"
)

// EntityExtractor is Stage 2 as the orchestrator sees it: total, no error path.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) entity.ExtractionResult
}

// Outcome is everything one pipeline invocation produced.
type Outcome struct {
	Text   extract.TextExtractionResult
	Result entity.ExtractionResult
	Valid  bool
}

// Processor sequences text extraction, entity extraction, and validation.
// Only Stage 1 can fail the invocation; the later stages are total.
type Processor struct {
	Logger   *slog.Logger
	Text     extract.TextExtractor
	Entities EntityExtractor
}

func NewProcessor(logger *slog.Logger, text extract.TextExtractor, entities EntityExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Entities: entities}
}

// Process runs a document through all three stages.
func (p *Processor) Process(ctx context.Context, doc extract.Document) (Outcome, error) {
	textRes, err := p.Text.Extract(ctx, doc)
	if err != nil {
		p.Logger.Error("pipeline.ocr.failed", "filename", doc.Filename, "err", err)
		return Outcome{}, err
	}
	p.Logger.Info("pipeline.ocr.ok",
		"filename", doc.Filename,
		"method", textRes.Method,
		"pages", textRes.Pages,
		"confidence", textRes.Confidence,
		"text_len", len(textRes.Text),
	)

	result := p.Entities.Extract(ctx, textRes.Text)
	valid := validation.Validate(result)
	p.Logger.Info("pipeline.verdict",
		"filename", doc.Filename,
		"valid", valid,
		"engineer", result.ResponsibleEngineer,
		"date", result.Date,
		"progress", result.ConstructionProgressPercentage,
	)
	return Outcome{Text: textRes, Result: result, Valid: valid}, nil
}
