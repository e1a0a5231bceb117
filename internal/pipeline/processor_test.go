package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/entity"
	"github.com/byb-ai/progress-verifier/internal/extract"
)

type stubText struct {
	res extract.TextExtractionResult
	err error
}

func (s stubText) Extract(context.Context, extract.Document) (extract.TextExtractionResult, error) {
	return s.res, s.err
}

type stubEntities struct {
	res    entity.ExtractionResult
	called bool
}

func (s *stubEntities) Extract(context.Context, string) entity.ExtractionResult {
	s.called = true
	return s.res
}

func TestProcessHappyPath(t *testing.T) {
	entities := &stubEntities{res: entity.ExtractionResult{
		ResponsibleEngineer:            "João Silva",
		Date:                           "15/03/2024",
		ConstructionProgressPercentage: 75.0,
	}}
	p := NewProcessor(nil, stubText{res: extract.TextExtractionResult{Text: "Progress: 75%"}}, entities)

	out, err := p.Process(context.Background(), extract.Document{Filename: "report.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Valid {
		t.Errorf("expected a valid verdict")
	}
	if out.Result.ResponsibleEngineer != "João Silva" {
		t.Errorf("result not carried through: %+v", out.Result)
	}
}

func TestProcessFailFastOnTextExtraction(t *testing.T) {
	wrapped := errors.New("vision down")
	entities := &stubEntities{}
	p := NewProcessor(nil, stubText{err: wrapped}, entities)

	_, err := p.Process(context.Background(), extract.Document{Filename: "report.pdf"})
	if !errors.Is(err, wrapped) {
		t.Fatalf("text extraction error must propagate unmodified, got %v", err)
	}
	if entities.called {
		t.Errorf("entity stage must not run after text extraction fails")
	}
}

func TestProcessTimeoutPropagates(t *testing.T) {
	timeout := common.WrapError(common.ErrExtractionTimeout, "batch ocr")
	p := NewProcessor(nil, stubText{err: timeout}, &stubEntities{})

	_, err := p.Process(context.Background(), extract.Document{Filename: "slow.pdf"})
	if !errors.Is(err, common.ErrExtractionTimeout) {
		t.Fatalf("expected ErrExtractionTimeout, got %v", err)
	}
}

func TestProcessDegradedExtractionStillValidates(t *testing.T) {
	// All defaults from a degraded entity stage fail validation but never the
	// pipeline itself.
	entities := &stubEntities{res: entity.ExtractionResult{}}
	p := NewProcessor(nil, stubText{res: extract.TextExtractionResult{Text: "unreadable"}}, entities)

	out, err := p.Process(context.Background(), extract.Document{Filename: "r.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Valid {
		t.Errorf("all-defaults record must not validate")
	}
}
