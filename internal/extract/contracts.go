package extract

import (
	"context"
	"time"
)

// Document is a raw uploaded payload. Content is never mutated after receipt;
// each pipeline invocation owns its Document exclusively.
type Document struct {
	Content  []byte
	Filename string
}

// TextExtractor is Stage 1: document bytes -> text.
type TextExtractor interface {
	Extract(ctx context.Context, doc Document) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "image-ocr" | "pdf-batch-ocr"
	Confidence float32
	Duration   time.Duration
}
