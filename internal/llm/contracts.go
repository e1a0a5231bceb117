package llm

import "context"

// FieldSpan is a single extraction: a field name and the verbatim span of
// source text the model grounded it on.
type FieldSpan struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

type ExtractRequest struct {
	// Text is the OCR output to mine for fields.
	Text string
	// Context is optional surrounding information (project name, report id)
	// folded into the user prompt.
	Context string
	// Fields to extract. Defaults to ReportFieldSpecs() when empty.
	Fields []FieldSpec
}

// FieldExtractor is the interface the entity stage depends on. Implementations
// return the spans the model produced plus the raw JSON for audit logging.
type FieldExtractor interface {
	Extract(ctx context.Context, req ExtractRequest) ([]FieldSpan, []byte /*rawJSON*/, error)
}
