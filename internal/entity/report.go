package entity

// FieldOrigin records how a field in an ExtractionResult got its value.
type FieldOrigin string

const (
	// OriginExtracted means the backend returned a span and it coerced cleanly.
	OriginExtracted FieldOrigin = "extracted"
	// OriginDefaulted means the field was absent (or the whole extraction
	// failed) and the type default was substituted.
	OriginDefaulted FieldOrigin = "defaulted"
	// OriginCoercionFailed means a span was returned but did not parse as the
	// declared type; the raw text was kept where the type allows it.
	OriginCoercionFailed FieldOrigin = "coercion_failed"
)

// ExtractionResult is the structured record produced by entity extraction.
// It is always fully populated: fields the backend could not fill carry their
// type default and an origin of OriginDefaulted.
type ExtractionResult struct {
	ResponsibleEngineer            string  `json:"responsible_engineer"`
	Date                           string  `json:"date"`
	ConstructionProgressPercentage float64 `json:"construction_progress_percentage"`

	// Origins distinguishes "the document says so" from "extraction broke",
	// keyed by schema field name.
	Origins map[string]FieldOrigin `json:"origins,omitempty"`
}

// ValidationVerdict pairs a boolean verdict with the result it was computed
// from. It has no lifecycle of its own.
type ValidationVerdict struct {
	Valid  bool             `json:"valid"`
	Result ExtractionResult `json:"result"`
}
