package ner

import (
	"context"
	"log/slog"

	"github.com/byb-ai/progress-verifier/internal/entity"
	"github.com/byb-ai/progress-verifier/internal/llm"
)

// Schema field names materialized into entity.ExtractionResult.
const (
	FieldResponsibleEngineer = "responsible_engineer"
	FieldDate                = "date"
	FieldProgressPercentage  = "construction_progress_percentage"
)

// Extractor is Stage 2: raw text -> structured record. It is total: any
// backend failure degrades to an all-defaults result, never an error. The
// trade is precision for pipeline availability, so the Origins map is the only
// way a caller can tell "the document says so" from "extraction broke".
type Extractor struct {
	backend llm.FieldExtractor
	fields  []llm.FieldSpec
	log     *slog.Logger
}

func NewExtractor(backend llm.FieldExtractor, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		backend: backend,
		fields:  llm.ReportFieldSpecs(),
		log:     logger,
	}
}

// Extract never returns an error and never panics outward.
func (e *Extractor) Extract(ctx context.Context, text string) entity.ExtractionResult {
	values, origins := e.collect(ctx, text)
	return e.materialize(values, origins)
}

// collect invokes the backend and coerces each span, falling back to an empty
// value set when the call fails for any reason, a panic included.
func (e *Extractor) collect(ctx context.Context, text string) (values map[string]any, origins map[string]entity.FieldOrigin) {
	values = make(map[string]any, len(e.fields))
	origins = make(map[string]entity.FieldOrigin, len(e.fields))

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("ner.extract.panic", "recovered", r)
			values = make(map[string]any, len(e.fields))
			origins = make(map[string]entity.FieldOrigin, len(e.fields))
		}
	}()

	spans, _, err := e.backend.Extract(ctx, llm.ExtractRequest{Text: text, Fields: e.fields})
	if err != nil {
		e.log.Warn("ner.extract.degraded", "error", err)
		return values, origins
	}

	specs := make(map[string]llm.FieldSpec, len(e.fields))
	for _, f := range e.fields {
		specs[f.Name] = f
	}

	for _, span := range spans {
		spec, ok := specs[span.Field]
		if !ok {
			e.log.Warn("ner.extract.unknown_field", "field", span.Field)
			continue
		}
		v, coerced := Coerce(spec.Type, span.Text)
		values[spec.Name] = v
		if coerced {
			origins[spec.Name] = entity.OriginExtracted
		} else {
			origins[spec.Name] = entity.OriginCoercionFailed
		}
	}

	// Optional fields absent from the response get an explicit nil placeholder.
	// Inert for the report schema, where every field is required.
	for _, f := range e.fields {
		if _, ok := values[f.Name]; !ok && !f.Required {
			values[f.Name] = nil
			origins[f.Name] = entity.OriginDefaulted
		}
	}
	return values, origins
}

// materialize builds the fully-populated result. Fields without a usable typed
// value get their type default; the origin map records why.
func (e *Extractor) materialize(values map[string]any, origins map[string]entity.FieldOrigin) entity.ExtractionResult {
	res := entity.ExtractionResult{
		Origins: make(map[string]entity.FieldOrigin, len(e.fields)),
	}
	for _, f := range e.fields {
		origin, ok := origins[f.Name]
		if !ok {
			origin = entity.OriginDefaulted
		}
		res.Origins[f.Name] = origin

		switch f.Name {
		case FieldResponsibleEngineer:
			if s, ok := values[f.Name].(string); ok {
				res.ResponsibleEngineer = s
			}
		case FieldDate:
			if s, ok := values[f.Name].(string); ok {
				res.Date = s
			}
		case FieldProgressPercentage:
			if fv, ok := values[f.Name].(float64); ok {
				res.ConstructionProgressPercentage = fv
			}
		}
	}
	return res
}
