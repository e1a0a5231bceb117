package validation

import "github.com/byb-ai/progress-verifier/internal/entity"

// Progress bounds for an acceptable report, percent, closed interval.
const (
	MinProgressPercent = 30.0
	MaxProgressPercent = 100.0
)

// Validate applies the business rules to a fully-populated extraction result.
// Pure and deterministic; the rules are independent predicates, so evaluation
// order carries no meaning.
func Validate(result entity.ExtractionResult) bool {
	if result.ResponsibleEngineer == "" {
		return false
	}
	if result.Date == "" {
		return false
	}
	p := result.ConstructionProgressPercentage
	return p >= MinProgressPercent && p <= MaxProgressPercent
}

// Verdict pairs the boolean with the record it was computed from.
func Verdict(result entity.ExtractionResult) entity.ValidationVerdict {
	return entity.ValidationVerdict{Valid: Validate(result), Result: result}
}
