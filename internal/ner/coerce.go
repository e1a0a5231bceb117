package ner

import (
	"strconv"
	"strings"

	"github.com/byb-ai/progress-verifier/internal/llm"
)

// Coerce converts a raw extracted span to the field's declared type. The
// second return reports whether coercion succeeded; on failure the caller
// keeps the raw string rather than failing the whole extraction.
func Coerce(t llm.FieldType, raw string) (any, bool) {
	switch t {
	case llm.TypeFloat:
		// Brazilian reports use a decimal comma.
		f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return raw, false
		}
		return f, true
	case llm.TypeInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return raw, false
		}
		return n, true
	case llm.TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "sim", "yes", "1":
			return true, true
		default:
			return false, true
		}
	default:
		return raw, true
	}
}
