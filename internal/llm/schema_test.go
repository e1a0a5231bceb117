package llm

import (
	"strings"
	"testing"
)

func TestValidateExtractionSchema(t *testing.T) {
	schema := BuildExtractionJSONSchema(ReportFieldSpecs())

	good := `{"extractions":[{"field":"responsible_engineer","text":"João Silva"}]}`
	if err := ValidateJSONAgainstSchema(schema, []byte(good)); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	unknownField := `{"extractions":[{"field":"merchant_name","text":"x"}]}`
	if err := ValidateJSONAgainstSchema(schema, []byte(unknownField)); err == nil {
		t.Error("field outside the schema enum must be rejected")
	}

	missingKey := `{"spans":[]}`
	if err := ValidateJSONAgainstSchema(schema, []byte(missingKey)); err == nil {
		t.Error("document without extractions must be rejected")
	}
}

func TestWorkedExampleMatchesSchema(t *testing.T) {
	schema := BuildExtractionJSONSchema(ReportFieldSpecs())
	_, assistant := WorkedExample()
	if err := ValidateJSONAgainstSchema(schema, []byte(assistant)); err != nil {
		t.Errorf("worked example must validate against its own schema: %v", err)
	}
}

func TestBuildInstructionEnumeratesFields(t *testing.T) {
	instruction := BuildInstruction(ReportFieldSpecs())
	for _, want := range []string{
		"- responsible_engineer (string, required)",
		"- date (string, required)",
		"- construction_progress_percentage (float, required)",
		"VERBATIM",
	} {
		if !strings.Contains(instruction, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
}
