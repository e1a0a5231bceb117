package llm

import (
	"fmt"
	"strings"
)

// BuildInstruction composes the system message: one line per field plus the
// grounding rules. Spans must be copied verbatim so the caller can audit them
// against the source text.
func BuildInstruction(fields []FieldSpec) string {
	var b strings.Builder
	b.WriteString("You extract structured fields from construction progress reports. ")
	b.WriteString("Return ONLY JSON that matches the provided JSON Schema. ")
	b.WriteString("Fields to extract:\n")
	for _, f := range fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- %s (%s, %s): %s\n", f.Name, f.Type, req, f.Description)
	}
	b.WriteString("Copy each span VERBATIM from the text; never paraphrase, translate, or reformat. ")
	b.WriteString("Reports may use Brazilian conventions: dates as DD/MM/YYYY and decimal commas (75,5). Keep them as written. ")
	b.WriteString("If a field is not present in the text, omit it from 'extractions'. Never output null.")
	return b.String()
}

// BuildUserPrompt packages the report text with optional caller context.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		b.WriteString("Context: ")
		b.WriteString(ctx)
		b.WriteString("\n\n")
	}
	b.WriteString("Report text:\n")
	b.WriteString(req.Text)
	return b.String()
}

// WorkedExample returns a few-shot user/assistant pair. Anchoring the model on
// one complete exchange measurably reduces format drift on short reports.
func WorkedExample() (user string, assistant string) {
	user = "Report text:\nConstruction Report - Project Alpha\nEngineer: João Silva\nDate: 15/03/2024\nProgress: 75% complete"
	assistant = `{"extractions":[` +
		`{"field":"responsible_engineer","text":"João Silva"},` +
		`{"field":"date","text":"15/03/2024"},` +
		`{"field":"construction_progress_percentage","text":"75"}]}`
	return user, assistant
}
