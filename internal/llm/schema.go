package llm

// FieldType enumerates the target types a FieldSpec can coerce to.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeFloat   FieldType = "float"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
)

// FieldSpec declares one field the model should pull out of the report text.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
	Default     any
}

// ReportFieldSpecs is the canonical field set for construction progress
// reports. The entity stage materializes exactly these into its result.
func ReportFieldSpecs() []FieldSpec {
	return []FieldSpec{
		{
			Name:        "responsible_engineer",
			Type:        TypeString,
			Description: "Full name of the engineer responsible for the report.",
			Required:    true,
			Default:     "",
		},
		{
			Name:        "date",
			Type:        TypeString,
			Description: "Date of the report exactly as written in the document.",
			Required:    true,
			Default:     "",
		},
		{
			Name:        "construction_progress_percentage",
			Type:        TypeFloat,
			Description: "Overall physical progress of the construction as a percentage.",
			Required:    true,
			Default:     0.0,
		},
	}
}

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the model as an output constraint and also use it
// locally to validate the response before decoding.
func BuildExtractionJSONSchema(fields []FieldSpec) map[string]any {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"field": map[string]any{"type": "string", "enum": names},
			"text":  map[string]any{"type": "string"},
		},
		"required": []string{"field", "text"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"extractions": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required": []string{"extractions"},
	}
}
