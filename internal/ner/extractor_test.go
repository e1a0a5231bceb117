package ner

import (
	"context"
	"errors"
	"testing"

	"github.com/byb-ai/progress-verifier/internal/entity"
	"github.com/byb-ai/progress-verifier/internal/llm"
)

type fakeBackend struct {
	spans []llm.FieldSpan
	err   error
}

func (f *fakeBackend) Extract(context.Context, llm.ExtractRequest) ([]llm.FieldSpan, []byte, error) {
	return f.spans, nil, f.err
}

func TestExtractReport(t *testing.T) {
	backend := &fakeBackend{spans: []llm.FieldSpan{
		{Field: "responsible_engineer", Text: "João Silva"},
		{Field: "date", Text: "15/03/2024"},
		{Field: "construction_progress_percentage", Text: "75"},
	}}
	e := NewExtractor(backend, nil)

	res := e.Extract(context.Background(), "Engineer: João Silva\nDate: 15/03/2024\nProgress: 75% complete")
	if res.ResponsibleEngineer != "João Silva" {
		t.Errorf("engineer: got %q", res.ResponsibleEngineer)
	}
	if res.Date != "15/03/2024" {
		t.Errorf("date: got %q", res.Date)
	}
	if res.ConstructionProgressPercentage != 75.0 {
		t.Errorf("progress: got %g", res.ConstructionProgressPercentage)
	}
	for field, origin := range res.Origins {
		if origin != entity.OriginExtracted {
			t.Errorf("field %s: origin %s", field, origin)
		}
	}
}

func TestExtractBackendErrorDegradesToDefaults(t *testing.T) {
	backend := &fakeBackend{err: errors.New("model unreachable")}
	e := NewExtractor(backend, nil)

	res := e.Extract(context.Background(), "any text")
	if res.ResponsibleEngineer != "" || res.Date != "" || res.ConstructionProgressPercentage != 0.0 {
		t.Errorf("expected all type defaults, got %+v", res)
	}
	if len(res.Origins) != 3 {
		t.Fatalf("expected 3 origins, got %d", len(res.Origins))
	}
	for field, origin := range res.Origins {
		if origin != entity.OriginDefaulted {
			t.Errorf("field %s: origin %s", field, origin)
		}
	}
}

type panickingBackend struct{}

func (panickingBackend) Extract(context.Context, llm.ExtractRequest) ([]llm.FieldSpan, []byte, error) {
	panic("backend blew up")
}

func TestExtractBackendPanicDegradesToDefaults(t *testing.T) {
	e := NewExtractor(panickingBackend{}, nil)

	res := e.Extract(context.Background(), "any text")
	if res.ResponsibleEngineer != "" || res.Date != "" || res.ConstructionProgressPercentage != 0.0 {
		t.Errorf("expected all type defaults, got %+v", res)
	}
	for field, origin := range res.Origins {
		if origin != entity.OriginDefaulted {
			t.Errorf("field %s: origin %s", field, origin)
		}
	}
}

func TestExtractDecimalComma(t *testing.T) {
	backend := &fakeBackend{spans: []llm.FieldSpan{
		{Field: "construction_progress_percentage", Text: "75,5"},
	}}
	e := NewExtractor(backend, nil)

	res := e.Extract(context.Background(), "Progresso: 75,5%")
	if res.ConstructionProgressPercentage != 75.5 {
		t.Errorf("got %g, want 75.5", res.ConstructionProgressPercentage)
	}
}

func TestExtractCoercionFailure(t *testing.T) {
	backend := &fakeBackend{spans: []llm.FieldSpan{
		{Field: "responsible_engineer", Text: "Maria Souza"},
		{Field: "date", Text: "01/02/2024"},
		{Field: "construction_progress_percentage", Text: "around half"},
	}}
	e := NewExtractor(backend, nil)

	res := e.Extract(context.Background(), "...")
	if res.ConstructionProgressPercentage != 0.0 {
		t.Errorf("unparseable span must fall back to 0.0, got %g", res.ConstructionProgressPercentage)
	}
	if res.Origins["construction_progress_percentage"] != entity.OriginCoercionFailed {
		t.Errorf("origin: got %s", res.Origins["construction_progress_percentage"])
	}
	if res.ResponsibleEngineer != "Maria Souza" {
		t.Errorf("other fields must survive: got %q", res.ResponsibleEngineer)
	}
}

func TestExtractPartialResponse(t *testing.T) {
	backend := &fakeBackend{spans: []llm.FieldSpan{
		{Field: "responsible_engineer", Text: "Ana Lima"},
		{Field: "unknown_field", Text: "ignored"},
	}}
	e := NewExtractor(backend, nil)

	res := e.Extract(context.Background(), "...")
	if res.ResponsibleEngineer != "Ana Lima" {
		t.Errorf("engineer: got %q", res.ResponsibleEngineer)
	}
	if res.Date != "" {
		t.Errorf("absent field must default, got %q", res.Date)
	}
	if res.Origins["date"] != entity.OriginDefaulted {
		t.Errorf("date origin: got %s", res.Origins["date"])
	}
}

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		typ  llm.FieldType
		raw  string
		want any
		ok   bool
	}{
		{"float plain", llm.TypeFloat, "75", 75.0, true},
		{"float comma", llm.TypeFloat, "75,5", 75.5, true},
		{"float garbage", llm.TypeFloat, "75% done", "75% done", false},
		{"integer", llm.TypeInteger, "12", int64(12), true},
		{"integer garbage", llm.TypeInteger, "doze", "doze", false},
		{"bool sim", llm.TypeBoolean, "Sim", true, true},
		{"bool one", llm.TypeBoolean, "1", true, true},
		{"bool other", llm.TypeBoolean, "não", false, true},
		{"string verbatim", llm.TypeString, "  João Silva ", "  João Silva ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Coerce(tc.typ, tc.raw)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Coerce(%s, %q) = (%v, %v), want (%v, %v)", tc.typ, tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}
