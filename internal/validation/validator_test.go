package validation

import (
	"testing"

	"github.com/byb-ai/progress-verifier/internal/entity"
)

func result(engineer, date string, progress float64) entity.ExtractionResult {
	return entity.ExtractionResult{
		ResponsibleEngineer:            engineer,
		Date:                           date,
		ConstructionProgressPercentage: progress,
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   entity.ExtractionResult
		want bool
	}{
		{"all rules hold", result("João Silva", "15/03/2024", 75.0), true},
		{"lower boundary inclusive", result("A", "d", 30.0), true},
		{"upper boundary inclusive", result("A", "d", 100.0), true},
		{"just below lower bound", result("A", "d", 29.999), false},
		{"just above upper bound", result("A", "d", 100.001), false},
		{"empty engineer", result("", "15/03/2024", 75.0), false},
		{"empty date", result("João Silva", "", 75.0), false},
		{"all defaults", result("", "", 0.0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.in); got != tc.want {
				t.Errorf("Validate(%+v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVerdictCarriesResult(t *testing.T) {
	in := result("João Silva", "15/03/2024", 42.0)
	v := Verdict(in)
	if !v.Valid {
		t.Errorf("expected valid verdict")
	}
	if v.Result.ResponsibleEngineer != in.ResponsibleEngineer || v.Result.ConstructionProgressPercentage != in.ConstructionProgressPercentage {
		t.Errorf("verdict must carry the result it was computed from")
	}
}
