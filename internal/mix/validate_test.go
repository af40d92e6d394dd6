package mix

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePrecursorSum(t *testing.T) {
	cases := []struct {
		name        string
		percentages []float64
		wantErr     bool
	}{
		{"exact", []float64{70, 30}, false},
		{"single", []float64{100}, false},
		{"within tolerance high", []float64{50, 50.05}, false},
		{"within tolerance low", []float64{50, 49.95}, false},
		{"above tolerance", []float64{50, 50.2}, true},
		{"below tolerance", []float64{50, 49.85}, true},
		{"far off", []float64{60, 30}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var precursors []Precursor
			for _, pct := range c.percentages {
				precursors = append(precursors, Precursor{Name: "Fly Ash", Percentage: pct, SpecificGravity: 2.2})
			}

			err := Validate(precursors, Activators{})
			if c.wantErr && err == nil {
				t.Fatalf("Validate accepted percentages %v", c.percentages)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("Validate rejected percentages %v: %v", c.percentages, err)
			}
		})
	}
}

func TestValidatePrecursorSumErrorDetail(t *testing.T) {
	precursors := []Precursor{
		{Name: "Fly Ash", Percentage: 60, SpecificGravity: 2.2},
		{Name: "GGBFS", Percentage: 30, SpecificGravity: 2.9},
	}

	err := Validate(precursors, Activators{})
	if err == nil {
		t.Fatal("expected a validation error for a 90% sum")
	}

	var sumErr *PrecursorSumError
	if !errors.As(err, &sumErr) {
		t.Fatalf("error type = %T, want *PrecursorSumError", err)
	}
	if sumErr.Sum != 90 {
		t.Errorf("Sum = %g, want 90", sumErr.Sum)
	}
	if !strings.Contains(err.Error(), "90") {
		t.Errorf("error message %q does not carry the computed sum", err.Error())
	}
}

func TestValidateSilicateComposition(t *testing.T) {
	precursors := []Precursor{{Name: "Fly Ash", Percentage: 100, SpecificGravity: 2.2}}

	ok := Activators{Silicate: &SodiumSilicate{SiO2: 30, Na2O: 15, H2O: 55, SpecificGravity: 1.5}}
	if err := Validate(precursors, ok); err != nil {
		t.Fatalf("Validate rejected a balanced silicate composition: %v", err)
	}

	bad := Activators{Silicate: &SodiumSilicate{SiO2: 30, Na2O: 15, H2O: 54, SpecificGravity: 1.5}}
	err := Validate(precursors, bad)
	if err == nil {
		t.Fatal("expected a validation error for a 99% composition sum")
	}

	var compErr *SilicateCompositionError
	if !errors.As(err, &compErr) {
		t.Fatalf("error type = %T, want *SilicateCompositionError", err)
	}
	if compErr.Sum != 99 {
		t.Errorf("Sum = %g, want 99", compErr.Sum)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("error message %q does not carry the computed sum", err.Error())
	}
}

func TestValidateHydroxideOnlyNeedsNoComposition(t *testing.T) {
	precursors := []Precursor{{Name: "GGBFS", Percentage: 100, SpecificGravity: 2.9}}
	acts := Activators{Hydroxide: &SodiumHydroxide{Molarity: 10}}

	if err := Validate(precursors, acts); err != nil {
		t.Fatalf("Validate rejected a hydroxide-only design: %v", err)
	}
}
