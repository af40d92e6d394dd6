package mix

import (
	"fmt"
	"math"
)

// percentTolerance is the allowed deviation for percentage sums.
const percentTolerance = 0.1

// PrecursorSumError reports precursor percentages that do not sum to 100%.
type PrecursorSumError struct {
	Sum float64
}

func (e *PrecursorSumError) Error() string {
	return fmt.Sprintf("precursor percentages must sum to 100%%, current sum is %g%%", e.Sum)
}

// SilicateCompositionError reports a sodium silicate composition whose
// oxide and water percentages do not sum to 100%.
type SilicateCompositionError struct {
	Sum float64
}

func (e *SilicateCompositionError) Error() string {
	return fmt.Sprintf("sodium silicate composition (SiO₂ + Na₂O + H₂O) must sum to 100%%, current sum is %g%%", e.Sum)
}

// Validate checks that the precursor percentages sum to 100% and that
// a sodium silicate composition, when present, does the same. It runs
// before any quantity is computed.
func Validate(precursors []Precursor, activators Activators) error {
	var sum float64
	for _, p := range precursors {
		sum += p.Percentage
	}
	if math.Abs(sum-100) > percentTolerance {
		return &PrecursorSumError{Sum: sum}
	}

	if si := activators.Silicate; si != nil {
		total := si.SiO2 + si.Na2O + si.H2O
		if math.Abs(total-100) > percentTolerance {
			return &SilicateCompositionError{Sum: total}
		}
	}

	return nil
}
