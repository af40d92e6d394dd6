package mix

import (
	"fmt"

	"github.com/aman-choudhary9785/iscode/internal/is17452"
)

// checkRanges compares the activator chemistry against the recommended
// bands and returns one advisory string per violation, in evaluation
// order: modulus, SiO₂, Na₂O, H₂O. Only sodium silicate carries bands;
// an absent silicate produces no warnings.
func checkRanges(acts Activators) []string {
	si := acts.Silicate
	if si == nil {
		return nil
	}

	var warnings []string

	if si.Na2O > 0 {
		modulus := si.Modulus()
		if !is17452.SilicateModulusBand.Contains(modulus) {
			warnings = append(warnings, fmt.Sprintf(
				"activator modulus (SiO₂/Na₂O) %.2f is outside the recommended range %.1f to %.1f",
				modulus, is17452.SilicateModulusBand.Min, is17452.SilicateModulusBand.Max))
		}
	}

	if !is17452.SiO2Band.Contains(si.SiO2) {
		warnings = append(warnings, fmt.Sprintf(
			"SiO₂ content %.1f%% is outside the recommended range %.0f%% to %.0f%%",
			si.SiO2, is17452.SiO2Band.Min, is17452.SiO2Band.Max))
	}

	if !is17452.Na2OBand.Contains(si.Na2O) {
		warnings = append(warnings, fmt.Sprintf(
			"Na₂O content %.1f%% is outside the recommended range %.0f%% to %.0f%%",
			si.Na2O, is17452.Na2OBand.Min, is17452.Na2OBand.Max))
	}

	if !is17452.H2OBand.Contains(si.H2O) {
		warnings = append(warnings, fmt.Sprintf(
			"H₂O content %.1f%% is outside the recommended range %.0f%% to %.0f%%",
			si.H2O, is17452.H2OBand.Min, is17452.H2OBand.Max))
	}

	return warnings
}
