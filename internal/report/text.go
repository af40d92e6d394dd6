// Package report renders mix design results for people: a plain text
// report for the terminal and a PDF for handing over.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aman-choudhary9785/iscode/internal/mix"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"

	disclaimer = "This calculator is provided for educational and research purposes only."
)

// Text renders a result as a structured text report. It is a pure
// formatting function; the result is not modified.
func Text(res *mix.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(heavyRule + "\n")
	b.WriteString("     GEOPOLYMER CONCRETE MIX DESIGN - IS 17452:2020\n")
	b.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&b, "  Target Strength:\t%.0f MPa\n\n", res.TargetStrengthMPa)

	b.WriteString("MATERIAL QUANTITIES (kg/m³):\n")
	b.WriteString(lightRule + "\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tCategory\tQuantity\n")
	for _, q := range res.Binders {
		fmt.Fprintf(w, "  %s\tBinder\t%.1f\n", q.Material, q.MassKg)
	}
	for _, q := range res.Activators {
		fmt.Fprintf(w, "  %s\tActivator\t%.1f\n", q.Material, q.MassKg)
	}
	if res.ExtraWaterKg > 0 {
		fmt.Fprintf(w, "  Additional Water\tWater\t%.1f\n", res.ExtraWaterKg)
	}
	fmt.Fprintf(w, "  Fine Aggregate\tAggregate\t%.1f\n", res.FineAggregateKg)
	fmt.Fprintf(w, "  Coarse Aggregate\tAggregate\t%.1f\n", res.CoarseAggregateKg)
	w.Flush()
	b.WriteString("\n")

	b.WriteString("TOTALS:\n")
	b.WriteString(lightRule + "\n")
	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total Binder:\t%.1f kg/m³\n", res.TotalBinderKg)
	fmt.Fprintf(w, "  Total Activator:\t%.1f kg/m³\n", res.TotalActivatorKg)
	fmt.Fprintf(w, "  Total Water Content:\t%.1f kg/m³\n", res.TotalWaterKg)
	w.Flush()
	b.WriteString("\n")

	b.WriteString("CONCRETE PROPERTIES:\n")
	b.WriteString(lightRule + "\n")
	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Estimated Concrete Density:\t%.1f kg/m³\n", res.ConcreteDensityKg)
	fmt.Fprintf(w, "  Water/Geopolymer Solids Ratio:\t%.3f\n", res.WaterSolidsRatio)
	w.Flush()
	b.WriteString("\n")

	b.WriteString("MIX RATIO (BY MASS):\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "  Binder : Activator : Fine Agg : Coarse Agg\n")
	fmt.Fprintf(&b, "  %.0f : %.2f : %.2f : %.2f\n\n",
		res.MixRatio.Binder, res.MixRatio.Activator, res.MixRatio.FineAggregate, res.MixRatio.CoarseAggregate)

	if len(res.Warnings) > 0 {
		b.WriteString("WARNINGS:\n")
		b.WriteString(lightRule + "\n")
		for _, warning := range res.Warnings {
			fmt.Fprintf(&b, "  Warning: %s\n", warning)
		}
		b.WriteString("\n")
	}

	b.WriteString(lightRule + "\n")
	b.WriteString("  Geopolymer concrete mix design based on IS 17452:2020\n")
	fmt.Fprintf(&b, "  Disclaimer: %s\n", disclaimer)

	return b.String()
}
