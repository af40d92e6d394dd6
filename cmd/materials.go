package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aman-choudhary9785/iscode/internal/is17452"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List known precursor materials and typical input ranges",
	Long: `List the precursor materials the calculator knows about, with their
typical specific gravities and default blend shares, followed by the
typical ranges for each design input.

Precursor Materials:
  Fly Ash      - Low-calcium aluminosilicate, the most common precursor
  GGBFS        - Ground granulated blast furnace slag
  Metakaolin   - Calcined kaolinite clay
  Silica Fume  - Condensed silica, usually a minor blend component

Examples:
  iscode materials`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          PRECURSOR MATERIALS - IS 17452:2020")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("BINDER PRECURSORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tSG\tSG Range\tDefault Share\n")
	fmt.Fprintf(w, "  ────────\t──\t────────\t─────────────\n")
	for _, m := range is17452.PrecursorMaterials {
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f - %.1f\t%.0f%%\n",
			m.Name, m.SpecificGravity, m.MinSG, m.MaxSG, m.DefaultPercent)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DEFAULT ACTIVATOR PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sodium Silicate SiO₂:\t%.0f%%\n", is17452.DefaultSilicateSiO2)
	fmt.Fprintf(w, "  Sodium Silicate Na₂O:\t%.0f%%\n", is17452.DefaultSilicateNa2O)
	fmt.Fprintf(w, "  Sodium Silicate H₂O:\t%.0f%%\n", is17452.DefaultSilicateH2O)
	fmt.Fprintf(w, "  Sodium Silicate SG:\t%.1f\n", is17452.DefaultSilicateSG)
	fmt.Fprintf(w, "  NaOH Molarity:\t%.0f M\n", is17452.DefaultNaOHMolarity)
	fmt.Fprintf(w, "  Silicate/Hydroxide Ratio:\t%.1f\n", is17452.DefaultSilicateHydroxideRatio)
	fmt.Fprintf(w, "  Activator/Binder Ratio:\t%.2f\n", is17452.DefaultActivatorBinderRatio)
	w.Flush()
	fmt.Println()

	fmt.Println("TYPICAL INPUT RANGES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Input\tUnit\tMin\tMax\n")
	fmt.Fprintf(w, "  ─────\t────\t───\t───\n")
	for _, r := range is17452.TypicalInputRanges {
		unit := r.Unit
		if unit == "" {
			unit = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%g\t%g\n", r.Field, unit, r.Min, r.Max)
	}
	w.Flush()
	fmt.Println()
}
