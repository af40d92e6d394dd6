package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aman-choudhary9785/iscode/internal/mix"
	"github.com/aman-choudhary9785/iscode/internal/mixfile"
	"github.com/spf13/cobra"
)

var checkFile string

var mixCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a design file and report composition warnings",
	Long: `Check a YAML design file without producing the full mix design.

The check verifies that:
  - Precursor percentages sum to 100%
  - Sodium silicate composition (SiO₂ + Na₂O + H₂O) sums to 100%

and reports advisory warnings when the activator composition falls
outside the recommended ranges.

Examples:
  iscode mix check --file design.yaml
  iscode mix check -f design.yaml`,
	Run: runMixCheck,
}

func init() {
	mixCmd.AddCommand(mixCheckCmd)

	mixCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to a YAML design file [required]")
	mixCheckCmd.MarkFlagRequired("file")
}

func runMixCheck(cmd *cobra.Command, args []string) {
	input, err := mixfile.Load(checkFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          GEOPOLYMER MIX DESIGN CHECK - IS 17452:2020")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("DESIGN INPUTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Target Strength:\t%.0f MPa\n", input.TargetStrengthMPa)
	for _, p := range input.Precursors {
		fmt.Fprintf(w, "  %s:\t%.0f%% (SG %.2f)\n", p.Name, p.Percentage, p.SpecificGravity)
	}
	if s := input.Activators.Silicate; s != nil {
		fmt.Fprintf(w, "  Sodium Silicate:\tSiO₂ %.0f%%, Na₂O %.0f%%, H₂O %.0f%%\n", s.SiO2, s.Na2O, s.H2O)
	}
	if h := input.Activators.Hydroxide; h != nil {
		fmt.Fprintf(w, "  Sodium Hydroxide:\t%.0f M\n", h.Molarity)
	}
	fmt.Fprintf(w, "  Silicate/Hydroxide Ratio:\t%.2f\n", input.SilicateHydroxideRatio)
	fmt.Fprintf(w, "  Activator/Binder Ratio:\t%.2f\n", input.ActivatorBinderRatio)
	w.Flush()
	fmt.Println()

	result, err := mix.Design(input)

	// Validation outcome
	fmt.Println("VALIDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if err != nil {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT VALID                       ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %v\n", err)
		fmt.Println()
		return
	}

	fmt.Println("  ╔═════════════════════════════════════════╗")
	fmt.Println("  ║  DESIGN VALID ✓                         ║")
	fmt.Println("  ╚═════════════════════════════════════════╝")
	fmt.Println()

	// Advisory warnings
	if len(result.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
		fmt.Println()
	} else {
		fmt.Println("  Activator composition is within the recommended ranges.")
		fmt.Println()
	}
}
