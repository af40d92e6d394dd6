package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aman-choudhary9785/iscode/internal/batch"
	"github.com/aman-choudhary9785/iscode/internal/mixfile"
	"github.com/spf13/cobra"
)

var (
	batchFile     string
	batchXLSXFile string
	batchWorkers  int
	batchOutput   string
)

var mixBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many designs from a YAML or XLSX file",
	Long: `Evaluate a whole set of mix designs in one run.

Designs come from a YAML file with a top level "designs" list, or from
an XLSX workbook with one design per row. Designs are evaluated
concurrently and a failing design does not stop the rest of the batch.

Results can be exported to an XLSX workbook with one result row per
design.

Examples:
  iscode mix batch --file designs.yaml
  iscode mix batch --xlsx designs.xlsx --output results.xlsx
  iscode mix batch -f designs.yaml -w 4`,
	Run: runMixBatch,
}

func init() {
	mixCmd.AddCommand(mixBatchCmd)

	mixBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to a YAML batch file")
	mixBatchCmd.Flags().StringVarP(&batchXLSXFile, "xlsx", "x", "", "Path to an XLSX batch workbook")
	mixBatchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", batch.DefaultWorkers, "Number of concurrent design evaluations")
	mixBatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Export results to an XLSX workbook")
}

func runMixBatch(cmd *cobra.Command, args []string) {
	items, err := loadBatchItems()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	outcomes, err := batch.Evaluate(cmd.Context(), items, batchWorkers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          GEOPOLYMER MIX DESIGN BATCH - IS 17452:2020")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS (kg/m³):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tName\tBinder\tActivator\tFine Agg\tCoarse Agg\tDensity\tW/S\tStatus\n")
	fmt.Fprintf(w, "  ─\t────\t──────\t─────────\t────────\t──────────\t───────\t───\t──────\n")

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "  %d\t%s\t-\t-\t-\t-\t-\t-\tERROR\n", o.Index+1, o.Name)
			continue
		}
		status := "ok"
		if n := len(o.Result.Warnings); n == 1 {
			status = "1 warning"
		} else if n > 1 {
			status = fmt.Sprintf("%d warnings", n)
		}
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.3f\t%s\n",
			o.Index+1, o.Name,
			o.Result.TotalBinderKg, o.Result.TotalActivatorKg,
			o.Result.FineAggregateKg, o.Result.CoarseAggregateKg,
			o.Result.ConcreteDensityKg, o.Result.WaterSolidsRatio, status)
	}
	w.Flush()
	fmt.Println()

	// Error details
	if failed > 0 {
		fmt.Println("ERRORS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, o := range outcomes {
			if o.Err != nil {
				fmt.Printf("  %s: %v\n", o.Name, o.Err)
			}
		}
		fmt.Println()
	}

	fmt.Printf("  Designed: %d  Failed: %d\n", len(outcomes)-failed, failed)
	fmt.Println()

	// Export results if requested
	if batchOutput != "" {
		wb, err := mixfile.ResultsWorkbook(outcomes)
		if err != nil {
			fmt.Printf("Error building results workbook: %v\n", err)
			return
		}
		if err := wb.SaveAs(batchOutput); err != nil {
			fmt.Printf("Error exporting results: %v\n", err)
			return
		}
		fmt.Printf("Results exported to: %s\n", batchOutput)
	}
}

func loadBatchItems() ([]batch.Item, error) {
	switch {
	case batchFile != "" && batchXLSXFile != "":
		return nil, fmt.Errorf("provide either --file or --xlsx, not both")
	case batchFile != "":
		return mixfile.LoadBatch(batchFile)
	case batchXLSXFile != "":
		f, err := os.Open(batchXLSXFile)
		if err != nil {
			return nil, fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()
		return mixfile.ReadBatchXLSX(f)
	default:
		return nil, fmt.Errorf("provide --file or --xlsx, see 'iscode mix batch --help'")
	}
}
