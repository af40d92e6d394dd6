package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aman-choudhary9785/iscode/internal/diagram"
	"github.com/aman-choudhary9785/iscode/internal/is17452"
	"github.com/aman-choudhary9785/iscode/internal/mix"
	"github.com/aman-choudhary9785/iscode/internal/mixfile"
	"github.com/aman-choudhary9785/iscode/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	designStrength   float64
	designPrecursors []string
	designSiO2       float64
	designNa2O       float64
	designH2O        float64
	designSilicateSG float64
	designMolarity   float64
	designRatioSiSh  float64
	designRatioActB  float64
	designExtraWater float64

	// Aggregate inputs
	designFineSG         float64
	designFineFM         float64
	designFineMoisture   float64
	designCoarseSG       float64
	designCoarseSize     float64
	designCoarseMoisture float64

	// Design file input
	designFile string

	// Output options
	designJSON        bool
	designShowDiagram bool
	designChartFile   string
	designPDFFile     string
)

var mixDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Calculate material quantities for one cubic metre of concrete",
	Long: `Calculate the material quantities per cubic metre of geopolymer
concrete for a target 28-day compressive strength.

The design follows IS 17452:2020:
  - Binder content selected from the target strength band
  - Alkaline activator sized from the activator/binder ratio
  - Aggregates proportioned by the absolute volume method
  - Aggregate masses corrected for field moisture

Precursors are given as "Name:percent" or "Name:percent:sg". When the
specific gravity is omitted the material catalog value is used. Without
--precursor flags the default 70% fly ash / 30% GGBFS blend applies.

Examples:
  # Design an M40 mix with the default blend and activators
  iscode mix design --strength 40

  # Custom blend using catalog specific gravities
  iscode mix design -s 50 -p "Fly Ash:60" -p "GGBFS:40"

  # Custom material with an explicit specific gravity
  iscode mix design -s 40 -p "Bottom Ash:100:2.3" --molarity 12

  # From a YAML design file, exporting a PDF report
  iscode mix design --file design.yaml --pdf mix-design.pdf`,
	Run: runMixDesign,
}

func init() {
	mixCmd.AddCommand(mixDesignCmd)

	// Target and binder flags
	mixDesignCmd.Flags().Float64VarP(&designStrength, "strength", "s", 0, "Target compressive strength (MPa) [required unless --file]")
	mixDesignCmd.Flags().StringArrayVarP(&designPrecursors, "precursor", "p", nil, "Precursor as Name:percent[:sg], repeatable")

	// Activator flags
	mixDesignCmd.Flags().Float64Var(&designSiO2, "sio2", is17452.DefaultSilicateSiO2, "Sodium silicate SiO₂ content (%)")
	mixDesignCmd.Flags().Float64Var(&designNa2O, "na2o", is17452.DefaultSilicateNa2O, "Sodium silicate Na₂O content (%)")
	mixDesignCmd.Flags().Float64Var(&designH2O, "h2o", is17452.DefaultSilicateH2O, "Sodium silicate H₂O content (%)")
	mixDesignCmd.Flags().Float64Var(&designSilicateSG, "silicate-sg", is17452.DefaultSilicateSG, "Sodium silicate specific gravity")
	mixDesignCmd.Flags().Float64VarP(&designMolarity, "molarity", "M", is17452.DefaultNaOHMolarity, "Sodium hydroxide molarity (0 omits NaOH)")
	mixDesignCmd.Flags().Float64Var(&designRatioSiSh, "silicate-hydroxide-ratio", is17452.DefaultSilicateHydroxideRatio, "Sodium silicate to sodium hydroxide mass ratio")
	mixDesignCmd.Flags().Float64Var(&designRatioActB, "activator-binder-ratio", is17452.DefaultActivatorBinderRatio, "Activator to binder mass ratio")
	mixDesignCmd.Flags().Float64Var(&designExtraWater, "extra-water", 0, "Additional water for workability (kg/m³)")

	// Aggregate flags
	mixDesignCmd.Flags().Float64Var(&designFineSG, "fine-sg", 2.6, "Fine aggregate specific gravity")
	mixDesignCmd.Flags().Float64Var(&designFineFM, "fine-fm", 2.8, "Fine aggregate fineness modulus")
	mixDesignCmd.Flags().Float64Var(&designFineMoisture, "fine-moisture", 2.0, "Fine aggregate moisture content (%)")
	mixDesignCmd.Flags().Float64Var(&designCoarseSG, "coarse-sg", 2.7, "Coarse aggregate specific gravity")
	mixDesignCmd.Flags().Float64Var(&designCoarseSize, "coarse-size", 20, "Maximum coarse aggregate size (mm)")
	mixDesignCmd.Flags().Float64Var(&designCoarseMoisture, "coarse-moisture", 1.0, "Coarse aggregate moisture content (%)")

	// Design file input, overrides the inline flags
	mixDesignCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to a YAML design file")

	// Output options
	mixDesignCmd.Flags().BoolVar(&designJSON, "json", false, "Print the result as JSON")
	mixDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII mass proportion bars")
	mixDesignCmd.Flags().StringVarP(&designChartFile, "output", "o", "", "Export mass chart to file (png, svg, pdf)")
	mixDesignCmd.Flags().StringVar(&designPDFFile, "pdf", "", "Export the full report as PDF")
}

func runMixDesign(cmd *cobra.Command, args []string) {
	input, err := designInputFromFlags()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := mix.Design(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if designJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(report.Text(result))
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("MIX PROPORTIONS BY MASS", []string{
		fmt.Sprintf("Binder     : %.2f", result.MixRatio.Binder),
		fmt.Sprintf("Activator  : %.2f", result.MixRatio.Activator),
		fmt.Sprintf("Fine Agg   : %.2f", result.MixRatio.FineAggregate),
		fmt.Sprintf("Coarse Agg : %.2f", result.MixRatio.CoarseAggregate),
	}))

	// Show diagram if requested
	if designShowDiagram {
		fmt.Println(diagram.DrawMassBars(massBars(result)))
	}

	// Export chart if requested
	if designChartFile != "" {
		if err := diagram.ExportMassChart(massBars(result), designChartFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", designChartFile)
		}
	}

	// Export PDF report if requested
	if designPDFFile != "" {
		if err := writePDFReport(result, designPDFFile); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", designPDFFile)
		}
	}
}

func designInputFromFlags() (mix.Input, error) {
	if designFile != "" {
		return mixfile.Load(designFile)
	}

	if designStrength <= 0 {
		return mix.Input{}, fmt.Errorf("provide --strength or --file, see 'iscode mix design --help'")
	}

	precursors := defaultPrecursors()
	if len(designPrecursors) > 0 {
		precursors = precursors[:0]
		for _, spec := range designPrecursors {
			p, err := parsePrecursorSpec(spec)
			if err != nil {
				return mix.Input{}, err
			}
			precursors = append(precursors, p)
		}
	}

	input := mix.Input{
		TargetStrengthMPa: designStrength,
		Precursors:        precursors,
		Activators: mix.Activators{
			Silicate: &mix.SodiumSilicate{
				SiO2:            designSiO2,
				Na2O:            designNa2O,
				H2O:             designH2O,
				SpecificGravity: designSilicateSG,
			},
		},
		FineAggregate: mix.FineAggregate{
			SpecificGravity: designFineSG,
			FinenessModulus: designFineFM,
			MoisturePercent: designFineMoisture,
		},
		CoarseAggregate: mix.CoarseAggregate{
			SpecificGravity: designCoarseSG,
			MaxSizeMM:       designCoarseSize,
			MoisturePercent: designCoarseMoisture,
		},
		SilicateHydroxideRatio: designRatioSiSh,
		ActivatorBinderRatio:   designRatioActB,
		ExtraWaterKg:           designExtraWater,
	}

	if designMolarity > 0 {
		input.Activators.Hydroxide = &mix.SodiumHydroxide{Molarity: designMolarity}
	}

	return input, nil
}

// parsePrecursorSpec parses a "Name:percent" or "Name:percent:sg" flag
// value. The specific gravity falls back to the material catalog when
// omitted.
func parsePrecursorSpec(spec string) (mix.Precursor, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return mix.Precursor{}, fmt.Errorf("invalid precursor %q, expected Name:percent[:sg]", spec)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return mix.Precursor{}, fmt.Errorf("invalid precursor %q, material name is empty", spec)
	}

	percent, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mix.Precursor{}, fmt.Errorf("invalid precursor %q, bad percentage", spec)
	}

	p := mix.Precursor{Name: name, Percentage: percent}
	if len(parts) == 3 {
		sg, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return mix.Precursor{}, fmt.Errorf("invalid precursor %q, bad specific gravity", spec)
		}
		p.SpecificGravity = sg
		return p, nil
	}

	mat, ok := is17452.PrecursorByName(name)
	if !ok {
		return mix.Precursor{}, fmt.Errorf("unknown material %q, provide a specific gravity as Name:percent:sg", name)
	}
	p.SpecificGravity = mat.SpecificGravity
	return p, nil
}

// defaultPrecursors returns the catalog's default blend.
func defaultPrecursors() []mix.Precursor {
	var ps []mix.Precursor
	for _, m := range is17452.PrecursorMaterials {
		if m.DefaultPercent > 0 {
			ps = append(ps, mix.Precursor{
				Name:            m.Name,
				Percentage:      m.DefaultPercent,
				SpecificGravity: m.SpecificGravity,
			})
		}
	}
	return ps
}

// massBars collects the per-material masses for the bar diagram and chart.
func massBars(res *mix.Result) diagram.MixBars {
	var bars diagram.MixBars
	for _, q := range res.Binders {
		bars.Materials = append(bars.Materials, q.Material)
		bars.Masses = append(bars.Masses, q.MassKg)
	}
	for _, q := range res.Activators {
		bars.Materials = append(bars.Materials, q.Material)
		bars.Masses = append(bars.Masses, q.MassKg)
	}
	if res.ExtraWaterKg > 0 {
		bars.Materials = append(bars.Materials, "Additional Water")
		bars.Masses = append(bars.Masses, res.ExtraWaterKg)
	}
	bars.Materials = append(bars.Materials, "Fine Aggregate", "Coarse Aggregate")
	bars.Masses = append(bars.Masses, res.FineAggregateKg, res.CoarseAggregateKg)
	return bars
}

func writePDFReport(res *mix.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.PDF(res, f)
}
