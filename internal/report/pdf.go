package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/aman-choudhary9785/iscode/internal/mix"
)

// The core PDF fonts cover cp1252 only; subscript digits in the oxide
// names degrade to plain digits.
var pdfSubscripts = strings.NewReplacer("₂", "2")

// PDF writes a result as an A4 report. The layout mirrors the text
// report: quantities table, totals, properties, mix ratio, warnings.
func PDF(res *mix.Result, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Geopolymer Concrete Mix Design")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Based on IS 17452:2020")
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Target Strength: %.0f MPa", res.TargetStrengthMPa))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Material Quantities (kg/m³)"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 6, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Category", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, tr("Quantity (kg/m³)"), "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	row := func(material, category string, mass float64) {
		pdf.CellFormat(80, 6, material, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, category, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f", mass), "", 1, "R", false, 0, "")
	}
	for _, q := range res.Binders {
		row(q.Material, "Binder", q.MassKg)
	}
	for _, q := range res.Activators {
		row(q.Material, "Activator", q.MassKg)
	}
	if res.ExtraWaterKg > 0 {
		row("Additional Water", "Water", res.ExtraWaterKg)
	}
	row("Fine Aggregate", "Aggregate", res.FineAggregateKg)
	row("Coarse Aggregate", "Aggregate", res.CoarseAggregateKg)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Totals")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total Binder: %.1f kg/m³", res.TotalBinderKg)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total Activator: %.1f kg/m³", res.TotalActivatorKg)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total Water Content: %.1f kg/m³", res.TotalWaterKg)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Concrete Properties")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Estimated Concrete Density: %.1f kg/m³", res.ConcreteDensityKg)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Water/Geopolymer Solids Ratio: %.3f", res.WaterSolidsRatio))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Mix Ratio (by mass)")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Binder : Activator : Fine Agg : Coarse Agg = %.0f : %.2f : %.2f : %.2f",
		res.MixRatio.Binder, res.MixRatio.Activator, res.MixRatio.FineAggregate, res.MixRatio.CoarseAggregate))
	pdf.Ln(10)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 11)
		for _, warning := range res.Warnings {
			pdf.MultiCell(0, 6, tr(pdfSubscripts.Replace("Warning: "+warning)), "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Disclaimer: "+disclaimer, "", "L", false)

	return pdf.Output(w)
}
