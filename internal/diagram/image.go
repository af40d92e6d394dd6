package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportMassChart saves a bar chart of material masses to an image file.
// The format follows the file extension (png, svg, pdf); anything else
// falls back to png.
func ExportMassChart(data MixBars, filename string) error {
	p := plot.New()
	title := data.Title
	if title == "" {
		title = "Mix Proportions"
	}
	p.Title.Text = title
	p.Y.Label.Text = "Mass (kg/m³)"

	values := make(plotter.Values, len(data.Masses))
	copy(values, data.Masses)

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Points(0.5)
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(bars)
	p.NominalX(data.Materials...)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
