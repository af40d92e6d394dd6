package mixfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aman-choudhary9785/iscode/internal/batch"
	"github.com/aman-choudhary9785/iscode/internal/is17452"
	"github.com/aman-choudhary9785/iscode/internal/mix"
)

// Batch sheet layout, one design per row below a header row. Precursor
// specific gravities come from the material catalog, so the sheet only
// carries percentages.
//
//	A  Name
//	B  Target Strength (MPa)
//	C  Fly Ash (%)          D  GGBFS (%)
//	E  Metakaolin (%)       F  Silica Fume (%)
//	G  Silicate SiO2 (%)    H  Silicate Na2O (%)
//	I  Silicate H2O (%)     J  Silicate SG
//	K  NaOH Molarity
//	L  Silicate/Hydroxide Ratio
//	M  Activator/Binder Ratio
//	N  Extra Water (kg/m³)
//	O  Fine SG   P  Fineness Modulus   Q  Fine Moisture (%)
//	R  Coarse SG S  Max Size (mm)      T  Coarse Moisture (%)
//
// Blank silicate columns mean no sodium silicate; a blank or zero
// molarity means no sodium hydroxide; blank ratios take the standard
// defaults.

// ReadBatchXLSX parses a batch workbook into named designs. The first
// sheet is read; a malformed cell fails the whole read with its row
// number rather than skipping the design silently.
func ReadBatchXLSX(r io.Reader) ([]batch.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no design rows", sheet)
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		item, err := parseDesignRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if item.Name == "" {
			item.Name = fmt.Sprintf("design %d", i)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseDesignRow(row []string) (batch.Item, error) {
	strength, err := requireFloat(row, 1, "target strength")
	if err != nil {
		return batch.Item{}, err
	}

	in := mix.Input{TargetStrengthMPa: strength}

	catalog := []struct {
		col  int
		name string
	}{
		{2, "Fly Ash"},
		{3, "GGBFS"},
		{4, "Metakaolin"},
		{5, "Silica Fume"},
	}
	for _, c := range catalog {
		pct, err := optionalFloat(row, c.col, 0)
		if err != nil {
			return batch.Item{}, fmt.Errorf("%s percentage: %w", c.name, err)
		}
		if pct <= 0 {
			continue
		}
		material, _ := is17452.PrecursorByName(c.name)
		in.Precursors = append(in.Precursors, mix.Precursor{
			Name:            c.name,
			Percentage:      pct,
			SpecificGravity: material.SpecificGravity,
		})
	}

	if cell(row, 6) != "" || cell(row, 7) != "" || cell(row, 8) != "" {
		sio2, err := requireFloat(row, 6, "silicate SiO2")
		if err != nil {
			return batch.Item{}, err
		}
		na2o, err := requireFloat(row, 7, "silicate Na2O")
		if err != nil {
			return batch.Item{}, err
		}
		h2o, err := requireFloat(row, 8, "silicate H2O")
		if err != nil {
			return batch.Item{}, err
		}
		sg, err := optionalFloat(row, 9, is17452.DefaultSilicateSG)
		if err != nil {
			return batch.Item{}, fmt.Errorf("silicate SG: %w", err)
		}
		in.Activators.Silicate = &mix.SodiumSilicate{SiO2: sio2, Na2O: na2o, H2O: h2o, SpecificGravity: sg}
	}

	molarity, err := optionalFloat(row, 10, 0)
	if err != nil {
		return batch.Item{}, fmt.Errorf("molarity: %w", err)
	}
	if molarity > 0 {
		in.Activators.Hydroxide = &mix.SodiumHydroxide{Molarity: molarity}
	}

	if in.SilicateHydroxideRatio, err = optionalFloat(row, 11, is17452.DefaultSilicateHydroxideRatio); err != nil {
		return batch.Item{}, fmt.Errorf("silicate/hydroxide ratio: %w", err)
	}
	if in.ActivatorBinderRatio, err = optionalFloat(row, 12, is17452.DefaultActivatorBinderRatio); err != nil {
		return batch.Item{}, fmt.Errorf("activator/binder ratio: %w", err)
	}
	if in.ExtraWaterKg, err = optionalFloat(row, 13, 0); err != nil {
		return batch.Item{}, fmt.Errorf("extra water: %w", err)
	}

	if in.FineAggregate.SpecificGravity, err = requireFloat(row, 14, "fine aggregate SG"); err != nil {
		return batch.Item{}, err
	}
	if in.FineAggregate.FinenessModulus, err = requireFloat(row, 15, "fineness modulus"); err != nil {
		return batch.Item{}, err
	}
	if in.FineAggregate.MoisturePercent, err = optionalFloat(row, 16, 0); err != nil {
		return batch.Item{}, fmt.Errorf("fine moisture: %w", err)
	}
	if in.CoarseAggregate.SpecificGravity, err = requireFloat(row, 17, "coarse aggregate SG"); err != nil {
		return batch.Item{}, err
	}
	if in.CoarseAggregate.MaxSizeMM, err = requireFloat(row, 18, "max aggregate size"); err != nil {
		return batch.Item{}, err
	}
	if in.CoarseAggregate.MoisturePercent, err = optionalFloat(row, 19, 0); err != nil {
		return batch.Item{}, fmt.Errorf("coarse moisture: %w", err)
	}

	return batch.Item{Name: cell(row, 0), Input: in}, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func requireFloat(row []string, i int, field string) (float64, error) {
	s := cell(row, i)
	if s == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := toFloat(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func optionalFloat(row []string, i int, fallback float64) (float64, error) {
	s := cell(row, i)
	if s == "" {
		return fallback, nil
	}
	return toFloat(s)
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

var resultHeader = []interface{}{
	"Name", "Status", "Detail",
	"Total Binder (kg/m³)", "Total Activator (kg/m³)", "Total Water (kg/m³)",
	"Fine Aggregate (kg/m³)", "Coarse Aggregate (kg/m³)",
	"Density (kg/m³)", "Water/Solids Ratio", "Warnings",
}

// ResultsWorkbook lays batch outcomes out one per row for export.
// Failed designs keep their row with the error in the detail column.
func ResultsWorkbook(outcomes []batch.Outcome) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return nil, err
	}

	for i, out := range outcomes {
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		var row []interface{}
		if out.Err != nil {
			row = []interface{}{out.Name, "error", out.Err.Error()}
		} else {
			res := out.Result
			row = []interface{}{
				out.Name, "ok", "",
				res.TotalBinderKg, res.TotalActivatorKg, res.TotalWaterKg,
				res.FineAggregateKg, res.CoarseAggregateKg,
				res.ConcreteDensityKg, res.WaterSolidsRatio,
				strings.Join(res.Warnings, "; "),
			}
		}
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
