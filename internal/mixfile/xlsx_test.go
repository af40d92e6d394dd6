package mixfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/aman-choudhary9785/iscode/internal/batch"
	"github.com/aman-choudhary9785/iscode/internal/mix"
)

func batchWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"Name", "Strength", "Fly Ash", "GGBFS", "Metakaolin", "Silica Fume",
		"SiO2", "Na2O", "H2O", "Silicate SG", "Molarity",
		"Si/Sh", "Act/Binder", "Extra Water",
		"Fine SG", "FM", "Fine Moisture", "Coarse SG", "Max Size", "Coarse Moisture",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			t.Fatal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestReadBatchXLSX(t *testing.T) {
	buf := batchWorkbook(t,
		[]interface{}{"m40 trial", 40, 70, 30, "", "", 30, 15, 55, 1.5, 10, 2, 0.45, 0, 2.6, 2.8, 2, 2.7, 20, 1},
		[]interface{}{"", 30, 100, "", "", "", "", "", "", "", 12, "", "", "", 2.6, 2.6, "", 2.7, 10, ""},
	)

	items, err := ReadBatchXLSX(buf)
	if err != nil {
		t.Fatalf("ReadBatchXLSX failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	first := items[0]
	if first.Name != "m40 trial" || first.Input.TargetStrengthMPa != 40 {
		t.Errorf("first item = %q / %g MPa", first.Name, first.Input.TargetStrengthMPa)
	}
	if len(first.Input.Precursors) != 2 {
		t.Fatalf("precursors = %+v, want fly ash and GGBFS", first.Input.Precursors)
	}
	// specific gravities come from the catalog
	if first.Input.Precursors[0].SpecificGravity != 2.2 || first.Input.Precursors[1].SpecificGravity != 2.9 {
		t.Errorf("catalog gravities not applied: %+v", first.Input.Precursors)
	}
	if first.Input.Activators.Silicate == nil || first.Input.Activators.Silicate.SiO2 != 30 {
		t.Errorf("Silicate = %+v", first.Input.Activators.Silicate)
	}
	if first.Input.Activators.Hydroxide == nil || first.Input.Activators.Hydroxide.Molarity != 10 {
		t.Errorf("Hydroxide = %+v", first.Input.Activators.Hydroxide)
	}

	second := items[1]
	if second.Name != "design 2" {
		t.Errorf("second.Name = %q, want a positional name", second.Name)
	}
	if second.Input.Activators.Silicate != nil {
		t.Error("blank silicate columns produced a silicate activator")
	}
	if second.Input.Activators.Hydroxide == nil || second.Input.Activators.Hydroxide.Molarity != 12 {
		t.Errorf("Hydroxide = %+v, want 12 M", second.Input.Activators.Hydroxide)
	}
	// blank ratio cells take the defaults
	if second.Input.SilicateHydroxideRatio != 2.0 || second.Input.ActivatorBinderRatio != 0.45 {
		t.Errorf("ratios = %g / %g, want defaults", second.Input.SilicateHydroxideRatio, second.Input.ActivatorBinderRatio)
	}
}

func TestReadBatchXLSXRowError(t *testing.T) {
	buf := batchWorkbook(t,
		[]interface{}{"no strength", "", 100, "", "", "", "", "", "", "", 10, "", "", "", 2.6, 2.6, "", 2.7, 20, ""},
	)

	_, err := ReadBatchXLSX(buf)
	if err == nil {
		t.Fatal("ReadBatchXLSX accepted a row without a strength")
	}
	if !strings.Contains(err.Error(), "row 2") || !strings.Contains(err.Error(), "target strength") {
		t.Errorf("err = %v, want it to name the row and field", err)
	}
}

func TestReadBatchXLSXEmptySheet(t *testing.T) {
	buf := batchWorkbook(t)
	if _, err := ReadBatchXLSX(buf); err == nil {
		t.Error("ReadBatchXLSX accepted a workbook with no design rows")
	}
}

func TestResultsWorkbook(t *testing.T) {
	outcomes := []batch.Outcome{
		{
			Index: 0,
			Name:  "m40 trial",
			Result: &mix.Result{
				TotalBinderKg:     400,
				TotalActivatorKg:  180,
				TotalWaterKg:      108.86,
				FineAggregateKg:   695.34,
				CoarseAggregateKg: 1118.34,
				ConcreteDensityKg: 2393.68,
				WaterSolidsRatio:  0.231,
				Warnings:          []string{"H₂O out of band"},
			},
		},
		{Index: 1, Name: "broken", Err: errors.New("precursor percentages must sum to 100%, current sum is 90%")},
	}

	f, err := ResultsWorkbook(outcomes)
	if err != nil {
		t.Fatalf("ResultsWorkbook failed: %v", err)
	}
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header plus two outcomes", len(rows))
	}

	if rows[1][0] != "m40 trial" || rows[1][1] != "ok" {
		t.Errorf("rows[1] = %v", rows[1])
	}
	if rows[1][3] != "400" {
		t.Errorf("total binder cell = %q, want 400", rows[1][3])
	}
	if rows[2][1] != "error" || !strings.Contains(rows[2][2], "90") {
		t.Errorf("rows[2] = %v, want the error detail", rows[2])
	}
}
