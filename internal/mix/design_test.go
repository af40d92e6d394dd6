package mix

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// canonicalInput is a 40 MPa fly ash/GGBFS design activated with both
// sodium silicate and 10 M sodium hydroxide.
func canonicalInput() Input {
	return Input{
		TargetStrengthMPa: 40,
		Precursors: []Precursor{
			{Name: "Fly Ash", Percentage: 70, SpecificGravity: 2.2},
			{Name: "GGBFS", Percentage: 30, SpecificGravity: 2.9},
		},
		Activators: Activators{
			Silicate:  &SodiumSilicate{SiO2: 30, Na2O: 15, H2O: 55, SpecificGravity: 1.5},
			Hydroxide: &SodiumHydroxide{Molarity: 10},
		},
		FineAggregate:          FineAggregate{SpecificGravity: 2.6, FinenessModulus: 2.8, MoisturePercent: 2},
		CoarseAggregate:        CoarseAggregate{SpecificGravity: 2.7, MaxSizeMM: 20, MoisturePercent: 1},
		SilicateHydroxideRatio: 2.0,
		ActivatorBinderRatio:   0.45,
	}
}

func TestDesignCanonicalMix(t *testing.T) {
	res, err := Design(canonicalInput())
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	if res.TotalBinderKg != 400 {
		t.Errorf("TotalBinderKg = %.4f, want 400", res.TotalBinderKg)
	}

	wantBinders := map[string]float64{"Fly Ash": 280, "GGBFS": 120}
	if len(res.Binders) != len(wantBinders) {
		t.Fatalf("len(Binders) = %d, want %d", len(res.Binders), len(wantBinders))
	}
	for _, q := range res.Binders {
		want, ok := wantBinders[q.Material]
		if !ok {
			t.Errorf("unexpected binder %q", q.Material)
			continue
		}
		if math.Abs(q.MassKg-want) > 1e-9 {
			t.Errorf("%s mass = %.6f, want %.0f", q.Material, q.MassKg, want)
		}
	}

	if math.Abs(res.TotalActivatorKg-180) > 1e-9 {
		t.Errorf("TotalActivatorKg = %.6f, want 180", res.TotalActivatorKg)
	}

	// 66 kg from the silicate solution plus 300/7 kg from 10 M hydroxide
	if math.Abs(res.ActivatorWaterKg-108.8571428571) > 1e-6 {
		t.Errorf("ActivatorWaterKg = %.10f, want 108.8571428571", res.ActivatorWaterKg)
	}
	if res.TotalWaterKg != res.ActivatorWaterKg {
		t.Errorf("TotalWaterKg = %.6f, want %.6f with no extra water", res.TotalWaterKg, res.ActivatorWaterKg)
	}

	if math.Abs(res.FineAggregateKg-695.3390429739) > 1e-6 {
		t.Errorf("FineAggregateKg = %.10f, want 695.3390429739", res.FineAggregateKg)
	}
	if math.Abs(res.CoarseAggregateKg-1118.3389776615) > 1e-6 {
		t.Errorf("CoarseAggregateKg = %.10f, want 1118.3389776615", res.CoarseAggregateKg)
	}

	if math.Abs(res.ConcreteDensityKg-2393.6780206354) > 1e-6 {
		t.Errorf("ConcreteDensityKg = %.10f, want 2393.6780206354", res.ConcreteDensityKg)
	}
	if math.Abs(res.TotalSolidsKg-471.1428571429) > 1e-6 {
		t.Errorf("TotalSolidsKg = %.10f, want 471.1428571429", res.TotalSolidsKg)
	}
	if math.Abs(res.WaterSolidsRatio-0.2310491207) > 1e-9 {
		t.Errorf("WaterSolidsRatio = %.10f, want 0.2310491207", res.WaterSolidsRatio)
	}

	wantRatio := MixRatio{Binder: 1, Activator: 0.45, FineAggregate: 1.7383476074, CoarseAggregate: 2.7958474442}
	if math.Abs(res.MixRatio.Binder-wantRatio.Binder) > 1e-9 ||
		math.Abs(res.MixRatio.Activator-wantRatio.Activator) > 1e-9 ||
		math.Abs(res.MixRatio.FineAggregate-wantRatio.FineAggregate) > 1e-6 ||
		math.Abs(res.MixRatio.CoarseAggregate-wantRatio.CoarseAggregate) > 1e-6 {
		t.Errorf("MixRatio = %+v, want %+v", res.MixRatio, wantRatio)
	}

	// The default silicate carries 55% water, above the recommended band
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "H₂O") {
		t.Errorf("Warnings = %v, want a single H₂O band warning", res.Warnings)
	}
}

func TestDesignActivatorSplit(t *testing.T) {
	res, err := Design(canonicalInput())
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	if len(res.Activators) != 2 {
		t.Fatalf("len(Activators) = %d, want 2", len(res.Activators))
	}
	if res.Activators[0].Material != MaterialSodiumSilicate {
		t.Errorf("Activators[0] = %q, want sodium silicate first", res.Activators[0].Material)
	}

	// 2:1 split of 180 kg
	if math.Abs(res.Activators[0].MassKg-120) > 1e-6 {
		t.Errorf("silicate mass = %.8f, want 120", res.Activators[0].MassKg)
	}
	if math.Abs(res.Activators[1].MassKg-60) > 1e-6 {
		t.Errorf("hydroxide mass = %.8f, want 60", res.Activators[1].MassKg)
	}
}

func TestDesignSingleActivatorTakesAll(t *testing.T) {
	in := canonicalInput()
	in.Activators.Hydroxide = nil

	res, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}
	if len(res.Activators) != 1 || res.Activators[0].Material != MaterialSodiumSilicate {
		t.Fatalf("Activators = %v, want silicate only", res.Activators)
	}
	if math.Abs(res.Activators[0].MassKg-180) > 1e-9 {
		t.Errorf("silicate mass = %.6f, want the full 180", res.Activators[0].MassKg)
	}

	in = canonicalInput()
	in.Activators.Silicate = nil

	res, err = Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}
	if len(res.Activators) != 1 || res.Activators[0].Material != MaterialSodiumHydroxide {
		t.Fatalf("Activators = %v, want hydroxide only", res.Activators)
	}
	if math.Abs(res.Activators[0].MassKg-180) > 1e-9 {
		t.Errorf("hydroxide mass = %.6f, want the full 180", res.Activators[0].MassKg)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none without a silicate", res.Warnings)
	}
}

func TestDesignNoActivators(t *testing.T) {
	in := canonicalInput()
	in.Activators = Activators{}

	res, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}
	if len(res.Activators) != 0 || res.TotalActivatorKg != 0 {
		t.Errorf("activators = %v (total %.2f), want none", res.Activators, res.TotalActivatorKg)
	}
	if res.TotalWaterKg != 0 {
		t.Errorf("TotalWaterKg = %.4f, want 0", res.TotalWaterKg)
	}
	// No water over 400 kg of binder solids
	if res.WaterSolidsRatio != 0 {
		t.Errorf("WaterSolidsRatio = %.6f, want 0", res.WaterSolidsRatio)
	}
}

func TestDesignValidationFailureReturnsNoResult(t *testing.T) {
	in := canonicalInput()
	in.Precursors[0].Percentage = 60 // sum drops to 90

	res, err := Design(in)
	if err == nil {
		t.Fatal("Design accepted an unbalanced precursor blend")
	}
	if res != nil {
		t.Fatalf("Design returned a partial result alongside error %v", err)
	}
}

func TestDesignIdempotent(t *testing.T) {
	in := canonicalInput()

	first, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}
	second, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed on the second call: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func TestDesignExtraWaterFlowsThrough(t *testing.T) {
	base, err := Design(canonicalInput())
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	in := canonicalInput()
	in.ExtraWaterKg = 20
	res, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	if math.Abs(res.TotalWaterKg-(base.TotalWaterKg+20)) > 1e-9 {
		t.Errorf("TotalWaterKg = %.6f, want %.6f", res.TotalWaterKg, base.TotalWaterKg+20)
	}
	if res.ExtraWaterKg != 20 {
		t.Errorf("ExtraWaterKg = %.2f, want 20", res.ExtraWaterKg)
	}
	// 20 kg of water displaces 0.02 m³ of aggregate
	if res.FineAggregateKg >= base.FineAggregateKg {
		t.Errorf("fine aggregate did not shrink: %.4f -> %.4f", base.FineAggregateKg, res.FineAggregateKg)
	}
	if res.WaterSolidsRatio <= base.WaterSolidsRatio {
		t.Errorf("water/solids ratio did not grow: %.6f -> %.6f", base.WaterSolidsRatio, res.WaterSolidsRatio)
	}
}

func TestDesignNegativeAggregateVolumePropagates(t *testing.T) {
	// An activator-to-binder ratio of 5 puts more paste volume into the
	// mix than a cubic metre holds. The balance goes negative and the
	// aggregate masses follow it, with no error and no warning.
	in := canonicalInput()
	in.ActivatorBinderRatio = 5

	res, err := Design(in)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}
	if res.FineAggregateKg >= 0 || res.CoarseAggregateKg >= 0 {
		t.Errorf("aggregates = %.2f / %.2f, want negative masses for an infeasible paste volume",
			res.FineAggregateKg, res.CoarseAggregateKg)
	}
	for _, w := range res.Warnings {
		if strings.Contains(w, "aggregate") {
			t.Errorf("unexpected aggregate warning %q", w)
		}
	}
}

func TestSizeBinderSkipsZeroShares(t *testing.T) {
	portions := sizeBinder(400, []Precursor{
		{Name: "Fly Ash", Percentage: 100, SpecificGravity: 2.2},
		{Name: "Metakaolin", Percentage: 0, SpecificGravity: 2.6},
	})

	if len(portions) != 1 {
		t.Fatalf("len(portions) = %d, want 1", len(portions))
	}
	if portions[0].name != "Fly Ash" || portions[0].mass != 400 {
		t.Errorf("portions[0] = %+v, want the full 400 kg of fly ash", portions[0])
	}
}

func TestComputePropertiesZeroGuards(t *testing.T) {
	res := &Result{}
	computeProperties(res, activatorMasses{}, Activators{})

	if res.WaterSolidsRatio != 0 {
		t.Errorf("WaterSolidsRatio = %.6f, want 0 with no solids", res.WaterSolidsRatio)
	}
	if res.MixRatio != (MixRatio{}) {
		t.Errorf("MixRatio = %+v, want all zeros with no binder", res.MixRatio)
	}
}
