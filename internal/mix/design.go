package mix

import (
	"github.com/aman-choudhary9785/iscode/internal/is17452"
)

// Design computes the mass of every constituent needed for one cubic
// metre of geopolymer concrete using the absolute volume method of
// IS 17452:2020. The calculation is deterministic and side-effect free;
// identical inputs always produce identical results. On a validation
// failure no partial result is returned.
func Design(in Input) (*Result, error) {
	if err := Validate(in.Precursors, in.Activators); err != nil {
		return nil, err
	}

	// Binder content from the target strength band, split by percentage
	content := is17452.BinderContent(in.TargetStrengthMPa)
	portions := sizeBinder(content, in.Precursors)

	// Activator masses and the water they carry. The split works from
	// the banded content, not the summed portions.
	act := sizeActivators(content, in.ActivatorBinderRatio, in.SilicateHydroxideRatio, in.Activators)

	// Aggregates fill whatever volume the paste leaves over
	fineWet, coarseWet := balanceVolumes(portions, act, in.Activators, in.ExtraWaterKg, in.FineAggregate, in.CoarseAggregate)

	result := &Result{
		TargetStrengthMPa: in.TargetStrengthMPa,
		Binders:           binderQuantities(portions),
		TotalBinderKg:     totalBinderMass(portions),
		Activators:        activatorQuantities(act, in.Activators),
		TotalActivatorKg:  act.silicate + act.hydroxide,
		ActivatorWaterKg:  act.water,
		ExtraWaterKg:      in.ExtraWaterKg,
		TotalWaterKg:      act.water + in.ExtraWaterKg,
		FineAggregateKg:   fineWet,
		CoarseAggregateKg: coarseWet,
	}

	computeProperties(result, act, in.Activators)
	result.Warnings = checkRanges(in.Activators)

	return result, nil
}

// binderPortion pairs one precursor's share of the binder mass with the
// specific gravity needed to convert it to volume.
type binderPortion struct {
	name string
	mass float64
	sg   float64
}

// sizeBinder splits the banded binder content across the precursors by
// percentage. Precursors with a zero or negative share are left out.
func sizeBinder(content float64, precursors []Precursor) []binderPortion {
	var portions []binderPortion
	for _, p := range precursors {
		if p.Percentage <= 0 {
			continue
		}
		portions = append(portions, binderPortion{
			name: p.Name,
			mass: content * p.Percentage / 100,
			sg:   p.SpecificGravity,
		})
	}
	return portions
}

func totalBinderMass(portions []binderPortion) float64 {
	var total float64
	for _, b := range portions {
		total += b.mass
	}
	return total
}

func binderQuantities(portions []binderPortion) []Quantity {
	var quantities []Quantity
	for _, b := range portions {
		quantities = append(quantities, Quantity{Material: b.name, MassKg: b.mass})
	}
	return quantities
}

// activatorMasses carries the sized activator solution masses and the
// free water those solutions contribute to the mix.
type activatorMasses struct {
	silicate  float64
	hydroxide float64
	water     float64
}

// sizeActivators computes the activator solution masses from the
// activator-to-binder ratio and splits them by the silicate-to-hydroxide
// mass ratio when both are present. A single activator takes the full
// amount.
func sizeActivators(binderContent, activatorBinderRatio, siShRatio float64, acts Activators) activatorMasses {
	total := binderContent * activatorBinderRatio

	var m activatorMasses
	switch {
	case acts.Silicate != nil && acts.Hydroxide != nil:
		m.silicate = total * siShRatio / (1 + siShRatio)
		m.hydroxide = total - m.silicate
	case acts.Silicate != nil:
		m.silicate = total
	case acts.Hydroxide != nil:
		m.hydroxide = total
	}

	if acts.Silicate != nil {
		m.water += m.silicate * acts.Silicate.H2O / 100
	}
	if acts.Hydroxide != nil {
		// water is whatever the dissolved solids leave of the solution
		f := is17452.NaOHSolidsFraction(acts.Hydroxide.Molarity)
		m.water += m.hydroxide * (1 - f)
	}

	return m
}

// balanceVolumes converts every paste constituent to volume, assigns the
// remaining volume to aggregates and returns their as-used (wet) masses.
// The remainder is not clamped: numerically infeasible designs propagate
// negative aggregate masses rather than being silently corrected.
func balanceVolumes(portions []binderPortion, act activatorMasses, acts Activators, extraWaterKg float64, fine FineAggregate, coarse CoarseAggregate) (fineWet, coarseWet float64) {
	var binderVolume float64
	for _, b := range portions {
		binderVolume += b.mass / (b.sg * 1000)
	}

	var activatorVolume float64
	if acts.Silicate != nil {
		activatorVolume += act.silicate / (acts.Silicate.SpecificGravity * 1000)
	}
	if acts.Hydroxide != nil {
		activatorVolume += act.hydroxide / is17452.NaOHSolutionDensity(acts.Hydroxide.Molarity)
	}

	extraWaterVolume := extraWaterKg / is17452.WaterDensity

	// Absolute volume balance over 1 m³ with the standard air allowance
	aggVolume := 1.0 - binderVolume - activatorVolume - extraWaterVolume - is17452.AirContentFraction

	fineFraction := is17452.FineAggregateFraction(coarse.MaxSizeMM, fine.FinenessModulus)
	fineVolume := aggVolume * fineFraction
	coarseVolume := aggVolume - fineVolume

	fineDry := fineVolume * fine.SpecificGravity * 1000
	coarseDry := coarseVolume * coarse.SpecificGravity * 1000

	fineWet = fineDry * (1 + fine.MoisturePercent/100)
	coarseWet = coarseDry * (1 + coarse.MoisturePercent/100)
	return fineWet, coarseWet
}

// computeProperties fills the derived fields of a result: fresh density,
// geopolymer solids and the water-to-solids ratio, and the by-mass mix
// ratio relative to the binder. Ratios with a zero denominator stay zero.
func computeProperties(result *Result, act activatorMasses, acts Activators) {
	result.ConcreteDensityKg = result.TotalBinderKg + result.TotalActivatorKg +
		result.ExtraWaterKg + result.FineAggregateKg + result.CoarseAggregateKg

	solids := result.TotalBinderKg
	if acts.Silicate != nil {
		solids += act.silicate * (acts.Silicate.SiO2 + acts.Silicate.Na2O) / 100
	}
	if acts.Hydroxide != nil {
		solids += act.hydroxide * is17452.NaOHSolidsFraction(acts.Hydroxide.Molarity)
	}
	result.TotalSolidsKg = solids

	if solids > 0 {
		result.WaterSolidsRatio = result.TotalWaterKg / solids
	}

	if result.TotalBinderKg > 0 {
		result.MixRatio = MixRatio{
			Binder:          1.0,
			Activator:       result.TotalActivatorKg / result.TotalBinderKg,
			FineAggregate:   result.FineAggregateKg / result.TotalBinderKg,
			CoarseAggregate: result.CoarseAggregateKg / result.TotalBinderKg,
		}
	}
}

// activatorQuantities lists the sized activators for the result, sodium
// silicate first.
func activatorQuantities(act activatorMasses, acts Activators) []Quantity {
	var quantities []Quantity
	if acts.Silicate != nil {
		quantities = append(quantities, Quantity{Material: MaterialSodiumSilicate, MassKg: act.silicate})
	}
	if acts.Hydroxide != nil {
		quantities = append(quantities, Quantity{Material: MaterialSodiumHydroxide, MassKg: act.hydroxide})
	}
	return quantities
}
