package mix

// Canonical activator material names as they appear in results and reports.
const (
	MaterialSodiumSilicate  = "Sodium Silicate"
	MaterialSodiumHydroxide = "Sodium Hydroxide"
)

// Precursor is one aluminosilicate source material in the binder blend.
type Precursor struct {
	Name            string  `yaml:"name" json:"name"`
	Percentage      float64 `yaml:"percentage" json:"percentage"` // share of total binder, % by mass
	SpecificGravity float64 `yaml:"specific_gravity" json:"specific_gravity"`
}

// SodiumSilicate describes a sodium silicate solution by its composition.
// The three components are percentages by mass and must sum to 100 (±0.1).
type SodiumSilicate struct {
	SiO2            float64 `yaml:"sio2" json:"sio2"` // % by mass
	Na2O            float64 `yaml:"na2o" json:"na2o"` // % by mass
	H2O             float64 `yaml:"h2o" json:"h2o"`   // % by mass
	SpecificGravity float64 `yaml:"specific_gravity" json:"specific_gravity"`
}

// Modulus returns the SiO₂/Na₂O mass ratio, or 0 when Na₂O is absent.
func (s SodiumSilicate) Modulus() float64 {
	if s.Na2O <= 0 {
		return 0
	}
	return s.SiO2 / s.Na2O
}

// SodiumHydroxide describes a sodium hydroxide solution by its molarity.
type SodiumHydroxide struct {
	Molarity float64 `yaml:"molarity" json:"molarity"` // mol/L, typically 4 to 16
}

// Activators is the alkaline activator system of a design. A design may
// use sodium silicate, sodium hydroxide, both, or neither; a nil field
// means that activator is not used.
type Activators struct {
	Silicate  *SodiumSilicate  `yaml:"sodium_silicate,omitempty" json:"sodium_silicate,omitempty"`
	Hydroxide *SodiumHydroxide `yaml:"sodium_hydroxide,omitempty" json:"sodium_hydroxide,omitempty"`
}

// FineAggregate holds the fine aggregate properties used by the volume
// balance and the moisture correction.
type FineAggregate struct {
	SpecificGravity float64 `yaml:"specific_gravity" json:"specific_gravity"`
	FinenessModulus float64 `yaml:"fineness_modulus" json:"fineness_modulus"`
	MoisturePercent float64 `yaml:"moisture_percent" json:"moisture_percent"` // % of dry mass
}

// CoarseAggregate holds the coarse aggregate properties. The nominal
// maximum size selects the base fine/coarse split.
type CoarseAggregate struct {
	SpecificGravity float64 `yaml:"specific_gravity" json:"specific_gravity"`
	MaxSizeMM       float64 `yaml:"max_size_mm" json:"max_size_mm"` // commonly 10, 20 or 40
	MoisturePercent float64 `yaml:"moisture_percent" json:"moisture_percent"` // % of dry mass
}

// Input collects every parameter of a geopolymer concrete mix design.
// The caller populates it fully before invoking Design; the engine never
// reads state from anywhere else.
type Input struct {
	TargetStrengthMPa float64     `yaml:"target_strength_mpa" json:"target_strength_mpa"` // 28-day compressive strength
	Precursors        []Precursor `yaml:"precursors" json:"precursors"`
	Activators        Activators  `yaml:"activators" json:"activators"`

	FineAggregate   FineAggregate   `yaml:"fine_aggregate" json:"fine_aggregate"`
	CoarseAggregate CoarseAggregate `yaml:"coarse_aggregate" json:"coarse_aggregate"`

	// Mass ratio of sodium silicate to sodium hydroxide solution, used
	// only when both activators are present.
	SilicateHydroxideRatio float64 `yaml:"silicate_hydroxide_ratio" json:"silicate_hydroxide_ratio"`

	// Mass ratio of total activator to total binder.
	ActivatorBinderRatio float64 `yaml:"activator_binder_ratio" json:"activator_binder_ratio"`

	// Additional free water for workability adjustment (kg/m³).
	ExtraWaterKg float64 `yaml:"extra_water_kg" json:"extra_water_kg"`
}

// Quantity is a named material mass in the final mix, per m³ of concrete.
type Quantity struct {
	Material string  `yaml:"material" json:"material"`
	MassKg   float64 `yaml:"mass_kg" json:"mass_kg"`
}

// MixRatio expresses the mix proportions by mass relative to the total
// binder. All components are zero when the design has no binder mass.
type MixRatio struct {
	Binder          float64 `yaml:"binder" json:"binder"`
	Activator       float64 `yaml:"activator" json:"activator"`
	FineAggregate   float64 `yaml:"fine_aggregate" json:"fine_aggregate"`
	CoarseAggregate float64 `yaml:"coarse_aggregate" json:"coarse_aggregate"`
}

// Result is the complete outcome of one mix design calculation. All
// masses are kg per m³ of concrete; aggregates are as-used (wet) masses.
type Result struct {
	TargetStrengthMPa float64 `yaml:"target_strength_mpa" json:"target_strength_mpa"`

	Binders       []Quantity `yaml:"binders" json:"binders"`
	TotalBinderKg float64    `yaml:"total_binder_kg" json:"total_binder_kg"`

	Activators       []Quantity `yaml:"activators" json:"activators"`
	TotalActivatorKg float64    `yaml:"total_activator_kg" json:"total_activator_kg"`

	ActivatorWaterKg float64 `yaml:"activator_water_kg" json:"activator_water_kg"`
	ExtraWaterKg     float64 `yaml:"extra_water_kg" json:"extra_water_kg"`
	TotalWaterKg     float64 `yaml:"total_water_kg" json:"total_water_kg"`

	FineAggregateKg   float64 `yaml:"fine_aggregate_kg" json:"fine_aggregate_kg"`
	CoarseAggregateKg float64 `yaml:"coarse_aggregate_kg" json:"coarse_aggregate_kg"`

	ConcreteDensityKg float64 `yaml:"concrete_density_kg" json:"concrete_density_kg"`
	TotalSolidsKg     float64 `yaml:"total_solids_kg" json:"total_solids_kg"`

	// Water to geopolymer solids ratio, zero when there are no solids.
	WaterSolidsRatio float64 `yaml:"water_solids_ratio" json:"water_solids_ratio"`

	MixRatio MixRatio `yaml:"mix_ratio" json:"mix_ratio"`

	// Advisory findings in evaluation order. Warnings never invalidate
	// the result.
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}
