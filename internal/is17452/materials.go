package is17452

// PrecursorMaterial describes an aluminosilicate source material commonly
// used as a geopolymer binder, with its typical specific gravity range.
type PrecursorMaterial struct {
	Name            string
	SpecificGravity float64 // typical value
	MinSG           float64
	MaxSG           float64
	DefaultPercent  float64 // share in the default blend, % by mass
}

// PrecursorMaterials lists the binder sources the calculator knows about.
// The default blend is 70% fly ash with 30% GGBFS.
var PrecursorMaterials = []PrecursorMaterial{
	{
		Name:            "Fly Ash",
		SpecificGravity: 2.2,
		MinSG:           2.0,
		MaxSG:           3.0,
		DefaultPercent:  70,
	},
	{
		Name:            "GGBFS",
		SpecificGravity: 2.9,
		MinSG:           2.0,
		MaxSG:           3.5,
		DefaultPercent:  30,
	},
	{
		Name:            "Metakaolin",
		SpecificGravity: 2.6,
		MinSG:           2.4,
		MaxSG:           2.8,
		DefaultPercent:  0,
	},
	{
		Name:            "Silica Fume",
		SpecificGravity: 2.2,
		MinSG:           2.0,
		MaxSG:           2.4,
		DefaultPercent:  0,
	},
}

// PrecursorByName returns the catalog entry for a material name.
func PrecursorByName(name string) (PrecursorMaterial, bool) {
	for _, m := range PrecursorMaterials {
		if m.Name == name {
			return m, true
		}
	}
	return PrecursorMaterial{}, false
}

// Default sodium silicate solution composition (% by mass) and properties.
const (
	DefaultSilicateSiO2 = 30.0
	DefaultSilicateNa2O = 15.0
	DefaultSilicateH2O  = 55.0
	DefaultSilicateSG   = 1.5

	DefaultNaOHMolarity = 10.0
)

// InputRange is a typical span for one design input. The ranges are
// informational only and are not enforced by the design calculation.
type InputRange struct {
	Field string
	Unit  string
	Min   float64
	Max   float64
}

// TypicalInputRanges mirrors the spans commonly seen in practice for each
// design input.
var TypicalInputRanges = []InputRange{
	{Field: "Target Strength", Unit: "MPa", Min: 20, Max: 80},
	{Field: "Silicate SiO₂ Content", Unit: "%", Min: 20, Max: 40},
	{Field: "Silicate Na₂O Content", Unit: "%", Min: 5, Max: 25},
	{Field: "Silicate H₂O Content", Unit: "%", Min: 30, Max: 70},
	{Field: "Silicate Specific Gravity", Unit: "", Min: 1.3, Max: 1.8},
	{Field: "NaOH Molarity", Unit: "M", Min: 4, Max: 16},
	{Field: "Silicate/Hydroxide Ratio", Unit: "", Min: 0.5, Max: 5.0},
	{Field: "Activator/Binder Ratio", Unit: "", Min: 0.3, Max: 0.6},
	{Field: "Additional Water", Unit: "kg/m³", Min: 0, Max: 50},
	{Field: "Fine Aggregate Specific Gravity", Unit: "", Min: 2.4, Max: 2.8},
	{Field: "Fineness Modulus", Unit: "", Min: 2.0, Max: 3.5},
	{Field: "Aggregate Moisture Content", Unit: "%", Min: 0, Max: 10},
	{Field: "Coarse Aggregate Specific Gravity", Unit: "", Min: 2.4, Max: 3.0},
	{Field: "Maximum Aggregate Size", Unit: "mm", Min: 10, Max: 40},
}
