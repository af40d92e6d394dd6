package is17452

// IS 17452:2020 Mix Proportioning Constants

const (
	// Entrapped air assumed in the absolute volume balance
	AirContentFraction = 0.02 // 2% of the mix volume

	// Molar mass of sodium hydroxide
	NaOHMolarMass = 40.0 // g/mol

	// Density of water used for volume conversions
	WaterDensity = 1000.0 // kg/m³

	// Default activator proportions when a design does not specify them
	DefaultSilicateHydroxideRatio = 2.0  // sodium silicate to sodium hydroxide, by mass
	DefaultActivatorBinderRatio   = 0.45 // total activator to total binder, by mass
)

// BinderContent returns the total binder content in kg/m³ for a target
// 28-day compressive strength, stepped per IS 17452:2020 guidance.
func BinderContent(targetStrength float64) float64 {
	switch {
	case targetStrength <= 30:
		return 350
	case targetStrength <= 40:
		return 400
	case targetStrength <= 50:
		return 450
	default:
		return 500
	}
}

// FineAggregateFraction returns the fine aggregate share of the total
// aggregate volume. The base fraction depends on the nominal maximum
// coarse aggregate size and is adjusted by the fineness modulus of the
// fine aggregate relative to a reference modulus of 2.6.
func FineAggregateFraction(maxSizeMM, finenessModulus float64) float64 {
	var base float64
	switch {
	case maxSizeMM <= 10:
		base = 0.45
	case maxSizeMM <= 20:
		base = 0.40
	default:
		base = 0.35
	}
	// finer sand (lower modulus) takes a larger share
	return base + (2.6-finenessModulus)*0.05
}

// NaOHSolidsFraction returns the mass fraction of dissolved NaOH solids
// in a sodium hydroxide solution of the given molarity. The solution
// density is approximated as 1000 kg/m³ plus the solute concentration.
func NaOHSolidsFraction(molarity float64) float64 {
	concentration := molarity * NaOHMolarMass / 1000 // kg NaOH per litre
	density := 1000 + concentration*1000             // kg/m³ of solution
	return concentration / (density / 1000)
}

// NaOHSolutionDensity returns the density in kg/m³ of a sodium hydroxide
// solution of the given molarity. This linear fit is a separate
// approximation from the one behind NaOHSolidsFraction and the two are
// used at different steps of the proportioning procedure.
func NaOHSolutionDensity(molarity float64) float64 {
	return 1000 + 0.04*molarity*NaOHMolarMass
}

// Band is an inclusive numeric range recommended by the standard.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the band, endpoints included.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Recommended composition bands for sodium silicate solutions.
// Values outside these bands do not invalidate a design but are
// flagged as advisory warnings.
var (
	SilicateModulusBand = Band{Min: 0.6, Max: 2.0} // SiO₂/Na₂O mass ratio
	SiO2Band            = Band{Min: 30, Max: 35}   // % by mass
	Na2OBand            = Band{Min: 12, Max: 18}   // % by mass
	H2OBand             = Band{Min: 40, Max: 50}   // % by mass
)
