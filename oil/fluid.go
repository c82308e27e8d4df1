// Package oil estimates physical properties of reservoir crude-oil systems:
// gas solubility, bubble-point pressure, formation volume factor, isothermal
// compressibility, density, viscosity and gas-oil interfacial tension. The
// empirical correlations behind the saturation-sensitive properties are
// interchangeable and selected by name.
package oil

import (
	"fmt"
	"math"

	"pvtprops"
)

/*
Fluid describes a crude-oil system by the three quantities every correlation
in this package consumes: the specific gravity of the solution gas, the API
gravity of the stock-tank oil, and the reservoir temperature. Fluid values
are immutable and safe for concurrent use; WithSeparator returns a corrected
copy rather than mutating.
*/
type Fluid struct {
	gasGravity float64 // solution-gas specific gravity, air = 1
	api        float64 // stock-tank oil gravity, °API
	temp       float64 // reservoir temperature, °F

	sepGravity float64 // separator-corrected gas gravity
	hasSep     bool
}

/*
NewFluid builds a crude-oil system descriptor.

    Args:
        gasGravity: solution-gas specific gravity, air = 1
        api: stock-tank oil gravity, °API
        temp: reservoir temperature, °F

    Returns:
        the descriptor, or ErrDomain when a quantity is outside the physical
        range (non-positive gravities, temperature at or below absolute zero)
*/
func NewFluid(gasGravity, api, temp float64) (Fluid, error) {
	if !(gasGravity > 0) {
		return Fluid{}, fmt.Errorf("%w: gas gravity %g must be positive", pvtprops.ErrDomain, gasGravity)
	}
	if !(api > 0) {
		return Fluid{}, fmt.Errorf("%w: oil gravity %g °API must be positive", pvtprops.ErrDomain, api)
	}
	if !(temp+460 > 0) {
		return Fluid{}, fmt.Errorf("%w: temperature %g °F is below absolute zero", pvtprops.ErrDomain, temp)
	}
	return Fluid{gasGravity: gasGravity, api: api, temp: temp}, nil
}

// GasGravity returns the solution-gas specific gravity, air = 1.
func (f Fluid) GasGravity() float64 { return f.gasGravity }

// API returns the stock-tank oil gravity, °API.
func (f Fluid) API() float64 { return f.api }

// Temperature returns the reservoir temperature, °F.
func (f Fluid) Temperature() float64 { return f.temp }

// OilGravity returns the stock-tank oil specific gravity, water = 1.
func (f Fluid) OilGravity() float64 { return APIToSpecificGravity(f.api) }

/*
WithSeparator returns a copy of the fluid whose gas gravity has been adjusted
to the reference separator pressure of 114.7 psia.

    Args:
        sepTemp: actual separator temperature, °F
        sepPress: actual separator pressure, psia

    Returns:
        the corrected fluid, or ErrDomain for a non-positive separator state

    Notes:
        Vasquez and Beggs (1980) regressed their correlations on gravities
        normalized this way; the correction is also applied by the
        undersaturated-compressibility model their paper introduced. At
        sepPress = 114.7 psia the gravity is returned unchanged.
*/
func (f Fluid) WithSeparator(sepTemp, sepPress float64) (Fluid, error) {
	if !(sepPress > 0) || math.IsNaN(sepPress) {
		return Fluid{}, fmt.Errorf("%w: separator pressure %g psia must be positive", pvtprops.ErrDomain, sepPress)
	}
	if !(sepTemp+460 > 0) || math.IsNaN(sepTemp) {
		return Fluid{}, fmt.Errorf("%w: separator temperature %g °F is below absolute zero", pvtprops.ErrDomain, sepTemp)
	}

	out := f
	out.sepGravity = CorrectGasGravity(f.gasGravity, f.api, sepTemp, sepPress)
	out.hasSep = true
	if !(out.sepGravity > 0) {
		return Fluid{}, fmt.Errorf("%w: corrected gas gravity %g at %g °F, %g psia separator",
			pvtprops.ErrDomain, out.sepGravity, sepTemp, sepPress)
	}
	return out, nil
}

// CorrectedGasGravity returns the separator-corrected gas gravity when the
// fluid carries separator conditions, and the raw gravity otherwise.
func (f Fluid) CorrectedGasGravity() float64 {
	if f.hasSep {
		return f.sepGravity
	}
	return f.gasGravity
}
