// Package water estimates physical properties of reservoir brine: viscosity,
// density, salinity, isothermal compressibility, formation volume factor, gas
// solubility and gas-water interfacial tension. Unlike the oil phase there is
// no model selection here; each property has one fixed published formula.
package water

import (
	"fmt"
	"math"

	"pvtprops"
)

// Density of pure water at 60 °F and atmospheric pressure, lb/ft³.
const freshDensity = 62.368

// Kind selects the dissolved-gas assumption behind the formation volume
// factor coefficients.
type Kind string

const (
	GasFree      Kind = "gas-free-water"
	GasSaturated Kind = "gas-saturated-water"
)

/*
Phase describes a reservoir brine by its salinity. Phase values are immutable
and safe for concurrent use.
*/
type Phase struct {
	salinity float64 // total dissolved solids, wt%
}

/*
NewPhase builds a water-phase descriptor.

    Args:
        salinity: total dissolved solids, wt%; 0 for fresh water

    Returns:
        the descriptor, or ErrDomain for a negative salinity
*/
func NewPhase(salinity float64) (Phase, error) {
	if salinity < 0 {
		return Phase{}, fmt.Errorf("%w: salinity %g wt%% must not be negative", pvtprops.ErrDomain, salinity)
	}
	return Phase{salinity: salinity}, nil
}

// Salinity returns the total dissolved solids, wt%.
func (w Phase) Salinity() float64 { return w.salinity }

// ppm returns the salinity in parts per million.
func (w Phase) ppm() float64 { return 10000.0 * w.salinity }

/*
Viscosity evaluates the brine viscosity over a pressure series, accounting
for both pressure and salinity.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        viscosity series, cp

    Notes:
        Meehan (1980). The salinity enters through the atmospheric-pressure
        brine viscosity; the pressure correction is small at reservoir
        conditions.
*/
func (w Phase) Viscosity(press []float64, temp float64) []float64 {
	y := w.ppm()

	a := 0.04518 + 9.313e-7*y - 3.93e-12*y*y
	b := 70.634 + 9.576e-10*y*y

	// brine viscosity at atmospheric pressure, cp
	muwd := a + b/temp

	out := make([]float64, len(press))
	for i, p := range press {
		out[i] = muwd * (1.0 + 3.5e-12*p*p*(temp-40.0))
	}
	return out
}

/*
ViscosityBrillBeggs evaluates the water viscosity from temperature alone.

    Args:
        temp: temperature, °F

    Returns:
        viscosity, cp

    Notes:
        Brill and Beggs (1978); used when pressure and salinity are unknown.
*/
func ViscosityBrillBeggs(temp float64) float64 {
	return math.Exp(1.003 - 1.479e-2*temp + 1.982e-5*temp*temp)
}

/*
Density evaluates the brine density from its formation volume factor: the
standard-condition brine density, raised by the dissolved solids, over the
reservoir volume.

    Args:
        bw: water formation volume factor series, bbl/STB

    Returns:
        density series, lb/ft³
*/
func (w Phase) Density(bw []float64) []float64 {
	s := w.salinity
	rhosc := freshDensity + 0.438603*s + 1.60074e-3*s*s

	out := make([]float64, len(bw))
	for i, b := range bw {
		out[i] = rhosc / b
	}
	return out
}

/*
Salinity recovers the total dissolved solids of a brine from its specific
gravity at 60 °F and atmospheric pressure, by inverting the quadratic
density-salinity relation.

    Args:
        gravity: brine specific gravity, water = 1

    Returns:
        total dissolved solids, wt%
*/
func Salinity(gravity float64) float64 {
	rho := freshDensity * gravity

	a := 1.60074e-3
	b := 0.438603
	c := freshDensity - rho

	return (-b + math.Sqrt(b*b-4*a*c)) / (2 * a)
}

/*
Compressibility evaluates the isothermal water compressibility, ignoring
corrections for dissolved gas and solids.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        cw series, 1/psi

    Notes:
        Brill and Beggs (1978).
*/
func Compressibility(press []float64, temp float64) []float64 {
	out := make([]float64, len(press))
	for i, p := range press {
		c1 := 3.8546 - 0.000134*p
		c2 := -0.01052 + 4.77e-7*p
		c3 := 3.9267e-5 - 8.8e-10*p
		out[i] = (c1 + c2*temp + c3*temp*temp) * 1e-6
	}
	return out
}

/*
FVF evaluates the water formation volume factor.

    Args:
        press: pressure series, psia
        temp: temperature, °F
        kind: dissolved-gas assumption behind the coefficient set

    Returns:
        Bw series, bbl/STB, or ErrDomain for an unknown kind
*/
func (w Phase) FVF(press []float64, temp float64, kind Kind) ([]float64, error) {
	var c1, c2, c3 float64
	switch kind {
	case GasFree:
		c1 = 0.9947 + 5.8e-6*temp + 1.02e-6*temp*temp
		c2 = -4.228e-6 + 1.8376e-8*temp - 6.77e-11*temp*temp
		c3 = 1.3e-10 - 1.3855e-12*temp + 4.285e-15*temp*temp
	case GasSaturated:
		c1 = 0.9911 + 6.35e-5*temp + 8.5e-7*temp*temp
		c2 = -1.093e-6 - 3.497e-9*temp + 4.57e-12*temp*temp
		c3 = -5e-11 + 6.429e-13*temp - 1.43e-15*temp*temp
	default:
		return nil, fmt.Errorf("%w: water kind %q is not %q or %q", pvtprops.ErrDomain, kind, GasFree, GasSaturated)
	}

	y := w.ppm()

	out := make([]float64, len(press))
	for i, p := range press {
		bw := c1 + c2*p + c3*p*p

		x := 5.1e-8*p + (temp-60.0)*(5.47e-6-1.95e-10*p) +
			(temp-60.0)*(temp-60.0)*(-3.23e-8+8.5e-13*p)

		out[i] = bw * (1.0 + 0.0001*x*y)
	}
	return out, nil
}

/*
GasSolubility evaluates the solubility of natural gas in the brine.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        Rsw series, scf/STB
*/
func (w Phase) GasSolubility(press []float64, temp float64) []float64 {
	c1 := 2.12 + 3.45e-3*temp - 3.59e-5*temp*temp
	c2 := 1.07e-2 - 5.26e-5*temp + 1.48e-7*temp*temp
	c3 := 8.75e-7 + 3.90e-9*temp - 1.02e-11*temp*temp

	y := w.ppm()
	x := 3.471 * math.Pow(temp, -0.837)

	out := make([]float64, len(press))
	for i, p := range press {
		rswp := c1 + c2*p + c3*p*p
		out[i] = rswp * (1.0 - 0.0001*x*y)
	}
	return out
}

/*
InterfacialTension evaluates the gas-water interfacial tension.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        tension series, dyne/cm

    Notes:
        Measured isotherms at 74 °F and 280 °F with linear interpolation
        between; floored at 1 dyne/cm.
*/
func InterfacialTension(press []float64, temp float64) []float64 {
	out := make([]float64, len(press))
	for i, p := range press {
		s74 := 75.0 - 1.108*math.Pow(p, 0.349)
		s280 := 53.0 - 0.1048*math.Pow(p, 0.637)

		var sw float64
		switch {
		case temp <= 74:
			sw = s74
		case temp >= 280:
			sw = s280
		default:
			sw = s74 - (temp-74.0)*(s74-s280)/206.0
		}

		if sw < 1 {
			sw = 1
		}
		out[i] = sw
	}
	return out
}
