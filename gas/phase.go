// Package gas estimates real-gas properties of a natural-gas system
// described by its specific gravity: compressibility factor, formation
// volume factor, density, isothermal compressibility and expansion factor.
package gas

import (
	"fmt"

	"pvtprops"
)

// Universal gas constant, psia·ft³/(lb-mol·°R).
const gasConstant = 10.731577089016

// Apparent molecular weight of air, lb/lb-mol.
const airMolecularWeight = 28.964

/*
Phase describes a natural-gas system by its specific gravity. The
pseudo-critical state is derived once at construction; every property is then
a pure function of pressure and temperature. Phase values are immutable and
safe for concurrent use.
*/
type Phase struct {
	gravity float64 // specific gravity, air = 1
	molw    float64 // apparent molecular weight, lb/lb-mol
	ppc     float64 // pseudo-critical pressure, psia
	tpc     float64 // pseudo-critical temperature, °R
}

/*
NewPhase builds a gas-phase descriptor.

    Args:
        gravity: gas specific gravity at standard conditions, air = 1

    Returns:
        the descriptor, or ErrDomain for a non-positive gravity
*/
func NewPhase(gravity float64) (Phase, error) {
	if !(gravity > 0) {
		return Phase{}, fmt.Errorf("%w: gas specific gravity %g must be positive", pvtprops.ErrDomain, gravity)
	}
	ppc, tpc := PseudoCritical(gravity)
	return Phase{
		gravity: gravity,
		molw:    MolecularWeight(gravity),
		ppc:     ppc,
		tpc:     tpc,
	}, nil
}

/*
PseudoCritical estimates the pseudo-critical pressure and temperature of a
natural-gas system from its specific gravity.

    Args:
        gravity: gas specific gravity, air = 1

    Returns:
        pseudo-critical pressure, psia, and pseudo-critical temperature, °R

    Notes:
        Standing (1977) fit for natural-gas systems free of nonhydrocarbon
        impurities.
*/
func PseudoCritical(gravity float64) (ppc, tpc float64) {
	ppc = 677.0 + 15.0*gravity - 37.5*gravity*gravity
	tpc = 168.0 + 325.0*gravity - 12.5*gravity*gravity
	return ppc, tpc
}

// MolecularWeight returns the apparent molecular weight, lb/lb-mol, of a gas
// with the given specific gravity.
func MolecularWeight(gravity float64) float64 {
	return airMolecularWeight * gravity
}

// SpecificGravity is the inverse of MolecularWeight.
func SpecificGravity(molw float64) float64 {
	return molw / airMolecularWeight
}

// Gravity returns the specific gravity the phase was built with.
func (g Phase) Gravity() float64 { return g.gravity }

// reduced returns the pseudo-reduced temperature, refusing the region where
// the direct method degenerates.
func (g Phase) reduced(temp float64) (float64, error) {
	tr := (temp + 460.0) / g.tpc
	if tr <= 0.92 {
		return 0, fmt.Errorf("%w: reduced temperature %.3f at %g °F is below the direct-method range", pvtprops.ErrDomain, tr, temp)
	}
	return tr, nil
}

/*
ZFactor evaluates the gas compressibility factor over a pressure series.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        z series, dimensionless, congruent with press
*/
func (g Phase) ZFactor(press []float64, temp float64) ([]float64, error) {
	tr, err := g.reduced(temp)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(press))
	for i, p := range press {
		if !(p > 0) {
			return nil, fmt.Errorf("%w: pressure %g psia at element %d must be positive", pvtprops.ErrDomain, p, i)
		}
		out[i] = zDirect(tr, p/g.ppc)
	}
	return out, nil
}

/*
FVF evaluates the gas formation volume factor over a pressure series.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        Bg series, ft³/scf
*/
func (g Phase) FVF(press []float64, temp float64) ([]float64, error) {
	z, err := g.ZFactor(press, temp)
	if err != nil {
		return nil, err
	}
	for i, p := range press {
		z[i] = 0.02827 * z[i] * (temp + 460.0) / p
	}
	return z, nil
}

/*
FVFBbl evaluates the gas formation volume factor in reservoir barrels per
standard cubic foot, the unit the saturated-oil compressibility derivation
consumes.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        Bg series, bbl/scf
*/
func (g Phase) FVFBbl(press []float64, temp float64) ([]float64, error) {
	bg, err := g.FVF(press, temp)
	if err != nil {
		return nil, err
	}
	for i := range bg {
		bg[i] /= 5.615
	}
	return bg, nil
}

/*
ExpansionFactor evaluates the gas expansion factor, the reciprocal of the
formation volume factor.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        Eg series, scf/ft³
*/
func (g Phase) ExpansionFactor(press []float64, temp float64) ([]float64, error) {
	z, err := g.ZFactor(press, temp)
	if err != nil {
		return nil, err
	}
	for i, p := range press {
		z[i] = p / (0.02827 * z[i] * (temp + 460.0))
	}
	return z, nil
}

/*
Density evaluates the gas density from the real-gas law.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        density series, lb/ft³
*/
func (g Phase) Density(press []float64, temp float64) ([]float64, error) {
	z, err := g.ZFactor(press, temp)
	if err != nil {
		return nil, err
	}
	for i, p := range press {
		z[i] = p * g.molw / (z[i] * gasConstant * (temp + 460.0))
	}
	return z, nil
}

/*
Compressibility evaluates the isothermal gas compressibility.

    Args:
        press: pressure series, psia
        temp: temperature, °F

    Returns:
        cg series, 1/psi

    Notes:
        Reduced form cr = 1/pr − (1/z)·dz/dpr with cg = cr/ppc, using the
        direct method's analytic derivative. Approaches the ideal-gas 1/p at
        low pressure.
*/
func (g Phase) Compressibility(press []float64, temp float64) ([]float64, error) {
	tr, err := g.reduced(temp)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(press))
	for i, p := range press {
		if !(p > 0) {
			return nil, fmt.Errorf("%w: pressure %g psia at element %d must be positive", pvtprops.ErrDomain, p, i)
		}
		pr := p / g.ppc
		z := zDirect(tr, pr)
		out[i] = (1/pr - zPrime(tr, pr)/z) / g.ppc
	}
	return out, nil
}
