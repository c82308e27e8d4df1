package oil

import (
	"fmt"

	"pvtprops"
)

/*
Phase binds a crude-oil system to one correlation and one bubble point, and
evaluates every property as a function of a pressure series. The binding is
fixed at construction; to switch correlations, build a new Phase. Phase
values are immutable and safe for concurrent use.
*/
type Phase struct {
	fluid Fluid
	corr  Correlation
	pb    float64 // bubble-point pressure, psia
	rsb   float64 // solution gas-oil ratio at the bubble point, scf/STB
}

/*
NewPhase binds a fluid to the named correlation at a known bubble point.

    Args:
        f: the crude-oil system
        method: correlation name, one of Methods()
        bubblePoint: measured bubble-point pressure, psia

    Returns:
        the bound phase; ErrUnknownMethod for an unregistered name,
        ErrNumerical for a bubble point the correlation cannot seed

    Notes:
        The bubble-point solubility is taken from the correlation itself,
        never from the caller, so every later series is consistent with the
        correlation's own saturated relation.
*/
func NewPhase(f Fluid, method string, bubblePoint float64) (Phase, error) {
	corr, err := New(method)
	if err != nil {
		return Phase{}, err
	}
	return bind(f, corr, bubblePoint)
}

/*
NewPhaseFromGOR binds a fluid to the named correlation from the solution
gas-oil ratio, inverting the correlation for the bubble point first.

    Args:
        f: the crude-oil system
        method: correlation name, one of Methods()
        rsb: solution gas-oil ratio at the bubble point, scf/STB

    Returns:
        the bound phase; ErrUnknownMethod for an unregistered name, ErrDomain
        for a non-positive rsb, ErrNumerical when the inversion fails
*/
func NewPhaseFromGOR(f Fluid, method string, rsb float64) (Phase, error) {
	corr, err := New(method)
	if err != nil {
		return Phase{}, err
	}
	pb, err := corr.BubblePoint(rsb, f)
	if err != nil {
		return Phase{}, err
	}
	return bind(f, corr, pb)
}

// bind pins the bubble-point solubility through the correlation, so the
// stored rsb and every pinned series element are the same arithmetic.
func bind(f Fluid, corr Correlation, bubblePoint float64) (Phase, error) {
	rsb, err := corr.GasSolubility([]float64{bubblePoint}, bubblePoint, f)
	if err != nil {
		return Phase{}, err
	}
	return Phase{fluid: f, corr: corr, pb: bubblePoint, rsb: rsb[0]}, nil
}

// Fluid returns the bound crude-oil system.
func (ph Phase) Fluid() Fluid { return ph.fluid }

// Method returns the name of the bound correlation.
func (ph Phase) Method() string { return ph.corr.Name() }

// BubblePoint returns the bubble-point pressure, psia.
func (ph Phase) BubblePoint() float64 { return ph.pb }

// SolutionGOR returns the solution gas-oil ratio at the bubble point,
// scf/STB, as the bound correlation evaluates it.
func (ph Phase) SolutionGOR() float64 { return ph.rsb }

/*
GasSolubility evaluates Rs over a pressure series through the bound
correlation. No element may exceed the bubble-point solubility; one that
does marks an inconsistent correlation state and is rejected as
ErrNumerical rather than returned.
*/
func (ph Phase) GasSolubility(press []float64) ([]float64, error) {
	rs, err := ph.corr.GasSolubility(press, ph.pb, ph.fluid)
	if err != nil {
		return nil, err
	}
	for i, v := range rs {
		if v > ph.rsb*(1+1e-9) {
			return nil, fmt.Errorf("%w: %s solubility %g exceeds bubble-point value %g at element %d",
				pvtprops.ErrNumerical, ph.corr.Name(), v, ph.rsb, i)
		}
	}
	return rs, nil
}

// FVF evaluates Bo over a pressure series, resolving the congruent
// solubility series through the bound correlation first.
func (ph Phase) FVF(press []float64) ([]float64, error) {
	rs, err := ph.GasSolubility(press)
	if err != nil {
		return nil, err
	}
	return ph.corr.FVF(press, ph.pb, rs, ph.fluid)
}

// Compressibility evaluates co over a pressure series through the bound
// correlation.
func (ph Phase) Compressibility(press []float64) ([]float64, error) {
	return ph.corr.Compressibility(press, ph.pb, ph.fluid)
}

/*
Density evaluates the oil density over a pressure series, resolving the
solubility and volume-factor series through the bound correlation and
applying the stock-tank mass balance element by element.
*/
func (ph Phase) Density(press []float64) ([]float64, error) {
	rs, err := ph.GasSolubility(press)
	if err != nil {
		return nil, err
	}
	bo, err := ph.corr.FVF(press, ph.pb, rs, ph.fluid)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(press))
	for i := range press {
		out[i] = Density(rs[i], bo[i], ph.fluid)
	}
	return out, nil
}

/*
Viscosity evaluates the oil viscosity over a pressure series: Beggs and
Robinson (1975) driven by the solubility below the bubble point, the
Vasquez and Beggs (1980) pressure scaling above it. The branches meet at
the bubble point, where the scaling factor is one.
*/
func (ph Phase) Viscosity(press []float64) ([]float64, error) {
	rs, err := ph.GasSolubility(press)
	if err != nil {
		return nil, err
	}
	dead := DeadOilViscosity(ph.fluid)
	bubble := SaturatedOilViscosity(dead, ph.rsb)

	sat, unsat := partition(press, ph.pb)
	out := make([]float64, len(press))
	for _, i := range sat {
		out[i] = SaturatedOilViscosity(dead, rs[i])
	}
	for _, i := range unsat {
		out[i] = UndersaturatedOilViscosity(bubble, press[i], ph.pb)
	}

	if err := checkSeries(out, ph.corr.Name(), "viscosity"); err != nil {
		return nil, err
	}
	return out, nil
}

// InterfacialTension evaluates the gas-oil interfacial tension over a
// pressure series.
func (ph Phase) InterfacialTension(press []float64) []float64 {
	out := make([]float64, len(press))
	for i, p := range press {
		out[i] = GasOilTension(p, ph.fluid)
	}
	return out
}
