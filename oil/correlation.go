package oil

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"pvtprops"
	"pvtprops/gas"
)

// Registered correlation names.
const (
	MethodStanding        = "standing"
	MethodVasquezBeggs    = "vasquez_beggs"
	MethodGlaso           = "glaso"
	MethodMarhoun         = "marhoun"
	MethodPetroskyFarshad = "petrosky_farshad"
)

/*
Correlation is one named empirical model for the saturation-sensitive
properties of a crude-oil system. Pressures are absolute (psia) throughout,
bubble point included; series results are congruent with the pressure series
passed in, element for element.

Implementations are stateless: the fluid travels through every call, and a
single value may serve any number of fluids concurrently.
*/
type Correlation interface {
	// Name returns the registered name of the correlation.
	Name() string

	// BubblePoint inverts the saturated solubility relation: the pressure
	// at which the fluid holds exactly rsb scf/STB in solution.
	BubblePoint(rsb float64, f Fluid) (float64, error)

	// GasSolubility evaluates Rs over a pressure series: the saturated
	// relation below the bubble point, pinned at the bubble-point
	// solubility at and above it.
	GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error)

	// FVF evaluates Bo over a pressure series from the congruent
	// solubility series: the saturated relation below the bubble point,
	// Bob compressed by the undersaturated model at and above it.
	FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error)

	// Compressibility evaluates co over a pressure series: assembled from
	// gas evolution and liquid shrinkage below the bubble point, the
	// undersaturated model at and above it.
	Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error)
}

// methods maps a registered name to its factory. Each correlation file
// registers itself at init time.
var methods = map[string]func() Correlation{}

// register adds a correlation factory under a unique name.
func register(name string, factory func() Correlation) {
	if _, ok := methods[name]; ok {
		panic("oil: correlation " + name + " registered twice")
	}
	methods[name] = factory
}

/*
New builds the correlation registered under a name. Matching ignores case.

    Args:
        name: one of Methods()

    Returns:
        a fresh correlation, or ErrUnknownMethod naming the known methods
*/
func New(name string) (Correlation, error) {
	factory, ok := methods[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not one of %s",
			pvtprops.ErrUnknownMethod, name, strings.Join(Methods(), ", "))
	}
	return factory(), nil
}

// Methods lists the registered correlation names, sorted.
func Methods() []string {
	out := make([]string, 0, len(methods))
	for name := range methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

/*
kernel is the scalar core each correlation supplies and the shared series
drivers below consume: the saturated relations, their analytic pressure
derivatives, and the undersaturated compressibility model. Derivatives take
the already evaluated Rs so the drivers never evaluate the saturated
relation twice at one pressure.
*/
type kernel interface {
	Name() string

	// solubility evaluates the saturated Rs at one pressure, scf/STB.
	solubility(press float64, f Fluid) float64

	// solubilitySlope evaluates dRs/dp at one saturated pressure, 1/psi
	// times scf/STB.
	solubilitySlope(press, rs float64, f Fluid) float64

	// fvfSat evaluates the saturated Bo from the solubility, bbl/STB.
	fvfSat(rs float64, f Fluid) float64

	// fvfSlope evaluates dBo/dp at one saturated pressure.
	fvfSlope(press, rs float64, f Fluid) float64

	// undersatComp evaluates co above the bubble point, 1/psi.
	undersatComp(press, rsb float64, f Fluid) float64
}

/*
solubilitySeries evaluates the gas solubility over a pressure series: the
kernel's saturated relation below the bubble point, the bubble-point
solubility pinned at and above it.
*/
func solubilitySeries(k kernel, press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	if err := checkPressure(bubblePoint, k.Name()); err != nil {
		return nil, err
	}
	rsb := k.solubility(bubblePoint, f)

	sat, unsat := partition(press, bubblePoint)
	out := evalSplit(press, sat, unsat,
		func(p float64) float64 { return k.solubility(p, f) },
		func(float64) float64 { return rsb },
	)

	if err := checkSeries(out, k.Name(), "gas solubility"); err != nil {
		return nil, err
	}
	return out, nil
}

/*
fvfSeries evaluates the oil formation volume factor over a pressure series:
the kernel's saturated relation driven by the solubility below the bubble
point, the bubble-point factor shrunk through the undersaturated
compressibility at and above it,

	Bo = Bob exp(co (pb - p))

with co evaluated at the target pressure. The rs series must be congruent
with press; pass what GasSolubility returned for the same pressures.
*/
func fvfSeries(k kernel, press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	if err := checkPressure(bubblePoint, k.Name()); err != nil {
		return nil, err
	}
	if len(rs) != len(press) {
		return nil, fmt.Errorf("%w: %d solubilities for %d pressures",
			pvtprops.ErrDomain, len(rs), len(press))
	}

	rsb := k.solubility(bubblePoint, f)
	bob := k.fvfSat(rsb, f)

	sat, unsat := partition(press, bubblePoint)
	out := make([]float64, len(press))
	for _, i := range sat {
		out[i] = k.fvfSat(rs[i], f)
	}
	for _, i := range unsat {
		p := press[i]
		out[i] = bob * math.Exp(k.undersatComp(p, rsb, f)*(bubblePoint-p))
	}

	if err := checkSeries(out, k.Name(), "formation volume factor"); err != nil {
		return nil, err
	}
	return out, nil
}

/*
compressibilitySeries evaluates the isothermal compressibility over a
pressure series. Below the bubble point the coefficient is assembled from
the evolution of solution gas and the shrinkage of the remaining liquid,

	co = (Bg dRs/dp - dBo/dp) / Bo

with Bg in bbl/scf; at and above the bubble point the kernel's
undersaturated model applies directly. The gas phase is only evaluated when
the series actually reaches below the bubble point.
*/
func compressibilitySeries(k kernel, press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	if err := checkPressure(bubblePoint, k.Name()); err != nil {
		return nil, err
	}
	rsb := k.solubility(bubblePoint, f)

	sat, unsat := partition(press, bubblePoint)
	out := make([]float64, len(press))

	if len(sat) > 0 {
		satPress := make([]float64, len(sat))
		for j, i := range sat {
			satPress[j] = press[i]
		}
		bg, err := gasFVFBbl(satPress, f)
		if err != nil {
			return nil, err
		}
		for j, i := range sat {
			p := press[i]
			rs := k.solubility(p, f)
			bo := k.fvfSat(rs, f)
			out[i] = (bg[j]*k.solubilitySlope(p, rs, f) - k.fvfSlope(p, rs, f)) / bo
		}
	}
	for _, i := range unsat {
		out[i] = k.undersatComp(press[i], rsb, f)
	}

	if err := checkSeries(out, k.Name(), "compressibility"); err != nil {
		return nil, err
	}
	return out, nil
}

// checkGOR guards a solution gas-oil ratio before it is inverted for the
// bubble point.
func checkGOR(rsb float64) error {
	if math.IsNaN(rsb) || !(rsb > 0) {
		return fmt.Errorf("%w: solution GOR %g scf/STB must be positive", pvtprops.ErrDomain, rsb)
	}
	return nil
}

// checkPressure guards a bubble point before it seeds a series evaluation.
func checkPressure(bubblePoint float64, method string) error {
	if math.IsNaN(bubblePoint) || math.IsInf(bubblePoint, 0) || bubblePoint <= 0 {
		return fmt.Errorf("%w: %s bubble point %g psia", pvtprops.ErrNumerical, method, bubblePoint)
	}
	return nil
}

// checkSeries rejects a result series that failed to evaluate, naming the
// first non-finite element.
func checkSeries(vals []float64, method, quantity string) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s %s is %g at element %d",
				pvtprops.ErrNumerical, method, quantity, v, i)
		}
	}
	return nil
}

// gasFVFBbl evaluates the solution-gas formation volume factor in bbl/scf,
// the unit the saturated-compressibility assembly consumes.
func gasFVFBbl(press []float64, f Fluid) ([]float64, error) {
	phase, err := gas.NewPhase(f.GasGravity())
	if err != nil {
		return nil, err
	}
	return phase.FVFBbl(press, f.Temperature())
}
