package oil

import "math"

func init() {
	register(MethodGlaso, func() Correlation { return Glaso{} })
}

/*
Glaso implements the North Sea correlations of Glaso (1980), developed on 45
oil samples, most of them from the Norwegian continental shelf. Above the
bubble point the compressibility follows Vasquez and Beggs (1980).

The solubility relation involves sqrt(14.1811 - 3.3093 log10 p), which runs
out of domain near 19300 psia; saturated evaluations beyond that surface as
ErrNumerical.
*/
type Glaso struct{}

func (Glaso) Name() string { return MethodGlaso }

func (g Glaso) BubblePoint(rsb float64, f Fluid) (float64, error) {
	if err := checkGOR(rsb); err != nil {
		return 0, err
	}

	// correlating number pb*, then the published quadratic in log10 pb*
	star := math.Pow(rsb/f.GasGravity(), 1/1.2255) *
		math.Pow(f.Temperature(), 0.172) / math.Pow(f.API(), 0.989)
	x := math.Log10(star)

	pb := math.Pow(10, (14.1811-(2.8869-x)*(2.8869-x))/3.3093)
	if err := checkPressure(pb, g.Name()); err != nil {
		return 0, err
	}
	return pb, nil
}

func (g Glaso) GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return solubilitySeries(g, press, bubblePoint, f)
}

func (g Glaso) FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	return fvfSeries(g, press, bubblePoint, rs, f)
}

func (g Glaso) Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return compressibilitySeries(g, press, bubblePoint, f)
}

func (Glaso) solubility(press float64, f Fluid) float64 {
	x := 2.8869 - math.Sqrt(14.1811-3.3093*math.Log10(press))
	return f.GasGravity() * math.Pow(
		math.Pow(f.API(), 0.989)/math.Pow(f.Temperature(), 0.172)*math.Pow(10, x), 1.2255)
}

func (Glaso) solubilitySlope(press, rs float64, f Fluid) float64 {
	s := math.Sqrt(14.1811 - 3.3093*math.Log10(press))
	return 1.2255 * 3.3093 * rs / (2 * s * press)
}

func (Glaso) fvfSat(rs float64, f Fluid) float64 {
	star := rs*math.Pow(f.GasGravity()/f.OilGravity(), 0.526) + 0.968*f.Temperature()
	lb := math.Log10(star)
	return 1 + math.Pow(10, -6.58511+2.91329*lb-0.27683*lb*lb)
}

func (g Glaso) fvfSlope(press, rs float64, f Fluid) float64 {
	ratio := math.Pow(f.GasGravity()/f.OilGravity(), 0.526)
	star := rs*ratio + 0.968*f.Temperature()
	lb := math.Log10(star)
	a := math.Pow(10, -6.58511+2.91329*lb-0.27683*lb*lb)
	return a * (2.91329 - 0.55366*lb) / star * ratio * g.solubilitySlope(press, rs, f)
}

func (Glaso) undersatComp(press, rsb float64, f Fluid) float64 {
	return vasquezBeggsUndersatComp(press, rsb, f)
}
