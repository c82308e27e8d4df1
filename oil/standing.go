package oil

import "math"

func init() {
	register(MethodStanding, func() Correlation { return Standing{} })
}

/*
Standing implements the California crude correlations of Standing (1947,
1977): 105 experimentally determined bubble points on 22 hydrocarbon
systems, reported accurate to about 5 percent. Above the bubble point the
compressibility follows Vasquez and Beggs (1980), which Standing never
modeled.
*/
type Standing struct{}

func (Standing) Name() string { return MethodStanding }

/*
BubblePoint inverts the Standing solubility relation.

    Args:
        rsb: solution gas-oil ratio at the bubble point, scf/STB

    Returns:
        bubble-point pressure, psia; ErrDomain for a non-positive rsb,
        ErrNumerical when the inversion leaves the physical range
*/
func (s Standing) BubblePoint(rsb float64, f Fluid) (float64, error) {
	if err := checkGOR(rsb); err != nil {
		return 0, err
	}
	a := 0.00091*f.Temperature() - 0.0125*f.API()
	pb := 18.2 * (math.Pow(rsb/f.GasGravity(), 0.83)*math.Pow(10, a) - 1.4)
	if err := checkPressure(pb, s.Name()); err != nil {
		return 0, err
	}
	return pb, nil
}

func (s Standing) GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return solubilitySeries(s, press, bubblePoint, f)
}

func (s Standing) FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	return fvfSeries(s, press, bubblePoint, rs, f)
}

func (s Standing) Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return compressibilitySeries(s, press, bubblePoint, f)
}

func (Standing) solubility(press float64, f Fluid) float64 {
	x := 0.0125*f.API() - 0.00091*f.Temperature()
	return f.GasGravity() * math.Pow((press/18.2+1.4)*math.Pow(10, x), 1.20482)
}

func (Standing) solubilitySlope(press, rs float64, f Fluid) float64 {
	return 1.20482 * rs / (press + 25.48)
}

// fvfSat follows Standing's chart fit Bob = 0.9759 + 0.00012 CBob^1.2 with
// the correlating number CBob = Rs sqrt(gammaGas/gammaOil) + 1.25 T.
func (Standing) fvfSat(rs float64, f Fluid) float64 {
	cbob := rs*math.Sqrt(f.GasGravity()/f.OilGravity()) + 1.25*f.Temperature()
	return 0.9759 + 0.00012*math.Pow(cbob, 1.2)
}

func (s Standing) fvfSlope(press, rs float64, f Fluid) float64 {
	ratio := math.Sqrt(f.GasGravity() / f.OilGravity())
	cbob := rs*ratio + 1.25*f.Temperature()
	return 0.000144 * math.Pow(cbob, 0.2) * ratio * s.solubilitySlope(press, rs, f)
}

func (Standing) undersatComp(press, rsb float64, f Fluid) float64 {
	return vasquezBeggsUndersatComp(press, rsb, f)
}
