package oil

import "math"

func init() {
	register(MethodPetroskyFarshad, func() Correlation { return PetroskyFarshad{} })
}

/*
PetroskyFarshad implements the Gulf of Mexico correlations of Petrosky and
Farshad (1993), fitted to 81 laboratory fluid studies of offshore Texas and
Louisiana crudes. Unlike the other correlations here it carries an
undersaturated compressibility model of its own, so nothing is borrowed
above the bubble point.
*/
type PetroskyFarshad struct{}

func (PetroskyFarshad) Name() string { return MethodPetroskyFarshad }

// tempGravityTerm is the 10^x factor shared by the solubility relation and
// its bubble-point inverse.
func (PetroskyFarshad) tempGravityTerm(f Fluid) float64 {
	x := 7.916e-4*math.Pow(f.API(), 1.5410) - 4.561e-5*math.Pow(f.Temperature(), 1.3911)
	return math.Pow(10, x)
}

func (pf PetroskyFarshad) BubblePoint(rsb float64, f Fluid) (float64, error) {
	if err := checkGOR(rsb); err != nil {
		return 0, err
	}
	pb := 112.727 * (math.Pow(rsb, 0.577421)/
		(math.Pow(f.GasGravity(), 0.8439)*pf.tempGravityTerm(f)) - 12.340)
	if err := checkPressure(pb, pf.Name()); err != nil {
		return 0, err
	}
	return pb, nil
}

func (pf PetroskyFarshad) GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return solubilitySeries(pf, press, bubblePoint, f)
}

func (pf PetroskyFarshad) FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	return fvfSeries(pf, press, bubblePoint, rs, f)
}

func (pf PetroskyFarshad) Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return compressibilitySeries(pf, press, bubblePoint, f)
}

func (pf PetroskyFarshad) solubility(press float64, f Fluid) float64 {
	return math.Pow((press/112.727+12.340)*
		math.Pow(f.GasGravity(), 0.8439)*pf.tempGravityTerm(f), 1.73184)
}

func (PetroskyFarshad) solubilitySlope(press, rs float64, f Fluid) float64 {
	return 1.73184 * rs / (press + 112.727*12.340)
}

func (PetroskyFarshad) fvfSat(rs float64, f Fluid) float64 {
	ft := pfGravityTerm(rs, f) + 0.24626*math.Pow(f.Temperature(), 0.5371)
	return 1.0113 + 7.2046e-5*math.Pow(ft, 3.0936)
}

func (pf PetroskyFarshad) fvfSlope(press, rs float64, f Fluid) float64 {
	gt := pfGravityTerm(rs, f)
	ft := gt + 0.24626*math.Pow(f.Temperature(), 0.5371)
	return 7.2046e-5 * 3.0936 * math.Pow(ft, 2.0936) *
		(0.3738 * gt / rs) * pf.solubilitySlope(press, rs, f)
}

func (PetroskyFarshad) undersatComp(press, rsb float64, f Fluid) float64 {
	return 1.705e-7 * math.Pow(rsb, 0.69357) * math.Pow(f.GasGravity(), 0.1885) *
		math.Pow(f.API(), 0.3272) * math.Pow(f.Temperature(), 0.6729) *
		math.Pow(press, -0.5906)
}

// pfGravityTerm is the solubility-gravity group of the volume-factor
// correlating number.
func pfGravityTerm(rs float64, f Fluid) float64 {
	return math.Pow(rs, 0.3738) * math.Pow(f.GasGravity(), 0.2914) /
		math.Pow(f.OilGravity(), 0.6265)
}
