package oil

import "math"

func init() {
	register(MethodMarhoun, func() Correlation { return Marhoun{} })
}

// Solubility-relation coefficients of Al-Marhoun (1988).
const (
	marhounA = 185.843208
	marhounB = 1.877840
	marhounC = -3.1437
	marhounD = -1.32657
	marhounE = 1.398441
)

/*
Marhoun implements the Middle East correlations of Al-Marhoun (1988), built
on 160 bubble-point measurements of 69 Saudi Arabian crude systems. Above
the bubble point the compressibility follows Vasquez and Beggs (1980).
*/
type Marhoun struct{}

func (Marhoun) Name() string { return MethodMarhoun }

// base groups the fluid-only factor of the solubility relation, so the
// saturated Rs is (base p)^e and the bubble point inverts in closed form.
func (Marhoun) base(f Fluid) float64 {
	return marhounA * math.Pow(f.GasGravity(), marhounB) *
		math.Pow(f.OilGravity(), marhounC) *
		math.Pow(f.Temperature()+460, marhounD)
}

func (m Marhoun) BubblePoint(rsb float64, f Fluid) (float64, error) {
	if err := checkGOR(rsb); err != nil {
		return 0, err
	}
	pb := math.Pow(rsb, 1/marhounE) / m.base(f)
	if err := checkPressure(pb, m.Name()); err != nil {
		return 0, err
	}
	return pb, nil
}

func (m Marhoun) GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return solubilitySeries(m, press, bubblePoint, f)
}

func (m Marhoun) FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	return fvfSeries(m, press, bubblePoint, rs, f)
}

func (m Marhoun) Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return compressibilitySeries(m, press, bubblePoint, f)
}

func (m Marhoun) solubility(press float64, f Fluid) float64 {
	return math.Pow(m.base(f)*press, marhounE)
}

func (Marhoun) solubilitySlope(press, rs float64, f Fluid) float64 {
	return marhounE * rs / press
}

func (Marhoun) fvfSat(rs float64, f Fluid) float64 {
	ft := marhounFVFTerm(rs, f)
	return 0.497069 + 0.862963e-3*(f.Temperature()+460) +
		0.182594e-2*ft + 0.318099e-5*ft*ft
}

func (m Marhoun) fvfSlope(press, rs float64, f Fluid) float64 {
	ft := marhounFVFTerm(rs, f)
	return (0.182594e-2 + 2*0.318099e-5*ft) * (0.74239 * ft / rs) *
		m.solubilitySlope(press, rs, f)
}

func (Marhoun) undersatComp(press, rsb float64, f Fluid) float64 {
	return vasquezBeggsUndersatComp(press, rsb, f)
}

// marhounFVFTerm is the correlating group F of the volume-factor relation.
func marhounFVFTerm(rs float64, f Fluid) float64 {
	return math.Pow(rs, 0.74239) * math.Pow(f.GasGravity(), 0.323294) *
		math.Pow(f.OilGravity(), -1.20204)
}
