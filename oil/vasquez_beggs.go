package oil

import "math"

func init() {
	register(MethodVasquezBeggs, func() Correlation { return VasquezBeggs{} })
}

/*
VasquezBeggs implements the correlations of Vasquez and Beggs (1980),
regressed on more than 6000 measurements worldwide with separate coefficient
sets on each side of 30 °API. The regression referred every gas gravity to a
separator pressure of 114.7 psia, so build the fluid with WithSeparator when
the actual separator state is known; without it the raw gravity is used as
is.
*/
type VasquezBeggs struct{}

func (VasquezBeggs) Name() string { return MethodVasquezBeggs }

func (v VasquezBeggs) BubblePoint(rsb float64, f Fluid) (float64, error) {
	if err := checkGOR(rsb); err != nil {
		return 0, err
	}
	c1, c2, c3 := vbSolubilityCoeffs(f.API())
	pb := math.Pow(rsb/(c1*f.CorrectedGasGravity()*math.Exp(c3*f.API()/(f.Temperature()+460))), 1/c2)
	if err := checkPressure(pb, v.Name()); err != nil {
		return 0, err
	}
	return pb, nil
}

func (v VasquezBeggs) GasSolubility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return solubilitySeries(v, press, bubblePoint, f)
}

func (v VasquezBeggs) FVF(press []float64, bubblePoint float64, rs []float64, f Fluid) ([]float64, error) {
	return fvfSeries(v, press, bubblePoint, rs, f)
}

func (v VasquezBeggs) Compressibility(press []float64, bubblePoint float64, f Fluid) ([]float64, error) {
	return compressibilitySeries(v, press, bubblePoint, f)
}

func (VasquezBeggs) solubility(press float64, f Fluid) float64 {
	c1, c2, c3 := vbSolubilityCoeffs(f.API())
	return c1 * f.CorrectedGasGravity() * math.Pow(press, c2) *
		math.Exp(c3*f.API()/(f.Temperature()+460))
}

func (VasquezBeggs) solubilitySlope(press, rs float64, f Fluid) float64 {
	_, c2, _ := vbSolubilityCoeffs(f.API())
	return c2 * rs / press
}

func (VasquezBeggs) fvfSat(rs float64, f Fluid) float64 {
	c1, c2, c3 := vbFVFCoeffs(f.API())
	ratio := f.API() / f.CorrectedGasGravity()
	dt := f.Temperature() - 60
	return 1 + c1*rs + c2*dt*ratio + c3*rs*dt*ratio
}

func (v VasquezBeggs) fvfSlope(press, rs float64, f Fluid) float64 {
	c1, _, c3 := vbFVFCoeffs(f.API())
	ratio := f.API() / f.CorrectedGasGravity()
	dt := f.Temperature() - 60
	return (c1 + c3*dt*ratio) * v.solubilitySlope(press, rs, f)
}

func (VasquezBeggs) undersatComp(press, rsb float64, f Fluid) float64 {
	return vasquezBeggsUndersatComp(press, rsb, f)
}

// solubility and bubble-point coefficients, split at 30 °API
func vbSolubilityCoeffs(api float64) (c1, c2, c3 float64) {
	if api <= 30 {
		return 0.0362, 1.0937, 25.7240
	}
	return 0.0178, 1.1870, 23.9310
}

// formation-volume-factor coefficients, split at 30 °API
func vbFVFCoeffs(api float64) (c1, c2, c3 float64) {
	if api <= 30 {
		return 4.677e-4, 1.751e-5, -1.811e-8
	}
	return 4.670e-4, 1.100e-5, 1.337e-9
}

/*
vasquezBeggsUndersatComp evaluates the undersaturated isothermal
compressibility of Vasquez and Beggs (1980),

	co = (-1433 + 5 Rsb + 17.2 T - 1180 gammaGS + 12.61 API) / (1e5 p)

with gammaGS the separator-corrected gas gravity. It also serves the
correlations that never published an undersaturated model of their own.
Negative values are possible for cold, heavy, gas-poor systems outside the
regression range and are returned as computed.
*/
func vasquezBeggsUndersatComp(press, rsb float64, f Fluid) float64 {
	return (-1433.0 + 5.0*rsb + 17.2*f.Temperature() -
		1180.0*f.CorrectedGasGravity() + 12.61*f.API()) / (1e5 * press)
}
