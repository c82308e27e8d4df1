package oil

import "math"

/*
SaturatedCompressibilityMcCain evaluates the oil compressibility below the
bubble point from McCain, Rollins and Villena-Lanzi (1988), who regressed
ln co on field data directly instead of assembling it from solubility and
volume-factor derivatives. Useful as an independent check on the assembled
values, or when the chosen correlation's derivatives are distrusted.

    Args:
        press: pressure series, psia
        bubblePoint: bubble-point pressure, psia; pass 0 when unknown to
            select the fit that does without it
        rsb: solution gas-oil ratio at the bubble point, scf/STB
        f: the crude-oil system

    Returns:
        co series, 1/psi
*/
func SaturatedCompressibilityMcCain(press []float64, bubblePoint, rsb float64, f Fluid) []float64 {
	out := make([]float64, len(press))
	for i, p := range press {
		var ln float64
		if bubblePoint > 0 {
			ln = -7.573 - 1.450*math.Log(p) + 1.402*math.Log(f.Temperature()+460) +
				0.256*math.Log(f.API()) + 0.449*math.Log(rsb) - 0.383*math.Log(bubblePoint)
		} else {
			ln = -7.633 - 1.497*math.Log(p) + 1.115*math.Log(f.Temperature()+460) +
				0.533*math.Log(f.API()) + 0.184*math.Log(rsb)
		}
		out[i] = math.Exp(ln)
	}
	return out
}
