package gas

import "math"

/*
The direct method evaluates the natural-gas compressibility factor in closed
form over reduced coordinates, with no iteration on an equation of state. The
explicit form also differentiates cleanly, which is what the oil-phase
compressibility needs: the saturated-oil derivative path consumes dz/dpr
analytically rather than by finite differences.

    Notes:
        Brill and Beggs (1974) explicit fit to the Standing-Katz chart.
        Reliable for 1.15 < Tr < 2.4; the coefficient b is singular at
        Tr = 0.86 and the coefficient a is undefined below Tr = 0.92, so
        evaluation is refused for Tr <= 0.92.
*/

func zCoeffA(tr float64) float64 {
	return 1.39*math.Sqrt(tr-0.92) - 0.36*tr - 0.101
}

func zCoeffB(tr, pr float64) float64 {
	return (0.62-0.23*tr)*pr +
		(0.066/(tr-0.86)-0.037)*pr*pr +
		0.32*math.Pow(pr, 6)/math.Pow(10, 9*(tr-1))
}

func zCoeffC(tr float64) float64 {
	return 0.132 - 0.32*math.Log10(tr)
}

func zCoeffD(tr float64) float64 {
	return math.Pow(10, 0.3106-0.49*tr+0.1824*tr*tr)
}

// zCoeffE is the derivative of zCoeffB with respect to reduced pressure.
func zCoeffE(tr, pr float64) float64 {
	return (0.62 - 0.23*tr) +
		(0.132/(tr-0.86)-0.074)*pr +
		1.92*math.Pow(pr, 5)/math.Pow(10, 9*(tr-1))
}

/*
zDirect returns the compressibility factor at one reduced state.

    Args:
        tr: pseudo-reduced temperature
        pr: pseudo-reduced pressure

    Returns:
        z, dimensionless
*/
func zDirect(tr, pr float64) float64 {
	a := zCoeffA(tr)
	b := zCoeffB(tr, pr)
	c := zCoeffC(tr)
	d := zCoeffD(tr)

	return a + (1-a)*math.Exp(-b) + c*math.Pow(pr, d)
}

/*
zPrime returns the derivative of the compressibility factor with respect to
reduced pressure at one reduced state.

    Args:
        tr: pseudo-reduced temperature
        pr: pseudo-reduced pressure

    Returns:
        dz/dpr, dimensionless
*/
func zPrime(tr, pr float64) float64 {
	a := zCoeffA(tr)
	b := zCoeffB(tr, pr)
	c := zCoeffC(tr)
	d := zCoeffD(tr)
	e := zCoeffE(tr, pr)

	return (a-1)*math.Exp(-b)*e + c*d*math.Pow(pr, d-1)
}
