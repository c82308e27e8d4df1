package oil

import "math"

/*
DeadOilViscosity evaluates the gas-free crude viscosity of Beggs and
Robinson (1975).

    Args:
        f: the crude-oil system

    Returns:
        dead-oil viscosity, cp
*/
func DeadOilViscosity(f Fluid) float64 {
	x := math.Pow(10, 3.0324-0.0203*f.API()) * math.Pow(f.Temperature(), -1.163)
	return math.Pow(10, x) - 1.0
}

/*
SaturatedOilViscosity corrects a dead-oil viscosity for dissolved gas below
the bubble point, after Beggs and Robinson (1975). At rs = 0 the correction
collapses to nearly one and the dead-oil value passes through.

    Args:
        deadVisc: dead-oil viscosity, cp
        rs: gas solubility, scf/STB

    Returns:
        live-oil viscosity, cp
*/
func SaturatedOilViscosity(deadVisc, rs float64) float64 {
	a := 10.715 * math.Pow(rs+100.0, -0.515)
	b := 5.44 * math.Pow(rs+150.0, -0.338)
	return a * math.Pow(deadVisc, b)
}

/*
UndersaturatedOilViscosity raises the bubble-point viscosity with pressure
above the bubble point, after Vasquez and Beggs (1980).

    Args:
        bubbleVisc: live-oil viscosity at the bubble point, cp
        press: pressure, psia
        bubblePoint: bubble-point pressure, psia

    Returns:
        viscosity, cp; equal to bubbleVisc at press == bubblePoint
*/
func UndersaturatedOilViscosity(bubbleVisc, press, bubblePoint float64) float64 {
	m := 2.6 * math.Pow(press, 1.187) * math.Exp(-11.513-8.98e-5*press)
	return bubbleVisc * math.Pow(press/bubblePoint, m)
}
