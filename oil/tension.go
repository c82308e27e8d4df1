package oil

import "math"

/*
GasOilTension evaluates the gas-oil interfacial tension.

    Args:
        press: pressure, psia
        f: the crude-oil system

    Returns:
        interfacial tension, dyne/cm, floored at 1

    Notes:
        Baker and Swerdloff (1956): dead-oil isotherms at 68 °F and 100 °F
        with linear interpolation between, cut for dissolved gas by the
        pressure factor (1 - 0.024 p^0.45).
*/
func GasOilTension(press float64, f Fluid) float64 {
	s68 := 39.0 - 0.2571*f.API()
	s100 := 37.5 - 0.2571*f.API()

	var dead float64
	switch {
	case f.Temperature() <= 68:
		dead = s68
	case f.Temperature() >= 100:
		dead = s100
	default:
		dead = s68 - (f.Temperature()-68.0)*(s68-s100)/32.0
	}

	sigma := (1.0 - 0.024*math.Pow(press, 0.45)) * dead
	if sigma < 1 {
		return 1
	}
	return sigma
}
