// Package units holds the small unit conversions used around the property
// correlations. The correlations themselves are calibrated in oilfield units
// (psia, °F, scf/STB) and keep their own published constants; these helpers
// exist for callers working from gauge pressures or SI inputs.
package units

// Atmospheric pressure in psi, field convention. Gauge readings are shifted
// by this value, matching the 14.7 psi used throughout the published
// correlation datasets.
const Atmosphere = 14.7

// kPa per psi.
const kPaPerPsi = 6.89476

/*
FahrenheitToRankine converts a temperature to absolute degrees Rankine.

	Args:
	    t: temperature, °F

	Returns:
	    temperature, °R
*/
func FahrenheitToRankine(t float64) float64 {
	return t + 459.67
}

// RankineToFahrenheit is the inverse of FahrenheitToRankine.
func RankineToFahrenheit(t float64) float64 {
	return t - 459.67
}

/*
CelsiusToFahrenheit converts a temperature from °C to °F.
*/
func CelsiusToFahrenheit(t float64) float64 {
	return t*9.0/5.0 + 32.0
}

// FahrenheitToCelsius is the inverse of CelsiusToFahrenheit.
func FahrenheitToCelsius(t float64) float64 {
	return (t - 32.0) * 5.0 / 9.0
}

/*
PsigToPsia converts a gauge pressure reading to absolute pressure.

	Args:
	    p: gauge pressure, psig

	Returns:
	    absolute pressure, psia
*/
func PsigToPsia(p float64) float64 {
	return p + Atmosphere
}

// PsiaToPsig is the inverse of PsigToPsia.
func PsiaToPsig(p float64) float64 {
	return p - Atmosphere
}

// PsiaToKPa converts an absolute pressure from psia to kilopascal.
func PsiaToKPa(p float64) float64 {
	return p * kPaPerPsi
}

// KPaToPsia is the inverse of PsiaToKPa.
func KPaToPsia(p float64) float64 {
	return p / kPaPerPsi
}
