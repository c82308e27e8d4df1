package oil

import (
	"fmt"
	"math"

	"pvtprops"
)

// APIToSpecificGravity converts a stock-tank oil gravity in °API to specific
// gravity relative to water.
func APIToSpecificGravity(api float64) float64 {
	return 141.5 / (api + 131.5)
}

// SpecificGravityToAPI converts a specific gravity relative to water to °API.
func SpecificGravityToAPI(gravity float64) float64 {
	return 141.5/gravity - 131.5
}

// SpecificGravityFromDensity converts an oil density in lb/ft³ to specific
// gravity relative to water at standard conditions.
func SpecificGravityFromDensity(density float64) float64 {
	return density / 62.4
}

// Separator is one stage of a surface separation train: the gas-oil ratio it
// liberates and the specific gravity of that gas.
type Separator struct {
	GOR     float64 // liberated gas-oil ratio, scf/STB
	Gravity float64 // liberated-gas specific gravity, air = 1
}

/*
WeightedGasGravity averages the stock-tank gas gravity with the gravities
liberated by each separator stage, weighting every stream by its gas-oil
ratio.

    Args:
        stockGOR: stock-tank gas-oil ratio, scf/STB
        stockGravity: stock-tank gas specific gravity, air = 1
        stages: surface separator stages, any number

    Returns:
        the GOR-weighted gas gravity, or ErrDomain when the total gas-oil
        ratio is zero so no average exists
*/
func WeightedGasGravity(stockGOR, stockGravity float64, stages ...Separator) (float64, error) {
	upper := stockGOR * stockGravity
	lower := stockGOR
	for _, s := range stages {
		upper += s.GOR * s.Gravity
		lower += s.GOR
	}
	if lower == 0 {
		return 0, fmt.Errorf("%w: no gas liberated, weighted gravity undefined", pvtprops.ErrDomain)
	}
	return upper / lower, nil
}

/*
CorrectGasGravity adjusts a gas gravity measured at arbitrary separator
conditions to the reference separator pressure of 114.7 psia.

    Args:
        gravity: measured gas specific gravity, air = 1
        api: stock-tank oil gravity, °API
        sepTemp: actual separator temperature, °F
        sepPress: actual separator pressure, psia

    Returns:
        gas gravity referred to 114.7 psia

    Notes:
        Vasquez and Beggs (1980).
*/
func CorrectGasGravity(gravity, api, sepTemp, sepPress float64) float64 {
	return gravity * (1.0 + 5.912e-5*api*sepTemp*math.Log10(sepPress/114.7))
}

/*
StockTankGOR estimates the gas-oil ratio liberated in the stock tank, which
field measurements downstream of the separator miss.

    Args:
        oilGravity: stock-tank oil specific gravity, water = 1
        gasGravity: separator-gas specific gravity, air = 1
        sepTemp: separator temperature, °F
        sepPress: separator pressure, psia

    Returns:
        stock-tank gas-oil ratio, scf/STB
*/
func StockTankGOR(oilGravity, gasGravity, sepTemp, sepPress float64) float64 {
	return math.Exp(0.3818 - 5.506*math.Log(oilGravity) + 2.902*math.Log(gasGravity) +
		1.327*math.Log(sepPress) - 0.7355*math.Log(sepTemp))
}

/*
SolubilityFromPVT back-calculates the gas solubility from measured oil
density and formation volume factor, by material balance on a stock-tank
barrel of oil and the gas it liberates.

    Args:
        density: oil density at the measured state, lb/ft³
        bo: oil formation volume factor at the same state, bbl/STB
        api: stock-tank oil gravity, °API
        gasGravity: solution-gas specific gravity, air = 1

    Returns:
        gas solubility, scf/STB
*/
func SolubilityFromPVT(density, bo, api, gasGravity float64) float64 {
	gammaOil := APIToSpecificGravity(api)
	return (bo*density - 62.4*gammaOil) / (0.0136 * gasGravity)
}
