package oil

/*
Density evaluates the oil density at one state by mass balance on a
stock-tank barrel: 350 gammaOil pounds of liquid and 0.0764 gammaGas Rs
pounds of dissolved gas occupy 5.615 Bo cubic feet.

    Args:
        rs: gas solubility, scf/STB
        bo: oil formation volume factor, bbl/STB
        f: the crude-oil system

    Returns:
        density, lb/ft³

    Notes:
        The balance holds on both sides of the bubble point. Above it rs
        stays pinned at the bubble-point solubility while bo shrinks, which
        reproduces rhob exp(co (p - pb)) exactly, so no saturation split is
        needed here.
*/
func Density(rs, bo float64, f Fluid) float64 {
	return (350.0*f.OilGravity() + 0.0764*f.GasGravity()*rs) / (5.615 * bo)
}
