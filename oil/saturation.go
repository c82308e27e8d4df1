package oil

// State labels which side of the bubble point a pressure lies on.
type State string

const (
	Saturated      State = "saturated"
	Undersaturated State = "undersaturated"
)

/*
StateAt classifies a pressure against the bubble point.

    Args:
        press: pressure, psia
        bubblePoint: bubble-point pressure, psia

    Returns:
        Saturated below the bubble point, Undersaturated at or above it

    Notes:
        The bubble point itself belongs to the undersaturated branch: the
        last bubble of free gas dissolves exactly there, and the pinned
        solubility rsb matches the saturated value, so both branches agree
        at the boundary.
*/
func StateAt(press, bubblePoint float64) State {
	if press < bubblePoint {
		return Saturated
	}
	return Undersaturated
}

// partition splits the indices of a pressure series by saturation state.
// Every index lands in exactly one of the two groups, in series order.
func partition(press []float64, bubblePoint float64) (sat, unsat []int) {
	for i, p := range press {
		if StateAt(p, bubblePoint) == Saturated {
			sat = append(sat, i)
		} else {
			unsat = append(unsat, i)
		}
	}
	return sat, unsat
}

// evalSplit fills one output series from two scalar property models, routing
// each pressure to the model for its saturation state.
func evalSplit(press []float64, sat, unsat []int, onSat, onUnsat func(float64) float64) []float64 {
	out := make([]float64, len(press))
	for _, i := range sat {
		out[i] = onSat(press[i])
	}
	for _, i := range unsat {
		out[i] = onUnsat(press[i])
	}
	return out
}
