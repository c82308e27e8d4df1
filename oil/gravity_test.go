package oil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pvtprops"
)

func TestAPISpecificGravityRoundTrip(t *testing.T) {
	for _, api := range []float64{8, 15, 25, 30, 40, 47.1, 55} {
		assert.InDelta(t, api, SpecificGravityToAPI(APIToSpecificGravity(api)), 1e-12)
	}
}

func TestTenAPIIsWater(t *testing.T) {
	assert.InDelta(t, 1.0, APIToSpecificGravity(10), 1e-12)
	assert.InDelta(t, 1.0, SpecificGravityFromDensity(62.4), 1e-12)
}

func TestWeightedGasGravityThreeStageTrain(t *testing.T) {
	got, err := WeightedGasGravity(58, 1.296,
		Separator{GOR: 724, Gravity: 0.743},
		Separator{GOR: 202, Gravity: 0.956},
	)
	assert.NoError(t, err)
	assert.InDelta(t, 0.81932, got, 1e-5)
}

func TestWeightedGasGravityStockTankOnly(t *testing.T) {
	got, err := WeightedGasGravity(100, 0.9)
	assert.NoError(t, err)
	assert.InDelta(t, 0.9, got, 1e-12)
}

func TestWeightedGasGravityNoGasReported(t *testing.T) {
	_, err := WeightedGasGravity(0, 1.296)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)

	_, err = WeightedGasGravity(0, 1.296, Separator{GOR: 0, Gravity: 0.743})
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestCorrectGasGravityAtReferencePressure(t *testing.T) {
	assert.InDelta(t, 0.851, CorrectGasGravity(0.851, 47.1, 80, 114.7), 1e-15)
}

func TestCorrectGasGravityBelowReferenceShrinks(t *testing.T) {
	got := CorrectGasGravity(0.8, 35, 100, 60)
	assert.Less(t, got, 0.8)
	assert.InDelta(t, 0.7534, got, 1e-3)
}

func TestStockTankGORTypicalSeparator(t *testing.T) {
	got := StockTankGOR(0.80, 0.75, 80, 100)
	assert.InDelta(t, 39.0, got, 0.05)
}

func TestSolubilityFromPVTMaterialBalance(t *testing.T) {
	got := SolubilityFromPVT(38.13, 1.528, 47.1, 0.851)
	assert.InDelta(t, 762.5, got, 0.1)
}
