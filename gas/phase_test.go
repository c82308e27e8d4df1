package gas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvtprops"
)

func TestNewPhaseCarriesGravity(t *testing.T) {
	g, err := NewPhase(0.65)
	require.NoError(t, err)

	assert.InDelta(t, 0.65, g.Gravity(), 1e-12)
}

func TestNewPhaseRejectsBadGravity(t *testing.T) {
	for _, gravity := range []float64{0.0, -0.7} {
		_, err := NewPhase(gravity)
		assert.ErrorIs(t, err, pvtprops.ErrDomain)
	}
}

func TestPseudoCritical(t *testing.T) {
	ppc, tpc := PseudoCritical(0.7)

	assert.InDelta(t, 669.125, ppc, 1e-9)
	assert.InDelta(t, 389.375, tpc, 1e-9)
}

func TestMolecularWeightRoundTrip(t *testing.T) {
	assert.InDelta(t, 20.2748, MolecularWeight(0.7), 1e-9)
	assert.InDelta(t, 0.7, SpecificGravity(MolecularWeight(0.7)), 1e-12)
}

func TestZFactorApproachesIdealAtLowPressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	z, err := g.ZFactor([]float64{14.7}, 150.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, z[0], 0.01)
}

func TestZFactorTypicalReservoirState(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	z, err := g.ZFactor([]float64{2000.0}, 150.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.81, z[0], 0.02)
}

func TestZFactorBelowReducedTemperatureRange(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	_, err = g.ZFactor([]float64{1000.0}, -110.0)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestZFactorRejectsNonPositivePressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	_, err = g.ZFactor([]float64{1000.0, 0.0}, 150.0)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestFVFDecreasesWithPressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	press := []float64{500.0, 1000.0, 2000.0, 4000.0}
	bg, err := g.FVF(press, 150.0)
	require.NoError(t, err)

	for i := 1; i < len(bg); i++ {
		assert.Less(t, bg[i], bg[i-1], "Bg must shrink as the gas is compressed")
	}
	assert.InDelta(t, 0.00696, bg[2], 2e-4)
}

func TestFVFBblConsistentWithFVF(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	press := []float64{800.0, 2500.0}
	ft3, err := g.FVF(press, 150.0)
	require.NoError(t, err)
	bbl, err := g.FVFBbl(press, 150.0)
	require.NoError(t, err)

	for i := range press {
		assert.InDelta(t, ft3[i]/5.615, bbl[i], 1e-12)
	}
}

func TestExpansionFactorIsReciprocalOfFVF(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	press := []float64{500.0, 1500.0, 3000.0}
	bg, err := g.FVF(press, 150.0)
	require.NoError(t, err)
	eg, err := g.ExpansionFactor(press, 150.0)
	require.NoError(t, err)

	for i := range press {
		assert.InDelta(t, 1.0, bg[i]*eg[i], 1e-12)
	}
}

func TestDensityIncreasesWithPressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	press := []float64{500.0, 1000.0, 2000.0, 4000.0}
	rho, err := g.Density(press, 150.0)
	require.NoError(t, err)

	for i := 1; i < len(rho); i++ {
		assert.Greater(t, rho[i], rho[i-1])
	}
	assert.InDelta(t, 7.67, rho[2], 0.1)
}

func TestCompressibilityNearIdealAtLowPressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	cg, err := g.Compressibility([]float64{100.0}, 150.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/100.0, cg[0], 0.05)
}

func TestCompressibilityDecreasesWithPressure(t *testing.T) {
	g, err := NewPhase(0.7)
	require.NoError(t, err)

	press := []float64{200.0, 800.0, 2000.0, 5000.0}
	cg, err := g.Compressibility(press, 150.0)
	require.NoError(t, err)

	for i := 1; i < len(cg); i++ {
		assert.Less(t, cg[i], cg[i-1])
	}
	for _, c := range cg {
		assert.Positive(t, c)
	}
}
