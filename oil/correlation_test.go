package oil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"pvtprops"
)

func lightFluid(t *testing.T) Fluid {
	t.Helper()
	f, err := NewFluid(0.851, 47.1, 250)
	require.NoError(t, err)
	return f
}

func heavyFluid(t *testing.T) Fluid {
	t.Helper()
	f, err := NewFluid(0.70, 25.0, 180)
	require.NoError(t, err)
	return f
}

func TestMethodsAreSorted(t *testing.T) {
	assert.Equal(t, []string{
		MethodGlaso, MethodMarhoun, MethodPetroskyFarshad, MethodStanding, MethodVasquezBeggs,
	}, Methods())
}

func TestNewRejectsUnknownMethod(t *testing.T) {
	_, err := New("foo_bar")
	assert.ErrorIs(t, err, pvtprops.ErrUnknownMethod)
	assert.ErrorContains(t, err, "foo_bar")
}

func TestNewIgnoresCase(t *testing.T) {
	corr, err := New("Standing")
	require.NoError(t, err)
	assert.Equal(t, MethodStanding, corr.Name())

	corr, err = New("MARHOUN")
	require.NoError(t, err)
	assert.Equal(t, MethodMarhoun, corr.Name())
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		register(MethodStanding, func() Correlation { return Standing{} })
	})
}

// Inverting a correlation for the bubble point and evaluating its own
// solubility back at that pressure must return the ratio that seeded the
// inversion. This holds per correlation, on both sides of the 30 °API
// coefficient switch.
func TestBubblePointSelfConsistency(t *testing.T) {
	for _, f := range []Fluid{lightFluid(t), heavyFluid(t)} {
		for _, name := range Methods() {
			corr, err := New(name)
			require.NoError(t, err)

			pb, err := corr.BubblePoint(700, f)
			require.NoError(t, err, name)
			assert.Greater(t, pb, 1500.0, name)
			assert.Less(t, pb, 5000.0, name)

			rs, err := corr.GasSolubility([]float64{pb}, pb, f)
			require.NoError(t, err, name)
			assert.InEpsilon(t, 700, rs[0], 1e-4, name)
		}
	}
}

func TestBubblePointRejectsNonPositiveGOR(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)

		_, err = corr.BubblePoint(0, f)
		assert.ErrorIs(t, err, pvtprops.ErrDomain, name)
		_, err = corr.BubblePoint(-50, f)
		assert.ErrorIs(t, err, pvtprops.ErrDomain, name)
	}
}

func TestSolubilityMonotoneBelowAndPinnedAbove(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		pb, err := corr.BubblePoint(700, f)
		require.NoError(t, err)

		press := floats.Span(make([]float64, 13), 200, pb+1200)
		rs, err := corr.GasSolubility(press, pb, f)
		require.NoError(t, err)

		for i := 1; i < len(rs); i++ {
			assert.GreaterOrEqual(t, rs[i], rs[i-1], name)
		}
		for i, p := range press {
			if p >= pb {
				// pinned, bit for bit
				assert.Equal(t, rs[len(rs)-1], rs[i], name)
			}
		}
	}
}

func TestSolubilityContinuousAtBubblePoint(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		pb, err := corr.BubblePoint(700, f)
		require.NoError(t, err)

		rs, err := corr.GasSolubility([]float64{pb * (1 - 1e-9), pb}, pb, f)
		require.NoError(t, err)
		assert.InEpsilon(t, rs[1], rs[0], 1e-6, name)
	}
}

func TestSolubilityRejectsBadBubblePoint(t *testing.T) {
	f := lightFluid(t)
	corr, err := New(MethodStanding)
	require.NoError(t, err)

	_, err = corr.GasSolubility([]float64{1000}, math.NaN(), f)
	assert.ErrorIs(t, err, pvtprops.ErrNumerical)

	_, err = corr.GasSolubility([]float64{1000}, -5, f)
	assert.ErrorIs(t, err, pvtprops.ErrNumerical)
}

func TestFVFContinuousAtBubblePoint(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		pb, err := corr.BubblePoint(700, f)
		require.NoError(t, err)

		press := []float64{pb * (1 - 1e-9), pb}
		rs, err := corr.GasSolubility(press, pb, f)
		require.NoError(t, err)
		bo, err := corr.FVF(press, pb, rs, f)
		require.NoError(t, err)

		assert.InEpsilon(t, bo[1], bo[0], 1e-6, name)
		assert.Greater(t, bo[1], 1.0, name)
	}
}

func TestFVFShrinksAboveBubblePoint(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		pb, err := corr.BubblePoint(700, f)
		require.NoError(t, err)

		press := []float64{pb, pb + 500, pb + 1500}
		rs, err := corr.GasSolubility(press, pb, f)
		require.NoError(t, err)
		bo, err := corr.FVF(press, pb, rs, f)
		require.NoError(t, err)

		assert.Greater(t, bo[0], bo[1], name)
		assert.Greater(t, bo[1], bo[2], name)
	}
}

// Above the bubble point, FVF and Compressibility must describe the same
// fluid: Bo(p) has to equal Bob exp(co(p) (pb - p)) with co(p) taken from
// the compressibility series itself.
func TestFVFIntegratesItsOwnCompressibility(t *testing.T) {
	f := lightFluid(t)
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		pb, err := corr.BubblePoint(700, f)
		require.NoError(t, err)

		press := []float64{pb, pb + 800}
		rs, err := corr.GasSolubility(press, pb, f)
		require.NoError(t, err)
		bo, err := corr.FVF(press, pb, rs, f)
		require.NoError(t, err)
		co, err := corr.Compressibility(press, pb, f)
		require.NoError(t, err)

		want := bo[0] * math.Exp(co[1]*(pb-press[1]))
		assert.InEpsilon(t, want, bo[1], 1e-12, name)
	}
}

func TestFVFRejectsIncongruentSolubilitySeries(t *testing.T) {
	f := lightFluid(t)
	corr, err := New(MethodStanding)
	require.NoError(t, err)

	_, err = corr.FVF([]float64{1000, 2000, 3000}, 2391.7, []float64{300, 400}, f)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestCompressibilityPositiveBothRegimes(t *testing.T) {
	for _, f := range []Fluid{lightFluid(t), heavyFluid(t)} {
		for _, name := range Methods() {
			corr, err := New(name)
			require.NoError(t, err)
			pb, err := corr.BubblePoint(700, f)
			require.NoError(t, err)

			press := []float64{0.5 * pb, 0.9 * pb, pb, 1.3 * pb}
			co, err := corr.Compressibility(press, pb, f)
			require.NoError(t, err, name)

			for i, v := range co {
				assert.Positive(t, v, "%s element %d", name, i)
			}
			// gas evolution makes the saturated branch far stiffer
			assert.Greater(t, co[1], co[3], name)
		}
	}
}

// Central finite differences across every correlation's saturated relations
// pin the analytic derivatives the compressibility assembly relies on.
func TestAnalyticSlopesMatchFiniteDifferences(t *testing.T) {
	f := lightFluid(t)
	const p, h = 1500.0, 0.01
	for _, name := range Methods() {
		corr, err := New(name)
		require.NoError(t, err)
		k, ok := corr.(kernel)
		require.True(t, ok, name)

		rs := k.solubility(p, f)
		num := (k.solubility(p+h, f) - k.solubility(p-h, f)) / (2 * h)
		assert.InEpsilon(t, num, k.solubilitySlope(p, rs, f), 1e-6, name)

		numBo := (k.fvfSat(k.solubility(p+h, f), f) - k.fvfSat(k.solubility(p-h, f), f)) / (2 * h)
		assert.InEpsilon(t, numBo, k.fvfSlope(p, rs, f), 1e-6, name)
	}
}

func TestEmptyPressureSeries(t *testing.T) {
	f := lightFluid(t)
	corr, err := New(MethodMarhoun)
	require.NoError(t, err)

	rs, err := corr.GasSolubility(nil, 2000, f)
	require.NoError(t, err)
	assert.Empty(t, rs)

	bo, err := corr.FVF(nil, 2000, nil, f)
	require.NoError(t, err)
	assert.Empty(t, bo)

	co, err := corr.Compressibility(nil, 2000, f)
	require.NoError(t, err)
	assert.Empty(t, co)
}
