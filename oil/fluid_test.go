package oil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvtprops"
)

func TestNewFluidRejectsBadInputs(t *testing.T) {
	_, err := NewFluid(0, 47.1, 250)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)

	_, err = NewFluid(0.851, -5, 250)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)

	_, err = NewFluid(0.851, 47.1, -500)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestOilGravityDerivedFromAPI(t *testing.T) {
	f, err := NewFluid(0.851, 10, 250)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f.OilGravity(), 1e-12)
}

func TestCorrectedGasGravityFallsBackToRaw(t *testing.T) {
	f, err := NewFluid(0.851, 47.1, 250)
	require.NoError(t, err)
	assert.Equal(t, f.GasGravity(), f.CorrectedGasGravity())
}

func TestWithSeparatorAtReferencePressure(t *testing.T) {
	f, err := NewFluid(0.851, 47.1, 250)
	require.NoError(t, err)

	fs, err := f.WithSeparator(80, 114.7)
	require.NoError(t, err)
	assert.InDelta(t, 0.851, fs.CorrectedGasGravity(), 1e-12)
}

func TestWithSeparatorAboveReferenceRaisesGravity(t *testing.T) {
	f, err := NewFluid(0.851, 47.1, 250)
	require.NoError(t, err)

	fs, err := f.WithSeparator(80, 200)
	require.NoError(t, err)
	assert.Greater(t, fs.CorrectedGasGravity(), f.GasGravity())
	assert.InDelta(t, 0.8968, fs.CorrectedGasGravity(), 1e-3)

	// the original descriptor is untouched
	assert.Equal(t, 0.851, f.CorrectedGasGravity())
}

func TestWithSeparatorRejectsBadState(t *testing.T) {
	f, err := NewFluid(0.851, 47.1, 250)
	require.NoError(t, err)

	_, err = f.WithSeparator(80, 0)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)

	_, err = f.WithSeparator(-500, 114.7)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}

func TestWithSeparatorRejectsNegativeCorrectedGravity(t *testing.T) {
	f, err := NewFluid(0.9, 60, 200)
	require.NoError(t, err)

	// hot, high-API fluid against a near-vacuum separator drives the
	// correction factor below zero
	_, err = f.WithSeparator(300, 5)
	assert.ErrorIs(t, err, pvtprops.ErrDomain)
}
