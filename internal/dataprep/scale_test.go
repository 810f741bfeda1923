package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler(t *testing.T) {
	x := [][]float64{
		{1, 5, 7},
		{3, 5, 11},
	}

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(x)
	require.NoError(t, err)

	assert.Equal(t, 2.0, scaler.Mean[0])
	assert.Equal(t, 1.0, scaler.Std[1], "constant columns fall back to unit scale")

	// Two symmetric values standardize to opposite signs.
	assert.InDelta(t, -scaled[1][0], scaled[0][0], 1e-12)
	assert.Equal(t, 0.0, scaled[0][1])
	assert.Equal(t, 0.0, scaled[1][1])
}

func TestStandardScaler_TransformHeldOut(t *testing.T) {
	scaler := NewStandardScaler()
	_, err := scaler.FitTransform([][]float64{{0}, {2}, {4}})
	require.NoError(t, err)

	out := scaler.Transform([][]float64{{2}})
	assert.Equal(t, 0.0, out[0][0], "held-out value at the training mean maps to zero")
}

func TestStandardScaler_FitEmpty(t *testing.T) {
	err := NewStandardScaler().Fit(nil)
	assert.Error(t, err)
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	x := [][]float64{{1, 2}}
	out := NewStandardScaler().Transform(x)
	assert.Equal(t, x, out, "unfitted scaler passes data through")
}
