package classify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChocolateDave/ml-notebook/internal/metrics"
)

// separableBlobs generates two linearly separable clusters in two dimensions.
func separableBlobs(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			x[i] = []float64{rng.NormFloat64()*0.5 + 2, rng.NormFloat64()*0.5 + 2}
			y[i] = 1
		} else {
			x[i] = []float64{rng.NormFloat64()*0.5 - 2, rng.NormFloat64()*0.5 - 2}
			y[i] = 0
		}
	}
	return x, y
}

func TestLogisticRegression_Fit(t *testing.T) {
	x, y := separableBlobs(200, 11)

	model := NewLogisticRegression(2, 0.5, 100, 32, 11)

	var losses []float64
	model.OnEpoch = func(epoch int, loss float64) {
		losses = append(losses, loss)
	}

	require.NoError(t, model.Fit(x, y))
	require.Len(t, losses, 100)
	assert.Less(t, losses[len(losses)-1], losses[0], "training loss should decrease")

	yTrue := make([]int, len(y))
	for i, v := range y {
		yTrue[i] = int(v)
	}
	accuracy := metrics.Accuracy(yTrue, model.Predict(x))
	assert.Greater(t, accuracy, 0.95, "separable clusters should be learned")
}

func TestLogisticRegression_PredictProbaRange(t *testing.T) {
	x, y := separableBlobs(50, 3)

	model := NewLogisticRegression(2, 0.1, 10, 16, 3)
	require.NoError(t, model.Fit(x, y))

	for _, p := range model.PredictProba(x) {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestLogisticRegression_FitErrors(t *testing.T) {
	model := NewLogisticRegression(2, 0.1, 5, 4, 1)

	assert.Error(t, model.Fit(nil, nil))
	assert.Error(t, model.Fit([][]float64{{1, 2}}, []float64{1, 0}))
	assert.Error(t, model.Fit([][]float64{{1, 2, 3}}, []float64{1}))
}
