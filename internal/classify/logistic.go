package classify

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/ChocolateDave/ml-notebook/internal/dataprep"
)

// LogisticRegression is a binary linear classifier trained with mini-batch
// SGD on the cross-entropy loss. It is the deliberately thin model layer of
// the experiment pipeline.
type LogisticRegression struct {
	W []float64 // weights
	B float64   // bias

	LearningRate float64
	Epochs       int
	BatchSize    int

	// OnEpoch, when set, observes the mean training loss after each epoch.
	OnEpoch func(epoch int, loss float64)

	rng *rand.Rand
}

// NewLogisticRegression initializes a model for the given feature count.
// Weights start at small random values to break symmetry.
func NewLogisticRegression(numFeatures int, learningRate float64, epochs, batchSize int, seed int64) *LogisticRegression {
	rng := rand.New(rand.NewSource(seed))
	w := make([]float64, numFeatures)
	for i := range w {
		w[i] = rng.NormFloat64() * 0.01
	}
	return &LogisticRegression{
		W:            w,
		LearningRate: learningRate,
		Epochs:       epochs,
		BatchSize:    batchSize,
		rng:          rng,
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// PredictProba returns the positive-class probability for each input row.
func (m *LogisticRegression) PredictProba(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = sigmoid(floats.Dot(m.W, row) + m.B)
	}
	return out
}

// Predict thresholds the probabilities at 0.5.
func (m *LogisticRegression) Predict(x [][]float64) []int {
	proba := m.PredictProba(x)
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

// Fit trains the model with mini-batch gradient descent on the given samples.
func (m *LogisticRegression) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return errors.New("no training samples")
	}
	if len(x) != len(y) {
		return fmt.Errorf("features/labels length mismatch: %d != %d", len(x), len(y))
	}
	if len(x[0]) != len(m.W) {
		return fmt.Errorf("feature count mismatch between model and data: %d != %d", len(m.W), len(x[0]))
	}

	opt := sgd{learningRate: m.LearningRate}
	grad := make([]float64, len(m.W))

	for epoch := 0; epoch < m.Epochs; epoch++ {
		epochLoss := 0.0
		seen := 0

		for _, batch := range dataprep.MiniBatches(x, y, m.BatchSize, m.rng) {
			proba := m.PredictProba(batch.X)
			loss, dy := crossEntropy(batch.Y, proba)
			epochLoss += loss * float64(len(batch.Y))
			seen += len(batch.Y)

			for j := range grad {
				grad[j] = 0
			}
			gradB := 0.0
			for i, row := range batch.X {
				floats.AddScaled(grad, dy[i], row)
				gradB += dy[i]
			}

			opt.step(m.W, grad)
			m.B -= opt.learningRate * gradB
		}

		if m.OnEpoch != nil && seen > 0 {
			m.OnEpoch(epoch, epochLoss/float64(seen))
		}
	}

	return nil
}

// crossEntropy returns the mean binary cross-entropy loss and its gradient
// with respect to the predictions. Predictions are clamped away from 0 and 1
// to keep the logarithms finite.
func crossEntropy(yTrue, yPred []float64) (float64, []float64) {
	n := len(yTrue)
	s := 0.0
	grad := make([]float64, n)
	for i := 0; i < n; i++ {
		p := math.Min(math.Max(yPred[i], 1e-12), 1-1e-12)
		y := yTrue[i]
		s += -(y*math.Log(p) + (1-y)*math.Log(1-p))
		grad[i] = (p - y) / float64(n)
	}
	return s / float64(n), grad
}
