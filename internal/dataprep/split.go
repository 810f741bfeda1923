package dataprep

import "math/rand"

// TrainTestSplit splits x, y into train and test sets by ratio using a
// seeded shuffle, so experiment runs are reproducible.
func TrainTestSplit(x [][]float64, y []float64, testRatio float64, seed int64) (xTrain, xTest [][]float64, yTrain, yTest []float64) {
	n := len(x)
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			xTest = append(xTest, x[idx])
			yTest = append(yTest, y[idx])
		} else {
			xTrain = append(xTrain, x[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return
}

// Shuffle shuffles x and y in unison.
func Shuffle(x [][]float64, y []float64, rng *rand.Rand) ([][]float64, []float64) {
	n := len(x)
	indices := rng.Perm(n)
	xShuf := make([][]float64, n)
	yShuf := make([]float64, n)
	for i, idx := range indices {
		xShuf[i] = x[idx]
		yShuf[i] = y[idx]
	}
	return xShuf, yShuf
}

// FloatLabels converts 0/1 integer labels to float64 training targets.
func FloatLabels(labels []int) []float64 {
	out := make([]float64, len(labels))
	for i, label := range labels {
		out[i] = float64(label)
	}
	return out
}
