package classify

// Classifier fits on labeled feature rows and scores new rows with
// positive-class probabilities.
type Classifier interface {
	Fit(x [][]float64, y []float64) error
	PredictProba(x [][]float64) []float64
}
