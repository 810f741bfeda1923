package dataprep

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ColumnMeans computes per-column means ignoring missing (NaN) cells.
func ColumnMeans(x [][]float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	cols := len(x[0])
	means := make([]float64, cols)
	observed := make([]float64, 0, len(x))
	for j := 0; j < cols; j++ {
		observed = observed[:0]
		for i := range x {
			if !math.IsNaN(x[i][j]) {
				observed = append(observed, x[i][j])
			}
		}
		if len(observed) > 0 {
			means[j] = stat.Mean(observed, nil)
		}
	}
	return means
}

// ImputeMean replaces missing cells in place with the column means of the
// same matrix and returns those means so they can be reapplied to held-out
// data.
func ImputeMean(x [][]float64) []float64 {
	means := ColumnMeans(x)
	ApplyMeans(x, means)
	return means
}

// ApplyMeans replaces missing cells in place using previously computed column means.
func ApplyMeans(x [][]float64, means []float64) {
	for i := range x {
		for j := range x[i] {
			if math.IsNaN(x[i][j]) {
				x[i][j] = means[j]
			}
		}
	}
}
