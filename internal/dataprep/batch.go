package dataprep

import "math/rand"

// Batch is one mini-batch of samples.
type Batch struct {
	X [][]float64
	Y []float64
}

// MiniBatches shuffles the samples and cuts them into batches of the given
// size. The last batch may be smaller than the rest.
func MiniBatches(x [][]float64, y []float64, size int, rng *rand.Rand) []Batch {
	if size <= 0 || len(x) == 0 {
		return nil
	}

	xs, ys := Shuffle(x, y, rng)

	batches := make([]Batch, 0, (len(xs)+size-1)/size)
	for start := 0; start < len(xs); start += size {
		end := min(start+size, len(xs))
		batches = append(batches, Batch{X: xs[start:end], Y: ys[start:end]})
	}
	return batches
}
