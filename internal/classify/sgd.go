package classify

import "gonum.org/v1/gonum/floats"

// sgd applies plain stochastic gradient descent updates in place.
type sgd struct {
	learningRate float64
}

func (o sgd) step(weights, grads []float64) {
	floats.AddScaled(weights, -o.learningRate, grads)
}
