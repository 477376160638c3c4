package nn

import "math"

// ActivationType defines the squashing applied to a node's weighted sum.
type ActivationType func(x float64) float64

// Identity passes the weighted sum through unchanged (linear nodes).
func Identity(x float64) float64 {
	return x
}

// Squash maps x into (-1, 1) as x/(1+|x|). This is the bounded curve used by
// sigmoid nodes; it is not the logistic function.
func Squash(x float64) float64 {
	return x / (1 + math.Abs(x))
}
