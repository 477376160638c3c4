// Package nn provides layered networks of simple nodes whose link weights
// can be read and written as one flat vector.
package nn

// Network is an ordered sequence of layers. The first layer receives the
// external inputs; the last layer's outputs are the network's result.
//
// Evaluation follows layer registration order, then node order within each
// layer. Links whose source sits in a later layer therefore read the value
// produced by the previous Compute call, while links to earlier layers read
// the current pass. A Network holds mutable state (weights, node outputs,
// feedback history) and must not be evaluated concurrently.
type Network struct {
	layers []*Layer
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{}
}

// AddLayer appends l as the next layer.
func (n *Network) AddLayer(l *Layer) {
	n.layers = append(n.layers, l)
}

// LayerCount returns the number of layers.
func (n *Network) LayerCount() int { return len(n.layers) }

// Layer returns the layer at index or nil when out of range.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		return nil
	}
	return n.layers[index]
}

// SetWeights loads a flat trainable weight vector, layer by layer, node by
// node, link by link, skipping constant links. Surplus weights are ignored;
// a short vector leaves the remaining links untouched.
func (n *Network) SetWeights(weights []float64) {
	for _, l := range n.layers {
		if len(weights) == 0 {
			return
		}
		weights = l.SetWeights(weights)
	}
}

// Weights returns the flat trainable weight vector in the order SetWeights
// consumes it. Networks with fewer than two layers have no weights.
func (n *Network) Weights() []float64 {
	weights := []float64{}
	if len(n.layers) < 2 {
		return weights
	}
	for _, l := range n.layers {
		weights = append(weights, l.Weights()...)
	}
	return weights
}

// Reset returns every node to its initial state: outputs read by recurrent
// links and feedback histories are zeroed, weights are kept. A subsequent
// sequence of Compute calls then behaves exactly like on a new network.
func (n *Network) Reset() {
	for _, l := range n.layers {
		l.Reset()
	}
}

// Compute feeds input into the first layer, evaluates every layer and
// returns the outputs of the last one. Input values beyond the first
// layer's size are ignored. Networks with fewer than two layers return an
// empty result.
func (n *Network) Compute(input []float64) []float64 {
	if len(n.layers) < 2 {
		return []float64{}
	}
	n.layers[0].SetOutputs(input)
	for _, l := range n.layers {
		l.Compute()
	}
	return n.layers[len(n.layers)-1].Outputs()
}
