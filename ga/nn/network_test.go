package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newNetwork builds a fully connected network with the given layer kinds
// and sizes.
func newNetwork(t *testing.T, factories []NodeFactory, sizes []int) *Network {
	t.Helper()
	require.Equal(t, len(factories), len(sizes))

	net := NewNetwork()
	var prev *Layer
	for i, f := range factories {
		l := NewLayer()
		l.AddNodes(f, sizes[i])
		if prev != nil {
			l.ConnectBack(prev, InternalConnector{})
		}
		net.AddLayer(l)
		prev = l
	}
	return net
}

func TestNetworkFeedForward(t *testing.T) {
	net := newNetwork(t, []NodeFactory{InputFactory, OutputFactory}, []int{2, 1})
	net.SetWeights([]float64{1, 1})

	assert.Equal(t, []float64{7.0}, net.Compute([]float64{3, 4}))
}

func TestNetworkSigmoidSquash(t *testing.T) {
	net := newNetwork(t,
		[]NodeFactory{InputFactory, LinearFactory, SigmoidFactory},
		[]int{1, 1, 1})
	net.SetWeights([]float64{2, 1})

	out := net.Compute([]float64{1})
	require.Len(t, out, 1)
	assert.InDelta(t, 2.0/3.0, out[0], 1e-12)
}

func TestNetworkInternalConnectorSeedsZero(t *testing.T) {
	net := newNetwork(t, []NodeFactory{InputFactory, LinearFactory}, []int{2, 3})

	assert.Equal(t, make([]float64, 6), net.Weights())
	assert.Equal(t, []float64{0, 0, 0}, net.Compute([]float64{1, 1}))
	assert.Equal(t, 6, net.Layer(1).ConnectionCount())
}

func TestNetworkTooFewLayers(t *testing.T) {
	empty := NewNetwork()
	assert.Empty(t, empty.Compute([]float64{1}))
	assert.Empty(t, empty.Weights())

	single := newNetwork(t, []NodeFactory{InputFactory}, []int{2})
	assert.Empty(t, single.Compute([]float64{1, 2}))
	assert.Empty(t, single.Weights())
}

func TestNetworkInputTruncation(t *testing.T) {
	net := newNetwork(t, []NodeFactory{InputFactory, LinearFactory}, []int{2, 1})
	net.SetWeights([]float64{1, 1})

	assert.Equal(t, []float64{3}, net.Compute([]float64{1, 2, 100}))
	// A short input leaves the second input at its previous value.
	assert.Equal(t, []float64{7}, net.Compute([]float64{5}))
}

func TestNetworkOutOfRange(t *testing.T) {
	net := newNetwork(t, []NodeFactory{InputFactory, LinearFactory}, []int{1, 1})

	assert.Nil(t, net.Layer(-1))
	assert.Nil(t, net.Layer(2))
	assert.Nil(t, net.Layer(0).Node(1))
	assert.Nil(t, net.Layer(1).Connection(1))
	assert.NotNil(t, net.Layer(1).Connection(0))
}

func TestNetworkWeightsRoundTrip(t *testing.T) {
	net := newNetwork(t,
		[]NodeFactory{InputFactory, SigmoidFactory, LinearFactory},
		[]int{2, 3, 2})
	// Wire a constant delay line back from the output layer.
	net.Layer(1).ConnectBack(net.Layer(2), FeedbackConnector{})

	nonConstant := 0
	for i := 0; i < net.LayerCount(); i++ {
		l := net.Layer(i)
		for j := 0; j < l.ConnectionCount(); j++ {
			if !l.Connection(j).Link.Constant() {
				nonConstant++
			}
		}
	}
	require.Equal(t, 2*3+3*2, nonConstant)

	weights := make([]float64, nonConstant)
	for i := range weights {
		weights[i] = float64(i) + 0.5
	}
	net.SetWeights(weights)
	assert.Equal(t, weights, net.Weights())

	net.SetWeights(net.Weights())
	assert.Equal(t, weights, net.Weights())

	for j := 0; j < net.Layer(1).ConnectionCount(); j++ {
		c := net.Layer(1).Connection(j)
		if c.Link.Constant() {
			assert.Equal(t, 1.0, c.Link.Weight())
		}
	}
}

func TestNetworkRecurrentReadsPreviousPass(t *testing.T) {
	net := newNetwork(t,
		[]NodeFactory{InputFactory, LinearFactory, LinearFactory},
		[]int{1, 1, 1})
	net.Layer(1).ConnectBack(net.Layer(2), FeedbackConnector{})
	require.Len(t, net.Weights(), 2)
	net.SetWeights([]float64{1, 1})

	// hidden = input + previous output, output = hidden.
	for _, want := range []float64{1, 2, 3, 4} {
		assert.Equal(t, []float64{want}, net.Compute([]float64{1}))
	}
}

func TestNetworkFeedbackLayerDelay(t *testing.T) {
	net := NewNetwork()
	in := NewLayer()
	in.AddNodes(InputFactory, 2)
	delay := NewLayer()
	delay.AddNodes(NewFeedbackFactory(1, 1), 2)
	delay.ConnectBack(in, FeedbackConnector{})
	net.AddLayer(in)
	net.AddLayer(delay)

	assert.Empty(t, net.Weights())
	assert.Equal(t, 2, delay.ConnectionCount())

	assert.Equal(t, []float64{0, 0}, net.Compute([]float64{1, 10}))
	assert.Equal(t, []float64{1, 0}, net.Compute([]float64{2, 20}))
	assert.Equal(t, []float64{2, 10}, net.Compute([]float64{3, 30}))
}

func TestNetworkRecurrent(t *testing.T) {
	ff := newNetwork(t, []NodeFactory{InputFactory, LinearFactory, LinearFactory}, []int{2, 2, 1})
	assert.False(t, ff.Recurrent())
	assert.Equal(t, 5, ff.Graph().Nodes().Len())
	assert.Equal(t, 2*2+2*1, ff.Graph().Edges().Len())

	rec := newNetwork(t, []NodeFactory{InputFactory, LinearFactory, LinearFactory}, []int{1, 1, 1})
	rec.Layer(1).ConnectBack(rec.Layer(2), FeedbackConnector{})
	assert.True(t, rec.Recurrent())

	self := newNetwork(t, []NodeFactory{InputFactory, LinearFactory}, []int{1, 1})
	n := self.Layer(1).Node(0)
	n.CreateLink(n, 1, true)
	assert.True(t, self.Recurrent())
}

func TestNetworkResetClearsState(t *testing.T) {
	net := newNetwork(t,
		[]NodeFactory{InputFactory, LinearFactory, SigmoidFactory},
		[]int{1, 1, 1})
	net.Layer(1).ConnectBack(net.Layer(2), InternalConnector{})
	delay := NewLayer()
	delay.AddNodes(NewFeedbackFactory(2, 0), 1)
	delay.ConnectBack(net.Layer(1), FeedbackConnector{})
	net.AddLayer(delay)
	net.SetWeights([]float64{1, 1, 1})

	run := func() [][]float64 {
		var outs [][]float64
		for i := 0; i < 4; i++ {
			outs = append(outs, net.Compute([]float64{1}))
		}
		return outs
	}

	first := run()
	net.Reset()
	assert.False(t, net.Layer(2).Node(0).Activated())
	assert.Equal(t, 0.0, net.Layer(2).Node(0).Output())
	assert.Equal(t, 0.0, net.Layer(0).Node(0).Output())
	assert.Equal(t, first, run())

	// Weights survive a reset.
	assert.Equal(t, []float64{1, 1, 1}, net.Weights())
}

func TestNetworkGraphSharedLayer(t *testing.T) {
	net := newNetwork(t, []NodeFactory{InputFactory, LinearFactory}, []int{2, 1})
	net.AddLayer(net.Layer(1))

	assert.NotPanics(t, func() {
		assert.Equal(t, 3, net.Graph().Nodes().Len())
	})
	assert.False(t, net.Recurrent())
}
