package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputNodeDefaults(t *testing.T) {
	n := NewInputNode()

	assert.Equal(t, 0, n.LinkCount())
	assert.Nil(t, n.Link(0))
	assert.True(t, n.Activated())
	assert.Equal(t, 0.0, n.Output())
	assert.Empty(t, n.Weights())
}

func TestInputNodeSetThenGetOutput(t *testing.T) {
	n := NewInputNode()

	for _, v := range []float64{0.1234, 0.987} {
		n.SetOutput(v)
		n.Compute()
		assert.Equal(t, v, n.Output())
		assert.True(t, n.Activated())
	}
}

func TestSigmoidNodeDefaults(t *testing.T) {
	n := NewSigmoidNode()

	assert.Equal(t, 0, n.LinkCount())
	assert.Nil(t, n.Link(0))
	assert.False(t, n.Activated())
	assert.Equal(t, 0.0, n.Output())
	assert.Empty(t, n.Weights())
}

func TestSigmoidNodeCompute(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		weight float64
		want   float64
	}{
		{"unit", 1.0, 1.0, 0.5},
		{"two", 2.0, 1.0, 2.0 / 3.0},
		{"negative", -1.0, 3.0, -0.75},
		{"zero", 0.0, 1.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewInputNode()
			src.SetOutput(tt.input)

			n := NewSigmoidNode()
			n.CreateLink(src, tt.weight, false)
			require.Equal(t, 1, n.LinkCount())
			assert.Same(t, src, n.Link(0).Source())

			n.Compute()
			assert.InDelta(t, tt.want, n.Output(), 1e-12)
			assert.True(t, n.Activated(), "sigmoid nodes stay activated below 0.5")
		})
	}
}

func TestSigmoidNodeIgnoresSetOutput(t *testing.T) {
	n := NewSigmoidNode()
	n.Compute()
	n.SetOutput(42)
	assert.Equal(t, 0.0, n.Output())
}

func TestLinearNodeWeightedSum(t *testing.T) {
	a, b := NewInputNode(), NewInputNode()
	a.SetOutput(3)
	b.SetOutput(4)

	n := NewLinearNode()
	n.CreateLink(a, 2, false)
	n.CreateLink(b, -0.5, true)
	n.Compute()

	assert.Equal(t, 4.0, n.Output())
	assert.True(t, n.Activated())
}

func TestNodeWeightsSkipConstantLinks(t *testing.T) {
	src := NewInputNode()
	n := NewLinearNode()
	n.CreateLink(src, 1, false)
	n.CreateLink(src, 9, true)
	n.CreateLink(src, 2, false)

	assert.Equal(t, []float64{1, 2}, n.Weights())

	rest := n.SetWeights([]float64{5, 6, 7})
	assert.Equal(t, []float64{7}, rest)
	assert.Equal(t, []float64{5, 6}, n.Weights())
	assert.Equal(t, 9.0, n.Link(1).Weight(), "constant link must keep its weight")
}

func TestNodeSetWeightsShortVector(t *testing.T) {
	src := NewInputNode()
	n := NewLinearNode()
	n.CreateLink(src, 1, false)
	n.CreateLink(src, 2, false)

	rest := n.SetWeights([]float64{8})
	assert.Empty(t, rest)
	assert.Equal(t, []float64{8, 2}, n.Weights())
}

func TestFeedbackNodeDelay(t *testing.T) {
	tests := []struct {
		history int
		want    []float64
	}{
		{0, []float64{1, 2, 3, 4}},
		{1, []float64{0, 1, 2, 3}},
		{2, []float64{0, 0, 1, 2}},
		{3, []float64{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		src := NewInputNode()
		n := NewFeedbackNode(tt.history)
		n.CreateLink(src, 1, true)

		got := []float64{}
		for _, v := range []float64{1, 2, 3, 4} {
			src.SetOutput(v)
			n.Compute()
			got = append(got, n.Output())
		}
		assert.Equal(t, tt.want, got, "history %d", tt.history)
		assert.Equal(t, tt.history, n.History())
	}
}

func TestFeedbackNodeNegativeHistory(t *testing.T) {
	assert.Equal(t, 0, NewFeedbackNode(-3).History())
}

func TestFeedbackFactoryGrowsHistory(t *testing.T) {
	f := NewFeedbackFactory(1, 1)
	for want := 1; want <= 3; want++ {
		n, ok := f.CreateNode().(*FeedbackNode)
		require.True(t, ok)
		assert.Equal(t, want, n.History())
	}

	same := NewFeedbackFactory(2, 0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, same.CreateNode().(*FeedbackNode).History())
	}
}

func TestFactoryFor(t *testing.T) {
	for kind, want := range map[string]Node{
		KindInput:    &InputNode{},
		KindLinear:   &LinearNode{},
		KindSigmoid:  &SigmoidNode{},
		KindFeedback: &FeedbackNode{},
		KindOutput:   &LinearNode{},
	} {
		f, err := FactoryFor(kind, 1, 1)
		require.NoError(t, err)
		assert.IsType(t, want, f.CreateNode(), kind)
	}

	_, err := FactoryFor("tanh", 0, 0)
	assert.Error(t, err)
}
