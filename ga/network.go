package ga

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/baldhumanity/ga4nn-go/ga/nn"
)

// NetworkConfig describes a layered network.
//
// Layers lists "kind:count" entries, e.g. "input:2, sigmoid:5, sigmoid:1".
// Connections lists "front<back[:connector]" entries wiring layer front back
// to layer back (indices into Layers); the connector defaults to internal.
// When Connections is empty every layer is fully connected to the previous
// one.
type NetworkConfig struct {
	Layers          []string `ini:"layers" delim:"," yaml:"layers"`
	Connections     []string `ini:"connections" delim:"," yaml:"connections"`
	FeedbackHistory int      `ini:"feedback_history" yaml:"feedback_history"`
	FeedbackStride  int      `ini:"feedback_stride" yaml:"feedback_stride"`
}

// Build constructs the described network with all weights at their
// connector seeds.
func (c NetworkConfig) Build() (*nn.Network, error) {
	if len(c.Layers) < 2 {
		return nil, fmt.Errorf("network needs at least 2 layers, got %d", len(c.Layers))
	}

	net := nn.NewNetwork()
	for i, spec := range c.Layers {
		kind, count, err := parseLayer(spec)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if i == 0 && kind != nn.KindInput {
			return nil, fmt.Errorf("layer 0 must be an input layer, got %s", kind)
		}
		factory, err := nn.FactoryFor(kind, c.FeedbackHistory, c.FeedbackStride)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		l := nn.NewLayer()
		l.AddNodes(factory, count)
		net.AddLayer(l)
	}

	if len(c.Connections) == 0 {
		for i := 1; i < net.LayerCount(); i++ {
			net.Layer(i).ConnectBack(net.Layer(i-1), nn.InternalConnector{})
		}
		return net, nil
	}
	for _, spec := range c.Connections {
		front, back, connector, err := parseConnection(spec)
		if err != nil {
			return nil, err
		}
		if net.Layer(front) == nil || net.Layer(back) == nil {
			return nil, fmt.Errorf("connection '%s' refers to a missing layer", spec)
		}
		net.Layer(front).ConnectBack(net.Layer(back), connector)
	}
	return net, nil
}

func parseLayer(spec string) (string, int, error) {
	kind, countStr, ok := strings.Cut(spec, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid layer spec '%s', want kind:count", spec)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil || count <= 0 {
		return "", 0, fmt.Errorf("invalid node count in layer spec '%s'", spec)
	}
	return strings.ToLower(strings.TrimSpace(kind)), count, nil
}

func parseConnection(spec string) (int, int, nn.Connector, error) {
	pair, name, _ := strings.Cut(spec, ":")
	frontStr, backStr, ok := strings.Cut(pair, "<")
	if !ok {
		return 0, 0, nil, fmt.Errorf("invalid connection spec '%s', want front<back[:connector]", spec)
	}
	front, err := strconv.Atoi(strings.TrimSpace(frontStr))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid front layer in connection '%s': %w", spec, err)
	}
	back, err := strconv.Atoi(strings.TrimSpace(backStr))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid back layer in connection '%s': %w", spec, err)
	}
	connector, err := nn.ConnectorFor(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("connection '%s': %w", spec, err)
	}
	return front, back, connector, nil
}

// NetworkEvaluator scores parameter vectors by loading them into net as its
// trainable weights, resetting its running state and calling loss. All
// genotypes scored by the returned evaluator share net, so their evaluations
// must not interleave.
func NetworkEvaluator(net *nn.Network, loss func(net *nn.Network) float64) Evaluator {
	return EvaluatorFunc(func(params []float64) float64 {
		net.SetWeights(params)
		net.Reset()
		return loss(net)
	})
}
