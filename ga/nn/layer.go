package nn

// Connection records which link belongs to which front node.
type Connection struct {
	Link  *Link
	Front Node
}

// Layer is an ordered group of nodes together with the links connecting it
// to the layer behind it. Its structure is fixed once built; only weights
// change afterwards.
type Layer struct {
	nodes       []Node
	connections []*Connection
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// AddNodes appends count nodes created by factory.
func (l *Layer) AddNodes(factory NodeFactory, count int) {
	for i := 0; i < count; i++ {
		l.nodes = append(l.nodes, factory.CreateNode())
	}
}

// NodeCount returns the number of nodes in the layer.
func (l *Layer) NodeCount() int { return len(l.nodes) }

// Node returns the node at index or nil when out of range.
func (l *Layer) Node(index int) Node {
	if index < 0 || index >= len(l.nodes) {
		return nil
	}
	return l.nodes[index]
}

// ConnectBack links nodes of back into this layer's nodes. For every
// (front, back) pair accepted by connector, the front node gets a new link
// reading from the back node.
func (l *Layer) ConnectBack(back *Layer, connector Connector) {
	for i, front := range l.nodes {
		for j, source := range back.nodes {
			if !connector.Valid(j, i) {
				continue
			}
			link := front.CreateLink(source, connector.Weight(), connector.Constant())
			l.connections = append(l.connections, &Connection{Link: link, Front: front})
		}
	}
}

// ConnectionCount returns the number of links created by ConnectBack.
func (l *Layer) ConnectionCount() int { return len(l.connections) }

// Connection returns the connection at index or nil when out of range.
func (l *Layer) Connection(index int) *Connection {
	if index < 0 || index >= len(l.connections) {
		return nil
	}
	return l.connections[index]
}

// SetWeights distributes weights over the nodes in order and returns what
// was not consumed.
func (l *Layer) SetWeights(weights []float64) []float64 {
	for _, n := range l.nodes {
		if len(weights) == 0 {
			break
		}
		weights = n.SetWeights(weights)
	}
	return weights
}

// Weights concatenates the trainable weights of all nodes in order.
func (l *Layer) Weights() []float64 {
	weights := []float64{}
	for _, n := range l.nodes {
		weights = append(weights, n.Weights()...)
	}
	return weights
}

// Compute evaluates the nodes in registration order.
func (l *Layer) Compute() {
	for _, n := range l.nodes {
		n.Compute()
	}
}

// Reset clears the running state of every node.
func (l *Layer) Reset() {
	for _, n := range l.nodes {
		n.Reset()
	}
}

// SetOutputs injects values into the nodes in order and returns the values
// left over when the layer has fewer nodes than values.
func (l *Layer) SetOutputs(values []float64) []float64 {
	for _, n := range l.nodes {
		if len(values) == 0 {
			break
		}
		n.SetOutput(values[0])
		values = values[1:]
	}
	return values
}

// Outputs returns the outputs of the nodes in order.
func (l *Layer) Outputs() []float64 {
	outputs := make([]float64, len(l.nodes))
	for i, n := range l.nodes {
		outputs[i] = n.Output()
	}
	return outputs
}
