package nn

// Node is a single computation unit of a network.
//
// Every variant owns an ordered list of incoming links. Compute derives the
// node's output from the current outputs of its link sources (and, for
// feedback nodes, the node's own history). Nodes never read outputs of nodes
// they are not linked to.
type Node interface {
	// CreateLink appends a new incoming link from source.
	CreateLink(source Node, weight float64, constant bool) *Link
	// LinkCount returns the number of incoming links.
	LinkCount() int
	// Link returns the incoming link at index, or nil when out of range.
	Link(index int) *Link

	// Weights returns the weights of all non-constant links in link order.
	Weights() []float64
	// SetWeights assigns weights to the non-constant links in link order and
	// returns the unconsumed remainder of weights.
	SetWeights(weights []float64) []float64

	Activated() bool
	Compute()
	Output() float64
	// SetOutput injects an external value. Only input nodes honour it.
	SetOutput(value float64)
	// Reset clears the node's running state back to its freshly created
	// condition. Links and weights are kept.
	Reset()
}

// links carries the link list shared by all node variants.
type links struct {
	in []*Link
}

func (n *links) CreateLink(source Node, weight float64, constant bool) *Link {
	l := &Link{source: source, weight: weight, constant: constant}
	n.in = append(n.in, l)
	return l
}

func (n *links) LinkCount() int { return len(n.in) }

func (n *links) Link(index int) *Link {
	if index < 0 || index >= len(n.in) {
		return nil
	}
	return n.in[index]
}

func (n *links) Weights() []float64 {
	weights := []float64{}
	for _, l := range n.in {
		if !l.constant {
			weights = append(weights, l.weight)
		}
	}
	return weights
}

func (n *links) SetWeights(weights []float64) []float64 {
	for _, l := range n.in {
		if len(weights) == 0 {
			break
		}
		// Constant links do not consume a slot.
		if l.constant {
			continue
		}
		l.weight = weights[0]
		weights = weights[1:]
	}
	return weights
}

// forward returns the weighted sum over all incoming links.
func (n *links) forward() float64 {
	sum := 0.0
	for _, l := range n.in {
		sum += l.value()
	}
	return sum
}

// InputNode holds an externally injected value. It has no meaningful links
// and is always activated.
type InputNode struct {
	links
	output float64
}

// NewInputNode creates an input node with output 0.
func NewInputNode() *InputNode { return &InputNode{} }

func (n *InputNode) Activated() bool         { return true }
func (n *InputNode) Compute()                {}
func (n *InputNode) Output() float64         { return n.output }
func (n *InputNode) SetOutput(value float64) { n.output = value }
func (n *InputNode) Reset()                  { n.output = 0 }

// LinearNode outputs the plain weighted sum of its inputs.
type LinearNode struct {
	links
	output float64
}

// NewLinearNode creates a linear node.
func NewLinearNode() *LinearNode { return &LinearNode{} }

func (n *LinearNode) Activated() bool   { return true }
func (n *LinearNode) Compute()          { n.output = Identity(n.forward()) }
func (n *LinearNode) Output() float64   { return n.output }
func (n *LinearNode) SetOutput(float64) {}
func (n *LinearNode) Reset()            { n.output = 0 }

// SigmoidNode squashes its weighted sum with Squash. It reports itself as not
// activated, with output 0, until it has been computed once; after that it is
// always activated.
type SigmoidNode struct {
	links
	output    float64
	activated bool
}

// NewSigmoidNode creates a sigmoid node.
func NewSigmoidNode() *SigmoidNode { return &SigmoidNode{} }

func (n *SigmoidNode) Activated() bool { return n.activated }

func (n *SigmoidNode) Compute() {
	n.output = Squash(n.forward())
	n.activated = true
}

func (n *SigmoidNode) Output() float64 {
	if !n.activated {
		return 0.0
	}
	return n.output
}

func (n *SigmoidNode) SetOutput(float64) {}

func (n *SigmoidNode) Reset() {
	n.output = 0
	n.activated = false
}

// FeedbackNode is a delay line: each Compute pushes the current weighted sum
// into a queue of length History and emits the value pushed History computes
// earlier (zero until the queue has filled). History 0 means no delay.
type FeedbackNode struct {
	links
	history []float64
	head    int
	output  float64
}

// NewFeedbackNode creates a feedback node delaying its input by history
// computes. Negative history is treated as 0.
func NewFeedbackNode(history int) *FeedbackNode {
	if history < 0 {
		history = 0
	}
	return &FeedbackNode{history: make([]float64, history)}
}

// History returns the delay length in computes.
func (n *FeedbackNode) History() int { return len(n.history) }

func (n *FeedbackNode) Activated() bool { return true }

func (n *FeedbackNode) Compute() {
	now := n.forward()
	if len(n.history) == 0 {
		n.output = now
		return
	}
	n.output = n.history[n.head]
	n.history[n.head] = now
	n.head = (n.head + 1) % len(n.history)
}

func (n *FeedbackNode) Output() float64   { return n.output }
func (n *FeedbackNode) SetOutput(float64) {}

func (n *FeedbackNode) Reset() {
	for i := range n.history {
		n.history[i] = 0
	}
	n.head = 0
	n.output = 0
}
