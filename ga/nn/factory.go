package nn

import "fmt"

// NodeFactory produces the nodes a layer is populated with.
type NodeFactory interface {
	CreateNode() Node
}

// NodeFactoryFunc adapts a plain function to NodeFactory.
type NodeFactoryFunc func() Node

func (f NodeFactoryFunc) CreateNode() Node { return f() }

var (
	InputFactory   NodeFactory = NodeFactoryFunc(func() Node { return NewInputNode() })
	LinearFactory  NodeFactory = NodeFactoryFunc(func() Node { return NewLinearNode() })
	SigmoidFactory NodeFactory = NodeFactoryFunc(func() Node { return NewSigmoidNode() })
	// OutputFactory is the conventional factory for output layers.
	OutputFactory = LinearFactory
)

// FeedbackFactory creates feedback nodes whose delay grows by Stride with
// every node created: History, History+Stride, History+2*Stride, ...
// A zero Stride gives every node the same delay.
type FeedbackFactory struct {
	History int
	Stride  int

	created int
}

// NewFeedbackFactory returns a factory whose first node delays by history
// computes and every further node by stride more.
func NewFeedbackFactory(history, stride int) *FeedbackFactory {
	return &FeedbackFactory{History: history, Stride: stride}
}

func (f *FeedbackFactory) CreateNode() Node {
	n := NewFeedbackNode(f.History + f.created*f.Stride)
	f.created++
	return n
}

// Node kinds understood by FactoryFor.
const (
	KindInput    = "input"
	KindLinear   = "linear"
	KindSigmoid  = "sigmoid"
	KindFeedback = "feedback"
	KindOutput   = "output"
)

// FactoryFor returns the factory for a node kind name. Feedback factories are
// created fresh on every call so that each layer starts its own delay series.
func FactoryFor(kind string, history, stride int) (NodeFactory, error) {
	switch kind {
	case KindInput:
		return InputFactory, nil
	case KindLinear:
		return LinearFactory, nil
	case KindSigmoid:
		return SigmoidFactory, nil
	case KindFeedback:
		return NewFeedbackFactory(history, stride), nil
	case KindOutput:
		return OutputFactory, nil
	}
	return nil, fmt.Errorf("unknown node kind: %s", kind)
}
