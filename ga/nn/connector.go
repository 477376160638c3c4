package nn

import "fmt"

// Connector decides whether a node of the back layer is linked to a node of
// the front layer and with which initial weight and constancy.
type Connector interface {
	Valid(backIndex, frontIndex int) bool
	Weight() float64
	Constant() bool
}

// InternalConnector links every back node to every front node with a
// trainable weight seeded at 0.
type InternalConnector struct{}

func (InternalConnector) Valid(int, int) bool { return true }
func (InternalConnector) Weight() float64     { return 0.0 }
func (InternalConnector) Constant() bool      { return false }

// FeedbackConnector links back node i only to front node i with a constant
// weight of 1. It is used to wire delay lines without extra trainable
// parameters.
type FeedbackConnector struct{}

func (FeedbackConnector) Valid(back, front int) bool { return back == front }
func (FeedbackConnector) Weight() float64            { return 1.0 }
func (FeedbackConnector) Constant() bool             { return true }

// ConnectorFor returns the connector registered under name.
func ConnectorFor(name string) (Connector, error) {
	switch name {
	case "", "internal":
		return InternalConnector{}, nil
	case "feedback":
		return FeedbackConnector{}, nil
	}
	return nil, fmt.Errorf("unknown connector: %s", name)
}
