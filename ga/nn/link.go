package nn

// Link is a weighted edge feeding the output of a source node into the node
// that owns it. Links are created through Node.CreateLink and their weight is
// changed only through the owning node's SetWeights.
type Link struct {
	source   Node
	weight   float64
	constant bool
}

// Source returns the node this link reads from.
func (l *Link) Source() Node { return l.source }

// Weight returns the current link weight.
func (l *Link) Weight() float64 { return l.weight }

// Constant reports whether the link is excluded from the trainable weights.
func (l *Link) Constant() bool { return l.constant }

// value is the weighted contribution of the link to its owner's sum.
func (l *Link) value() float64 {
	return l.source.Output() * l.weight
}
