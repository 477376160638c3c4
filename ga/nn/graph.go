package nn

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph returns the directed link graph of the network. Node IDs are
// assigned in evaluation order (layer by layer, node by node) and every
// link becomes an edge from its source to its owner. Self links are not
// representable in a simple graph and are skipped; see Recurrent.
func (n *Network) Graph() *simple.DirectedGraph {
	g, _ := n.graph()
	return g
}

// Recurrent reports whether any link forms a cycle, including self links.
// It does not affect evaluation, which always follows registration order.
func (n *Network) Recurrent() bool {
	g, selfLinked := n.graph()
	if selfLinked {
		return true
	}
	_, err := topo.Sort(g)
	return err != nil
}

func (n *Network) graph() (*simple.DirectedGraph, bool) {
	g := simple.NewDirectedGraph()
	ids := make(map[Node]int64)
	for _, l := range n.layers {
		for _, node := range l.nodes {
			if _, seen := ids[node]; seen {
				continue
			}
			id := int64(len(ids))
			ids[node] = id
			g.AddNode(simple.Node(id))
		}
	}

	selfLinked := false
	for _, l := range n.layers {
		for _, node := range l.nodes {
			to := ids[node]
			for i := 0; i < node.LinkCount(); i++ {
				from, ok := ids[node.Link(i).Source()]
				if !ok {
					// Source outside the network.
					continue
				}
				if from == to {
					selfLinked = true
					continue
				}
				g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
			}
		}
	}
	return g, selfLinked
}
