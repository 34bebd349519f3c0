package aig

// NodeOf is sugar for s.Node(), named to match the node_of/is_complemented
// capability pair matchers expect from a network collaborator.
func NodeOf(s Signal) NodeID { return s.Node() }

// IsComplemented is sugar for s.IsComplemented().
func IsComplemented(s Signal) bool { return s.IsComplemented() }

// Kind returns the variant of node id.
func (n *Network) Kind(id NodeID) Kind { return n.nodes[id].kind }

// IsConstant reports whether id is the Constant-0 node.
func (n *Network) IsConstant(id NodeID) bool { return n.nodes[id].kind == KindConstant }

// IsInput reports whether id is a primary input.
func (n *Network) IsInput(id NodeID) bool { return n.nodes[id].kind == KindInput }

// IsAnd reports whether id is an AND gate.
func (n *Network) IsAnd(id NodeID) bool { return n.nodes[id].kind == KindAnd }

// IsDead reports whether id has already been substituted away.
func (n *Network) IsDead(id NodeID) bool { return n.nodes[id].dead }

// ConstantValue returns the Boolean value of a constant node. The only
// constant node this Network models is node 0 (value false); logical 1
// is reached via ConstOne (node 0, complemented), never a distinct node.
func (n *Network) ConstantValue(id NodeID) bool {
	return false
}

// Fanin returns the two fanin signals of an AND gate, in their stored
// (canonicalized) order. It panics if id is not a KindAnd node; callers
// are expected to check IsAnd first, mirroring matchers that only ever
// call Fanin after ntk.foreach_gate has already filtered to AND nodes.
func (n *Network) Fanin(id NodeID) (Signal, Signal) {
	nd := n.nodes[id]
	if nd.kind != KindAnd {
		panic(ErrNotAndGate)
	}

	return nd.fanin[0], nd.fanin[1]
}

// ForEachFanin calls fn once per fanin signal of an AND gate, in stored
// order. It is a no-op for constants and inputs.
func (n *Network) ForEachFanin(id NodeID, fn func(Signal)) {
	nd := n.nodes[id]
	if nd.kind != KindAnd {
		return
	}
	fn(nd.fanin[0])
	fn(nd.fanin[1])
}

// ForEachGate calls fn once per live AND gate, in ascending id order.
// This is the order gates were created in, not necessarily a topological
// order once a substitution has retargeted some gate's fanin onto a
// later-created node; callers that need a topological walk (e.g. level
// assignment) must compute one explicitly rather than relying on this
// order. Dead (substituted-away) gates are skipped.
func (n *Network) ForEachGate(fn func(NodeID)) {
	for id := NodeID(1); int(id) < len(n.nodes); id++ {
		nd := &n.nodes[id]
		if nd.kind == KindAnd && !nd.dead {
			fn(id)
		}
	}
}
