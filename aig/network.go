package aig

// CreateInput allocates a new primary input and returns its (uncomplemented)
// signal. Complexity: O(1).
func (n *Network) CreateInput() Signal {
	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node{kind: KindInput})

	return NewSignal(id, false)
}

// canonicalize orders a fanin pair so structural hashing is insensitive to
// argument order: AND(a,b) and AND(b,a) must hash identically.
func canonicalize(a, b Signal) (lo, hi Signal) {
	if a <= b {
		return a, b
	}

	return b, a
}

// CreateAnd returns the signal for AND(a, b), reusing an existing AND gate
// when one already exists for the canonicalized fanin pair (structural
// hashing) and folding the standard trivial AIG identities a real
// strashing network is expected to provide:
//
//	AND(x, x)   = x
//	AND(x, !x)  = 0
//	AND(x, 0)   = 0
//	AND(x, 1)   = x
//
// Complexity: O(1) expected (map lookup/insert).
func (n *Network) CreateAnd(a, b Signal) Signal {
	if a.Node() == b.Node() {
		if a == b {
			return a // AND(x, x) = x
		}

		return ConstZero // AND(x, !x) = 0
	}
	if a == ConstZero || b == ConstZero {
		return ConstZero
	}
	if a == ConstOne {
		return b
	}
	if b == ConstOne {
		return a
	}

	lo, hi := canonicalize(a, b)
	key := [2]Signal{lo, hi}
	if existing, ok := n.strash[key]; ok && !n.nodes[existing].dead {
		return NewSignal(existing, false)
	}

	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node{kind: KindAnd, fanin: [2]Signal{lo, hi}})
	n.strash[key] = id
	n.addFanout(lo.Node(), fanoutEdge{kind: consumerGateInput, node: id, slot: 0})
	n.addFanout(hi.Node(), fanoutEdge{kind: consumerGateInput, node: id, slot: 1})

	return NewSignal(id, false)
}

// AddOutput designates s as a primary output of the network and returns
// its output index. A node may be referenced by any number of outputs.
func (n *Network) AddOutput(s Signal) int {
	idx := len(n.outputs)
	n.outputs = append(n.outputs, s)
	n.addFanout(s.Node(), fanoutEdge{kind: consumerOutput, slot: idx})

	return idx
}

// Outputs returns the current primary-output signals, in addition order.
// The returned slice must not be mutated.
func (n *Network) Outputs() []Signal { return n.outputs }

// addFanout records that consumer references node id.
func (n *Network) addFanout(id NodeID, e fanoutEdge) {
	n.fanouts[id] = append(n.fanouts[id], e)
}
