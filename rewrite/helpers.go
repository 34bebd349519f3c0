package rewrite

import (
	"github.com/katalvlaran/aigrw/aig"
	"github.com/katalvlaran/aigrw/depthview"
)

// orderedFanins returns a node's two fanin signals as (shallow, deep),
// the strictly-shallower one first. ok is false when the two fanins tie
// in level: picking a side arbitrarily at a level tie cannot guarantee a
// depth reduction, so the matchers that use it (Associativity and
// Three-Layer) decline instead of guessing.
func orderedFanins(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (shallow, deep aig.Signal, ok bool) {
	s0, s1 := ntk.Fanin(n)
	l0, l1 := dv.Level(s0.Node()), dv.Level(s1.Node())
	switch {
	case l0 > l1:
		return s1, s0, true
	case l1 > l0:
		return s0, s1, true
	default:
		return s0, s1, false
	}
}

// substitute commits a matcher's replacement signal, turning a network
// refusal into the typed CycleIntroduced fatal error, identifying which
// rule and node produced the bad substitution.
func substitute(ntk *aig.Network, rule RuleName, n aig.NodeID, replacement aig.Signal, precond string) error {
	if err := ntk.SubstituteNode(n, replacement); err != nil {
		return &FatalError{Kind: CycleIntroduced, Rule: rule, Node: uint32(n), Precond: precond, Underlying: err}
	}

	return nil
}
