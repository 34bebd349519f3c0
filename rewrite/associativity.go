package rewrite

import (
	"github.com/katalvlaran/aigrw/aig"
	"github.com/katalvlaran/aigrw/depthview"
)

// tryAssociativity rewrites AND(a, AND(c, d)) to AND(d, AND(a, c)) when
// the outer AND's deep branch is non-complemented and d is deep enough to
// make the rewrite pay off.
func tryAssociativity(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (aig.Signal, bool, error) {
	if !dv.IsOnCriticalPath(n) {
		return 0, false, nil
	}

	a, b, ok := orderedFanins(ntk, dv, n) // a shallow, b deep (critical)
	if !ok {
		return 0, false, nil
	}
	if b.IsComplemented() {
		return 0, false, nil // the identity only holds for a non-complemented critical fanin
	}

	critChild := b.Node()
	c, d, ok := orderedFanins(ntk, dv, critChild) // c shallow grandchild, d deep (critical) grandchild
	if !ok {
		return 0, false, nil
	}
	if dv.Level(d.Node()) <= dv.Level(a.Node()) {
		return 0, false, nil // d must be strictly deeper than a for the rewrite to reduce depth
	}

	t := ntk.CreateAnd(a, c)
	u := ntk.CreateAnd(d, t)
	if err := substitute(ntk, RuleAssociativity, n, u, "level(d) > level(a)"); err != nil {
		return 0, false, err
	}

	return u, true, nil
}
