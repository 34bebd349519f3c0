package rewrite

import (
	"github.com/katalvlaran/aigrw/aig"
	"github.com/katalvlaran/aigrw/depthview"
)

// tryThreeLayer collapses a 3-layer AND chain with alternating inversions:
//
//	x0 · ¬(x1 · ¬(x2 · x3)) ≡ ¬(¬(x3 · (x2 · x0)) · ¬(x0 · ¬x1))
//
// The level guard at the end is intentionally asymmetric: it compares the
// deepest great-grandchild's level only against x0's level, never against
// both siblings. See DESIGN.md for why this is kept as-is rather than
// "fixed" to a symmetric check.
func tryThreeLayer(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (aig.Signal, bool, error) {
	if !dv.IsOnCriticalPath(n) {
		return 0, false, nil
	}

	x0, critSig, ok := orderedFanins(ntk, dv, n) // x0 = c0's signal into n, critSig = c1's signal into n
	if !ok {
		return 0, false, nil
	}
	c0, c1 := x0.Node(), critSig.Node()
	if dv.IsOnCriticalPath(c0) && dv.IsOnCriticalPath(c1) {
		return 0, false, nil
	}
	if !critSig.IsComplemented() {
		return 0, false, nil
	}
	if !ntk.IsAnd(c1) {
		return 0, false, nil
	}

	x1, gc1Sig, ok := orderedFanins(ntk, dv, c1) // x1 = gc0's signal into c1, gc1Sig = gc1-critical's signal into c1
	if !ok {
		return 0, false, nil
	}
	gc0, gc1 := x1.Node(), gc1Sig.Node()
	if dv.IsOnCriticalPath(gc0) && dv.IsOnCriticalPath(gc1) {
		return 0, false, nil
	}
	if !gc1Sig.IsComplemented() {
		return 0, false, nil
	}
	if !ntk.IsAnd(gc1) {
		return 0, false, nil
	}

	x2, x3, ok := orderedFanins(ntk, dv, gc1) // x2 = non-critical great-grandchild signal, x3 = the deepest signal
	if !ok {
		return 0, false, nil
	}
	if dv.IsOnCriticalPath(x2.Node()) && dv.IsOnCriticalPath(x3.Node()) {
		return 0, false, nil
	}

	if dv.Level(x3.Node()) <= dv.Level(c0) {
		return 0, false, nil // intentionally asymmetric: only c0 is compared, never c1
	}

	a := ntk.CreateAnd(x2, x0)
	b := ntk.CreateAnd(x3, a)
	c := ntk.CreateAnd(x0, x1.Not())
	d := ntk.CreateAnd(b.Not(), c.Not())
	result := d.Not()
	if err := substitute(ntk, RuleThreeLayer, n, result, "level(x3) > level(x0)"); err != nil {
		return 0, false, err
	}

	return result, true, nil
}
