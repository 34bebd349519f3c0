package rewrite

import (
	"github.com/katalvlaran/aigrw/aig"
	"github.com/katalvlaran/aigrw/depthview"
)

// findSharedOperand implements the shared-deep-operand search common to
// both distributivity matchers: it looks for a fanin signal g that c1 and
// c2 have in common, whose driver is on the critical path, and returns
// the two remaining operands provided both of their drivers are off the
// critical path.
func findSharedOperand(ntk *aig.Network, dv *depthview.View, c1, c2 aig.NodeID) (g, x, y aig.Signal, ok bool) {
	if !ntk.IsAnd(c1) || !ntk.IsAnd(c2) {
		return 0, 0, 0, false
	}
	p0, p1 := ntk.Fanin(c1)
	q0, q1 := ntk.Fanin(c2)

	var shared aig.Signal
	var found bool
	for _, p := range [2]aig.Signal{p0, p1} {
		for _, q := range [2]aig.Signal{q0, q1} {
			if p == q && dv.IsOnCriticalPath(p.Node()) {
				shared, found = p, true
			}
		}
	}
	if !found {
		return 0, 0, 0, false
	}

	x = otherFanin(p0, p1, shared)
	y = otherFanin(q0, q1, shared)
	if dv.IsOnCriticalPath(x.Node()) || dv.IsOnCriticalPath(y.Node()) {
		return 0, 0, 0, false
	}

	return shared, x, y, true
}

// otherFanin returns whichever of a node's two stored fanins is not known.
func otherFanin(p0, p1, known aig.Signal) aig.Signal {
	if p0 == known {
		return p1
	}

	return p0
}

// tryDistributivityOR rewrites ¬(¬(g·x) · ¬(g·y)) to g · ¬(¬x · ¬y),
// equivalent to g · (x + y):
func tryDistributivityOR(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (aig.Signal, bool, error) {
	if !dv.IsOnCriticalPath(n) {
		return 0, false, nil
	}

	s1, s2 := ntk.Fanin(n)
	if !s1.IsComplemented() || !s2.IsComplemented() {
		return 0, false, nil
	}

	c1, c2 := s1.Node(), s2.Node()
	if !dv.IsOnCriticalPath(c1) || !dv.IsOnCriticalPath(c2) {
		return 0, false, nil
	}

	g, x, y, ok := findSharedOperand(ntk, dv, c1, c2)
	if !ok {
		return 0, false, nil
	}

	t := ntk.CreateAnd(x.Not(), y.Not())
	u := ntk.CreateAnd(g, t.Not())
	result := u.Not()
	if err := substitute(ntk, RuleDistributivityOR, n, result, "shared critical operand, remaining operands off critical path"); err != nil {
		return 0, false, err
	}

	return result, true, nil
}

// tryDistributivityAND rewrites (g·x)·(g·y) to g · (x·y):
func tryDistributivityAND(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (aig.Signal, bool, error) {
	if !dv.IsOnCriticalPath(n) {
		return 0, false, nil
	}

	s1, s2 := ntk.Fanin(n)
	if s1.IsComplemented() || s2.IsComplemented() {
		return 0, false, nil
	}

	c1, c2 := s1.Node(), s2.Node()
	if !dv.IsOnCriticalPath(c1) || !dv.IsOnCriticalPath(c2) {
		return 0, false, nil
	}

	g, x, y, ok := findSharedOperand(ntk, dv, c1, c2)
	if !ok {
		return 0, false, nil
	}

	t := ntk.CreateAnd(x, y)
	u := ntk.CreateAnd(g, t)
	if err := substitute(ntk, RuleDistributivityAND, n, u, "shared critical operand, remaining operands off critical path"); err != nil {
		return 0, false, err
	}

	return u, true, nil
}
