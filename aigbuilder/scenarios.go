package aigbuilder

import "github.com/katalvlaran/aigrw/aig"

// Scenario is a named, deterministic AIG fixture: the network itself plus
// the primary inputs it created, in creation order.
type Scenario struct {
	Name    string
	Network *aig.Network
	Inputs  []aig.Signal
}

// scenarioFn builds one named Scenario. Every constructor in this file is
// total: given no parameters, none of them can fail.
type scenarioFn func() Scenario

// registry lists every named scenario ByName can look up, in the
// deterministic order Names() reports them.
var registry = []scenarioFn{
	Associativity,
	DistributivityOR,
	DistributivityAND,
	ThreeLayer,
	AlreadyOptimal,
	Composed,
}

// Names returns the names of every registered scenario, in registration
// order.
func Names() []string {
	names := make([]string, len(registry))
	for i, fn := range registry {
		names[i] = fn().Name
	}

	return names
}

// ByName returns the named scenario, rebuilding it fresh (a Scenario holds
// a live, mutable *aig.Network, so callers that want an unmodified copy
// should call ByName again rather than reuse a previous result after
// running rewrite.Rewrite against it).
func ByName(name string) (Scenario, error) {
	for _, fn := range registry {
		s := fn()
		if s.Name == name {
			return s, nil
		}
	}

	return Scenario{}, ErrUnknownScenario
}

// Associativity builds AND(i4, AND(i3, AND(AND(i0,i1), i2))): a depth-4
// network whose inner AND(i3, ...) has a non-complemented critical fanin
// deep enough (level 2) relative to its sibling (level 0) for the
// associativity rewrite to fire once, reaching depth 3.
func Associativity() Scenario {
	ntk := aig.NewNetwork()
	i0 := ntk.CreateInput()
	i1 := ntk.CreateInput()
	i2 := ntk.CreateInput()
	i3 := ntk.CreateInput()
	i4 := ntk.CreateInput()

	p := ntk.CreateAnd(i0, i1)
	q := ntk.CreateAnd(p, i2)
	critChild := ntk.CreateAnd(i3, q)
	n := ntk.CreateAnd(i4, critChild)
	ntk.AddOutput(n)

	return Scenario{Name: "associativity", Network: ntk, Inputs: []aig.Signal{i0, i1, i2, i3, i4}}
}

// DistributivityOR builds ¬(g·x)·¬(g·y), the complement of the OR-of-ANDs
// (g·x)+(g·y), over a shared critical operand g, reaching depth 2 from
// depth 3.
func DistributivityOR() Scenario {
	ntk := aig.NewNetwork()
	x := ntk.CreateInput()
	y := ntk.CreateInput()
	g0 := ntk.CreateInput()
	g1 := ntk.CreateInput()

	g := ntk.CreateAnd(g0, g1)
	c1 := ntk.CreateAnd(g, x)
	c2 := ntk.CreateAnd(g, y)
	n := ntk.CreateAnd(c1.Not(), c2.Not())
	ntk.AddOutput(n)

	return Scenario{Name: "distributivity-or", Network: ntk, Inputs: []aig.Signal{x, y, g0, g1}}
}

// DistributivityAND builds (g·x)·(g·y) over a shared critical operand g,
// reaching depth 2 from depth 3.
func DistributivityAND() Scenario {
	ntk := aig.NewNetwork()
	x := ntk.CreateInput()
	y := ntk.CreateInput()
	g0 := ntk.CreateInput()
	g1 := ntk.CreateInput()

	g := ntk.CreateAnd(g0, g1)
	c1 := ntk.CreateAnd(g, x)
	c2 := ntk.CreateAnd(g, y)
	n := ntk.CreateAnd(c1, c2)
	ntk.AddOutput(n)

	return Scenario{Name: "distributivity-and", Network: ntk, Inputs: []aig.Signal{x, y, g0, g1}}
}

// ThreeLayer builds a three-layer alternating-complement AND chain,
// reaching depth 3 from depth 4.
func ThreeLayer() Scenario {
	ntk := aig.NewNetwork()
	x0 := ntk.CreateInput()
	x1 := ntk.CreateInput()
	x2 := ntk.CreateInput()
	ia := ntk.CreateInput()
	ib := ntk.CreateInput()

	x3 := ntk.CreateAnd(ia, ib)
	gc1 := ntk.CreateAnd(x2, x3)
	c1 := ntk.CreateAnd(x1, gc1.Not())
	n := ntk.CreateAnd(x0, c1.Not())
	ntk.AddOutput(n)

	return Scenario{Name: "three-layer", Network: ntk, Inputs: []aig.Signal{x0, x1, x2, ia, ib}}
}

// AlreadyOptimal builds a single AND gate over two inputs: depth 1, no
// matcher precondition can ever hold, used to exercise the no-op/fixpoint
// path of the driver.
func AlreadyOptimal() Scenario {
	ntk := aig.NewNetwork()
	a := ntk.CreateInput()
	b := ntk.CreateInput()
	n := ntk.CreateAnd(a, b)
	ntk.AddOutput(n)

	return Scenario{Name: "already-optimal", Network: ntk, Inputs: []aig.Signal{a, b}}
}

// Composed chains an associativity-shaped subnetwork into a distributivity-
// AND-shaped one, sharing the Associativity scenario's deep branch as the
// shared operand g, so a single Rewrite run exercises more than one rule
// across its passes.
func Composed() Scenario {
	ntk := aig.NewNetwork()
	i0 := ntk.CreateInput()
	i1 := ntk.CreateInput()
	i2 := ntk.CreateInput()
	i3 := ntk.CreateInput()
	x := ntk.CreateInput()
	y := ntk.CreateInput()

	p := ntk.CreateAnd(i0, i1)
	q := ntk.CreateAnd(p, i2)
	g := ntk.CreateAnd(i3, q) // associativity-shaped: deep branch q, shallow i3

	c1 := ntk.CreateAnd(g, x)
	c2 := ntk.CreateAnd(g, y)
	n := ntk.CreateAnd(c1, c2)
	ntk.AddOutput(n)

	return Scenario{Name: "composed", Network: ntk, Inputs: []aig.Signal{i0, i1, i2, i3, x, y}}
}
