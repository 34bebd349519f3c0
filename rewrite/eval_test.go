package rewrite_test

import "github.com/katalvlaran/aigrw/aig"

// evalOutputs simulates ntk for one input assignment and returns the
// Boolean value of every primary output, in AddOutput order. It is test
// scaffolding only, used to check functional equivalence before and after
// a Rewrite call. It evaluates each output's cone recursively through the
// live fanins rather than in id order, because a substitution can leave a
// gate with a fanin whose id is larger than its own.
func evalOutputs(ntk *aig.Network, inputs []aig.Signal, values []bool) []bool {
	n := ntk.NumNodes()
	val := make([]bool, n)
	done := make([]bool, n)

	idx := make(map[aig.NodeID]int, len(inputs))
	for i, s := range inputs {
		idx[s.Node()] = i
	}

	var eval func(s aig.Signal) bool
	eval = func(s aig.Signal) bool {
		nid := s.Node()
		if !done[nid] {
			switch {
			case ntk.IsInput(nid):
				val[nid] = values[idx[nid]]
			case ntk.IsAnd(nid):
				a, b := ntk.Fanin(nid)
				val[nid] = eval(a) && eval(b)
			}
			done[nid] = true
		}

		return sigVal(val, s)
	}

	outs := ntk.Outputs()
	result := make([]bool, len(outs))
	for i, s := range outs {
		result[i] = eval(s)
	}

	return result
}

func sigVal(val []bool, s aig.Signal) bool {
	v := val[s.Node()]
	if s.IsComplemented() {
		return !v
	}

	return v
}

// allCombos returns every Boolean assignment of n variables, in ascending
// binary-counter order.
func allCombos(n int) [][]bool {
	total := 1 << n
	combos := make([][]bool, total)
	for i := 0; i < total; i++ {
		row := make([]bool, n)
		for b := 0; b < n; b++ {
			row[b] = (i>>b)&1 == 1
		}
		combos[i] = row
	}

	return combos
}

// snapshotTruthTable evaluates ntk's outputs for every input combination,
// in allCombos order, so a test can capture the truth table before
// rewrite.Rewrite mutates the network in place and compare against it
// afterwards.
func snapshotTruthTable(ntk *aig.Network, inputs []aig.Signal) [][]bool {
	combos := allCombos(len(inputs))
	table := make([][]bool, len(combos))
	for i, c := range combos {
		table[i] = evalOutputs(ntk, inputs, c)
	}

	return table
}
