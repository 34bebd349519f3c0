package aigbuilder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/aigrw/aig"
)

// minRandomInputs is the fewest primary inputs Random will accept; fewer
// than two leaves no pair of signals to AND together.
const minRandomInputs = 2

// Random builds a network of numInputs primary inputs and numGates
// CreateAnd calls (fewer distinct AND gates when structural hashing or a
// trivial identity folds a call), each call's two fanins drawn uniformly (with independent random
// polarity) from every signal created so far — inputs and earlier gates
// alike — which keeps the arena's append-only acyclicity invariant
// trivially satisfied. seed makes the draw reproducible, so a caller can
// freeze a stochastic network for a golden test.
func Random(numInputs, numGates int, seed int64) (Scenario, error) {
	if numInputs < minRandomInputs {
		return Scenario{}, fmt.Errorf("aigbuilder: numInputs=%d: %w", numInputs, ErrTooFewInputs)
	}

	rng := rand.New(rand.NewSource(seed))
	ntk := aig.NewNetwork()

	inputs := make([]aig.Signal, numInputs)
	pool := make([]aig.Signal, 0, numInputs+numGates)
	for i := 0; i < numInputs; i++ {
		s := ntk.CreateInput()
		inputs[i] = s
		pool = append(pool, s)
	}

	var last aig.Signal
	for g := 0; g < numGates; g++ {
		a := randomSignal(rng, pool)
		b := randomSignal(rng, pool)
		last = ntk.CreateAnd(a, b)
		pool = append(pool, last)
	}

	if numGates > 0 {
		ntk.AddOutput(last)
	} else {
		ntk.AddOutput(inputs[0])
	}

	return Scenario{Name: fmt.Sprintf("random-%d-%d-%d", numInputs, numGates, seed), Network: ntk, Inputs: inputs}, nil
}

// randomSignal picks a uniformly random element of pool and applies a
// coin-flip polarity, independent of whatever polarity that signal
// already carried (duplicate draws and self-pairs are both valid AND
// inputs; CreateAnd folds the trivial identities).
func randomSignal(rng *rand.Rand, pool []aig.Signal) aig.Signal {
	s := pool[rng.Intn(len(pool))]
	if rng.Intn(2) == 0 {
		return s.Not()
	}

	return s
}
