package aig

import "errors"

// Sentinel errors for Network operations. Callers should branch on these
// with errors.Is, never on message text.
var (
	// ErrUnknownNode indicates a NodeID outside [0, NumNodes()) was used.
	ErrUnknownNode = errors.New("aig: unknown node id")

	// ErrNotAndGate is the value Fanin panics with when called on a node
	// that is not a KindAnd node (constants and inputs have no fanins).
	// ForEachFanin does not use it: it is a no-op for such nodes.
	ErrNotAndGate = errors.New("aig: node is not an AND gate")

	// ErrCycleIntroduced indicates SubstituteNode was asked to retarget a
	// node onto a replacement signal whose driver transitively depends on
	// the node being substituted, which would introduce a cycle. This is
	// always fatal to package rewrite's caller.
	ErrCycleIntroduced = errors.New("aig: substitution would introduce a cycle")

	// ErrDeadNode indicates an operation referenced a node that has
	// already been substituted away.
	ErrDeadNode = errors.New("aig: node has already been substituted")
)
