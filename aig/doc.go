// Package aig implements the Network collaborator for a depth-reducing
// algebraic AIG rewriter: a dense, arena-backed And-Inverter Graph with
// structural hashing of AND gates, a fanout table, and the substitution
// protocol that retargets a node's consumers onto a replacement signal.
//
// A Network holds three kinds of Node: the single Constant-0, Primary
// Inputs (no fanins), and AND gates (exactly two fanin Signals). A Signal
// is an (id, polarity) pair — polarity false selects the node's own
// output, true selects its logical complement. Every AND gate's fanins
// are strictly older than it at creation time, but SubstituteNode can
// later retarget an existing gate's fanin onto a freshly synthesized
// replacement with a larger id; the network stays acyclic (SubstituteNode
// verifies that by walking the replacement's fanin cone), but the arena's
// natural ascending id order is no longer guaranteed topological once any
// substitution has happened.
//
// Network is not safe for concurrent use by multiple goroutines; the
// rewriter that owns it is itself single-threaded (see package rewrite).
package aig
