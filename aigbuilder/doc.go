// Package aigbuilder assembles small, named And-Inverter Graphs used by
// the driver's tests, examples, and the aigrw CLI: one deterministic
// constructor per rewrite scenario, plus Random for fuzz-style property
// checks.
//
// A scenario constructor returns the built *aig.Network together with the
// ordered slice of input signals it created, so callers can drive
// simulation or report depth without reaching into the network's arena
// themselves.
package aigbuilder
