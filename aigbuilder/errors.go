package aigbuilder

import "errors"

// ErrTooFewInputs indicates that Random was asked for fewer primary inputs
// than it needs to synthesize any AND gate.
var ErrTooFewInputs = errors.New("aigbuilder: too few inputs")

// ErrUnknownScenario indicates that ByName was given a name that matches
// no registered scenario.
var ErrUnknownScenario = errors.New("aigbuilder: unknown scenario")
