package rewrite

import "fmt"

// FatalKind enumerates the three fatal error kinds Rewrite can report.
// All three are driver invariant violations or matcher bugs, never
// recoverable within a single Rewrite call: there is no retry logic
// inside the rewriter itself, only in whatever calls it.
type FatalKind string

const (
	// CycleIntroduced: the network rejected a substitution because the
	// replacement signal's driver transitively depends on the node being
	// replaced.
	CycleIntroduced FatalKind = "CycleIntroduced"

	// UnleveledAccess: a matcher was about to run against a stale depth
	// view. Indicates the driver failed to recompute after a rewrite.
	UnleveledAccess FatalKind = "UnleveledAccess"

	// InvariantViolation: a matcher produced a replacement whose fanin
	// set was empty or whose driver levels were inconsistent with the
	// strict inequalities its own precondition required.
	InvariantViolation FatalKind = "InvariantViolation"
)

// FatalError identifies the rule, the node, and the failing precondition
// behind one of the three fatal kinds, so the abort diagnostic names all
// three.
type FatalError struct {
	Kind      FatalKind
	Rule      RuleName
	Node      uint32
	Precond   string
	Underlying error
}

func (e *FatalError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("rewrite: %s in rule %q at node %d (%s): %v", e.Kind, e.Rule, e.Node, e.Precond, e.Underlying)
	}

	return fmt.Sprintf("rewrite: %s in rule %q at node %d (%s)", e.Kind, e.Rule, e.Node, e.Precond)
}

// Unwrap exposes the underlying network error, if any, so callers can
// still errors.Is against e.g. aig.ErrCycleIntroduced.
func (e *FatalError) Unwrap() error { return e.Underlying }
