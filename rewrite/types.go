package rewrite

import "github.com/katalvlaran/aigrw/internal/obslog"

// RuleName identifies which matcher produced (or would have produced) a
// rewrite, used in diagnostics, Stats, and FatalError.
type RuleName string

// The matcher cascade order: Associativity is tried first, Three-Layer
// last. The driver never reorders this.
const (
	RuleAssociativity     RuleName = "associativity"
	RuleDistributivityOR  RuleName = "distributivity-or"
	RuleDistributivityAND RuleName = "distributivity-and"
	RuleThreeLayer        RuleName = "three-layer"
)

// cascade is the fixed matcher order the driver applies at every node.
var cascade = [...]RuleName{
	RuleAssociativity,
	RuleDistributivityOR,
	RuleDistributivityAND,
	RuleThreeLayer,
}

// Options configures Rewrite. Use WithMaxPasses and WithLogger; Rewrite
// starts from production-safe defaults (unlimited passes, a disabled
// logger).
type Options struct {
	maxPasses int
	log       *obslog.Logger
}

// Option configures an Options value.
type Option func(*Options)

// WithMaxPasses caps the number of fixpoint passes Rewrite will run. A
// value <= 0 means unlimited (run to fixpoint), the default. Reaching the
// cap before a pass with zero rewrites is not an error; it simply stops
// early with whatever depth reduction has been achieved.
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.maxPasses = n }
}

// WithLogger attaches a structured logger the driver uses to report
// per-pass and per-rewrite diagnostics. Without this option, or with a
// nil logger, logging is disabled entirely.
func WithLogger(l *obslog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = obslog.Disabled()
		}
		o.log = l
	}
}

func defaultOptions() Options {
	return Options{maxPasses: 0, log: obslog.Disabled()}
}

// Stats reports what a Rewrite call actually did: the operational
// telemetry a production rewriter needs for tuning, beyond a bare
// pass/fail result.
type Stats struct {
	Passes        int
	TotalRewrites int
	ByRule        map[RuleName]int
}

func newStats() Stats {
	return Stats{ByRule: make(map[RuleName]int, len(cascade))}
}

func (s *Stats) record(rule RuleName) {
	s.TotalRewrites++
	s.ByRule[rule]++
}
