package rewrite

import (
	"github.com/katalvlaran/aigrw/aig"
	"github.com/katalvlaran/aigrw/depthview"
)

// matcherFuncs maps each RuleName to the matcher function that implements
// it, keyed by the names declared in cascade so the driver never hardcodes
// the order in two places.
var matcherFuncs = map[RuleName]func(*aig.Network, *depthview.View, aig.NodeID) (aig.Signal, bool, error){
	RuleAssociativity:     tryAssociativity,
	RuleDistributivityOR:  tryDistributivityOR,
	RuleDistributivityAND: tryDistributivityAND,
	RuleThreeLayer:        tryThreeLayer,
}

// Rewrite runs the fixpoint loop against network, mutating it in place:
// each pass visits every currently live AND gate once in ascending id
// order, attempting the matcher cascade (Associativity, Distributivity-OR,
// Distributivity-AND, Three-Layer, in that fixed order) against it; on the
// first matcher that applies, the substitution commits immediately, the
// depth view is recomputed, and the pass continues from the next node.
// Passes repeat until one completes with zero rewrites, or until
// WithMaxPasses's cap is reached, whichever comes first.
//
// Rewrite never returns a recoverable error: any non-nil error is a
// *FatalError, and network keeps every substitution committed before the
// failure, plus any gates the failing matcher had already created.
func Rewrite(network *aig.Network, opts ...Option) (Stats, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	stats := newStats()
	dv := depthview.New(network)
	dv.Update()

	cfg.log.Info("rewrite: starting", "initial_depth", dv.Depth(), "max_passes", cfg.maxPasses)

	for {
		if cfg.maxPasses > 0 && stats.Passes >= cfg.maxPasses {
			cfg.log.Info("rewrite: max pass cap reached", "passes", stats.Passes)
			break
		}

		changed, err := runPass(network, dv, &stats, cfg.log)
		stats.Passes++
		if err != nil {
			return stats, err
		}
		if !changed {
			break
		}
	}

	cfg.log.Info("rewrite: done", "final_depth", dv.Depth(), "passes", stats.Passes, "rewrites", stats.TotalRewrites)

	return stats, nil
}

// runPass visits every currently live AND gate once, in ascending id
// order. Because the arena only ever appends, a gate synthesized by a
// matcher earlier in the same pass is itself visited before the pass
// ends; this is harmless (a freshly built node that violates no matcher's
// precondition simply doesn't match) and lets depth reductions compound
// within a single pass instead of waiting for the next one.
func runPass(ntk *aig.Network, dv *depthview.View, stats *Stats, log logger) (bool, error) {
	changed := false
	for id := aig.NodeID(1); int(id) < ntk.NumNodes(); id++ {
		if !ntk.IsAnd(id) || ntk.IsDead(id) {
			continue
		}
		if dv.Stale() {
			return changed, &FatalError{
				Kind:    UnleveledAccess,
				Node:    uint32(id),
				Precond: "depth view queried before Update after a prior substitution",
			}
		}

		rule, applied, err := tryCascade(ntk, dv, id)
		if err != nil {
			return changed, err
		}
		if !applied {
			continue
		}

		changed = true
		stats.record(rule)
		log.Debug("rewrite: substitution applied", "rule", string(rule), "node", id)
		dv.MarkStale()
		dv.Update()
	}

	return changed, nil
}

// tryCascade attempts each rule in cascade order against n, stopping at
// the first one that applies.
func tryCascade(ntk *aig.Network, dv *depthview.View, n aig.NodeID) (RuleName, bool, error) {
	for _, rule := range cascade {
		_, applied, err := matcherFuncs[rule](ntk, dv, n)
		if err != nil {
			return rule, false, err
		}
		if applied {
			return rule, true, nil
		}
	}

	return "", false, nil
}

// logger is the subset of *obslog.Logger the driver needs, named locally
// so runPass's signature doesn't import internal/obslog just to spell the
// parameter type.
type logger interface {
	Info(msg string, kv ...interface{})
	Debug(msg string, kv ...interface{})
}
