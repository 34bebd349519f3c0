// Package depthview implements the depth decoration a depth-reducing AIG
// rewriter needs: per-AND-gate level (longest path in AND gates from any
// primary input) and on-critical-path membership (lies on some root-to-leaf
// path whose length equals the network's global depth), plus the
// recomputation step the rewriting driver runs after every accepted
// substitution.
//
// A View is always attached to one *aig.Network. It starts stale and must
// be brought up to date with Update before any level/critical-path query
// is trusted — matchers that read a stale view would otherwise be a
// driver invariant violation (an unleveled access).
//
// Level assignment walks a post-order topological traversal (a White/
// Gray/Black DFS over the live fanin graph) rather than the arena's
// ascending id order: a substitution can retarget an existing gate's
// fanin onto a freshly synthesized node with a larger id, so id order
// alone stops being topological after the first rewrite. Critical-path
// marking is a single backward scan: a BFS frontier keyed by distance
// from the network's maximum-depth outputs.
package depthview
