// Package rewrite implements a depth-reducing algebraic AIG rewriter:
// four local, Boolean-equivalent pattern matchers (Associativity,
// Distributivity-OR, Distributivity-AND, Three-Layer) and the fixpoint
// driver that applies them.
//
// Rewrite(network, opts...) is the single public entry point. It mutates
// network in place: each full pass visits every live AND gate in
// ascending arena-id order, offers it to the matcher cascade in a fixed
// order, and on the first match commits the substitution, marks the depth
// view stale, and recomputes it before inspecting any further node. A
// pass with zero rewrites ends the fixpoint. Ascending id order is
// topological only until a substitution retargets a gate onto a
// later-created node (see depthview); after that, a pass can visit a gate
// before one of its fanins.
//
// The package holds no network storage of its own; it is pure logic over
// the concrete *aig.Network and *depthview.View types. No interface
// abstracts them, so the matchers and the driver accept no other network
// implementation.
package rewrite
