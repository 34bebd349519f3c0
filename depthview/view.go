package depthview

import "github.com/katalvlaran/aigrw/aig"

// View decorates an *aig.Network with per-node level and critical-path
// membership, recomputed on demand by Update. It owns no network state of
// its own beyond these decorations.
type View struct {
	ntk        *aig.Network
	level      []int
	onCritical []bool
	depth      int
	dirty      bool
}

// New attaches a View to ntk. The view starts stale; call Update before
// any query.
func New(ntk *aig.Network) *View {
	return &View{ntk: ntk, dirty: true}
}

// Stale reports whether Update must be called before the next query.
// Querying while Stale is true is the driver invariant violation the
// rewrite driver treats as an unleveled access.
func (v *View) Stale() bool { return v.dirty }

// MarkStale flags the view as out of date. The driver calls this after
// every accepted substitution; Update clears the flag.
func (v *View) MarkStale() { v.dirty = true }

// Depth returns the network's global depth: the greatest level among all
// primary-output drivers. Valid only when !Stale().
func (v *View) Depth() int { return v.depth }

// Level returns the longest AND-gate path from any primary input to id.
// Primary inputs and the constant have level 0. Valid only when !Stale().
func (v *View) Level(id aig.NodeID) int { return v.level[id] }

// IsOnCriticalPath reports whether id lies on some primary-input-to-
// primary-output path whose length equals Depth(). Valid only when
// !Stale().
func (v *View) IsOnCriticalPath(id aig.NodeID) bool { return v.onCritical[id] }

// Update recomputes level for every node and on-critical-path membership
// for every node reachable from a maximum-depth output, then clears the
// stale flag.
//
// Level assignment walks a post-order traversal produced by topoOrder
// rather than simply scanning ids in ascending order: a substitution can
// retarget an existing gate's fanin onto a freshly synthesized node whose
// id is numerically larger than that gate's own id (new nodes are always
// appended at the end of the arena), so ascending id order is no longer
// guaranteed to be topological once any rewrite has happened. Every
// AND gate's fanins are still guaranteed to precede it in topoOrder's
// output, which is what level assignment actually requires.
//
// Critical-path marking is a backward BFS seeded from every output whose
// driver achieves the global depth, descending to whichever fanin(s)
// realize that maximum at each step — a frontier-propagation idiom run in
// reverse from the outputs back toward the inputs.
//
// Complexity: O(V) for the topological walk and level assignment, O(V)
// for critical-path marking.
func (v *View) Update() {
	n := v.ntk.NumNodes()
	v.grow(n)

	v.level[0] = 0
	for _, nid := range v.topoOrder(n) {
		id := int(nid)
		switch v.ntk.Kind(nid) {
		case aig.KindInput:
			v.level[id] = 0
		case aig.KindAnd:
			a, b := v.ntk.Fanin(nid)
			la, lb := v.level[a.Node()], v.level[b.Node()]
			if la > lb {
				v.level[id] = la + 1
			} else {
				v.level[id] = lb + 1
			}
		}
	}

	depth := 0
	for _, s := range v.ntk.Outputs() {
		if l := v.level[s.Node()]; l > depth {
			depth = l
		}
	}
	v.depth = depth

	for id := range v.onCritical[:n] {
		v.onCritical[id] = false
	}
	queue := make([]aig.NodeID, 0, n)
	for _, s := range v.ntk.Outputs() {
		id := s.Node()
		if v.level[id] == depth && !v.onCritical[id] {
			v.onCritical[id] = true
			queue = append(queue, id)
		}
	}
	for i := 0; i < len(queue); i++ {
		id := queue[i]
		if v.ntk.Kind(id) != aig.KindAnd {
			continue
		}
		a, b := v.ntk.Fanin(id)
		want := v.level[id] - 1
		for _, c := range [2]aig.NodeID{a.Node(), b.Node()} {
			if v.level[c] == want && !v.onCritical[c] {
				v.onCritical[c] = true
				queue = append(queue, c)
			}
		}
	}

	v.dirty = false
}

// grow extends the level/onCritical slices to cover n nodes, preserving
// prior contents (rewriting only ever appends to the arena).
func (v *View) grow(n int) {
	if n <= len(v.level) {
		return
	}
	extra := n - len(v.level)
	v.level = append(v.level, make([]int, extra)...)
	v.onCritical = append(v.onCritical, make([]bool, extra)...)
}

// topoOrder returns every node id 0..n-1 in an order where each AND
// gate's two fanins already precede it, via an iterative post-order
// White/Gray/Black walk over the live fanin graph (the same coloring
// idiom as a textbook DFS-based topological sort, run iteratively to
// avoid recursion depth growing with AIG depth). It never assumes
// ascending id order is already topological: after a substitution it
// generally is not.
//
// The network is guaranteed acyclic by construction (SubstituteNode
// refuses any substitution that would introduce one), so this walk does
// not need to detect or report a cycle; a would-be back edge (a fanin
// already Gray) is simply never re-pushed, which also makes the walk
// robust against a latent invariant violation instead of looping forever.
func (v *View) topoOrder(n int) []aig.NodeID {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	state := make([]uint8, n)
	order := make([]aig.NodeID, 0, n)
	stack := make([]aig.NodeID, 0, n)

	for start := 0; start < n; start++ {
		if state[start] != white {
			continue
		}
		stack = append(stack, aig.NodeID(start))
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			switch state[id] {
			case white:
				state[id] = gray
				if v.ntk.Kind(id) == aig.KindAnd {
					a, b := v.ntk.Fanin(id)
					for _, f := range [2]aig.NodeID{a.Node(), b.Node()} {
						if state[f] == white {
							stack = append(stack, f)
						}
					}
				}
			case gray:
				stack = stack[:len(stack)-1]
				state[id] = black
				order = append(order, id)
			default: // black: a duplicate push from another parent, already resolved
				stack = stack[:len(stack)-1]
			}
		}
	}

	return order
}
