package boundary

// stitch.go - greedy reassembly of way fragments into maximal rings
//
// A boundary relation lists its ways in arbitrary order and each way has an
// arbitrary direction. Fragments that belong together share an endpoint id.
// Stitching assumes no point id is the endpoint of three or more fragments;
// where that does not hold the first fragment found in pool order wins, which
// is deterministic but not necessarily topologically correct.

// Stitch merges chains sharing endpoint ids into maximal chains.
//
// The shared endpoint is kept once at each join, so a fully closed boundary
// comes out with its first id equal to its last. Closure is not verified.
// Chains with fewer than two points are passed through unchanged and never
// joined. The input chains are not modified.
func Stitch(chains []NodeChain) []NodeChain {
	// pool holds indices of unconsumed fragments. Seeds are taken from the
	// front so already maximal input keeps its order; matches are removed by
	// swapping with the last entry.
	pool := make([]int, len(chains))
	for i := range chains {
		pool[i] = i
	}

	result := make([]NodeChain, 0, len(chains))

	for len(pool) > 0 {
		seed := chains[pool[0]]
		pool = pool[1:]

		if len(seed) < 2 {
			result = append(result, seed)
			continue
		}

		path := newPath(seed)
		for {
			if i, reversed, ok := findMatch(chains, pool, path.firstID()); ok {
				path.prepend(chains[pool[i]], reversed)
				pool = swapRemove(pool, i)
				continue
			}
			if i, reversed, ok := findMatch(chains, pool, path.lastID()); ok {
				path.append(chains[pool[i]], reversed)
				pool = swapRemove(pool, i)
				continue
			}
			break
		}

		result = append(result, path.chain())
	}

	return result
}

// findMatch searches the pool for a fragment with an endpoint equal to id.
// reversed is true when the match is on the fragment's last point.
func findMatch(chains []NodeChain, pool []int, id int64) (index int, reversed bool, ok bool) {
	for i, c := range pool {
		chain := chains[c]
		if len(chain) < 2 {
			continue
		}
		if chain[0].ID == id {
			return i, false, true
		}
		if chain[len(chain)-1].ID == id {
			return i, true, true
		}
	}
	return 0, false, false
}

// swapRemove removes pool[i] in O(1) without preserving order.
func swapRemove(pool []int, i int) []int {
	last := len(pool) - 1
	pool[i] = pool[last]
	return pool[:last]
}

// path is a chain under construction that grows at both ends.
// head holds prepended points nearest-first, i.e. in reverse order.
type path struct {
	head NodeChain
	tail NodeChain
}

func newPath(seed NodeChain) *path {
	tail := make(NodeChain, len(seed))
	copy(tail, seed)
	return &path{tail: tail}
}

func (p *path) firstID() int64 {
	if len(p.head) > 0 {
		return p.head[len(p.head)-1].ID
	}
	return p.tail[0].ID
}

func (p *path) lastID() int64 {
	return p.tail[len(p.tail)-1].ID
}

// prepend attaches fragment before the path. The fragment touches the path's
// first point with its first point (reversed=false) or its last (reversed=true);
// that shared point is not repeated.
func (p *path) prepend(fragment NodeChain, reversed bool) {
	n := len(fragment)
	if reversed {
		// fragment ends at the join: walk it backwards from the point before the join
		for i := n - 2; i >= 0; i-- {
			p.head = append(p.head, fragment[i])
		}
		return
	}
	// fragment starts at the join: walk it forwards from the point after the join
	for i := 1; i < n; i++ {
		p.head = append(p.head, fragment[i])
	}
}

// append attaches fragment after the path, dropping the shared join point.
func (p *path) append(fragment NodeChain, reversed bool) {
	n := len(fragment)
	if reversed {
		for i := n - 2; i >= 0; i-- {
			p.tail = append(p.tail, fragment[i])
		}
		return
	}
	p.tail = append(p.tail, fragment[1:]...)
}

func (p *path) chain() NodeChain {
	out := make(NodeChain, 0, len(p.head)+len(p.tail))
	for i := len(p.head) - 1; i >= 0; i-- {
		out = append(out, p.head[i])
	}
	return append(out, p.tail...)
}
