// Package matcher implements a multi-pattern matcher for fixed-width
// UTF-16 code-unit sequences, backed by a ternary search tree.
//
// Patterns are inserted once and never removed; a built Tree is immutable
// under Match and safe for concurrent readers. Each pattern carries an
// integer value, by convention its own length in code units, returned on a
// successful match so callers know how much input the match consumed.
package matcher

// none marks an absent child link.
const none = int32(-1)

// node is one tree node in the arena. left and right branch between
// different code units at the same pattern depth; mid continues to the next
// code unit of the same pattern.
type node struct {
	c        uint16
	left     int32
	mid      int32
	right    int32
	value    int
	terminal bool
}

// Tree is a ternary search tree over code-unit sequences. Nodes live in a
// flat arena addressed by index, so inserts splice links by index rather
// than re-hanging subtrees.
type Tree struct {
	nodes []node
	root  int32
	count int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: none}
}

// Len returns the number of distinct patterns stored.
func (t *Tree) Len() int {
	return t.count
}

// Put inserts pattern with an associated value. It returns false without
// modifying the tree for empty patterns and for patterns already present:
// the first insertion of a given pattern wins and later ones are no-ops.
func (t *Tree) Put(pattern []uint16, value int) bool {
	if len(pattern) == 0 {
		return false
	}
	root, ok := t.put(t.root, pattern, 0, value)
	if !ok {
		return false
	}
	t.root = root
	t.count++
	return true
}

func (t *Tree) put(idx int32, pattern []uint16, depth, value int) (int32, bool) {
	c := pattern[depth]
	if idx == none {
		idx = t.alloc(c)
	}

	// Nodes are addressed by index, never by pointer, because the arena
	// may be re-sliced by deeper inserts.
	switch {
	case c < t.nodes[idx].c:
		child, ok := t.put(t.nodes[idx].left, pattern, depth, value)
		if !ok {
			return none, false
		}
		t.nodes[idx].left = child
	case c > t.nodes[idx].c:
		child, ok := t.put(t.nodes[idx].right, pattern, depth, value)
		if !ok {
			return none, false
		}
		t.nodes[idx].right = child
	case depth < len(pattern)-1:
		child, ok := t.put(t.nodes[idx].mid, pattern, depth+1, value)
		if !ok {
			return none, false
		}
		t.nodes[idx].mid = child
	default:
		if t.nodes[idx].terminal {
			return none, false // duplicate: first insertion wins
		}
		t.nodes[idx].terminal = true
		t.nodes[idx].value = value
	}
	return idx, true
}

func (t *Tree) alloc(c uint16) int32 {
	t.nodes = append(t.nodes, node{c: c, left: none, mid: none, right: none})
	return int32(len(t.nodes) - 1)
}

// Match looks for the longest pattern starting at query[offset] and returns
// its stored value. The descent is greedy and does not backtrack: as long as
// query units keep matching and a middle child exists it keeps going deeper,
// even past a node that already completes a shorter pattern. If the deeper
// continuation then fails, Match reports no match at all rather than falling
// back to the shorter pattern it passed along the way. Callers relying on a
// prefix separator being found must not also register a longer separator
// that extends it.
func (t *Tree) Match(query []uint16, offset int) (int, bool) {
	if offset < 0 || offset >= len(query) {
		return 0, false
	}

	idx := t.root
	depth := offset
	last := len(query) - 1
	for idx != none {
		n := &t.nodes[idx]
		c := query[depth]
		switch {
		case c < n.c:
			idx = n.left
		case c > n.c:
			idx = n.right
		case depth < last && n.mid != none:
			idx = n.mid
			depth++
		default:
			// Unit matched and there is nowhere deeper to go.
			if n.terminal {
				return n.value, true
			}
			return 0, false
		}
	}
	return 0, false
}
