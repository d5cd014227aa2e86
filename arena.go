package npppow

import "slices"

// arena is an append-only store of [node] values, addressed by stable [ref] index. It never shrinks its backing
// array, so references stay valid for the lifetime of one Solver as long as the node count never exceeds its
// pre-reserved capacity of 2·N: N leaves plus at most N−1 internal nodes built while reducing them to one root.
type arena struct {
	nodes []node
}

// init pre-reserves capacity for 2·N nodes so a solve attempt never reallocates the backing array.
func (a *arena) init() {
	a.nodes = make([]node, 0, 2*N)
}

// reset empties the arena entirely. Called once at the start of each [Solver.Solve].
func (a *arena) reset() {
	a.nodes = a.nodes[:0]
}

// resetToLeaves truncates the arena back to exactly its first N nodes (the leaves pushed by the most recent
// unpack), discarding every internal node built by a previous tree path's reduction.
func (a *arena) resetToLeaves() {
	a.nodes = a.nodes[:N]
}

// pushLeaf appends a leaf node carrying value and its original index, returning its ref.
func (a *arena) pushLeaf(value uint64, index uint32) ref {
	a.nodes = append(a.nodes, node{value: value, left: noRef, right: noRef, index: index})
	return ref(len(a.nodes) - 1)
}

// pushInternal appends an internal node combining left and right with op, computing its value from the children's
// current values. The caller must ensure left.value ≥ right.value when op is opSub.
func (a *arena) pushInternal(left, right ref, op operation) ref {
	lv, rv := a.nodes[left].value, a.nodes[right].value

	var v uint64
	if op == opAdd {
		v = lv + rv
	} else {
		v = lv - rv
	}

	a.nodes = append(a.nodes, node{value: v, left: left, right: right, op: op})
	return ref(len(a.nodes) - 1)
}

// at returns the node addressed by r.
func (a *arena) at(r ref) *node {
	return &a.nodes[r]
}

// sortLeaves fully sorts the arena's first N nodes ascending by value. Called once per Solve, after unpacking; every
// reduction thereafter relies on [workingSet.sortLastElement] to restore order incrementally.
func (a *arena) sortLeaves() {
	leaves := a.nodes[:N]
	slices.SortFunc(leaves, func(x, y node) int {
		switch {
		case x.value < y.value:
			return -1
		case x.value > y.value:
			return 1
		default:
			return 0
		}
	})
}
