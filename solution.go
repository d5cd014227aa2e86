package npppow

import "encoding/binary"

// Solution is a 128-bit ±1 assignment mask: bit i signifies that leaf i received the sign +1 in the signed sum.
// Bits 0–63 live in Lo, bits 64–127 in Hi.
//
// Canonical form: Lo&1 == 1 (leaf 0 is always +1). [Solver.Solve] only ever returns canonical solutions; [Verify]
// rejects non-canonical ones.
type Solution struct {
	Lo, Hi uint64
}

// Bytes encodes the solution as its 16-byte little-endian wire form (lo, then hi).
func (s Solution) Bytes() []byte {
	var b [SolutionSize]byte
	binary.LittleEndian.PutUint64(b[0:8], s.Lo)
	binary.LittleEndian.PutUint64(b[8:16], s.Hi)
	return b[:]
}

// ParseSolution decodes a solution from its 16-byte little-endian wire form.
func ParseSolution(b []byte) (Solution, bool) {
	if len(b) != SolutionSize {
		return Solution{}, false
	}
	return Solution{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}, true
}

// setBit sets bit i (0..127) in the mask.
func (s *Solution) setBit(i uint32) {
	if i < 64 {
		s.Lo |= uint64(1) << i
	} else {
		s.Hi |= uint64(1) << (i - 64)
	}
}

// canonicalize returns s, complemented if necessary so that Lo&1 == 1. Complementing both words flips the sign of
// the signed sum the mask represents, which is valid because the PoW accepts ±1 magnitudes symmetrically.
func (s Solution) canonicalize() Solution {
	if s.Lo&1 == 0 {
		return Solution{Lo: ^s.Lo, Hi: ^s.Hi}
	}
	return s
}

// pack walks the binary tree rooted at root, assigning ±1 to each leaf index and returning the resulting mask.
//
// The walk carries a "first" flag, true for the root. On a leaf, first being true sets that leaf's bit. On an
// internal node, the walk recurses into left with the same first, and into right with first if the node's
// operation is Addition, or !first if it is Subtraction — a leaf's sign flips every time its path to the root
// crosses a Subtraction's right edge.
func pack(a *arena, root ref) Solution {
	var s Solution
	packInto(a, root, true, &s)
	return s
}

func packInto(a *arena, r ref, first bool, s *Solution) {
	n := a.at(r)
	if n.isLeaf() {
		if first {
			s.setBit(n.index)
		}
		return
	}

	packInto(a, n.left, first, s)

	right := first
	if n.op == opSub {
		right = !first
	}
	packInto(a, n.right, right, s)
}
