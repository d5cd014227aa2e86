// Package npppow implements the core of a proof-of-work solver based on the Number Partitioning Problem (NPP).
//
// Given a pseudo-random list of N fixed-width non-negative integers, a [Solver] searches for a signed ±1 assignment
// such that the absolute value of the signed sum is 0 or 1. A solution is a compact proof that a nontrivial
// partitioning search was performed on an input derived from a block header: a memory-light, CPU-bound proof-of-work.
//
// The search is built on the Karmarkar–Karp differencing heuristic. A [Solver] walks a sequence of "tree paths" that
// perturb the first few KK reductions away from the purely greedy choice, giving an enumerable neighborhood of the KK
// tree instead of a single heuristic run. See [Solver.Solve] for the search loop and [Verify] for the corresponding
// acceptance test.
//
// A Solver is single-threaded and owns its buffers exclusively; instantiate one Solver per goroutine.
package npppow

import (
	"errors"
	"fmt"
)

const (
	// N is the number of numbers partitioned in each attempt.
	N = 128

	// B is the bit width of each number.
	B = 42

	// InputSize is the number of input bytes required by [Solver.Solve]: ⌈N·B/8⌉.
	InputSize = (N*B + 7) / 8

	// SolutionSize is the wire size, in bytes, of a [Solution]: two little-endian uint64 words.
	SolutionSize = 16
)

// ErrInvalidInput is returned by [Solver.Solve] when the input buffer is shorter than [InputSize].
var ErrInvalidInput = errors.New("npppow: invalid input size")

// Solver holds the buffers for one sequence of solve attempts. Its arena, working set, and numbers table are reset on
// every call to [Solver.Solve]; callers must not retain references returned by previous calls.
//
// A Solver is not safe for concurrent use. Callers wanting parallelism should construct one Solver per goroutine.
type Solver struct {
	arena   arena
	working workingSet
	numbers [N]uint64
	enum    pathEnumerator
}

// NewSolver returns a new Solver with its arena and working set pre-reserved so that [Solver.Solve] never grows them.
// Solve still allocates the slice it returns whenever it finds at least one solution.
func NewSolver() *Solver {
	s := &Solver{}
	s.arena.init()
	s.working.init()
	return s
}

// Numbers returns a copy of the N numbers unpacked by the most recent call to [Solver.Solve]. The copy does not
// change when a later Solve call overwrites the Solver's internal table.
func (s *Solver) Numbers() [N]uint64 {
	return s.numbers
}

// Solve searches for at most maxSolutions solutions, probing at most maxLeaves tree paths (one full solve attempt
// along one tree path per leaf probed).
//
// Pass maxSolutions=1 for "stop at first solution" behavior; pass a larger maxSolutions to keep probing up to
// maxLeaves tree paths, appending every solution found along the way.
//
// Solve returns [ErrInvalidInput] if input is shorter than [InputSize].
func (s *Solver) Solve(input []byte, maxSolutions, maxLeaves int) ([]Solution, error) {
	if len(input) < InputSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrInvalidInput, len(input), InputSize)
	}

	s.unpackAndSort(input)
	s.enum.reset()

	var solutions []Solution
	leaves := 0
	for leaves < maxLeaves && len(solutions) < maxSolutions {
		path := s.enum.next()

		s.resetWorkingSet()
		root, diff := s.difference(path)

		if diff == 0 || diff == 1 {
			sol := pack(&s.arena, root)
			sol = sol.canonicalize()
			solutions = append(solutions, sol)
			if len(solutions) >= maxSolutions {
				break
			}
		}

		leaves++
	}

	return solutions, nil
}

// unpackAndSort unpacks the N numbers from input into the numbers table and the arena as leaves, then fully sorts the
// leaves ascending by value. This is the one full sort performed per Solve call; every subsequent reduction relies on
// [workingSet.sortLastElement] instead.
func (s *Solver) unpackAndSort(input []byte) {
	s.arena.reset()
	unpack(input, &s.numbers)
	for i, v := range s.numbers {
		s.arena.pushLeaf(v, uint32(i))
	}
	s.arena.sortLeaves()
}

// resetWorkingSet truncates the arena back to its N sorted leaves and refills the working set from them.
func (s *Solver) resetWorkingSet() {
	s.arena.resetToLeaves()
	s.working.clear()
	for i := range N {
		s.working.push(ref(i))
	}
}
