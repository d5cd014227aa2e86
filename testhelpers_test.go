package npppow

import (
	"encoding/binary"
	"slices"
)

// packNumbers encodes numbers as an InputSize-byte buffer in the §6 wire format: N B-bit numbers, packed LSB-first,
// contiguous, little-endian. It is the inverse of unpack, used to build fixture inputs for tests.
func packNumbers(numbers [N]uint64) []byte {
	buf := make([]byte, InputSize)

	for i, v := range numbers {
		v &= mask42
		off := i * B / 8
		shift := uint((i * B) % 8)

		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v<<shift)

		for j := range 8 {
			if off+j >= len(buf) {
				break
			}
			buf[off+j] |= tmp[j]
		}
	}

	return buf
}

// kkDifference computes the Karmarkar–Karp difference of numbers by brute-force repeated max-pair reduction,
// independent of [Solver], for use as a test oracle.
func kkDifference(numbers [N]uint64) uint64 {
	vals := slices.Clone(numbers[:])
	for len(vals) > 1 {
		// Find and remove the two largest.
		hi1, hi2 := 0, 1
		if vals[hi2] > vals[hi1] {
			hi1, hi2 = hi2, hi1
		}
		for i := 2; i < len(vals); i++ {
			switch {
			case vals[i] > vals[hi1]:
				hi2 = hi1
				hi1 = i
			case vals[i] > vals[hi2]:
				hi2 = i
			}
		}

		a, b := vals[hi1], vals[hi2]
		diff := a - b

		// Remove hi1 and hi2 (higher index first), append the difference.
		if hi1 < hi2 {
			hi1, hi2 = hi2, hi1
		}
		vals = append(vals[:hi1], vals[hi1+1:]...)
		vals = append(vals[:hi2], vals[hi2+1:]...)
		vals = append(vals, diff)
	}
	return vals[0]
}
