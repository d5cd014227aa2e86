package npppow

import "encoding/binary"

// mask42 keeps the low B=42 bits of a word.
const mask42 = (uint64(1) << B) - 1

// unpack decodes the N little-endian B-bit numbers packed contiguously in input, writing them into numbers.
//
// Number i occupies bits [i·B, i·B+B) of the input stream: byte offset ⌊i·B/8⌋, shifted right by (i·B) mod 8 and
// masked to B bits. For N=128, B=42 the widest shift is 6 bits, so the 42 data bits of any number always fall
// within 6 bytes of its offset; the last number's window (bytes 666–671) exactly reaches the end of a 672-byte
// buffer. unpack reads up to 8 bytes per number (zero-padding past the end of input, which is safe since the real
// data never extends into the padding) rather than relying on an out-of-bounds 8-byte read the way the reference
// implementation does.
//
// The caller must have already verified len(input) >= InputSize.
func unpack(input []byte, numbers *[N]uint64) {
	for i := range N {
		off := i * B / 8
		shift := uint((i * B) % 8)

		var buf [8]byte
		copy(buf[:], input[off:])

		v := binary.LittleEndian.Uint64(buf[:])
		v >>= shift
		v &= mask42

		numbers[i] = v
	}
}
