// Package mem provides small byte-slice utilities.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a slice with the contents of the given
// slice followed by that many bytes and a second slice that aliases the first and contains only the extra bytes. If
// the original slice has sufficient capacity then no allocation occurs.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
