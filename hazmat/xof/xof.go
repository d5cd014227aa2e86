// Package xof exposes the two collaborator hash functions the solver's block-template pipeline needs: expanding a
// block header into the 42-bit number buffer the solver consumes, and committing a completed header to a fixed-size
// proof-of-work hash.
package xof

import "crypto/sha3"

// Expand evaluates SHAKE256 over header and returns outLen bytes of pseudorandom output, the packed number buffer
// the solver unpacks into its N values. Expand is a pure function of header: identical headers always expand to
// identical output.
func Expand(header []byte, outLen int) []byte {
	h := sha3.NewSHAKE256()
	_, _ = h.Write(header)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}

// Commit evaluates SHA3-256 over a completed block header (header with nonce and embedded solution) and returns the
// 32-byte proof-of-work hash.
func Commit(header []byte) [32]byte {
	return sha3.Sum256(header)
}
