// Package transcript implements a transcript-based cryptographic protocol framework used to derive the solver's
// attestation signatures.
//
// Every operation appends a length-prefixed, domain-separated frame to an in-memory transcript. Finalizing
// operations (Derive) evaluate cSHAKE128 over the accumulated transcript, derive pseudorandom output, and reset the
// transcript with a chain value so later operations remain bound to everything absorbed so far.
package transcript

import (
	"crypto/sha3"
	"fmt"
)

// chainValueSize is the chain value size in bytes.
const chainValueSize = 64

// Operation codes, used purely for domain separation between frame kinds.
const (
	opInit   = 0x10
	opMix    = 0x11
	opFork   = 0x13
	opDerive = 0x14
	opChain  = 0x18
)

// Protocol is a transcript-based cryptographic protocol instance.
//
// Operations append frames to an internal transcript. Finalizing operations (Derive) evaluate cSHAKE128 over the
// transcript, derive outputs, and reset the transcript with a chain value.
type Protocol struct {
	buf       []byte
	initLabel string
}

// New creates a new protocol instance with the given label for domain separation. The label establishes the protocol
// identity: two protocols using different labels produce cryptographically independent transcripts.
func New(label string) *Protocol {
	p := &Protocol{initLabel: label}
	p.writeOpLabel(opInit, label)
	return p
}

func (p *Protocol) String() string {
	return fmt.Sprintf("Protocol(%s)", p.initLabel)
}

// Mix absorbs data into the protocol transcript. Use for key material, nonces, associated data, and any protocol
// input that fits in memory.
func (p *Protocol) Mix(label string, data []byte) {
	p.writeOpLabel(opMix, label)
	p.writeLengthEncode(data)
}

// Fork calls ForkN with the given label and values and returns the two branches.
func (p *Protocol) Fork(label string, left, right []byte) (*Protocol, *Protocol) {
	branches := p.ForkN(label, left, right)
	return branches[0], branches[1]
}

// ForkN clones the protocol state into N independent branches and modifies the base. The base receives ordinal 0
// with an empty value. Each clone receives ordinals 1 through N with the corresponding value. Callers must ensure
// clone values are distinct from each other.
func (p *Protocol) ForkN(label string, values ...[]byte) []*Protocol {
	n := len(values)

	// Write the common prefix.
	p.writeOpLabel(opFork, label)
	p.writeLeftEncode(uint64(n))

	// Create clones before writing the base's ordinal.
	clones := make([]*Protocol, n)
	for i := range n {
		clone := p.Clone()
		clone.writeLeftEncode(uint64(i + 1))
		clone.writeLengthEncode(values[i])
		clones[i] = clone
	}

	// Finalize base (ordinal 0, empty value).
	p.writeLeftEncode(0)
	p.writeLengthEncode(nil)

	return clones
}

// Derive produces pseudorandom output that is a deterministic function of the full transcript and resets the
// transcript with a chain value, so subsequent operations remain bound to everything derived so far. outputLen must
// be greater than zero.
func (p *Protocol) Derive(label string, dst []byte, outputLen int) []byte {
	if outputLen <= 0 {
		panic("transcript: Derive output_len must be greater than zero")
	}

	p.writeOpLabel(opDerive, label)
	p.writeLeftEncode(uint64(outputLen))

	ret, out := sliceForAppend(dst, outputLen)
	p.squeeze("output", out)
	cv := p.squeezeChainValue()

	p.resetChain(opDerive, cv[:])

	return ret
}

// Clone returns an independent copy of the protocol state. The original and clone evolve independently.
func (p *Protocol) Clone() *Protocol {
	return &Protocol{buf: append([]byte(nil), p.buf...), initLabel: p.initLabel}
}

// squeeze evaluates cSHAKE128 over the accumulated transcript, domain-separated by purpose, and reads outLen bytes
// into out.
func (p *Protocol) squeeze(purpose string, out []byte) {
	h := sha3.NewCSHAKE128(nil, []byte(p.initLabel+"/"+purpose))
	_, _ = h.Write(p.buf)
	_, _ = h.Read(out)
}

// squeezeChainValue derives the chain value bound to the current transcript.
func (p *Protocol) squeezeChainValue() [chainValueSize]byte {
	var cv [chainValueSize]byte
	p.squeeze("chain", cv[:])
	return cv
}

// writeOpLabel writes op || length_encode(label) into the transcript. All protocol operations start with this
// preamble.
func (p *Protocol) writeOpLabel(op byte, label string) {
	p.buf = append(p.buf, op)
	p.writeLengthEncode([]byte(label))
}

// resetChain resets the transcript to a single CHAIN frame: opChain || originOp || length_encode(chainValue).
func (p *Protocol) resetChain(originOp byte, chainValue []byte) {
	p.buf = p.buf[:0]
	p.buf = append(p.buf, opChain, originOp)
	p.writeLengthEncode(chainValue)
}

// writeLeftEncode writes left_encode(x) as defined in NIST SP 800-185.
func (p *Protocol) writeLeftEncode(x uint64) {
	var buf [9]byte

	if x == 0 {
		buf[0] = 1
		p.buf = append(p.buf, buf[:2]...)
		return
	}

	i := 8
	v := x
	for v > 0 {
		buf[i] = byte(v)
		v >>= 8
		i--
	}
	buf[i] = byte(8 - i)
	p.buf = append(p.buf, buf[i:9]...)
}

// writeLengthEncode writes length_encode(x) = left_encode(len(x)) || x.
func (p *Protocol) writeLengthEncode(data []byte) {
	p.writeLeftEncode(uint64(len(data)))
	p.buf = append(p.buf, data...)
}

func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
