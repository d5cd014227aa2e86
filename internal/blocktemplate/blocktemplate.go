// Package blocktemplate parses and rewrites the fixed-layout block header the miner hashes against: a base header
// region, a 4-byte nonce field, and a trailing region where a found solution is embedded before committing.
package blocktemplate

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

const (
	// NonceOffset is the byte offset of the 4-byte little-endian nonce field within the template.
	NonceOffset = 39

	// BaseSize is the number of header bytes hashed via [hazmat/xof.Expand] to produce the solver's number buffer;
	// everything from offset 0 up to BaseSize, including the nonce field, is absorbed.
	BaseSize = 76

	// SolutionOffset is the byte offset at which a found solution is embedded, immediately following the base
	// region.
	SolutionOffset = BaseSize

	// SolutionSize is the size in bytes of the embedded solution field.
	SolutionSize = 16
)

// ErrInvalidTemplate is returned when a template is too short to hold the base header and solution fields.
var ErrInvalidTemplate = errors.New("blocktemplate: template too short")

// Template is a mutable block header buffer.
type Template struct {
	data []byte
}

// Parse decodes a hex-encoded block template. The decoded buffer must be at least SolutionOffset+SolutionSize bytes.
func Parse(hexTemplate string) (*Template, error) {
	data, err := hex.DecodeString(hexTemplate)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// FromBytes wraps a raw block template buffer. The buffer must be at least SolutionOffset+SolutionSize bytes.
func FromBytes(data []byte) (*Template, error) {
	if len(data) < SolutionOffset+SolutionSize {
		return nil, ErrInvalidTemplate
	}
	return &Template{data: append([]byte(nil), data...)}, nil
}

// SetNonce writes nonce into the template's nonce field.
func (t *Template) SetNonce(nonce uint32) {
	binary.LittleEndian.PutUint32(t.data[NonceOffset:NonceOffset+4], nonce)
}

// Nonce reads the template's current nonce field.
func (t *Template) Nonce() uint32 {
	return binary.LittleEndian.Uint32(t.data[NonceOffset : NonceOffset+4])
}

// Base returns the header region hashed to derive the solver's number buffer.
func (t *Template) Base() []byte {
	return t.data[:BaseSize]
}

// EmbedSolution writes a packed 16-byte solution mask into the template's solution field.
func (t *Template) EmbedSolution(lo, hi uint64) {
	binary.LittleEndian.PutUint64(t.data[SolutionOffset:SolutionOffset+8], lo)
	binary.LittleEndian.PutUint64(t.data[SolutionOffset+8:SolutionOffset+16], hi)
}

// Bytes returns the full template buffer, including the nonce and any embedded solution.
func (t *Template) Bytes() []byte {
	return t.data
}

// Hex returns the full template buffer hex-encoded.
func (t *Template) Hex() string {
	return hex.EncodeToString(t.data)
}

// Clone returns an independent copy of the template.
func (t *Template) Clone() *Template {
	return &Template{data: append([]byte(nil), t.data...)}
}
