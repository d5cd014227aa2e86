// Package attestation binds a solved block header to the miner who found it.
//
// A solution alone is silently re-submittable by anyone who observes it on the wire. Attestation wraps the solved
// header in a Schnorr-style signature over Ristretto255, so only the holder of the claimed private key could have
// produced it.
package attestation

import (
	"bytes"

	"github.com/gtank/ristretto255"

	"github.com/bitsignal/npppow/internal/transcript"
)

// Size is the length of an attestation in bytes: a 32-byte commitment point and a 32-byte proof scalar.
const Size = 64

// domain is the transcript's protocol-identity label, binding attestations to this scheme and never to any other
// transcript consumer.
const domain = "npppow.attestation.v1"

// Sign produces a strongly unforgeable attestation of header under the given Ristretto255 private key. rand is
// optional hedging material mixed alongside the deterministic nonce derivation; pass nil to omit it.
func Sign(d *ristretto255.Scalar, header []byte, rand []byte) []byte {
	p := transcript.New(domain)
	p.Mix("signer", ristretto255.NewIdentityElement().ScalarBaseMult(d).Bytes())
	p.Mix("header", header)

	// Fork the transcript into prover/verifier roles and mix the signer's private key and hedging randomness into
	// the prover only.
	prover, verifier := p.Fork("role", []byte("prover"), []byte("verifier"))
	prover.Mix("signer-private", d.Bytes())
	prover.Mix("hedged-rand", rand)

	// Derive a commitment scalar unique to the signer, header, and hedging material, eliminating the risk of
	// private-key recovery through nonce reuse.
	k, _ := ristretto255.NewScalar().SetUniformBytes(prover.Derive("commitment", nil, 64))
	r := ristretto255.NewIdentityElement().ScalarBaseMult(k)
	rOut := r.Bytes()

	verifier.Mix("commitment", rOut)
	c, _ := ristretto255.NewScalar().SetUniformBytes(verifier.Derive("challenge", nil, 64))

	s := ristretto255.NewScalar().Multiply(d, c)
	s = s.Add(s, k)
	return append(rOut, s.Bytes()...)
}

// Verify reports whether sig is a valid attestation of header under the public key q.
func Verify(q *ristretto255.Element, header []byte, sig []byte) bool {
	if len(sig) != Size {
		return false
	}

	p := transcript.New(domain)
	p.Mix("signer", q.Bytes())
	p.Mix("header", header)

	_, verifier := p.Fork("role", []byte("prover"), []byte("verifier"))
	verifier.Mix("commitment", sig[:32])

	c, _ := ristretto255.NewScalar().SetUniformBytes(verifier.Derive("challenge", nil, 64))

	s, _ := ristretto255.NewScalar().SetCanonicalBytes(sig[32:])
	if s == nil {
		return false
	}

	// Expected commitment point: R' = [s]G + [-c]Q
	expectedR := ristretto255.NewIdentityElement().VarTimeDoubleScalarBaseMult(ristretto255.NewScalar().Negate(c), q, s)

	return bytes.Equal(sig[:32], expectedR.Bytes())
}
