package blocktemplate_test

import (
	"testing"

	"github.com/bitsignal/npppow/internal/blocktemplate"
)

const sampleHex = "0707f7a4f0d605b303260816ba3f10902e1a145ac5fad3aa3af6ea44c11869dc4f853f002b2eea0000000077b206" +
	"a02ca5b1d4ce6bbfdf0acac38bded34d2dcdeef95cd20cefc12f61d5610900000000000000000000000000000000"

func TestParse_RoundTrip(t *testing.T) {
	// S9: parsing and re-serializing a template without modification reproduces the original hex.
	tmpl, err := blocktemplate.Parse(sampleHex)
	if err != nil {
		t.Fatal(err)
	}
	if got := tmpl.Hex(); got != sampleHex {
		t.Fatalf("Hex() = %s, want %s", got, sampleHex)
	}
}

func TestParse_RejectsShortTemplate(t *testing.T) {
	if _, err := blocktemplate.Parse("0011"); err == nil {
		t.Error("Parse accepted an undersized template")
	}
}

func TestParse_RejectsInvalidHex(t *testing.T) {
	if _, err := blocktemplate.Parse("not-hex"); err == nil {
		t.Error("Parse accepted invalid hex")
	}
}

func TestSetNonce_RoundTrip(t *testing.T) {
	tmpl, err := blocktemplate.Parse(sampleHex)
	if err != nil {
		t.Fatal(err)
	}
	tmpl.SetNonce(0xDEADBEEF)
	if got := tmpl.Nonce(); got != 0xDEADBEEF {
		t.Fatalf("Nonce() = %#x, want %#x", got, 0xDEADBEEF)
	}
}

func TestEmbedSolution_RoundTrip(t *testing.T) {
	tmpl, err := blocktemplate.Parse(sampleHex)
	if err != nil {
		t.Fatal(err)
	}
	tmpl.EmbedSolution(0x0123456789ABCDEF, 0xFEDCBA9876543210)

	b := tmpl.Bytes()
	got := b[blocktemplate.SolutionOffset : blocktemplate.SolutionOffset+blocktemplate.SolutionSize]
	want := []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, 0x10, 0x32, 0x54, 0x76, 0x98, 0xBA, 0xDC, 0xFE}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("embedded solution byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestClone_Independent(t *testing.T) {
	tmpl, err := blocktemplate.Parse(sampleHex)
	if err != nil {
		t.Fatal(err)
	}
	clone := tmpl.Clone()
	clone.SetNonce(1)

	if tmpl.Nonce() == clone.Nonce() {
		t.Error("mutating the clone's nonce leaked into the original")
	}
}

func TestBase_MatchesConfiguredSize(t *testing.T) {
	tmpl, err := blocktemplate.Parse(sampleHex)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tmpl.Base()); got != blocktemplate.BaseSize {
		t.Fatalf("len(Base()) = %d, want %d", got, blocktemplate.BaseSize)
	}
}
