package crc16

import (
	"testing"

	"github.com/nistvan86/picm/word128"
)

// TestOfKnownVector checks the standard CRC-16/CCITT-FALSE check value for
// the ASCII string "123456789", the canonical test vector for this
// parameterisation (poly=0x1021, init=0xFFFF, refIn=false, refOut=false,
// xorOut=0x0000).
func TestOfKnownVector(t *testing.T) {
	// Of expects its meaningful content bottom-aligned within the low
	// `bits` bits of data (bits [bits-1:0]), matching how Seal calls it
	// on word.Shr(16). So the 9 message bytes occupy bits [71:0] here.
	msg := []byte("123456789")
	var w word128.Word
	for i, b := range msg {
		w = w.Or(word128.Place(uint64(b), 8, uint(72-8*(i+1))))
	}
	got := Of(w, 72)
	if got != 0x29B1 {
		t.Fatalf("got %#04x, want 0x29b1", got)
	}
}

// TestOfAllZero checks the (non-trivial) result of running 14 zero bytes
// through the register: init=0xFFFF does not survive an all-zero message
// under this polynomial (only the zero-length message leaves it
// untouched), so the expected value here is the CRC's actual result for
// all-zero input, not the initial register value.
func TestOfAllZero(t *testing.T) {
	got := Of(word128.Word{}, 112)
	const wantAllZero = 0xA96A
	if got != wantAllZero {
		t.Fatalf("got %#04x, want %#04x", got, wantAllZero)
	}
}

func TestSealPreservesTopBits(t *testing.T) {
	w := word128.Place(0x1ABC, 14, 114).Or(word128.Place(0x2DEF, 14, 100))
	sealed := Seal(w)
	if sealed.Shr(16) != w.Shr(16) {
		t.Fatalf("Seal modified bits above [15:0]")
	}
	if sealed.Or(word128.Place(0xFFFF, 16, 0)) == sealed {
		// low 16 bits already all-ones would make this a no-op; guard
		// against a vacuous pass.
		t.Skip("low 16 bits happened to already be all ones")
	}
}

func TestSealRoundTrip(t *testing.T) {
	w := word128.Place(0x1FFF, 14, 44)
	sealed := Seal(w)
	want := Of(sealed.Shr(16), 112)
	if got := uint16(sealed.Lo & 0xFFFF); got != want {
		t.Fatalf("seal low bits = %#04x, want %#04x", got, want)
	}
}
