package raster

import (
	"testing"

	"github.com/nistvan86/picm/crc16"
	"github.com/nistvan86/picm/word128"
)

// TestBitsToPixelsBijection checks that reassembling bits from
// BitsToPixels MSB-first reproduces the original word exactly.
func TestBitsToPixelsBijection(t *testing.T) {
	cases := []word128.Word{
		{},
		{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF},
		{Hi: 0x0123456789ABCDEF, Lo: 0xFEDCBA9876543210},
		CTL,
	}
	for _, w := range cases {
		pixels := BitsToPixels(w)
		var got word128.Word
		for i, p := range pixels {
			if p != Black && p != MidGray {
				t.Fatalf("pixel %d = %d, want Black or MidGray", i, p)
			}
			if p == MidGray {
				got = got.Or(word128.Place(1, 1, uint(127-i)))
			}
		}
		if got != w {
			t.Fatalf("round-trip mismatch: got %+v, want %+v", got, w)
		}
	}
}

// TestCTLPreservesModeNibble checks that the CTL word's top nibble
// pattern and payload nibble survive sealing, per the CTL line
// construction in the line-word layout.
func TestCTLPreservesModeNibble(t *testing.T) {
	if got := CTL.Shr(72).Lo & 0xFFFFFFFFFFFFFF; got != 0xCCCCCCCCCCCCCC {
		t.Fatalf("top 56 bits = %#x, want %#x", got, 0xCCCCCCCCCCCCCC)
	}
	if got := CTL.Shr(16).Lo & 0xF; got != 0b0011 {
		t.Fatalf("payload nibble = %#x, want 0b0011", got)
	}
	wantCRC := crc16.Of(CTL.Shr(16), 112)
	if got := uint16(CTL.Lo & 0xFFFF); got != wantCRC {
		t.Fatalf("CRC = %#04x, want %#04x", got, wantCRC)
	}
}

// TestComposeLineLayout checks Scenario D: preamble, white reference and
// data-pixel placement of a composed raster line built from the CTL word.
func TestComposeLineLayout(t *testing.T) {
	line := ComposeLine(CTL)
	wantPreamble := [4]byte{1, 0, 1, 0}
	var gotPreamble [4]byte
	copy(gotPreamble[:], line[0:4])
	if gotPreamble != wantPreamble {
		t.Fatalf("preamble = %v, want %v", gotPreamble, wantPreamble)
	}

	wantWhiteRef := [5]byte{0, 2, 2, 2, 2}
	var gotWhiteRef [5]byte
	copy(gotWhiteRef[:], line[132:137])
	if gotWhiteRef != wantWhiteRef {
		t.Fatalf("white reference = %v, want %v", gotWhiteRef, wantWhiteRef)
	}

	data := BitsToPixels(CTL)
	for i, p := range data {
		if line[4+i] != p {
			t.Fatalf("data byte %d = %d, want %d", i, line[4+i], p)
		}
	}
}
