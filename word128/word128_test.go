package word128

import "testing"

func TestPlaceAndOr(t *testing.T) {
	// Place 0x3 (2 bits) at shift 16, and 0xFFFF (16 bits) at shift 0;
	// the two should combine without overlap.
	w := Place(0x3, 2, 16).Or(Place(0xFFFF, 16, 0))
	if w.Lo != 0x3FFFF {
		t.Fatalf("got Lo=%#x, want %#x", w.Lo, 0x3FFFF)
	}
	if w.Hi != 0 {
		t.Fatalf("got Hi=%#x, want 0", w.Hi)
	}
}

func TestPlaceHighField(t *testing.T) {
	// Top 14 bits, as used for word0 in the line layout: bits [127:114].
	w := Place(0x3FFF, 14, 114)
	want := Word{Hi: 0x3FFF << (114 - 64)}
	if w != want {
		t.Fatalf("got %+v, want %+v", w, want)
	}
}

func TestShrAcrossBoundary(t *testing.T) {
	w := Word{Hi: 1, Lo: 0}
	got := w.Shr(64)
	if got.Lo != 1 || got.Hi != 0 {
		t.Fatalf("got %+v, want Lo=1 Hi=0", got)
	}
}

func TestByte(t *testing.T) {
	w := Place(0xAB, 8, 120)
	if got := w.Byte(127); got != 0xAB {
		t.Fatalf("got %#x, want 0xab", got)
	}
}

func TestBytesRoundtrip(t *testing.T) {
	w := Place(0x1122, 16, 0).Or(Place(0x3344, 16, 112))
	b := w.Bytes()
	if b[0] != 0x33 || b[1] != 0x44 {
		t.Fatalf("unexpected high bytes: %x", b[:2])
	}
	if b[14] != 0x11 || b[15] != 0x22 {
		t.Fatalf("unexpected low bytes: %x", b[14:])
	}
}

func TestBit(t *testing.T) {
	w := Place(1, 1, 127)
	if w.Bit(127) != 1 {
		t.Fatalf("expected bit 127 set")
	}
	if w.Bit(0) != 0 {
		t.Fatalf("expected bit 0 clear")
	}
}
