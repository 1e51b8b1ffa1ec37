/*
NAME
  word128.go

DESCRIPTION
  word128.go provides Word, a fixed-width 128-bit value used to represent a
  PCM video line word.

AUTHOR
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package word128 provides a minimal fixed-width 128-bit unsigned integer,
// used to represent the 128-bit PCM video line word. Go has no native 128-bit
// integer type, so the high and low 64 bits are tracked separately and
// combined by the handful of operations the line-word layout needs: placing a
// narrow right-justified field at some bit offset, OR-ing fields together,
// and reading a right-justified byte out of the middle of the value.
package word128

// Word is an unsigned 128-bit integer, Hi holding bits [127:64] and Lo
// holding bits [63:0].
type Word struct {
	Hi, Lo uint64
}

// Place returns a Word with the low width bits of v placed so that their
// least-significant bit sits at bit position shift (counting from bit 0 at
// the LSB of the 128-bit value). Bits of v above width are ignored. Place
// panics if shift+width > 128, a programming error.
func Place(v uint64, width, shift uint) Word {
	if shift+width > 128 {
		panic("word128: field does not fit in 128 bits")
	}
	if width < 64 {
		v &= (uint64(1) << width) - 1
	}
	return shl(v, shift)
}

// shl returns v (a value fitting in the low 64 bits) shifted left by n
// within a 128-bit field.
func shl(v uint64, n uint) Word {
	switch {
	case n == 0:
		return Word{Lo: v}
	case n < 64:
		return Word{Hi: v >> (64 - n), Lo: v << n}
	case n == 64:
		return Word{Hi: v}
	case n < 128:
		return Word{Hi: v << (n - 64)}
	default:
		return Word{}
	}
}

// Or returns the bitwise OR of w and other.
func (w Word) Or(other Word) Word {
	return Word{Hi: w.Hi | other.Hi, Lo: w.Lo | other.Lo}
}

// Shr returns w shifted right by n bits (logical shift, zero fill).
func (w Word) Shr(n uint) Word {
	switch {
	case n == 0:
		return w
	case n < 64:
		return Word{Hi: w.Hi >> n, Lo: (w.Lo >> n) | (w.Hi << (64 - n))}
	case n == 64:
		return Word{Lo: w.Hi}
	case n < 128:
		return Word{Lo: w.Hi >> (n - 64)}
	default:
		return Word{}
	}
}

// Byte returns the byte occupying bits [hi:hi-7] of w, i.e. the byte whose
// most significant bit is bit hi. hi must be >= 7.
func (w Word) Byte(hi uint) byte {
	return byte(w.Shr(hi - 7).Lo & 0xff)
}

// Bytes returns the 16-byte big-endian (MSB-first) representation of w.
func (w Word) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(w.Hi >> (8 * (7 - i)))
		b[8+i] = byte(w.Lo >> (8 * (7 - i)))
	}
	return b
}

// Bit returns the value (0 or 1) of bit i (0 = LSB, 127 = MSB) of w.
func (w Word) Bit(i uint) byte {
	return byte(w.Shr(i).Lo & 1)
}
