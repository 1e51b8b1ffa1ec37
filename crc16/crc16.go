/*
NAME
  crc16.go

DESCRIPTION
  crc16.go implements the CRC-16/CCITT-FALSE checksum used to seal PCM video
  line words.

AUTHOR
  Dan Kortschak <dan@ausocean.org>
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package crc16 computes the CRC-16/CCITT-FALSE checksum (poly 0x1021,
// init 0xFFFF, no reflection, no final XOR) used to seal PCM video line
// words.
package crc16

import "github.com/nistvan86/picm/word128"

const poly = 0x1021

// Of returns the CRC-16/CCITT-FALSE of the low bits bits of data (bits
// [bits-1:0], processed MSB-first), where bits is in [8, 128] and a
// multiple of 8. Of panics if bits is malformed; this is
// a programming error, never a runtime condition, since callers always pass
// a constant.
func Of(data word128.Word, bits uint8) uint16 {
	if bits == 0 || bits > 128 || bits%8 != 0 {
		panic("crc16: bits must be a positive multiple of 8 no greater than 128")
	}

	crc := uint16(0xFFFF)
	for cursor := uint(bits); cursor >= 8; cursor -= 8 {
		b := data.Byte(cursor - 1)
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Seal returns word with its low 16 bits set to the CRC-16/CCITT-FALSE of
// its top 112 bits, as required by the PCM video line word layout. Seal
// expects the low 16 bits of word to be zero on entry.
func Seal(word word128.Word) word128.Word {
	sum := Of(word.Shr(16), 112)
	return word.Or(word128.Place(uint64(sum), 16, 0))
}
