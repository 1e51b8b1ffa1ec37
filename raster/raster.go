/*
NAME
  raster.go

DESCRIPTION
  raster.go implements the Line Rasterizer: unpacking a 128-bit PCM video
  line word into 128 palette-indexed pixel bytes, and composing those into
  a full 137-byte raster line with preamble and white reference.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package raster converts sealed 128-bit PCM video line words into the
// palette-indexed pixel rows a display sink draws, in the on-tape line
// format: preamble, 128 data pixels, white reference.
package raster

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/nistvan86/picm/crc16"
	"github.com/nistvan86/picm/word128"
)

// Palette indices for the three tones a PCM video line uses.
const (
	Black   byte = 0
	MidGray byte = 1
	White   byte = 2
)

// DataPixels is the number of data pixels per line, one per bit of the
// 128-bit line word.
const DataPixels = 128

// LineBytes is the total width of a composed raster line: preamble (4) +
// data (128) + white reference (5).
const LineBytes = 4 + DataPixels + 5

var preamble = [4]byte{1, 0, 1, 0}
var whiteReference = [5]byte{0, 2, 2, 2, 2}

// CTL is the fixed control line word: the first line of every field,
// carrying mode flags instead of audio data. Its top 112 bits are
// 0xCCCC_CCCC_CCCC_CC00_0000_0000_0000 with the payload nibble 0b0011
// (no copyright, P-correction enabled, Q-correction disabled, no
// pre-emphasis) at bits [19:16]; the CRC is then sealed into [15:0].
var CTL = crc16.Seal(
	word128.Place(0xCCCCCCCCCCCCCC, 56, 72).
		Or(word128.Place(0b0011, 4, 16)),
)

// BitsToPixels unpacks a 128-bit line word into 128 palette bytes, MSB
// first: bit i of the result is bit 127-i of word, rendered as MidGray for
// 1 and Black for 0.
func BitsToPixels(word word128.Word) [DataPixels]byte {
	var pixels [DataPixels]byte
	b := word.Bytes()
	r := bitio.NewReader(bytes.NewReader(b[:]))
	for i := range pixels {
		bit, err := r.ReadBool()
		if err != nil {
			// Reading from an in-memory 16-byte buffer for exactly 128
			// bits never fails; a failure here is a programming error.
			panic("raster: unexpected bit read failure: " + err.Error())
		}
		if bit {
			pixels[i] = MidGray
		} else {
			pixels[i] = Black
		}
	}
	return pixels
}

// ComposeLine builds a full 137-byte raster line from a line word: the
// fixed preamble, the 128 unpacked data pixels, and the fixed white
// reference.
func ComposeLine(word word128.Word) [LineBytes]byte {
	var line [LineBytes]byte
	copy(line[0:4], preamble[:])
	data := BitsToPixels(word)
	copy(line[4:4+DataPixels], data[:])
	copy(line[4+DataPixels:], whiteReference[:])
	return line
}
