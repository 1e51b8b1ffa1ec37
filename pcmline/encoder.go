/*
NAME
  encoder.go

DESCRIPTION
  encoder.go implements the stateful PCM interleaver that turns a stream of
  stereo samples into sealed 128-bit PCM video line words.

AUTHOR
  Trek Hopton <trek@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pcmline

import (
	"github.com/nistvan86/picm/crc16"
	"github.com/nistvan86/picm/word128"
)

// numDelayers is the number of delay lines in the interleaver network: one
// per channel-half of each of the three samples in a triplet, plus one for
// the parity word that completes the round-robin rotation.
const numDelayers = 7

// delayLengths are the n in NewDelayer(n) for each of the 7 delayers, the
// d*16 progression from spec.md §4.2.
var delayLengths = [numDelayers]int{0, 16, 32, 48, 64, 80, 96}

// Sample is a stereo PCM sample: a left and right 16-bit word, each the
// two's-complement bit pattern of a signed 16-bit PCM sample.
type Sample struct {
	L, R uint16
}

// Encoder is the stateful PCM line interleaver. It consumes stereo samples
// three at a time and, once a full triplet plus its derived parity word has
// been fed through the round-robin interleaver, emits one sealed 128-bit PCM
// video line word.
//
// An Encoder is not safe for concurrent use; in the field pipeline it is
// owned exclusively by the producer goroutine.
type Encoder struct {
	delay   [numDelayers]*Delayer
	cursor  int
	triplet []Sample // up to 3 accumulated stereo samples (the "triplet window")
}

// NewEncoder returns a fresh Encoder with all delayers zero-initialized.
func NewEncoder() *Encoder {
	e := &Encoder{}
	for i, n := range delayLengths {
		e.delay[i] = NewDelayer(n)
	}
	e.triplet = make([]Sample, 0, 3)
	return e
}

// feed advances the round-robin cursor, placing word into the delayer it
// currently selects.
func (e *Encoder) feed(word uint16) {
	e.delay[e.cursor].Feed(word)
	e.cursor = (e.cursor + 1) % numDelayers
}

// parity returns the XOR of the six 16-bit words of the three most recently
// accumulated stereo samples.
func (e *Encoder) parity() uint16 {
	var p uint16
	for _, s := range e.triplet {
		p ^= s.L ^ s.R
	}
	return p
}

// assemble snapshots the current delayer outputs and builds the sealed
// 128-bit line word: for each of the 7 delayers, its output's upper 14 bits
// occupy one of the seven 14-bit top fields, and its lower 2 bits are
// multiplexed into the 14-bit S word, with the CRC-16/CCITT-FALSE sealed
// into the low 16 bits.
func (e *Encoder) assemble() word128.Word {
	var w word128.Word
	var s word128.Word
	for d := 0; d < numDelayers; d++ {
		out := e.delay[d].Output()
		shift := uint(127 - 14*d - 13) // bits [127-14d : 114-14d]
		w = w.Or(word128.Place(uint64(out>>2), 14, shift))
		s = s.Or(word128.Place(uint64(out&0x3), 2, uint(12-2*d)))
	}
	w = w.Or(word128.Place(s.Lo, 14, 16))
	return crc16.Seal(w)
}

// Feed submits one stereo sample. Once a third consecutive sample has been
// submitted (completing a triplet), the derived parity word is fed through
// the seventh position of the round-robin rotation, the cursor and triplet
// window are reset, and the resulting line word is returned. Otherwise Feed
// returns false.
func (e *Encoder) Feed(sample Sample) (word128.Word, bool) {
	e.feed(sample.L)
	e.feed(sample.R)
	e.triplet = append(e.triplet, sample)

	if len(e.triplet) < 3 {
		return word128.Word{}, false
	}

	e.feed(e.parity())
	e.triplet = e.triplet[:0]
	e.cursor = 0

	return e.assemble(), true
}
