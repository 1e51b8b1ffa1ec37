/*
NAME
  delayer.go

DESCRIPTION
  delayer.go implements the fixed-length FIFO delay line used by the PCM
  interleaver.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pcmline implements the PCM interleaver/delayer network and the
// assembly of the 128-bit PCM video line word, as described by the "PCM
// Encoder" component.
package pcmline

// Delayer is a fixed-capacity FIFO of length n+1 words. After k feeds, its
// output is the word fed n steps ago (zero-initialized before then).
//
// Unlike a naive shift-register that copies every element on each feed,
// Delayer keeps a ring buffer and a moving head, giving O(1) feed and output
// regardless of delay length.
type Delayer struct {
	buf  []uint16
	head int
}

// NewDelayer returns a Delayer with delay length n, i.e. capacity n+1.
func NewDelayer(n int) *Delayer {
	return &Delayer{buf: make([]uint16, n+1)}
}

// Feed pushes sample into the delayer, overwriting the oldest retained
// sample.
func (d *Delayer) Feed(sample uint16) {
	d.buf[d.head] = sample
	d.head++
	if d.head == len(d.buf) {
		d.head = 0
	}
}

// Output returns the sample fed n = len(d.buf)-1 feeds before the most
// recent one (zero if fewer feeds have occurred).
func (d *Delayer) Output() uint16 {
	// head points at the slot that will receive the *next* feed, which is
	// also the oldest retained sample (the one due out next).
	return d.buf[d.head]
}
