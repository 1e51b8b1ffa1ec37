/*
NAME
  ringbuffer.go

DESCRIPTION
  ringbuffer.go implements the bounded SPSC ring buffer of pre-rasterized
  data rows that couples the producer thread to the renderer thread, with
  blocking writes on a full buffer rather than drop-on-full semantics.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

// RingBuffer is a bounded, single-producer/single-consumer queue of
// pre-rasterized 128-byte data rows. Push blocks when the buffer is
// full; Pop blocks when it is empty. This is a deliberate departure from
// github.com/ausocean/utils/pool.Buffer, whose Write overwrites the
// oldest entry on overflow: the Field Pipeline instead needs the
// producer to stall under backpressure, never to silently drop audio
// data.
type RingBuffer struct {
	rows chan []byte
}

// NewRingBuffer returns a RingBuffer with the given row capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{rows: make(chan []byte, capacity)}
}

// Push enqueues row, blocking if the buffer is full.
func (r *RingBuffer) Push(row []byte) {
	r.rows <- row
}

// Pop dequeues and returns the oldest row, blocking if the buffer is
// empty.
func (r *RingBuffer) Pop() []byte {
	return <-r.rows
}

// Len returns the number of rows currently queued.
func (r *RingBuffer) Len() int {
	return len(r.rows)
}
