/*
NAME
  display.go

DESCRIPTION
  display.go defines the Sink interface: the out-of-scope display/
  compositor collaborator that owns double-buffered paletted bitmaps,
  accepts atomic buffer swaps, and fires a VSync callback once per field.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package display defines the video sink interface the renderer drives,
// and a reference software implementation for testing and for output
// modes with no real compositor available.
package display

import "fmt"

// Resolution is one of the two supported display modes.
type Resolution struct {
	Width, Height int
	FieldRate     int // fields per second
}

var (
	// PAL is 720x576 @ 50 Hz, 294 lines/field.
	PAL = Resolution{Width: 720, Height: 576, FieldRate: 50}
	// NTSC is 720x480 @ 60 Hz, 245 lines/field.
	NTSC = Resolution{Width: 720, Height: 480, FieldRate: 60}
)

// LinesPerField returns the lines-per-field count for r, including the
// leading CTL line, and whether r is a supported resolution.
func (r Resolution) LinesPerField() (int, bool) {
	switch r {
	case PAL:
		return 294, true
	case NTSC:
		return 245, true
	default:
		return 0, false
	}
}

// VisibleLines is the number of lines the renderer draws per field
// (screen_height / 2), one of which is the CTL line.
func (r Resolution) VisibleLines() int {
	return r.Height / 2
}

// Geometry constants for placing the 137-logical-pixel raster line within
// the frame.
const (
	LeftOffsetPx = 14
	TopOffsetPx  = 1
	LineWidthPx  = 137 // preamble(4) + data(128) + white-reference(5)
)

// Lookup returns the supported Resolution matching width, height and
// fieldRate, or an error if none matches.
func Lookup(width, height, fieldRate int) (Resolution, error) {
	for _, r := range []Resolution{PAL, NTSC} {
		if r.Width == width && r.Height == height && r.FieldRate == fieldRate {
			return r, nil
		}
	}
	return Resolution{}, fmt.Errorf("unsupported display mode %dx%d@%dHz", width, height, fieldRate)
}

// Frame is one back-buffer: visible_lines rows of 128 palette-indexed
// data bytes each (the CTL/data lines' data region; preamble and white
// reference are either written per-row or held as a static overlay by the
// Sink implementation).
type Frame interface {
	// SetRow writes pixels (len == raster.DataPixels) into row of the
	// frame. row 0 is the CTL line; row k (k >= 1) is the (k-1)-th
	// Encoder-emitted line for this field.
	SetRow(row int, pixels []byte) error
}

// Sink is the display/compositor collaborator. It owns two back-buffers,
// exposes the active Resolution, and fires a VSync callback once per
// field.
type Sink interface {
	// Resolution returns the sink's fixed display mode.
	Resolution() Resolution

	// RegisterVSync installs fn to be called once per field, from the
	// sink's own signaling goroutine. Only one callback may be
	// registered; a second call replaces the first.
	RegisterVSync(fn func())

	// BeginFrame returns the currently-inactive back-buffer for the
	// renderer to draw into.
	BeginFrame() Frame

	// Present commits frame and atomically swaps it in as the displayed
	// buffer. A partially-drawn frame must never be presented.
	Present(frame Frame) error
}
