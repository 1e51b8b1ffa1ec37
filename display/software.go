/*
NAME
  software.go

DESCRIPTION
  software.go implements a reference Sink backed by two in-memory
  bitmaps and a ticker-driven VSync, standing in for the real compositor
  this package otherwise only declares an interface for.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/nistvan86/picm/raster"
)

// SoftwareSink is a reference Sink implementation: two in-memory
// bitmaps, flipped atomically under a mutex, with VSync simulated by a
// time.Ticker at the resolution's field rate.
type SoftwareSink struct {
	res    Resolution
	mu     sync.Mutex
	active int // index of the currently displayed buffer
	bufs   [2]*memFrame

	ticker *time.Ticker
	vsync  func() // registered VSync callback, guarded by mu
	stop   chan struct{}
	once   sync.Once
}

// memFrame is an in-memory Frame: visible_lines rows of DataPixels bytes.
type memFrame struct {
	rows [][]byte
}

func newMemFrame(visibleLines int) *memFrame {
	rows := make([][]byte, visibleLines)
	for i := range rows {
		rows[i] = make([]byte, raster.DataPixels)
	}
	return &memFrame{rows: rows}
}

func (f *memFrame) SetRow(row int, pixels []byte) error {
	if row < 0 || row >= len(f.rows) {
		return fmt.Errorf("display: row %d out of range [0,%d)", row, len(f.rows))
	}
	if len(pixels) != raster.DataPixels {
		return fmt.Errorf("display: row data must be %d bytes, got %d", raster.DataPixels, len(pixels))
	}
	copy(f.rows[row], pixels)
	return nil
}

// Row returns a copy of row's pixel data, for tests and inspection.
func (f *memFrame) Row(row int) []byte {
	out := make([]byte, len(f.rows[row]))
	copy(out, f.rows[row])
	return out
}

// NewSoftwareSink returns a SoftwareSink for res. Its VSync ticker starts
// when a callback is registered; call Close to stop the ticker.
func NewSoftwareSink(res Resolution) (*SoftwareSink, error) {
	visible := res.VisibleLines()
	s := &SoftwareSink{
		res:  res,
		bufs: [2]*memFrame{newMemFrame(visible), newMemFrame(visible)},
		stop: make(chan struct{}),
	}
	return s, nil
}

func (s *SoftwareSink) Resolution() Resolution { return s.res }

// RegisterVSync installs fn as the VSync callback. The first call starts
// the field-rate ticker, which invokes the installed callback on each tick
// from a dedicated goroutine; a later call replaces fn.
func (s *SoftwareSink) RegisterVSync(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vsync = fn
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(time.Second / time.Duration(s.res.FieldRate))
	ticker := s.ticker
	go func() {
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				cb := s.vsync
				s.mu.Unlock()
				cb()
			case <-s.stop:
				return
			}
		}
	}()
}

// BeginFrame returns the inactive buffer for the renderer to draw into.
func (s *SoftwareSink) BeginFrame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bufs[1-s.active]
}

// Present atomically makes frame the active, displayed buffer.
func (s *SoftwareSink) Present(frame Frame) error {
	mf, ok := frame.(*memFrame)
	if !ok {
		return fmt.Errorf("display: Present given a frame not obtained from BeginFrame")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if mf == s.bufs[0] {
		s.active = 0
	} else if mf == s.bufs[1] {
		s.active = 1
	} else {
		return fmt.Errorf("display: Present given an unrecognized frame")
	}
	return nil
}

// Close stops the VSync ticker.
func (s *SoftwareSink) Close() {
	s.once.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.stop)
	})
}
