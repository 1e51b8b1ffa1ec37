/*
NAME
  renderer.go

DESCRIPTION
  renderer.go implements the Field Pipeline's renderer thread: woken by
  VSync, it drains one field of pre-rasterized rows from the ring buffer
  into the display sink's inactive back-buffer, writes the constant CTL
  row, and atomically flips buffers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ausocean/utils/logging"

	"github.com/nistvan86/picm/display"
	"github.com/nistvan86/picm/raster"
)

// rendererPriority is the best-effort "nice" value requested for the
// renderer's OS thread. Real-time scheduling classes need root and vary
// by platform; correctness never depends on this succeeding, only
// tear-free output does.
const rendererPriority = -10

var ctlRow = raster.BitsToPixels(raster.CTL)

// Renderer is the Field Pipeline's renderer thread.
type Renderer struct {
	sink display.Sink
	ring *RingBuffer
	cfg  Config
	log  logging.Logger

	wake chan struct{}

	printTimes  bool
	avgRenderUs int64
	currentTick int64
}

// NewRenderer returns a Renderer draining ring into sink on each VSync.
func NewRenderer(sink display.Sink, ring *RingBuffer, cfg Config, log logging.Logger) *Renderer {
	return &Renderer{
		sink:       sink,
		ring:       ring,
		cfg:        cfg,
		log:        log,
		wake:       make(chan struct{}, 1),
		printTimes: cfg.PrintRenderTimes,
	}
}

// Run locks to its OS thread, requests elevated scheduling priority on a
// best-effort basis, registers the VSync callback, and then services one
// field per wake-up until the process is terminated.
func (r *Renderer) Run() {
	runtime.LockOSThread()
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, rendererPriority); err != nil {
		r.log.Warning("could not elevate renderer thread priority, continuing at default priority", "error", err.Error())
	}

	r.sink.RegisterVSync(func() {
		select {
		case r.wake <- struct{}{}:
		default:
			// A wake-up is already pending while the renderer is
			// still busy; this VSync is dropped rather than queued
			// a second time.
		}
	})

	for range r.wake {
		r.renderField()
	}
}

func (r *Renderer) renderField() {
	start := time.Now()

	frame := r.sink.BeginFrame()
	if err := frame.SetRow(0, ctlRow[:]); err != nil {
		r.log.Error("could not write CTL row", "error", err.Error())
		return
	}
	for row := 1; row < r.cfg.VisibleLines; row++ {
		data := r.ring.Pop()
		if err := frame.SetRow(row, data); err != nil {
			r.log.Error("could not write data row", "row", row, "error", err.Error())
			return
		}
	}
	if err := r.sink.Present(frame); err != nil {
		r.log.Error("display update failed", "error", err.Error())
		return
	}

	if r.printTimes {
		r.reportRenderTime(time.Since(start))
	}
}

// reportEvery is the number of render ticks between printed averages.
const reportEvery = 50

// reportRenderTime folds d into a continuously-converging running average
// (avg = (avg+elapsed)/2 per tick) and prints it every reportEvery ticks,
// mirroring the original AvgPerformanceTimer.
func (r *Renderer) reportRenderTime(d time.Duration) {
	elapsedUs := d.Microseconds()
	if r.avgRenderUs > 0 {
		r.avgRenderUs = (r.avgRenderUs + elapsedUs) / 2
	} else {
		r.avgRenderUs = elapsedUs
	}

	r.currentTick++
	if r.currentTick == reportEvery {
		fmt.Printf("average render time: %d us\n", r.avgRenderUs)
		r.currentTick = 0
	}
}
