/*
NAME
  config.go

DESCRIPTION
  config.go defines the Field Pipeline's configuration and its
  validation, deriving the backpressure geometry (ring buffer capacity,
  line counts) from the selected display resolution.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pipeline wires the audio source, PCM encoder and rasterizer to
// a display sink through a bounded producer/consumer ring buffer, driven
// by the sink's VSync signal: the Field Pipeline.
package pipeline

import (
	"github.com/pkg/errors"

	"github.com/nistvan86/picm/display"
)

// Config holds the resolved geometry for one pipeline run.
type Config struct {
	Resolution display.Resolution

	// LinesPerField is the total encoder-cycle length per field,
	// inclusive of the CTL line.
	LinesPerField int

	// VisibleLines is the number of lines the renderer draws per field,
	// inclusive of the CTL line.
	VisibleLines int

	// RingCapacity is the bounded ring buffer's row capacity.
	RingCapacity int

	// PrintRenderTimes enables periodic render-duration reporting, the
	// -r CLI flag.
	PrintRenderTimes bool
}

// NewConfig derives a Config from res, or returns an error if res is not
// a supported display mode.
func NewConfig(res display.Resolution, printRenderTimes bool) (Config, error) {
	linesPerField, ok := res.LinesPerField()
	if !ok {
		return Config{}, errors.Errorf("unsupported display mode %dx%d@%dHz", res.Width, res.Height, res.FieldRate)
	}
	visible := res.VisibleLines()
	return Config{
		Resolution:       res,
		LinesPerField:    linesPerField,
		VisibleLines:     visible,
		RingCapacity:     ringCapacity(visible, res.FieldRate),
		PrintRenderTimes: printRenderTimes,
	}, nil
}

// ringCapacity follows the data model's "capacity >= 2 * (visible_lines -
// 1) * field_rate" guidance; the producer here runs at normal (not
// real-time) priority, so the full two-seconds-of-jitter depth is used.
func ringCapacity(visibleLines, fieldRate int) int {
	return 2 * (visibleLines - 1) * fieldRate
}

// Validate checks c for internal consistency, collecting every violation
// rather than stopping at the first.
func (c Config) Validate() error {
	var errs []error
	if c.LinesPerField <= 0 {
		errs = append(errs, errors.New("lines per field must be positive"))
	}
	if c.VisibleLines <= 0 || c.VisibleLines > c.LinesPerField {
		errs = append(errs, errors.New("visible lines must be positive and not exceed lines per field"))
	}
	if c.RingCapacity <= 0 {
		errs = append(errs, errors.New("ring capacity must be positive"))
	}
	if len(errs) == 0 {
		return nil
	}
	msg := "invalid pipeline configuration:"
	for _, e := range errs {
		msg += " " + e.Error() + ";"
	}
	return errors.New(msg)
}
