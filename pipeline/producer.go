/*
NAME
  producer.go

DESCRIPTION
  producer.go implements the Field Pipeline's producer thread: it reads
  stereo samples from the audio source, feeds the PCM Encoder, rasterizes
  each emitted line word, and pushes visible rows into the ring buffer.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pipeline

import (
	"github.com/ausocean/utils/logging"

	"github.com/nistvan86/picm/pcmline"
	"github.com/nistvan86/picm/raster"
)

// Source is the infinite stereo sample source the producer consumes.
// audio.Stream satisfies this.
type Source interface {
	Next() (pcmline.Sample, error)
}

// Producer is the Field Pipeline's producer thread.
type Producer struct {
	source  Source
	encoder *pcmline.Encoder
	ring    *RingBuffer
	cfg     Config
	log     logging.Logger

	lineInField int
}

// NewProducer returns a Producer reading from source and pushing visible
// rows into ring.
func NewProducer(source Source, ring *RingBuffer, cfg Config, log logging.Logger) *Producer {
	return &Producer{
		source:  source,
		encoder: pcmline.NewEncoder(),
		ring:    ring,
		cfg:     cfg,
		log:     log,
	}
}

// Run loops forever: a Source precondition violation (an error other
// than the ones audio.Stream already retries internally) is a fatal
// configuration/I-O failure, so Run returns it.
func (p *Producer) Run() error {
	for {
		sample, err := p.source.Next()
		if err != nil {
			return err
		}

		word, ok := p.encoder.Feed(sample)
		if !ok {
			continue
		}

		if p.lineInField < p.cfg.VisibleLines-1 {
			pixels := raster.BitsToPixels(word)
			row := make([]byte, raster.DataPixels)
			copy(row, pixels[:])
			p.ring.Push(row)
		}

		p.lineInField++
		if p.lineInField == p.cfg.LinesPerField-1 {
			p.lineInField = 0
		}
	}
}
