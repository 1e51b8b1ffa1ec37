/*
NAME
  wav.go

DESCRIPTION
  wav.go implements the WAV audio source: a 44.1 kHz / 16-bit / stereo PCM
  source as required by the external interface's WAV input contract.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package audio provides the stereo sample source: WAV decoding and
// playlist sequencing, the out-of-scope "audio file decoding" and
// "playlist handling" collaborators.
package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/nistvan86/picm/pcmline"
)

const (
	wantSampleRate = 44100
	wantBitDepth   = 16
	wantChannels   = 2

	// decodeFrames is the number of stereo frames read from the decoder per
	// underlying PCMBuffer call.
	decodeFrames = 4096
)

// WAVSource is a stereo PCM sample source backed by a single WAV file. It
// rejects any file that is not 44.1 kHz, 16-bit signed, 2-channel at open
// time, per the WAV input contract.
type WAVSource struct {
	f       *os.File
	dec     *wav.Decoder
	buf     *audio.IntBuffer
	n       int // valid frames in buf.Data
	cursor  int // next unread frame in buf.Data
	lastErr error
}

// OpenWAV opens path as a WAV file and validates its format. The returned
// error is a configuration error: the file is unreadable or its format is
// unsupported.
func OpenWAV(path string) (*WAVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open wav file: %w", err)
	}

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("%s is not a valid WAV file", path)
	}
	if dec.SampleRate != wantSampleRate || dec.BitDepth != wantBitDepth || dec.NumChans != wantChannels {
		f.Close()
		return nil, fmt.Errorf("unsupported WAV format in %s: %d Hz, %d-bit, %d channels (want %d Hz, %d-bit, %d channels)",
			path, dec.SampleRate, dec.BitDepth, dec.NumChans, wantSampleRate, wantBitDepth, wantChannels)
	}
	if err := dec.FwdToPCM(); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not seek to PCM data in %s: %w", path, err)
	}

	return &WAVSource{
		f:   f,
		dec: dec,
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: wantChannels, SampleRate: wantSampleRate},
			Data:   make([]int, decodeFrames*wantChannels),
		},
	}, nil
}

// Next returns the next stereo sample, or io.EOF once the file is
// exhausted.
func (s *WAVSource) Next() (pcmline.Sample, error) {
	if s.cursor >= s.n {
		if s.lastErr != nil {
			return pcmline.Sample{}, s.lastErr
		}
		read, err := s.dec.PCMBuffer(s.buf)
		s.n = read / wantChannels
		s.cursor = 0
		if s.n == 0 {
			if err == nil {
				err = io.EOF
			}
			return pcmline.Sample{}, err
		}
		if err != nil && err != io.EOF {
			return pcmline.Sample{}, err
		}
		s.lastErr = err
	}

	l := s.buf.Data[s.cursor*wantChannels]
	r := s.buf.Data[s.cursor*wantChannels+1]
	s.cursor++
	return pcmline.Sample{L: uint16(int16(l)), R: uint16(int16(r))}, nil
}

// Close releases the underlying file.
func (s *WAVSource) Close() error {
	return s.f.Close()
}
