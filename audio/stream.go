/*
NAME
  stream.go

DESCRIPTION
  stream.go couples a Playlist to WAVSource, presenting the infinite lazy
  stereo sample sequence the Field Pipeline's producer consumes: when one
  file is exhausted, the next playlist entry is opened transparently.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package audio

import (
	"fmt"
	"io"

	"github.com/ausocean/utils/logging"

	"github.com/nistvan86/picm/pcmline"
)

// Stream is an infinite stereo sample source over a Playlist: at
// end-of-file it closes the current file and opens the next playlist
// entry, wrapping forever. I/O errors mid-stream are treated the same as
// end-of-stream, per the error-handling taxonomy.
type Stream struct {
	playlist *Playlist
	cur      *WAVSource
	log      logging.Logger
}

// NewStream returns a Stream over playlist, opening its first file.
func NewStream(playlist *Playlist, log logging.Logger) (*Stream, error) {
	s := &Stream{playlist: playlist, log: log}
	if err := s.openNext(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stream) openNext() error {
	if s.cur != nil {
		s.cur.Close()
	}
	path := s.playlist.Next()
	src, err := OpenWAV(path)
	if err != nil {
		return fmt.Errorf("could not open playlist entry: %w", err)
	}
	s.log.Info("opened playlist entry", "path", path)
	s.cur = src
	return nil
}

// Next returns the next stereo sample, transparently advancing to the
// next playlist entry on end-of-file or mid-stream I/O error.
func (s *Stream) Next() (pcmline.Sample, error) {
	for {
		sample, err := s.cur.Next()
		if err == nil {
			return sample, nil
		}
		if err != io.EOF {
			s.log.Warning("i/o error reading audio source, advancing playlist", "error", err.Error())
		}
		if openErr := s.openNext(); openErr != nil {
			return pcmline.Sample{}, openErr
		}
	}
}
