/*
NAME
  playlist.go

DESCRIPTION
  playlist.go implements playlist resolution: a single media file, or an
  M3U playlist of files played sequentially and wrapping forever.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package audio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Playlist cycles forever through a fixed list of file paths.
type Playlist struct {
	dir    string // base directory paths are resolved against
	files  []string
	cursor int
}

// OpenPlaylist resolves path into a Playlist: an .m3u file expands to its
// listed entries (resolved relative to the m3u's own directory); any other
// extension is treated as a single-item playlist of that file.
func OpenPlaylist(path string) (*Playlist, error) {
	if strings.EqualFold(filepath.Ext(path), ".m3u") {
		return openM3U(path)
	}
	return &Playlist{files: []string{path}}, nil
}

func openM3U(path string) (*Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open m3u playlist: %w", err)
	}
	defer f.Close()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read m3u playlist: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("m3u playlist %s lists no files", path)
	}

	return &Playlist{dir: filepath.Dir(path), files: files}, nil
}

// Next returns the next file path in the playlist, wrapping around to the
// first entry after the last.
func (p *Playlist) Next() string {
	file := p.files[p.cursor]
	p.cursor++
	if p.cursor == len(p.files) {
		p.cursor = 0
	}
	if p.dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(p.dir, file)
}
