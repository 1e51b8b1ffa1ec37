package display

import (
	"testing"
	"time"

	"github.com/nistvan86/picm/raster"
)

func TestLookupSupportedModes(t *testing.T) {
	if r, err := Lookup(720, 576, 50); err != nil || r != PAL {
		t.Fatalf("Lookup(PAL) = %v, %v", r, err)
	}
	if r, err := Lookup(720, 480, 60); err != nil || r != NTSC {
		t.Fatalf("Lookup(NTSC) = %v, %v", r, err)
	}
	if _, err := Lookup(1920, 1080, 30); err == nil {
		t.Fatalf("expected error for unsupported mode")
	}
}

func TestLinesPerField(t *testing.T) {
	if n, ok := PAL.LinesPerField(); !ok || n != 294 {
		t.Fatalf("PAL.LinesPerField() = %d, %v", n, ok)
	}
	if n, ok := NTSC.LinesPerField(); !ok || n != 245 {
		t.Fatalf("NTSC.LinesPerField() = %d, %v", n, ok)
	}
}

func TestSoftwareSinkFlipIsAtomic(t *testing.T) {
	sink, err := NewSoftwareSink(NTSC)
	if err != nil {
		t.Fatalf("NewSoftwareSink: %v", err)
	}
	defer sink.Close()

	frame := sink.BeginFrame()
	row := make([]byte, raster.DataPixels)
	row[0] = raster.MidGray
	if err := frame.SetRow(0, row); err != nil {
		t.Fatalf("SetRow: %v", err)
	}
	if err := sink.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}

	next := sink.BeginFrame()
	if next == frame {
		t.Fatalf("BeginFrame returned the active buffer instead of the inactive one")
	}
}

func TestSoftwareSinkVSyncFires(t *testing.T) {
	sink, err := NewSoftwareSink(NTSC)
	if err != nil {
		t.Fatalf("NewSoftwareSink: %v", err)
	}
	defer sink.Close()

	fired := make(chan struct{}, 1)
	sink.RegisterVSync(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	select {
	case <-fired:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("VSync callback did not fire within 200ms for a 60Hz sink")
	}
}
