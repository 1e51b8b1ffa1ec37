package pipeline

import (
	"testing"
	"time"

	"github.com/nistvan86/picm/display"
	"github.com/nistvan86/picm/raster"
)

func TestRendererDrainsOneFieldPerVSync(t *testing.T) {
	cfg, err := NewConfig(display.NTSC, false)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	sink, err := display.NewSoftwareSink(display.NTSC)
	if err != nil {
		t.Fatalf("NewSoftwareSink: %v", err)
	}
	defer sink.Close()

	ring := NewRingBuffer(cfg.VisibleLines)
	row := make([]byte, raster.DataPixels)
	row[5] = raster.MidGray
	for i := 0; i < cfg.VisibleLines-1; i++ {
		ring.Push(row)
	}

	r := NewRenderer(sink, ring, cfg, discardLogger{})
	go r.Run()

	deadline := time.After(2 * time.Second)
	for {
		if ring.Len() == 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("renderer did not drain the ring buffer within the deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
