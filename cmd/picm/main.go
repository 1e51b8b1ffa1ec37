/*
NAME
  main.go

DESCRIPTION
  picm generates a bit-exact PCM-video-line signal from a stereo audio
  source, wiring the audio source, PCM encoder, rasterizer and display
  sink through the Field Pipeline.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command picm encodes a WAV file or M3U playlist of WAV files as a
// PCM-video-line signal, driven by a display sink's VSync cadence.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coreos/go-systemd/daemon"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/nistvan86/picm/audio"
	"github.com/nistvan86/picm/display"
	"github.com/nistvan86/picm/pipeline"
)

// Logging configuration.
const (
	logPath      = "/var/log/picm/picm.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	renderTimes := flag.Bool("r", false, "periodically print per-field average render duration in microseconds")
	resolutionFlag := flag.String("resolution", "ntsc", "display mode to target: pal (720x576@50Hz) or ntsc (720x480@60Hz)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: picm [-r] [-resolution pal|ntsc] <input.wav|input.m3u>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(os.Stderr, fileLog), logSuppress)

	if err := run(input, *resolutionFlag, *renderTimes, log); err != nil {
		log.Error("fatal initialization error", "error", err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolutionFor(name string) (display.Resolution, error) {
	switch strings.ToLower(name) {
	case "pal":
		return display.PAL, nil
	case "ntsc":
		return display.NTSC, nil
	default:
		return display.Resolution{}, fmt.Errorf("unknown resolution %q: want pal or ntsc", name)
	}
}

func run(input, resolutionName string, renderTimes bool, log logging.Logger) error {
	res, err := resolutionFor(resolutionName)
	if err != nil {
		return err
	}

	cfg, err := pipeline.NewConfig(res, renderTimes)
	if err != nil {
		return fmt.Errorf("could not configure pipeline: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid pipeline configuration: %w", err)
	}

	playlist, err := audio.OpenPlaylist(input)
	if err != nil {
		return fmt.Errorf("could not resolve playlist for %s: %w", input, err)
	}
	stream, err := audio.NewStream(playlist, log)
	if err != nil {
		return fmt.Errorf("could not open audio source: %w", err)
	}

	sink, err := display.NewSoftwareSink(res)
	if err != nil {
		return fmt.Errorf("could not initialize display sink: %w", err)
	}

	ring := pipeline.NewRingBuffer(cfg.RingCapacity)
	producer := pipeline.NewProducer(stream, ring, cfg, log)
	renderer := pipeline.NewRenderer(sink, ring, cfg, log)

	go func() {
		if err := producer.Run(); err != nil {
			log.Fatal("producer terminated unexpectedly", "error", err.Error())
		}
	}()

	if ok, _ := daemon.SdNotify(false, daemon.SdNotifyReady); ok {
		log.Info("notified systemd of readiness")
	}

	renderer.Run()
	return nil
}
