package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/gui/ebiten"
	"github.com/pelhamfield/palview/logger"
	"github.com/pelhamfield/palview/monitor"
	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/scenes"
)

func parseScaling(s string) (gui.Scaling, error) {
	switch s {
	case "pixel":
		return gui.ScalingPixelPerfect, nil
	case "fit":
		return gui.ScalingAspectFit, nil
	case "hq":
		return gui.ScalingHQStretch, nil
	}
	return 0, fmt.Errorf("unrecognised scaling mode: %s", s)
}

func main() {
	width := flag.Int("width", 640, "frame width")
	height := flag.Int("height", 480, "frame height")
	mode := flag.String("mode", "hq", "scaling mode: pixel, fit or hq")
	nofilter := flag.Bool("nofilter", false, "start with the dither filter disabled")
	workers := flag.Int("workers", 0, "number of conversion workers. zero means one per CPU")
	threshold := flag.Int("threshold", 0, "stride length threshold. zero means the default")
	bleed := flag.Int("bleed", 0, "stride bleed. zero means the default")
	log := flag.Bool("log", false, "echo log entries to stderr")
	flag.Parse()

	if *log {
		logger.SetEcho(os.Stderr, true)
	}

	scaling, err := parseScaling(*mode)
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	var endGui chan bool
	var endScene chan bool
	var resultGui chan error
	var resultScene chan error

	// buffered channels. this means we don't have to worry about the gui
	// closing before the scene loop and vice versa
	endGui = make(chan bool, 1)
	endScene = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and scene loop will end
	resultGui = make(chan error, 1)
	resultScene = make(chan error, 1)

	endMonitor := make(chan bool, 1)

	g := gui.NewGUI()
	pal := palette.New()

	go func() {
		resultGui <- ebiten.Launch(endGui, g, pal, ebiten.Config{
			Width:     *width,
			Height:    *height,
			Mode:      scaling,
			Filtered:  !*nofilter,
			Workers:   *workers,
			Threshold: *threshold,
			Bleed:     *bleed,
		})
		endScene <- true
	}()

	go func() {
		resultScene <- scenes.Launch(endScene, g, pal, *width, *height)
		endGui <- true
	}()

	go monitor.Launch(endMonitor, g.Stats)

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultScene; err != nil {
		fmt.Printf("*** %s\n", err)
	}

	endMonitor <- true
}
