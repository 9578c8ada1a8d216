package main

import (
	"os"

	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/gui/ebiten"
	"github.com/pelhamfield/palview/logger"
	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/scenes"
)

const (
	width  = 640
	height = 480
)

func main() {
	// logger messages will be viewable in javascript log for WASM build
	logger.SetEcho(os.Stderr, false)

	g := gui.NewGUI()
	pal := palette.New()

	endScene := make(chan bool, 1)

	go func() {
		err := scenes.Launch(endScene, g, pal, width, height)
		if err != nil {
			logger.Log(logger.Allow, "wasm", err.Error())
		}
	}()

	err := ebiten.Launch(nil, g, pal, ebiten.Config{
		Width:    width,
		Height:   height,
		Mode:     gui.ScalingAspectFit,
		Filtered: true,
	})
	if err != nil {
		logger.Log(logger.Allow, "wasm", err.Error())
	}

	endScene <- true
}
