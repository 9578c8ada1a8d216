// Package gui defines the interface between the scene loop and the
// presentation driver. The two run in different goroutines and communicate
// only through the channels of the GUI type.
package gui

import (
	"time"

	"github.com/pelhamfield/palview/frame"
)

// State of the scene loop as understood by the presentation driver.
type State int

const (
	StateRunning State = iota
	StatePaused
)

// Scaling decides how the converted frame is mapped to the window.
type Scaling int

const (
	// integer multiple of the frame dimensions, centred in the window
	ScalingPixelPerfect Scaling = iota

	// largest rectangle that fits the window while keeping the frame's
	// aspect ratio
	ScalingAspectFit

	// like ScalingAspectFit but the frame is pixel-doubled before being
	// uploaded to the texture
	ScalingHQStretch

	// number of scaling modes. used when cycling through the modes
	NumScaling
)

func (s Scaling) String() string {
	switch s {
	case ScalingPixelPerfect:
		return "pixel-perfect"
	case ScalingAspectFit:
		return "aspect-fit"
	case ScalingHQStretch:
		return "hq-stretch"
	}
	return "unknown"
}

// FrameStat is sent by the presentation driver after every presented frame.
// Consumed by the monitor goroutine.
type FrameStat struct {
	Frame    uint64
	Convert  time.Duration
	Filtered bool
	Mode     Scaling
}

// GUI is the communication channel between the scene loop and the
// presentation driver. All channels are buffered and all sends from the
// driver side are non-blocking.
type GUI struct {
	// new frames of indexed video data. the scene loop should treat a frame
	// as owned by the driver once it has been sent
	SetFrame chan *frame.Indexed

	// the scene loop tells the driver whether it is running or paused
	State chan State

	// user input forwarded from the driver to the scene loop
	UserInput chan Input

	// per-frame statistics from the driver
	Stats chan FrameStat
}

func NewGUI() *GUI {
	return &GUI{
		SetFrame:  make(chan *frame.Indexed, 1),
		State:     make(chan State, 1),
		UserInput: make(chan Input, 10),
		Stats:     make(chan FrameStat, 60),
	}
}
