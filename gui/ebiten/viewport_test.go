package ebiten

import (
	"image"
	"testing"

	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/test"
)

func TestFitRectKeepAR(t *testing.T) {
	// window matches the frame's aspect ratio exactly
	test.ExpectEquality(t, fitRectKeepAR(1280, 960, 640, 480), image.Rect(0, 0, 1280, 960))

	// wide window pillarboxes the frame
	test.ExpectEquality(t, fitRectKeepAR(1280, 720, 640, 480), image.Rect(160, 0, 1120, 720))

	// tall window letterboxes the frame
	test.ExpectEquality(t, fitRectKeepAR(640, 960, 640, 480), image.Rect(0, 240, 640, 720))
}

func TestMaxIntegerZoom(t *testing.T) {
	test.ExpectEquality(t, maxIntegerZoom(1280, 960, 640, 480), 2)
	test.ExpectEquality(t, maxIntegerZoom(1279, 960, 640, 480), 1)
	test.ExpectEquality(t, maxIntegerZoom(1920, 1080, 640, 480), 2)

	// a window smaller than the frame still zooms at one
	test.ExpectEquality(t, maxIntegerZoom(320, 240, 640, 480), 1)
}

func TestComputeViewport(t *testing.T) {
	// pixel-perfect centres the integer zoomed frame
	vp := computeViewport(gui.ScalingPixelPerfect, 1920, 1080, 640, 480)
	test.ExpectEquality(t, vp, image.Rect(320, 60, 1600, 1020))

	// aspect-fit fills the window height
	vp = computeViewport(gui.ScalingAspectFit, 1920, 1080, 640, 480)
	test.ExpectEquality(t, vp, image.Rect(240, 0, 1680, 1080))

	// hq-stretch uses the same viewport as aspect-fit. the doubling happens in
	// the texture, not in the window mapping
	test.ExpectEquality(t, computeViewport(gui.ScalingHQStretch, 1920, 1080, 640, 480), vp)
}
