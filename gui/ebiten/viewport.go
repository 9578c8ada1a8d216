package ebiten

import (
	"image"

	"github.com/pelhamfield/palview/gui"
)

// fitRectKeepAR returns the largest rectangle with the aspect ratio of
// srcW/srcH that fits inside a window of winW/winH, centred in the window.
func fitRectKeepAR(winW int, winH int, srcW int, srcH int) image.Rectangle {
	w := winW
	h := w * srcH / srcW
	if h > winH {
		h = winH
		w = h * srcW / srcH
	}

	x := (winW - w) / 2
	y := (winH - h) / 2

	return image.Rect(x, y, x+w, y+h)
}

// maxIntegerZoom returns the largest integer multiple of srcW/srcH that fits
// inside a window of winW/winH. The returned zoom is never less than one,
// even if the window is smaller than the source.
func maxIntegerZoom(winW int, winH int, srcW int, srcH int) int {
	z := min(winW/srcW, winH/srcH)
	if z < 1 {
		z = 1
	}
	return z
}

// computeViewport returns the area of the window the frame is drawn to.
// srcW/srcH are the dimensions of the frame, not of the texture. For the
// hq-stretch mode the texture is double the frame size but the viewport is
// the same as for aspect-fit.
func computeViewport(mode gui.Scaling, winW int, winH int, srcW int, srcH int) image.Rectangle {
	if mode == gui.ScalingPixelPerfect {
		z := maxIntegerZoom(winW, winH, srcW, srcH)
		w := srcW * z
		h := srcH * z
		x := (winW - w) / 2
		y := (winH - h) / 2
		return image.Rect(x, y, x+w, y+h)
	}

	return fitRectKeepAR(winW, winH, srcW, srcH)
}
