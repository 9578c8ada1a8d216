package palette_test

import (
	"image/color"
	"testing"

	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/test"
)

func TestMixEndpoints(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	test.ExpectEquality(t, palette.Mix(red, blue, 0), red)
	test.ExpectEquality(t, palette.Mix(red, blue, 1), blue)
}

func TestMixGray(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// blends involving a pure gray happen in RGB space
	m := palette.Mix(black, white, 0.5)
	test.ExpectApproximate(t, int(m.R), 128, 1)
	test.ExpectEquality(t, m.R, m.G)
	test.ExpectEquality(t, m.G, m.B)
}

func TestRamp(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	ramp := palette.Ramp(red, blue, 16)
	test.ExpectEquality(t, len(ramp), 16)
	test.ExpectEquality(t, ramp[0], red)
	test.ExpectEquality(t, ramp[15], blue)
}

func TestMultiRamp(t *testing.T) {
	stops := []color.Color{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	}

	ramp := palette.MultiRamp(stops, 255)
	test.ExpectEquality(t, len(ramp), 255)

	test.ExpectEquality(t, len(palette.MultiRamp(stops[:1], 255)), 0)
}
