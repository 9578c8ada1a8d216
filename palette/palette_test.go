package palette_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/test"
)

func TestNewIsGrayscale(t *testing.T) {
	pal := palette.New()
	test.ExpectEquality(t, pal.Color(0), color.RGBA{R: 0, G: 0, B: 0, A: 255})
	test.ExpectEquality(t, pal.Color(128), color.RGBA{R: 128, G: 128, B: 128, A: 255})
	test.ExpectEquality(t, pal.Color(255), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	test.ExpectSuccess(t, !pal.Blanked())
}

func TestSetColors(t *testing.T) {
	pal := palette.New()
	pal.SetColors([]color.RGBA{
		{R: 10, G: 20, B: 30},
		{R: 40, G: 50, B: 60, A: 7},
	})

	// alpha is forced to full opacity
	test.ExpectEquality(t, pal.Color(0), color.RGBA{R: 10, G: 20, B: 30, A: 255})
	test.ExpectEquality(t, pal.Color(1), color.RGBA{R: 40, G: 50, B: 60, A: 255})

	// a short rebuild forces the final entry to black
	test.ExpectEquality(t, pal.Color(255), color.RGBA{A: 255})
}

func TestErase(t *testing.T) {
	pal := palette.New()

	full := make([]color.RGBA, palette.Size)
	for i := range full {
		full[i] = color.RGBA{R: 200, G: 100, B: 50, A: 255}
	}
	pal.SetColors(full)

	pal.Erase()
	test.ExpectSuccess(t, pal.Blanked())
	test.ExpectEquality(t, pal.Color(100), color.RGBA{A: 255})

	// the final entry is reserved and survives an erase
	test.ExpectEquality(t, pal.Color(255), color.RGBA{R: 200, G: 100, B: 50, A: 255})
}

func TestFadeOutIn(t *testing.T) {
	pal := palette.New()
	pal.SetColors([]color.RGBA{{R: 100, G: 150, B: 200, A: 255}})

	var steps int
	present := func() error {
		steps++
		return nil
	}

	err := pal.FadeOut(present)
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, steps > 0)
	test.ExpectSuccess(t, pal.Blanked())
	test.ExpectEquality(t, pal.Color(0), color.RGBA{A: 255})

	// fading out an already blanked palette is a no-op
	steps = 0
	err = pal.FadeOut(present)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, steps, 0)

	// fading in restores the exact colours from before the fade out
	err = pal.FadeIn(present)
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, steps > 0)
	test.ExpectSuccess(t, !pal.Blanked())
	test.ExpectEquality(t, pal.Color(0), color.RGBA{R: 100, G: 150, B: 200, A: 255})
}

func TestFadePresentError(t *testing.T) {
	pal := palette.New()

	fail := errors.New("present failed")
	err := pal.FadeOut(func() error {
		return fail
	})
	test.ExpectEquality(t, err, fail)
}
