package filter_test

import (
	"image/color"
	"testing"

	"github.com/pelhamfield/palview/filter"
	"github.com/pelhamfield/palview/frame"
	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/test"
)

func newRenderer(t *testing.T, w int, h int, pal *palette.Palette, opts filter.Options) *filter.Renderer {
	t.Helper()
	r, err := filter.NewRenderer(w, h, pal, opts)
	test.ExpectSuccess(t, err == nil)
	t.Cleanup(r.Close)
	return r
}

// a palette with a handful of primaries in the low entries. everything else is
// the default grayscale
func testPalette() *palette.Palette {
	pal := palette.New()
	pal.SetColors([]color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
	})
	return pal
}

func pixelAt(dst frame.Target, x int, y int) [4]byte {
	row := dst.Row(y)
	return [4]byte{row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]}
}

func TestConvertUnfiltered(t *testing.T) {
	pal := palette.New()
	r := newRenderer(t, 4, 2, pal, filter.Options{})

	src := frame.NewIndexed(4, 2)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 10)
	}

	dst := frame.Target{Pix: make([]byte, 4*2*4), Stride: 4 * 4}
	r.Convert(src, dst, false)

	// the default palette is the identity grayscale ramp
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			v := src.Pix[y*4+x]
			test.ExpectEquality(t, pixelAt(dst, x, y), [4]byte{v, v, v, 255})
		}
	}
}

func TestConvertFilteredBlend(t *testing.T) {
	pal := testPalette()
	r := newRenderer(t, 4, 1, pal, filter.Options{Workers: 1})

	// an alternating run of red and blue covering the whole row
	src := frame.NewIndexed(4, 1)
	copy(src.Pix, []uint8{1, 2, 1, 2})

	dst := frame.Target{Pix: make([]byte, 4*4), Stride: 4 * 4}
	r.Convert(src, dst, true)

	// every flagged pixel is the average of itself and its right neighbour.
	// 255 and 0 average to 127 because the division truncates
	test.ExpectEquality(t, pixelAt(dst, 0, 0), [4]byte{127, 0, 127, 255})
	test.ExpectEquality(t, pixelAt(dst, 1, 0), [4]byte{127, 0, 127, 255})
	test.ExpectEquality(t, pixelAt(dst, 2, 0), [4]byte{127, 0, 127, 255})

	// the last pixel has no right neighbour and is never blended
	test.ExpectEquality(t, pixelAt(dst, 3, 0), [4]byte{0, 0, 255, 255})
}

func TestConvertFilteredLeavesFlatAlone(t *testing.T) {
	pal := testPalette()
	r := newRenderer(t, 8, 2, pal, filter.Options{Workers: 1})

	src := frame.NewIndexed(8, 2)
	copy(src.Row(0), []uint8{1, 1, 1, 1, 2, 2, 2, 2})
	copy(src.Row(1), []uint8{3, 3, 1, 1, 3, 3, 1, 1})

	plain := frame.Target{Pix: make([]byte, 8*2*4), Stride: 8 * 4}
	filtered := frame.Target{Pix: make([]byte, 8*2*4), Stride: 8 * 4}
	r.Convert(src, plain, false)
	r.Convert(src, filtered, true)

	// flat runs and two pixel stripes are below the stride threshold so the
	// filtered output is identical to the plain conversion
	for i := range plain.Pix {
		if plain.Pix[i] != filtered.Pix[i] {
			t.Fatalf("filtered output diverges at byte %d", i)
		}
	}
}

func TestConvertFlagRowClean(t *testing.T) {
	pal := testPalette()
	r := newRenderer(t, 6, 1, pal, filter.Options{Workers: 1})

	dst := frame.Target{Pix: make([]byte, 6*4), Stride: 6 * 4}

	// a frame full of strides, then a flat frame through the same renderer.
	// stale flags from the first frame must not leak into the second
	src := frame.NewIndexed(6, 1)
	copy(src.Pix, []uint8{1, 2, 1, 2, 1, 2})
	r.Convert(src, dst, true)

	copy(src.Pix, []uint8{3, 3, 3, 3, 3, 3})
	r.Convert(src, dst, true)

	for x := 0; x < 6; x++ {
		test.ExpectEquality(t, pixelAt(dst, x, 0), [4]byte{0, 255, 0, 255})
	}
}

func TestConvertDepth16(t *testing.T) {
	pal := testPalette()
	r := newRenderer(t, 4, 1, pal, filter.Options{Depth: filter.Depth16})

	src := frame.NewIndexed(4, 1)
	copy(src.Pix, []uint8{0, 1, 2, 3})

	dst := frame.Target{Pix: make([]byte, 4*2), Stride: 4 * 2}
	r.Convert(src, dst, false)

	// RGB 5-6-5, little-endian
	want := []byte{
		0x00, 0x00, // black
		0x00, 0xf8, // red
		0x1f, 0x00, // blue
		0xe0, 0x07, // green
	}
	for i := range want {
		test.ExpectEquality(t, dst.Pix[i], want[i])
	}
}

func TestConvertWorkerEquivalence(t *testing.T) {
	pal := palette.New()

	const w = 64
	const h = 48

	src := frame.NewIndexed(w, h)
	seed := uint32(1)
	for i := range src.Pix {
		// xorshift. cheap deterministic noise with plenty of short runs
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		src.Pix[i] = uint8(seed % 7 * 40)
	}

	serial := newRenderer(t, w, h, pal, filter.Options{Workers: 1})
	pooled := newRenderer(t, w, h, pal, filter.Options{Workers: 7})

	a := frame.Target{Pix: make([]byte, w*h*4), Stride: w * 4}
	b := frame.Target{Pix: make([]byte, w*h*4), Stride: w * 4}

	for _, filtered := range []bool{false, true} {
		serial.Convert(src, a, filtered)
		pooled.Convert(src, b, filtered)
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				t.Fatalf("pooled conversion diverges at byte %d (filtered=%v)", i, filtered)
			}
		}
	}
}

func TestNewRendererErrors(t *testing.T) {
	pal := palette.New()

	_, err := filter.NewRenderer(1, 10, pal, filter.Options{})
	test.ExpectFailure(t, err)

	_, err = filter.NewRenderer(10, 0, pal, filter.Options{})
	test.ExpectFailure(t, err)

	_, err = filter.NewRenderer(10, 10, pal, filter.Options{Depth: 24})
	test.ExpectFailure(t, err)
}
