package filter_test

import (
	"testing"

	"github.com/pelhamfield/palview/filter"
	"github.com/pelhamfield/palview/frame"
	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/test"
)

func TestDoublePixels(t *testing.T) {
	pal := palette.New()
	r := newRenderer(t, 2, 2, pal, filter.Options{Workers: 1})

	// four distinct pixels, one byte pattern each
	pix := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}

	dst := frame.Target{Pix: make([]byte, 4*4*4), Stride: 4 * 4}
	r.Double(pix, dst)

	// every source pixel becomes a 2x2 block
	for y := 0; y < 4; y++ {
		row := dst.Row(y)
		for x := 0; x < 4; x++ {
			so := (y/2)*8 + (x/2)*4
			for c := 0; c < 4; c++ {
				test.ExpectEquality(t, row[x*4+c], pix[so+c])
			}
		}
	}
}

func TestDoublePixelsStride(t *testing.T) {
	pal := palette.New()
	r := newRenderer(t, 2, 1, pal, filter.Options{Workers: 1})

	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	// destination rows are padded beyond the doubled width
	const stride = 4*4 + 8
	dst := frame.Target{Pix: make([]byte, 2*stride), Stride: stride}
	for i := range dst.Pix {
		dst.Pix[i] = 0xff
	}

	r.Double(pix, dst)

	want := []byte{1, 2, 3, 4, 1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	for y := 0; y < 2; y++ {
		row := dst.Row(y)
		for i := range want {
			test.ExpectEquality(t, row[i], want[i])
		}

		// the padding is never touched
		for i := 16; i < stride; i++ {
			test.ExpectEquality(t, row[i], byte(0xff))
		}
	}
}
