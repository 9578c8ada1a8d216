package filter

import (
	"github.com/pelhamfield/palview/frame"
)

// DoublePixels replicates each pixel of the source rows into a 2x2 block of
// dst, which must be sized for twice the renderer's width and height. Each
// source pixel is written twice horizontally and the completed destination
// row is then copied wholesale to the row below, halving the per-pixel work
// for the vertical dimension.
//
// The source buffer is tightly packed at the renderer's width; dst may carry
// any stride. Safe to call concurrently for disjoint row ranges.
func (r *Renderer) DoublePixels(pix []byte, dst frame.Target, rows frame.RowRange) {
	bpp := r.depth.BytesPerPixel()
	srcStride := r.width * bpp
	dstWidth := r.width * 2 * bpp

	for y := rows.First; y < rows.End(); y++ {
		in := pix[y*srcStride : (y+1)*srcStride]
		out := dst.Row(y * 2)

		for x := 0; x < r.width; x++ {
			px := in[x*bpp : (x+1)*bpp]
			o := x * 2 * bpp
			copy(out[o:o+bpp], px)
			copy(out[o+bpp:o+2*bpp], px)
		}

		copy(dst.Row(y*2+1)[:dstWidth], out[:dstWidth])
	}
}
