package filter

import (
	"github.com/pelhamfield/palview/frame"
)

// pack565 packs 8-bit channels into RGB 5-6-5.
func pack565(r uint8, g uint8, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// ConvertUnfiltered writes the direct palette lookup of every pixel in the
// row range to dst. It is safe to call concurrently for disjoint row ranges.
func (r *Renderer) ConvertUnfiltered(src *frame.Indexed, dst frame.Target, rows frame.RowRange) {
	switch r.depth {
	case Depth32:
		for y := rows.First; y < rows.End(); y++ {
			indexed := src.Row(y)
			out := dst.Row(y)
			for x, idx := range indexed {
				c := r.lut[idx]
				o := x * 4

				// small cap improves performance, see https://golang.org/issue/27857
				s := out[o : o+4 : o+4]
				s[0] = c.R
				s[1] = c.G
				s[2] = c.B
				s[3] = c.A
			}
		}
	case Depth16:
		for y := rows.First; y < rows.End(); y++ {
			indexed := src.Row(y)
			out := dst.Row(y)
			for x, idx := range indexed {
				p := r.lut16[idx]
				o := x * 2
				s := out[o : o+2 : o+2]
				s[0] = byte(p)
				s[1] = byte(p >> 8)
			}
		}
	}
}

// ConvertFiltered is the smoothing variant of ConvertUnfiltered. Each row is
// first scanned by the dither-stride detector into the calling worker's
// private flag row; flagged pixels are written as the per-channel average of
// their own palette colour and their right neighbour's. The last pixel of
// every row has no right neighbour and always uses the direct lookup.
//
// Flags are cleared as they are consumed so the scratch row is clean for the
// next row without a separate reset pass.
func (r *Renderer) ConvertFiltered(worker int, src *frame.Indexed, dst frame.Target, rows frame.RowRange) {
	flags := r.flags[worker]
	last := r.width - 1

	for y := rows.First; y < rows.End(); y++ {
		indexed := src.Row(y)
		detectRow(indexed, flags, r.threshold, r.bleed)
		out := dst.Row(y)

		switch r.depth {
		case Depth32:
			for x := 0; x < last; x++ {
				o := x * 4
				s := out[o : o+4 : o+4]
				if flags[x] {
					a := r.lut[indexed[x]]
					b := r.lut[indexed[x+1]]
					s[0] = uint8((uint16(a.R) + uint16(b.R)) >> 1)
					s[1] = uint8((uint16(a.G) + uint16(b.G)) >> 1)
					s[2] = uint8((uint16(a.B) + uint16(b.B)) >> 1)
					s[3] = uint8((uint16(a.A) + uint16(b.A)) >> 1)
					flags[x] = false
				} else {
					c := r.lut[indexed[x]]
					s[0] = c.R
					s[1] = c.G
					s[2] = c.B
					s[3] = c.A
				}
			}

			c := r.lut[indexed[last]]
			o := last * 4
			s := out[o : o+4 : o+4]
			s[0] = c.R
			s[1] = c.G
			s[2] = c.B
			s[3] = c.A

		case Depth16:
			for x := 0; x < last; x++ {
				o := x * 2
				s := out[o : o+2 : o+2]
				var p uint16
				if flags[x] {
					a := r.lut[indexed[x]]
					b := r.lut[indexed[x+1]]
					p = pack565(
						uint8((uint16(a.R)+uint16(b.R))>>1),
						uint8((uint16(a.G)+uint16(b.G))>>1),
						uint8((uint16(a.B)+uint16(b.B))>>1),
					)
					flags[x] = false
				} else {
					p = r.lut16[indexed[x]]
				}
				s[0] = byte(p)
				s[1] = byte(p >> 8)
			}

			p := r.lut16[indexed[last]]
			o := last * 2
			s := out[o : o+2 : o+2]
			s[0] = byte(p)
			s[1] = byte(p >> 8)
		}

		// the bleed can land on the final position, which the loop above
		// never visits
		flags[last] = false
	}
}
