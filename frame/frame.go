// Package frame defines the indexed framebuffer produced by the scene
// generator and the strided colour buffers that the conversion pipeline
// writes into.
//
// An Indexed framebuffer is never mutated by the conversion pipeline. The
// pipeline holds a reference only for the duration of a single conversion
// call.
package frame

// Indexed is a fixed-dimension framebuffer of 8-bit palette indices, stored
// row-major.
type Indexed struct {
	W   int
	H   int
	Pix []uint8
}

// NewIndexed allocates an indexed framebuffer of the given dimensions.
func NewIndexed(w int, h int) *Indexed {
	return &Indexed{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h),
	}
}

// Row returns the slice of palette indices for row y.
func (f *Indexed) Row(y int) []uint8 {
	return f.Pix[y*f.W : (y+1)*f.W]
}

// SetIndex writes a single palette index. Intended for scene generation, not
// for any per-pixel hot path.
func (f *Indexed) SetIndex(x int, y int, idx uint8) {
	f.Pix[y*f.W+x] = idx
}

// RowRange describes a horizontal strip of a framebuffer. The conversion
// pipeline partitions a frame into row ranges, one per worker.
type RowRange struct {
	First int
	Num   int
}

// End returns the first row after the range.
func (r RowRange) End() int {
	return r.First + r.Num
}

// Split partitions height rows into at most n contiguous row ranges. Ranges
// differ in length by at most one row. Fewer than n ranges are returned when
// there are fewer rows than n.
func Split(height int, n int) []RowRange {
	if n > height {
		n = height
	}
	if n < 1 {
		n = 1
	}

	ranges := make([]RowRange, 0, n)
	per := height / n
	rem := height % n
	first := 0
	for i := 0; i < n; i++ {
		num := per
		if i < rem {
			num++
		}
		ranges = append(ranges, RowRange{First: first, Num: num})
		first += num
	}
	return ranges
}

// Target is a strided view onto a colour buffer. Stride is in bytes and may
// be larger than the byte width of a row, for backends that pad rows.
type Target struct {
	Pix    []byte
	Stride int
}

// Row returns the target bytes from the start of row y. The slice extends to
// the end of the backing buffer; callers write no more than a row's worth.
func (t Target) Row(y int) []byte {
	return t.Pix[y*t.Stride:]
}
