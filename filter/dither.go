package filter

// strideState is the detector's position in the row scan. The original
// algorithm infers this from sentinel comparisons; naming the states keeps
// the branches auditable.
type strideState int

const (
	// no stride is open
	strideNone strideState = iota

	// a stride is open and may still be extended
	strideOpen
)

// detectRow scans one row of palette indices and marks every position that
// lies inside a dither stride: a maximal run of two alternating indices long
// enough to be a genuine dithering pattern rather than a thin edge.
//
// A marked flag means "render this pixel as the average of its own colour and
// its right neighbour's". Strides no longer than threshold are discarded;
// committed strides bleed an extra bleed pixels to the right, clamped to the
// row. flags must be at least as long as the row and all-clear on entry.
func detectRow(indexed []uint8, flags []bool, threshold int, bleed int) {
	w := len(indexed)
	if w < 2 {
		return
	}

	// the first pixel has no predecessor. -1 never matches a real index
	prev := -1
	me := int(indexed[0])
	var next int

	state := strideNone
	start := 0
	end := 0

	commit := func() {
		length := end - start
		if length > threshold {
			n := length + bleed
			if start+n > w {
				n = w - start
			}
			for i := 0; i < n; i++ {
				flags[start+i] = true
			}
		}
	}

	for x := 0; x < w-1; x++ {
		next = int(indexed[x+1])

		switch {
		case me == next || me == prev:
			// on or adjacent to a flat colour run
			if state == strideOpen {
				commit()
				state = strideNone
			}

		case prev == next:
			// interior of an alternating A-B-A run
			if state == strideNone {
				// open the stride on the left dither pixel
				start = x - 1
				state = strideOpen
			}
			// extend to the right dither pixel
			end = x + 1

		case state == strideOpen && x == end:
			// this pixel closed the run on the previous iteration. leave the
			// stride open; the next pixel decides whether the run continues

		default:
			// lone non-dithered pixel
			if state == strideOpen {
				commit()
				state = strideNone
			}
		}

		prev = me
		me = next
	}

	// the row's tail is always flushed
	if state == strideOpen {
		commit()
	}
}
