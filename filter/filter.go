// Package filter converts an indexed framebuffer into true-colour pixel data,
// optionally smoothing the banding artefacts of palette-quantised gradients.
//
// The smoothing filter detects "dither strides" - maximal runs where two
// palette indices alternate pixel by pixel, the usual symptom of quantising a
// gradient to a small palette - and renders each pixel in a stride as the
// average of its own colour and its right neighbour's, approximating the
// missing intermediate colour. Flat regions and short two-pixel edges are
// left untouched.
//
// Conversion is partitioned by row across a fixed pool of workers. Rows are
// independent: a row's output depends only on that row's indices and the
// palette snapshot taken at the start of the frame. Each worker owns a
// private dither-flag row so no locking happens on the per-pixel path.
//
// The per-pixel paths perform no bounds validation beyond what slice indexing
// implies. Callers must supply destination buffers large enough for the
// requested row range; this is a contract, not a checked condition.
package filter

import (
	"fmt"
	"image/color"
	"runtime"
	"sync"

	"github.com/pelhamfield/palview/frame"
	"github.com/pelhamfield/palview/palette"
)

// Depth selects the pixel format written by the converter.
type Depth int

const (
	// Depth16 packs each pixel as RGB 5-6-5 in two bytes, little-endian.
	Depth16 Depth = 16

	// Depth32 writes each pixel as four bytes, R G B A.
	Depth32 Depth = 32
)

// BytesPerPixel returns the byte width of a single pixel at this depth.
func (d Depth) BytesPerPixel() int {
	return int(d) / 8
}

// default detector constants. a stride must be longer than the threshold to
// be smoothed, and the smoothed run bleeds this many extra pixels to the
// right
const (
	DefaultThreshold = 2
	DefaultBleed     = 1
)

// Options controls a Renderer. The zero value selects the default threshold
// and bleed, 32bpp output, and one worker per CPU.
type Options struct {
	// Threshold is the stride length that must be exceeded before smoothing
	// applies. Zero selects DefaultThreshold.
	Threshold int

	// Bleed is the number of extra trailing pixels marked after a committed
	// stride. Zero selects DefaultBleed.
	Bleed int

	// Workers is the size of the conversion pool. Zero selects the number of
	// CPUs.
	Workers int

	// Depth of the output pixels. Zero selects Depth32.
	Depth Depth
}

// Renderer converts indexed framebuffers of a fixed size through a shared
// palette. It owns a pool of workers and their scratch buffers; Close() must
// be called before the graphics context the output feeds is torn down.
type Renderer struct {
	width  int
	height int
	depth  Depth

	threshold int
	bleed     int

	pal *palette.Palette

	// palette snapshot for the frame being converted. written by refresh()
	// before any work is dispatched, read by the workers
	lut   [palette.Size]color.RGBA
	lut16 [palette.Size]uint16

	// one dither-flag row per worker. never shared
	flags [][]bool

	workers int
	jobs    chan job

	closeOnce sync.Once
}

type jobKind int

const (
	jobConvert jobKind = iota
	jobConvertFiltered
	jobDouble
)

type job struct {
	kind jobKind
	src  *frame.Indexed
	pix  []byte
	dst  frame.Target
	rows frame.RowRange
	wg   *sync.WaitGroup
}

// NewRenderer prepares a Renderer for frames of the given dimensions. An
// unsupported depth is a configuration error.
func NewRenderer(width int, height int, pal *palette.Palette, opts Options) (*Renderer, error) {
	if width < 2 || height < 1 {
		return nil, fmt.Errorf("filter: frame dimensions too small: %dx%d", width, height)
	}

	depth := opts.Depth
	if depth == 0 {
		depth = Depth32
	}
	switch depth {
	case Depth16, Depth32:
	default:
		return nil, fmt.Errorf("filter: unsupported colour depth: %d", depth)
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	bleed := opts.Bleed
	if bleed == 0 {
		bleed = DefaultBleed
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}

	r := &Renderer{
		width:     width,
		height:    height,
		depth:     depth,
		threshold: threshold,
		bleed:     bleed,
		pal:       pal,
		workers:   workers,
		jobs:      make(chan job, workers),
	}

	r.flags = make([][]bool, workers)
	for i := range r.flags {
		r.flags[i] = make([]bool, width)
	}

	for i := 0; i < workers; i++ {
		go r.worker(i)
	}

	return r, nil
}

// Width of the frames this renderer accepts.
func (r *Renderer) Width() int {
	return r.width
}

// Height of the frames this renderer accepts.
func (r *Renderer) Height() int {
	return r.height
}

// Depth of the output pixels.
func (r *Renderer) Depth() Depth {
	return r.depth
}

// Close shuts the worker pool down. The Renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.closeOnce.Do(func() {
		close(r.jobs)
	})
}

func (r *Renderer) worker(id int) {
	for j := range r.jobs {
		switch j.kind {
		case jobConvert:
			r.ConvertUnfiltered(j.src, j.dst, j.rows)
		case jobConvertFiltered:
			r.ConvertFiltered(id, j.src, j.dst, j.rows)
		case jobDouble:
			r.DoublePixels(j.pix, j.dst, j.rows)
		}
		j.wg.Done()
	}
}

// refresh snapshots the shared palette for the frame about to be converted.
// Nothing may write the palette between refresh() and the end of the frame's
// conversion; the snapshot means a fade stepping on another goroutine only
// ever affects the next frame.
func (r *Renderer) refresh() {
	r.lut = r.pal.Colors()
	if r.depth == Depth16 {
		for i, c := range r.lut {
			r.lut16[i] = pack565(c.R, c.G, c.B)
		}
	}
}

// Convert fills dst with the true-colour rendition of src, fanning the rows
// out across the worker pool and returning once every row is written. The
// call is synchronous; there is no cancellation mid-frame.
func (r *Renderer) Convert(src *frame.Indexed, dst frame.Target, filtered bool) {
	r.refresh()

	kind := jobConvert
	if filtered {
		kind = jobConvertFiltered
	}

	var wg sync.WaitGroup
	for _, rows := range frame.Split(r.height, r.workers) {
		wg.Add(1)
		r.jobs <- job{
			kind: kind,
			src:  src,
			dst:  dst,
			rows: rows,
			wg:   &wg,
		}
	}
	wg.Wait()
}

// Double expands a full frame of converted pixels into dst at twice the width
// and height, fanning source rows out across the worker pool.
func (r *Renderer) Double(pix []byte, dst frame.Target) {
	var wg sync.WaitGroup
	for _, rows := range frame.Split(r.height, r.workers) {
		wg.Add(1)
		r.jobs <- job{
			kind: jobDouble,
			pix:  pix,
			dst:  dst,
			rows: rows,
			wg:   &wg,
		}
	}
	wg.Wait()
}
