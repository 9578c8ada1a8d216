// Package palette manages the 256-entry colour lookup table consumed by the
// conversion pipeline.
//
// The palette is held in a single canonical per-channel form. Packing to a
// display format (eg. RGB 5-6-5) is the converter's job and happens at the
// final write, so there is no second physical copy to keep synchronised.
//
// Fades and rebuilds happen on the scene goroutine while conversion reads the
// palette from the presentation goroutine. Access is therefore guarded by a
// mutex; the converter takes a snapshot once per frame so a fade step never
// races an in-flight conversion.
package palette

import (
	"image/color"
	"time"
)

// Size is the number of entries in a palette. Indices in an indexed
// framebuffer are always valid by construction.
const Size = 256

// fade brightness moves in steps of 8 percentage points, pausing for
// fadeFrameDelay after each step
const fadeStep = 8
const fadeFrameDelay = 33 * time.Millisecond

// Palette is the colour lookup table. The zero value is not usable; use New().
type Palette struct {
	crit critSection

	// entry 255 is left untouched by fades and by Erase(). it is reserved as
	// a permanent black for UI furniture drawn over a faded screen
	colors [Size]color.RGBA
	backup [Size]color.RGBA

	// whether the screen has been faded/erased to black. a fade-out of an
	// already blanked palette is a no-op
	blanked bool
}

// New returns a palette initialised to the identity grayscale ramp.
func New() *Palette {
	p := &Palette{}
	for i := 0; i < Size; i++ {
		v := uint8(i)
		p.colors[i] = color.RGBA{R: v, G: v, B: v, A: 255}
		p.backup[i] = p.colors[i]
	}
	return p
}

// Colors returns a snapshot of the current palette entries.
func (p *Palette) Colors() [Size]color.RGBA {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	return p.colors
}

// Color returns the entry for a single palette index.
func (p *Palette) Color(idx uint8) color.RGBA {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	return p.colors[idx]
}

// SetColors rebuilds the palette wholesale. If fewer than 256 entries are
// supplied the last entry is forced to black, the remainder are left as they
// were. Alpha is forced to full opacity.
func (p *Palette) SetColors(colors []color.RGBA) {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()

	n := len(colors)
	if n > Size {
		n = Size
	}
	for i := 0; i < n; i++ {
		c := colors[i]
		c.A = 255
		p.colors[i] = c
	}
	if n < Size {
		p.colors[Size-1] = color.RGBA{A: 255}
	}
	p.blanked = false
}

// Blanked returns whether the palette has been faded or erased to black.
func (p *Palette) Blanked() bool {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	return p.blanked
}

// must be called from inside the critical section.
func (p *Palette) makeBackup() {
	p.backup = p.colors
}

// must be called from inside the critical section.
func (p *Palette) restoreBackup() {
	p.colors = p.backup
}

// scale rewrites every entry (except the reserved final entry) as the backup
// entry scaled by brightness, expressed as a percentage.
//
// must be called from inside the critical section.
func (p *Palette) scale(brightness int) {
	for i := 0; i < Size-1; i++ {
		c := p.backup[i]
		p.colors[i] = color.RGBA{
			R: uint8(int(c.R) * brightness / 100),
			G: uint8(int(c.G) * brightness / 100),
			B: uint8(int(c.B) * brightness / 100),
			A: c.A,
		}
	}
}

// FadeIn ramps the palette from black up to its full colours, calling present
// after every step so the change is visible. The palette is restored exactly
// to the backup when the fade completes, whatever rounding the intermediate
// steps introduced.
//
// A blanked palette fades back in to the colours saved by the fade out.
func (p *Palette) FadeIn(present func() error) error {
	p.crit.section.Lock()
	if !p.blanked {
		p.makeBackup()
	}
	p.crit.section.Unlock()

	for brightness := 4; brightness <= 100; brightness += fadeStep {
		p.crit.section.Lock()
		p.scale(brightness)
		p.crit.section.Unlock()

		if present != nil {
			if err := present(); err != nil {
				return err
			}
		}
		time.Sleep(fadeFrameDelay)
	}

	p.crit.section.Lock()
	p.restoreBackup()
	p.blanked = false
	p.crit.section.Unlock()

	return nil
}

// FadeOut ramps the palette from its current colours down to black. A no-op
// if the palette is already blanked.
func (p *Palette) FadeOut(present func() error) error {
	p.crit.section.Lock()
	if p.blanked {
		p.crit.section.Unlock()
		return nil
	}
	p.makeBackup()
	p.crit.section.Unlock()

	for brightness := 96; brightness >= 0; brightness -= fadeStep {
		p.crit.section.Lock()
		p.scale(brightness)
		p.crit.section.Unlock()

		if present != nil {
			if err := present(); err != nil {
				return err
			}
		}
		time.Sleep(fadeFrameDelay)
	}

	p.crit.section.Lock()
	p.blanked = true
	p.crit.section.Unlock()

	return nil
}

// Erase sets every entry (except the reserved final entry) to black
// immediately, without a fade.
func (p *Palette) Erase() {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()

	for i := 0; i < Size-1; i++ {
		p.colors[i] = color.RGBA{A: 255}
	}
	p.blanked = true
}
