package palette

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Mix blends two colours. Blending happens in Lab space except when either
// colour is a pure gray, where RGB blending avoids hue artefacts.
func Mix(c1 color.Color, c2 color.Color, t float64) color.RGBA {
	a, _ := clr.MakeColor(c1)
	b, _ := clr.MakeColor(c2)

	var m clr.Color
	if (a.R == a.G && a.G == a.B) || (b.R == b.G && b.G == b.B) {
		m = a.BlendRgb(b, t).Clamped()
	} else {
		m = a.BlendLab(b, t).Clamped()
	}

	r, g, bb := m.RGB255()
	return color.RGBA{R: r, G: g, B: bb, A: 255}
}

// Ramp returns steps colours blended evenly between from and to, inclusive of
// both ends.
func Ramp(from color.Color, to color.Color, steps int) []color.RGBA {
	if steps < 2 {
		return []color.RGBA{Mix(from, to, 0)}
	}

	ramp := make([]color.RGBA, steps)
	for i := 0; i < steps; i++ {
		ramp[i] = Mix(from, to, float64(i)/float64(steps-1))
	}
	return ramp
}

// MultiRamp concatenates ramps between each adjacent pair of stops, dividing
// steps evenly between the segments.
func MultiRamp(stops []color.Color, steps int) []color.RGBA {
	if len(stops) < 2 {
		return nil
	}

	segments := len(stops) - 1
	ramp := make([]color.RGBA, 0, steps)
	for s := 0; s < segments; s++ {
		n := steps / segments
		if s < steps%segments {
			n++
		}
		ramp = append(ramp, Ramp(stops[s], stops[s+1], n)...)
	}
	return ramp
}
