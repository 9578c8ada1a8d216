// Package scenes generates the demonstration scenes. The scene loop runs in
// its own goroutine and produces indexed frames for the presentation driver.
package scenes

import (
	"image/color"
	"math"

	"github.com/pelhamfield/palview/frame"
	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/logger"
	"github.com/pelhamfield/palview/palette"
)

// number of frames a scene runs for before the loop moves on to the next one
const sceneFrames = 15 * 60

type scene struct {
	name   string
	colors []color.RGBA
	draw   func(f *frame.Indexed, num int)
}

type sceneLoop struct {
	g   *gui.GUI
	pal *palette.Palette
	lim *limiter

	endScene chan bool

	// frames are triple buffered. a frame belongs to the gui once it has been
	// sent on the SetFrame channel and the gui holds it until the next frame
	// arrives. with one more in the channel that is two frames in flight
	buffers [3]*frame.Indexed
	swap    int

	// current animation frame. does not advance while paused
	num    int
	paused bool
}

// the set of demonstration scenes. each scene has its own palette so that
// scene changes exercise the fade in/out of the palette package
func scenes(width int, height int) []scene {
	var sinTab [256]float64
	for i := range sinTab {
		sinTab[i] = math.Sin(float64(i) * 2 * math.Pi / 256)
	}

	return []scene{
		{
			// a vertical gradient quantised into bands. the band boundaries
			// are dithered by alternating between adjacent palette entries
			// from one pixel to the next
			name: "sky",
			colors: palette.MultiRamp([]color.Color{
				color.RGBA{R: 10, G: 15, B: 60, A: 255},
				color.RGBA{R: 70, G: 120, B: 200, A: 255},
				color.RGBA{R: 240, G: 150, B: 60, A: 255},
				color.RGBA{R: 255, G: 240, B: 180, A: 255},
			}, 255),
			draw: func(f *frame.Indexed, num int) {
				for y := 0; y < f.H; y++ {
					row := f.Row(y)
					v := ((y*254)/f.H + num/8) % 254
					b := uint8(v &^ 7)
					frac := v & 7
					for x := range row {
						idx := b
						if frac >= 4 && (x+y)&1 == 0 && b < 246 {
							idx = b + 8
						}
						row[x] = idx
					}
				}
			},
		},
		{
			name: "plasma",
			colors: palette.MultiRamp([]color.Color{
				color.RGBA{R: 120, G: 0, B: 120, A: 255},
				color.RGBA{R: 0, G: 180, B: 180, A: 255},
				color.RGBA{R: 255, G: 220, B: 0, A: 255},
				color.RGBA{R: 120, G: 0, B: 120, A: 255},
			}, 255),
			draw: func(f *frame.Indexed, num int) {
				for y := 0; y < f.H; y++ {
					row := f.Row(y)
					sy := sinTab[(y+num)&255]
					for x := range row {
						v := sinTab[(x*2)&255] + sy + sinTab[(x+y+num*2)&255]
						row[x] = uint8((v + 3) / 6 * 254)
					}
				}
			},
		},
		{
			// vertical stripes two pixels wide. the stripes are wider than the
			// filter's stride threshold and must survive filtering intact
			name: "stripes",
			colors: palette.MultiRamp([]color.Color{
				color.RGBA{R: 20, G: 40, B: 20, A: 255},
				color.RGBA{R: 80, G: 200, B: 120, A: 255},
				color.RGBA{R: 240, G: 240, B: 240, A: 255},
			}, 255),
			draw: func(f *frame.Indexed, num int) {
				bar := (num * 2) % width
				for y := 0; y < f.H; y++ {
					row := f.Row(y)
					for x := range row {
						idx := uint8(60)
						if (x/2)&1 == 1 {
							idx = 120
						}
						if x >= bar && x < bar+8 {
							idx = 254
						}
						row[x] = idx
					}
				}
			},
		},
	}
}

func (s *sceneLoop) present(f *frame.Indexed) error {
	select {
	case s.g.SetFrame <- f:
		s.lim.Nudge()
	default:
		// the gui has not consumed the previous frame yet. drop this one
	}
	s.lim.Wait()
	return nil
}

func (s *sceneLoop) render(sc scene) error {
	f := s.buffers[s.swap]
	s.swap = (s.swap + 1) % len(s.buffers)
	sc.draw(f, s.num)
	return s.present(f)
}

// run a single scene until it has played out or the user has asked for the
// next scene. the returned bool is false if the loop should end entirely
func (s *sceneLoop) run(sc scene) (bool, error) {
	s.pal.SetColors(sc.colors)
	logger.Logf(logger.Allow, "scene", "starting %s", sc.name)

	err := s.pal.FadeIn(func() error {
		return s.render(sc)
	})
	if err != nil {
		return false, err
	}

	done := false
	for ct := 0; ct < sceneFrames && !done; {
		select {
		case <-s.endScene:
			return false, nil
		case inp := <-s.g.UserInput:
			switch inp.Action {
			case gui.Pause:
				s.paused = !s.paused
				state := gui.StateRunning
				if s.paused {
					state = gui.StatePaused
				}
				select {
				case s.g.State <- state:
				default:
				}
			case gui.NextScene:
				done = true
			case gui.Quit:
				return false, nil
			}
		default:
		}

		if !s.paused {
			s.num++
			ct++
		}

		err = s.render(sc)
		if err != nil {
			return false, err
		}
	}

	err = s.pal.FadeOut(func() error {
		return s.render(sc)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// Launch runs the demonstration scenes in order, repeating until the
// endScene channel is closed or receives a value.
func Launch(endScene chan bool, g *gui.GUI, pal *palette.Palette, width int, height int) error {
	s := &sceneLoop{
		g:        g,
		pal:      pal,
		lim:      newLimiter(60),
		endScene: endScene,
		buffers: [3]*frame.Indexed{
			frame.NewIndexed(width, height),
			frame.NewIndexed(width, height),
			frame.NewIndexed(width, height),
		},
	}

	// the gui waits for the first state change before opening the window
	g.State <- gui.StateRunning

	list := scenes(width, height)

	for {
		for _, sc := range list {
			cont, err := s.run(sc)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}
