// Package ebiten is the presentation driver. It receives frames of indexed
// video data from the scene loop, converts them to true-colour with the
// filter package and presents the result according to the selected scaling
// mode.
package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelhamfield/palview/filter"
	"github.com/pelhamfield/palview/frame"
	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/logger"
	"github.com/pelhamfield/palview/palette"
	"github.com/pelhamfield/palview/version"
	input "github.com/quasilyte/ebitengine-input"
)

// the largest texture dimension we are prepared to allocate. if the
// pixel-doubled frame would exceed this then the hq-stretch mode is not
// available
const maxTextureDim = 4096

// number of frames the window is cleared for after the viewport has changed.
// resizing the window leaves stale pixels outside the new viewport and the
// resize can take several frames to settle
const clearFrames = 60

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

// Config is the fixed setup of the presentation driver. Scaling mode and
// filtering can be changed at runtime but the frame dimensions cannot.
type Config struct {
	Width  int
	Height int

	Mode     gui.Scaling
	Filtered bool

	// options forwarded to the filter renderer. zero values select the
	// package defaults
	Workers   int
	Threshold int
	Bleed     int
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	started bool
	endGui  chan bool

	state gui.State

	rend *filter.Renderer

	// most recent frame from the scene loop. conversion happens in Draw()
	// and only when a new frame has arrived
	src   *frame.Indexed
	dirty bool

	mode     gui.Scaling
	filtered bool
	canHQ    bool

	tex *ebiten.Image

	// scratch holds the converted frame at 1x. transfer holds the
	// pixel-doubled frame and is only allocated when hq-stretch is available
	scratch  []byte
	transfer []byte

	// window dimensions as reported by Layout()
	winW int
	winH int

	viewport  image.Rectangle
	needClear int

	frameNum uint64

	inputHandler *input.Handler
	inputSystem  input.System
}

func (eg *guiEbiten) cycleScaling() {
	eg.mode = (eg.mode + 1) % gui.NumScaling
	if eg.mode == gui.ScalingHQStretch && !eg.canHQ {
		eg.mode = (eg.mode + 1) % gui.NumScaling
	}

	// the texture is a different size in hq-stretch mode
	if eg.tex != nil {
		eg.tex.Dispose()
		eg.tex = nil
	}
	eg.needClear = clearFrames
	eg.dirty = eg.src != nil

	logger.Logf(logger.Allow, "gui", "scaling mode: %s", eg.mode)
}

func (eg *guiEbiten) Update() error {
	if !eg.started {
		eg.initialise()
	}

	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	err := eg.input()
	if err != nil {
		return err
	}

	select {
	case eg.state = <-eg.g.State:
	default:
	}

	select {
	case eg.src = <-eg.g.SetFrame:
		eg.dirty = true
	default:
	}

	return nil
}

// convert the most recent frame and upload it to the texture. the texture is
// recreated if the scaling mode has changed size requirements
func (eg *guiEbiten) upload() time.Duration {
	w := eg.rend.Width()
	h := eg.rend.Height()

	texW := w
	texH := h
	if eg.mode == gui.ScalingHQStretch {
		texW = w * 2
		texH = h * 2
	}

	if eg.tex == nil || eg.tex.Bounds().Dx() != texW {
		if eg.tex != nil {
			eg.tex.Dispose()
		}
		eg.tex = ebiten.NewImage(texW, texH)
	}

	start := time.Now()

	eg.rend.Convert(eg.src, frame.Target{Pix: eg.scratch, Stride: w * 4}, eg.filtered)

	if eg.mode == gui.ScalingHQStretch {
		eg.rend.Double(eg.scratch, frame.Target{Pix: eg.transfer, Stride: texW * 4})
		eg.tex.WritePixels(eg.transfer)
	} else {
		eg.tex.WritePixels(eg.scratch)
	}

	return time.Since(start)
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	var convert time.Duration

	if eg.dirty {
		convert = eg.upload()
		eg.dirty = false
	}

	if eg.tex == nil {
		screen.Fill(color.Black)
		return
	}

	vp := computeViewport(eg.mode, eg.winW, eg.winH, eg.rend.Width(), eg.rend.Height())
	if vp != eg.viewport {
		eg.viewport = vp
		eg.needClear = clearFrames
	}

	if eg.needClear > 0 {
		screen.Fill(color.Black)
		eg.needClear--
	}

	var op ebiten.DrawImageOptions
	if eg.mode == gui.ScalingPixelPerfect {
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}

	sx := float64(vp.Dx()) / float64(eg.tex.Bounds().Dx())
	sy := float64(vp.Dy()) / float64(eg.tex.Bounds().Dy())
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(vp.Min.X), float64(vp.Min.Y))
	screen.DrawImage(eg.tex, &op)

	eg.frameNum++
	select {
	case eg.g.Stats <- gui.FrameStat{
		Frame:    eg.frameNum,
		Convert:  convert,
		Filtered: eg.filtered,
		Mode:     eg.mode,
	}:
	default:
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	eg.winW = width
	eg.winH = height
	return width, height
}

func Launch(endGui chan bool, g *gui.GUI, pal *palette.Palette, conf Config) error {
	rend, err := filter.NewRenderer(conf.Width, conf.Height, pal, filter.Options{
		Depth:     filter.Depth32,
		Workers:   conf.Workers,
		Threshold: conf.Threshold,
		Bleed:     conf.Bleed,
	})
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	defer rend.Close()

	canHQ := conf.Width*2 <= maxTextureDim && conf.Height*2 <= maxTextureDim
	mode := conf.Mode
	if mode == gui.ScalingHQStretch && !canHQ {
		logger.Logf(logger.Allow, "gui", "frame too large for hq-stretch, using %s", gui.ScalingAspectFit)
		mode = gui.ScalingAspectFit
	}

	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(conf.Width*2, conf.Height*2)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)

	eg := &guiEbiten{
		endGui:   endGui,
		g:        g,
		state:    gui.StateRunning,
		rend:     rend,
		mode:     mode,
		filtered: conf.Filtered,
		canHQ:    canHQ,
		scratch:  make([]byte, conf.Width*conf.Height*4),
	}
	if canHQ {
		eg.transfer = make([]byte, conf.Width*conf.Height*16)
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
	case <-endGui:
		return nil
	}

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}
	if eg.geom.valid() {
		ebiten.SetWindowPosition(eg.geom.x, eg.geom.y)
		ebiten.SetWindowSize(eg.geom.w, eg.geom.h)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
