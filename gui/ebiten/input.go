package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelhamfield/palview/gui"
	"github.com/pelhamfield/palview/logger"
	input "github.com/quasilyte/ebitengine-input"
)

const (
	ActionCycleScaling input.Action = iota
	ActionToggleFilter
	ActionPause
	ActionNextScene
	ActionQuit
)

func (eg *guiEbiten) initialise() {
	keymap := input.Keymap{
		ActionCycleScaling: {input.KeyS, input.KeyGamepadY},
		ActionToggleFilter: {input.KeyF, input.KeyGamepadX},
		ActionPause:        {input.KeyP, input.KeySpace, input.KeyGamepadStart},
		ActionNextScene:    {input.KeyN, input.KeyEnter, input.KeyGamepadA},
		ActionQuit:         {input.KeyEscape, input.KeyQ},
	}
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)
	eg.started = true
}

func (eg *guiEbiten) input() error {
	eg.inputSystem.Update()

	if eg.inputHandler.ActionIsJustPressed(ActionQuit) {
		select {
		case eg.g.UserInput <- gui.Input{Action: gui.Quit}:
		default:
		}
		return ebiten.Termination
	}

	// scaling mode and filtering are properties of the driver and are not
	// forwarded to the scene loop
	if eg.inputHandler.ActionIsJustPressed(ActionCycleScaling) {
		eg.cycleScaling()
	}
	if eg.inputHandler.ActionIsJustPressed(ActionToggleFilter) {
		eg.filtered = !eg.filtered
		eg.dirty = eg.src != nil
		logger.Logf(logger.Allow, "gui", "filtering: %v", eg.filtered)
	}

	var inp gui.Input

	if eg.inputHandler.ActionIsJustPressed(ActionPause) {
		inp = gui.Input{Action: gui.Pause}
	}
	if eg.inputHandler.ActionIsJustPressed(ActionNextScene) {
		inp = gui.Input{Action: gui.NextScene}
	}

	if inp.Action != gui.Nothing {
		select {
		case eg.g.UserInput <- inp:
		default:
		}
	}

	return nil
}
