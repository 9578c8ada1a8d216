package gui

type Action int

type Input struct {
	Action Action
	Data   any
}

const (
	Nothing Action = iota

	Pause
	NextScene
	Quit
)
