// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

// Button names registered with engo.Input
const (
	ButtonThrust    = "thrust"
	ButtonTurnLeft  = "turnLeft"
	ButtonTurnRight = "turnRight"
	ButtonFire      = "fire"
	ButtonQuit      = "quit"
)

var controlButtons = map[input.Control]string{
	input.RotateLeft:  ButtonTurnLeft,
	input.RotateRight: ButtonTurnRight,
	input.Thrust:      ButtonThrust,
	input.Fire:        ButtonFire,
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonTurnRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape, engo.KeyQ)
}

// buttonState reports a named button's state for the current frame
type buttonState func(name string) bool

// snapshotButtons builds the frame's input from button queries. engo
// tracks release edges itself, so no Tracker is needed here.
func snapshotButtons(down, released buttonState) input.Snapshot {
	var snap input.Snapshot
	for control, name := range controlButtons {
		if down(name) {
			snap = snap.WithHeld(control)
		}
		if released(name) {
			snap = snap.WithReleased(control)
		}
	}
	return snap
}

// pollButtons reads engo.Input for the current frame
func pollButtons() input.Snapshot {
	return snapshotButtons(
		func(name string) bool { return engo.Input.Button(name).Down() },
		func(name string) bool { return engo.Input.Button(name).JustReleased() },
	)
}
