package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/input"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(160, 100)
	return screen
}

func TestTerminalSurface_Pixels(t *testing.T) {
	screen := newSimulationScreen(t)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()
	surface := NewTerminalSurface(screen, 40, 20)

	surface.SetPixel(3, 4, Yellow)
	surface.SetPixel(50, 4, White)
	surface.DrawText(2, 2, "SCORE: 0", White)

	if r, _, _, _ := screen.GetContent(3, 4); r != pixelRune {
		t.Errorf("cell (3, 4) = %q, expected %q", r, pixelRune)
	}
	if r, _, _, _ := screen.GetContent(50, 4); r == pixelRune {
		t.Error("pixel outside the surface was drawn")
	}
	if r, _, _, _ := screen.GetContent(2, 2); r != 'S' {
		t.Errorf("cell (2, 2) = %q, expected 'S'", r)
	}

	surface.FillRect(0, 0, 40, 20, Black)
	if r, _, _, _ := screen.GetContent(3, 4); r != ' ' {
		t.Errorf("cell (3, 4) after clear = %q, expected ' '", r)
	}

	width, height := surface.Size()
	if width != 40 || height != 20 {
		t.Errorf("Size() = %d, %d, expected 40, 20", width, height)
	}
}

func TestKeyState_HoldWindow(t *testing.T) {
	current := time.Unix(0, 0)
	keys := NewKeyState(200 * time.Millisecond)
	keys.now = func() time.Time { return current }

	if keys.Down(input.Thrust) {
		t.Error("Down() = true before any press")
	}

	keys.Press(input.Thrust)
	current = current.Add(150 * time.Millisecond)
	if !keys.Down(input.Thrust) {
		t.Error("Down() = false inside the hold window")
	}

	current = current.Add(100 * time.Millisecond)
	if keys.Down(input.Thrust) {
		t.Error("Down() = true after the hold window")
	}
}

func TestKeyState_FireReleasesAfterHold(t *testing.T) {
	current := time.Unix(0, 0)
	keys := NewKeyState(100 * time.Millisecond)
	keys.now = func() time.Time { return current }
	var tracker input.Tracker

	keys.Press(input.Fire)
	if snap := tracker.Sample(keys.Down); !snap.Held(input.Fire) || snap.Released(input.Fire) {
		t.Fatal("fire should be held and not released right after the press")
	}

	current = current.Add(150 * time.Millisecond)
	if snap := tracker.Sample(keys.Down); !snap.Released(input.Fire) {
		t.Error("fire was not released once the hold window passed")
	}
}

func TestControlForKey(t *testing.T) {
	tests := []struct {
		name    string
		event   *tcell.EventKey
		control input.Control
		ok      bool
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.RotateLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.RotateRight, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Thrust, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), input.RotateLeft, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.RotateRight, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.Thrust, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Fire, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control, ok := controlForKey(tt.event)
			if ok != tt.ok || (ok && control != tt.control) {
				t.Errorf("controlForKey() = %v, %v, expected %v, %v", control, ok, tt.control, tt.ok)
			}
		})
	}
}

func TestTerminalHost_HandleEvent(t *testing.T) {
	host, err := NewTerminalHost(newSimulationScreen(t), 40, 20, 60, 0.1, nil)
	if err != nil {
		t.Fatalf("NewTerminalHost() error = %v", err)
	}
	defer host.Close()

	if !host.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Error("handleEvent(space) = false, expected true")
	}
	if !host.keys.Down(input.Fire) {
		t.Error("space did not press fire")
	}

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if host.handleEvent(ev) {
			t.Errorf("handleEvent(%v) = true, expected quit", ev.Name())
		}
	}
}
