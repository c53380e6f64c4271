// pkg/render/terminal.go
package render

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// DefaultKeyHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultKeyHold = 200 * time.Millisecond

const pixelRune = '█'

// TerminalSurface draws one game pixel per terminal cell
type TerminalSurface struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalSurface creates a width by height surface on screen
func NewTerminalSurface(screen tcell.Screen, width, height int) *TerminalSurface {
	return &TerminalSurface{
		screen: screen,
		width:  width,
		height: height,
	}
}

// Size implements Surface.
func (s *TerminalSurface) Size() (int, int) {
	return s.width, s.height
}

// SetPixel implements Surface.
func (s *TerminalSurface) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	if c == Black {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		return
	}
	s.screen.SetContent(x, y, pixelRune, nil, terminalStyle(c))
}

// FillRect implements Surface.
func (s *TerminalSurface) FillRect(x, y, w, h int, c Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetPixel(col, row, c)
		}
	}
}

// DrawText implements Surface.
func (s *TerminalSurface) DrawText(x, y int, text string, c Color) {
	style := terminalStyle(c)
	col := x
	for _, r := range text {
		if col >= 0 && col < s.width && y >= 0 && y < s.height {
			s.screen.SetContent(col, y, r, nil, style)
		}
		col++
	}
}

// Present implements Presenter.
func (s *TerminalSurface) Present() {
	s.screen.Show()
}

func terminalStyle(c Color) tcell.Style {
	switch c {
	case White:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	case Yellow:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	}
}

// KeyState remembers when each control's key was last pressed
type KeyState struct {
	mu       sync.Mutex
	lastSeen map[input.Control]time.Time
	hold     time.Duration
	now      func() time.Time
}

// NewKeyState creates a key state with the given hold window
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		lastSeen: make(map[input.Control]time.Time),
		hold:     hold,
		now:      time.Now,
	}
}

// Press records a press or auto-repeat of the key bound to c
func (k *KeyState) Press(c input.Control) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastSeen[c] = k.now()
}

// Down reports whether c was pressed within the hold window
func (k *KeyState) Down(c input.Control) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	seen, ok := k.lastSeen[c]
	if !ok {
		return false
	}
	return k.now().Sub(seen) < k.hold
}

// controlForKey maps arrow keys, WASD and space onto game controls
func controlForKey(ev *tcell.EventKey) (input.Control, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.RotateLeft, true
	case tcell.KeyRight:
		return input.RotateRight, true
	case tcell.KeyUp:
		return input.Thrust, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.RotateLeft, true
		case 'd', 'D':
			return input.RotateRight, true
		case 'w', 'W':
			return input.Thrust, true
		case ' ':
			return input.Fire, true
		}
	}
	return 0, false
}

// TerminalHost runs the game loop on a tcell screen
type TerminalHost struct {
	screen    tcell.Screen
	surface   *TerminalSurface
	keys      *KeyState
	tracker   input.Tracker
	clock     *engine.FrameClock
	frameRate int
	logger    *logging.Logger
}

// NewTerminalHost initialises screen and sizes the surface to the game
// field. The caller must Close the host to restore the terminal.
func NewTerminalHost(screen tcell.Screen, width, height, frameRate int, maxFrameTime float64, logger *logging.Logger) (*TerminalHost, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if frameRate <= 0 {
		frameRate = 60
	}

	cols, rows := screen.Size()
	if cols < width || rows < height {
		logger.Warn(context.Background(), "Terminal smaller than the game field, clipping",
			"columns", cols,
			"rows", rows,
			"width", width,
			"height", height,
		)
	}

	return &TerminalHost{
		screen:    screen,
		surface:   NewTerminalSurface(screen, width, height),
		keys:      NewKeyState(DefaultKeyHold),
		clock:     engine.NewFrameClock(maxFrameTime),
		frameRate: frameRate,
		logger:    logger,
	}, nil
}

// Surface returns the drawing surface backed by the terminal
func (h *TerminalHost) Surface() *TerminalSurface {
	return h.surface
}

// Run calls frame at the configured rate until the player quits with
// Escape, q or Ctrl-C, or ctx is cancelled.
func (h *TerminalHost) Run(ctx context.Context, frame FrameFunc) error {
	ticker := time.NewTicker(time.Second / time.Duration(h.frameRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.logger.Info(ctx, "Terminal host started", "frame_rate", h.frameRate)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				h.logger.Info(ctx, "Player quit")
				return nil
			}

		case <-ticker.C:
			deltaTime := h.clock.Tick()
			frame(deltaTime, h.tracker.Sample(h.keys.Down))
		}
	}
}

// handleEvent records key presses and returns false when the player quits.
func (h *TerminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		if c, ok := controlForKey(ev); ok {
			h.keys.Press(c)
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Close restores the terminal
func (h *TerminalHost) Close() {
	h.screen.Fini()
}
