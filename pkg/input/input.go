// Package input describes the per-frame control state a host hands to the
// simulation.
package input

// Control is a logical game control, independent of the physical key bound to it
type Control int

const (
	RotateLeft Control = iota
	RotateRight
	Thrust
	Fire
	controlCount
)

// String returns a printable name for the control
func (c Control) String() string {
	switch c {
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	case Thrust:
		return "thrust"
	case Fire:
		return "fire"
	default:
		return "unknown"
	}
}

// Source answers control queries for the current frame.
type Source interface {
	// Held reports whether the control is down this frame.
	Held(c Control) bool
	// Released reports whether the control went from held to not held
	// since the previous frame.
	Released(c Control) bool
}

// Snapshot is an immutable Source captured once per frame.
type Snapshot struct {
	held     [controlCount]bool
	released [controlCount]bool
}

// Held implements Source.
func (s Snapshot) Held(c Control) bool {
	if !c.valid() {
		return false
	}
	return s.held[c]
}

// Released implements Source.
func (s Snapshot) Released(c Control) bool {
	if !c.valid() {
		return false
	}
	return s.released[c]
}

// WithHeld returns a copy of the snapshot with c marked as held.
func (s Snapshot) WithHeld(c Control) Snapshot {
	if c.valid() {
		s.held[c] = true
	}
	return s
}

// WithReleased returns a copy of the snapshot with c marked as released.
func (s Snapshot) WithReleased(c Control) Snapshot {
	if c.valid() {
		s.released[c] = true
	}
	return s
}

func (c Control) valid() bool {
	return c >= 0 && c < controlCount
}

// Tracker turns a stream of raw "is down" samples into Snapshots with
// release edges. Hosts feed it the physical state once per frame.
type Tracker struct {
	down [controlCount]bool
}

// Sample records the current physical state and returns the frame snapshot.
// A control is released on the frame its sample flips from down to up.
func (t *Tracker) Sample(down func(Control) bool) Snapshot {
	var s Snapshot
	for c := Control(0); c < controlCount; c++ {
		now := down(c)
		s.held[c] = now
		s.released[c] = t.down[c] && !now
		t.down[c] = now
	}
	return s
}

// None is a Source with every control up.
var None Source = Snapshot{}
