// pkg/physics/space.go
package physics

// Space is a toroidal field: leaving one edge re-enters from the opposite one.
type Space struct {
	Width  float64
	Height float64
}

// NewSpace creates a toroidal space with integer screen extents.
func NewSpace(width, height int) Space {
	return Space{Width: float64(width), Height: float64(height)}
}

// Wrap folds a position back into [0, Width) x [0, Height).
// Only one extent is added or subtracted per axis, which covers any
// displacement a single frame can produce.
func (s Space) Wrap(p Vector2D) Vector2D {
	p.X = wrapAxis(p.X, s.Width)
	p.Y = wrapAxis(p.Y, s.Height)
	return p
}

func wrapAxis(v, extent float64) float64 {
	switch {
	case v < 0:
		v += extent
		// -1e-20 + extent rounds to extent
		if v >= extent {
			v = 0
		}
	case v >= extent:
		v -= extent
	}
	return v
}
