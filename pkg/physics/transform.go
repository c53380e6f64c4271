// pkg/physics/transform.go
package physics

// Transform maps local-space model points into world space.
// Each point is rotated by angle, scaled uniformly, then translated by pos,
// always in that order. The result has the same length and order as points.
func Transform(points []Vector2D, pos Vector2D, angle, scale float64) []Vector2D {
	out := make([]Vector2D, len(points))
	for i, p := range points {
		out[i] = p.Rotate(angle).Scale(scale).Add(pos)
	}
	return out
}
