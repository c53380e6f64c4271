// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Contains reports whether point lies strictly inside the circle.
func (c Circle) Contains(point Vector2D) bool {
	return InsideCircle(c.Center, c.Radius, point)
}

// InsideCircle reports whether point is closer to center than radius.
// The boundary itself is outside.
func InsideCircle(center Vector2D, radius float64, point Vector2D) bool {
	return point.Distance(center) < radius
}
