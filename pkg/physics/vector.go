// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector in screen space (y grows downward)
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromHeading creates a vector of the given magnitude along a heading.
// Heading 0 points up the screen (negative y) and grows clockwise.
func FromHeading(heading float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Sin(heading),
		Y: -magnitude * math.Cos(heading),
	}
}

// FromBearing creates a vector of the given magnitude using the (sin, cos)
// convention, so bearing 0 points down the screen. Fragments and respawned
// asteroids are launched this way.
func FromBearing(bearing float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Sin(bearing),
		Y: magnitude * math.Cos(bearing),
	}
}
