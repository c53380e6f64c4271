// pkg/entity/model.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// DefaultAsteroidVertices is the number of points in the asteroid outline
const DefaultAsteroidVertices = 20

// Model is a wire-frame outline: an ordered list of local-space points
// joined by line segments, with the last point joined back to the first.
type Model []physics.Vector2D

// ShipModel returns the isosceles triangle used for the player ship.
func ShipModel() Model {
	return Model{
		{X: 0, Y: -5},
		{X: -2.5, Y: 2.5},
		{X: 2.5, Y: 2.5},
	}
}

// NewAsteroidModel builds a jagged unit-radius outline. Vertices sit at
// evenly spaced angles with a radius drawn from [0.8, 1.2). The model is
// sampled once and shared by every asteroid, so all asteroids have the same
// silhouette at different scales and rotations.
func NewAsteroidModel(rng *rand.Rand, vertices int) Model {
	if vertices < 3 {
		vertices = DefaultAsteroidVertices
	}

	model := make(Model, vertices)
	for i := range model {
		radius := rng.Float64()*0.4 + 0.8
		a := float64(i) / float64(vertices) * 2 * math.Pi
		model[i] = physics.Vector2D{
			X: radius * math.Sin(a),
			Y: radius * math.Cos(a),
		}
	}
	return model
}

// Transform returns the model's points in world space.
func (m Model) Transform(position physics.Vector2D, angle, scale float64) []physics.Vector2D {
	return physics.Transform(m, position, angle, scale)
}
