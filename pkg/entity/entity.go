// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Kind identifies the role a SpaceObject plays in the simulation
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
)

// String returns a printable name for the kind
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// ShipSize is the nominal radius of the player ship
const ShipSize = 5

// SpaceObject is any movable body: the ship, an asteroid or a bullet.
//
// Size doubles as the collision radius and as the fragmentation threshold
// input; bullets have size 0. Active is cleared when the object has been
// destroyed during the current frame and is waiting to be compacted away.
type SpaceObject struct {
	Kind     Kind
	Position physics.Vector2D
	Velocity physics.Vector2D
	Size     int
	Angle    float64
	Active   bool
}

// NewShip creates the player ship at rest, pointing up.
func NewShip(position physics.Vector2D) *SpaceObject {
	return &SpaceObject{
		Kind:     KindShip,
		Position: position,
		Size:     ShipSize,
		Active:   true,
	}
}

// NewAsteroid creates an asteroid of the given radius.
func NewAsteroid(position, velocity physics.Vector2D, size int) *SpaceObject {
	return &SpaceObject{
		Kind:     KindAsteroid,
		Position: position,
		Velocity: velocity,
		Size:     size,
		Active:   true,
	}
}

// NewBullet creates a size-0 projectile.
func NewBullet(position, velocity physics.Vector2D) *SpaceObject {
	return &SpaceObject{
		Kind:     KindBullet,
		Position: position,
		Velocity: velocity,
		Active:   true,
	}
}

// Update integrates the position with the current velocity.
func (o *SpaceObject) Update(deltaTime float64) {
	o.Position = o.Position.Add(o.Velocity.Scale(deltaTime))
}

// Wrap folds the position back into the given toroidal space.
func (o *SpaceObject) Wrap(space physics.Space) {
	o.Position = space.Wrap(o.Position)
}

// Collider returns the object's collision circle
func (o *SpaceObject) Collider() physics.Circle {
	return physics.Circle{
		Center: o.Position,
		Radius: float64(o.Size),
	}
}

// Contains reports whether point lies inside the object's collision circle.
func (o *SpaceObject) Contains(point physics.Vector2D) bool {
	return o.Collider().Contains(point)
}

// Destroy marks the object for removal at the end of the frame.
func (o *SpaceObject) Destroy() {
	o.Active = false
}

// Render dispatches to the renderer hook matching the object's kind.
func (o *SpaceObject) Render(r Renderer) {
	switch o.Kind {
	case KindShip:
		r.RenderShip(o)
	case KindAsteroid:
		r.RenderAsteroid(o)
	case KindBullet:
		r.RenderBullet(o)
	}
}
