// pkg/render/wireframe.go
package render

import (
	"fmt"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ScoreTextX and ScoreTextY place the score readout
const (
	ScoreTextX = 2
	ScoreTextY = 2
)

// WireframeRenderer implements entity.Renderer by drawing outline models
// onto a Canvas.
type WireframeRenderer struct {
	canvas        *Canvas
	shipModel     entity.Model
	asteroidModel entity.Model
	shipScale     float64
}

// NewWireframeRenderer creates a renderer drawing the given asteroid model.
// The same model is scaled by each asteroid's radius.
func NewWireframeRenderer(surface Surface, asteroidModel entity.Model, shipScale float64) *WireframeRenderer {
	return &WireframeRenderer{
		canvas:        NewCanvas(surface),
		shipModel:     entity.ShipModel(),
		asteroidModel: asteroidModel,
		shipScale:     shipScale,
	}
}

// Clear implements entity.Renderer.
func (r *WireframeRenderer) Clear() {
	r.canvas.Clear()
}

// RenderShip implements entity.Renderer.
func (r *WireframeRenderer) RenderShip(ship *entity.SpaceObject) {
	r.drawWireframe(r.shipModel.Transform(ship.Position, ship.Angle, r.shipScale), White)
}

// RenderAsteroid implements entity.Renderer.
func (r *WireframeRenderer) RenderAsteroid(asteroid *entity.SpaceObject) {
	points := r.asteroidModel.Transform(asteroid.Position, asteroid.Angle, float64(asteroid.Size))
	r.drawWireframe(points, Yellow)
}

// RenderBullet implements entity.Renderer.
func (r *WireframeRenderer) RenderBullet(bullet *entity.SpaceObject) {
	r.canvas.Draw(int(bullet.Position.X), int(bullet.Position.Y), White)
}

// RenderScore implements entity.Renderer.
func (r *WireframeRenderer) RenderScore(score int) {
	r.canvas.Surface().DrawText(ScoreTextX, ScoreTextY, fmt.Sprintf("SCORE: %d", score), White)
}

// Present implements entity.Renderer.
func (r *WireframeRenderer) Present() {
	if p, ok := r.canvas.Surface().(Presenter); ok {
		p.Present()
	}
}

// drawWireframe draws a closed polygon.
func (r *WireframeRenderer) drawWireframe(points []physics.Vector2D, col Color) {
	for _, edge := range polygonEdges(len(points)) {
		a := points[edge[0]]
		b := points[edge[1]]
		r.canvas.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), col)
	}
}

// polygonEdges returns the vertex index pairs of a closed n-gon. The loop
// runs one step past the last vertex, so the closing edge (n-1, 0) is
// included and the first edge (0, 1) is repeated at the end.
func polygonEdges(n int) [][2]int {
	if n == 0 {
		return nil
	}
	edges := make([][2]int, 0, n+1)
	for i := 0; i <= n; i++ {
		edges = append(edges, [2]int{i % n, (i + 1) % n})
	}
	return edges
}
