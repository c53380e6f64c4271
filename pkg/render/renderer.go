// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing and logs each
// call at debug level. The headless host uses it.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &NullRenderer{
		logger: logger,
	}
}

// Frames returns the number of frames presented so far
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called", "frame", d.frames)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.SpaceObject) {
	ctx := context.Background()
	if ship == nil {
		d.logger.Debug(ctx, "RenderShip called with nil ship")
		return
	}
	d.logger.Debug(ctx, "RenderShip called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"angle", ship.Angle,
	)
}

// RenderAsteroid implements entity.Renderer.
func (d *NullRenderer) RenderAsteroid(asteroid *entity.SpaceObject) {
	ctx := context.Background()
	if asteroid == nil {
		d.logger.Debug(ctx, "RenderAsteroid called with nil asteroid")
		return
	}
	d.logger.Debug(ctx, "RenderAsteroid called",
		"x", asteroid.Position.X,
		"y", asteroid.Position.Y,
		"size", asteroid.Size,
	)
}

// RenderBullet implements entity.Renderer.
func (d *NullRenderer) RenderBullet(bullet *entity.SpaceObject) {
	ctx := context.Background()
	if bullet == nil {
		d.logger.Debug(ctx, "RenderBullet called with nil bullet")
		return
	}
	d.logger.Debug(ctx, "RenderBullet called",
		"x", bullet.Position.X,
		"y", bullet.Position.Y,
	)
}

// RenderScore implements entity.Renderer.
func (d *NullRenderer) RenderScore(score int) {
	d.logger.Debug(context.Background(), "RenderScore called", "score", score)
}

var _ entity.Renderer = (*NullRenderer)(nil)
var _ entity.Renderer = (*WireframeRenderer)(nil)
