package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestNullRenderer_LogsCalls(t *testing.T) {
	t.Setenv(logging.LevelEnvVar, "DEBUG")
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf))

	renderer.Clear()
	renderer.RenderShip(entity.NewShip(physics.Vector2D{X: 1, Y: 2}))
	renderer.RenderAsteroid(entity.NewAsteroid(physics.Vector2D{}, physics.Vector2D{}, 8))
	renderer.RenderBullet(entity.NewBullet(physics.Vector2D{}, physics.Vector2D{}))
	renderer.RenderScore(100)
	renderer.Present()

	for _, msg := range []string{"Clear called", "RenderShip called", "RenderAsteroid called", "RenderBullet called", "RenderScore called", "Present called"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log output missing %q", msg)
		}
	}
	if renderer.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", renderer.Frames())
	}
}

func TestNullRenderer_NilObjects(t *testing.T) {
	renderer := NewNullRenderer(nil)

	renderer.RenderShip(nil)
	renderer.RenderAsteroid(nil)
	renderer.RenderBullet(nil)
}
