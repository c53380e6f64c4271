package render

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func newTestWireframe(surface Surface) *WireframeRenderer {
	model := entity.NewAsteroidModel(rand.New(rand.NewPCG(1, 2)), entity.DefaultAsteroidVertices)
	return NewWireframeRenderer(surface, model, 1.25)
}

func TestWireframeRenderer_Ship(t *testing.T) {
	surface := newRecordingSurface(160, 100)
	renderer := newTestWireframe(surface)

	renderer.RenderShip(entity.NewShip(physics.Vector2D{X: 80, Y: 50}))

	// Nose of the triangle at (0,-5)*1.25 from the centre.
	if surface.pixels[[2]int{80, 43}] != White {
		t.Error("ship nose pixel (80, 43) not drawn")
	}
	if surface.countColor(White) == 0 || surface.countColor(Yellow) != 0 {
		t.Errorf("ship drew %d white and %d yellow pixels", surface.countColor(White), surface.countColor(Yellow))
	}
}

func TestWireframeRenderer_AsteroidIsClosedYellowOutline(t *testing.T) {
	surface := newRecordingSurface(160, 100)
	renderer := newTestWireframe(surface)
	asteroid := entity.NewAsteroid(physics.Vector2D{X: 80, Y: 50}, physics.Vector2D{}, 16)

	renderer.RenderAsteroid(asteroid)

	if surface.countColor(Yellow) == 0 {
		t.Fatal("RenderAsteroid() drew no yellow pixels")
	}
	if surface.countColor(White) != 0 {
		t.Errorf("RenderAsteroid() drew %d white pixels, expected 0", surface.countColor(White))
	}

	// Every vertex, including the first, is on the outline.
	points := renderer.asteroidModel.Transform(asteroid.Position, asteroid.Angle, 16)
	for i, p := range points {
		if surface.pixels[[2]int{int(p.X), int(p.Y)}] != Yellow {
			t.Errorf("vertex %d at (%d, %d) not drawn", i, int(p.X), int(p.Y))
		}
	}
	if surface.pixels[[2]int{80, 50}] == Yellow {
		t.Error("asteroid centre was filled")
	}
}

func TestWireframeRenderer_AsteroidWrapsAcrossEdge(t *testing.T) {
	surface := newRecordingSurface(160, 100)
	renderer := newTestWireframe(surface)

	renderer.RenderAsteroid(entity.NewAsteroid(physics.Vector2D{X: 2, Y: 50}, physics.Vector2D{}, 16))

	wrapped := 0
	for p := range surface.pixels {
		if p[0] > 140 {
			wrapped++
		}
	}
	if wrapped == 0 {
		t.Error("no pixels wrapped to the right edge")
	}
}

func TestWireframeRenderer_Bullet(t *testing.T) {
	surface := newRecordingSurface(160, 100)
	renderer := newTestWireframe(surface)

	renderer.RenderBullet(entity.NewBullet(physics.Vector2D{X: 12.7, Y: 30.2}, physics.Vector2D{}))

	if surface.pixels[[2]int{12, 30}] != White || len(surface.pixels) != 1 {
		t.Errorf("RenderBullet() pixels = %v, expected (12, 30) only", surface.pixels)
	}
}

func TestWireframeRenderer_FrameLifecycle(t *testing.T) {
	surface := newRecordingSurface(160, 100)
	renderer := newTestWireframe(surface)

	renderer.Clear()
	renderer.RenderScore(1200)
	renderer.Present()

	if surface.fills != 1 {
		t.Errorf("fills = %d, expected 1", surface.fills)
	}
	if len(surface.texts) != 1 || surface.texts[0] != "SCORE: 1200" {
		t.Errorf("texts = %v, expected [SCORE: 1200]", surface.texts)
	}
	if surface.presented != 1 {
		t.Errorf("presented = %d, expected 1", surface.presented)
	}
}

func TestWireframeRenderer_EmptyPolygon(t *testing.T) {
	surface := newRecordingSurface(10, 10)
	renderer := NewWireframeRenderer(surface, nil, 1)

	renderer.RenderAsteroid(entity.NewAsteroid(physics.Vector2D{X: 5, Y: 5}, physics.Vector2D{}, 4))

	if len(surface.pixels) != 0 {
		t.Errorf("empty model drew %d pixels", len(surface.pixels))
	}
}

func TestPolygonEdges(t *testing.T) {
	tests := []struct {
		n        int
		expected [][2]int
	}{
		{0, nil},
		{1, [][2]int{{0, 0}, {0, 0}}},
		{3, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 1}}},
		{4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 1}}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got := polygonEdges(tt.n)
			if len(got) != len(tt.expected) {
				t.Fatalf("len(polygonEdges(%d)) = %d, expected %d", tt.n, len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("edge %d = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPolygonEdges_DefaultAsteroid(t *testing.T) {
	n := entity.DefaultAsteroidVertices
	edges := polygonEdges(n)

	if len(edges) != n+1 {
		t.Fatalf("len(polygonEdges(%d)) = %d, expected %d", n, len(edges), n+1)
	}
	if edges[n-1] != [2]int{n - 1, 0} {
		t.Errorf("edge %d = %v, expected the closing edge {%d 0}", n-1, edges[n-1], n-1)
	}
	if edges[n] != [2]int{0, 1} {
		t.Errorf("edge %d = %v, expected {0 1}", n, edges[n])
	}
}

func TestWireframeRenderer_DrawsClosingEdge(t *testing.T) {
	surface := newRecordingSurface(100, 100)
	diamond := entity.Model{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	renderer := NewWireframeRenderer(surface, diamond, 1)

	renderer.RenderAsteroid(entity.NewAsteroid(physics.Vector2D{X: 50, Y: 50}, physics.Vector2D{}, 10))

	// Vertices land on (50,40) (60,50) (50,60) (40,50); (45,45) lies only
	// on the edge from the last vertex back to the first.
	if surface.pixels[[2]int{45, 45}] != Yellow {
		t.Error("closing edge midpoint (45, 45) not drawn")
	}
	for _, p := range [][2]int{{55, 45}, {55, 55}, {45, 55}} {
		if surface.pixels[p] != Yellow {
			t.Errorf("edge midpoint %v not drawn", p)
		}
	}
}
