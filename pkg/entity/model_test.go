// pkg/entity/model_test.go
package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestShipModel(t *testing.T) {
	m := ShipModel()
	if len(m) != 3 {
		t.Fatalf("ShipModel() has %d points, expected 3", len(m))
	}
	if m[0] != (physics.Vector2D{X: 0, Y: -5}) {
		t.Errorf("nose = %v, expected {0 -5}", m[0])
	}
}

func TestNewAsteroidModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := NewAsteroidModel(rng, 20)

	if len(m) != 20 {
		t.Fatalf("NewAsteroidModel() has %d points, expected 20", len(m))
	}

	for i, p := range m {
		r := p.Length()
		if r < 0.8-1e-9 || r > 1.2+1e-9 {
			t.Errorf("vertex %d radius %v outside [0.8, 1.2)", i, r)
		}

		// each vertex lies on its evenly spaced direction
		a := float64(i) / 20 * 2 * math.Pi
		expected := physics.Vector2D{X: r * math.Sin(a), Y: r * math.Cos(a)}
		if p.Distance(expected) > 1e-9 {
			t.Errorf("vertex %d = %v, expected %v", i, p, expected)
		}
	}
}

func TestNewAsteroidModel_DeterministicForSeed(t *testing.T) {
	a := NewAsteroidModel(rand.New(rand.NewPCG(7, 7)), 20)
	b := NewAsteroidModel(rand.New(rand.NewPCG(7, 7)), 20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNewAsteroidModel_TooFewVerticesFallsBack(t *testing.T) {
	m := NewAsteroidModel(rand.New(rand.NewPCG(1, 1)), 2)
	if len(m) != DefaultAsteroidVertices {
		t.Errorf("expected %d vertices, got %d", DefaultAsteroidVertices, len(m))
	}
}

func TestModel_Transform(t *testing.T) {
	got := ShipModel().Transform(physics.Vector2D{X: 80, Y: 50}, 0, 1.25)
	expected := physics.Vector2D{X: 80, Y: 43.75}
	if got[0] != expected {
		t.Errorf("nose = %v, expected %v", got[0], expected)
	}
}
