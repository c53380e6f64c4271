// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestInsideCircle(t *testing.T) {
	center := Vector2D{X: 10, Y: 10}

	tests := []struct {
		name     string
		radius   float64
		point    Vector2D
		expected bool
	}{
		{"center_is_inside", 16, center, true},
		{"tiny_radius_center", 0.001, center, true},
		{"boundary_excluded", 16, Vector2D{X: 26, Y: 10}, false},
		{"just_inside", 16, Vector2D{X: 25.999, Y: 10}, true},
		{"diagonal_inside", 5, Vector2D{X: 13, Y: 13.9}, true},
		{"diagonal_boundary", 5, Vector2D{X: 13, Y: 14}, false},
		{"zero_radius", 0, center, false},
		{"far_away", 16, Vector2D{X: -100, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideCircle(center, tt.radius, tt.point); got != tt.expected {
				t.Errorf("InsideCircle() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCircle_Contains(t *testing.T) {
	c := Circle{Center: Vector2D{X: 80, Y: 50}, Radius: 8}
	if !c.Contains(Vector2D{X: 80, Y: 50}) {
		t.Error("expected circle to contain its center")
	}
	if c.Contains(Vector2D{X: 88, Y: 50}) {
		t.Error("expected boundary point to be outside")
	}
}
