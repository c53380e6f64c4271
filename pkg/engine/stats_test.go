package engine

import (
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestSessionStats(t *testing.T) {
	game, _ := newTestGame(t)
	stats := NewSessionStats(game.EventBus)
	defer stats.Close()

	center := physics.Vector2D{X: 40, Y: 40}
	game.Asteroids = []*entity.SpaceObject{
		entity.NewAsteroid(center, physics.Vector2D{}, 8),
		entity.NewAsteroid(physics.Vector2D{X: 120, Y: 80}, physics.Vector2D{}, 2),
	}
	game.Bullets = []*entity.SpaceObject{
		entity.NewBullet(center, physics.Vector2D{}),
		entity.NewBullet(physics.Vector2D{X: 120, Y: 80}, physics.Vector2D{}),
	}
	game.Update(0, input.Snapshot{}.WithReleased(input.Fire))

	game.Bullets = nil
	game.Asteroids = append(game.Asteroids, entity.NewAsteroid(game.Ship.Position, physics.Vector2D{}, 8))
	game.Update(0, input.None)

	got := stats.Snapshot()
	expected := Tally{Shots: 1, Kills: 2, Splits: 1, Deaths: 1, Clears: 0, BestScore: 200}
	if got != expected {
		t.Errorf("Snapshot() = %+v, expected %+v", got, expected)
	}

	if args := stats.LogArgs(); len(args) != 12 {
		t.Errorf("len(LogArgs()) = %d, expected 12", len(args))
	}
}

func TestSessionStats_Close(t *testing.T) {
	game, _ := newTestGame(t)
	stats := NewSessionStats(game.EventBus)
	stats.Close()

	game.Update(0, input.Snapshot{}.WithReleased(input.Fire))

	if got := stats.Snapshot().Shots; got != 0 {
		t.Errorf("Shots = %d after Close, expected 0", got)
	}
}
