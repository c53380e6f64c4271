// pkg/engine/game.go
package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameStatus is the state of the frame state machine
type GameStatus int

const (
	GameStatusPlaying GameStatus = iota
	GameStatusDead
)

// Seed asteroids placed by Reset
var seedAsteroids = []struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
}{
	{physics.Vector2D{X: 20, Y: 20}, physics.Vector2D{X: 8, Y: -6}},
	{physics.Vector2D{X: 100, Y: 20}, physics.Vector2D{X: -5, Y: 3}},
}

// Game owns one play session: the ship, the asteroid and bullet
// collections, the score and the dead flag. It is driven by a host that
// calls Update once per frame and is not safe for concurrent use.
type Game struct {
	Config    *config.GameConfig
	Space     physics.Space
	Ship      *entity.SpaceObject
	Asteroids []*entity.SpaceObject
	Bullets   []*entity.SpaceObject
	Score     int
	Dead      bool
	Frame     uint64
	EventBus  *event.Bus
	Renderer  entity.Renderer

	rng       *rand.Rand
	fragments []*entity.SpaceObject
}

// NewGame creates a game sized from the configuration and resets it.
// A zero cfg.Seed seeds the random source from the clock.
func NewGame(cfg *config.GameConfig, renderer entity.Renderer) *Game {
	return NewGameWithRand(cfg, renderer, NewRand(cfg.Seed))
}

// NewGameWithRand creates a game that draws fragment headings from rng.
// Hosts that build the asteroid model from the same source pass it here.
func NewGameWithRand(cfg *config.GameConfig, renderer entity.Renderer, rng *rand.Rand) *Game {
	game := &Game{
		Config:   cfg,
		Space:    physics.NewSpace(cfg.Screen.Width, cfg.Screen.Height),
		EventBus: event.NewEventBus(),
		Renderer: renderer,
		rng:      rng,
	}
	game.Reset()
	return game
}

// NewRand returns the random source used for a session. The asteroid
// model and fragment headings draw from it, so a fixed seed replays a
// session exactly.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Rand exposes the session random source
func (g *Game) Rand() *rand.Rand {
	return g.rng
}

// Status reports the current state machine state
func (g *Game) Status() GameStatus {
	if g.Dead {
		return GameStatusDead
	}
	return GameStatusPlaying
}

// Reset starts a new round: two seed asteroids, no bullets, the ship
// centred at rest pointing up, score zero.
func (g *Game) Reset() {
	g.Asteroids = g.Asteroids[:0]
	g.Bullets = g.Bullets[:0]
	g.fragments = g.fragments[:0]

	for _, seed := range seedAsteroids {
		g.Asteroids = append(g.Asteroids, entity.NewAsteroid(
			g.Space.Wrap(seed.Position),
			seed.Velocity,
			g.Config.Rules.SeedSize,
		))
	}

	g.Ship = entity.NewShip(physics.Vector2D{
		X: g.Space.Width / 2,
		Y: g.Space.Height / 2,
	})

	g.Dead = false
	g.Score = 0

	g.EventBus.Publish(event.NewScoreEvent(event.GameReset, g, 0))
}

// Update advances the simulation by one frame of deltaTime seconds and
// emits the frame's draw calls. A dead game is reset first and then
// simulated within the same frame.
func (g *Game) Update(deltaTime float64, in input.Source) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if g.Dead {
		g.Reset()
	}

	g.Renderer.Clear()

	g.applyControls(deltaTime, in)
	g.updateShip(deltaTime)
	g.checkShipCollisions()
	g.fireOnRelease(in)

	g.updateAsteroids(deltaTime)
	g.updateBullets(deltaTime)
	g.appendFragments()

	g.cleanupInactiveEntities()
	g.respawnIfCleared()

	g.Ship.Render(g.Renderer)
	g.Renderer.RenderScore(g.Score)
	g.Renderer.Present()

	g.Frame++
}

// applyControls turns the ship and applies thrust along its heading.
func (g *Game) applyControls(deltaTime float64, in input.Source) {
	turnRate := g.Config.Physics.TurnRate
	if in.Held(input.RotateLeft) {
		g.Ship.Angle -= turnRate * deltaTime
	}
	if in.Held(input.RotateRight) {
		g.Ship.Angle += turnRate * deltaTime
	}

	if in.Held(input.Thrust) {
		thrust := physics.FromHeading(g.Ship.Angle, g.Config.Physics.Thrust*deltaTime)
		g.Ship.Velocity = g.Ship.Velocity.Add(thrust)
	}
}

// updateShip integrates and wraps the ship.
func (g *Game) updateShip(deltaTime float64) {
	g.Ship.Update(deltaTime)
	g.Ship.Wrap(g.Space)
}

// checkShipCollisions kills the ship if it sits inside any asteroid. The
// ship keeps its position for this frame; the next frame resets.
func (g *Game) checkShipCollisions() {
	for _, asteroid := range g.Asteroids {
		if !asteroid.Contains(g.Ship.Position) {
			continue
		}
		if !g.Dead {
			g.Dead = true
			g.EventBus.Publish(event.NewShipEvent(
				event.ShipDestroyed,
				g,
				g.Ship.Position.X,
				g.Ship.Position.Y,
				g.Ship.Angle,
				g.Score,
			))
		}
	}
}

// fireOnRelease launches a bullet from the ship when fire was released.
func (g *Game) fireOnRelease(in input.Source) {
	if !in.Released(input.Fire) {
		return
	}

	bullet := entity.NewBullet(
		g.Ship.Position,
		physics.FromHeading(g.Ship.Angle, g.Config.Physics.BulletSpeed),
	)
	g.Bullets = append(g.Bullets, bullet)

	g.EventBus.Publish(event.NewShipEvent(
		event.BulletFired,
		g,
		bullet.Position.X,
		bullet.Position.Y,
		g.Ship.Angle,
		g.Score,
	))
}

// updateAsteroids moves, spins, wraps and draws every asteroid.
func (g *Game) updateAsteroids(deltaTime float64) {
	spin := g.Config.Physics.AsteroidSpin
	for _, asteroid := range g.Asteroids {
		asteroid.Update(deltaTime)
		asteroid.Angle += spin * deltaTime
		asteroid.Wrap(g.Space)
		asteroid.Render(g.Renderer)
	}
}

// updateBullets moves, wraps and draws every bullet, then resolves its hits.
func (g *Game) updateBullets(deltaTime float64) {
	for _, bullet := range g.Bullets {
		bullet.Update(deltaTime)
		bullet.Wrap(g.Space)
		bullet.Render(g.Renderer)

		g.resolveBulletHits(bullet)
	}
}

// resolveBulletHits destroys the first live asteroid containing the bullet.
// A bullet scores at most one hit per frame.
func (g *Game) resolveBulletHits(bullet *entity.SpaceObject) {
	if !bullet.Active {
		return
	}

	for _, asteroid := range g.Asteroids {
		if !asteroid.Active || !asteroid.Contains(bullet.Position) {
			continue
		}

		bullet.Destroy()
		g.destroyAsteroid(asteroid)
		return
	}
}

// destroyAsteroid removes an asteroid, queues its fragments and scores it.
func (g *Game) destroyAsteroid(asteroid *entity.SpaceObject) {
	asteroid.Destroy()
	g.Score += g.Config.Rules.HitScore

	eventType := event.AsteroidDestroyed
	if asteroid.Size > g.Config.Rules.SplitThreshold {
		eventType = event.AsteroidSplit
		childSize := asteroid.Size >> 1
		for i := 0; i < 2; i++ {
			heading := g.rng.Float64() * 2 * math.Pi
			g.fragments = append(g.fragments, entity.NewAsteroid(
				asteroid.Position,
				physics.FromBearing(heading, g.Config.Physics.AsteroidSpeed),
				childSize,
			))
		}
	}

	g.EventBus.Publish(event.NewAsteroidEvent(
		eventType,
		g,
		asteroid.Position.X,
		asteroid.Position.Y,
		asteroid.Size,
		g.Score,
	))
}

// appendFragments adds this frame's fragments once every hit is resolved,
// so they never collide in the frame they were born.
func (g *Game) appendFragments() {
	g.Asteroids = append(g.Asteroids, g.fragments...)
	clear(g.fragments)
	g.fragments = g.fragments[:0]
}

// cleanupInactiveEntities compacts destroyed and off-field objects away.
func (g *Game) cleanupInactiveEntities() {
	g.cullBullets()
	g.cullAsteroids()
}

// cullBullets drops hit bullets and bullets outside the visible area.
// The 1-unit margin on the low edges removes bullets leaving left or up.
func (g *Game) cullBullets() {
	g.Bullets = compact(g.Bullets, func(b *entity.SpaceObject) bool {
		p := b.Position
		return b.Active && p.X >= 1 && p.Y >= 1 && p.X < g.Space.Width && p.Y < g.Space.Height
	})
}

// cullAsteroids drops destroyed asteroids and any left of the field.
func (g *Game) cullAsteroids() {
	g.Asteroids = compact(g.Asteroids, func(a *entity.SpaceObject) bool {
		return a.Active && a.Position.X >= 0
	})
}

// respawnIfCleared awards the clear bonus and places two fresh asteroids
// to either side of the ship when the field is empty.
func (g *Game) respawnIfCleared() {
	if len(g.Asteroids) > 0 {
		return
	}

	g.Score += g.Config.Rules.ClearBonus
	clear(g.Bullets)
	g.Bullets = g.Bullets[:0]

	angle := g.Ship.Angle
	distance := g.Config.Rules.RespawnDistance
	speed := g.Config.Physics.AsteroidSpeed
	size := g.Config.Rules.SeedSize

	// Wrapped here rather than on the next frame's update, so the next
	// ship collision test already sees the on-field position.
	left := g.Ship.Position.Add(physics.FromBearing(angle-math.Pi/2, distance))
	right := g.Ship.Position.Add(physics.FromBearing(angle+math.Pi/2, distance))

	g.Asteroids = append(g.Asteroids,
		entity.NewAsteroid(g.Space.Wrap(left), physics.FromBearing(angle, speed), size),
		entity.NewAsteroid(g.Space.Wrap(right), physics.FromBearing(-angle, speed), size),
	)

	g.EventBus.Publish(event.NewScoreEvent(event.FieldCleared, g, g.Score))
}

// compact keeps the objects for which keep returns true, reusing the
// backing array and releasing the dropped tail.
func compact(objects []*entity.SpaceObject, keep func(*entity.SpaceObject) bool) []*entity.SpaceObject {
	kept := objects[:0]
	for _, o := range objects {
		if keep(o) {
			kept = append(kept, o)
		}
	}
	clear(objects[len(kept):])
	return kept
}

// GameState is a read-only summary of a game at a frame boundary
type GameState struct {
	Frame     uint64
	Status    GameStatus
	Score     int
	Asteroids int
	Bullets   int
	Ship      entity.SpaceObject
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() GameState {
	return GameState{
		Frame:     g.Frame,
		Status:    g.Status(),
		Score:     g.Score,
		Asteroids: len(g.Asteroids),
		Bullets:   len(g.Bullets),
		Ship:      *g.Ship,
	}
}
