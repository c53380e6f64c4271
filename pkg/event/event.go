// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game event types
const (
	BulletFired       Type = "bullet_fired"
	AsteroidDestroyed Type = "asteroid_destroyed"
	AsteroidSplit     Type = "asteroid_split"
	ShipDestroyed     Type = "ship_destroyed"
	FieldCleared      Type = "field_cleared"
	GameReset         Type = "game_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later
type Subscription struct {
	ID   uint64
	Type Type
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{ID: id, Type: eventType}
}

// Unsubscribe removes a previously registered handler.
// It reports whether the subscription was found.
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.Type]
	for i, r := range regs {
		if r.id == sub.ID {
			b.handlers[sub.Type] = append(regs[:i:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := append([]registration(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Specific event implementations

// AsteroidEvent describes an asteroid that was hit by a bullet
type AsteroidEvent struct {
	BaseEvent
	X, Y  float64
	Size  int
	Score int
}

// NewAsteroidEvent creates a new asteroid event
func NewAsteroidEvent(eventType Type, source interface{}, x, y float64, size, score int) *AsteroidEvent {
	return &AsteroidEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		X:     x,
		Y:     y,
		Size:  size,
		Score: score,
	}
}

// ShipEvent contains information about the player ship
type ShipEvent struct {
	BaseEvent
	X, Y  float64
	Angle float64
	Score int
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, x, y, angle float64, score int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		X:     x,
		Y:     y,
		Angle: angle,
		Score: score,
	}
}

// ScoreEvent carries the score after a game-wide transition
type ScoreEvent struct {
	BaseEvent
	Score int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(eventType Type, source interface{}, score int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Score: score,
	}
}
