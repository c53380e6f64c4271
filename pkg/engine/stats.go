// pkg/engine/stats.go
package engine

import (
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/event"
)

// Tally holds the session counters
type Tally struct {
	Shots     int
	Kills     int
	Splits    int
	Deaths    int
	Clears    int
	BestScore int
}

// SessionStats tallies game events over a whole session, across resets
type SessionStats struct {
	tally         Tally
	mu            sync.Mutex
	subscriptions []*event.Subscription
	bus           *event.Bus
}

// NewSessionStats subscribes a tally to the game events on bus
func NewSessionStats(bus *event.Bus) *SessionStats {
	stats := &SessionStats{bus: bus}

	for _, eventType := range []event.Type{
		event.BulletFired,
		event.AsteroidDestroyed,
		event.AsteroidSplit,
		event.ShipDestroyed,
		event.FieldCleared,
	} {
		stats.subscriptions = append(stats.subscriptions, bus.Subscribe(eventType, stats.handle))
	}

	return stats
}

func (s *SessionStats) handle(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.GetType() {
	case event.BulletFired:
		s.tally.Shots++
	case event.AsteroidDestroyed:
		s.tally.Kills++
	case event.AsteroidSplit:
		s.tally.Kills++
		s.tally.Splits++
	case event.ShipDestroyed:
		s.tally.Deaths++
	case event.FieldCleared:
		s.tally.Clears++
	}

	if score, ok := eventScore(e); ok && score > s.tally.BestScore {
		s.tally.BestScore = score
	}
}

// eventScore extracts the score carried by an event, if any
func eventScore(e event.Event) (int, bool) {
	switch ev := e.(type) {
	case *event.AsteroidEvent:
		return ev.Score, true
	case *event.ShipEvent:
		return ev.Score, true
	case *event.ScoreEvent:
		return ev.Score, true
	}
	return 0, false
}

// Snapshot returns a copy of the counters
func (s *SessionStats) Snapshot() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tally
}

// LogArgs returns the counters as slog key/value pairs
func (s *SessionStats) LogArgs() []any {
	snap := s.Snapshot()
	return []any{
		"shots", snap.Shots,
		"kills", snap.Kills,
		"splits", snap.Splits,
		"deaths", snap.Deaths,
		"clears", snap.Clears,
		"best_score", snap.BestScore,
	}
}

// Close unsubscribes the tally from the bus
func (s *SessionStats) Close() {
	for _, sub := range s.subscriptions {
		s.bus.Unsubscribe(sub)
	}
	s.subscriptions = nil
}
