package quiz

import (
	"math/rand"
	"sync"
	"time"

	"chirpquiz/internal/species"
	"chirpquiz/pkg/events"
)

// Store holds live sessions keyed by ID. Starting a new game never touches
// an existing one; abandoning a session in progress (e.g. the player picks a
// new mode or region) simply leaves it behind for the janitor below.
type Store struct {
	mu       sync.RWMutex
	catalog  *species.Catalog
	sessions map[string]*Session
	bus      *events.Bus[GameEvent]
}

// NewStore creates a session store over the given catalog. bus may be nil
// when no analytics consumer is attached.
func NewStore(catalog *species.Catalog, bus *events.Bus[GameEvent]) *Store {
	if catalog == nil {
		catalog = species.Empty()
	}
	return &Store{
		catalog:  catalog,
		sessions: make(map[string]*Session),
		bus:      bus,
	}
}

// Ready reports whether the catalog has any data to quiz on. When false,
// handlers render the no-data state instead of a start form.
func (s *Store) Ready() bool {
	return s.catalog.Len() > 0
}

// Catalog returns the species dataset backing this store.
func (s *Store) Catalog() *species.Catalog {
	return s.catalog
}

// Regions returns the region tags available in the catalog.
func (s *Store) Regions() []string {
	return s.catalog.Regions()
}

// CreateSession starts a new game and publishes the game-started event.
func (s *Store) CreateSession(mode Mode, region string) (*Session, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess, err := NewSession(s.catalog, mode, region, rng)
	if err != nil {
		return nil, err
	}
	sess.emit = s.publish
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.publish(GameEvent{
		Kind:   EventGameStarted,
		Mode:   sess.Mode(),
		Region: sess.Region(),
		Rounds: RoundsPerGame,
		At:     time.Now().UTC(),
	})
	return sess, nil
}

// Get returns a session by ID if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Sweep drops sessions older than maxAge and returns how many were removed.
// Callers run it periodically; there is no background goroutine of its own.
func (s *Store) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) publish(ev GameEvent) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
