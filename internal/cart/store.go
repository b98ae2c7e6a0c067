package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps one cart per session. Each session owns its cart exclusively;
// the mutex only guards the session map and hands out carts one call at a
// time.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for the session, or nil when none exists.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID]
}

// GetOrCreate returns the session's cart, creating an empty one when the
// session has none yet.
func (s *Store) GetOrCreate(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := &Cart{ID: uuid.NewString(), UpdatedAt: time.Now()}
	s.carts[sessionID] = c
	return c
}

// Delete forgets the session's cart entirely.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
