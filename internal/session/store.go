// Package session keeps the in-memory demo sessions the HTTP shell drives.
// Nothing here survives a restart; the simulation is a throwaway marketing
// demo and persistence is deliberately out of scope.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"quiverArcade/domain"
)

var ErrNotFound = errors.New("session not found")

// Session is one visitor's game: a seed, the evolving simulation state and
// bookkeeping for the idle sweeper.
type Session struct {
	ID         string           `json:"id"`
	Seed       uint32           `json:"seed"`
	State      domain.GameState `json:"state"`
	CreatedAt  time.Time        `json:"created_at"`
	LastActive time.Time        `json:"-"`
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session around an initial state.
func (s *Store) Create(state domain.GameState, seed uint32) Session {
	now := time.Now()
	session := &Session{
		ID:         uuid.NewString(),
		Seed:       seed,
		State:      state,
		CreatedAt:  now,
		LastActive: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return *session
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	session.LastActive = time.Now()
	return *session, nil
}

// Mutate applies fn to the session state under the store lock, so a tick and
// its policy pass are observed as one transition.
func (s *Store) Mutate(id string, fn func(domain.GameState) domain.GameState) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}

	session.State = fn(session.State)
	session.LastActive = time.Now()
	return *session, nil
}

// Delete discards a session. Deleting an in-progress run persists nothing.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were removed.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.LastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
