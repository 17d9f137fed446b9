package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one in-flight checkout. Its wizard must only be touched from
// inside SessionStore.With.
type Session struct {
	ID        string
	Wizard    *wizard.Wizard
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen atomic.Int64
	gone     atomic.Bool
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(t time.Time) {
	s.lastSeen.Store(t.UnixNano())
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Create(w *wizard.Wizard) *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Wizard:    w,
		CreatedAt: now,
	}
	sess.touch(now)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// With runs fn while holding the session's lock, so concurrent requests for
// the same session are applied one at a time.
func (s *SessionStore) With(id string, fn func(*Session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// deleted while we were waiting for the lock
	if sess.gone.Load() {
		return ErrSessionNotFound
	}
	sess.touch(s.now())
	return fn(sess)
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.gone.Store(true)
		delete(s.sessions, id)
	}
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than ttl and reports how many went.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			sess.gone.Store(true)
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is cancelled.
func (s *SessionStore) RunSweeper(ctx context.Context, ttl, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(ttl); n > 0 {
				log.Debug().Int("expired", n).Int("active", s.Len()).Msg("swept checkout sessions")
			}
		}
	}
}
