package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 24 * time.Hour

// Store keeps live sessions keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewStore creates a store that expires sessions idle for longer than ttl.
// A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create starts a new session with a random ID.
func (st *Store) Create() *Session {
	sess := New(uuid.NewString())
	sess.touch(st.now())

	st.mu.Lock()
	st.sessions[sess.ID()] = sess
	st.mu.Unlock()

	st.logger.Debug("session created", slog.String("session_id", sess.ID()))
	return sess
}

// Get returns a live session and marks it active. Expired sessions are disposed
// and reported as missing.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := st.now()
	if now.Sub(sess.idleSince()) > st.ttl {
		st.Delete(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Delete disposes a session. Deleting an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	_, existed := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if existed {
		st.logger.Debug("session disposed", slog.String("session_id", id))
	}
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep disposes every session idle for longer than the TTL and returns how many went.
func (st *Store) Sweep() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				st.logger.Info("expired sessions removed", slog.Int("count", n))
			}
		case <-ctx.Done():
			return nil
		}
	}
}
