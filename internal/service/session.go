package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/intellihealth/api/internal/domain"
)

// Session is the per-login assessment session: the latest score per metric
// and the write-once history flag. It is created at login, destroyed at
// logout, and never shared across users.
//
// All state is guarded by its own mutex so overlapping requests carrying the
// same token cannot race.
type Session struct {
	ID       uuid.UUID
	Username string

	mu           sync.Mutex
	results      map[domain.Metric]float64
	historySaved bool
}

// SetResult caches the latest score for a metric, overwriting any earlier
// score for that metric in this session.
func (s *Session) SetResult(m domain.Metric, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[m] = score
}

// Result returns the cached score for a metric. The boolean is false when
// no prediction has run for that metric in this session; consumers must
// treat that as "analysis not yet run", never as zero.
func (s *Session) Result(m domain.Metric) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.results[m]
	return v, ok
}

// Results returns a snapshot of all three cached scores. ok is false unless
// every metric has a score.
func (s *Session) Results() (r ResultSet, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultsLocked()
}

func (s *Session) resultsLocked() (ResultSet, bool) {
	var r ResultSet
	var ok bool
	if r.Stress, ok = s.results[domain.MetricStress]; !ok {
		return ResultSet{}, false
	}
	if r.Sleep, ok = s.results[domain.MetricSleep]; !ok {
		return ResultSet{}, false
	}
	if r.Calories, ok = s.results[domain.MetricCalorie]; !ok {
		return ResultSet{}, false
	}
	return r, true
}

// ResultSet is a complete set of session scores, one per metric.
type ResultSet struct {
	Stress   float64
	Sleep    float64
	Calories float64
}

// SessionRegistry holds the live assessment sessions, keyed by the session
// ID carried in the auth token.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[uuid.UUID]*Session)}
}

// Create starts a fresh session for a user: empty result cache, history not
// yet saved.
func (r *SessionRegistry) Create(username string) *Session {
	sess := &Session{
		ID:       uuid.New(),
		Username: username,
		results:  make(map[domain.Metric]float64, len(domain.Metrics)),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID, or ErrSessionNotFound.
func (r *SessionRegistry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete destroys a session, discarding its cached results. Deleting an
// unknown ID is a no-op.
func (r *SessionRegistry) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
