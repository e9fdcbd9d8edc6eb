package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherwidget.app/internal/adapters/view"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WidgetSession is one visitor's widget: its pipeline and the view it renders into
type WidgetSession struct {
	ID       string
	Pipeline *weather.Pipeline
	View     *view.State

	lastSeen time.Time
}

// SessionFactory builds the pipeline and view for a new session id
type SessionFactory func(id string) (*WidgetSession, error)

// SessionStore keeps widget sessions in memory and evicts idle ones
type SessionStore struct {
	factory SessionFactory
	ttl     time.Duration
	logger  ports.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*WidgetSession
}

// SessionStoreParams holds parameters for creating a session store
type SessionStoreParams struct {
	Factory SessionFactory
	TTL     time.Duration
	Logger  ports.Logger
	Clock   func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore(params SessionStoreParams) (*SessionStore, error) {
	if params.Factory == nil {
		return nil, errors.NewValidationError("session factory is required")
	}
	if params.TTL <= 0 {
		return nil, errors.NewValidationError("session TTL must be positive")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	return &SessionStore{
		factory:  params.Factory,
		ttl:      params.TTL,
		logger:   params.Logger,
		now:      now,
		sessions: make(map[string]*WidgetSession),
	}, nil
}

// Get returns a live session and marks it as used
func (s *SessionStore) Get(id string) (*WidgetSession, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(session.lastSeen) > s.ttl {
		s.removeLocked(id, session)
		return nil, false
	}
	session.lastSeen = s.now()
	return session, true
}

// Create starts a new session under a random id
func (s *SessionStore) Create() (*WidgetSession, error) {
	id := uuid.NewString()

	session, err := s.factory(id)
	if err != nil {
		return nil, err
	}
	session.ID = id

	s.mu.Lock()
	session.lastSeen = s.now()
	s.sessions[id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("Widget session created",
		ports.F("session_id", id),
		ports.F("active_sessions", count))
	return session, nil
}

// Count returns the number of stored sessions
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictExpired removes sessions idle for longer than the TTL and reports how many were removed
func (s *SessionStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, session := range s.sessions {
		if now.Sub(session.lastSeen) > s.ttl {
			s.removeLocked(id, session)
			evicted++
		}
	}
	return evicted
}

// Run evicts expired sessions on every tick until ctx is done
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 {
				s.logger.Info("Evicted idle widget sessions",
					ports.F("evicted", n),
					ports.F("active_sessions", s.Count()))
			}
		}
	}
}

// Close cancels every in-flight query and drops all sessions
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		s.removeLocked(id, session)
	}
}

func (s *SessionStore) removeLocked(id string, session *WidgetSession) {
	if session.Pipeline != nil {
		session.Pipeline.Close()
	}
	delete(s.sessions, id)
}
