// Package session maps opaque session ids to per-session application state
// and evicts sessions that have been idle longer than the TTL.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/app"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultTTL is how long an idle session survives
	DefaultTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = time.Minute
)

var ErrSessionNotFound = errors.New("session not found")

// Factory builds the state a fresh session starts with.
type Factory func() *app.State

type entry struct {
	state      *app.State
	lastAccess time.Time
}

// Registry implements an in-memory session table
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	factory  Factory
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	stopCleanup chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

type Option func(*Registry)

func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithCleanupInterval(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates a registry and starts its cleanup goroutine. A nil
// factory falls back to app.New with default options.
func NewRegistry(factory Factory, opts ...Option) *Registry {
	if factory == nil {
		factory = func() *app.State { return app.New() }
	}
	r := &Registry{
		sessions:    make(map[string]*entry),
		factory:     factory,
		ttl:         DefaultTTL,
		interval:    CleanupInterval,
		now:         time.Now,
		logger:      zap.NewNop(),
		stopCleanup: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.wg.Add(1)
	go r.cleanupLoop()

	return r
}

// cleanupLoop periodically evicts idle sessions
func (r *Registry) cleanupLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.expire()
		case <-r.stopCleanup:
			return
		}
	}
}

// expire removes every session whose last access is older than the TTL
func (r *Registry) expire() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, e := range r.sessions {
		if e.lastAccess.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.logger.Debug("expired idle sessions",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(r.sessions)))
	}
	return evicted
}

// Create starts a new session and returns its id
func (r *Registry) Create() (string, *app.State) {
	id := uuid.New().String()
	state := r.factory()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{state: state, lastAccess: r.now()}
	return id, state
}

// Get returns the state of a live session and refreshes its last access
func (r *Registry) Get(id string) (*app.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	e.lastAccess = r.now()
	return e.state, nil
}

// GetOrCreate resolves id, starting a new session when it is unknown or
// expired. The returned id is the one the caller should hand back to the client.
func (r *Registry) GetOrCreate(id string) (string, *app.State) {
	if id != "" {
		if state, err := r.Get(id); err == nil {
			return id, state
		}
	}
	return r.Create()
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close stops the background cleanup and waits for it to finish
func (r *Registry) Close() error {
	r.closeOnce.Do(func() {
		close(r.stopCleanup)
	})
	r.wg.Wait()
	return nil
}
