package http

import (
	"context"
	"sync"
	"time"

	"storefront/internal/storefront"

	"golang.org/x/time/rate"
)

type session struct {
	view     *storefront.CatalogView
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Sessions keeps one live-search CatalogView and one rate limiter per
// browser session. Idle sessions are dropped by Sweep.
type Sessions struct {
	mu      sync.Mutex
	items   map[string]*session
	newView func() *storefront.CatalogView
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func NewSessions(newView func() *storefront.CatalogView, limit rate.Limit, burst int, ttl time.Duration) *Sessions {
	return &Sessions{
		items:   make(map[string]*session),
		newView: newView,
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the session's view and limiter, creating them on first use.
func (s *Sessions) Get(id string) (*storefront.CatalogView, *rate.Limiter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		sess = &session{
			view:    s.newView(),
			limiter: rate.NewLimiter(s.limit, s.burst),
		}
		s.items[id] = sess
	}
	sess.lastSeen = s.now()
	return sess.view, sess.limiter
}

// Sweep removes sessions idle for longer than the TTL and reports how many
// were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for id, sess := range s.items {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
