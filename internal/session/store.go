// Package session keeps each browser's pipeline view state in memory for the
// lifetime of its visit. Nothing is written to disk; an expired or unknown
// session starts again from the default view.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/guna-thota/portfolio/internal/pipeline"
)

type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewStore keeps idle sessions for ttl and purges expired ones every
// cleanup interval.
func NewStore(ttl, cleanup time.Duration) *Store {
	return &Store{cache: cache.New(ttl, cleanup)}
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// Load returns the view state for id, or the default state when the session
// is unknown. Reading refreshes the idle timer.
func (s *Store) Load(id string) pipeline.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id)
}

func (s *Store) load(id string) pipeline.ViewState {
	if id == "" {
		return pipeline.NewViewState()
	}
	if x, found := s.cache.Get(id); found {
		v := x.(pipeline.ViewState)
		s.cache.Set(id, v, cache.DefaultExpiration)
		return v
	}
	return pipeline.NewViewState()
}

func (s *Store) Save(id string, v pipeline.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(id, v, cache.DefaultExpiration)
}

// Update applies fn to the current state of id, stores and returns the result.
// Concurrent updates on one session are serialized, so none is lost.
func (s *Store) Update(id string, fn func(pipeline.ViewState) pipeline.ViewState) pipeline.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.load(id))
	s.cache.Set(id, next, cache.DefaultExpiration)
	return next
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
