// Package memory keeps staged tasks in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

type sessionCache = ttlcache.Cache[string, []model.AssignmentTask]

// StagingStore is a StagingRepository backed by a TTL cache keyed by session.
// Writes refresh a session's TTL; reads do not.
type StagingStore struct {
	// mu serializes read-modify-write of a session's list.
	mu    sync.Mutex
	cache *sessionCache

	runMu   sync.Mutex
	running bool
}

// NewStagingStore creates an empty store; a non-positive ttl disables expiry.
func NewStagingStore(ttl time.Duration) *StagingStore {
	opts := []ttlcache.Option[string, []model.AssignmentTask]{
		ttlcache.WithDisableTouchOnHit[string, []model.AssignmentTask](),
	}
	if ttl > 0 {
		opts = append(opts, ttlcache.WithTTL[string, []model.AssignmentTask](ttl))
	}
	return &StagingStore{cache: ttlcache.New(opts...)}
}

// Start launches automatic removal of expired sessions.
func (s *StagingStore) Start() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.cache.Start()
}

// Stop halts automatic removal; it is a no-op when Start was not called.
func (s *StagingStore) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.cache.Stop()
}

// Len reports the number of sessions held, including expired ones not yet removed.
func (s *StagingStore) Len() int {
	return s.cache.Len()
}

// List returns a copy of the staged tasks in insertion order.
func (s *StagingStore) List(_ context.Context, sessionID string) ([]model.AssignmentTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.lookup(sessionID)), nil
}

func (s *StagingStore) Add(_ context.Context, sessionID string, tasks ...model.AssignmentTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(clone(s.lookup(sessionID)), tasks...)
	s.cache.Set(sessionID, list, ttlcache.DefaultTTL)
	return nil
}

func (s *StagingStore) Remove(_ context.Context, sessionID string, taskID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lookup(sessionID)
	for i, t := range list {
		if t.ID == taskID {
			rest := make([]model.AssignmentTask, 0, len(list)-1)
			rest = append(rest, list[:i]...)
			rest = append(rest, list[i+1:]...)
			s.cache.Set(sessionID, rest, ttlcache.DefaultTTL)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *StagingStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(sessionID)
	return nil
}

// lookup returns the stored list or nil when the session is absent or expired. Callers hold mu.
func (s *StagingStore) lookup(sessionID string) []model.AssignmentTask {
	item := s.cache.Get(sessionID)
	if item == nil {
		return nil
	}
	return item.Value()
}

func clone(tasks []model.AssignmentTask) []model.AssignmentTask {
	out := make([]model.AssignmentTask, len(tasks))
	copy(out, tasks)
	return out
}
