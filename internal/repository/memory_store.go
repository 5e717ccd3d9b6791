package repository

import (
    "context"
    "sync"
    "time"

    "github.com/pangia/schedule-api/internal/model"
)

// MemoryAvailabilityStore is an in-process AvailabilityStore.  It backs two
// situations: tests that need a store without a Redis server, and the
// degraded startup path where Redis is unreachable.  In that mode the
// service still answers; it just forgets the snapshot on restart.
type MemoryAvailabilityStore struct {
    mu      sync.RWMutex
    entries map[string]model.EventAvailability
    lastRun *time.Time
}

// NewMemoryAvailabilityStore returns an empty in-memory store.
func NewMemoryAvailabilityStore() *MemoryAvailabilityStore {
    return &MemoryAvailabilityStore{entries: make(map[string]model.EventAvailability)}
}

// ReadAll returns a copy of the stored snapshot.
func (s *MemoryAvailabilityStore) ReadAll(ctx context.Context) (map[string]model.EventAvailability, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]model.EventAvailability, len(s.entries))
    for id, ea := range s.entries {
        out[id] = ea
    }
    return out, nil
}

// WriteAll overwrites the entries present in results, leaving others intact.
func (s *MemoryAvailabilityStore) WriteAll(ctx context.Context, results []model.EventAvailability) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, r := range results {
        s.entries[r.EventID] = r
    }
    return nil
}

// ReadLastRun returns the recorded batch completion time, nil if none.
func (s *MemoryAvailabilityStore) ReadLastRun(ctx context.Context) (*time.Time, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.lastRun == nil {
        return nil, nil
    }
    t := *s.lastRun
    return &t, nil
}

// WriteLastRun records the batch completion time.
func (s *MemoryAvailabilityStore) WriteLastRun(ctx context.Context, t time.Time) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.lastRun = &t
    return nil
}
