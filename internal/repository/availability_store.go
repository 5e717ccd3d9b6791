// Package repository provides data access over the hosted Redis-compatible
// key-value store.  Every repository degrades gracefully: the store is an
// external capability that may be unreachable, and this service prefers
// serving stale or empty data over failing a request.
package repository

import (
    "context"
    "encoding/json"
    "log"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/pangia/schedule-api/internal/model"
)

// Redis keys used by the availability snapshot.  The hash holds one JSON
// entry per event; the last-run key is a single unix-milliseconds scalar.
const (
    availabilityKey        = "pangia:availability"
    availabilityLastRunKey = "pangia:availability_last_run"
)

// AvailabilityStore is the persistence capability for the availability
// snapshot.  It is an interface so the Redis backend is swappable and tests
// can substitute the in-memory implementation.
//
// WriteAll overwrites only the entries present in the given batch; event IDs
// absent from the batch keep their previous value, so a growing catalog
// never loses history.  WriteLastRun must be called after WriteAll for the
// same batch: a reader should never observe a fresh last-run timestamp
// paired with an older snapshot.  Store calls inherit the caller's context
// and carry no deadline of their own; the backend is assumed fast.
type AvailabilityStore interface {
    ReadAll(ctx context.Context) (map[string]model.EventAvailability, error)
    WriteAll(ctx context.Context, results []model.EventAvailability) error
    ReadLastRun(ctx context.Context) (*time.Time, error)
    WriteLastRun(ctx context.Context, t time.Time) error
}

// RedisAvailabilityStore persists the snapshot in a Redis hash plus a scalar
// key.  Each field write is an independent atomic operation; no multi-key
// transaction spans a batch.
type RedisAvailabilityStore struct {
    rdb *redis.Client
}

// NewRedisAvailabilityStore returns a store bound to the provided client.
func NewRedisAvailabilityStore(rdb *redis.Client) *RedisAvailabilityStore {
    return &RedisAvailabilityStore{rdb: rdb}
}

// ReadAll returns the full stored snapshot.  An empty hash yields an empty
// map, not an error; "never run" and "nothing stored" look the same to
// readers.
func (s *RedisAvailabilityStore) ReadAll(ctx context.Context) (map[string]model.EventAvailability, error) {
    fields, err := s.rdb.HGetAll(ctx, availabilityKey).Result()
    if err != nil {
        return nil, err
    }
    out := make(map[string]model.EventAvailability, len(fields))
    for id, raw := range fields {
        var ea model.EventAvailability
        if err := json.Unmarshal([]byte(raw), &ea); err != nil {
            // A corrupt entry is dropped rather than poisoning the whole
            // read; the next batch run rewrites it anyway.
            log.Printf("[store] skipping corrupt availability entry for %s: %v", id, err)
            continue
        }
        out[id] = ea
    }
    return out, nil
}

// WriteAll stores one hash field per result.  Fields for events not present
// in results are left untouched.
func (s *RedisAvailabilityStore) WriteAll(ctx context.Context, results []model.EventAvailability) error {
    if len(results) == 0 {
        return nil
    }
    fields := make(map[string]interface{}, len(results))
    for _, r := range results {
        raw, err := json.Marshal(r)
        if err != nil {
            return err
        }
        fields[r.EventID] = string(raw)
    }
    return s.rdb.HSet(ctx, availabilityKey, fields).Err()
}

// ReadLastRun returns the completion time of the most recent batch, or nil
// if no batch has ever completed.
func (s *RedisAvailabilityStore) ReadLastRun(ctx context.Context) (*time.Time, error) {
    raw, err := s.rdb.Get(ctx, availabilityLastRunKey).Result()
    if err == redis.Nil {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    ms, err := strconv.ParseInt(raw, 10, 64)
    if err != nil {
        return nil, err
    }
    t := time.UnixMilli(ms)
    return &t, nil
}

// WriteLastRun records the batch completion time.
func (s *RedisAvailabilityStore) WriteLastRun(ctx context.Context, t time.Time) error {
    return s.rdb.Set(ctx, availabilityLastRunKey, strconv.FormatInt(t.UnixMilli(), 10), 0).Err()
}
