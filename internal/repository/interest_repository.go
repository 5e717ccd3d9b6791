package repository

import (
    "context"
    "encoding/json"
    "strconv"

    "github.com/redis/go-redis/v9"
)

// Redis keys for the interest feature.  interestsKey maps eventId → count
// and is what clients poll; interestDevicesKey maps eventId → JSON array of
// device IDs and is the source of truth the count is recomputed from, so a
// device toggling twice never double-counts.
const (
    interestsKey       = "pangia:interests"
    interestDevicesKey = "pangia:interest_devices"
)

// InterestRepo stores per-event "star" counts keyed by anonymous device IDs.
type InterestRepo struct {
    rdb *redis.Client
}

// NewInterestRepo returns a repo bound to the provided client.
func NewInterestRepo(rdb *redis.Client) *InterestRepo {
    return &InterestRepo{rdb: rdb}
}

// Counts returns the interest tally per event ID.
func (r *InterestRepo) Counts(ctx context.Context) (map[string]int, error) {
    if r.rdb == nil {
        return nil, ErrStoreUnavailable
    }
    fields, err := r.rdb.HGetAll(ctx, interestsKey).Result()
    if err != nil {
        return nil, err
    }
    out := make(map[string]int, len(fields))
    for id, raw := range fields {
        n, err := strconv.Atoi(raw)
        if err != nil {
            n = 0
        }
        out[id] = n
    }
    return out, nil
}

// Toggle adds or removes the device from the event's interest set and
// rewrites both hashes.  Returns the new count and whether the device is in
// the set afterwards.  The read-modify-write is not transactional; two
// devices toggling the same event at once can lose one update, which is
// acceptable for a vanity counter.
func (r *InterestRepo) Toggle(ctx context.Context, eventID, deviceID, action string) (count int, hasInterest bool, err error) {
    if r.rdb == nil {
        return 0, false, ErrStoreUnavailable
    }
    raw, err := r.rdb.HGet(ctx, interestDevicesKey, eventID).Result()
    if err != nil && err != redis.Nil {
        return 0, false, err
    }

    devices := map[string]bool{}
    if raw != "" {
        var list []string
        if jsonErr := json.Unmarshal([]byte(raw), &list); jsonErr == nil {
            for _, d := range list {
                devices[d] = true
            }
        }
    }

    if action == "add" {
        devices[deviceID] = true
    } else {
        delete(devices, deviceID)
    }

    list := make([]string, 0, len(devices))
    for d := range devices {
        list = append(list, d)
    }
    encoded, err := json.Marshal(list)
    if err != nil {
        return 0, false, err
    }

    if err := r.rdb.HSet(ctx, interestDevicesKey, eventID, string(encoded)).Err(); err != nil {
        return 0, false, err
    }
    if err := r.rdb.HSet(ctx, interestsKey, eventID, len(devices)).Err(); err != nil {
        return 0, false, err
    }
    return len(devices), devices[deviceID], nil
}
