package repository

import (
    "context"
    "encoding/json"
    "sort"
    "strings"

    "github.com/redis/go-redis/v9"

    "github.com/pangia/schedule-api/internal/model"
)

// emergentEventsKey is the Redis list holding user-submitted community
// events, one JSON record per element.
const emergentEventsKey = "pangia:emergent_events"

// EmergentEventRepo stores community events in a Redis list.  The data set
// is tiny (a conference week of hand-submitted meetups), so list rewrites on
// delete are cheaper than maintaining a secondary index.
type EmergentEventRepo struct {
    rdb *redis.Client
}

// NewEmergentEventRepo returns a repo bound to the provided client.
func NewEmergentEventRepo(rdb *redis.Client) *EmergentEventRepo {
    return &EmergentEventRepo{rdb: rdb}
}

// List returns all community events sorted by date, then start time.
// Records that fail to decode are skipped.
func (r *EmergentEventRepo) List(ctx context.Context) ([]model.EmergentEvent, error) {
    if r.rdb == nil {
        return nil, ErrStoreUnavailable
    }
    raw, err := r.rdb.LRange(ctx, emergentEventsKey, 0, -1).Result()
    if err != nil {
        return nil, err
    }
    events := make([]model.EmergentEvent, 0, len(raw))
    for _, item := range raw {
        var ev model.EmergentEvent
        if err := json.Unmarshal([]byte(item), &ev); err != nil {
            continue
        }
        events = append(events, ev)
    }
    sort.Slice(events, func(i, j int) bool {
        if events[i].Date != events[j].Date {
            return events[i].Date < events[j].Date
        }
        return events[i].StartTime < events[j].StartTime
    })
    return events, nil
}

// Add prepends the event to the list.
func (r *EmergentEventRepo) Add(ctx context.Context, ev model.EmergentEvent) error {
    if r.rdb == nil {
        return ErrStoreUnavailable
    }
    raw, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    return r.rdb.LPush(ctx, emergentEventsKey, string(raw)).Err()
}

// Delete removes the event, but only for the device that created it.
// Returns false when the event does not exist or belongs to another device.
// Implemented as delete-and-rewrite of the whole list; a concurrent Add can
// race the rewrite and be lost, the same single-writer assumption the rest
// of the store makes.
func (r *EmergentEventRepo) Delete(ctx context.Context, eventID, deviceID string) (bool, error) {
    events, err := r.List(ctx)
    if err != nil {
        return false, err
    }

    var found bool
    remaining := make([]interface{}, 0, len(events))
    for _, ev := range events {
        if ev.ID == eventID {
            if ev.DeviceID != deviceID {
                return false, nil
            }
            found = true
            continue
        }
        raw, err := json.Marshal(ev)
        if err != nil {
            return false, err
        }
        remaining = append(remaining, string(raw))
    }
    if !found {
        return false, nil
    }

    if err := r.rdb.Del(ctx, emergentEventsKey).Err(); err != nil {
        return false, err
    }
    if len(remaining) > 0 {
        if err := r.rdb.RPush(ctx, emergentEventsKey, remaining...).Err(); err != nil {
            return false, err
        }
    }
    return true, nil
}

// CountInHourSlot returns how many community events already target the given
// date and hour.  Used to cap submissions per slot.
func (r *EmergentEventRepo) CountInHourSlot(ctx context.Context, date, startTime string) (int, error) {
    events, err := r.List(ctx)
    if err != nil {
        return 0, err
    }
    hour := hourOf(startTime)
    n := 0
    for _, ev := range events {
        if ev.Date == date && hourOf(ev.StartTime) == hour {
            n++
        }
    }
    return n, nil
}

func hourOf(t string) string {
    if i := strings.IndexByte(t, ':'); i >= 0 {
        return t[:i]
    }
    return t
}
