// Package handler exposes the HTTP surface of the schedule backend: the
// public read endpoints consumed by the timeline UI, the write endpoints
// for interests and community events, and the protected trigger that runs
// the availability batch.
package handler

import (
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/availability"
    "github.com/pangia/schedule-api/internal/model"
    "github.com/pangia/schedule-api/internal/repository"
)

// AvailabilityHandler serves the stored availability snapshot together with
// staleness metadata.
type AvailabilityHandler struct {
    Store repository.AvailabilityStore
    Now   func() time.Time // injectable clock for tests
}

// NewAvailabilityHandler returns a handler reading from the given store.
func NewAvailabilityHandler(store repository.AvailabilityStore) *AvailabilityHandler {
    return &AvailabilityHandler{Store: store, Now: time.Now}
}

// availabilityResponse is the read-endpoint body.  LastChecked is the
// last-run time in unix milliseconds and Staleness its age in whole
// minutes; both are null until the first batch completes.
type availabilityResponse struct {
    Availability map[string]model.EventAvailability `json:"availability"`
    LastChecked  *int64                             `json:"lastChecked"`
    Staleness    *int                               `json:"staleness"`
}

// Get handles GET /v1/availability.  The read path never surfaces an error
// to the UI: any store failure degrades to the same response shape with
// empty/null values and a 200 status, so clients render "unknown" instead
// of breaking.
func (h *AvailabilityHandler) Get(c echo.Context) error {
    ctx := c.Request().Context()
    resp := availabilityResponse{Availability: map[string]model.EventAvailability{}}

    snapshot, err := h.Store.ReadAll(ctx)
    if err != nil {
        log.Printf("[availability] snapshot read failed: %v", err)
        return c.JSON(http.StatusOK, resp)
    }
    lastRun, err := h.Store.ReadLastRun(ctx)
    if err != nil {
        log.Printf("[availability] last-run read failed: %v", err)
        return c.JSON(http.StatusOK, resp)
    }

    if snapshot != nil {
        resp.Availability = snapshot
    }
    if lastRun != nil {
        ms := lastRun.UnixMilli()
        resp.LastChecked = &ms
        resp.Staleness = availability.StalenessMinutes(h.Now(), lastRun)
    }
    return c.JSON(http.StatusOK, resp)
}
