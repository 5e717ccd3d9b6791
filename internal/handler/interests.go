package handler

import (
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/repository"
)

// InterestHandler serves the per-event "I'm interested" counters.  Devices
// are anonymous browser-generated IDs; there are no accounts.
type InterestHandler struct {
    Repo *repository.InterestRepo
}

// NewInterestHandler returns a handler over the given repo.
func NewInterestHandler(repo *repository.InterestRepo) *InterestHandler {
    return &InterestHandler{Repo: repo}
}

// GetCounts handles GET /v1/interests.  Store failures degrade to an empty
// counts map with a 200 so the UI falls back to its local cache.
func (h *InterestHandler) GetCounts(c echo.Context) error {
    counts, err := h.Repo.Counts(c.Request().Context())
    if err != nil {
        log.Printf("[interests] read failed: %v", err)
        counts = map[string]int{}
    }
    return c.JSON(http.StatusOK, map[string]any{"counts": counts})
}

// toggleRequest is the POST body for flipping a device's interest flag.
type toggleRequest struct {
    EventID  string `json:"eventId"`
    DeviceID string `json:"deviceId"`
    Action   string `json:"action"` // "add" or "remove"
}

// Toggle handles POST /v1/interests.
func (h *InterestHandler) Toggle(c echo.Context) error {
    var req toggleRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid body"})
    }
    if req.EventID == "" || req.DeviceID == "" || req.Action == "" {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
    }

    count, hasInterest, err := h.Repo.Toggle(c.Request().Context(), req.EventID, req.DeviceID, req.Action)
    if err != nil {
        log.Printf("[interests] toggle failed: %v", err)
        return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Failed to update"})
    }
    return c.JSON(http.StatusOK, map[string]any{
        "eventId":     req.EventID,
        "count":       count,
        "hasInterest": hasInterest,
    })
}
