package handler

import (
    "fmt"
    "log"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/catalog"
    "github.com/pangia/schedule-api/internal/model"
    "github.com/pangia/schedule-api/internal/repository"
)

// maxEventsPerHour caps community submissions per date+hour slot so one
// evening doesn't drown the timeline.
const maxEventsPerHour = 3

// Field length caps applied to community submissions.
const (
    maxTitleLen       = 100
    maxDescriptionLen = 500
    maxVenueLen       = 100
    maxAreaLen        = 50
    maxMapsURLLen     = 500
    maxHostLen        = 50
)

// EmergentEventHandler serves user-submitted community events.
type EmergentEventHandler struct {
    Repo *repository.EmergentEventRepo
}

// NewEmergentEventHandler returns a handler over the given repo.
func NewEmergentEventHandler(repo *repository.EmergentEventRepo) *EmergentEventHandler {
    return &EmergentEventHandler{Repo: repo}
}

// List handles GET /v1/emergent-events.  Store failures degrade to an empty
// list with a 200.
func (h *EmergentEventHandler) List(c echo.Context) error {
    events, err := h.Repo.List(c.Request().Context())
    if err != nil {
        log.Printf("[emergent] read failed: %v", err)
        events = []model.EmergentEvent{}
    }
    if events == nil {
        events = []model.EmergentEvent{}
    }
    return c.JSON(http.StatusOK, map[string]any{"events": events})
}

// createRequest is the POST body for a community event submission.
type createRequest struct {
    Title         string `json:"title"`
    Description   string `json:"description"`
    Date          string `json:"date"`
    StartTime     string `json:"startTime"`
    EndTime       string `json:"endTime"`
    VenueName     string `json:"venueName"`
    VenueArea     string `json:"venueArea"`
    GoogleMapsURL string `json:"googleMapsUrl"`
    HostName      string `json:"hostName"`
    DeviceID      string `json:"deviceId"`
}

// Create handles POST /v1/emergent-events.  Validation: required fields,
// conference-window date, per-hour slot cap, field length limits.
func (h *EmergentEventHandler) Create(c echo.Context) error {
    var req createRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid body"})
    }
    if req.Title == "" || req.Date == "" || req.StartTime == "" || req.VenueName == "" || req.HostName == "" || req.DeviceID == "" {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
    }
    if !catalog.ValidDate(req.Date) {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "Date must be during the conference week"})
    }

    ctx := c.Request().Context()
    inSlot, err := h.Repo.CountInHourSlot(ctx, req.Date, req.StartTime)
    if err != nil {
        log.Printf("[emergent] slot count failed: %v", err)
        return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Failed to add event"})
    }
    if inSlot >= maxEventsPerHour {
        return c.JSON(http.StatusBadRequest, map[string]any{
            "error": fmt.Sprintf("Maximum %d community events per hour slot. Try a different time.", maxEventsPerHour),
        })
    }

    endTime := req.EndTime
    if endTime == "" {
        endTime = req.StartTime
    }
    event := model.EmergentEvent{
        ID:            "emergent-" + uuid.NewString(),
        Title:         truncate(req.Title, maxTitleLen),
        Description:   truncate(req.Description, maxDescriptionLen),
        Date:          req.Date,
        StartTime:     req.StartTime,
        EndTime:       endTime,
        VenueName:     truncate(req.VenueName, maxVenueLen),
        VenueArea:     truncate(req.VenueArea, maxAreaLen),
        GoogleMapsURL: truncate(req.GoogleMapsURL, maxMapsURLLen),
        HostName:      truncate(req.HostName, maxHostLen),
        CreatedAt:     time.Now().UnixMilli(),
        DeviceID:      req.DeviceID,
    }

    if err := h.Repo.Add(ctx, event); err != nil {
        log.Printf("[emergent] add failed: %v", err)
        return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Failed to add event"})
    }
    return c.JSON(http.StatusOK, map[string]any{"event": event, "success": true})
}

// deleteRequest is the DELETE body; only the submitting device may delete.
type deleteRequest struct {
    EventID  string `json:"eventId"`
    DeviceID string `json:"deviceId"`
}

// Delete handles DELETE /v1/emergent-events.
func (h *EmergentEventHandler) Delete(c echo.Context) error {
    var req deleteRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid body"})
    }

    ok, err := h.Repo.Delete(c.Request().Context(), req.EventID, req.DeviceID)
    if err != nil {
        log.Printf("[emergent] delete failed: %v", err)
        return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Failed to delete"})
    }
    if !ok {
        return c.JSON(http.StatusNotFound, map[string]any{"error": "Event not found or not authorized"})
    }
    return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func truncate(s string, n int) string {
    if len(s) <= n {
        return s
    }
    return s[:n]
}
