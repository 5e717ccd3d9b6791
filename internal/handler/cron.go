package handler

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/availability"
    "github.com/pangia/schedule-api/internal/model"
    "github.com/pangia/schedule-api/internal/repository"
)

// CronHandler exposes the availability batch as an HTTP trigger for hosted
// cron services and manual runs.  The same RunBatch is invoked by the
// in-process scheduler.
type CronHandler struct {
    Checker *availability.Checker
    Store   repository.AvailabilityStore
}

// NewCronHandler wires the checker and store into a trigger handler.
func NewCronHandler(checker *availability.Checker, store repository.AvailabilityStore) *CronHandler {
    return &CronHandler{Checker: checker, Store: store}
}

// checkDetail is the per-event slice of the trigger response, trimmed for
// debugging rather than consumption (the UI reads the snapshot endpoint).
type checkDetail struct {
    EventID        string `json:"eventId"`
    IsSoldOut      bool   `json:"isSoldOut"`
    SpotsAvailable *int   `json:"spotsAvailable"`
    Error          string `json:"error,omitempty"`
}

// CheckAvailability handles the trigger endpoint.  Not idempotent in the
// strict sense (every call fetches and overwrites) but safe to repeat:
// effects converge to the latest observed state.
func (h *CronHandler) CheckAvailability(c echo.Context) error {
    log.Println("[cron] starting availability check")
    start := time.Now()

    results, summary := h.RunBatch(c.Request().Context())

    duration := time.Since(start)
    log.Printf("[cron] completed in %dms: %d success, %d errors, %d sold out",
        duration.Milliseconds(), summary.Success, summary.Errors, summary.SoldOut)

    details := make([]checkDetail, len(results))
    for i, r := range results {
        details[i] = checkDetail{
            EventID:        r.EventID,
            IsSoldOut:      r.IsSoldOut,
            SpotsAvailable: r.SpotsAvailable,
            Error:          r.Error,
        }
    }
    return c.JSON(http.StatusOK, map[string]any{
        "success":     true,
        "duration_ms": duration.Milliseconds(),
        "results":     summary,
        "details":     details,
    })
}

// RunBatch performs one full fetch-classify-persist pass and returns the
// settled results with their summary.
//
// Persistence failures are logged, never propagated: the batch reports the
// fetch/classify outcome and a store outage simply leaves the previous
// snapshot in place (readers see it age through the staleness field).  The
// last-run timestamp is only written after a successful WriteAll so a fresh
// timestamp never fronts stale per-event data.
func (h *CronHandler) RunBatch(ctx context.Context) ([]model.EventAvailability, model.CheckSummary) {
    results := h.Checker.RunAll(ctx)
    summary := availability.Summarize(results)

    if err := h.Store.WriteAll(ctx, results); err != nil {
        log.Printf("[cron] snapshot write failed: %v", err)
    } else if err := h.Store.WriteLastRun(ctx, time.Now()); err != nil {
        log.Printf("[cron] last-run write failed: %v", err)
    }
    return results, summary
}
