package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/pangia/schedule-api/internal/repository"
)

// newEmergentContext builds an echo context with a JSON body.  The handler
// under test runs against a repo with no Redis client, which fails every
// store call with ErrStoreUnavailable, so validation must reject bad input
// before the store is ever consulted.
func newEmergentContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
    e := echo.New()
    req := httptest.NewRequest(method, "/v1/emergent-events", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

func TestEmergentCreateRejectsMissingFields(t *testing.T) {
    h := NewEmergentEventHandler(repository.NewEmergentEventRepo(nil))

    c, rec := newEmergentContext(http.MethodPost, `{"title":"Rooftop drinks","deviceId":"d1"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("want 400 for missing fields, got %d", rec.Code)
    }
}

func TestEmergentCreateRejectsOutOfWindowDate(t *testing.T) {
    h := NewEmergentEventHandler(repository.NewEmergentEventRepo(nil))

    body := `{"title":"Rooftop drinks","date":"2026-02-01","startTime":"19:00","venueName":"Somewhere","hostName":"Sam","deviceId":"d1"}`
    c, rec := newEmergentContext(http.MethodPost, body)
    if err := h.Create(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("want 400 for out-of-window date, got %d", rec.Code)
    }
    var resp map[string]string
    _ = json.Unmarshal(rec.Body.Bytes(), &resp)
    if !strings.Contains(resp["error"], "conference week") {
        t.Errorf("unexpected error message %q", resp["error"])
    }
}

func TestEmergentListDegradesWithoutStore(t *testing.T) {
    h := NewEmergentEventHandler(repository.NewEmergentEventRepo(nil))

    c, rec := newEmergentContext(http.MethodGet, "")
    if err := h.List(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("list must degrade to 200, got %d", rec.Code)
    }
    var resp map[string]json.RawMessage
    if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
        t.Fatalf("invalid JSON: %v", err)
    }
    if string(resp["events"]) != "[]" {
        t.Errorf("want empty events array, got %s", resp["events"])
    }
}

func TestInterestCountsDegradeWithoutStore(t *testing.T) {
    h := NewInterestHandler(repository.NewInterestRepo(nil))

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/interests", nil)
    rec := httptest.NewRecorder()
    if err := h.GetCounts(e.NewContext(req, rec)); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("counts must degrade to 200, got %d", rec.Code)
    }
    var resp map[string]map[string]int
    if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
        t.Fatalf("invalid JSON: %v", err)
    }
    if len(resp["counts"]) != 0 {
        t.Errorf("want empty counts, got %v", resp["counts"])
    }
}

func TestInterestToggleRejectsMissingFields(t *testing.T) {
    h := NewInterestHandler(repository.NewInterestRepo(nil))

    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/v1/interests", strings.NewReader(`{"eventId":"se-1"}`))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    if err := h.Toggle(e.NewContext(req, rec)); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("want 400 for missing fields, got %d", rec.Code)
    }
}
