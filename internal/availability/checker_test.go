package availability

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/pangia/schedule-api/internal/model"
)

func pageServer(t *testing.T, body string) *httptest.Server {
    t.Helper()
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(body))
    }))
    t.Cleanup(srv.Close)
    return srv
}

// Three refs: a sold-out page, a page with a remaining count, and a fetch
// that times out.  The batch settles all three, isolates the failure, and
// the summary counts match.
func TestCheckerRunAll(t *testing.T) {
    soldOut := pageServer(t, `<div>Sold Out</div>`)
    spots := pageServer(t, `<p>12 spots remaining</p><button>Book Now</button>`)

    release := make(chan struct{})
    slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        <-release
    }))
    t.Cleanup(func() { close(release); slow.Close() })

    refs := []model.BookableEventRef{
        {EventID: "se-1", BookingURL: soldOut.URL},
        {EventID: "se-2", BookingURL: spots.URL},
        {EventID: "se-3", BookingURL: slow.URL},
    }
    checker := NewChecker(NewFetcher(100*time.Millisecond), refs)

    results := checker.RunAll(context.Background())
    if len(results) != 3 {
        t.Fatalf("want 3 results, got %d", len(results))
    }

    a, b, c := results[0], results[1], results[2]

    if a.EventID != "se-1" || !a.IsSoldOut || a.SpotsAvailable == nil || *a.SpotsAvailable != 0 {
        t.Errorf("ref A: want sold out with 0 spots, got %+v", a)
    }
    if b.EventID != "se-2" || b.IsSoldOut || b.SpotsAvailable == nil || *b.SpotsAvailable != 12 {
        t.Errorf("ref B: want 12 spots, got %+v", b)
    }
    if c.EventID != "se-3" || c.Error == "" {
        t.Errorf("ref C: want an error, got %+v", c)
    }
    if c.SpotsAvailable != nil || c.IsSoldOut {
        t.Errorf("ref C: a failed attempt must default to unknown/not-sold-out, got %+v", c)
    }

    for _, r := range results {
        if r.LastChecked == 0 {
            t.Errorf("%s: LastChecked must be stamped on success and failure", r.EventID)
        }
    }

    summary := Summarize(results)
    want := model.CheckSummary{Total: 3, Success: 2, Errors: 1, SoldOut: 1}
    if summary != want {
        t.Fatalf("summary: want %+v, got %+v", want, summary)
    }
}

// One ref pointing at nothing must not disturb the others.
func TestCheckerFaultIsolation(t *testing.T) {
    good := pageServer(t, `<p>3 tickets available</p><button>Book Now</button>`)

    refs := []model.BookableEventRef{
        {EventID: "ok-1", BookingURL: good.URL},
        {EventID: "bad", BookingURL: "http://127.0.0.1:1/nope"},
        {EventID: "ok-2", BookingURL: good.URL},
    }
    checker := NewChecker(NewFetcher(time.Second), refs)

    results := checker.RunAll(context.Background())
    if len(results) != 3 {
        t.Fatalf("want 3 results, got %d", len(results))
    }

    errored := 0
    for _, r := range results {
        if r.Error != "" {
            errored++
            if r.EventID != "bad" {
                t.Errorf("unexpected error on %s: %s", r.EventID, r.Error)
            }
        } else if r.SpotsAvailable == nil || *r.SpotsAvailable != 3 {
            t.Errorf("%s: want 3 spots, got %+v", r.EventID, r)
        }
    }
    if errored != 1 {
        t.Fatalf("want exactly one errored ref, got %d", errored)
    }
}

func TestCheckerEmptyCatalog(t *testing.T) {
    checker := NewChecker(NewFetcher(time.Second), nil)
    results := checker.RunAll(context.Background())
    if len(results) != 0 {
        t.Fatalf("want no results, got %d", len(results))
    }
    if s := Summarize(results); s.Total != 0 {
        t.Fatalf("want empty summary, got %+v", s)
    }
}
