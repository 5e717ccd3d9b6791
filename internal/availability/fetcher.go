// Package availability implements the booking-page polling subsystem: a
// bounded-timeout page fetcher, a heuristic HTML classifier, the concurrent
// fan-out that runs both across the bookable catalog, and the staleness
// computation used by the read path.
package availability

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"
)

// DefaultFetchTimeout bounds a single booking-page request.  Exceeding it
// cancels the in-flight request and is reported as ErrKindTimeout.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the poller to the booking site.  Scraping a page we
// also link users to; the bot announces itself rather than masquerading.
const userAgent = "Mozilla/5.0 (compatible; PangiaScheduleBot/1.0; +https://theschedule.vercel.app)"

// maxBodyBytes caps how much of a booking page is read.  The heuristics only
// need the rendered markup; 2 MiB is far above any real page in the catalog.
const maxBodyBytes = 2 << 20

// FetchErrorKind partitions fetch failures into the three classes the
// checker and its operators care about.
type FetchErrorKind string

const (
    ErrKindTimeout    FetchErrorKind = "timeout"     // deadline exceeded, request cancelled
    ErrKindHTTPStatus FetchErrorKind = "http_status" // server answered with non-2xx
    ErrKindTransport  FetchErrorKind = "transport"   // DNS, connect, reset, read failure
)

// FetchError describes why a booking page could not be retrieved.  Status is
// only meaningful for ErrKindHTTPStatus.
type FetchError struct {
    Kind    FetchErrorKind
    Status  int
    Message string
}

func (e *FetchError) Error() string {
    switch e.Kind {
    case ErrKindHTTPStatus:
        return fmt.Sprintf("HTTP %d", e.Status)
    case ErrKindTimeout:
        return "Timeout"
    default:
        return e.Message
    }
}

// Fetcher retrieves booking pages.  It is purely functional given a URL: one
// GET, no retries, no side effects beyond the network call.  Retry policy,
// if ever wanted, belongs to the scheduler, not here.
type Fetcher struct {
    client  *http.Client
    timeout time.Duration
}

// NewFetcher builds a Fetcher with the given per-request timeout.  A zero or
// negative timeout falls back to DefaultFetchTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
    if timeout <= 0 {
        timeout = DefaultFetchTimeout
    }
    return &Fetcher{
        // The http.Client timeout is left unset; the per-request context
        // carries the deadline so cancellation reaches the transport.
        client:  &http.Client{},
        timeout: timeout,
    }
}

// Fetch issues a single GET for url and returns the page body.  Failures are
// always a *FetchError so callers can distinguish timeouts, HTTP status
// rejections and transport faults.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
    ctx, cancel := context.WithTimeout(ctx, f.timeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil {
        return "", &FetchError{Kind: ErrKindTransport, Message: err.Error()}
    }
    req.Header.Set("User-Agent", userAgent)
    req.Header.Set("Accept", "text/html,application/xhtml+xml")

    resp, err := f.client.Do(req)
    if err != nil {
        if errors.Is(err, context.DeadlineExceeded) {
            return "", &FetchError{Kind: ErrKindTimeout, Message: "Timeout"}
        }
        return "", &FetchError{Kind: ErrKindTransport, Message: err.Error()}
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return "", &FetchError{Kind: ErrKindHTTPStatus, Status: resp.StatusCode}
    }

    body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
    if err != nil {
        if errors.Is(err, context.DeadlineExceeded) {
            return "", &FetchError{Kind: ErrKindTimeout, Message: "Timeout"}
        }
        return "", &FetchError{Kind: ErrKindTransport, Message: err.Error()}
    }
    return string(body), nil
}
