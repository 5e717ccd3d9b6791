package availability

import (
    "context"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"
)

func TestFetcherReturnsBody(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if ua := r.Header.Get("User-Agent"); ua != userAgent {
            t.Errorf("unexpected user agent %q", ua)
        }
        if accept := r.Header.Get("Accept"); accept != "text/html,application/xhtml+xml" {
            t.Errorf("unexpected accept header %q", accept)
        }
        w.Write([]byte("<html>ok</html>"))
    }))
    defer srv.Close()

    f := NewFetcher(time.Second)
    body, err := f.Fetch(context.Background(), srv.URL)
    if err != nil {
        t.Fatalf("Fetch: %v", err)
    }
    if body != "<html>ok</html>" {
        t.Fatalf("unexpected body %q", body)
    }
}

func TestFetcherHTTPStatusError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNotFound)
    }))
    defer srv.Close()

    f := NewFetcher(time.Second)
    _, err := f.Fetch(context.Background(), srv.URL)

    var fe *FetchError
    if !errors.As(err, &fe) {
        t.Fatalf("want *FetchError, got %T (%v)", err, err)
    }
    if fe.Kind != ErrKindHTTPStatus || fe.Status != 404 {
        t.Fatalf("want http_status/404, got %s/%d", fe.Kind, fe.Status)
    }
    if fe.Error() != "HTTP 404" {
        t.Fatalf("unexpected message %q", fe.Error())
    }
}

func TestFetcherTimeout(t *testing.T) {
    release := make(chan struct{})
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        <-release
    }))
    defer srv.Close()
    defer close(release)

    f := NewFetcher(50 * time.Millisecond)
    _, err := f.Fetch(context.Background(), srv.URL)

    var fe *FetchError
    if !errors.As(err, &fe) {
        t.Fatalf("want *FetchError, got %T (%v)", err, err)
    }
    if fe.Kind != ErrKindTimeout {
        t.Fatalf("want timeout, got %s (%v)", fe.Kind, err)
    }
}

func TestFetcherTransportError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
    url := srv.URL
    srv.Close() // nothing listening anymore

    f := NewFetcher(time.Second)
    _, err := f.Fetch(context.Background(), url)

    var fe *FetchError
    if !errors.As(err, &fe) {
        t.Fatalf("want *FetchError, got %T (%v)", err, err)
    }
    if fe.Kind != ErrKindTransport {
        t.Fatalf("want transport, got %s (%v)", fe.Kind, err)
    }
}
