package availability

import (
    "context"
    "sync"
    "time"

    "github.com/pangia/schedule-api/internal/model"
)

// Checker runs the fetch-and-classify pass over the bookable catalog.
//
// Concurrency model: fire all, wait for all.  Every ref gets its own
// goroutine and owns its own slot in the result slice, so no locking is
// needed inside a batch.  A ref's failure (timeout, transport fault, bad
// status) is recorded in that slot's Error field and never aborts or delays
// the other refs; a failed ref is simply retried on the next scheduled run.
//
// There is deliberately no lock around whole batches: two overlapping runs
// interleave their writes and the last one wins.  The upstream data changes
// on human timescales, so the scheduler's spacing makes overlap harmless in
// practice.
type Checker struct {
    fetcher *Fetcher
    refs    []model.BookableEventRef
    now     func() time.Time
}

// NewChecker builds a Checker over a fixed set of bookable refs.  The ref
// list is immutable for the process lifetime; catalog changes ship with a
// deploy.
func NewChecker(fetcher *Fetcher, refs []model.BookableEventRef) *Checker {
    return &Checker{fetcher: fetcher, refs: refs, now: time.Now}
}

// RunAll checks every ref concurrently and returns one result per ref, in
// ref order.  It never returns an error: per-ref failures live in the
// individual results.
func (c *Checker) RunAll(ctx context.Context) []model.EventAvailability {
    results := make([]model.EventAvailability, len(c.refs))

    var wg sync.WaitGroup
    for i, ref := range c.refs {
        wg.Add(1)
        go func(i int, ref model.BookableEventRef) {
            defer wg.Done()
            results[i] = c.checkOne(ctx, ref)
        }(i, ref)
    }
    wg.Wait()

    return results
}

// checkOne performs the single fetch-and-classify attempt for one ref.
// LastChecked is stamped when the attempt completes, success or failure.
func (c *Checker) checkOne(ctx context.Context, ref model.BookableEventRef) model.EventAvailability {
    result := model.EventAvailability{EventID: ref.EventID}

    html, err := c.fetcher.Fetch(ctx, ref.BookingURL)
    if err != nil {
        result.Error = err.Error()
        result.LastChecked = c.now().UnixMilli()
        return result
    }

    cls := Classify(html)
    result.SpotsAvailable = cls.Spots
    result.IsSoldOut = cls.SoldOut
    result.LastChecked = c.now().UnixMilli()
    return result
}

// Summarize derives the batch counters reported by the trigger endpoint.
// Computed by scanning the settled results, not tracked during the run.
func Summarize(results []model.EventAvailability) model.CheckSummary {
    s := model.CheckSummary{Total: len(results)}
    for _, r := range results {
        if r.Error != "" {
            s.Errors++
        } else {
            s.Success++
        }
        if r.IsSoldOut {
            s.SoldOut++
        }
    }
    return s
}
