package model

// BookableEventRef identifies a catalog entry that participates in
// availability polling.  The list of refs is compiled into the binary
// together with the catalog; changing it requires a deploy.
//
// Fields:
//  EventID    – catalog identifier of the side event (e.g. "se-7").
//  BookingURL – external registration page whose markup is scraped.
type BookableEventRef struct {
    EventID    string `json:"eventId"`    // catalog event identifier
    BookingURL string `json:"bookingUrl"` // third-party booking page
}

// EventAvailability is the outcome of one fetch-and-classify attempt for a
// single bookable event.  SpotsAvailable distinguishes "unknown" (nil) from
// "confirmed none left" (0).  When Error is non-empty the attempt did not
// complete normally and SpotsAvailable/IsSoldOut carry their defaults
// (nil/false); consumers must not read that as a confirmed "has spots"
// signal.  LastChecked is set when the attempt finishes, success or failure.
//
// Invariant: IsSoldOut == true implies SpotsAvailable != nil && *SpotsAvailable == 0.
type EventAvailability struct {
    EventID        string `json:"eventId"`
    SpotsAvailable *int   `json:"spotsAvailable"` // nil = unknown
    IsSoldOut      bool   `json:"isSoldOut"`
    LastChecked    int64  `json:"lastChecked"` // unix milliseconds
    Error          string `json:"error,omitempty"`
}

// CheckSummary aggregates one batch run for the trigger endpoint response.
// It is derived by scanning the result list after the fan-out settles, not
// tracked incrementally during the run.
type CheckSummary struct {
    Total   int `json:"total"`
    Success int `json:"success"`
    Errors  int `json:"errors"`
    SoldOut int `json:"soldOut"`
}
