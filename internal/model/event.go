package model

// Event is one entry of the static conference catalog.  The catalog mixes
// main-conference sessions with community "side events"; side events with an
// external registration page additionally appear in the bookable-ref list
// used by the availability checker.
//
// Date and times are kept as strings ("2006-01-02", "15:04") in the
// conference's local timezone; the catalog is display data, not something
// the server does arithmetic on.
type Event struct {
    ID          string `json:"id"`
    Title       string `json:"title"`
    Description string `json:"description,omitempty"`
    Date        string `json:"date"`      // YYYY-MM-DD, conference-local
    StartTime   string `json:"startTime"` // HH:MM, 24h
    EndTime     string `json:"endTime,omitempty"`
    VenueName   string `json:"venueName,omitempty"`
    VenueArea   string `json:"venueArea,omitempty"`
    Type        string `json:"type"` // "main" or "side"
    BookingURL  string `json:"bookingUrl,omitempty"`
    Bookable    bool   `json:"bookable"`
}

// EmergentEvent is a user-submitted community event.  Records live in a
// Redis list as JSON; DeviceID identifies the submitting browser and is the
// only credential for deleting the record later.
type EmergentEvent struct {
    ID            string `json:"id"`
    Title         string `json:"title"`
    Description   string `json:"description"`
    Date          string `json:"date"`      // YYYY-MM-DD
    StartTime     string `json:"startTime"` // HH:MM
    EndTime       string `json:"endTime"`
    VenueName     string `json:"venueName"`
    VenueArea     string `json:"venueArea,omitempty"`
    GoogleMapsURL string `json:"googleMapsUrl,omitempty"`
    HostName      string `json:"hostName"`
    CreatedAt     int64  `json:"createdAt"` // unix milliseconds
    DeviceID      string `json:"deviceId"`
}
