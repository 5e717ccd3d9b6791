// Package catalog holds the static conference schedule.  The data is
// hand-authored and compiled into the binary: the catalog only changes at
// deploy time, which keeps the availability checker's view of "which events
// are bookable" fixed for the process lifetime.
package catalog

import "github.com/pangia/schedule-api/internal/model"

// bookingBase is the third-party ticketing site that hosts the side-event
// registration pages scraped by the availability checker.
const bookingBase = "https://www.nomadsummit.com/event/"

// events is the full schedule: main-conference sessions plus community side
// events.  Side events carrying a BookingURL are also listed in
// BookableEvents below.
var events = []model.Event{
    {
        ID:        "main-1",
        Title:     "Opening Keynote: The State of the Nomad Economy",
        Date:      "2026-01-17",
        StartTime: "09:30",
        EndTime:   "10:30",
        VenueName: "Main Conference Hall",
        VenueArea: "Night Bazaar",
        Type:      "main",
    },
    {
        ID:        "main-2",
        Title:     "Building a Location-Independent Business",
        Date:      "2026-01-17",
        StartTime: "11:00",
        EndTime:   "12:00",
        VenueName: "Main Conference Hall",
        VenueArea: "Night Bazaar",
        Type:      "main",
    },
    {
        ID:        "main-3",
        Title:     "Tax & Residency Panel",
        Date:      "2026-01-17",
        StartTime: "14:00",
        EndTime:   "15:30",
        VenueName: "Main Conference Hall",
        VenueArea: "Night Bazaar",
        Type:      "main",
    },
    {
        ID:        "main-4",
        Title:     "Closing Keynote & Community Awards",
        Date:      "2026-01-18",
        StartTime: "16:00",
        EndTime:   "17:30",
        VenueName: "Main Conference Hall",
        VenueArea: "Night Bazaar",
        Type:      "main",
    },
    {
        ID:         "se-1",
        Title:      "Nomad Summit Pool Party",
        Date:       "2026-01-18",
        StartTime:  "15:30",
        EndTime:    "20:30",
        VenueName:  "Shangri-La Hotel",
        VenueArea:  "Night Bazaar",
        Type:       "side",
        BookingURL: bookingBase + "nomad-summit-pool-party-26/",
        Bookable:   true,
    },
    {
        ID:         "se-2",
        Title:      "Mindful Journaling for Content Creators",
        Date:       "2026-01-19",
        StartTime:  "09:30",
        EndTime:    "11:00",
        VenueName:  "Yellow Coworking",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "mindful-journaling-for-content-creators/",
        Bookable:   true,
    },
    {
        ID:         "se-3",
        Title:      "House and Pet Sitting Meetup",
        Date:       "2026-01-19",
        StartTime:  "09:30",
        EndTime:    "11:30",
        VenueName:  "Punspace Wiang Kaew",
        VenueArea:  "Old City",
        Type:       "side",
        BookingURL: bookingBase + "house-and-pet-sitting-meetup/",
        Bookable:   true,
    },
    {
        ID:         "se-4",
        Title:      "AI Productivity Workshop",
        Date:       "2026-01-19",
        StartTime:  "15:00",
        EndTime:    "17:00",
        VenueName:  "Alt_ChiangMai",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "ai-productivity-workshop/",
        Bookable:   true,
    },
    {
        ID:         "se-5",
        Title:      "Thai Cooking Class for Nomads",
        Date:       "2026-01-19",
        StartTime:  "18:00",
        EndTime:    "21:00",
        VenueName:  "Gemoi Lifestyle Cafe",
        VenueArea:  "Santitham",
        Type:       "side",
        BookingURL: bookingBase + "thai-cooking-class-nomads/",
        Bookable:   true,
    },
    {
        ID:         "se-6",
        Title:      "Mind Your Business – with Mindfulness",
        Date:       "2026-01-20",
        StartTime:  "09:30",
        EndTime:    "11:30",
        VenueName:  "Alt_PingRiver",
        VenueArea:  "Riverside",
        Type:       "side",
        BookingURL: bookingBase + "mind-your-business-mindfulness/",
        Bookable:   true,
    },
    {
        ID:         "se-7",
        Title:      "The Deal Room",
        Date:       "2026-01-20",
        StartTime:  "14:00",
        EndTime:    "17:00",
        VenueName:  "The Brick Startup",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "the-deal-room-flippa/",
        Bookable:   true,
    },
    {
        ID:         "se-8",
        Title:      "Temple Run: Doi Suthep Sunrise Hike",
        Date:       "2026-01-21",
        StartTime:  "05:30",
        EndTime:    "10:00",
        VenueName:  "Doi Suthep",
        VenueArea:  "Outskirts",
        Type:       "side",
        BookingURL: bookingBase + "temple-run-doi-suthep/",
        Bookable:   true,
    },
    {
        ID:         "se-9",
        Title:      "Content Creator Meetup",
        Date:       "2026-01-21",
        StartTime:  "15:00",
        EndTime:    "17:00",
        VenueName:  "4seas",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "content-creator-meetup/",
        Bookable:   true,
    },
    {
        ID:         "se-10",
        Title:      "Women Nomads Lunch",
        Date:       "2026-01-22",
        StartTime:  "12:00",
        EndTime:    "14:00",
        VenueName:  "Aquaria Restaurant & Bar",
        VenueArea:  "Old City",
        Type:       "side",
        BookingURL: bookingBase + "women-nomads-lunch/",
        Bookable:   true,
    },
    {
        ID:         "se-11",
        Title:      "Tax Residency Workshop",
        Date:       "2026-01-22",
        StartTime:  "15:00",
        EndTime:    "17:00",
        VenueName:  "Punspace Wiang Kaew",
        VenueArea:  "Old City",
        Type:       "side",
        BookingURL: bookingBase + "tax-residency-workshop/",
        Bookable:   true,
    },
    {
        ID:         "se-12",
        Title:      "Muay Thai Experience",
        Date:       "2026-01-23",
        StartTime:  "09:00",
        EndTime:    "11:00",
        VenueName:  "Chiang Mai Boxing Gym",
        VenueArea:  "Santitham",
        Type:       "side",
        BookingURL: bookingBase + "muay-thai-experience/",
        Bookable:   true,
    },
    {
        ID:         "se-13",
        Title:      "SaaS Founders Dinner",
        Date:       "2026-01-23",
        StartTime:  "19:00",
        EndTime:    "22:00",
        VenueName:  "The Cigars Room",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "saas-founders-dinner/",
        Bookable:   true,
    },
    {
        ID:         "se-14",
        Title:      "Buildathon Finals",
        Date:       "2026-01-24",
        StartTime:  "18:00",
        EndTime:    "20:00",
        VenueName:  "Alt_ChiangMai",
        VenueArea:  "Nimman",
        Type:       "side",
        BookingURL: bookingBase + "buildathon-finals/",
        Bookable:   true,
    },
    {
        ID:         "se-15",
        Title:      "Closing Party 2026",
        Date:       "2026-01-24",
        StartTime:  "20:00",
        EndTime:    "23:59",
        VenueName:  "Shangri-La Hotel",
        VenueArea:  "Night Bazaar",
        Type:       "side",
        BookingURL: bookingBase + "closing-party-2026/",
        Bookable:   true,
    },
}

// ConferenceDates are the days user-submitted community events may target.
var ConferenceDates = []string{
    "2026-01-17", "2026-01-18", "2026-01-19", "2026-01-20",
    "2026-01-21", "2026-01-22", "2026-01-23", "2026-01-24",
}

// Events returns the full schedule.  Callers must not mutate the returned
// slice; it is shared process-wide.
func Events() []model.Event { return events }

// BookableEvents returns the refs the availability checker polls: every side
// event that carries an external booking page.
func BookableEvents() []model.BookableEventRef {
    refs := make([]model.BookableEventRef, 0, len(events))
    for _, ev := range events {
        if ev.Bookable && ev.BookingURL != "" {
            refs = append(refs, model.BookableEventRef{EventID: ev.ID, BookingURL: ev.BookingURL})
        }
    }
    return refs
}

// ValidDate reports whether d (YYYY-MM-DD) falls inside the conference window.
func ValidDate(d string) bool {
    for _, v := range ConferenceDates {
        if v == d {
            return true
        }
    }
    return false
}
