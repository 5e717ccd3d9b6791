package availability

import "time"

// StalenessMinutes reports how old the stored snapshot is: whole minutes
// elapsed between lastRun and now, floored.  nil when no batch has ever
// completed.  Staleness is informational only: nothing expires stored data,
// consumers just flag it visually once it looks old.
func StalenessMinutes(now time.Time, lastRun *time.Time) *int {
    if lastRun == nil {
        return nil
    }
    mins := int(now.Sub(*lastRun) / time.Minute)
    return &mins
}
