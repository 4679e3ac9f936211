package reservation

import (
    "fmt"
    "time"
)

// Accepted layouts for the combined reservation date and time. The
// short form covers request input (HH:MM); the long form covers TIME
// columns read back from the database (HH:MM:SS).
const (
    dateLayout      = "2006-01-02"
    startLayoutLong = "2006-01-02 15:04:05"
    startLayout     = "2006-01-02 15:04"
)

// StartTime combines a reservation date (YYYY-MM-DD) and time (HH:MM
// or HH:MM:SS) into a single UTC timestamp. A duration window that
// spans midnight needs no special handling because all interval math
// works on this combined value.
func StartTime(date, clock string) (time.Time, error) {
    combined := date + " " + clock
    if t, err := time.Parse(startLayoutLong, combined); err == nil {
        return t.UTC(), nil
    }
    t, err := time.Parse(startLayout, combined)
    if err != nil {
        return time.Time{}, fmt.Errorf("parse reservation start %q: %w", combined, err)
    }
    return t.UTC(), nil
}

// ValidDate reports whether a date string matches YYYY-MM-DD.
func ValidDate(date string) bool {
    _, err := time.Parse(dateLayout, date)
    return err == nil
}
