package reservation

import (
    "time"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// AssignmentWindow is an existing booking interval on a table,
// produced by joining table assignments to reservations in a
// slot-blocking status. All reservations share the same configured
// duration, so only the start is carried.
type AssignmentWindow struct {
    TableID uint64
    Start   time.Time
}

// Overlaps applies the half-open interval test: [start1, end1) and
// [start2, end2) overlap iff start1 < end2 && end1 > start2. Touching
// endpoints do not conflict, so a booking may begin exactly when the
// previous one ends.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
    return start1.Before(end2) && end1.After(start2)
}

// FirstFit returns the first table that is free for the whole slot
// [start, start+duration). Tables must be ordered by capacity
// ascending so the smallest sufficient table wins; capacity filtering
// happens upstream. Returns nil when every candidate conflicts.
func FirstFit(tables []model.VenueTable, windows []AssignmentWindow, start time.Time, duration time.Duration) *model.VenueTable {
    end := start.Add(duration)
    for i := range tables {
        conflict := false
        for _, w := range windows {
            if w.TableID != tables[i].ID {
                continue
            }
            if Overlaps(start, end, w.Start, w.Start.Add(duration)) {
                conflict = true
                break
            }
        }
        if !conflict {
            return &tables[i]
        }
    }
    return nil
}
