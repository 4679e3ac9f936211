package reservation

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/sepehrad/venue-reservation/internal/model"
)

func at(hour, min int) time.Time {
    return time.Date(2026, 9, 12, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
    dur := 90 * time.Minute
    cases := []struct {
        name    string
        aStart  time.Time
        bStart  time.Time
        overlap bool
    }{
        {"identical", at(18, 0), at(18, 0), true},
        {"nested start", at(18, 0), at(18, 30), true},
        {"partial tail", at(18, 0), at(19, 0), true},
        {"touching end to start", at(18, 0), at(19, 30), false},
        {"touching start to end", at(19, 30), at(18, 0), false},
        {"disjoint", at(18, 0), at(21, 0), false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := Overlaps(tc.aStart, tc.aStart.Add(dur), tc.bStart, tc.bStart.Add(dur))
            assert.Equal(t, tc.overlap, got)
        })
    }
}

func TestFirstFitConflictWindow(t *testing.T) {
    dur := 90 * time.Minute
    tables := []model.VenueTable{{ID: 1, Capacity: 4}}
    windows := []AssignmentWindow{{TableID: 1, Start: at(18, 0)}} // blocks until 19:30

    assert.Nil(t, FirstFit(tables, windows, at(18, 30), dur), "18:30 falls inside the 18:00-19:30 slot")
    assert.Nil(t, FirstFit(tables, windows, at(17, 0), dur), "17:00-18:30 overlaps the start")

    got := FirstFit(tables, windows, at(19, 35), dur)
    require.NotNil(t, got)
    assert.Equal(t, uint64(1), got.ID)

    // A slot starting exactly when the previous one ends is free.
    assert.NotNil(t, FirstFit(tables, windows, at(19, 30), dur))
}

func TestFirstFitPrefersSmallestTable(t *testing.T) {
    dur := 90 * time.Minute
    // Ordered by capacity ascending, as CandidatesForBookingTx returns them.
    tables := []model.VenueTable{
        {ID: 10, Capacity: 2},
        {ID: 11, Capacity: 4},
        {ID: 12, Capacity: 8},
    }

    got := FirstFit(tables, nil, at(18, 0), dur)
    require.NotNil(t, got)
    assert.Equal(t, uint64(10), got.ID)

    // When the smallest is taken the next one up wins.
    windows := []AssignmentWindow{{TableID: 10, Start: at(18, 0)}}
    got = FirstFit(tables, windows, at(18, 0), dur)
    require.NotNil(t, got)
    assert.Equal(t, uint64(11), got.ID)
}

func TestFirstFitAllTablesBusy(t *testing.T) {
    dur := 90 * time.Minute
    tables := []model.VenueTable{
        {ID: 1, Capacity: 2},
        {ID: 2, Capacity: 4},
    }
    windows := []AssignmentWindow{
        {TableID: 1, Start: at(18, 0)},
        {TableID: 2, Start: at(17, 30)},
    }
    assert.Nil(t, FirstFit(tables, windows, at(18, 15), dur))
}

func TestFirstFitIgnoresOtherTablesWindows(t *testing.T) {
    dur := 90 * time.Minute
    tables := []model.VenueTable{{ID: 2, Capacity: 4}}
    windows := []AssignmentWindow{{TableID: 1, Start: at(18, 0)}}
    got := FirstFit(tables, windows, at(18, 0), dur)
    require.NotNil(t, got)
    assert.Equal(t, uint64(2), got.ID)
}
