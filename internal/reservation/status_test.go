package reservation

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
    allowed := []struct{ from, to string }{
        {StatusPending, StatusApproved},
        {StatusPending, StatusRejected},
        {StatusPending, StatusCancelledByCustomer},
        {StatusPending, StatusCancelledByVenue},
        {StatusApproved, StatusCancelledByCustomer},
        {StatusApproved, StatusCancelledByVenue},
        {StatusApproved, StatusNoShow},
        {StatusApproved, StatusCompleted},
    }
    for _, tc := range allowed {
        assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
    }

    denied := []struct{ from, to string }{
        {StatusPending, StatusNoShow},
        {StatusPending, StatusCompleted},
        {StatusApproved, StatusRejected},
        {StatusApproved, StatusPending},
        {StatusRejected, StatusApproved},
        {StatusCompleted, StatusCancelledByVenue},
        {StatusNoShow, StatusApproved},
        {StatusCancelledByCustomer, StatusApproved},
        {"bogus", StatusApproved},
    }
    for _, tc := range denied {
        assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
    }
}

func TestIsTerminal(t *testing.T) {
    assert.False(t, IsTerminal(StatusPending))
    assert.False(t, IsTerminal(StatusApproved))
    for _, s := range []string{
        StatusRejected, StatusCancelledByCustomer, StatusCancelledByVenue,
        StatusNoShow, StatusCompleted,
    } {
        assert.True(t, IsTerminal(s), "%s should be terminal", s)
    }
}

func TestBlockingStatuses(t *testing.T) {
    assert.ElementsMatch(t, []string{StatusApproved, StatusCompleted}, BlockingStatuses(false))
    assert.ElementsMatch(t, []string{StatusApproved, StatusCompleted, StatusPending}, BlockingStatuses(true))
}

func TestCanCustomerCancel(t *testing.T) {
    start := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)

    // Well before the cutoff.
    assert.True(t, CanCustomerCancel(StatusPending, start, start.Add(-2*time.Hour)))
    assert.True(t, CanCustomerCancel(StatusApproved, start, start.Add(-90*time.Minute)))

    // Exactly one hour before is already too late.
    assert.False(t, CanCustomerCancel(StatusApproved, start, start.Add(-time.Hour)))
    assert.False(t, CanCustomerCancel(StatusApproved, start, start.Add(-30*time.Minute)))
    assert.False(t, CanCustomerCancel(StatusApproved, start, start.Add(time.Minute)))

    // Status gate regardless of timing.
    assert.False(t, CanCustomerCancel(StatusCompleted, start, start.Add(-2*time.Hour)))
    assert.False(t, CanCustomerCancel(StatusRejected, start, start.Add(-2*time.Hour)))
}
