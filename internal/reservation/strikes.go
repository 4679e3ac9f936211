package reservation

import (
    "time"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// Strike escalation thresholds, checked from highest to lowest.
const (
    strikesForPermanentBlock = 9
    strikesForLongBlock      = 6
    strikesForShortBlock     = 3

    longBlockDays  = 30
    shortBlockDays = 7
)

// BlockDecision is the ban the strike policy wants in force after an
// infraction. Until is nil for permanent blocks.
type BlockDecision struct {
    Level string
    Until *time.Time
}

// EscalationFor maps a strike count to the block it mandates. The
// first matching threshold wins; below three strikes no block applies
// and nil is returned.
func EscalationFor(count int, now time.Time) *BlockDecision {
    switch {
    case count >= strikesForPermanentBlock:
        return &BlockDecision{Level: model.BlockLevelPermanent}
    case count >= strikesForLongBlock:
        until := now.Add(longBlockDays * 24 * time.Hour)
        return &BlockDecision{Level: model.BlockLevelTemporary, Until: &until}
    case count >= strikesForShortBlock:
        until := now.Add(shortBlockDays * 24 * time.Hour)
        return &BlockDecision{Level: model.BlockLevelTemporary, Until: &until}
    default:
        return nil
    }
}

// Supersedes reports whether a new block decision outranks the block
// currently in force. Thresholds are monotonic: a permanent block is
// never downgraded and a temporary block is only replaced by a later
// expiry or a permanent one.
func Supersedes(decision *BlockDecision, current *model.UserBlock) bool {
    if decision == nil {
        return false
    }
    if current == nil {
        return true
    }
    if current.Level == model.BlockLevelPermanent {
        return false
    }
    if decision.Level == model.BlockLevelPermanent {
        return true
    }
    return decision.Until != nil && current.BlockedUntil != nil &&
        decision.Until.After(*current.BlockedUntil)
}

// BlockInForce reports whether a block record still bans booking at
// the given instant. Expired temporary blocks are not cleared in the
// database; they simply stop matching here.
func BlockInForce(b *model.UserBlock, now time.Time) bool {
    if b == nil || !b.IsActive {
        return false
    }
    if b.Level == model.BlockLevelPermanent {
        return true
    }
    return b.BlockedUntil != nil && b.BlockedUntil.After(now)
}
