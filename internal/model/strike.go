package model

import "time"

// Block levels stored in the user_blocks.level column.
const (
    BlockLevelTemporary = "temporary"
    BlockLevelPermanent = "permanent"
)

// UserStrike is one row of the append-only infraction ledger.  A
// strike is recorded every time a reservation of the user is marked
// no_show.  The current strike count is COUNT(*) over this table.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – customer the strike counts against.
//  ReservationID – reservation that triggered the strike, if any.
//  VenueID       – venue where the no-show happened, if any.
//  CreatedAt     – when the strike was recorded.
type UserStrike struct {
    ID            uint64    // user_strikes.id
    UserID        uint64    // user_strikes.user_id
    ReservationID *uint64   // user_strikes.reservation_id (nullable)
    VenueID       *uint64   // user_strikes.venue_id (nullable)
    CreatedAt     time.Time // user_strikes.created_at
}

// UserBlock records a booking ban applied by the strike policy.  A
// permanent block has no expiry; a temporary block expires lazily
// when BlockedUntil passes.  Rows are never deleted so the ban
// history stays auditable.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – blocked customer.
//  Level        – temporary or permanent.
//  Reason       – why the block was applied.
//  BlockedUntil – expiry of a temporary block, nil for permanent.
//  IsActive     – whether the block is still in force.
//  CreatedAt    – when the block was applied.
type UserBlock struct {
    ID           uint64     // user_blocks.id
    UserID       uint64     // user_blocks.user_id
    Level        string     // user_blocks.level
    Reason       string     // user_blocks.reason
    BlockedUntil *time.Time // user_blocks.blocked_until (nullable)
    IsActive     bool       // user_blocks.is_active
    CreatedAt    time.Time  // user_blocks.created_at
}
