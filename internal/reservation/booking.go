package reservation

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/sepehrad/venue-reservation/internal/config"
    "github.com/sepehrad/venue-reservation/internal/model"
    "github.com/sepehrad/venue-reservation/internal/queue"
    "github.com/sepehrad/venue-reservation/internal/repository"
)

// MaxPartySize bounds the party_size input.
const MaxPartySize = 50

// EventPublisher pushes reservation events to the outbound
// notification stream. Publishing is best effort; the booking flow
// never fails because the broker is down.
type EventPublisher interface {
    PublishReservationEvent(ctx context.Context, ev queue.ReservationEvent) error
}

// BookingService composes the availability engine, the pricing
// resolver, the state machine and the strike policy under a single
// transaction per operation. Every method either commits all of its
// writes or none of them: a failed availability check rolls back the
// reservation insert along with the fee and reminder, so no "pending
// with no table" row can survive a failed booking.
type BookingService struct {
    db            *sql.DB
    cfg           config.ReservationConfig
    venues        *repository.VenueRepo
    tables        *repository.TableRepo
    reservations  *repository.ReservationRepo
    assignments   *repository.AssignmentRepo
    fees          *repository.FeeRepo
    reminders     *repository.ReminderRepo
    pricing       *repository.PricingRepo
    strikes       *repository.StrikeRepo
    notifications *repository.NotificationRepo
    events        EventPublisher
}

// NewBookingService constructs a BookingService. All repositories must
// be non-nil; events may be nil to disable queue publishing.
func NewBookingService(
    db *sql.DB,
    cfg config.ReservationConfig,
    venues *repository.VenueRepo,
    tables *repository.TableRepo,
    reservations *repository.ReservationRepo,
    assignments *repository.AssignmentRepo,
    fees *repository.FeeRepo,
    reminders *repository.ReminderRepo,
    pricing *repository.PricingRepo,
    strikes *repository.StrikeRepo,
    notifications *repository.NotificationRepo,
    events EventPublisher,
) *BookingService {
    if db == nil || venues == nil || tables == nil || reservations == nil ||
        assignments == nil || fees == nil || reminders == nil ||
        pricing == nil || strikes == nil || notifications == nil {
        panic("nil dependency passed to NewBookingService")
    }
    return &BookingService{
        db:            db,
        cfg:           cfg,
        venues:        venues,
        tables:        tables,
        reservations:  reservations,
        assignments:   assignments,
        fees:          fees,
        reminders:     reminders,
        pricing:       pricing,
        strikes:       strikes,
        notifications: notifications,
        events:        events,
    }
}

// CreateInput carries the customer's booking request.
type CreateInput struct {
    VenueID   uint64
    Date      string // YYYY-MM-DD
    Time      string // HH:MM or HH:MM:SS
    PartySize uint32
}

// CreateResult is everything the booking transaction produced.
type CreateResult struct {
    Reservation model.Reservation
    Fee         model.ReservationFee
    Table       model.VenueTable
    ReminderAt  time.Time
}

// Create books a table for a customer. Validation and the block check
// run before the transaction begins; everything else happens
// atomically. Returns ErrBlocked, ErrNotFound, ErrNoTableAvailable or
// ErrValidation as appropriate.
func (s *BookingService) Create(ctx context.Context, customerID uint64, in CreateInput) (*CreateResult, error) {
    if in.PartySize < 1 || in.PartySize > MaxPartySize {
        return nil, fmt.Errorf("%w: party_size must be between 1 and %d", ErrValidation, MaxPartySize)
    }
    if !ValidDate(in.Date) {
        return nil, fmt.Errorf("%w: reservation_date must be YYYY-MM-DD", ErrValidation)
    }
    start, err := StartTime(in.Date, in.Time)
    if err != nil {
        return nil, fmt.Errorf("%w: reservation_time must be HH:MM", ErrValidation)
    }

    blocked, err := s.strikes.IsBlocked(ctx, customerID, time.Now().UTC())
    if err != nil {
        return nil, err
    }
    if blocked {
        return nil, ErrBlocked
    }

    venue, err := s.venues.GetActiveByID(ctx, in.VenueID)
    if errors.Is(err, repository.ErrVenueNotFound) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }

    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    code, err := s.uniqueCodeTx(ctx, tx)
    if err != nil {
        return nil, err
    }
    res := model.Reservation{
        Code:            code,
        CustomerID:      customerID,
        VenueID:         venue.ID,
        ReservationDate: in.Date,
        ReservationTime: in.Time,
        PartySize:       in.PartySize,
        Status:          StatusPending,
    }
    if err := s.reservations.CreateTx(ctx, tx, &res); err != nil {
        return nil, err
    }

    // A pending reservation provisionally holds its table, so pending
    // conflicts count here.
    table, err := s.findTableTx(ctx, tx, venue.ID, res.PartySize, start, true)
    if err != nil {
        return nil, err
    }
    if table == nil {
        return nil, ErrNoTableAvailable
    }
    if err := s.assignments.CreateTx(ctx, tx, res.ID, table.ID); err != nil {
        return nil, err
    }

    rule, err := s.pricing.ResolveForVenueTx(ctx, tx, venue)
    if err != nil {
        return nil, err
    }
    quote := QuoteFor(rule, res.PartySize, s.cfg.Currency)
    fee := model.ReservationFee{
        ReservationID:       res.ID,
        PricingRuleID:       quote.RuleID,
        PricePerPersonCents: quote.PricePerPersonCents,
        PartySize:           quote.PartySize,
        TotalAmountCents:    quote.TotalAmountCents,
        Currency:            quote.Currency,
    }
    if err := s.fees.CreateTx(ctx, tx, &fee); err != nil {
        return nil, err
    }

    reminder := model.Reminder{
        ReservationID: res.ID,
        SendAt:        start.Add(-s.cfg.ReminderOffset()),
    }
    if err := s.reminders.CreateTx(ctx, tx, &reminder); err != nil {
        return nil, err
    }

    if err := s.reservations.AppendHistoryTx(ctx, tx, res.ID, nil, StatusPending, &customerID); err != nil {
        return nil, err
    }

    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return &CreateResult{Reservation: res, Fee: fee, Table: *table, ReminderAt: reminder.SendAt}, nil
}

// Approve transitions a vendor's reservation to approved. When the
// reservation has no table yet, availability is re-checked first; only
// approved and completed reservations block at this point, so a
// competing pending booking cannot starve the approval.
func (s *BookingService) Approve(ctx context.Context, vendorID, reservationID uint64) (*model.Reservation, *model.VenueTable, error) {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    res, err := s.reservations.GetForVendorTx(ctx, tx, reservationID, vendorID, true)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, nil, ErrNotFound
    }
    if err != nil {
        return nil, nil, err
    }

    table, err := s.assignments.TableForReservationTx(ctx, tx, res.ID)
    if err != nil {
        return nil, nil, err
    }
    if table == nil {
        start, serr := StartTime(res.ReservationDate, res.ReservationTime)
        if serr != nil {
            return nil, nil, serr
        }
        table, err = s.findTableTx(ctx, tx, res.VenueID, res.PartySize, start, false)
        if err != nil {
            return nil, nil, err
        }
        if table == nil {
            return nil, nil, ErrNoTableAvailable
        }
        if err := s.assignments.CreateTx(ctx, tx, res.ID, table.ID); err != nil {
            return nil, nil, err
        }
    }

    if err := s.transitionTx(ctx, tx, &res, StatusApproved, vendorID, nil); err != nil {
        return nil, nil, err
    }
    if err := s.notifications.CreateTx(ctx, tx, res.CustomerID,
        model.NotificationReservationApproved,
        "Reservation approved",
        "Your reservation has been approved.",
        reservationPayload(res)); err != nil {
        return nil, nil, err
    }

    if err := tx.Commit(); err != nil {
        return nil, nil, err
    }
    committed = true

    s.publish(ctx, res, model.NotificationReservationApproved,
        "Reservation approved", "Your reservation has been approved.")
    return &res, table, nil
}

// Reject transitions a vendor's reservation to rejected. The reason is
// required and is surfaced to the customer.
func (s *BookingService) Reject(ctx context.Context, vendorID, reservationID uint64, reason string) (*model.Reservation, error) {
    reason = strings.TrimSpace(reason)
    if reason == "" {
        return nil, fmt.Errorf("%w: reason is required", ErrValidation)
    }
    res, err := s.vendorTransition(ctx, vendorID, reservationID, StatusRejected, &reason)
    if err != nil {
        return nil, err
    }
    s.publish(ctx, *res, model.NotificationReservationRejected, "Reservation rejected", reason)
    return res, nil
}

// CancelByCustomer cancels the customer's own reservation, subject to
// the one-hour cutoff before the start time.
func (s *BookingService) CancelByCustomer(ctx context.Context, customerID, reservationID uint64) (*model.Reservation, error) {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    res, err := s.reservations.GetForCustomerTx(ctx, tx, reservationID, customerID, true)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    start, err := StartTime(res.ReservationDate, res.ReservationTime)
    if err != nil {
        return nil, err
    }
    if !CanCustomerCancel(res.Status, start, time.Now().UTC()) {
        return nil, ErrCannotCancel
    }
    if err := s.transitionTx(ctx, tx, &res, StatusCancelledByCustomer, customerID, nil); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return &res, nil
}

// CancelByVendor cancels any not-yet-completed reservation at one of
// the vendor's venues.
func (s *BookingService) CancelByVendor(ctx context.Context, vendorID, reservationID uint64) (*model.Reservation, error) {
    return s.vendorTransitionChecked(ctx, vendorID, reservationID, StatusCancelledByVenue, nil,
        func(res model.Reservation) error {
            if res.Status == StatusCompleted {
                return ErrCannotCancel
            }
            return nil
        })
}

// MarkNoShow records that the party never arrived. The transition
// applies a strike against the customer inside the same transaction.
func (s *BookingService) MarkNoShow(ctx context.Context, vendorID, reservationID uint64) (*model.Reservation, error) {
    return s.vendorTransition(ctx, vendorID, reservationID, StatusNoShow, nil)
}

// MarkCompleted records that the reservation was honored.
func (s *BookingService) MarkCompleted(ctx context.Context, vendorID, reservationID uint64) (*model.Reservation, error) {
    return s.vendorTransition(ctx, vendorID, reservationID, StatusCompleted, nil)
}

func (s *BookingService) vendorTransition(ctx context.Context, vendorID, reservationID uint64, newStatus string, reason *string) (*model.Reservation, error) {
    return s.vendorTransitionChecked(ctx, vendorID, reservationID, newStatus, reason, nil)
}

// vendorTransitionChecked runs a vendor-initiated status change under
// a row lock on the reservation. The optional check runs after the
// ownership lookup and before the transition.
func (s *BookingService) vendorTransitionChecked(ctx context.Context, vendorID, reservationID uint64, newStatus string, reason *string, check func(model.Reservation) error) (*model.Reservation, error) {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    res, err := s.reservations.GetForVendorTx(ctx, tx, reservationID, vendorID, true)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    if check != nil {
        if err := check(res); err != nil {
            return nil, err
        }
    }
    if err := s.transitionTx(ctx, tx, &res, newStatus, vendorID, reason); err != nil {
        return nil, err
    }
    if newStatus == StatusRejected && reason != nil {
        if err := s.notifications.CreateTx(ctx, tx, res.CustomerID,
            model.NotificationReservationRejected,
            "Reservation rejected", *reason,
            reservationPayload(res)); err != nil {
            return nil, err
        }
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return &res, nil
}

// transitionTx applies one status change: it validates the transition
// against the state diagram, updates the row, appends the audit
// record, and triggers the strike policy on no_show. The rejection
// reason is stored only for rejections and cleared otherwise.
func (s *BookingService) transitionTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, newStatus string, actorID uint64, reason *string) error {
    if !CanTransition(res.Status, newStatus) {
        return ErrInvalidTransition
    }
    old := res.Status
    var storedReason *string
    if newStatus == StatusRejected {
        storedReason = reason
    }
    if err := s.reservations.UpdateStatusTx(ctx, tx, res.ID, newStatus, storedReason); err != nil {
        return err
    }
    if err := s.reservations.AppendHistoryTx(ctx, tx, res.ID, &old, newStatus, &actorID); err != nil {
        return err
    }
    res.Status = newStatus
    res.RejectionReason = storedReason
    if newStatus == StatusNoShow {
        return s.applyStrikeTx(ctx, tx, res)
    }
    return nil
}

// applyStrikeTx records one infraction and escalates the customer's
// block when a threshold is crossed. The user row lock serializes
// concurrent no-show transitions against the same customer so the
// aggregated count never loses an update.
func (s *BookingService) applyStrikeTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    if err := s.strikes.LockUserTx(ctx, tx, res.CustomerID); err != nil {
        return err
    }
    rid, vid := res.ID, res.VenueID
    if err := s.strikes.AddStrikeTx(ctx, tx, res.CustomerID, &rid, &vid); err != nil {
        return err
    }
    count, err := s.strikes.CountByUserTx(ctx, tx, res.CustomerID)
    if err != nil {
        return err
    }
    decision := EscalationFor(count, time.Now().UTC())
    if decision == nil {
        return nil
    }
    current, err := s.strikes.CurrentBlockTx(ctx, tx, res.CustomerID)
    if err != nil {
        return err
    }
    if !Supersedes(decision, current) {
        return nil
    }
    reason := fmt.Sprintf("%d no-show strikes", count)
    return s.strikes.CreateBlockTx(ctx, tx, res.CustomerID, decision.Level, reason, decision.Until)
}

// findTableTx runs the availability engine inside the booking
// transaction. Candidate tables and their blocking assignments are
// read FOR UPDATE, which makes the first-fit result race-free against
// concurrent bookers targeting the same venue.
func (s *BookingService) findTableTx(ctx context.Context, tx *sql.Tx, venueID uint64, partySize uint32, start time.Time, includePending bool) (*model.VenueTable, error) {
    tables, err := s.tables.CandidatesForBookingTx(ctx, tx, venueID, partySize, true)
    if err != nil {
        return nil, err
    }
    if len(tables) == 0 {
        return nil, nil
    }
    ids := make([]uint64, len(tables))
    for i, t := range tables {
        ids[i] = t.ID
    }
    blocking, err := s.assignments.BlockingForTablesTx(ctx, tx, venueID, ids, BlockingStatuses(includePending), true)
    if err != nil {
        return nil, err
    }
    windows := make([]AssignmentWindow, 0, len(blocking))
    for _, b := range blocking {
        ws, err := StartTime(b.ReservationDate, b.ReservationTime)
        if err != nil {
            return nil, err
        }
        windows = append(windows, AssignmentWindow{TableID: b.TableID, Start: ws})
    }
    return FirstFit(tables, windows, start, s.cfg.Duration()), nil
}

// uniqueCodeTx draws codes until one is free. Collisions on an
// 8-character alphanumeric code are rare; the loop usually runs once.
func (s *BookingService) uniqueCodeTx(ctx context.Context, tx *sql.Tx) (string, error) {
    for {
        code, err := NewCode()
        if err != nil {
            return "", err
        }
        exists, err := s.reservations.CodeExistsTx(ctx, tx, code)
        if err != nil {
            return "", err
        }
        if !exists {
            return code, nil
        }
    }
}

func (s *BookingService) publish(ctx context.Context, res model.Reservation, typ, title, body string) {
    if s.events == nil {
        return
    }
    ev := queue.ReservationEvent{
        Type:          typ,
        ReservationID: res.ID,
        CustomerID:    res.CustomerID,
        VenueID:       res.VenueID,
        Status:        res.Status,
        Title:         title,
        Body:          body,
        OccurredAt:    time.Now().UTC().Format(time.RFC3339),
    }
    if err := s.events.PublishReservationEvent(ctx, ev); err != nil {
        log.Printf("booking: publish %s event failed: %v", typ, err)
    }
}

func reservationPayload(res model.Reservation) map[string]interface{} {
    return map[string]interface{}{
        "reservation_id": res.ID,
        "venue_id":       res.VenueID,
        "status":         res.Status,
    }
}
