package reservation

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/sepehrad/venue-reservation/internal/config"
    "github.com/sepehrad/venue-reservation/internal/model"
    "github.com/sepehrad/venue-reservation/internal/queue"
    "github.com/sepehrad/venue-reservation/internal/repository"
)

// reminderBatchSize caps how many reminders one scan cycle dispatches.
const reminderBatchSize = 100

// ReminderDispatcher periodically scans for due, unsent reminders and
// turns each into an in-app notification plus a queue event. Reminder
// rows are written eagerly at booking time; the dispatcher never
// computes send times itself, it only delivers what is already due.
type ReminderDispatcher struct {
    cfg           config.ReservationConfig
    reminders     *repository.ReminderRepo
    notifications *repository.NotificationRepo
    events        EventPublisher
}

// NewReminderDispatcher constructs a dispatcher. events may be nil.
func NewReminderDispatcher(cfg config.ReservationConfig, reminders *repository.ReminderRepo, notifications *repository.NotificationRepo, events EventPublisher) *ReminderDispatcher {
    return &ReminderDispatcher{cfg: cfg, reminders: reminders, notifications: notifications, events: events}
}

// Run scans on the configured interval until ctx is cancelled. It is
// meant to be launched as a goroutine from main.
func (d *ReminderDispatcher) Run(ctx context.Context) {
    ticker := time.NewTicker(d.cfg.ReminderScanInterval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            if n, err := d.DispatchDue(ctx, time.Now().UTC()); err != nil {
                log.Printf("reminder: scan failed: %v", err)
            } else if n > 0 {
                log.Printf("reminder: dispatched %d reminder(s)", n)
            }
        }
    }
}

// DispatchDue delivers every reminder due at now and returns how many
// were sent. MarkSent runs before the notification write: if another
// scanner already claimed the row, this one skips it, so a reminder is
// delivered at most once even with multiple instances running.
func (d *ReminderDispatcher) DispatchDue(ctx context.Context, now time.Time) (int, error) {
    due, err := d.reminders.DueUnsent(ctx, now, reminderBatchSize)
    if err != nil {
        return 0, err
    }
    sent := 0
    for _, rem := range due {
        claimed, err := d.reminders.MarkSent(ctx, rem.ReminderID, now)
        if err != nil {
            return sent, err
        }
        if !claimed {
            continue
        }
        body := fmt.Sprintf("Your reservation on %s at %s is coming up in about %d minutes.",
            rem.ReservationDate, rem.ReservationTime, int(d.cfg.ReminderOffset().Minutes()))
        if err := d.notifications.Create(ctx, rem.CustomerID,
            model.NotificationReservationReminder,
            "Upcoming reservation", body,
            map[string]interface{}{
                "reservation_id": rem.ReservationID,
                "venue_id":       rem.VenueID,
            }); err != nil {
            // The reminder is already claimed; log and move on rather
            // than re-sending on the next cycle.
            log.Printf("reminder: notification write failed for reservation %d: %v", rem.ReservationID, err)
        }
        d.publish(ctx, rem, body)
        sent++
    }
    return sent, nil
}

func (d *ReminderDispatcher) publish(ctx context.Context, rem repository.DueReminder, body string) {
    if d.events == nil {
        return
    }
    ev := queue.ReservationEvent{
        Type:          model.NotificationReservationReminder,
        ReservationID: rem.ReservationID,
        CustomerID:    rem.CustomerID,
        VenueID:       rem.VenueID,
        Status:        StatusApproved,
        Title:         "Upcoming reservation",
        Body:          body,
        OccurredAt:    time.Now().UTC().Format(time.RFC3339),
    }
    if err := d.events.PublishReservationEvent(ctx, ev); err != nil {
        log.Printf("reminder: publish event failed for reservation %d: %v", rem.ReservationID, err)
    }
}
