package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "time"
)

// NotificationRepo writes and lists user notifications. Delivery
// mechanics live elsewhere; this service only persists the records
// and hands them back to their owner.
type NotificationRepo struct {
    db *sql.DB
}

// NewNotificationRepo returns a new NotificationRepo bound to the given database.
func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// CreateTx inserts a notification within the provided transaction.
// The payload is marshalled to JSON; a nil payload stores NULL.
func (r *NotificationRepo) CreateTx(ctx context.Context, tx *sql.Tx, userID uint64, typ, title, body string, payload map[string]interface{}) error {
    data, err := marshalPayload(payload)
    if err != nil {
        return err
    }
    _, err = tx.ExecContext(ctx,
        `INSERT INTO notifications (user_id, type, title, body, data_json) VALUES (?, ?, ?, ?, ?)`,
        userID, typ, title, body, data)
    return err
}

// Create inserts a notification outside any transaction. Used by the
// reminder dispatcher.
func (r *NotificationRepo) Create(ctx context.Context, userID uint64, typ, title, body string, payload map[string]interface{}) error {
    data, err := marshalPayload(payload)
    if err != nil {
        return err
    }
    _, err = r.db.ExecContext(ctx,
        `INSERT INTO notifications (user_id, type, title, body, data_json) VALUES (?, ?, ?, ?, ?)`,
        userID, typ, title, body, data)
    return err
}

func marshalPayload(payload map[string]interface{}) (interface{}, error) {
    if payload == nil {
        return nil, nil
    }
    b, err := json.Marshal(payload)
    if err != nil {
        return nil, err
    }
    return b, nil
}

// NotificationRow is one row of a user's notification feed.
type NotificationRow struct {
    ID        uint64          `json:"id"`
    Type      string          `json:"type"`
    Title     string          `json:"title"`
    Body      string          `json:"body"`
    Data      json.RawMessage `json:"data,omitempty"`
    CreatedAt time.Time       `json:"created_at"`
}

// ListByUser returns the user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]NotificationRow, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, type, title, body, data_json, created_at
         FROM notifications WHERE user_id = ?
         ORDER BY id DESC LIMIT ? OFFSET ?`,
        userID, limit, offset)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]NotificationRow, 0)
    for rows.Next() {
        var n NotificationRow
        var data []byte
        if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &data, &n.CreatedAt); err != nil {
            return nil, err
        }
        if len(data) > 0 {
            n.Data = json.RawMessage(data)
        }
        out = append(out, n)
    }
    return out, rows.Err()
}
