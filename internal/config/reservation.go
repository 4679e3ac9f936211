package config

import (
    "os"
    "strconv"
    "time"
)

// ReservationConfig carries the business settings of the booking core.
// It is built once at startup and passed into the services explicitly
// so nothing below the config package reads the process environment.
type ReservationConfig struct {
    DurationMinutes       int    // fixed reservation slot length
    ReminderOffsetMinutes int    // reminder fires this long before the start
    ReminderScanInterval  time.Duration // cadence of the reminder dispatcher
    Currency              string // ISO code stamped on fee snapshots
}

// Defaults and floor for the reservation settings.  A duration below
// thirty minutes falls back to the default rather than being clamped,
// matching the behavior the rest of the system was tuned against.
const (
    defaultDurationMinutes = 90
    minDurationMinutes     = 30
    defaultReminderMinutes = 60
)

// LoadReservationConfig reads the reservation settings from
// environment variables, applying defaults when unset or invalid.
func LoadReservationConfig() ReservationConfig {
    cfg := ReservationConfig{
        DurationMinutes:       envIntDefault("RESERVATION_DURATION_MINUTES", defaultDurationMinutes),
        ReminderOffsetMinutes: envIntDefault("RESERVATION_REMINDER_MINUTES", defaultReminderMinutes),
        ReminderScanInterval:  envDurDefault("RESERVATION_REMINDER_SCAN_INTERVAL", time.Minute),
        Currency:              envStrDefault("APP_CURRENCY", "USD"),
    }
    if cfg.DurationMinutes < minDurationMinutes {
        cfg.DurationMinutes = defaultDurationMinutes
    }
    if cfg.ReminderOffsetMinutes < 1 {
        cfg.ReminderOffsetMinutes = defaultReminderMinutes
    }
    if cfg.ReminderScanInterval <= 0 {
        cfg.ReminderScanInterval = time.Minute
    }
    return cfg
}

// Duration returns the reservation slot length.
func (c ReservationConfig) Duration() time.Duration {
    return time.Duration(c.DurationMinutes) * time.Minute
}

// ReminderOffset returns how long before the start the reminder fires.
func (c ReservationConfig) ReminderOffset() time.Duration {
    return time.Duration(c.ReminderOffsetMinutes) * time.Minute
}

func envStrDefault(k, d string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return d
}

func envIntDefault(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return d
}

func envDurDefault(k string, d time.Duration) time.Duration {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if dur, err := time.ParseDuration(v); err == nil {
        return dur
    }
    return d
}
