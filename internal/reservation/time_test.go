package reservation

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestStartTime(t *testing.T) {
    got, err := StartTime("2026-09-12", "18:30")
    require.NoError(t, err)
    assert.Equal(t, time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC), got)

    // TIME columns come back with seconds.
    got, err = StartTime("2026-09-12", "18:30:00")
    require.NoError(t, err)
    assert.Equal(t, time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC), got)

    _, err = StartTime("2026-09-12", "half past six")
    assert.Error(t, err)
    _, err = StartTime("12/09/2026", "18:30")
    assert.Error(t, err)
}

func TestValidDate(t *testing.T) {
    assert.True(t, ValidDate("2026-09-12"))
    assert.False(t, ValidDate("2026-9-12"))
    assert.False(t, ValidDate("2026-13-40"))
    assert.False(t, ValidDate(""))
}

func TestNewCode(t *testing.T) {
    seen := make(map[string]bool)
    for i := 0; i < 50; i++ {
        code, err := NewCode()
        require.NoError(t, err)
        require.Len(t, code, 8)
        for _, ch := range code {
            assert.Contains(t, codeAlphabet, string(ch))
        }
        seen[code] = true
    }
    // 50 draws from a 36^8 space should never collide.
    assert.Len(t, seen, 50)
}
