package reservation

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/sepehrad/venue-reservation/internal/model"
)

var strikesNow = time.Date(2026, 9, 12, 12, 0, 0, 0, time.UTC)

func TestEscalationThresholds(t *testing.T) {
    assert.Nil(t, EscalationFor(0, strikesNow))
    assert.Nil(t, EscalationFor(2, strikesNow))

    d := EscalationFor(3, strikesNow)
    require.NotNil(t, d)
    assert.Equal(t, model.BlockLevelTemporary, d.Level)
    require.NotNil(t, d.Until)
    assert.Equal(t, strikesNow.Add(7*24*time.Hour), *d.Until)

    d = EscalationFor(6, strikesNow)
    require.NotNil(t, d)
    assert.Equal(t, model.BlockLevelTemporary, d.Level)
    require.NotNil(t, d.Until)
    assert.Equal(t, strikesNow.Add(30*24*time.Hour), *d.Until)

    // Highest threshold wins.
    d = EscalationFor(9, strikesNow)
    require.NotNil(t, d)
    assert.Equal(t, model.BlockLevelPermanent, d.Level)
    assert.Nil(t, d.Until)

    d = EscalationFor(15, strikesNow)
    require.NotNil(t, d)
    assert.Equal(t, model.BlockLevelPermanent, d.Level)
}

func TestSupersedesMonotonic(t *testing.T) {
    week := strikesNow.Add(7 * 24 * time.Hour)
    month := strikesNow.Add(30 * 24 * time.Hour)

    shortBlock := &BlockDecision{Level: model.BlockLevelTemporary, Until: &week}
    longBlock := &BlockDecision{Level: model.BlockLevelTemporary, Until: &month}
    permanent := &BlockDecision{Level: model.BlockLevelPermanent}

    // No current block: any decision applies.
    assert.True(t, Supersedes(shortBlock, nil))
    assert.True(t, Supersedes(permanent, nil))
    assert.False(t, Supersedes(nil, nil))

    currentShort := &model.UserBlock{Level: model.BlockLevelTemporary, BlockedUntil: &week, IsActive: true}
    currentPermanent := &model.UserBlock{Level: model.BlockLevelPermanent, IsActive: true}

    // Longer expiry or permanent replaces a shorter temporary block.
    assert.True(t, Supersedes(longBlock, currentShort))
    assert.True(t, Supersedes(permanent, currentShort))

    // Same or shorter expiry never downgrades.
    assert.False(t, Supersedes(shortBlock, currentShort))

    // Permanent blocks are final.
    assert.False(t, Supersedes(longBlock, currentPermanent))
    assert.False(t, Supersedes(permanent, currentPermanent))
}

func TestBlockInForce(t *testing.T) {
    future := strikesNow.Add(24 * time.Hour)
    past := strikesNow.Add(-24 * time.Hour)

    assert.False(t, BlockInForce(nil, strikesNow))
    assert.False(t, BlockInForce(&model.UserBlock{Level: model.BlockLevelPermanent, IsActive: false}, strikesNow))

    assert.True(t, BlockInForce(&model.UserBlock{Level: model.BlockLevelPermanent, IsActive: true}, strikesNow))
    assert.True(t, BlockInForce(&model.UserBlock{Level: model.BlockLevelTemporary, BlockedUntil: &future, IsActive: true}, strikesNow))

    // Expired temporary blocks lapse without any cleanup write.
    assert.False(t, BlockInForce(&model.UserBlock{Level: model.BlockLevelTemporary, BlockedUntil: &past, IsActive: true}, strikesNow))
    assert.False(t, BlockInForce(&model.UserBlock{Level: model.BlockLevelTemporary, BlockedUntil: &strikesNow, IsActive: true}, strikesNow))
}
