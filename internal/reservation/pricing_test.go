package reservation

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/sepehrad/venue-reservation/internal/model"
)

func TestQuoteForWithRule(t *testing.T) {
    rule := &model.PricingRule{ID: 7, PricePerPersonCents: 1250}
    q := QuoteFor(rule, 4, "USD")

    require.NotNil(t, q.RuleID)
    assert.Equal(t, uint64(7), *q.RuleID)
    assert.Equal(t, uint32(1250), q.PricePerPersonCents)
    assert.Equal(t, uint32(4), q.PartySize)
    assert.Equal(t, uint32(5000), q.TotalAmountCents)
    assert.Equal(t, "USD", q.Currency)
}

func TestQuoteForNoRuleDefaultsToZero(t *testing.T) {
    q := QuoteFor(nil, 6, "EUR")

    assert.Nil(t, q.RuleID)
    assert.Equal(t, uint32(0), q.PricePerPersonCents)
    assert.Equal(t, uint32(0), q.TotalAmountCents)
    assert.Equal(t, uint32(6), q.PartySize)
    assert.Equal(t, "EUR", q.Currency)
}

func TestQuoteForSingleGuest(t *testing.T) {
    rule := &model.PricingRule{ID: 2, PricePerPersonCents: 300}
    q := QuoteFor(rule, 1, "USD")
    assert.Equal(t, uint32(300), q.TotalAmountCents)
}
