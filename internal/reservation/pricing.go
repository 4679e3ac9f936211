package reservation

import "github.com/sepehrad/venue-reservation/internal/model"

// Quote is the price computed for a reservation at creation time. It
// becomes the immutable fee snapshot; re-pricing is not supported.
type Quote struct {
    RuleID              *uint64 // rule that produced the price, nil when none resolved
    PricePerPersonCents uint32
    PartySize           uint32
    TotalAmountCents    uint32
    Currency            string
}

// QuoteFor computes the fee for a party under the given pricing rule.
// A nil rule means no rule resolved at any scope; the price then
// defaults to zero. Total = price per person times party size.
func QuoteFor(rule *model.PricingRule, partySize uint32, currency string) Quote {
    q := Quote{PartySize: partySize, Currency: currency}
    if rule != nil {
        id := rule.ID
        q.RuleID = &id
        q.PricePerPersonCents = rule.PricePerPersonCents
    }
    q.TotalAmountCents = q.PricePerPersonCents * partySize
    return q
}
