// Package shipping holds the fixed shipping rate table. Fees are flat,
// set at build time, and shown both in the local cart preview and on the
// provider's hosted checkout page, so the two must never disagree.
package shipping

import (
	"errors"
	"fmt"
)

// Tier is a delivery option the customer picks at checkout.
// Values match the wire names used by the storefront form.
type Tier string

const (
	TierPickup        Tier = "pickup"
	TierDomestic      Tier = "domestic"
	TierInternational Tier = "intl"
)

// DefaultTier is what the storefront preselects.
const DefaultTier = TierPickup

// ErrUnknownTier indicates a fee lookup for a tier outside the fixed set.
// Unknown tiers are rejected outright rather than priced at some fallback.
var ErrUnknownTier = errors.New("unknown shipping tier")

// Option is one row of the rate table: a flat fee plus a delivery window
// in business days.
type Option struct {
	Tier        Tier
	DisplayName string
	Fee         int64 // minor units
	Currency    string
	MinDays     int64
	MaxDays     int64
}

// table order is also display order.
var table = []Option{
	{Tier: TierPickup, DisplayName: "Local pickup", Fee: 0, Currency: "usd", MinDays: 0, MaxDays: 2},
	{Tier: TierDomestic, DisplayName: "Domestic", Fee: 599, Currency: "usd", MinDays: 3, MaxDays: 7},
	{Tier: TierInternational, DisplayName: "International", Fee: 1299, Currency: "usd", MinDays: 7, MaxDays: 21},
}

// Options returns the full rate table in display order.
func Options() []Option {
	out := make([]Option, len(table))
	copy(out, table)
	return out
}

// FeeFor returns the flat fee for the given tier.
func FeeFor(tier Tier) (int64, error) {
	for _, o := range table {
		if o.Tier == tier {
			return o.Fee, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
}

// Known reports whether tier is part of the fixed set.
func Known(tier Tier) bool {
	_, err := FeeFor(tier)
	return err == nil
}
