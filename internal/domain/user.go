package domain

import "time"

// User represents a bot user with a prepaid balance
type User struct {
	ID        int64
	Username  string
	Balance   int64
	VIPTier   VIPTier
	CreatedAt time.Time
}

// VIPTier is a discount class attached to a user
type VIPTier string

const (
	TierNone   VIPTier = "None"
	TierBronze VIPTier = "Bronze"
	TierSilver VIPTier = "Silver"
	TierGold   VIPTier = "Gold"
)

// DiscountPercent returns the flat discount percentage for the tier.
// Unknown tiers get no discount.
func (t VIPTier) DiscountPercent() int64 {
	switch t {
	case TierBronze:
		return 1
	case TierSilver:
		return 2
	case TierGold:
		return 3
	default:
		return 0
	}
}

// Discount returns the discount amount for a price, truncating the
// fractional part (floor semantics for non-negative prices).
func (t VIPTier) Discount(price int64) int64 {
	return price * t.DiscountPercent() / 100
}
