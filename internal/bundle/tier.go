// Package bundle implements the bundle composition engine: the live
// selection/configuration store for one bundle-building session, the pure
// pricing and discount-tier calculations, the tier-progress advisor, and the
// immutable checkout snapshot capture.
package bundle

// DiscountTier is a discount rate bracket keyed by the number of selected
// items. The value is the rate itself (0.05 means 5% off).
type DiscountTier float64

const (
	// TierNone applies below two selected items.
	TierNone DiscountTier = 0
	// Tier1 applies at exactly two selected items.
	Tier1 DiscountTier = 0.05
	// Tier2 applies at exactly three selected items.
	Tier2 DiscountTier = 0.08
	// Tier3 applies at four or more selected items.
	Tier3 DiscountTier = 0.12
)

// TierForCount maps a selected-item count to its discount tier.
func TierForCount(count int) DiscountTier {
	switch {
	case count <= 1:
		return TierNone
	case count == 2:
		return Tier1
	case count == 3:
		return Tier2
	default:
		return Tier3
	}
}

// Rate returns the tier's discount rate as a plain float64.
func (t DiscountTier) Rate() float64 {
	return float64(t)
}

// Percent returns the tier as a whole-number percentage for display.
func (t DiscountTier) Percent() int {
	switch t {
	case Tier1:
		return 5
	case Tier2:
		return 8
	case Tier3:
		return 12
	default:
		return 0
	}
}
