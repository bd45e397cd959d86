package bundle

import "travelkart/internal/model"

// Quote is the priced view of a selection. All amounts keep full float64
// precision; rounding to whole currency units is a display concern.
type Quote struct {
	Count          int          `json:"count"`
	OriginalTotal  float64      `json:"originalTotal"`
	Tier           DiscountTier `json:"-"`
	DiscountRate   float64      `json:"discountRate"`
	DiscountAmount float64      `json:"discountAmount"`
	FinalTotal     float64      `json:"finalTotal"`
}

// ResolvedUnitPrice returns the per-unit price of a product: the selected
// option's price when one is set, otherwise the base price.
func ResolvedUnitPrice(p *model.Product) float64 {
	if opt := p.SelectedOption(); opt != nil {
		return opt.Price
	}
	return p.BasePrice
}

// LineTotal is the resolved unit price times the configured quantity.
// An unconfigured quantity counts as one.
func LineTotal(p *model.Product) float64 {
	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}
	return ResolvedUnitPrice(p) * float64(qty)
}

// PriceSelection computes the full quote for a set of selected products.
// Pure and stateless: every call recomputes from scratch, so the quote can
// never go stale relative to its inputs.
func PriceSelection(selected []model.Product) Quote {
	var original float64
	for i := range selected {
		original += LineTotal(&selected[i])
	}

	count := len(selected)
	tier := TierForCount(count)
	discount := original * tier.Rate()

	return Quote{
		Count:          count,
		OriginalTotal:  original,
		Tier:           tier,
		DiscountRate:   tier.Rate(),
		DiscountAmount: discount,
		FinalTotal:     original - discount,
	}
}
