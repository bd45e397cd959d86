package model

// ProductOption is a single bookable variant of a product, such as a ticket
// type. Price is per unit; UnitName is a display label like "Adult" or "Pax".
type ProductOption struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	UnitName    string  `json:"unitName"`
}

// Product is a candidate item in a bundle. BasePrice acts as the
// "starting from" price and is used whenever no option is selected.
// The configuration fields (SelectedOptionID, Quantity, SelectedDate,
// ChooseLater) are owned by the session store once the product enters it.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Badge       string  `json:"badge,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"reviewCount,omitempty"`
	BasePrice   float64 `json:"basePrice"`

	// IsOpenDated marks tickets valid for a fixed window after purchase.
	// Open-dated products never take a visit date.
	IsOpenDated bool `json:"isOpenDated"`

	Options []ProductOption `json:"options,omitempty"`

	SelectedOptionID string  `json:"selectedOptionId,omitempty"`
	Quantity         int     `json:"quantity,omitempty"`
	SelectedDate     *string `json:"selectedDate,omitempty"`
	ChooseLater      bool    `json:"chooseLater,omitempty"`
}

// SelectedOption resolves SelectedOptionID against Options. Returns nil when
// no option is selected or the reference is dangling.
func (p *Product) SelectedOption() *ProductOption {
	if p.SelectedOptionID == "" {
		return nil
	}
	return p.Option(p.SelectedOptionID)
}

// Option looks up an option by ID. Returns nil when absent.
func (p *Product) Option(optionID string) *ProductOption {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the product, including its option list.
func (p Product) Clone() Product {
	out := p
	if p.Options != nil {
		out.Options = make([]ProductOption, len(p.Options))
		copy(out.Options, p.Options)
	}
	if p.SelectedDate != nil {
		d := *p.SelectedDate
		out.SelectedDate = &d
	}
	return out
}

// CloneProducts deep-copies a product slice.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
