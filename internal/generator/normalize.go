package generator

import (
	"encoding/json"
	"fmt"

	"travelkart/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const defaultUnitName = "Pax"

// Normalize validates a raw completion payload and converts it into a
// GeneratedBundle safe for the session store: synthetic product and option
// IDs are assigned (the service supplies none), placeholder images attached,
// and missing option lists left empty for the base-price degenerate case.
//
// The service's own contract promises exactly one open-dated product per
// bundle, but that is only asserted in the prompt. Zero or multiple are
// tolerated and logged, never rejected.
func Normalize(payload []byte, validate *validator.Validate, logger zerolog.Logger) (*model.GeneratedBundle, error) {
	var raw rawBundle
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("malformed generation response: %w", err)
	}

	if err := validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("generation response failed validation: %w", err)
	}

	products := make([]model.Product, 0, len(raw.Products))
	openDated := 0

	for i, rp := range raw.Products {
		if rp.Price <= 0 && len(rp.Options) == 0 {
			return nil, fmt.Errorf("generated product %q has no resolvable price", rp.Title)
		}

		p := model.Product{
			ID:          fmt.Sprintf("dyn-%d", i),
			Title:       rp.Title,
			Description: rp.Description,
			Image:       placeholderImage(i),
			Badge:       rp.Badge,
			Rating:      rp.Rating,
			ReviewCount: rp.ReviewCount,
			BasePrice:   rp.Price,
			IsOpenDated: rp.IsOpenDated,
		}

		for j, ro := range rp.Options {
			unit := ro.UnitName
			if unit == "" {
				unit = defaultUnitName
			}
			p.Options = append(p.Options, model.ProductOption{
				ID:       fmt.Sprintf("opt-%d-%d", i, j),
				Title:    ro.Title,
				Price:    ro.Price,
				UnitName: unit,
			})
		}

		// A product arriving with no base price derives one from its
		// cheapest option so the "starting from" display stays sound.
		if p.BasePrice <= 0 {
			p.BasePrice = cheapestOption(p.Options)
		}

		if p.IsOpenDated {
			openDated++
		}

		products = append(products, p)
	}

	if openDated != 1 {
		logger.Warn().
			Int("open_dated_count", openDated).
			Int("product_count", len(products)).
			Msg("generated bundle does not have exactly one open-dated product")
	}

	return &model.GeneratedBundle{
		Title:    raw.Title,
		Reason:   raw.Reason,
		Products: products,
	}, nil
}

func cheapestOption(options []model.ProductOption) float64 {
	cheapest := 0.0
	for _, opt := range options {
		if cheapest == 0 || opt.Price < cheapest {
			cheapest = opt.Price
		}
	}
	return cheapest
}

func placeholderImage(index int) string {
	return fmt.Sprintf("https://picsum.photos/400/300?random=%d", index+10)
}
