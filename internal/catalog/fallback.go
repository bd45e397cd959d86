package catalog

import (
	"fmt"

	"travelkart/internal/model"
)

// FallbackBundle is the fixed two-product bundle substituted when dynamic
// generation fails for any reason. It keeps the selection and pricing flow
// alive with valid input; the store never learns generation failed.
func FallbackBundle(destination string) *model.GeneratedBundle {
	return &model.GeneratedBundle{
		Title:  fmt.Sprintf("%s Essentials", destination),
		Reason: "Based on your preferences (Fallback)",
		Products: []model.Product{
			{
				ID:          "fb-1",
				Title:       "City Sightseeing Bus Tour",
				Description: "Explore the city highlights at your own pace.",
				BasePrice:   45,
				Badge:       "Best Seller",
				Image:       "https://picsum.photos/400/300?random=100",
				Rating:      4.5,
				ReviewCount: 1200,
				IsOpenDated: true,
				Options: []model.ProductOption{
					{ID: "fb-1-a", Title: "24-Hour Pass", Price: 45, UnitName: "Adult"},
					{ID: "fb-1-b", Title: "48-Hour Pass", Price: 65, UnitName: "Adult"},
				},
			},
			{
				ID:          "fb-2",
				Title:       "Local Food Tasting Adventure",
				Description: "Sample the best local dishes with a guide.",
				BasePrice:   85,
				Badge:       "Foodie Pick",
				Image:       "https://picsum.photos/400/300?random=101",
				Rating:      4.8,
				ReviewCount: 340,
				IsOpenDated: false,
				Options: []model.ProductOption{
					{ID: "fb-2-a", Title: "Morning Tour", Price: 85, UnitName: "Pax"},
					{ID: "fb-2-b", Title: "Evening Tour", Price: 95, UnitName: "Pax"},
				},
			},
		},
	}
}
