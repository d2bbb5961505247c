// Package product holds the static registry of demo product profiles.
package product

import "quiverArcade/domain"

// profiles is the full catalogue shown on the product-select screen. Initial
// inventory is sized to roughly 1.4 weeks of average demand for every
// product.
var profiles = []domain.ProductProfile{
	{
		ID:                   "protein-bar",
		Name:                 "Drink",
		Icon:                 "🥤",
		CogsPerUnit:          1.50,
		RevenuePerUnit:       3.00,
		AnnualHoldingRate:    0.16,
		OrderingCost:         25,
		DemandScale:          40,
		BaseOrderQuantity:    500,
		BaseInitialInventory: 1120,
		MaxInventory:         3000,
		SKUVariants:          []string{"Cola", "Lemonade", "Orange Juice", "Iced Tea"},
	},
	{
		ID:                   "medicine",
		Name:                 "Medicine",
		Icon:                 "💊",
		CogsPerUnit:          45.00,
		RevenuePerUnit:       75.00,
		AnnualHoldingRate:    0.12,
		OrderingCost:         50,
		DemandScale:          4,
		BaseOrderQuantity:    50,
		BaseInitialInventory: 112,
		MaxInventory:         400,
		SKUVariants:          []string{"Regular", "Children's", "Night Time", "Extra Strength"},
	},
	{
		ID:                   "sofa",
		Name:                 "Sofa",
		Icon:                 "🛋️",
		CogsPerUnit:          120.00,
		RevenuePerUnit:       200.00,
		AnnualHoldingRate:    0.08,
		OrderingCost:         100,
		DemandScale:          1,
		BaseOrderQuantity:    10,
		BaseInitialInventory: 28,
		MaxInventory:         100,
		SKUVariants:          []string{"Grey 2-seater", "Blue 3-seater", "Green Corner", "Beige 3-seater"},
	},
}

// All returns every product profile in display order.
func All() []domain.ProductProfile {
	out := make([]domain.ProductProfile, len(profiles))
	copy(out, profiles)
	return out
}

// ByID looks up a profile by id.
func ByID(id string) (domain.ProductProfile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ProductProfile{}, false
}
