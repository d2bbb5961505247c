package domain

// ProductProfile holds the immutable economic parameters of a demo product.
// Profiles are defined statically at startup and never mutated.
type ProductProfile struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Icon                 string   `json:"icon"`
	CogsPerUnit          float64  `json:"cogs_per_unit"`
	RevenuePerUnit       float64  `json:"revenue_per_unit"`
	AnnualHoldingRate    float64  `json:"annual_holding_rate"`
	OrderingCost         float64  `json:"ordering_cost"`
	DemandScale          float64  `json:"demand_scale"`
	BaseOrderQuantity    float64  `json:"base_order_quantity"`
	BaseInitialInventory float64  `json:"base_initial_inventory"`
	MaxInventory         float64  `json:"max_inventory"`
	SKUVariants          []string `json:"sku_variants"`
}

// Margin is the per-unit lost margin charged on unmet demand.
func (p ProductProfile) Margin() float64 {
	return p.RevenuePerUnit - p.CogsPerUnit
}
