package domain

// Grade is the A-F letter grade derived from total cost.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// LevelScore is the immutable end-of-level cost summary.
type LevelScore struct {
	LevelID           string  `json:"level_id"`
	TotalHoldingCost  float64 `json:"total_holding_cost"`
	TotalStockoutCost float64 `json:"total_stockout_cost"`
	TotalOrderingCost float64 `json:"total_ordering_cost"`
	TotalCost         float64 `json:"total_cost"`
	Score             float64 `json:"score"`
	Grade             Grade   `json:"grade"`
}

// QuiverMetrics exposes the reorder policy's intermediate quantities for the
// demo display. Recomputed fresh on every query since pending orders and time
// change every tick.
type QuiverMetrics struct {
	SafetyStock        float64 `json:"safety_stock"`
	LeadTimeDemand     float64 `json:"lead_time_demand"`
	ReorderPoint       float64 `json:"reorder_point"`
	InventoryPosition  float64 `json:"inventory_position"`
	PredictedInventory float64 `json:"predicted_inventory"`
	ShouldOrder        bool    `json:"should_order"`
}
