package domain

// GameStatus drives the screen flow of the demo shell. The simulation core
// only cares whether a status is a playing status.
type GameStatus string

const (
	StatusMenu          GameStatus = "menu"
	StatusProductSelect GameStatus = "product-select"
	StatusPlaying       GameStatus = "playing"
	StatusQuiverDemo    GameStatus = "quiver-demo"
	StatusEnded         GameStatus = "ended"
	StatusSummary       GameStatus = "summary"
)

// IsPlaying reports whether the simulation should advance on ticks.
func (s GameStatus) IsPlaying() bool {
	return s == StatusPlaying || s == StatusQuiverDemo
}

// Point is one (time, inventory) sample in a SKU's history.
type Point struct {
	Time      float64 `json:"time"`
	Inventory float64 `json:"inventory"`
}

// PendingOrder is a replenishment order that has been placed but not arrived.
type PendingOrder struct {
	ID          int     `json:"id"`
	Quantity    float64 `json:"quantity"`
	ArrivalTime float64 `json:"arrival_time"`
	PlacedAt    float64 `json:"placed_at"`
}

// SKUState is the mutable per-SKU runtime state. It is mutated exactly once
// per tick and once per order placement, and never shared between SKUs.
type SKUState struct {
	SKUID                string         `json:"sku_id"`
	Inventory            float64        `json:"inventory"`
	PendingOrders        []PendingOrder `json:"pending_orders"`
	InventoryHistory     []Point        `json:"inventory_history"`
	TotalHoldingCost     float64        `json:"total_holding_cost"`
	TotalStockoutCost    float64        `json:"total_stockout_cost"`
	TotalOrderingCost    float64        `json:"total_ordering_cost"`
	OrderCount           int            `json:"order_count"`
	LastOrderTime        float64        `json:"last_order_time"`
	OrderID              int            `json:"order_id"`
	IsStockout           bool           `json:"is_stockout"`
	MarketingEventActive bool           `json:"marketing_event_active"`
}

// PendingQuantity sums the quantities of all outstanding orders.
func (s SKUState) PendingQuantity() float64 {
	total := 0.0
	for _, order := range s.PendingOrders {
		total += order.Quantity
	}
	return total
}

// InventoryPosition is on-hand inventory plus everything on order.
func (s SKUState) InventoryPosition() float64 {
	return s.Inventory + s.PendingQuantity()
}

// GameState is the full simulation state for one session. Transitions return
// new values rather than mutating, so states can be replayed and diffed in
// tests.
type GameState struct {
	Status          GameStatus      `json:"status"`
	Time            float64         `json:"time"`
	Level           *LevelConfig    `json:"level,omitempty"`
	SKUStates       []SKUState      `json:"sku_states"`
	QuiverEnabled   bool            `json:"quiver_enabled"`
	SelectedProduct *ProductProfile `json:"selected_product,omitempty"`
	LevelScores     []LevelScore    `json:"level_scores"`
}
