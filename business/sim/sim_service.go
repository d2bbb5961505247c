// Package sim implements the tick engine and order book of the inventory
// simulation. Every transition takes a state value and returns a new one;
// nothing is mutated in place, so runs are deterministic and replayable.
package sim

import (
	"math"

	"quiverArcade/business/costing"
	"quiverArcade/business/demand"
	"quiverArcade/domain"
)

// NewGame returns the initial state for a fresh session.
func NewGame() domain.GameState {
	return domain.GameState{
		Status:      domain.StatusMenu,
		SKUStates:   []domain.SKUState{},
		LevelScores: []domain.LevelScore{},
	}
}

// SelectProduct records the chosen product and moves to the select screen
// flow.
func SelectProduct(state domain.GameState, product domain.ProductProfile) domain.GameState {
	next := state
	next.SelectedProduct = &product
	next.Status = domain.StatusProductSelect
	return next
}

// Start begins a level run: time zero, fresh SKU states, empty order queues.
// Completed level scores from earlier runs in the session are preserved.
func Start(state domain.GameState, level domain.LevelConfig, product domain.ProductProfile) domain.GameState {
	skuStates := make([]domain.SKUState, len(level.SKUs))
	for i, sku := range level.SKUs {
		skuStates[i] = newSKUState(sku)
	}

	status := domain.StatusPlaying
	if level.QuiverAutoPlay {
		status = domain.StatusQuiverDemo
	}

	next := state
	next.Status = status
	next.Time = 0
	next.Level = &level
	next.SKUStates = skuStates
	next.SelectedProduct = &product
	next.QuiverEnabled = state.QuiverEnabled || level.QuiverEnabled || level.QuiverAutoPlay
	return next
}

// EnableQuiver turns the autonomous reorder policy on for the rest of the
// session.
func EnableQuiver(state domain.GameState) domain.GameState {
	next := state
	next.QuiverEnabled = true
	return next
}

// EffectiveLeadTime resolves a SKU's lead time against the level-wide
// multiplier.
func EffectiveLeadTime(sku domain.SKUConfig, level domain.LevelConfig) float64 {
	base := sku.LeadTime
	if base <= 0 {
		base = BaseLeadTime
	}
	return base * level.LeadTimeMultiplier
}

func newSKUState(sku domain.SKUConfig) domain.SKUState {
	return domain.SKUState{
		SKUID:            sku.ID,
		Inventory:        sku.InitialInventory,
		PendingOrders:    []domain.PendingOrder{},
		InventoryHistory: []domain.Point{{Time: 0, Inventory: sku.InitialInventory}},
		LastOrderTime:    lastOrderSentinel,
	}
}

// Tick advances the simulation by delta game-seconds. A tick that reaches
// the level duration clamps time, appends the final LevelScore and ends the
// run without processing SKUs. Non-positive deltas and ticks on a finished
// run are no-ops.
func Tick(state domain.GameState, delta float64, level domain.LevelConfig, product domain.ProductProfile) domain.GameState {
	if !state.Status.IsPlaying() || delta <= 0 {
		return state
	}

	newTime := state.Time + delta

	if newTime >= level.Duration {
		score := costing.CalculateLevelScore(level.ID, state.SKUStates, product.ID)

		next := state
		next.Time = level.Duration
		next.LevelScores = append(copyScores(state.LevelScores), score)
		if state.Status == domain.StatusQuiverDemo {
			next.Status = domain.StatusSummary
		} else {
			next.Status = domain.StatusEnded
		}
		return next
	}

	skuStates := make([]domain.SKUState, len(state.SKUStates))
	for i, skuState := range state.SKUStates {
		skuStates[i] = tickSKU(skuState, level.SKUs[i], level, product, newTime, delta)
	}

	next := state
	next.Time = newTime
	next.SKUStates = skuStates
	return next
}

// tickSKU applies one tick to a single SKU: order arrivals first, then
// demand consumption and cost accrual, then history thinning.
func tickSKU(skuState domain.SKUState, sku domain.SKUConfig, level domain.LevelConfig, product domain.ProductProfile, newTime, delta float64) domain.SKUState {
	inventory := skuState.Inventory
	remaining := make([]domain.PendingOrder, 0, len(skuState.PendingOrders))
	for _, order := range skuState.PendingOrders {
		if order.ArrivalTime <= newTime {
			inventory = math.Min(inventory+order.Quantity, product.MaxInventory)
		} else {
			remaining = append(remaining, order)
		}
	}

	rate := demand.RateAt(sku, newTime)
	eventActive := false
	if event, ok := level.EventFor(sku); ok {
		if newTime >= event.TriggerTime && newTime < event.TriggerTime+event.Duration {
			rate *= event.DemandMultiplier
			eventActive = true
		}
	}

	tick := costing.CalculateTickCosts(inventory, rate, delta, product)

	history := skuState.InventoryHistory
	if last := history[len(history)-1]; newTime-last.Time >= historySampleSpacing {
		history = append(copyHistory(history), domain.Point{Time: newTime, Inventory: tick.NewInventory})
	}

	next := skuState
	next.Inventory = tick.NewInventory
	next.PendingOrders = remaining
	next.InventoryHistory = history
	next.TotalHoldingCost = skuState.TotalHoldingCost + tick.HoldingCost
	next.TotalStockoutCost = skuState.TotalStockoutCost + tick.StockoutCost
	next.IsStockout = tick.NewInventory == 0 && rate > 0
	next.MarketingEventActive = eventActive
	return next
}

// PlaceOrder places a manual (human-triggered) order for the SKU. Rejections
// return the state unchanged: an auto-play level, unknown SKU, breach of the
// soft inventory ceiling, the 1-second cooldown, or the pending-order cap.
func PlaceOrder(state domain.GameState, skuID string, product domain.ProductProfile) domain.GameState {
	return placeOrder(state, skuID, product, true)
}

// PlacePolicyOrder places an order on behalf of the autonomous policy. Only
// the soft ceiling applies; the policy carries its own guards.
func PlacePolicyOrder(state domain.GameState, skuID string, product domain.ProductProfile) domain.GameState {
	return placeOrder(state, skuID, product, false)
}

func placeOrder(state domain.GameState, skuID string, product domain.ProductProfile, manual bool) domain.GameState {
	if !state.Status.IsPlaying() || state.Level == nil {
		return state
	}

	index := -1
	for i, skuState := range state.SKUStates {
		if skuState.SKUID == skuID {
			index = i
			break
		}
	}
	if index == -1 {
		return state
	}

	skuState := state.SKUStates[index]
	sku := state.Level.SKUs[index]

	if manual {
		if state.Level.QuiverAutoPlay {
			return state
		}
		if state.Time-skuState.LastOrderTime < ManualOrderCooldown {
			return state
		}
		if len(skuState.PendingOrders) >= MaxPendingOrders {
			return state
		}
	}

	projected := skuState.Inventory + skuState.PendingQuantity() + sku.OrderQuantity
	if projected > product.MaxInventory*softCeilingFactor {
		return state
	}

	order := domain.PendingOrder{
		ID:          skuState.OrderID + 1,
		Quantity:    sku.OrderQuantity,
		ArrivalTime: state.Time + EffectiveLeadTime(sku, *state.Level),
		PlacedAt:    state.Time,
	}

	nextSKU := skuState
	nextSKU.PendingOrders = append(copyOrders(skuState.PendingOrders), order)
	nextSKU.LastOrderTime = state.Time
	nextSKU.OrderID = skuState.OrderID + 1
	nextSKU.OrderCount = skuState.OrderCount + 1
	nextSKU.TotalOrderingCost = skuState.TotalOrderingCost + product.OrderingCost

	skuStates := make([]domain.SKUState, len(state.SKUStates))
	copy(skuStates, state.SKUStates)
	skuStates[index] = nextSKU

	next := state
	next.SKUStates = skuStates
	return next
}

// TotalOrderCount sums the orders placed so far across every SKU.
func TotalOrderCount(state domain.GameState) int {
	total := 0
	for _, skuState := range state.SKUStates {
		total += skuState.OrderCount
	}
	return total
}

func copyOrders(orders []domain.PendingOrder) []domain.PendingOrder {
	out := make([]domain.PendingOrder, len(orders))
	copy(out, orders)
	return out
}

func copyHistory(points []domain.Point) []domain.Point {
	out := make([]domain.Point, len(points))
	copy(out, points)
	return out
}

func copyScores(scores []domain.LevelScore) []domain.LevelScore {
	out := make([]domain.LevelScore, len(scores))
	copy(out, scores)
	return out
}
