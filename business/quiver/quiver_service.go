// Package quiver implements the autonomous reorder policy ("Quiver Engine").
//
// The engine is forecast-aware: it projects on-hand inventory forward to the
// moment an order placed now would arrive, using the actual demand segments
// plus marketing-event multipliers, and orders when that projection falls to
// or below the reorder point.
//
//  1. Predicted demand = forecast from now to now + leadTime
//  2. Arriving orders  = pending orders arriving before now + leadTime
//  3. Predicted inventory = on-hand - predicted demand + arriving orders
//  4. Safety stock = z × σ × √(leadTime), z = 1.65 (95% service level)
//  5. Reorder point = (leadTimeDemand + safetyStock) × ropScale
package quiver

import (
	"math"

	"quiverArcade/business/demand"
	"quiverArcade/business/sim"
	"quiverArcade/domain"
)

// serviceZ is the one-sided z value for a 95% service level.
const serviceZ = 1.65

// ropScale reconciles the quarter-vs-run time scale baked into the reference
// demand curves. The grade thresholds were calibrated against this literal;
// do not re-derive it.
const ropScale = 0.25

// AverageDemandRate is the SKU's demand averaged over the whole level, with
// event windows weighted at their multiplied rate.
func AverageDemandRate(sku domain.SKUConfig, level domain.LevelConfig) float64 {
	if level.Duration <= 0 {
		return 0
	}

	total := 0.0
	for _, segment := range sku.DemandSegments {
		segEnd := math.Min(segment.EndTime, level.Duration)
		if segEnd <= segment.StartTime {
			continue
		}
		for _, part := range demand.EffectiveRateParts(segment.BaseRate, segment.StartTime, segEnd, sku, level) {
			total += part.Rate * part.Duration
		}
	}

	return total / level.Duration
}

// DemandStdDev is the duration-weighted standard deviation of the effective
// demand rate across the level.
func DemandStdDev(sku domain.SKUConfig, level domain.LevelConfig) float64 {
	avg := AverageDemandRate(sku, level)

	sumSquares := 0.0
	weight := 0.0
	for _, segment := range sku.DemandSegments {
		segEnd := math.Min(segment.EndTime, level.Duration)
		if segEnd <= segment.StartTime {
			continue
		}
		for _, part := range demand.EffectiveRateParts(segment.BaseRate, segment.StartTime, segEnd, sku, level) {
			diff := part.Rate - avg
			sumSquares += diff * diff * part.Duration
			weight += part.Duration
		}
	}

	if weight <= 0 {
		return 0
	}
	return math.Sqrt(sumSquares / weight)
}

// SafetyStock buffers against demand variability over the lead time.
func SafetyStock(stdDev, effectiveLeadTime float64) float64 {
	return serviceZ * stdDev * math.Sqrt(effectiveLeadTime)
}

// PredictInventoryAt projects on-hand inventory to targetTime: current stock
// minus the demand forecast plus every pending order arriving by then.
// Clamped at zero since stock cannot go negative.
func PredictInventoryAt(skuState domain.SKUState, sku domain.SKUConfig, level domain.LevelConfig, now, targetTime float64) float64 {
	forecast := demand.ForecastBetween(sku, level, now, targetTime)

	arriving := 0.0
	for _, order := range skuState.PendingOrders {
		if order.ArrivalTime <= targetTime {
			arriving += order.Quantity
		}
	}

	return math.Max(0, skuState.Inventory-forecast+arriving)
}

// ShouldOrder decides whether the policy places an order for this SKU right
// now. It never orders when the run is not playing or when the order could
// not arrive before the level ends.
func ShouldOrder(state domain.GameState, skuState domain.SKUState, sku domain.SKUConfig, level domain.LevelConfig) bool {
	if !state.Status.IsPlaying() {
		return false
	}

	leadTime := sim.EffectiveLeadTime(sku, level)
	if state.Time+leadTime > level.Duration {
		return false
	}

	stdDev := DemandStdDev(sku, level)
	safetyStock := SafetyStock(stdDev, leadTime)
	leadTimeDemand := AverageDemandRate(sku, level) * leadTime
	reorderPoint := (leadTimeDemand + safetyStock) * ropScale

	predicted := PredictInventoryAt(skuState, sku, level, state.Time, state.Time+leadTime)

	return predicted <= reorderPoint
}

// MetricsFor exposes the policy internals for the demo display. Everything
// is recomputed fresh: pending orders and time change every tick.
func MetricsFor(state domain.GameState, skuID string, level domain.LevelConfig) (domain.QuiverMetrics, bool) {
	index := -1
	for i, skuState := range state.SKUStates {
		if skuState.SKUID == skuID {
			index = i
			break
		}
	}
	if index == -1 || index >= len(level.SKUs) {
		return domain.QuiverMetrics{}, false
	}

	skuState := state.SKUStates[index]
	sku := level.SKUs[index]

	leadTime := sim.EffectiveLeadTime(sku, level)
	stdDev := DemandStdDev(sku, level)
	safetyStock := SafetyStock(stdDev, leadTime)
	leadTimeDemand := AverageDemandRate(sku, level) * leadTime

	return domain.QuiverMetrics{
		SafetyStock:        safetyStock,
		LeadTimeDemand:     leadTimeDemand,
		ReorderPoint:       (leadTimeDemand + safetyStock) * ropScale,
		InventoryPosition:  skuState.InventoryPosition(),
		PredictedInventory: PredictInventoryAt(skuState, sku, level, state.Time, state.Time+leadTime),
		ShouldOrder:        ShouldOrder(state, skuState, sku, level),
	}, true
}

// OrdersToPlace returns the ids of every SKU the policy wants to order for,
// at most one per SKU per invocation.
func OrdersToPlace(state domain.GameState, level domain.LevelConfig) []string {
	if !state.Status.IsPlaying() {
		return nil
	}

	var skuIDs []string
	for i, skuState := range state.SKUStates {
		if ShouldOrder(state, skuState, level.SKUs[i], level) {
			skuIDs = append(skuIDs, skuState.SKUID)
		}
	}
	return skuIDs
}

// Apply runs one policy pass against the post-tick state, placing every
// order the engine calls for. A just-placed order raises the predicted
// inventory, so the same pass never doubles up on a SKU.
func Apply(state domain.GameState, level domain.LevelConfig, product domain.ProductProfile) domain.GameState {
	for _, skuID := range OrdersToPlace(state, level) {
		state = sim.PlacePolicyOrder(state, skuID, product)
	}
	return state
}
