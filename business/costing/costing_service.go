// Package costing implements the per-tick cost model and end-of-level
// scoring for the simulation.
package costing

import (
	"math"

	"quiverArcade/domain"
)

// BaseScore is the score awarded for a zero-cost run.
const BaseScore = 1000

// yearFraction converts the annual holding rate to the game's fixed
// time scale (one run covers a quarter). The grade thresholds below were
// calibrated against this conversion.
const yearFraction = 0.25

// TickCost is the outcome of applying one tick's demand to an inventory
// level.
type TickCost struct {
	HoldingCost  float64
	StockoutCost float64
	NewInventory float64
	UnmetDemand  float64
}

// HoldingCostPerSecond returns the per-unit holding cost for one game-second.
func HoldingCostPerSecond(product domain.ProductProfile) float64 {
	return product.CogsPerUnit * product.AnnualHoldingRate * yearFraction
}

// CalculateTickCosts applies demand `rate × dt` to the given inventory.
// When inventory covers the demand, holding cost is charged on the full
// pre-tick inventory. On stockout, holding cost is charged on the average
// inventory during linear depletion and unmet demand is penalized at the
// product margin. The boundary inventory == demand never charges stockout.
func CalculateTickCosts(inventory, rate, dt float64, product domain.ProductProfile) TickCost {
	demand := rate * dt
	holdingPerSecond := HoldingCostPerSecond(product)

	if inventory >= demand {
		return TickCost{
			HoldingCost:  inventory * holdingPerSecond * dt,
			NewInventory: inventory - demand,
		}
	}

	unmet := demand - inventory
	return TickCost{
		HoldingCost:  (inventory / 2) * holdingPerSecond * dt,
		StockoutCost: unmet * product.Margin(),
		NewInventory: 0,
		UnmetDemand:  unmet,
	}
}

// CalculateScore maps total cost to a non-negative score.
func CalculateScore(totalCost float64) float64 {
	return math.Max(0, BaseScore-totalCost)
}

// CalculateLevelScore aggregates all SKU costs into the final level result.
func CalculateLevelScore(levelID string, skuStates []domain.SKUState, productID string) domain.LevelScore {
	holding := 0.0
	stockout := 0.0
	ordering := 0.0
	for _, sku := range skuStates {
		holding += sku.TotalHoldingCost
		stockout += sku.TotalStockoutCost
		ordering += sku.TotalOrderingCost
	}
	total := holding + stockout + ordering

	return domain.LevelScore{
		LevelID:           levelID,
		TotalHoldingCost:  holding,
		TotalStockoutCost: stockout,
		TotalOrderingCost: ordering,
		TotalCost:         total,
		Score:             CalculateScore(total),
		Grade:             CalculateGrade(total, levelID, productID),
	}
}
