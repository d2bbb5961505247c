package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quiverArcade/domain"
)

func drink() domain.ProductProfile {
	return domain.ProductProfile{
		ID:                "protein-bar",
		CogsPerUnit:       1.50,
		RevenuePerUnit:    3.00,
		AnnualHoldingRate: 0.16,
		OrderingCost:      25,
	}
}

func TestHoldingCostPerSecond(t *testing.T) {
	assert.InDelta(t, 1.50*0.16*0.25, HoldingCostPerSecond(drink()), 1e-12)
}

func TestTickCostsNormalOperation(t *testing.T) {
	tick := CalculateTickCosts(100, 4, 0.25, drink())

	assert.Equal(t, 99.0, tick.NewInventory)
	assert.Zero(t, tick.StockoutCost)
	assert.Zero(t, tick.UnmetDemand)
	assert.InDelta(t, 100*HoldingCostPerSecond(drink())*0.25, tick.HoldingCost, 1e-12)
}

func TestTickCostsConservation(t *testing.T) {
	// With exactly representable demand the balance holds to the bit.
	tick := CalculateTickCosts(100, 4, 0.25, drink())
	consumed := 4 * 0.25
	assert.Equal(t, 100.0, tick.NewInventory+consumed)
}

func TestTickCostsStockoutBoundary(t *testing.T) {
	// inventory == demand takes the normal branch: no stockout charge,
	// holding on the full pre-tick inventory.
	tick := CalculateTickCosts(10, 10, 1, drink())

	assert.Zero(t, tick.StockoutCost)
	assert.Zero(t, tick.UnmetDemand)
	assert.Zero(t, tick.NewInventory)
	assert.InDelta(t, 10*HoldingCostPerSecond(drink()), tick.HoldingCost, 1e-12)
}

func TestTickCostsStockoutBranch(t *testing.T) {
	tick := CalculateTickCosts(5, 10, 1, drink())

	assert.Equal(t, 5.0, tick.UnmetDemand)
	assert.InDelta(t, 7.50, tick.StockoutCost, 1e-12)
	assert.Zero(t, tick.NewInventory)
	// Holding charged on the average inventory during depletion.
	assert.InDelta(t, 2.5*HoldingCostPerSecond(drink()), tick.HoldingCost, 1e-12)
}

func TestCalculateScoreFloorsAtZero(t *testing.T) {
	assert.Equal(t, float64(BaseScore), CalculateScore(0))
	assert.Equal(t, 600.0, CalculateScore(400))
	assert.Zero(t, CalculateScore(5000))
}

func TestCalculateGradeBoundaries(t *testing.T) {
	// protein-bar level-1 ceilings: A 950, B 1150, C 1350, D 1550.
	assert.Equal(t, domain.GradeA, CalculateGrade(0, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeA, CalculateGrade(950, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeB, CalculateGrade(950.01, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeB, CalculateGrade(1150, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeC, CalculateGrade(1350, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeD, CalculateGrade(1550, "level-1", "protein-bar"))
	assert.Equal(t, domain.GradeF, CalculateGrade(1550.01, "level-1", "protein-bar"))
}

func TestCalculateGradeMonotonicity(t *testing.T) {
	order := map[domain.Grade]int{
		domain.GradeA: 0, domain.GradeB: 1, domain.GradeC: 2, domain.GradeD: 3, domain.GradeF: 4,
	}

	previous := domain.GradeA
	for cost := 0.0; cost <= 3000; cost += 10 {
		grade := CalculateGrade(cost, "level-2", "medicine")
		assert.GreaterOrEqual(t, order[grade], order[previous], "grade must not improve as cost rises (cost=%v)", cost)
		previous = grade
	}
}

func TestCalculateGradeUnknownIDsFallBack(t *testing.T) {
	assert.Equal(t, domain.GradeA, CalculateGrade(900, "level-1", "no-such-product"))
	assert.Equal(t, domain.GradeA, CalculateGrade(900, "no-such-level", "protein-bar"))
}

func TestCalculateLevelScoreAggregates(t *testing.T) {
	states := []domain.SKUState{
		{TotalHoldingCost: 100, TotalStockoutCost: 50, TotalOrderingCost: 25},
		{TotalHoldingCost: 200, TotalStockoutCost: 0, TotalOrderingCost: 75},
	}

	score := CalculateLevelScore("level-1", states, "protein-bar")

	assert.Equal(t, "level-1", score.LevelID)
	assert.Equal(t, 300.0, score.TotalHoldingCost)
	assert.Equal(t, 50.0, score.TotalStockoutCost)
	assert.Equal(t, 100.0, score.TotalOrderingCost)
	assert.Equal(t, 450.0, score.TotalCost)
	assert.Equal(t, 550.0, score.Score)
	assert.Equal(t, domain.GradeA, score.Grade)
}
