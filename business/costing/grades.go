package costing

import "quiverArcade/domain"

// gradeCeilings holds the ascending cost ceilings for grades A through D.
// Cost above the D ceiling is an F.
type gradeCeilings struct {
	A, B, C, D float64
}

// gradeThresholds is calibrated per product and level against the reference
// demand curves; an unmanaged run always lands above the A ceiling.
var gradeThresholds = map[string]map[string]gradeCeilings{
	"protein-bar": {
		"level-1":        {A: 950, B: 1150, C: 1350, D: 1550},
		"level-2":        {A: 1100, B: 1300, C: 1500, D: 1700},
		"level-3":        {A: 8600, B: 9000, C: 10000, D: 11000},
		"level-3-quiver": {A: 8600, B: 9000, C: 10000, D: 11000},
	},
	"medicine": {
		"level-1":        {A: 2100, B: 2300, C: 2500, D: 2700},
		"level-2":        {A: 2500, B: 2700, C: 2900, D: 3100},
		"level-3":        {A: 16000, B: 17200, C: 18400, D: 20600},
		"level-3-quiver": {A: 16000, B: 17200, C: 18400, D: 20600},
	},
	"sofa": {
		"level-1":        {A: 1400, B: 1600, C: 1800, D: 2000},
		"level-2":        {A: 1500, B: 1700, C: 1900, D: 2100},
		"level-3":        {A: 11700, B: 12900, C: 13100, D: 13300},
		"level-3-quiver": {A: 11700, B: 12900, C: 13100, D: 13300},
	},
}

const fallbackProduct = "protein-bar"
const fallbackLevel = "level-1"

// CalculateGrade maps total cost to a letter grade using the product- and
// level-specific ceilings. Costs exactly at a ceiling take the better grade.
func CalculateGrade(totalCost float64, levelID, productID string) domain.Grade {
	byLevel, ok := gradeThresholds[productID]
	if !ok {
		byLevel = gradeThresholds[fallbackProduct]
	}
	ceilings, ok := byLevel[levelID]
	if !ok {
		ceilings = byLevel[fallbackLevel]
	}

	switch {
	case totalCost <= ceilings.A:
		return domain.GradeA
	case totalCost <= ceilings.B:
		return domain.GradeB
	case totalCost <= ceilings.C:
		return domain.GradeC
	case totalCost <= ceilings.D:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}
