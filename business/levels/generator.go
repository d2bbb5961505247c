// Package levels builds the deterministic demand curves and event schedules
// for the demo's named scenarios.
package levels

import (
	"quiverArcade/domain"
)

const (
	// GameDuration is the length of every level in game-seconds; 12 seconds
	// map to one month, so a run covers a quarter.
	GameDuration    = 36.0
	SecondsPerMonth = 12.0

	// DefaultSeed generates the reference curves the grade thresholds were
	// calibrated against.
	DefaultSeed uint32 = 42

	campaignLeadTimeMultiplier = 1.5
	eventDuration              = 12.0
	eventDemandMultiplier      = 2.2
	campaignEventTime          = 14.0
	// skuSeedStride separates the per-SKU seeds on the multi-SKU level.
	skuSeedStride uint32 = 17
)

var multiSKUEventTimes = [2]float64{7, 20}

// bandLevel tags a 5-second stretch of the curve as high, medium or low
// demand.
type bandLevel string

const (
	bandHigh   bandLevel = "high"
	bandMedium bandLevel = "medium"
	bandLow    bandLevel = "low"
)

// bandRange holds the center-multiplier range and the per-second swing for a
// band level.
type bandRange struct {
	minCenter float64
	maxCenter float64
	swing     float64
}

var bandRanges = map[bandLevel]bandRange{
	bandHigh:   {minCenter: 3.5, maxCenter: 5.5, swing: 6.0},
	bandMedium: {minCenter: 1.8, maxCenter: 3.0, swing: 4.2},
	bandLow:    {minCenter: 0.4, maxCenter: 1.0, swing: 2.4},
}

// pattern names a band sequence shape.
type pattern string

const (
	patternStable     pattern = "stable"
	patternVariable   pattern = "variable"
	patternIncreasing pattern = "increasing"
)

var bandPatterns = map[pattern][]bandLevel{
	patternStable:     {bandMedium, bandHigh, bandLow, bandMedium, bandHigh, bandLow, bandMedium},
	patternVariable:   {bandLow, bandHigh, bandLow, bandHigh, bandLow, bandHigh, bandLow},
	patternIncreasing: {bandLow, bandLow, bandMedium, bandMedium, bandHigh, bandHigh, bandHigh},
}

// bandDurations covers the full 36 seconds: six 5-second bands plus a final
// 6-second band.
var bandDurations = []float64{5, 5, 5, 5, 5, 5, 6}

// generateDemandSegments builds 36 one-second segments from 7 demand bands
// with large per-second swings. Jumps between bands are deliberate; there is
// no smoothing. The same seed always yields the same segments.
func generateDemandSegments(baseRate float64, shape pattern, seed uint32) []domain.DemandSegment {
	rng := mulberry32(seed)
	bands := bandPatterns[shape]

	centers := make([]float64, len(bands))
	for i, level := range bands {
		r := bandRanges[level]
		centers[i] = r.minCenter + rng()*(r.maxCenter-r.minCenter)
	}

	segments := make([]domain.DemandSegment, 0, int(GameDuration))
	t := 0.0
	for b, level := range bands {
		r := bandRanges[level]
		for s := 0; s < int(bandDurations[b]); s++ {
			swing := (rng()*2 - 1) * r.swing
			multiplier := centers[b] + swing
			if multiplier < 0.3 {
				multiplier = 0.3
			}

			segments = append(segments, domain.DemandSegment{
				StartTime: t,
				EndTime:   t + 1,
				BaseRate:  baseRate * multiplier,
			})
			t++
		}
	}

	return segments
}
