// Package demand converts a SKU's piecewise demand curve into instantaneous
// rates and integrated demand over intervals, with optional marketing-event
// overlays.
package demand

import (
	"quiverArcade/domain"
)

// RateAt returns the instantaneous base demand rate at time t, ignoring
// marketing events. Queries past the last segment extrapolate its rate; gaps
// and pre-curve queries yield zero.
func RateAt(sku domain.SKUConfig, t float64) float64 {
	segments := sku.DemandSegments
	if len(segments) == 0 {
		return 0
	}

	for _, segment := range segments {
		if t >= segment.StartTime && t < segment.EndTime {
			return segment.BaseRate
		}
	}

	last := segments[len(segments)-1]
	if t >= last.EndTime {
		return last.BaseRate
	}

	return 0
}

// Between integrates the base demand rate over [t0, t1). Degenerate intervals
// (t0 >= t1) contribute nothing.
func Between(sku domain.SKUConfig, t0, t1 float64) float64 {
	if t0 >= t1 {
		return 0
	}

	total := 0.0
	for _, segment := range sku.DemandSegments {
		overlapStart := max(t0, segment.StartTime)
		overlapEnd := min(t1, segment.EndTime)
		if overlapStart < overlapEnd {
			total += (overlapEnd - overlapStart) * segment.BaseRate
		}
	}

	return total
}

// RatePart is a constant-rate stretch of time inside a segment, after
// marketing-event overlays have been applied.
type RatePart struct {
	Rate     float64
	Duration float64
}

// EffectiveRateParts splits the window [start, end) at the boundaries of the
// SKU's linked marketing event, multiplying the rate inside the event window.
// The parts always cover the window exactly, with no double counting.
func EffectiveRateParts(baseRate, start, end float64, sku domain.SKUConfig, level domain.LevelConfig) []RatePart {
	event, ok := level.EventFor(sku)
	if !ok {
		return []RatePart{{Rate: baseRate, Duration: end - start}}
	}

	evStart := event.TriggerTime
	evEnd := event.TriggerTime + event.Duration

	if evEnd <= start || evStart >= end {
		return []RatePart{{Rate: baseRate, Duration: end - start}}
	}

	overlapStart := max(start, evStart)
	overlapEnd := min(end, evEnd)

	parts := make([]RatePart, 0, 3)
	if overlapStart > start {
		parts = append(parts, RatePart{Rate: baseRate, Duration: overlapStart - start})
	}
	parts = append(parts, RatePart{Rate: baseRate * event.DemandMultiplier, Duration: overlapEnd - overlapStart})
	if overlapEnd < end {
		parts = append(parts, RatePart{Rate: baseRate, Duration: end - overlapEnd})
	}

	return parts
}

// ForecastBetween integrates demand over [t0, t1) with the SKU's marketing
// event multiplier applied inside the event window.
func ForecastBetween(sku domain.SKUConfig, level domain.LevelConfig, t0, t1 float64) float64 {
	if t0 >= t1 {
		return 0
	}

	total := 0.0
	for _, segment := range sku.DemandSegments {
		overlapStart := max(segment.StartTime, t0)
		overlapEnd := min(segment.EndTime, t1)
		if overlapEnd <= overlapStart {
			continue
		}

		for _, part := range EffectiveRateParts(segment.BaseRate, overlapStart, overlapEnd, sku, level) {
			total += part.Rate * part.Duration
		}
	}

	return total
}

// TotalLevelDemand sums the base demand of a full curve; used when sizing
// initial inventory for generated levels.
func TotalLevelDemand(segments []domain.DemandSegment) float64 {
	total := 0.0
	for _, segment := range segments {
		total += (segment.EndTime - segment.StartTime) * segment.BaseRate
	}
	return total
}
