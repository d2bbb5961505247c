package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiverArcade/domain"
)

func threeSegmentSKU() domain.SKUConfig {
	return domain.SKUConfig{
		ID: "sku-1",
		DemandSegments: []domain.DemandSegment{
			{StartTime: 0, EndTime: 12, BaseRate: 5},
			{StartTime: 12, EndTime: 24, BaseRate: 12},
			{StartTime: 24, EndTime: 36, BaseRate: 6},
		},
		MarketingEventIndex: domain.NoEvent,
	}
}

func TestRateAt(t *testing.T) {
	sku := threeSegmentSKU()

	assert.Equal(t, 5.0, RateAt(sku, 0))
	assert.Equal(t, 5.0, RateAt(sku, 11.999))
	assert.Equal(t, 12.0, RateAt(sku, 12))
	assert.Equal(t, 6.0, RateAt(sku, 35))

	// Past the last segment the rate extrapolates.
	assert.Equal(t, 6.0, RateAt(sku, 36))
	assert.Equal(t, 6.0, RateAt(sku, 100))
}

func TestRateAtGapsAndEmpty(t *testing.T) {
	assert.Zero(t, RateAt(domain.SKUConfig{}, 5))

	gapped := domain.SKUConfig{
		DemandSegments: []domain.DemandSegment{
			{StartTime: 10, EndTime: 20, BaseRate: 3},
		},
		MarketingEventIndex: domain.NoEvent,
	}
	assert.Zero(t, RateAt(gapped, 5), "before the first segment there is no demand")
	assert.Equal(t, 3.0, RateAt(gapped, 15))
}

func TestBetween(t *testing.T) {
	sku := threeSegmentSKU()

	assert.InDelta(t, 5*12.0, Between(sku, 0, 12), 1e-9)
	assert.InDelta(t, 5*2+12*3.0, Between(sku, 10, 15), 1e-9)

	// Degenerate intervals are zero, never an error.
	assert.Zero(t, Between(sku, 15, 15))
	assert.Zero(t, Between(sku, 20, 10))
}

func TestBetweenAdditivity(t *testing.T) {
	sku := threeSegmentSKU()

	times := []struct{ t0, t1, t2 float64 }{
		{0, 12, 36},
		{3.3, 17.1, 29.9},
		{0, 0.5, 1},
		{11.9, 12, 12.1},
	}

	for _, tc := range times {
		whole := Between(sku, tc.t0, tc.t2)
		split := Between(sku, tc.t0, tc.t1) + Between(sku, tc.t1, tc.t2)
		assert.InDelta(t, whole, split, 1e-9)
	}
}

func eventLevel(sku domain.SKUConfig) domain.LevelConfig {
	return domain.LevelConfig{
		Duration: 36,
		SKUs:     []domain.SKUConfig{sku},
		MarketingEvents: []domain.MarketingEvent{
			{TriggerTime: 10, Duration: 10, DemandMultiplier: 2.0, Label: "Marketing Campaign", NotifyTime: 10},
		},
	}
}

func TestEffectiveRatePartsNoEvent(t *testing.T) {
	sku := threeSegmentSKU()
	level := eventLevel(sku)

	parts := EffectiveRateParts(5, 0, 8, sku, level)
	require.Len(t, parts, 1)
	assert.Equal(t, RatePart{Rate: 5, Duration: 8}, parts[0])
}

func TestEffectiveRatePartsSplitsAroundEvent(t *testing.T) {
	sku := threeSegmentSKU()
	sku.MarketingEventIndex = 0
	level := eventLevel(sku)

	// Window straddles the event start: before/during parts.
	parts := EffectiveRateParts(5, 8, 14, sku, level)
	require.Len(t, parts, 2)
	assert.Equal(t, RatePart{Rate: 5, Duration: 2}, parts[0])
	assert.Equal(t, RatePart{Rate: 10, Duration: 4}, parts[1])

	// Window contains the whole event: three parts, exact coverage.
	parts = EffectiveRateParts(5, 5, 25, sku, level)
	require.Len(t, parts, 3)
	total := 0.0
	for _, part := range parts {
		total += part.Duration
	}
	assert.InDelta(t, 20.0, total, 1e-9)
	assert.Equal(t, 10.0, parts[1].Rate)

	// Window entirely inside the event.
	parts = EffectiveRateParts(5, 12, 18, sku, level)
	require.Len(t, parts, 1)
	assert.Equal(t, RatePart{Rate: 10, Duration: 6}, parts[0])
}

func TestForecastBetweenAppliesMultiplierOnlyInsideEvent(t *testing.T) {
	sku := threeSegmentSKU()
	sku.MarketingEventIndex = 0
	level := eventLevel(sku)

	// [8, 12): two seconds at base 5, two at doubled 10.
	assert.InDelta(t, 5*2+10*2.0, ForecastBetween(sku, level, 8, 12), 1e-9)

	// Outside the event the forecast matches the base integral.
	assert.InDelta(t, Between(sku, 0, 8), ForecastBetween(sku, level, 0, 8), 1e-9)

	assert.Zero(t, ForecastBetween(sku, level, 12, 12))
}

func TestTotalLevelDemand(t *testing.T) {
	sku := threeSegmentSKU()
	assert.InDelta(t, 5*12+12*12+6*12.0, TotalLevelDemand(sku.DemandSegments), 1e-9)
}
