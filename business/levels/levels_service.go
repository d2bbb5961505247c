package levels

import (
	"quiverArcade/domain"
)

// Level ids as the shell and grading table know them.
const (
	BaselineID   = "level-1"
	CampaignID   = "level-2"
	MultiSKUID   = "level-3"
	QuiverDemoID = "level-3-quiver"
)

// Baseline is the tutorial scenario: one SKU, stable demand, visible
// forecast, normal lead time, no events.
func Baseline(product domain.ProductProfile, seed uint32) domain.LevelConfig {
	return domain.LevelConfig{
		ID:                 BaselineID,
		Name:               "Level 1",
		Description:        "Learn the basics with predictable demand",
		Duration:           GameDuration,
		ShowForecast:       true,
		LeadTimeMultiplier: 1.0,
		MarketingEvents:    []domain.MarketingEvent{},
		SKUs: []domain.SKUConfig{
			{
				ID:                  "sku-1",
				Name:                product.Name,
				DemandSegments:      generateDemandSegments(product.DemandScale, patternStable, seed),
				InitialInventory:    product.BaseInitialInventory,
				OrderQuantity:       product.BaseOrderQuantity,
				MarketingEventIndex: domain.NoEvent,
			},
		},
	}
}

// Campaign is the harder scenario: hidden forecast, 50% longer lead time and
// a marketing campaign that more than doubles demand mid-run. The event
// becomes visible 6 seconds before it triggers.
func Campaign(product domain.ProductProfile, seed uint32) domain.LevelConfig {
	return domain.LevelConfig{
		ID:                 CampaignID,
		Name:               "Level 2",
		Description:        "Handle unexpected demand spikes",
		Duration:           GameDuration,
		ShowForecast:       false,
		LeadTimeMultiplier: campaignLeadTimeMultiplier,
		MarketingEvents: []domain.MarketingEvent{
			{
				TriggerTime:      campaignEventTime,
				Duration:         eventDuration,
				DemandMultiplier: eventDemandMultiplier,
				Label:            "Marketing Campaign",
				NotifyTime:       campaignEventTime - 6,
			},
		},
		SKUs: []domain.SKUConfig{
			{
				ID:                  "sku-1",
				Name:                product.Name,
				DemandSegments:      generateDemandSegments(product.DemandScale, patternVariable, seed),
				InitialInventory:    product.BaseInitialInventory,
				OrderQuantity:       product.BaseOrderQuantity,
				MarketingEventIndex: 0,
			},
		},
	}
}

// MultiSKU runs four variants at once, each with an independently seeded
// curve. The first and last SKUs are linked to campaigns at distinct times.
func MultiSKU(product domain.ProductProfile, seed uint32) domain.LevelConfig {
	patterns := []pattern{patternStable, patternVariable, patternIncreasing, patternStable}

	variants := product.SKUVariants
	if len(variants) > 4 {
		variants = variants[:4]
	}

	skus := make([]domain.SKUConfig, len(variants))
	for i, variant := range variants {
		// Spread the SKU base rates between 90% and 105% of the product's
		// demand scale so the variants drift apart.
		skuBaseRate := product.DemandScale * (0.9 + float64(i)*0.05)

		eventIndex := domain.NoEvent
		switch i {
		case 0:
			eventIndex = 0
		case 3:
			eventIndex = 1
		}

		skus[i] = domain.SKUConfig{
			ID:                  "sku-" + string(rune('1'+i)),
			Name:                product.Name,
			Variant:             variant,
			DemandSegments:      generateDemandSegments(skuBaseRate, patterns[i%len(patterns)], seed+uint32(i)*skuSeedStride),
			InitialInventory:    product.BaseInitialInventory,
			OrderQuantity:       product.BaseOrderQuantity,
			MarketingEventIndex: eventIndex,
		}
	}

	return domain.LevelConfig{
		ID:                 MultiSKUID,
		Name:               "Level 3",
		Description:        "Manage 4 SKUs simultaneously",
		Duration:           GameDuration,
		ShowForecast:       false,
		LeadTimeMultiplier: 1.0,
		MarketingEvents: []domain.MarketingEvent{
			{
				TriggerTime:      multiSKUEventTimes[0],
				Duration:         eventDuration,
				DemandMultiplier: eventDemandMultiplier,
				Label:            "Marketing Campaign",
				NotifyTime:       multiSKUEventTimes[0],
			},
			{
				TriggerTime:      multiSKUEventTimes[1],
				Duration:         eventDuration,
				DemandMultiplier: eventDemandMultiplier,
				Label:            "Marketing Campaign",
				NotifyTime:       multiSKUEventTimes[1],
			},
		},
		SKUs: skus,
	}
}

// QuiverDemo is the multi-SKU level with the autonomous policy forced on;
// human orders are ignored by the shell while it plays.
func QuiverDemo(product domain.ProductProfile, seed uint32) domain.LevelConfig {
	level := MultiSKU(product, seed)
	level.ID = QuiverDemoID
	level.Name = "Level 3 - Quiver Demo"
	level.Description = "Watch the Quiver Engine manage every SKU"
	level.QuiverEnabled = true
	level.QuiverAutoPlay = true
	return level
}

// ByID builds the named level for a product and seed. The second return is
// false for unknown ids.
func ByID(levelID string, product domain.ProductProfile, seed uint32) (domain.LevelConfig, bool) {
	switch levelID {
	case BaselineID:
		return Baseline(product, seed), true
	case CampaignID:
		return Campaign(product, seed), true
	case MultiSKUID:
		return MultiSKU(product, seed), true
	case QuiverDemoID:
		return QuiverDemo(product, seed), true
	default:
		return domain.LevelConfig{}, false
	}
}
