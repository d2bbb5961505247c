package domain

// DemandSegment is a half-open interval [StartTime, EndTime) with a constant
// base demand rate in units per game-second.
type DemandSegment struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	BaseRate  float64 `json:"base_rate"`
}

// MarketingEvent is a promotional window that multiplies demand while active.
type MarketingEvent struct {
	TriggerTime      float64 `json:"trigger_time"`
	Duration         float64 `json:"duration"`
	DemandMultiplier float64 `json:"demand_multiplier"`
	Label            string  `json:"label"`
	// NotifyTime is when the front end starts showing the event zone.
	// Always <= TriggerTime; builders default it to TriggerTime.
	NotifyTime float64 `json:"notify_time"`
}

// NoEvent marks a SKU with no linked marketing event.
const NoEvent = -1

// SKUConfig is the static definition of one SKU inside a level.
type SKUConfig struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Variant          string          `json:"variant,omitempty"`
	DemandSegments   []DemandSegment `json:"demand_segments"`
	InitialInventory float64         `json:"initial_inventory"`
	OrderQuantity    float64         `json:"order_quantity"`
	// LeadTime overrides the base lead time when > 0.
	LeadTime float64 `json:"lead_time,omitempty"`
	// MarketingEventIndex points into LevelConfig.MarketingEvents, NoEvent when unlinked.
	MarketingEventIndex int `json:"marketing_event_index"`
}

// LevelConfig is one complete scenario: demand curves, events and rules.
// Built fresh per product selection and immutable once a run starts.
type LevelConfig struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	Duration           float64          `json:"duration"`
	SKUs               []SKUConfig      `json:"skus"`
	ShowForecast       bool             `json:"show_forecast"`
	LeadTimeMultiplier float64          `json:"lead_time_multiplier"`
	MarketingEvents    []MarketingEvent `json:"marketing_events"`
	QuiverEnabled      bool             `json:"quiver_enabled"`
	QuiverAutoPlay     bool             `json:"quiver_auto_play,omitempty"`
}

// EventFor returns the marketing event linked to the SKU, or false when the
// SKU has no linked event.
func (l LevelConfig) EventFor(sku SKUConfig) (MarketingEvent, bool) {
	if sku.MarketingEventIndex == NoEvent {
		return MarketingEvent{}, false
	}
	if sku.MarketingEventIndex < 0 || sku.MarketingEventIndex >= len(l.MarketingEvents) {
		return MarketingEvent{}, false
	}
	return l.MarketingEvents[sku.MarketingEventIndex], true
}
