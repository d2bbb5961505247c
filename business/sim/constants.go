package sim

const (
	// BaseLeadTime is the default order lead time in game-seconds, used when
	// a SKU carries no override.
	BaseLeadTime = 4.0

	// MaxTickDelta caps a single tick's elapsed time so a stalled client
	// cannot trigger a large catch-up jump.
	MaxTickDelta = 0.1

	// historySampleSpacing thins the inventory history for display; it never
	// affects cost accounting.
	historySampleSpacing = 0.1

	// Manual ordering throttles. The autonomous policy is not subject to
	// these; it has its own guards.
	ManualOrderCooldown = 1.0
	MaxPendingOrders    = 5

	// softCeilingFactor bounds runaway order queues while still allowing
	// over-ordering headroom above the display ceiling.
	softCeilingFactor = 1.5

	// lastOrderSentinel predates any possible order so the first placement
	// is never blocked by the cooldown.
	lastOrderSentinel = -10.0
)
