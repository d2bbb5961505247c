package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// TickDuration measures how long a tick request takes end to end,
	// including the quiver pass.
	TickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_latency_seconds",
		Help:    "Latency of the simulation tick handler",
		Buckets: prometheus.DefBuckets,
	})

	SessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_sessions_started_total",
		Help: "Total demo sessions created",
	})

	LevelsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_levels_completed_total",
		Help: "Total level runs that reached their duration",
	})

	ManualOrders = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_orders_manual_total",
		Help: "Replenishment orders placed by players",
	})

	QuiverOrders = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_orders_quiver_total",
		Help: "Replenishment orders placed by the autonomous policy",
	})

	StockoutTransitions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_stockout_transitions_total",
		Help: "How many times a SKU entered stockout during ticks",
	})
)

func Init() {
	prometheus.MustRegister(
		TickDuration,
		SessionsStarted,
		LevelsCompleted,
		ManualOrders,
		QuiverOrders,
		StockoutTransitions,
	)
}
