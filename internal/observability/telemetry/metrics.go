package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	RoutePlansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "klev_route_plans_total",
		Help: "Total number of charging route plans computed",
	})

	CorridorSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "klev_route_corridor_stations",
		Help:    "Number of stations falling inside a planned route corridor",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	LotteryDrawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "klev_lottery_draws_total",
		Help: "Total lottery draws by outcome",
	}, []string{"outcome"})

	AvailabilityRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "klev_availability_refreshes_total",
		Help: "Total availability refresh cycles against the charging point registry",
	}, []string{"status"})

	AvailabilityAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "klev_availability_alerts_total",
		Help: "Total availability alert emails dispatched",
	})

	// Infrastructure metrics
	ConnectedWebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "klev_websocket_clients",
		Help: "Currently connected websocket clients",
	})

	RegistryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "klev_registry_latency_seconds",
		Help:    "Latency of charging point registry fetches",
		Buckets: prometheus.DefBuckets,
	})

	DatabaseLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "klev_database_latency_seconds",
		Help:    "Latency of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})
)
