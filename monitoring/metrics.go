package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_operations_total",
			Help: "Total data gateway operations by outcome",
		},
		[]string{"operation", "status"},
	)

	syncStatusGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_status",
			Help: "Current sync status (0=error, 1=loading, 2=synced)",
		},
	)

	realtimeClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "realtime_clients_total",
			Help: "Connected realtime WebSocket clients",
		},
	)
)

// CountOp records one gateway operation outcome.
func CountOp(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	gatewayOps.WithLabelValues(operation, status).Inc()
}

// SetClientCount is called by the realtime hub on connect/disconnect.
func SetClientCount(n int) {
	realtimeClients.Set(float64(n))
}
