package upstream_probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamUp = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "gigboard_order_service_up",
		Help: "Whether the order service answered the last probe (1) or not (0)",
	},
)
