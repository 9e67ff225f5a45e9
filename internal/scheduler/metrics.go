package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InFlight tracks Transform calls currently executing across all batches
	InFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "translate_scheduler_in_flight",
		Help: "Transform calls currently in flight",
	})

	// ItemsTotal counts items reaching a terminal state by result
	ItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translate_scheduler_items_total",
		Help: "Work items completed by result",
	}, []string{"result"}) // "success", "failure"

	// ItemDuration observes Transform call latency
	ItemDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "translate_scheduler_item_duration_seconds",
		Help:    "Transform call duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})

	// BatchesTotal counts completed batches
	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "translate_scheduler_batches_total",
		Help: "Batches that reached completion",
	})
)
