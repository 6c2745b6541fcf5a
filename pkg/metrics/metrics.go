package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Reconciliation metrics
	ReconcileRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "corral_reconcile_runs_total",
			Help: "Total number of reconciliation runs",
		},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "corral_reconcile_duration_seconds",
			Help:    "Duration of full reconciliation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Entity mutation metrics
	EntitiesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corral_entities_created_total",
			Help: "Total number of remote entities created by kind",
		},
		[]string{"kind"},
	)

	EntitiesUpdatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corral_entities_updated_total",
			Help: "Total number of remote entities updated by kind",
		},
		[]string{"kind"},
	)

	EntitiesDeletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corral_entities_deleted_total",
			Help: "Total number of remote entities deleted by kind",
		},
		[]string{"kind"},
	)

	RulesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "corral_rules_created_total",
			Help: "Total number of subscription filter rules created",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ReconcileRunsTotal)
	prometheus.MustRegister(ReconcileDuration)
	prometheus.MustRegister(EntitiesCreatedTotal)
	prometheus.MustRegister(EntitiesUpdatedTotal)
	prometheus.MustRegister(EntitiesDeletedTotal)
	prometheus.MustRegister(RulesCreatedTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
