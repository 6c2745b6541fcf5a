/*
Package metrics exposes Prometheus instrumentation for Corral.

A reconciliation tool is usually run at application startup or from CI, so
the interesting metrics are cumulative mutation counts and run durations
rather than long-lived gauges: how many entities did a run create or
update, how long did convergence take, did a "no-op" run actually mutate
anything.

# Metrics

Reconciliation:

  - corral_reconcile_runs_total: counter, full reconciliation runs
  - corral_reconcile_duration_seconds: histogram, wall time per run

Entity mutations (labeled by kind: queue, topic, subscription):

  - corral_entities_created_total
  - corral_entities_updated_total
  - corral_entities_deleted_total

Rules:

  - corral_rules_created_total: subscription filter rules created

An idempotent second run over converged state increments only
corral_reconcile_runs_total and observes a duration; every mutation
counter stays flat. That makes the mutation counters a cheap convergence
check in CI: two consecutive runs with a moving created/updated counter
mean the diff logic and the remote state disagree.

# Usage

Timing a reconciliation run (done by pkg/reconciler):

	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ReconcileDuration)
		metrics.ReconcileRunsTotal.Inc()
	}()

Counting a mutation:

	metrics.EntitiesCreatedTotal.WithLabelValues("queue").Inc()

Exposition:

	http.Handle("/metrics", metrics.Handler())

All metrics are registered with the default registry in this package's
init, so importing the package is enough to make them scrapeable.

# Integration Points

  - pkg/reconciler: observes every counter and the run histogram
  - embedding applications: mount Handler() on their own mux
*/
package metrics
