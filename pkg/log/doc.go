/*
Package log provides structured logging for Corral built on zerolog.

All Corral components log through a single global zerolog logger, initialized
once at startup. Child loggers carry component and entity context so a busy
reconciliation run can be filtered down to one queue or topic.

# Usage

Initialize once, early in main:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: false, // console output for humans
	})

Component loggers:

	logger := log.WithComponent("reconciler")
	logger.Info().Str("resource", "sb-shop").Msg("reconcile started")

Entity loggers for per-entity decisions:

	logger := log.WithEntity("queue", "sbq-orders")
	logger.Debug().Msg("no drift detected, skipping update")

# Output Formats

Console output (default) is human-readable with RFC3339 timestamps:

	2026-08-31T10:04:11Z INF queue created component=reconciler entity=sbq-orders kind=queue

JSON output is for aggregation pipelines:

	{"level":"info","component":"reconciler","kind":"queue","entity":"sbq-orders","time":"2026-08-31T10:04:11Z","message":"queue created"}

# Levels

Four levels are exposed (debug, info, warn, error). Convention:

  - debug: per-field diff decisions, skipped updates, exists checks
  - info: remote mutations (create, update, delete), run summaries
  - warn: recoverable oddities (unknown manifest fields, etc.)
  - error: failures surfaced to the caller

The core reconciler logs its decisions but never logs-and-swallows an
error: failures are returned to the caller, who decides how to report
them.

# Integration Points

  - cmd/corral: initializes the logger from --log-level / --log-json flags
  - pkg/reconciler: logs convergence decisions per entity
  - pkg/broker: logs emulator store lifecycle at debug level
*/
package log
