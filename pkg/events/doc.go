/*
Package events provides an in-process event stream for reconciliation
progress.

The reconciler publishes one event per remote mutation it performs:
entity created, entity updated, rule created, entity deleted. Nothing is
published for reads, existence checks or skipped updates, so the stream is
exactly the list of changes a run made to the remote namespace.

# Architecture

	reconciler ──Publish──▶ eventCh ──run()──▶ broadcast ──▶ subscriber channels
	                                                          (buffered, size 50)

A single goroutine fans events out to subscribers. Slow subscribers whose
buffers fill simply miss events rather than blocking the reconciliation
walk; the stream is progress narration, not an audit log.

# Event Types

One type per mutation, named kind.verb:

	queue.created         queue.updated         queue.deleted
	topic.created         topic.updated         topic.deleted
	subscription.created  subscription.updated  subscription.deleted
	rule.created          rule.deleted

Each event carries a uuid, a timestamp, the normalized entity name and a
human-readable message.

# Usage

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	go func() {
		for event := range sub {
			fmt.Printf("%s %s\n", event.Type, event.Entity)
		}
	}()

	rec := reconciler.New(client, reconciler.WithEvents(broker))
	_ = rec.Reconcile(ctx, resource)

An idempotent second run over converged state publishes nothing.

# Integration Points

  - pkg/reconciler: publishes mutation events when configured with a broker
  - cmd/corral: subscribes to narrate apply/delete progress
*/
package events
