/*
Package reconciler converges remote messaging-namespace state to a declared
topology.

Given a desired-state tree (pkg/topology) and an administrative client
(pkg/admin), the reconciler ensures every declared queue, topic,
subscription and filter rule exists remotely with the declared
configuration: creating what is missing and updating what has drifted,
while leaving converged entities untouched.

# Architecture

Reconcile walks the tree in declaration order, topics before queues:

	┌────────────────────────────────────────────────────────┐
	│                 Reconcile(resource)                    │
	└──────────────────────┬─────────────────────────────────┘
	                       │
	        for each topic │ (declaration order)
	                       ▼
	              ┌─────────────────┐
	              │   EnsureTopic   │
	              └────────┬────────┘
	                       │ for each subscription
	                       ▼
	           ┌──────────────────────┐
	           │  EnsureSubscription  │──▶ rules for declared filters
	           └──────────────────────┘
	                       │
	        for each queue │ (after all topics)
	                       ▼
	              ┌─────────────────┐
	              │   EnsureQueue   │
	              └─────────────────┘

Topics and queues are independent on the broker side; the fixed order
exists for deterministic behavior, not because of a dependency.

# The Ensure Algorithm

Every ensure operation follows the same create-or-converge shape:

	exists? ──no──▶ create with full desired configuration
	   │
	  yes
	   │
	   ▼
	fetch live properties
	   │
	   ▼
	any managed field differs? ──no──▶ done (no mutation)
	   │
	  yes
	   │
	   ▼
	copy all desired fields onto live, issue one update

So a converged entity costs one existence check plus one fetch, an absent
entity one existence check plus one create, and a drifted entity one
check, one fetch and one update. Field comparison is a plain OR of
per-field inequality; a single differing field updates the full managed
field set in one call.

# Sentinel Substitution

Declared options keep the zero value for unset optionals (pkg/topology).
At the remote boundary the reconciler substitutes concrete broker values:

  - AutoDeleteOnIdle unset → maximum duration ("never")
  - LockDuration unset → one minute
  - DuplicateDetectionWindow unset → detection disabled, with a ten-minute
    window value filling the non-optional remote field

RequiresDuplicateDetection is derived: it is true exactly when a
duplicate-detection window was declared. Substitution happens both when
building a create payload and before diffing against live state, so an
entity created from unset optionals diffs clean on the next run.

# Subscription Rules

Brokers attach an implicit catch-all rule ($Default) to new
subscriptions. Right after creating a subscription the reconciler deletes
that rule, then creates one named rule per declared filter, in order,
leaving delivery gated by exactly the declared filters.

For an existing subscription, each declared filter is checked by name and
created only if missing. Remote rules not present in the declaration are
never pruned: convergence adds, it does not remove. Removing rules (or any
entity) is an explicit, separate operation:

	DeleteQueues(ctx, "orders", "invoices")
	DeleteTopics(ctx, "events")
	DeleteSubscriptions(ctx, "events", "handler")
	DeleteRules(ctx, "events", "handler", "created")

Delete operations normalize names, skip absent entities without error, and
rely on broker-side cascades for children.

# Failure Semantics

Client errors propagate to the caller unmodified: no wrapping, no
retries, no partial-failure bookkeeping. A failure mid-walk leaves
earlier-walked entities converged and later ones untouched; since every
operation is idempotent, re-invoking Reconcile resumes safely.

The reconciler is strictly sequential: one blocking round trip at a time,
no internal concurrency, no shared mutable state beyond the read-only
tree. Timeouts and cancellation belong to the supplied context and the
client implementation.

# Usage

	client := broker.Memory() // or a real namespace binding
	rec := reconciler.New(client,
		reconciler.WithLogger(log.WithComponent("reconciler")),
		reconciler.WithEvents(eventBroker),
	)

	shop := topology.NewResource("Shop")
	shop.AddQueue("Orders")
	shop.AddTopic("Events").AddSubscription("Handler", "Created")

	if err := rec.Reconcile(ctx, shop); err != nil {
		// first failing entity; re-run to resume
	}

Individual ensure operations are exported for callers managing single
entities:

	err := rec.EnsureQueue(ctx, shop.Queues[0])

# Observability

Each remote mutation increments a counter in pkg/metrics and, when a
broker was supplied via WithEvents, publishes one event. Reads and skipped
updates emit debug logs only. A second Reconcile over converged state
moves no mutation counter and publishes no event.

# Integration Points

  - pkg/topology: the desired-state tree being converged
  - pkg/admin: the client capability every remote call goes through
  - pkg/broker: local emulator used by tests and corral apply --local
  - pkg/bootstrap: startup entry points wrapping Reconcile
  - pkg/events, pkg/metrics: mutation reporting
*/
package reconciler
