/*
Package broker provides local control-plane emulators implementing
admin.Client.

Corral's core never talks to the network itself; it converges against the
admin.Client capability. This package supplies two stand-in
implementations of that capability so topologies can be developed, tested
and demonstrated without a real namespace:

  - MemoryBroker: map-backed, gone when the process exits. The unit-test
    workhorse.
  - BoltBroker: bbolt-backed, persisted under a data directory. Backs
    `corral apply --local`, where consecutive CLI runs must observe the
    state earlier runs created: the second apply of an unchanged manifest
    performs zero mutations, exactly as against a real namespace.

# Emulated Broker Behaviors

Both emulators reproduce the control-plane behaviors the reconciler's
algorithm depends on, not just storage:

  - Creating a subscription attaches the implicit catch-all rule
    (admin.DefaultRuleName, expression 1=1), which the reconciler then
    deletes in favor of declared filters.
  - Deleting a topic cascades to its subscriptions and their rules;
    deleting a subscription cascades to its rules.
  - Creating a subscription under a missing topic fails, as does creating
    a rule under a missing subscription.
  - Exists checks report absence as (false, nil); get/update/delete of an
    absent entity fail with an error wrapping ErrNotFound; create of a
    present entity fails with an error wrapping ErrExists.

# Storage Layout (BoltBroker)

One bucket per entity kind, JSON-encoded property records:

	queues:         "sbq-orders"                        → QueueProperties
	topics:         "sbt-events"                        → TopicProperties
	subscriptions:  "sbt-events/sbs-handler"            → SubscriptionProperties
	rules:          "sbt-events/sbs-handler/sbsr-created" → RuleProperties

Composite keys use "/" as separator, which normalized entity names never
contain. Cascaded deletes run inside the parent's transaction, so a
partially applied cascade cannot be observed.

# Usage

	client := broker.Memory()

	db, err := broker.Bolt("/var/lib/corral")
	if err != nil {
		return err
	}
	defer db.Close()

Either value is handed straight to reconciler.New.

# Integration Points

  - pkg/admin: the interface both emulators implement
  - pkg/reconciler: consumes emulators in its tests
  - cmd/corral: opens a BoltBroker for --local mode
*/
package broker
