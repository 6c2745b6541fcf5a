/*
Package topology defines the desired-state model for a Corral messaging
namespace.

Application code uses this package to declare, in memory, the queues,
topics, subscriptions and filter rules it expects to exist on the remote
messaging namespace. The reconciler (pkg/reconciler) consumes the declared
tree and converges the remote state to match it.

# Architecture

The model is a tree rooted at a Resource:

	Resource (sb-)
	├── Queue (sbq-)                     leaf, point-to-point
	└── Topic (sbt-)                     publish/subscribe
	    └── Subscription (sbs-)          consumer view onto the topic
	        └── Filter (sbsr-)           SQL rule gating delivery

Ownership is strictly tree-shaped: a Resource owns its Topics and Queues, a
Topic owns its Subscriptions, a Subscription owns its Filters. Nothing is
shared between branches and there are no cycles. Child slices preserve
declaration order, and duplicate names are legal: each declared entry
produces its own reconciliation call.

# Naming

Every entity name is normalized on construction: lowercased, spaces
replaced with hyphens, surrounding whitespace trimmed, and prefixed with
the kind's prefix unless already present:

	Normalize("sbq-", "Order Intake")  // "sbq-order-intake"
	Normalize("sbq-", "sbq-orders")    // "sbq-orders" (no double prefix)
	Normalize("sbt-", "")              // "sbt-"

Spaces are replaced before the trim, so a name with leading or trailing
spaces keeps leading or trailing hyphens. See Normalize for why that
ordering is preserved.

# Usage

Declaring a topology with the fluent builders:

	shop := topology.NewResource("Shop")
	shop.AddQueue("Orders")
	shop.AddTopic("Events").
		AddSubscription("Handler", "Created")

	// shop.Name                                    == "sb-shop"
	// shop.Queues[0].Name                          == "sbq-orders"
	// shop.Topics[0].Name                          == "sbt-events"
	// shop.Topics[0].Subscriptions[0].Name         == "sbs-handler"
	// shop.Topics[0].Subscriptions[0].Filters[0]   == sbsr-created,
	//                                                 sys.Label='Created'

Custom options and richer filters:

	opts := topology.DefaultQueueOptions()
	opts.DuplicateDetectionWindow = 10 * time.Minute

	r := topology.NewResource("Billing")
	r.AddQueueWithOptions("Invoices", opts)
	r.AddTopic("Audit").AddFilterSubscription("Priority",
		topology.NewFilter("HighPriority", "Priority", 5),
		topology.NewFilter("ActiveStatus", "Status", "Active"),
	)

Supplying a topology through a Definition:

	type ShopTopology struct{}

	func (ShopTopology) Name() string { return "Shop" }

	func (ShopTopology) Populate(r *topology.Resource) {
		r.AddQueue("Orders")
		r.AddTopic("Events").AddSubscription("Handler", "Created")
	}

	resource := topology.Build(ShopTopology{})

# Options and Defaults

Entities declared without explicit options get the defaults:

Queues and topics:
  - DefaultTimeToLive: 14 days
  - DuplicateDetectionWindow: unset (duplicate detection disabled)
  - EnableBatchedOperations: true
  - EnablePartitioning: false
  - AutoDeleteOnIdle: unset (never)

Subscriptions:
  - DefaultTimeToLive: 14 days
  - DeadLetteringOnMessageExpiration: true
  - LockDuration: unset (broker default, one minute)
  - AutoDeleteOnIdle: unset (never)
  - RequiresSession: false
  - ForwardDeadLetteredMessagesTo: unset

Optional durations use the zero value for "unset". The model never bakes
broker sentinels (such as the maximum-duration value meaning "never") into
the declared options; the unset state stays distinguishable from an
explicit sentinel until the reconciler maps options onto remote properties.

# Validation

None. Arbitrary strings are accepted for names, labels, filter keys and
expressions. A filter expression the broker rejects surfaces as a remote
error when the reconciler creates the rule, not as a model error.

# Thread Safety

The builders mutate the owning entity and are not safe for concurrent use
while a topology is being declared. Once declared, the tree is read-only by
convention: the reconciler only reads it, so a built Resource may be shared
freely.

# Integration Points

  - pkg/reconciler: walks the tree and converges remote state
  - pkg/manifest: builds a Resource from a YAML manifest
  - pkg/bootstrap: builds a Resource from a Definition at startup
*/
package topology
