/*
Package admin defines the administrative control-plane capability Corral
converges against.

Corral itself never opens a network connection. Everything it knows about
the remote namespace flows through the Client interface defined here:
existence checks, property fetches, creates, updates and deletes for
queues, topics, subscriptions and filter rules. Supplying a working Client
(an SDK binding for a real namespace, or the local emulator in pkg/broker)
is the integration point for embedding Corral in an application.

# Architecture

	┌──────────────┐     admin.Client      ┌──────────────────────┐
	│  reconciler  │ ───────────────────▶  │ control plane        │
	│  (pkg/...)   │  exists/get/create/   │  - real namespace    │
	└──────────────┘  update/delete/rules  │  - pkg/broker (local)│
	                                       └──────────────────────┘

The interface is deliberately flat: one method per remote operation, all
taking a context.Context and returning an explicit error. Subscriptions
are addressed by (topic, name), rules by (topic, subscription, name).

# Contract

Implementations must uphold:

  - Exists methods report absence as (false, nil). An error from an Exists
    method means the check itself failed, not that the entity is missing.
  - Get, Update and Delete on an absent entity return an error.
  - CreateSubscription attaches the broker's implicit catch-all rule,
    named DefaultRuleName, to the new subscription. (Real brokers do this;
    emulators must too, because the reconciler compensates for it.)
  - DeleteTopic cascades to the topic's subscriptions and their rules;
    DeleteSubscription cascades to its rules.
  - Errors are returned as-is to callers. The reconciler neither wraps nor
    retries them, so whatever an implementation returns is what the
    application sees.

# Properties

The *Properties records mirror remote entity configuration field for
field. They differ from the desired-state options in pkg/topology in one
way: every duration is concrete. "Unset" does not exist at this layer;
the reconciler substitutes broker sentinels (maximum duration for "never
auto-delete", the default lock duration, the default duplicate-detection
window) before a record reaches a Client.

# Connection Strings

ParseConnectionString parses the usual namespace credential format:

	settings, err := admin.ParseConnectionString(
		"Endpoint=sb://shop.example.net/;SharedAccessKeyName=admin;SharedAccessKey=abc123=")
	if err != nil {
		// malformed: fails fast, before any reconciler call
	}

# Integration Points

  - pkg/reconciler: sole consumer of Client
  - pkg/broker: in-memory and bbolt-backed Client implementations
  - cmd/corral: parses connection strings and selects a Client
*/
package admin
