/*
Package bootstrap wires a topology definition and an admin client into a
reconciliation run at application startup.

Applications embedding Corral typically own a composition root that knows
two things: how to reach the namespace (an admin.Client) and what should
exist on it (a topology.Definition). This package joins them with explicit
arguments (no registry, no ambient singletons) and turns "you forgot to
supply X" into a distinguished error instead of a nil panic.

# Usage

Builder form, for startup code that assembles pieces incrementally:

	app := bootstrap.New().
		WithClient(client).
		WithDefinition(ShopTopology{}).
		WithReconcilerOptions(reconciler.WithLogger(log.WithComponent("reconciler")))

	if err := app.Run(ctx); err != nil {
		// ErrClientNotConfigured / ErrDefinitionNotConfigured for wiring
		// mistakes, otherwise the first client error from the walk
	}

One-shot form:

	err := bootstrap.Run(ctx, client, ShopTopology{})

Static form with a pre-built resource, skipping the Definition
indirection:

	err := bootstrap.RunResource(ctx, client, resource)

# Error Semantics

The two configuration errors are returned before any network activity, so
a miswired startup fails instantly and unambiguously. Everything else Run
returns is a client error propagated unmodified from the reconciliation
walk: see pkg/reconciler for those semantics.

# Integration Points

  - pkg/topology: Definition and the resource builders
  - pkg/reconciler: performs the actual convergence
  - cmd/corral: uses RunResource for manifest-driven applies
*/
package bootstrap
