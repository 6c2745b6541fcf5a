/*
Package manifest builds desired-state topologies from YAML files.

The fluent builder API in pkg/topology is how applications embed Corral;
the manifest format is how the CLI consumes a topology from disk. Both
paths produce the same *topology.Resource, so everything the builders can
declare, a manifest can too.

# Format

	apiVersion: corral/v1
	kind: Topology
	metadata:
	  name: Shop
	spec:
	  queues:
	    - name: Orders
	    - name: Invoices
	      duplicateDetectionWindow: 10m
	      autoDeleteOnIdle: 48h
	  topics:
	    - name: Events
	      subscriptions:
	        - name: Handler
	          labels: [Created, Updated]
	        - name: Priority
	          requiresSession: true
	          lockDuration: 30s
	          filters:
	            - name: HighPriority
	              key: Priority
	              intValue: 5
	            - name: ActiveStatus
	              key: Status
	              value: Active
	            - name: Custom
	              expression: "Amount > 100"

Durations are Go duration strings. Omitted fields take the defaults from
pkg/topology (14-day TTL, batched operations on, and so on); booleans
whose default is true use explicit `false` to disable.

Filters come in three forms: a label test (shorthand `labels:` list or a
`label:` entry), a key/value equality (`name` + `key` + `value` or
`intValue`), or a raw SQL expression (`name` + `expression`). Names are
normalized with the rule prefix exactly like builder-made filters.

# Usage

	resource, err := manifest.Load("topology.yaml")
	if err != nil {
		return err
	}
	return rec.Reconcile(ctx, resource)

Parse errors carry the entity path ("topic \"Events\" subscription
\"Handler\": invalid lockDuration ..."), so a broken manifest points at
its own fix.

# Integration Points

  - pkg/topology: the builders this package drives
  - cmd/corral: `corral apply -f` loads manifests through Load
*/
package manifest
