package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corralmq/corral/pkg/topology"
)

const shopManifest = `
apiVersion: corral/v1
kind: Topology
metadata:
  name: Shop
spec:
  queues:
    - name: Orders
  topics:
    - name: Events
      subscriptions:
        - name: Handler
          labels: [Created]
`

func TestParseShopManifest(t *testing.T) {
	resource, err := Parse([]byte(shopManifest))
	require.NoError(t, err)

	assert.Equal(t, "sb-shop", resource.Name)

	require.Len(t, resource.Queues, 1)
	assert.Equal(t, "sbq-orders", resource.Queues[0].Name)
	assert.Equal(t, topology.DefaultQueueOptions(), resource.Queues[0].Options)

	require.Len(t, resource.Topics, 1)
	tp := resource.Topics[0]
	assert.Equal(t, "sbt-events", tp.Name)

	require.Len(t, tp.Subscriptions, 1)
	sub := tp.Subscriptions[0]
	assert.Equal(t, "sbs-handler", sub.Name)
	require.Len(t, sub.Filters, 1)
	assert.Equal(t, "sbsr-created", sub.Filters[0].Name)
	assert.Equal(t, "sys.Label='Created'", sub.Filters[0].SQLExpression)
}

func TestParseOptionsAndFilters(t *testing.T) {
	input := `
apiVersion: corral/v1
kind: Topology
metadata:
  name: Billing
spec:
  queues:
    - name: Invoices
      defaultTimeToLive: 72h
      duplicateDetectionWindow: 10m
      enableBatchedOperations: false
      enablePartitioning: true
      autoDeleteOnIdle: 48h
  topics:
    - name: Audit
      subscriptions:
        - name: Priority
          requiresSession: true
          lockDuration: 30s
          deadLetteringOnMessageExpiration: false
          forwardDeadLetterTo: sbq-dead-letters
          filters:
            - name: HighPriority
              key: Priority
              intValue: 5
            - name: ActiveStatus
              key: Status
              value: Active
            - name: Custom
              expression: "Amount > 100"
            - label: Refund
`
	resource, err := Parse([]byte(input))
	require.NoError(t, err)

	q := resource.Queues[0]
	assert.Equal(t, 72*time.Hour, q.Options.DefaultTimeToLive)
	assert.Equal(t, 10*time.Minute, q.Options.DuplicateDetectionWindow)
	assert.False(t, q.Options.EnableBatchedOperations)
	assert.True(t, q.Options.EnablePartitioning)
	assert.Equal(t, 48*time.Hour, q.Options.AutoDeleteOnIdle)

	sub := resource.Topics[0].Subscriptions[0]
	assert.True(t, sub.Options.RequiresSession)
	assert.Equal(t, 30*time.Second, sub.Options.LockDuration)
	assert.False(t, sub.Options.DeadLetteringOnMessageExpiration)
	assert.Equal(t, "sbq-dead-letters", sub.Options.ForwardDeadLetteredMessagesTo)

	require.Len(t, sub.Filters, 4)
	assert.Equal(t, "Priority=5", sub.Filters[0].SQLExpression)
	assert.Equal(t, "Status='Active'", sub.Filters[1].SQLExpression)
	assert.Equal(t, "sbsr-custom", sub.Filters[2].Name)
	assert.Equal(t, "Amount > 100", sub.Filters[2].SQLExpression)
	assert.Equal(t, "sys.Label='Refund'", sub.Filters[3].SQLExpression)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not yaml",
			input: "{{nope",
		},
		{
			name: "wrong kind",
			input: `
kind: Service
metadata:
  name: x
`,
		},
		{
			name: "missing name",
			input: `
kind: Topology
metadata: {}
`,
		},
		{
			name: "bad duration",
			input: `
kind: Topology
metadata:
  name: x
spec:
  queues:
    - name: q
      defaultTimeToLive: fortnight
`,
		},
		{
			name: "filter without form",
			input: `
kind: Topology
metadata:
  name: x
spec:
  topics:
    - name: t
      subscriptions:
        - name: s
          filters:
            - value: lonely
`,
		},
		{
			name: "key filter without name",
			input: `
kind: Topology
metadata:
  name: x
spec:
  topics:
    - name: t
      subscriptions:
        - name: s
          filters:
            - key: Priority
              intValue: 5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(shopManifest), 0600))

	resource, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sb-shop", resource.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
