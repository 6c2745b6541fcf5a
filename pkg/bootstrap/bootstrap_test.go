package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corralmq/corral/pkg/broker"
	"github.com/corralmq/corral/pkg/topology"
)

type shopDefinition struct{}

func (shopDefinition) Name() string { return "Shop" }

func (shopDefinition) Populate(r *topology.Resource) {
	r.AddQueue("Orders")
	r.AddTopic("Events").AddSubscription("Handler", "Created")
}

func TestRunWithoutClient(t *testing.T) {
	err := New().WithDefinition(shopDefinition{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrClientNotConfigured)
}

func TestRunWithoutDefinition(t *testing.T) {
	err := New().WithClient(broker.Memory()).Run(context.Background())
	assert.ErrorIs(t, err, ErrDefinitionNotConfigured)
}

func TestRunConverges(t *testing.T) {
	ctx := context.Background()
	client := broker.Memory()

	require.NoError(t, Run(ctx, client, shopDefinition{}))

	exists, err := client.QueueExists(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.SubscriptionExists(ctx, "sbt-events", "sbs-handler")
	require.NoError(t, err)
	assert.True(t, exists)

	// Re-running a converged definition is a no-op
	require.NoError(t, Run(ctx, client, shopDefinition{}))
}

func TestRunResource(t *testing.T) {
	ctx := context.Background()
	client := broker.Memory()

	resource := topology.NewResource("Shop").AddQueue("Orders")
	require.NoError(t, RunResource(ctx, client, resource))

	exists, err := client.QueueExists(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, RunResource(ctx, nil, resource), ErrClientNotConfigured)
}
