package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corralmq/corral/pkg/admin"
)

func TestBoltQueueRoundTrip(t *testing.T) {
	ctx := context.Background()
	b, err := Bolt(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	require.NoError(t, b.CreateQueue(ctx, testQueue("sbq-orders")))

	got, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.Equal(t, "sbq-orders", got.Name)
	assert.Equal(t, 14*24*time.Hour, got.DefaultMessageTimeToLive)
	assert.True(t, got.EnableBatchedOperations)

	assert.ErrorIs(t, b.CreateQueue(ctx, testQueue("sbq-orders")), ErrExists)

	got.EnablePartitioning = true
	require.NoError(t, b.UpdateQueue(ctx, got))

	updated, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.True(t, updated.EnablePartitioning)
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	b, err := Bolt(dataDir)
	require.NoError(t, err)
	require.NoError(t, b.CreateTopic(ctx, testTopic("sbt-events")))
	require.NoError(t, b.CreateSubscription(ctx, "sbt-events", testSubscription("sbs-handler")))
	require.NoError(t, b.Close())

	reopened, err := Bolt(dataDir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	exists, err := reopened.SubscriptionExists(ctx, "sbt-events", "sbs-handler")
	require.NoError(t, err)
	assert.True(t, exists, "state should survive reopen")

	exists, err = reopened.RuleExists(ctx, "sbt-events", "sbs-handler", admin.DefaultRuleName)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBoltTopicDeleteCascades(t *testing.T) {
	ctx := context.Background()
	b, err := Bolt(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	require.NoError(t, b.CreateTopic(ctx, testTopic("sbt-events")))
	require.NoError(t, b.CreateSubscription(ctx, "sbt-events", testSubscription("sbs-handler")))
	require.NoError(t, b.CreateRule(ctx, "sbt-events", "sbs-handler", &admin.RuleProperties{
		Name:          "sbsr-created",
		SQLExpression: "sys.Label='Created'",
	}))

	require.NoError(t, b.DeleteTopic(ctx, "sbt-events"))

	exists, err := b.SubscriptionExists(ctx, "sbt-events", "sbs-handler")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = b.RuleExists(ctx, "sbt-events", "sbs-handler", "sbsr-created")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBoltRuleRequiresSubscription(t *testing.T) {
	ctx := context.Background()
	b, err := Bolt(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	err = b.CreateRule(ctx, "sbt-events", "sbs-missing", &admin.RuleProperties{Name: "sbsr-x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
