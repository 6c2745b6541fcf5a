package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corralmq/corral/pkg/admin"
)

func testQueue(name string) *admin.QueueProperties {
	return &admin.QueueProperties{
		Name:                                name,
		DefaultMessageTimeToLive:            14 * 24 * time.Hour,
		DuplicateDetectionHistoryTimeWindow: 10 * time.Minute,
		EnableBatchedOperations:             true,
	}
}

func testTopic(name string) *admin.TopicProperties {
	return &admin.TopicProperties{
		Name:                                name,
		DefaultMessageTimeToLive:            14 * 24 * time.Hour,
		DuplicateDetectionHistoryTimeWindow: 10 * time.Minute,
		EnableBatchedOperations:             true,
	}
}

func testSubscription(name string) *admin.SubscriptionProperties {
	return &admin.SubscriptionProperties{
		Name:                             name,
		DefaultMessageTimeToLive:         14 * 24 * time.Hour,
		DeadLetteringOnMessageExpiration: true,
		LockDuration:                     time.Minute,
	}
}

func TestMemoryQueueLifecycle(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	exists, err := b.QueueExists(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, b.CreateQueue(ctx, testQueue("sbq-orders")))

	exists, err = b.QueueExists(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.Equal(t, 14*24*time.Hour, got.DefaultMessageTimeToLive)

	got.EnablePartitioning = true
	require.NoError(t, b.UpdateQueue(ctx, got))

	updated, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.True(t, updated.EnablePartitioning)

	require.NoError(t, b.DeleteQueue(ctx, "sbq-orders"))
	exists, err = b.QueueExists(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	b := Memory()
	require.NoError(t, b.CreateQueue(ctx, testQueue("sbq-orders")))

	got, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	got.EnablePartitioning = true

	// Mutating the returned record must not change stored state
	fresh, err := b.GetQueue(ctx, "sbq-orders")
	require.NoError(t, err)
	assert.False(t, fresh.EnablePartitioning)
}

func TestMemoryNotFoundErrors(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	_, err := b.GetQueue(ctx, "sbq-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, b.UpdateQueue(ctx, testQueue("sbq-missing")), ErrNotFound)
	assert.ErrorIs(t, b.DeleteQueue(ctx, "sbq-missing"), ErrNotFound)
	assert.ErrorIs(t, b.DeleteTopic(ctx, "sbt-missing"), ErrNotFound)
	assert.ErrorIs(t, b.DeleteRule(ctx, "sbt-x", "sbs-y", "sbsr-z"), ErrNotFound)
}

func TestMemoryDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	require.NoError(t, b.CreateQueue(ctx, testQueue("sbq-orders")))
	assert.ErrorIs(t, b.CreateQueue(ctx, testQueue("sbq-orders")), ErrExists)
}

func TestMemorySubscriptionRequiresTopic(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	err := b.CreateSubscription(ctx, "sbt-missing", testSubscription("sbs-handler"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySubscriptionGetsDefaultRule(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	require.NoError(t, b.CreateTopic(ctx, testTopic("sbt-events")))
	require.NoError(t, b.CreateSubscription(ctx, "sbt-events", testSubscription("sbs-handler")))

	exists, err := b.RuleExists(ctx, "sbt-events", "sbs-handler", admin.DefaultRuleName)
	require.NoError(t, err)
	assert.True(t, exists, "new subscription should carry the catch-all rule")
}

func TestMemoryTopicDeleteCascades(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	require.NoError(t, b.CreateTopic(ctx, testTopic("sbt-events")))
	require.NoError(t, b.CreateSubscription(ctx, "sbt-events", testSubscription("sbs-handler")))
	require.NoError(t, b.CreateRule(ctx, "sbt-events", "sbs-handler", &admin.RuleProperties{
		Name:          "sbsr-created",
		SQLExpression: "sys.Label='Created'",
	}))

	require.NoError(t, b.DeleteTopic(ctx, "sbt-events"))

	exists, err := b.SubscriptionExists(ctx, "sbt-events", "sbs-handler")
	require.NoError(t, err)
	assert.False(t, exists, "subscription should be gone with its topic")

	exists, err = b.RuleExists(ctx, "sbt-events", "sbs-handler", "sbsr-created")
	require.NoError(t, err)
	assert.False(t, exists, "rules should be gone with their topic")
}

func TestMemorySubscriptionDeleteCascades(t *testing.T) {
	ctx := context.Background()
	b := Memory()

	require.NoError(t, b.CreateTopic(ctx, testTopic("sbt-events")))
	require.NoError(t, b.CreateSubscription(ctx, "sbt-events", testSubscription("sbs-handler")))

	require.NoError(t, b.DeleteSubscription(ctx, "sbt-events", "sbs-handler"))

	exists, err := b.RuleExists(ctx, "sbt-events", "sbs-handler", admin.DefaultRuleName)
	require.NoError(t, err)
	assert.False(t, exists)

	// The topic itself stays
	exists, err = b.TopicExists(ctx, "sbt-events")
	require.NoError(t, err)
	assert.True(t, exists)
}
