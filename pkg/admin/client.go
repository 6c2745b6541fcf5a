package admin

import (
	"context"
	"time"
)

// DefaultRuleName is the catch-all rule the broker attaches to every newly
// created subscription. The reconciler deletes it so only declared filters
// gate delivery.
const DefaultRuleName = "$Default"

// Client is the administrative control-plane capability the reconciler
// converges against. Implementations talk to a real messaging namespace or
// emulate one locally (pkg/broker).
//
// Exists checks report absence as (false, nil), never as an error. Get,
// Update and Delete on an absent entity return an error. All operations
// are blocking round trips honoring ctx; the reconciler applies no
// timeout or retry policy of its own.
type Client interface {
	QueueExists(ctx context.Context, name string) (bool, error)
	GetQueue(ctx context.Context, name string) (*QueueProperties, error)
	CreateQueue(ctx context.Context, p *QueueProperties) error
	UpdateQueue(ctx context.Context, p *QueueProperties) error
	DeleteQueue(ctx context.Context, name string) error

	TopicExists(ctx context.Context, name string) (bool, error)
	GetTopic(ctx context.Context, name string) (*TopicProperties, error)
	CreateTopic(ctx context.Context, p *TopicProperties) error
	UpdateTopic(ctx context.Context, p *TopicProperties) error
	DeleteTopic(ctx context.Context, name string) error

	SubscriptionExists(ctx context.Context, topic, name string) (bool, error)
	GetSubscription(ctx context.Context, topic, name string) (*SubscriptionProperties, error)
	CreateSubscription(ctx context.Context, topic string, p *SubscriptionProperties) error
	UpdateSubscription(ctx context.Context, topic string, p *SubscriptionProperties) error
	DeleteSubscription(ctx context.Context, topic, name string) error

	RuleExists(ctx context.Context, topic, sub, name string) (bool, error)
	CreateRule(ctx context.Context, topic, sub string, p *RuleProperties) error
	DeleteRule(ctx context.Context, topic, sub, name string) error
}

// QueueProperties is the remote configuration of a queue. Unlike the
// desired-state options in pkg/topology, every duration here is concrete:
// the reconciler substitutes broker sentinels for unset optionals before
// these records cross the wire.
type QueueProperties struct {
	Name                                string
	DefaultMessageTimeToLive            time.Duration
	RequiresDuplicateDetection          bool
	DuplicateDetectionHistoryTimeWindow time.Duration
	EnableBatchedOperations             bool
	EnablePartitioning                  bool
	AutoDeleteOnIdle                    time.Duration
}

// TopicProperties is the remote configuration of a topic. Identical field
// set to QueueProperties; kept as its own type so client implementations
// can't cross the streams.
type TopicProperties struct {
	Name                                string
	DefaultMessageTimeToLive            time.Duration
	RequiresDuplicateDetection          bool
	DuplicateDetectionHistoryTimeWindow time.Duration
	EnableBatchedOperations             bool
	EnablePartitioning                  bool
	AutoDeleteOnIdle                    time.Duration
}

// SubscriptionProperties is the remote configuration of a subscription.
type SubscriptionProperties struct {
	Name                             string
	DefaultMessageTimeToLive         time.Duration
	DeadLetteringOnMessageExpiration bool
	LockDuration                     time.Duration
	AutoDeleteOnIdle                 time.Duration
	RequiresSession                  bool
	ForwardDeadLetteredMessagesTo    string
}

// RuleProperties is the remote configuration of a subscription filter rule.
type RuleProperties struct {
	Name          string
	SQLExpression string
}
