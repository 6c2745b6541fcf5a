package reconciler

import (
	"context"

	"github.com/corralmq/corral/pkg/events"
	"github.com/corralmq/corral/pkg/metrics"
	"github.com/corralmq/corral/pkg/topology"
)

// The delete operations accept raw names and normalize them, so callers
// can pass either the declared form ("Orders") or the stored form
// ("sbq-orders"). Each name is checked for existence first; absent
// entities are skipped silently, making every operation an idempotent
// no-op when there is nothing to do.
//
// The broker cascades deletions: removing a topic removes its
// subscriptions and rules, removing a subscription removes its rules, so
// children never need separate calls.

// DeleteQueues deletes the named queues, skipping those that don't exist.
func (r *Reconciler) DeleteQueues(ctx context.Context, names ...string) error {
	for _, raw := range names {
		name := topology.Normalize(topology.PrefixQueue, raw)

		exists, err := r.client.QueueExists(ctx, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := r.client.DeleteQueue(ctx, name); err != nil {
			return err
		}
		r.logger.Info().Str("kind", "queue").Str("entity", name).Msg("queue deleted")
		metrics.EntitiesDeletedTotal.WithLabelValues("queue").Inc()
		r.publish(events.EventQueueDeleted, name, "queue deleted")
	}
	return nil
}

// DeleteTopics deletes the named topics, skipping those that don't exist.
func (r *Reconciler) DeleteTopics(ctx context.Context, names ...string) error {
	for _, raw := range names {
		name := topology.Normalize(topology.PrefixTopic, raw)

		exists, err := r.client.TopicExists(ctx, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := r.client.DeleteTopic(ctx, name); err != nil {
			return err
		}
		r.logger.Info().Str("kind", "topic").Str("entity", name).Msg("topic deleted")
		metrics.EntitiesDeletedTotal.WithLabelValues("topic").Inc()
		r.publish(events.EventTopicDeleted, name, "topic deleted")
	}
	return nil
}

// DeleteSubscriptions deletes the named subscriptions from a topic,
// skipping those that don't exist.
func (r *Reconciler) DeleteSubscriptions(ctx context.Context, topicName string, names ...string) error {
	topicName = topology.Normalize(topology.PrefixTopic, topicName)

	for _, raw := range names {
		name := topology.Normalize(topology.PrefixSubscription, raw)

		exists, err := r.client.SubscriptionExists(ctx, topicName, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := r.client.DeleteSubscription(ctx, topicName, name); err != nil {
			return err
		}
		r.logger.Info().
			Str("kind", "subscription").
			Str("topic", topicName).
			Str("entity", name).
			Msg("subscription deleted")
		metrics.EntitiesDeletedTotal.WithLabelValues("subscription").Inc()
		r.publish(events.EventSubscriptionDeleted, name, "subscription deleted")
	}
	return nil
}

// DeleteRules deletes the named filter rules from a subscription,
// skipping those that don't exist.
func (r *Reconciler) DeleteRules(ctx context.Context, topicName, subName string, names ...string) error {
	topicName = topology.Normalize(topology.PrefixTopic, topicName)
	subName = topology.Normalize(topology.PrefixSubscription, subName)

	for _, raw := range names {
		name := topology.Normalize(topology.PrefixRule, raw)

		exists, err := r.client.RuleExists(ctx, topicName, subName, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := r.client.DeleteRule(ctx, topicName, subName, name); err != nil {
			return err
		}
		r.logger.Info().
			Str("kind", "rule").
			Str("topic", topicName).
			Str("subscription", subName).
			Str("entity", name).
			Msg("rule deleted")
		r.publish(events.EventRuleDeleted, name, "rule deleted from "+topicName+"/"+subName)
	}
	return nil
}
