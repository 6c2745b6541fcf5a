package reconciler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corralmq/corral/pkg/admin"
	"github.com/corralmq/corral/pkg/events"
	"github.com/corralmq/corral/pkg/metrics"
	"github.com/corralmq/corral/pkg/topology"
)

// Reconciler converges remote namespace state to a declared topology.
//
// Every operation is idempotent: re-running over converged state performs
// only existence checks and fetches, no mutations. Client errors are
// returned to the caller as-is, without wrapping or retries; because the
// operations are idempotent, the correct recovery from a mid-walk failure
// is simply to call Reconcile again.
type Reconciler struct {
	client admin.Client
	broker *events.Broker
	logger zerolog.Logger
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithLogger sets the logger used for convergence decisions
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithEvents sets the broker that receives one event per remote mutation
func WithEvents(broker *events.Broker) Option {
	return func(r *Reconciler) {
		r.broker = broker
	}
}

// New creates a reconciler converging against the given admin client
func New(client admin.Client, opts ...Option) *Reconciler {
	r := &Reconciler{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile converges the whole resource: every topic (each followed by
// its subscriptions in declaration order), then every queue. The walk is
// strictly sequential and stops at the first failing entity, leaving
// earlier entities converged.
func (r *Reconciler) Reconcile(ctx context.Context, resource *topology.Resource) error {
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ReconcileDuration)
		metrics.ReconcileRunsTotal.Inc()
	}()

	r.logger.Info().
		Str("resource", resource.Name).
		Int("topics", len(resource.Topics)).
		Int("queues", len(resource.Queues)).
		Msg("reconciling resource")

	for _, topic := range resource.Topics {
		if err := r.EnsureTopic(ctx, topic); err != nil {
			return err
		}
		for _, sub := range topic.Subscriptions {
			if err := r.EnsureSubscription(ctx, topic.Name, sub); err != nil {
				return err
			}
		}
	}

	for _, queue := range resource.Queues {
		if err := r.EnsureQueue(ctx, queue); err != nil {
			return err
		}
	}

	return nil
}

// EnsureQueue creates the queue if absent, or updates it if any of its
// live properties differ from the declared options.
func (r *Reconciler) EnsureQueue(ctx context.Context, queue *topology.Queue) error {
	logger := r.logger.With().Str("kind", "queue").Str("entity", queue.Name).Logger()

	exists, err := r.client.QueueExists(ctx, queue.Name)
	if err != nil {
		return err
	}

	desired := desiredQueueProperties(queue)

	if !exists {
		if err := r.client.CreateQueue(ctx, desired); err != nil {
			return err
		}
		logger.Info().Msg("queue created")
		metrics.EntitiesCreatedTotal.WithLabelValues("queue").Inc()
		r.publish(events.EventQueueCreated, queue.Name, "queue created")
		return nil
	}

	live, err := r.client.GetQueue(ctx, queue.Name)
	if err != nil {
		return err
	}

	if !queueDrifted(live, desired) {
		logger.Debug().Msg("queue up to date")
		return nil
	}

	copyQueueProperties(live, desired)
	if err := r.client.UpdateQueue(ctx, live); err != nil {
		return err
	}
	logger.Info().Msg("queue updated")
	metrics.EntitiesUpdatedTotal.WithLabelValues("queue").Inc()
	r.publish(events.EventQueueUpdated, queue.Name, "queue updated")
	return nil
}

// EnsureTopic creates the topic if absent, or updates it if any of its
// live properties differ from the declared options.
func (r *Reconciler) EnsureTopic(ctx context.Context, topic *topology.Topic) error {
	logger := r.logger.With().Str("kind", "topic").Str("entity", topic.Name).Logger()

	exists, err := r.client.TopicExists(ctx, topic.Name)
	if err != nil {
		return err
	}

	desired := desiredTopicProperties(topic)

	if !exists {
		if err := r.client.CreateTopic(ctx, desired); err != nil {
			return err
		}
		logger.Info().Msg("topic created")
		metrics.EntitiesCreatedTotal.WithLabelValues("topic").Inc()
		r.publish(events.EventTopicCreated, topic.Name, "topic created")
		return nil
	}

	live, err := r.client.GetTopic(ctx, topic.Name)
	if err != nil {
		return err
	}

	if !topicDrifted(live, desired) {
		logger.Debug().Msg("topic up to date")
		return nil
	}

	copyTopicProperties(live, desired)
	if err := r.client.UpdateTopic(ctx, live); err != nil {
		return err
	}
	logger.Info().Msg("topic updated")
	metrics.EntitiesUpdatedTotal.WithLabelValues("topic").Inc()
	r.publish(events.EventTopicUpdated, topic.Name, "topic updated")
	return nil
}

// EnsureSubscription creates or updates the subscription on the given
// (already normalized) topic name, then ensures a rule exists for every
// declared filter.
//
// On create, the broker's implicit catch-all rule is deleted so only the
// declared filters gate delivery. On update, rules present remotely but
// absent from the declaration are left untouched: convergence adds
// missing rules but never prunes extras; removal is DeleteRules, an
// explicit separate call.
func (r *Reconciler) EnsureSubscription(ctx context.Context, topicName string, sub *topology.Subscription) error {
	logger := r.logger.With().
		Str("kind", "subscription").
		Str("topic", topicName).
		Str("entity", sub.Name).
		Logger()

	exists, err := r.client.SubscriptionExists(ctx, topicName, sub.Name)
	if err != nil {
		return err
	}

	desired := desiredSubscriptionProperties(sub)

	if !exists {
		if err := r.client.CreateSubscription(ctx, topicName, desired); err != nil {
			return err
		}
		logger.Info().Msg("subscription created")
		metrics.EntitiesCreatedTotal.WithLabelValues("subscription").Inc()
		r.publish(events.EventSubscriptionCreated, sub.Name, "subscription created")

		// New subscriptions come with a catch-all rule; declared filters
		// replace it.
		if err := r.client.DeleteRule(ctx, topicName, sub.Name, admin.DefaultRuleName); err != nil {
			return err
		}

		for i := range sub.Filters {
			if err := r.createRule(ctx, topicName, sub.Name, &sub.Filters[i], logger); err != nil {
				return err
			}
		}
		return nil
	}

	live, err := r.client.GetSubscription(ctx, topicName, sub.Name)
	if err != nil {
		return err
	}

	if subscriptionDrifted(live, desired) {
		copySubscriptionProperties(live, desired)
		if err := r.client.UpdateSubscription(ctx, topicName, live); err != nil {
			return err
		}
		logger.Info().Msg("subscription updated")
		metrics.EntitiesUpdatedTotal.WithLabelValues("subscription").Inc()
		r.publish(events.EventSubscriptionUpdated, sub.Name, "subscription updated")
	} else {
		logger.Debug().Msg("subscription up to date")
	}

	for i := range sub.Filters {
		filter := &sub.Filters[i]
		ruleExists, err := r.client.RuleExists(ctx, topicName, sub.Name, filter.Name)
		if err != nil {
			return err
		}
		if ruleExists {
			continue
		}
		if err := r.createRule(ctx, topicName, sub.Name, filter, logger); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reconciler) createRule(ctx context.Context, topicName, subName string, filter *topology.Filter, logger zerolog.Logger) error {
	err := r.client.CreateRule(ctx, topicName, subName, &admin.RuleProperties{
		Name:          filter.Name,
		SQLExpression: filter.SQLExpression,
	})
	if err != nil {
		return err
	}
	logger.Info().Str("rule", filter.Name).Msg("rule created")
	metrics.RulesCreatedTotal.Inc()
	r.publish(events.EventRuleCreated, filter.Name, "rule created on "+topicName+"/"+subName)
	return nil
}

func (r *Reconciler) publish(eventType events.EventType, entity, message string) {
	if r.broker == nil {
		return
	}
	r.broker.Publish(&events.Event{
		Type:    eventType,
		Entity:  entity,
		Message: message,
	})
}
