package broker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/corralmq/corral/pkg/admin"
)

// MemoryBroker is a map-backed control-plane emulator. It implements
// admin.Client with the broker-side behaviors the reconciler depends on:
// the catch-all rule on new subscriptions and delete cascades from topics
// to subscriptions to rules.
//
// Safe for concurrent use. All returned property records are copies;
// mutating them does not change stored state until an Update call.
type MemoryBroker struct {
	mu            sync.RWMutex
	queues        map[string]admin.QueueProperties
	topics        map[string]admin.TopicProperties
	subscriptions map[string]admin.SubscriptionProperties
	rules         map[string]admin.RuleProperties
}

// Memory creates an empty in-memory broker emulator
func Memory() *MemoryBroker {
	return &MemoryBroker{
		queues:        make(map[string]admin.QueueProperties),
		topics:        make(map[string]admin.TopicProperties),
		subscriptions: make(map[string]admin.SubscriptionProperties),
		rules:         make(map[string]admin.RuleProperties),
	}
}

var _ admin.Client = (*MemoryBroker)(nil)

func (b *MemoryBroker) QueueExists(_ context.Context, name string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.queues[name]
	return ok, nil
}

func (b *MemoryBroker) GetQueue(_ context.Context, name string) (*admin.QueueProperties, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.queues[name]
	if !ok {
		return nil, fmt.Errorf("queue %s: %w", name, ErrNotFound)
	}
	return &p, nil
}

func (b *MemoryBroker) CreateQueue(_ context.Context, p *admin.QueueProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[p.Name]; ok {
		return fmt.Errorf("queue %s: %w", p.Name, ErrExists)
	}
	b.queues[p.Name] = *p
	return nil
}

func (b *MemoryBroker) UpdateQueue(_ context.Context, p *admin.QueueProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[p.Name]; !ok {
		return fmt.Errorf("queue %s: %w", p.Name, ErrNotFound)
	}
	b.queues[p.Name] = *p
	return nil
}

func (b *MemoryBroker) DeleteQueue(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[name]; !ok {
		return fmt.Errorf("queue %s: %w", name, ErrNotFound)
	}
	delete(b.queues, name)
	return nil
}

func (b *MemoryBroker) TopicExists(_ context.Context, name string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.topics[name]
	return ok, nil
}

func (b *MemoryBroker) GetTopic(_ context.Context, name string) (*admin.TopicProperties, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.topics[name]
	if !ok {
		return nil, fmt.Errorf("topic %s: %w", name, ErrNotFound)
	}
	return &p, nil
}

func (b *MemoryBroker) CreateTopic(_ context.Context, p *admin.TopicProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[p.Name]; ok {
		return fmt.Errorf("topic %s: %w", p.Name, ErrExists)
	}
	b.topics[p.Name] = *p
	return nil
}

func (b *MemoryBroker) UpdateTopic(_ context.Context, p *admin.TopicProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[p.Name]; !ok {
		return fmt.Errorf("topic %s: %w", p.Name, ErrNotFound)
	}
	b.topics[p.Name] = *p
	return nil
}

func (b *MemoryBroker) DeleteTopic(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[name]; !ok {
		return fmt.Errorf("topic %s: %w", name, ErrNotFound)
	}
	delete(b.topics, name)

	// Cascade to subscriptions and their rules
	prefix := name + "/"
	for key := range b.subscriptions {
		if strings.HasPrefix(key, prefix) {
			delete(b.subscriptions, key)
		}
	}
	for key := range b.rules {
		if strings.HasPrefix(key, prefix) {
			delete(b.rules, key)
		}
	}
	return nil
}

func (b *MemoryBroker) SubscriptionExists(_ context.Context, topic, name string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscriptions[subKey(topic, name)]
	return ok, nil
}

func (b *MemoryBroker) GetSubscription(_ context.Context, topic, name string) (*admin.SubscriptionProperties, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.subscriptions[subKey(topic, name)]
	if !ok {
		return nil, fmt.Errorf("subscription %s/%s: %w", topic, name, ErrNotFound)
	}
	return &p, nil
}

func (b *MemoryBroker) CreateSubscription(_ context.Context, topic string, p *admin.SubscriptionProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[topic]; !ok {
		return fmt.Errorf("topic %s: %w", topic, ErrNotFound)
	}
	key := subKey(topic, p.Name)
	if _, ok := b.subscriptions[key]; ok {
		return fmt.Errorf("subscription %s/%s: %w", topic, p.Name, ErrExists)
	}
	b.subscriptions[key] = *p

	// The broker attaches a catch-all rule to every new subscription
	b.rules[ruleKey(topic, p.Name, admin.DefaultRuleName)] = admin.RuleProperties{
		Name:          admin.DefaultRuleName,
		SQLExpression: "1=1",
	}
	return nil
}

func (b *MemoryBroker) UpdateSubscription(_ context.Context, topic string, p *admin.SubscriptionProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := subKey(topic, p.Name)
	if _, ok := b.subscriptions[key]; !ok {
		return fmt.Errorf("subscription %s/%s: %w", topic, p.Name, ErrNotFound)
	}
	b.subscriptions[key] = *p
	return nil
}

func (b *MemoryBroker) DeleteSubscription(_ context.Context, topic, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := subKey(topic, name)
	if _, ok := b.subscriptions[key]; !ok {
		return fmt.Errorf("subscription %s/%s: %w", topic, name, ErrNotFound)
	}
	delete(b.subscriptions, key)

	// Cascade to the subscription's rules
	prefix := key + "/"
	for rk := range b.rules {
		if strings.HasPrefix(rk, prefix) {
			delete(b.rules, rk)
		}
	}
	return nil
}

func (b *MemoryBroker) RuleExists(_ context.Context, topic, sub, name string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.rules[ruleKey(topic, sub, name)]
	return ok, nil
}

func (b *MemoryBroker) CreateRule(_ context.Context, topic, sub string, p *admin.RuleProperties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscriptions[subKey(topic, sub)]; !ok {
		return fmt.Errorf("subscription %s/%s: %w", topic, sub, ErrNotFound)
	}
	key := ruleKey(topic, sub, p.Name)
	if _, ok := b.rules[key]; ok {
		return fmt.Errorf("rule %s: %w", key, ErrExists)
	}
	b.rules[key] = *p
	return nil
}

func (b *MemoryBroker) DeleteRule(_ context.Context, topic, sub, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := ruleKey(topic, sub, name)
	if _, ok := b.rules[key]; !ok {
		return fmt.Errorf("rule %s: %w", key, ErrNotFound)
	}
	delete(b.rules, key)
	return nil
}
