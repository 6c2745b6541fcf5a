package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/corralmq/corral/pkg/admin"
)

var (
	// Bucket names
	bucketQueues        = []byte("queues")
	bucketTopics        = []byte("topics")
	bucketSubscriptions = []byte("subscriptions")
	bucketRules         = []byte("rules")
)

// BoltBroker is a bbolt-backed control-plane emulator. Entity properties
// are stored as JSON in one bucket per kind, so emulated namespace state
// survives across CLI runs: `corral apply --local` twice behaves like two
// runs against the same namespace.
type BoltBroker struct {
	db *bolt.DB
}

// Bolt opens (creating if needed) the emulator database in dataDir
func Bolt(dataDir string) (*BoltBroker, error) {
	dbPath := filepath.Join(dataDir, "corral.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketQueues,
			bucketTopics,
			bucketSubscriptions,
			bucketRules,
		}

		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltBroker{db: db}, nil
}

// Close closes the database
func (b *BoltBroker) Close() error {
	return b.db.Close()
}

var _ admin.Client = (*BoltBroker)(nil)

// generic bucket helpers

func (b *BoltBroker) exists(bucket []byte, key string) (bool, error) {
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucket).Get([]byte(key)) != nil
		return nil
	})
	return found, err
}

func (b *BoltBroker) get(bucket []byte, key string, out any) error {
	return b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return fmt.Errorf("%s %s: %w", bucket, key, ErrNotFound)
		}
		return json.Unmarshal(data, out)
	})
}

func (b *BoltBroker) put(tx *bolt.Tx, bucket []byte, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return tx.Bucket(bucket).Put([]byte(key), data)
}

func (b *BoltBroker) create(bucket []byte, key string, v any) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucket).Get([]byte(key)) != nil {
			return fmt.Errorf("%s %s: %w", bucket, key, ErrExists)
		}
		return b.put(tx, bucket, key, v)
	})
}

func (b *BoltBroker) update(bucket []byte, key string, v any) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucket).Get([]byte(key)) == nil {
			return fmt.Errorf("%s %s: %w", bucket, key, ErrNotFound)
		}
		return b.put(tx, bucket, key, v)
	})
}

// deletePrefixed removes every key in bucket sharing prefix. Runs inside
// an existing update transaction so cascades stay atomic with the parent
// delete.
func deletePrefixed(tx *bolt.Tx, bucket []byte, prefix string) error {
	c := tx.Bucket(bucket).Cursor()
	for k, _ := c.Seek([]byte(prefix)); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}

// Queue operations

func (b *BoltBroker) QueueExists(_ context.Context, name string) (bool, error) {
	return b.exists(bucketQueues, name)
}

func (b *BoltBroker) GetQueue(_ context.Context, name string) (*admin.QueueProperties, error) {
	var p admin.QueueProperties
	if err := b.get(bucketQueues, name, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *BoltBroker) CreateQueue(_ context.Context, p *admin.QueueProperties) error {
	return b.create(bucketQueues, p.Name, p)
}

func (b *BoltBroker) UpdateQueue(_ context.Context, p *admin.QueueProperties) error {
	return b.update(bucketQueues, p.Name, p)
}

func (b *BoltBroker) DeleteQueue(_ context.Context, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketQueues).Get([]byte(name)) == nil {
			return fmt.Errorf("queue %s: %w", name, ErrNotFound)
		}
		return tx.Bucket(bucketQueues).Delete([]byte(name))
	})
}

// Topic operations

func (b *BoltBroker) TopicExists(_ context.Context, name string) (bool, error) {
	return b.exists(bucketTopics, name)
}

func (b *BoltBroker) GetTopic(_ context.Context, name string) (*admin.TopicProperties, error) {
	var p admin.TopicProperties
	if err := b.get(bucketTopics, name, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *BoltBroker) CreateTopic(_ context.Context, p *admin.TopicProperties) error {
	return b.create(bucketTopics, p.Name, p)
}

func (b *BoltBroker) UpdateTopic(_ context.Context, p *admin.TopicProperties) error {
	return b.update(bucketTopics, p.Name, p)
}

func (b *BoltBroker) DeleteTopic(_ context.Context, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketTopics).Get([]byte(name)) == nil {
			return fmt.Errorf("topic %s: %w", name, ErrNotFound)
		}
		if err := tx.Bucket(bucketTopics).Delete([]byte(name)); err != nil {
			return err
		}

		// Cascade to subscriptions and their rules
		prefix := name + "/"
		if err := deletePrefixed(tx, bucketSubscriptions, prefix); err != nil {
			return err
		}
		return deletePrefixed(tx, bucketRules, prefix)
	})
}

// Subscription operations

func (b *BoltBroker) SubscriptionExists(_ context.Context, topic, name string) (bool, error) {
	return b.exists(bucketSubscriptions, subKey(topic, name))
}

func (b *BoltBroker) GetSubscription(_ context.Context, topic, name string) (*admin.SubscriptionProperties, error) {
	var p admin.SubscriptionProperties
	if err := b.get(bucketSubscriptions, subKey(topic, name), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *BoltBroker) CreateSubscription(_ context.Context, topic string, p *admin.SubscriptionProperties) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketTopics).Get([]byte(topic)) == nil {
			return fmt.Errorf("topic %s: %w", topic, ErrNotFound)
		}
		key := subKey(topic, p.Name)
		if tx.Bucket(bucketSubscriptions).Get([]byte(key)) != nil {
			return fmt.Errorf("subscription %s: %w", key, ErrExists)
		}
		if err := b.put(tx, bucketSubscriptions, key, p); err != nil {
			return err
		}

		// The broker attaches a catch-all rule to every new subscription
		return b.put(tx, bucketRules, ruleKey(topic, p.Name, admin.DefaultRuleName), &admin.RuleProperties{
			Name:          admin.DefaultRuleName,
			SQLExpression: "1=1",
		})
	})
}

func (b *BoltBroker) UpdateSubscription(_ context.Context, topic string, p *admin.SubscriptionProperties) error {
	return b.update(bucketSubscriptions, subKey(topic, p.Name), p)
}

func (b *BoltBroker) DeleteSubscription(_ context.Context, topic, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		key := subKey(topic, name)
		if tx.Bucket(bucketSubscriptions).Get([]byte(key)) == nil {
			return fmt.Errorf("subscription %s: %w", key, ErrNotFound)
		}
		if err := tx.Bucket(bucketSubscriptions).Delete([]byte(key)); err != nil {
			return err
		}
		return deletePrefixed(tx, bucketRules, key+"/")
	})
}

// Rule operations

func (b *BoltBroker) RuleExists(_ context.Context, topic, sub, name string) (bool, error) {
	return b.exists(bucketRules, ruleKey(topic, sub, name))
}

func (b *BoltBroker) CreateRule(_ context.Context, topic, sub string, p *admin.RuleProperties) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketSubscriptions).Get([]byte(subKey(topic, sub))) == nil {
			return fmt.Errorf("subscription %s: %w", subKey(topic, sub), ErrNotFound)
		}
		key := ruleKey(topic, sub, p.Name)
		if tx.Bucket(bucketRules).Get([]byte(key)) != nil {
			return fmt.Errorf("rule %s: %w", key, ErrExists)
		}
		return b.put(tx, bucketRules, key, p)
	})
}

func (b *BoltBroker) DeleteRule(_ context.Context, topic, sub, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		key := ruleKey(topic, sub, name)
		if tx.Bucket(bucketRules).Get([]byte(key)) == nil {
			return fmt.Errorf("rule %s: %w", key, ErrNotFound)
		}
		return tx.Bucket(bucketRules).Delete([]byte(key))
	})
}
