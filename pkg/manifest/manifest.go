package manifest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/corralmq/corral/pkg/topology"
)

// KindTopology is the only manifest kind Corral applies
const KindTopology = "Topology"

// Manifest is the YAML document shape for a declared topology
type Manifest struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

type Metadata struct {
	Name string `yaml:"name"`
}

type Spec struct {
	Queues []QueueSpec `yaml:"queues,omitempty"`
	Topics []TopicSpec `yaml:"topics,omitempty"`
}

// QueueSpec declares one queue. Duration fields are Go duration strings
// ("336h", "10m"); booleans with non-false defaults are pointers so
// "absent" and "explicitly false" stay distinguishable.
type QueueSpec struct {
	Name                     string `yaml:"name"`
	DefaultTimeToLive        string `yaml:"defaultTimeToLive,omitempty"`
	DuplicateDetectionWindow string `yaml:"duplicateDetectionWindow,omitempty"`
	EnableBatchedOperations  *bool  `yaml:"enableBatchedOperations,omitempty"`
	EnablePartitioning       bool   `yaml:"enablePartitioning,omitempty"`
	AutoDeleteOnIdle         string `yaml:"autoDeleteOnIdle,omitempty"`
}

type TopicSpec struct {
	Name                     string             `yaml:"name"`
	DefaultTimeToLive        string             `yaml:"defaultTimeToLive,omitempty"`
	DuplicateDetectionWindow string             `yaml:"duplicateDetectionWindow,omitempty"`
	EnableBatchedOperations  *bool              `yaml:"enableBatchedOperations,omitempty"`
	EnablePartitioning       bool               `yaml:"enablePartitioning,omitempty"`
	AutoDeleteOnIdle         string             `yaml:"autoDeleteOnIdle,omitempty"`
	Subscriptions            []SubscriptionSpec `yaml:"subscriptions,omitempty"`
}

type SubscriptionSpec struct {
	Name                             string       `yaml:"name"`
	Labels                           []string     `yaml:"labels,omitempty"`
	Filters                          []FilterSpec `yaml:"filters,omitempty"`
	DefaultTimeToLive                string       `yaml:"defaultTimeToLive,omitempty"`
	DeadLetteringOnMessageExpiration *bool        `yaml:"deadLetteringOnMessageExpiration,omitempty"`
	LockDuration                     string       `yaml:"lockDuration,omitempty"`
	AutoDeleteOnIdle                 string       `yaml:"autoDeleteOnIdle,omitempty"`
	RequiresSession                  bool         `yaml:"requiresSession,omitempty"`
	ForwardDeadLetterTo              string       `yaml:"forwardDeadLetterTo,omitempty"`
}

// FilterSpec declares one filter in one of three forms: a label test
// (label), a key/value equality (name + key + value or intValue), or a
// raw SQL expression (name + expression).
type FilterSpec struct {
	Label      string `yaml:"label,omitempty"`
	Name       string `yaml:"name,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Value      string `yaml:"value,omitempty"`
	IntValue   *int   `yaml:"intValue,omitempty"`
	Expression string `yaml:"expression,omitempty"`
}

// Load reads and parses a topology manifest file
func Load(path string) (*topology.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse parses a topology manifest and builds the declared resource
func Parse(data []byte) (*topology.Resource, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if m.Kind != KindTopology {
		return nil, fmt.Errorf("unsupported manifest kind: %q", m.Kind)
	}
	if m.Metadata.Name == "" {
		return nil, fmt.Errorf("manifest metadata.name is required")
	}

	resource := topology.NewResource(m.Metadata.Name)

	for _, ts := range m.Spec.Topics {
		opts, err := topicOptions(ts)
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", ts.Name, err)
		}
		tp := resource.AddTopicWithOptions(ts.Name, opts)

		for _, ss := range ts.Subscriptions {
			subOpts, err := subscriptionOptions(ss)
			if err != nil {
				return nil, fmt.Errorf("topic %q subscription %q: %w", ts.Name, ss.Name, err)
			}
			filters, err := buildFilters(ss)
			if err != nil {
				return nil, fmt.Errorf("topic %q subscription %q: %w", ts.Name, ss.Name, err)
			}
			tp.AddFilterSubscriptionWithOptions(ss.Name, subOpts, filters...)
		}
	}

	for _, qs := range m.Spec.Queues {
		opts, err := queueOptions(qs)
		if err != nil {
			return nil, fmt.Errorf("queue %q: %w", qs.Name, err)
		}
		resource.AddQueueWithOptions(qs.Name, opts)
	}

	return resource, nil
}

func queueOptions(qs QueueSpec) (topology.QueueOptions, error) {
	opts := topology.DefaultQueueOptions()

	if err := setDuration(&opts.DefaultTimeToLive, qs.DefaultTimeToLive, "defaultTimeToLive"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.DuplicateDetectionWindow, qs.DuplicateDetectionWindow, "duplicateDetectionWindow"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.AutoDeleteOnIdle, qs.AutoDeleteOnIdle, "autoDeleteOnIdle"); err != nil {
		return opts, err
	}
	if qs.EnableBatchedOperations != nil {
		opts.EnableBatchedOperations = *qs.EnableBatchedOperations
	}
	opts.EnablePartitioning = qs.EnablePartitioning
	return opts, nil
}

func topicOptions(ts TopicSpec) (topology.TopicOptions, error) {
	opts := topology.DefaultTopicOptions()

	if err := setDuration(&opts.DefaultTimeToLive, ts.DefaultTimeToLive, "defaultTimeToLive"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.DuplicateDetectionWindow, ts.DuplicateDetectionWindow, "duplicateDetectionWindow"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.AutoDeleteOnIdle, ts.AutoDeleteOnIdle, "autoDeleteOnIdle"); err != nil {
		return opts, err
	}
	if ts.EnableBatchedOperations != nil {
		opts.EnableBatchedOperations = *ts.EnableBatchedOperations
	}
	opts.EnablePartitioning = ts.EnablePartitioning
	return opts, nil
}

func subscriptionOptions(ss SubscriptionSpec) (topology.SubscriptionOptions, error) {
	opts := topology.DefaultSubscriptionOptions()

	if err := setDuration(&opts.DefaultTimeToLive, ss.DefaultTimeToLive, "defaultTimeToLive"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.LockDuration, ss.LockDuration, "lockDuration"); err != nil {
		return opts, err
	}
	if err := setDuration(&opts.AutoDeleteOnIdle, ss.AutoDeleteOnIdle, "autoDeleteOnIdle"); err != nil {
		return opts, err
	}
	if ss.DeadLetteringOnMessageExpiration != nil {
		opts.DeadLetteringOnMessageExpiration = *ss.DeadLetteringOnMessageExpiration
	}
	opts.RequiresSession = ss.RequiresSession
	opts.ForwardDeadLetteredMessagesTo = ss.ForwardDeadLetterTo
	return opts, nil
}

func buildFilters(ss SubscriptionSpec) ([]topology.Filter, error) {
	var filters []topology.Filter

	for _, label := range ss.Labels {
		filters = append(filters, topology.NewLabelFilter(label))
	}

	for _, fs := range ss.Filters {
		switch {
		case fs.Label != "":
			filters = append(filters, topology.NewLabelFilter(fs.Label))
		case fs.Expression != "":
			if fs.Name == "" {
				return nil, fmt.Errorf("expression filter requires a name")
			}
			filters = append(filters, topology.Filter{
				Name:          topology.Normalize(topology.PrefixRule, fs.Name),
				SQLExpression: fs.Expression,
			})
		case fs.Key != "":
			if fs.Name == "" {
				return nil, fmt.Errorf("key/value filter requires a name")
			}
			if fs.IntValue != nil {
				filters = append(filters, topology.NewFilter(fs.Name, fs.Key, *fs.IntValue))
			} else {
				filters = append(filters, topology.NewFilter(fs.Name, fs.Key, fs.Value))
			}
		default:
			return nil, fmt.Errorf("filter must declare label, expression, or key")
		}
	}

	return filters, nil
}

func setDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s duration %q: %w", field, raw, err)
	}
	*dst = d
	return nil
}
