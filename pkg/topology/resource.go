package topology

// Resource is the root of a desired-state tree: one messaging namespace
// with its queues and topics. A Resource exclusively owns its children;
// entities are never shared across branches.
//
// Slices preserve declaration order, and duplicate names are legal: each
// entry produces its own reconciliation call.
type Resource struct {
	Name   string
	Topics []*Topic
	Queues []*Queue
}

// Queue is a point-to-point message holding area. Leaf entity, no children.
type Queue struct {
	Name    string
	Options QueueOptions
}

// Topic is a publish/subscribe message holding area with zero or more
// subscriptions.
type Topic struct {
	Name          string
	Options       TopicOptions
	Subscriptions []*Subscription
}

// Subscription is a named, independently consumed view onto a topic's
// message stream, gated by its filters.
type Subscription struct {
	Name    string
	Options SubscriptionOptions
	Filters []Filter
}

// NewResource creates an empty resource with a normalized name.
func NewResource(name string) *Resource {
	return &Resource{Name: Normalize(PrefixResource, name)}
}

// AddQueue declares a queue with default options. Returns the resource for
// chaining.
func (r *Resource) AddQueue(name string) *Resource {
	return r.AddQueueWithOptions(name, DefaultQueueOptions())
}

// AddQueueWithOptions declares a queue with explicit options. Returns the
// resource for chaining.
func (r *Resource) AddQueueWithOptions(name string, opts QueueOptions) *Resource {
	r.Queues = append(r.Queues, &Queue{
		Name:    Normalize(PrefixQueue, name),
		Options: opts,
	})
	return r
}

// AddTopic declares a topic with default options and returns it, so
// subscriptions can be chained onto the declaration.
func (r *Resource) AddTopic(name string) *Topic {
	return r.AddTopicWithOptions(name, DefaultTopicOptions())
}

// AddTopicWithOptions declares a topic with explicit options and returns it.
func (r *Resource) AddTopicWithOptions(name string, opts TopicOptions) *Topic {
	t := &Topic{
		Name:    Normalize(PrefixTopic, name),
		Options: opts,
	}
	r.Topics = append(r.Topics, t)
	return t
}

// AddSubscription declares a subscription with default options whose
// filters match the given message labels. Returns the topic for chaining.
func (t *Topic) AddSubscription(name string, labels ...string) *Topic {
	return t.AddSubscriptionWithOptions(name, DefaultSubscriptionOptions(), labels...)
}

// AddSubscriptionWithOptions declares a subscription with explicit options
// whose filters match the given message labels. Returns the topic for
// chaining.
func (t *Topic) AddSubscriptionWithOptions(name string, opts SubscriptionOptions, labels ...string) *Topic {
	s := t.newSubscription(name, opts)
	for _, label := range labels {
		s.AddLabelFilter(label)
	}
	return t
}

// AddFilterSubscription declares a subscription with default options and
// pre-built filters. Returns the topic for chaining.
func (t *Topic) AddFilterSubscription(name string, filters ...Filter) *Topic {
	return t.AddFilterSubscriptionWithOptions(name, DefaultSubscriptionOptions(), filters...)
}

// AddFilterSubscriptionWithOptions declares a subscription with explicit
// options and pre-built filters. Returns the topic for chaining.
func (t *Topic) AddFilterSubscriptionWithOptions(name string, opts SubscriptionOptions, filters ...Filter) *Topic {
	s := t.newSubscription(name, opts)
	for _, f := range filters {
		s.AddFilter(f)
	}
	return t
}

func (t *Topic) newSubscription(name string, opts SubscriptionOptions) *Subscription {
	s := &Subscription{
		Name:    Normalize(PrefixSubscription, name),
		Options: opts,
	}
	t.Subscriptions = append(t.Subscriptions, s)
	return s
}

// AddLabelFilter appends a label-equality filter. Returns the subscription
// for chaining.
func (s *Subscription) AddLabelFilter(label string) *Subscription {
	return s.AddFilter(NewLabelFilter(label))
}

// AddFilter appends a pre-built filter. Returns the subscription for
// chaining.
func (s *Subscription) AddFilter(f Filter) *Subscription {
	s.Filters = append(s.Filters, f)
	return s
}
