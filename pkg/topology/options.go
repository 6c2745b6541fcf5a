package topology

import "time"

// DefaultTimeToLive is the message time-to-live applied when an entity is
// declared without explicit options.
const DefaultTimeToLive = 14 * 24 * time.Hour

// DefaultLockDuration is the subscription message lock applied at the
// remote boundary when LockDuration was left unset.
const DefaultLockDuration = time.Minute

// QueueOptions configures a queue declaration.
//
// Optional durations use the zero value for "unset": a zero
// DuplicateDetectionWindow means duplicate detection is disabled, and a
// zero AutoDeleteOnIdle means the entity is never auto-deleted. The model
// keeps the unset state as-is; substitution of broker sentinels happens in
// the reconciler, at the point of talking to the remote system.
type QueueOptions struct {
	DefaultTimeToLive        time.Duration
	DuplicateDetectionWindow time.Duration
	EnableBatchedOperations  bool
	EnablePartitioning       bool
	AutoDeleteOnIdle         time.Duration
}

// TopicOptions configures a topic declaration. The shape is identical to
// QueueOptions; the types stay separate so a queue's options cannot be
// handed to a topic builder by accident.
type TopicOptions struct {
	DefaultTimeToLive        time.Duration
	DuplicateDetectionWindow time.Duration
	EnableBatchedOperations  bool
	EnablePartitioning       bool
	AutoDeleteOnIdle         time.Duration
}

// SubscriptionOptions configures a subscription declaration.
//
// A zero LockDuration means "use the broker default" (one minute); a zero
// AutoDeleteOnIdle means never; an empty ForwardDeadLetteredMessagesTo
// means dead-lettered messages stay on the subscription's own dead-letter
// queue.
type SubscriptionOptions struct {
	DefaultTimeToLive                time.Duration
	DeadLetteringOnMessageExpiration bool
	LockDuration                     time.Duration
	AutoDeleteOnIdle                 time.Duration
	RequiresSession                  bool
	ForwardDeadLetteredMessagesTo    string
}

// DefaultQueueOptions returns the options applied to queues declared
// without an explicit options argument.
func DefaultQueueOptions() QueueOptions {
	return QueueOptions{
		DefaultTimeToLive:       DefaultTimeToLive,
		EnableBatchedOperations: true,
	}
}

// DefaultTopicOptions returns the options applied to topics declared
// without an explicit options argument.
func DefaultTopicOptions() TopicOptions {
	return TopicOptions{
		DefaultTimeToLive:       DefaultTimeToLive,
		EnableBatchedOperations: true,
	}
}

// DefaultSubscriptionOptions returns the options applied to subscriptions
// declared without an explicit options argument.
func DefaultSubscriptionOptions() SubscriptionOptions {
	return SubscriptionOptions{
		DefaultTimeToLive:                DefaultTimeToLive,
		DeadLetteringOnMessageExpiration: true,
	}
}
