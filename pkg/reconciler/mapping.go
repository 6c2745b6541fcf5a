package reconciler

import (
	"math"
	"time"

	"github.com/corralmq/corral/pkg/admin"
	"github.com/corralmq/corral/pkg/topology"
)

// Broker sentinels substituted for unset optional durations. These exist
// only at the remote boundary; declared options keep the zero value for
// "unset" so the two states stay distinguishable in the model.
const (
	// neverExpire is the broker's "no auto-delete" sentinel.
	neverExpire = time.Duration(math.MaxInt64)

	// duplicateDetectionFallback is the window sent when duplicate
	// detection is disabled. The remote field is not optional, so a
	// concrete value must accompany RequiresDuplicateDetection=false.
	duplicateDetectionFallback = 10 * time.Minute
)

func desiredQueueProperties(queue *topology.Queue) *admin.QueueProperties {
	opts := queue.Options
	p := &admin.QueueProperties{
		Name:                                queue.Name,
		DefaultMessageTimeToLive:            opts.DefaultTimeToLive,
		RequiresDuplicateDetection:          opts.DuplicateDetectionWindow != 0,
		DuplicateDetectionHistoryTimeWindow: opts.DuplicateDetectionWindow,
		EnableBatchedOperations:             opts.EnableBatchedOperations,
		EnablePartitioning:                  opts.EnablePartitioning,
		AutoDeleteOnIdle:                    opts.AutoDeleteOnIdle,
	}
	if p.DuplicateDetectionHistoryTimeWindow == 0 {
		p.DuplicateDetectionHistoryTimeWindow = duplicateDetectionFallback
	}
	if p.AutoDeleteOnIdle == 0 {
		p.AutoDeleteOnIdle = neverExpire
	}
	return p
}

func desiredTopicProperties(topic *topology.Topic) *admin.TopicProperties {
	opts := topic.Options
	p := &admin.TopicProperties{
		Name:                                topic.Name,
		DefaultMessageTimeToLive:            opts.DefaultTimeToLive,
		RequiresDuplicateDetection:          opts.DuplicateDetectionWindow != 0,
		DuplicateDetectionHistoryTimeWindow: opts.DuplicateDetectionWindow,
		EnableBatchedOperations:             opts.EnableBatchedOperations,
		EnablePartitioning:                  opts.EnablePartitioning,
		AutoDeleteOnIdle:                    opts.AutoDeleteOnIdle,
	}
	if p.DuplicateDetectionHistoryTimeWindow == 0 {
		p.DuplicateDetectionHistoryTimeWindow = duplicateDetectionFallback
	}
	if p.AutoDeleteOnIdle == 0 {
		p.AutoDeleteOnIdle = neverExpire
	}
	return p
}

func desiredSubscriptionProperties(sub *topology.Subscription) *admin.SubscriptionProperties {
	opts := sub.Options
	p := &admin.SubscriptionProperties{
		Name:                             sub.Name,
		DefaultMessageTimeToLive:         opts.DefaultTimeToLive,
		DeadLetteringOnMessageExpiration: opts.DeadLetteringOnMessageExpiration,
		LockDuration:                     opts.LockDuration,
		AutoDeleteOnIdle:                 opts.AutoDeleteOnIdle,
		RequiresSession:                  opts.RequiresSession,
		ForwardDeadLetteredMessagesTo:    opts.ForwardDeadLetteredMessagesTo,
	}
	if p.LockDuration == 0 {
		p.LockDuration = topology.DefaultLockDuration
	}
	if p.AutoDeleteOnIdle == 0 {
		p.AutoDeleteOnIdle = neverExpire
	}
	return p
}

// queueDrifted reports whether any managed queue field differs between
// the live and desired properties. Name is identity, not configuration,
// and is never compared.
func queueDrifted(live, desired *admin.QueueProperties) bool {
	return live.DefaultMessageTimeToLive != desired.DefaultMessageTimeToLive ||
		live.RequiresDuplicateDetection != desired.RequiresDuplicateDetection ||
		live.DuplicateDetectionHistoryTimeWindow != desired.DuplicateDetectionHistoryTimeWindow ||
		live.EnableBatchedOperations != desired.EnableBatchedOperations ||
		live.EnablePartitioning != desired.EnablePartitioning ||
		live.AutoDeleteOnIdle != desired.AutoDeleteOnIdle
}

func topicDrifted(live, desired *admin.TopicProperties) bool {
	return live.DefaultMessageTimeToLive != desired.DefaultMessageTimeToLive ||
		live.RequiresDuplicateDetection != desired.RequiresDuplicateDetection ||
		live.DuplicateDetectionHistoryTimeWindow != desired.DuplicateDetectionHistoryTimeWindow ||
		live.EnableBatchedOperations != desired.EnableBatchedOperations ||
		live.EnablePartitioning != desired.EnablePartitioning ||
		live.AutoDeleteOnIdle != desired.AutoDeleteOnIdle
}

func subscriptionDrifted(live, desired *admin.SubscriptionProperties) bool {
	return live.DefaultMessageTimeToLive != desired.DefaultMessageTimeToLive ||
		live.DeadLetteringOnMessageExpiration != desired.DeadLetteringOnMessageExpiration ||
		live.LockDuration != desired.LockDuration ||
		live.AutoDeleteOnIdle != desired.AutoDeleteOnIdle ||
		live.RequiresSession != desired.RequiresSession ||
		live.ForwardDeadLetteredMessagesTo != desired.ForwardDeadLetteredMessagesTo
}

// The copy helpers write every managed field onto the live record so the
// subsequent update call carries the full desired configuration, while
// unmanaged fields a client implementation may track stay intact.

func copyQueueProperties(live, desired *admin.QueueProperties) {
	live.DefaultMessageTimeToLive = desired.DefaultMessageTimeToLive
	live.RequiresDuplicateDetection = desired.RequiresDuplicateDetection
	live.DuplicateDetectionHistoryTimeWindow = desired.DuplicateDetectionHistoryTimeWindow
	live.EnableBatchedOperations = desired.EnableBatchedOperations
	live.EnablePartitioning = desired.EnablePartitioning
	live.AutoDeleteOnIdle = desired.AutoDeleteOnIdle
}

func copyTopicProperties(live, desired *admin.TopicProperties) {
	live.DefaultMessageTimeToLive = desired.DefaultMessageTimeToLive
	live.RequiresDuplicateDetection = desired.RequiresDuplicateDetection
	live.DuplicateDetectionHistoryTimeWindow = desired.DuplicateDetectionHistoryTimeWindow
	live.EnableBatchedOperations = desired.EnableBatchedOperations
	live.EnablePartitioning = desired.EnablePartitioning
	live.AutoDeleteOnIdle = desired.AutoDeleteOnIdle
}

func copySubscriptionProperties(live, desired *admin.SubscriptionProperties) {
	live.DefaultMessageTimeToLive = desired.DefaultMessageTimeToLive
	live.DeadLetteringOnMessageExpiration = desired.DeadLetteringOnMessageExpiration
	live.LockDuration = desired.LockDuration
	live.AutoDeleteOnIdle = desired.AutoDeleteOnIdle
	live.RequiresSession = desired.RequiresSession
	live.ForwardDeadLetteredMessagesTo = desired.ForwardDeadLetteredMessagesTo
}
