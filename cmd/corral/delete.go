package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corralmq/corral/pkg/log"
	"github.com/corralmq/corral/pkg/reconciler"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete topology entities",
	Long: `Delete queues, topics, subscriptions or filter rules by name.

Names are normalized the same way declarations are, so "Orders" and
"sbq-orders" address the same queue. Absent entities are skipped without
error. Deleting a topic removes its subscriptions and rules; deleting a
subscription removes its rules.`,
}

var deleteQueueCmd = &cobra.Command{
	Use:   "queue NAME...",
	Short: "Delete one or more queues",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, cleanup, err := newReconciler(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rec.DeleteQueues(cmd.Context(), args...); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %d queue(s)\n", len(args))
		return nil
	},
}

var deleteTopicCmd = &cobra.Command{
	Use:   "topic NAME...",
	Short: "Delete one or more topics (cascades to subscriptions and rules)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, cleanup, err := newReconciler(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rec.DeleteTopics(cmd.Context(), args...); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %d topic(s)\n", len(args))
		return nil
	},
}

var deleteSubscriptionCmd = &cobra.Command{
	Use:   "subscription NAME...",
	Short: "Delete one or more subscriptions from a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		rec, cleanup, err := newReconciler(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rec.DeleteSubscriptions(cmd.Context(), topic, args...); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %d subscription(s)\n", len(args))
		return nil
	},
}

var deleteRuleCmd = &cobra.Command{
	Use:   "rule NAME...",
	Short: "Delete one or more filter rules from a subscription",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		sub, _ := cmd.Flags().GetString("subscription")

		rec, cleanup, err := newReconciler(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rec.DeleteRules(cmd.Context(), topic, sub, args...); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %d rule(s)\n", len(args))
		return nil
	},
}

func init() {
	deleteSubscriptionCmd.Flags().String("topic", "", "Owning topic (required)")
	_ = deleteSubscriptionCmd.MarkFlagRequired("topic")

	deleteRuleCmd.Flags().String("topic", "", "Owning topic (required)")
	deleteRuleCmd.Flags().String("subscription", "", "Owning subscription (required)")
	_ = deleteRuleCmd.MarkFlagRequired("topic")
	_ = deleteRuleCmd.MarkFlagRequired("subscription")

	for _, cmd := range []*cobra.Command{deleteQueueCmd, deleteTopicCmd, deleteSubscriptionCmd, deleteRuleCmd} {
		addBackendFlags(cmd)
		deleteCmd.AddCommand(cmd)
	}
}

func newReconciler(cmd *cobra.Command) (*reconciler.Reconciler, func(), error) {
	client, cleanup, err := newClient(cmd)
	if err != nil {
		return nil, nil, err
	}
	rec := reconciler.New(client, reconciler.WithLogger(log.WithComponent("reconciler")))
	return rec, cleanup, nil
}
