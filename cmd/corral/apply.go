package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/corralmq/corral/pkg/bootstrap"
	"github.com/corralmq/corral/pkg/events"
	"github.com/corralmq/corral/pkg/log"
	"github.com/corralmq/corral/pkg/manifest"
	"github.com/corralmq/corral/pkg/reconciler"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a topology manifest",
	Long: `Converge a namespace to the topology declared in a YAML manifest.

Examples:
  # Apply against the local emulator
  corral apply -f topology.yaml --local

  # Apply twice: the second run performs no mutations
  corral apply -f topology.yaml --local
  corral apply -f topology.yaml --local`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("file", "f", "", "Topology manifest to apply (required)")
	_ = applyCmd.MarkFlagRequired("file")
	addBackendFlags(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	resource, err := manifest.Load(filename)
	if err != nil {
		return err
	}

	client, cleanup, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Narrate every remote mutation as it happens
	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	var mutations int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range sub {
			mutations++
			fmt.Printf("✓ %s: %s\n", event.Type, event.Entity)
		}
	}()

	err = bootstrap.RunResource(cmd.Context(), client, resource,
		reconciler.WithLogger(log.WithComponent("reconciler")),
		reconciler.WithEvents(broker),
	)

	broker.Unsubscribe(sub)
	wg.Wait()

	if err != nil {
		return err
	}

	if mutations == 0 {
		fmt.Printf("✓ %s already converged\n", resource.Name)
	} else {
		fmt.Printf("✓ %s converged (%d changes)\n", resource.Name, mutations)
	}
	return nil
}
