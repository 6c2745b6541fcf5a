package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corralmq/corral/pkg/admin"
	"github.com/corralmq/corral/pkg/broker"
)

// connectionStringEnv is consulted when --connection-string is not given
const connectionStringEnv = "CORRAL_CONNECTION_STRING"

func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("local", false, "Converge the local emulator instead of a remote namespace")
	cmd.Flags().String("data-dir", defaultDataDir(), "Data directory for the local emulator")
	cmd.Flags().String("connection-string", "", "Namespace connection string (or "+connectionStringEnv+")")
}

// newClient selects the backend a command converges against. Returns the
// client and a cleanup function.
func newClient(cmd *cobra.Command) (admin.Client, func(), error) {
	local, _ := cmd.Flags().GetBool("local")

	if local {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		b, err := broker.Bolt(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil
	}

	connStr, _ := cmd.Flags().GetString("connection-string")
	if connStr == "" {
		connStr = os.Getenv(connectionStringEnv)
	}
	if connStr == "" {
		return nil, nil, fmt.Errorf("connection string required: pass --connection-string, set %s, or use --local", connectionStringEnv)
	}

	// Validate credentials up front so a malformed connection string
	// fails before any reconciliation is attempted.
	settings, err := admin.ParseConnectionString(connStr)
	if err != nil {
		return nil, nil, err
	}

	return nil, nil, fmt.Errorf(
		"no remote driver for %s: this build manages remote namespaces only through the library API (supply an admin.Client to pkg/bootstrap); use --local for the emulator",
		settings.Endpoint,
	)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".corral"
	}
	return home + "/.corral"
}
