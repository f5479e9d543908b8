package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sunnybak/exp/internal/log"
)

// preRun invokes the root pre-run hook against a bare completion command,
// which skips the config and git checks but still wires the context.
func preRun(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "completion"}
	cmd.SetContext(context.Background())
	if err := rootCmd.PersistentPreRunE(cmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE = %v", err)
	}
	return cmd
}

func TestPersistentPreRunWiresLogger(t *testing.T) {
	t.Cleanup(func() { verbose, quiet = false, false })

	t.Run("verbose flag reaches the context logger", func(t *testing.T) {
		verbose, quiet = true, false
		cmd := preRun(t)
		if !log.FromContext(cmd.Context()).IsVerbose() {
			t.Error("context logger not verbose with --verbose set")
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		verbose, quiet = true, true
		cmd := preRun(t)
		if log.FromContext(cmd.Context()).IsVerbose() {
			t.Error("context logger verbose despite --quiet")
		}
	})

	t.Run("default is non-verbose", func(t *testing.T) {
		verbose, quiet = false, false
		cmd := preRun(t)
		if log.FromContext(cmd.Context()).IsVerbose() {
			t.Error("context logger verbose without --verbose")
		}
	})
}
