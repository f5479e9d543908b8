package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/sunnybak/exp/internal/doctor"
	"github.com/sunnybak/exp/internal/output"
	"github.com/sunnybak/exp/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the environment",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose the environment exp runs in.

Checks:
- git is installed
- gh is installed and authenticated (optional, needed for exp add --create)
- the current directory is inside a git repository
- the repository folder matches the configured parent repo`,
		Example: `  exp doctor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			w := colorprofile.NewWriter(out.Writer(), os.Environ())

			results, healthy := doctor.Run(ctx, doctor.Checks(*cfg, workDir))

			for _, r := range results {
				line := r.Name
				if r.Detail != "" {
					line = fmt.Sprintf("%s: %s", r.Name, r.Detail)
				}
				switch r.Status {
				case doctor.StatusOK:
					line = styles.StatusSuccess(line)
				case doctor.StatusWarning:
					line = styles.StatusWarning(line)
				case doctor.StatusError:
					line = styles.StatusError(line)
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}

			if !healthy {
				return errors.New("some checks failed")
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "All checks passed")
			return nil
		},
	}

	return cmd
}
