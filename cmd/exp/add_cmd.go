package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sunnybak/exp/internal/experiment"
	"github.com/sunnybak/exp/internal/log"
	"github.com/sunnybak/exp/internal/output"
	"github.com/sunnybak/exp/internal/provision"
	"github.com/sunnybak/exp/internal/ui/prompt"
	"github.com/sunnybak/exp/internal/ui/styles"
)

func newAddCmd() *cobra.Command {
	var (
		create  bool
		yes     bool
		copyURL bool
	)

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Register an experiment as a submodule",
		Aliases: []string{"a"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Register an experiment repository as a submodule of the parent
experiments repository.

By default the remote repository must already exist; exp only attaches it.
With --create, a brand-new repository is scaffolded first: template files
are written, committed, and force-pushed as the default branch, then the
repository is attached as a submodule.

Each irreversible step is gated by a confirmation prompt. Completed steps
are never rolled back when a later step fails.`,
		Example: `  exp add anova              # Attach existing github.com/sunnybak/anova
  exp add anova --create     # Scaffold the repository first, then attach
  exp add anova -y           # Skip all confirmation prompts
  exp add anova --copy       # Copy the remote URL to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			name, cancelled, err := resolveName(args)
			if err != nil {
				return err
			}
			if cancelled {
				out.Println("Cancelled")
				return nil
			}

			req, err := experiment.NewRequest(name, cfg.Owner)
			if err != nil {
				return err
			}

			l.Debug("provisioning", "name", req.Name, "create", create)

			p := provision.New(
				provision.NewGitOps(),
				uiPrompter{assumeYes: yes},
				provisionOptions(cfg, workDir, create),
			)

			if err := p.Run(ctx, req); err != nil {
				if errors.Is(err, provision.ErrCancelled) {
					out.Println("Cancelled")
					return nil
				}
				return err
			}

			out.Println(styles.StatusSuccess(fmt.Sprintf("%s registered (%s)", req.Name, req.RemoteURL())))

			if copyURL {
				if err := clipboard.WriteAll(req.RemoteURL()); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "Scaffold a new remote repository before attaching")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&copyURL, "copy", false, "Copy the remote URL to the clipboard")

	return cmd
}

// resolveName returns the experiment name from args, prompting when omitted.
func resolveName(args []string) (name string, cancelled bool, err error) {
	if len(args) == 1 {
		return args[0], false, nil
	}
	result, err := prompt.TextInput("Experiment name:", "my-experiment")
	if err != nil {
		return "", false, err
	}
	if result.Cancelled {
		return "", true, nil
	}
	if result.Value == "" {
		return "", false, fmt.Errorf("experiment name is empty")
	}
	return result.Value, false, nil
}
