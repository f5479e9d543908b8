package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunnybak/exp/internal/git"
	"github.com/sunnybak/exp/internal/log"
	"github.com/sunnybak/exp/internal/output"
	"github.com/sunnybak/exp/internal/ui/styles"
)

func newRemoveCmd() *cobra.Command {
	var (
		force    bool
		noCommit bool
	)

	cmd := &cobra.Command{
		Use:               "remove <name>",
		Short:             "Unregister an experiment",
		Aliases:           []string{"rm"},
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeExperimentNames,
		Long: `Unregister an experiment from the parent repository.

The submodule is deinitialized, removed from the index and .gitmodules,
and its working tree is deleted. The removal is committed unless
--no-commit is given. Nothing is pushed.`,
		Example: `  exp remove anova             # Remove with confirmation
  exp remove anova -f          # Remove without confirmation
  exp remove anova --no-commit # Leave the removal staged`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			name := args[0]

			registered, err := git.HasSubmodule(ctx, workDir, name)
			if err != nil {
				return err
			}
			if !registered {
				return fmt.Errorf("no experiment named %q is registered", name)
			}

			if !force {
				prompter := uiPrompter{}
				ok, err := prompter.Confirm(fmt.Sprintf("Remove %s and delete its working tree?", name))
				if err != nil {
					return err
				}
				if !ok {
					out.Println("Cancelled")
					return nil
				}
			}

			l.Debug("removing submodule", "name", name)

			if err := git.RemoveSubmodule(ctx, workDir, name); err != nil {
				return err
			}

			// git rm already staged the removal and the .gitmodules edit
			if !noCommit {
				msg := fmt.Sprintf("remove %s submodule", name)
				if err := git.Commit(ctx, workDir, msg); err != nil {
					return err
				}
			}

			out.Println(styles.StatusSuccess(fmt.Sprintf("%s removed", name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove without confirmation")
	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "Leave the removal staged instead of committing")

	return cmd
}

// completeExperimentNames provides completion for experiment name arguments
func completeExperimentNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	subs, err := git.ListSubmodules(cmd.Context(), workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.Path)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
