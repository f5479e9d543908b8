package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/sunnybak/exp/internal/git"
	"github.com/sunnybak/exp/internal/output"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list [filter]",
		Short:   "List registered experiments",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List experiments registered as submodules of the parent repository.

An optional filter argument narrows the list with fuzzy matching.`,
		Example: `  exp list             # All registered experiments
  exp list nova         # Fuzzy-filtered (matches "anova")
  exp list --json       # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			subs, err := git.ListSubmodules(ctx, workDir)
			if err != nil {
				return err
			}

			displays := toDisplay(subs)
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			filtered := filterSubmodules(displays, filter)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			// Downsample colors to what the terminal supports
			w := colorprofile.NewWriter(out.Writer(), os.Environ())
			for _, d := range filtered {
				if _, err := fmt.Fprintln(w, renderSubmodule(d)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(w, renderSummary(len(filtered), len(displays)))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
