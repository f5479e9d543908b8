package main

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/sunnybak/exp/internal/git"
	"github.com/sunnybak/exp/internal/ui/styles"
)

// submoduleDisplay holds submodule info for display
type submoduleDisplay struct {
	Name   string `json:"name"`
	Commit string `json:"commit"`
	Ref    string `json:"ref,omitempty"`
	InSync bool   `json:"in_sync"`
}

func toDisplay(subs []git.Submodule) []submoduleDisplay {
	displays := make([]submoduleDisplay, len(subs))
	for i, sub := range subs {
		displays[i] = submoduleDisplay{
			Name:   sub.Path,
			Commit: sub.Commit,
			Ref:    sub.Ref,
			InSync: sub.State == ' ',
		}
	}
	return displays
}

// filterSubmodules narrows displays to fuzzy matches of filter, ranked by
// match score. An empty filter returns displays unchanged.
func filterSubmodules(displays []submoduleDisplay, filter string) []submoduleDisplay {
	if filter == "" {
		return displays
	}
	names := make([]string, len(displays))
	for i, d := range displays {
		names[i] = d.Name
	}
	matches := fuzzy.Find(filter, names)
	filtered := make([]submoduleDisplay, len(matches))
	for i, m := range matches {
		filtered[i] = displays[m.Index]
	}
	return filtered
}

// renderSubmodule formats one list line: name, short commit, sync marker.
func renderSubmodule(d submoduleDisplay) string {
	short := d.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	line := styles.AccentStyle.Render(d.Name) + " " + styles.MutedStyle.Render(short)
	if d.Ref != "" {
		line += " " + styles.InfoStyle.Render(d.Ref)
	}
	if !d.InSync {
		line += " " + styles.WarningStyle.Render("(out of sync)")
	}
	return line
}

func renderSummary(shown, total int) string {
	if shown == total {
		return styles.MutedStyle.Render(fmt.Sprintf("%d experiments", total))
	}
	return styles.MutedStyle.Render(fmt.Sprintf("%d of %d experiments", shown, total))
}
