package main

import (
	"strings"
	"testing"

	"github.com/sunnybak/exp/internal/git"
)

func TestToDisplay(t *testing.T) {
	t.Parallel()

	subs := []git.Submodule{
		{Commit: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Path: "anova", Ref: "heads/main", State: ' '},
		{Commit: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Path: "bandit", State: '+'},
	}

	displays := toDisplay(subs)
	if len(displays) != 2 {
		t.Fatalf("got %d displays, want 2", len(displays))
	}

	if displays[0].Name != "anova" || !displays[0].InSync || displays[0].Ref != "heads/main" {
		t.Errorf("displays[0] = %+v", displays[0])
	}
	if displays[1].Name != "bandit" || displays[1].InSync {
		t.Errorf("displays[1] = %+v, want out of sync", displays[1])
	}
}

func TestFilterSubmodules(t *testing.T) {
	t.Parallel()

	displays := []submoduleDisplay{
		{Name: "anova"},
		{Name: "bandit-sweep"},
		{Name: "lr-schedule"},
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "empty filter keeps all", filter: "", want: []string{"anova", "bandit-sweep", "lr-schedule"}},
		{name: "fuzzy match", filter: "nova", want: []string{"anova"}},
		{name: "subsequence match", filter: "bsweep", want: []string{"bandit-sweep"}},
		{name: "no match", filter: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := filterSubmodules(displays, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, d := range got {
				if d.Name != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, d.Name, tt.want[i])
				}
			}
		})
	}
}

func TestRenderSubmodule(t *testing.T) {
	t.Parallel()

	t.Run("shortens commit hash", func(t *testing.T) {
		t.Parallel()

		line := renderSubmodule(submoduleDisplay{
			Name:   "anova",
			Commit: "0123456789abcdef0123456789abcdef01234567",
			InSync: true,
		})
		if !strings.Contains(line, "0123456") {
			t.Errorf("line %q missing short hash", line)
		}
		if strings.Contains(line, "0123456789") {
			t.Errorf("line %q contains full hash", line)
		}
	})

	t.Run("marks out of sync", func(t *testing.T) {
		t.Parallel()

		line := renderSubmodule(submoduleDisplay{Name: "anova", Commit: "abc", InSync: false})
		if !strings.Contains(line, "out of sync") {
			t.Errorf("line %q missing sync marker", line)
		}
	})

	t.Run("includes ref when present", func(t *testing.T) {
		t.Parallel()

		line := renderSubmodule(submoduleDisplay{Name: "anova", Commit: "abc", Ref: "heads/main", InSync: true})
		if !strings.Contains(line, "heads/main") {
			t.Errorf("line %q missing ref", line)
		}
	})
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	if got := renderSummary(3, 3); !strings.Contains(got, "3 experiments") {
		t.Errorf("renderSummary(3, 3) = %q", got)
	}
	if got := renderSummary(1, 3); !strings.Contains(got, "1 of 3 experiments") {
		t.Errorf("renderSummary(1, 3) = %q", got)
	}
}
