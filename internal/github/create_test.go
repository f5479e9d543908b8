package github

import "testing"

func TestCreateRepo_InvalidSpec(t *testing.T) {
	t.Parallel()

	// Malformed specs must be rejected before gh is ever invoked.
	for _, spec := range []string{"", "noslash", "a/b/c", "owner/", "/name", "owner/bad name"} {
		if err := CreateRepo(t.Context(), spec, true); err == nil {
			t.Errorf("CreateRepo(%q) = nil, want error", spec)
		}
	}
}
