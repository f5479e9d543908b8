package styles

import (
	"strings"
	"testing"
)

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		render func(string) string
		symbol string
	}{
		{"success", StatusSuccess, SymbolSuccess},
		{"error", StatusError, SymbolError},
		{"warning", StatusWarning, SymbolWarning},
		{"info", StatusInfo, SymbolInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.render("message text")
			if !strings.Contains(got, tt.symbol) {
				t.Errorf("%s output %q missing symbol %q", tt.name, got, tt.symbol)
			}
			if !strings.Contains(got, "message text") {
				t.Errorf("%s output %q missing message", tt.name, got)
			}
		})
	}
}
