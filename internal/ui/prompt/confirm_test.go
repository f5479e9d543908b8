package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes uppercase", "Y\n", true},
		{"yes word", "yes\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage defaults to no", "maybe\n", false},
		{"whitespace yes", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			result, err := confirmPlain("Proceed?", strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("confirmPlain = %v, want nil", err)
			}
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed? [y/N]") {
				t.Errorf("prompt output = %q", out.String())
			}
		})
	}

	t.Run("eof declines", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		result, err := confirmPlain("Proceed?", strings.NewReader(""), &out)
		if err != nil {
			t.Fatalf("confirmPlain = %v, want nil", err)
		}
		if result.Confirmed {
			t.Error("Confirmed = true on EOF, want false")
		}
	})
}

func TestTextPlain(t *testing.T) {
	t.Parallel()

	t.Run("reads trimmed line", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		result, err := textPlain("Experiment name:", strings.NewReader("  anova  \n"), &out)
		if err != nil {
			t.Fatalf("textPlain = %v, want nil", err)
		}
		if result.Value != "anova" {
			t.Errorf("Value = %q, want %q", result.Value, "anova")
		}
		if result.Cancelled {
			t.Error("Cancelled = true, want false")
		}
	})

	t.Run("eof cancels", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		result, err := textPlain("Experiment name:", strings.NewReader(""), &out)
		if err != nil {
			t.Fatalf("textPlain = %v, want nil", err)
		}
		if !result.Cancelled {
			t.Error("Cancelled = false on EOF, want true")
		}
	})
}
