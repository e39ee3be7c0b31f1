package version

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	orig := [...]string{Version, GitCommit, GitMessage, BuildDate}
	defer func() { Version, GitCommit, GitMessage, BuildDate = orig[0], orig[1], orig[2], orig[3] }()

	// как после -ldflags с лишними пробелами
	Version, GitCommit, GitMessage, BuildDate = " 1.2.3 ", "abc123\n", "", "2024-01-15T10:30:00Z"
	want := Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2024-01-15T10:30:00Z"}
	if got := Current(); got != want {
		t.Fatalf("Current() = %+v, want %+v", got, want)
	}

	Version = "  "
	if got := Current().Version; got != "dev" {
		t.Fatalf("blank version must read as dev, got %q", got)
	}
	if OrUnknown("") != "unknown" || OrUnknown("x") != "x" {
		t.Fatal("OrUnknown mismatch")
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		colored bool
	}{
		{"1.2.3-rc.1", false, false},
		{"1.2.3-rc.1", true, true},
		{"1.2.3", true, true},
		{"dev", true, false},
		{"1.2", true, false},
	}
	for _, tt := range tests {
		got := Colored(tt.in, tt.enabled)
		if !tt.colored {
			if got != tt.in {
				t.Errorf("Colored(%q, %v) = %q, want unchanged", tt.in, tt.enabled, got)
			}
			continue
		}
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("Colored(%q) has no escape codes: %q", tt.in, got)
		}
		if _, suffix, ok := strings.Cut(tt.in, "-"); ok && !strings.HasSuffix(got, "-"+suffix) {
			t.Errorf("Colored(%q) lost the suffix: %q", tt.in, got)
		}
	}
}
