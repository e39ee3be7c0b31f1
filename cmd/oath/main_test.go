package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"oath/internal/version"
)

// newTestCommand builds a command with the root persistent flags attached.
func newTestCommand(t *testing.T, extra func(cmd *cobra.Command), args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("color", "auto", "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.Flags().Bool("timings", false, "")
	cmd.Flags().Int("max-diagnostics", 100, "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("format", "pretty", "")
	if extra != nil {
		extra(cmd)
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return cmd
}

func TestLoadSettingsFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "[parser]\nmax_diagnostics = 7\njobs = 3\n[output]\ncolor = \"off\"\nformat = \"json\"\n[cache]\nenabled = true\n"
	if err := os.WriteFile(filepath.Join(dir, "oath.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	withJobs := func(cmd *cobra.Command) {
		cmd.Flags().Int("jobs", 0, "")
		cmd.Flags().Bool("cache", false, "")
	}
	cmd := newTestCommand(t, withJobs, "--max-diagnostics=2", "--cache=false")
	s, err := loadSettings(cmd, dir)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.maxDiagnostics != 2 || s.jobs != 3 || s.color != "off" || s.cache {
		t.Fatalf("unexpected settings %+v", s)
	}

	format, err := s.format(cmd.Flags(), "pretty", "json")
	if err != nil || format != "json" {
		t.Fatalf("format = %q, err = %v", format, err)
	}
	// конфиг задаёт формат, который команда не умеет
	format, err = s.format(cmd.Flags(), "pretty", "yaml")
	if err != nil || format != "pretty" {
		t.Fatalf("fallback format = %q, err = %v", format, err)
	}
}

func TestLoadSettingsRejectsBadColor(t *testing.T) {
	cmd := newTestCommand(t, nil, "--color=sometimes")
	if _, err := loadSettings(cmd, t.TempDir()); err == nil {
		t.Fatal("expected an error for an invalid color mode")
	}
}

func TestFormatFlagValidation(t *testing.T) {
	cmd := newTestCommand(t, nil, "--format=xml")
	s, err := loadSettings(cmd, t.TempDir())
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if _, err := s.format(cmd.Flags(), "pretty", "json"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeOff, false},
		{"ON", uiModeOn, false},
		{" auto ", uiModeAuto, false},
		{"off", uiModeOff, false},
		{"maybe", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("readUIMode(%q) = %q, %v", tt.in, got, err)
		}
	}
	if !shouldUseTUI(uiModeOn) || shouldUseTUI(uiModeOff) {
		t.Fatal("explicit modes must not depend on the terminal")
	}
}

func TestRenderVersion(t *testing.T) {
	info := version.Info{Version: "1.2.3", GitCommit: "abc123"}

	var pretty bytes.Buffer
	renderVersionPretty(&pretty, info, versionOptions{showHash: true})
	if !strings.Contains(pretty.String(), "oath 1.2.3: "+versionTagline) || !strings.Contains(pretty.String(), "commit:  abc123") {
		t.Fatalf("unexpected pretty output:\n%s", pretty.String())
	}

	var out bytes.Buffer
	if err := renderVersionJSON(&out, info, versionOptions{showDate: true}); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Tool != "oath" || payload.Version != "1.2.3" || payload.BuildDate != "unknown" || payload.GitCommit != "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
