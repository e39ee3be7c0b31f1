package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("", t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[parser]
jobs = 4

[output]
color = "off"

[cache]
enabled = true
dir = "/tmp/oath-cache"
`)
	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Parser.Jobs != 4 || cfg.Parser.MaxDiagnostics != 100 {
		t.Fatalf("unexpected parser section %+v", cfg.Parser)
	}
	if cfg.Output.Color != "off" || cfg.Output.Format != "pretty" {
		t.Fatalf("unexpected output section %+v", cfg.Output)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/oath-cache" {
		t.Fatalf("unexpected cache section %+v", cfg.Cache)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadConfigSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[parser]\nmax_diagnostics = 7\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, err := LoadConfig("", nested)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Parser.MaxDiagnostics != 7 {
		t.Fatalf("max_diagnostics = %d, want 7", cfg.Parser.MaxDiagnostics)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Fatalf("root = %q, want %q", got, want)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative max", "[parser]\nmax_diagnostics = -1\n"},
		{"negative jobs", "[parser]\njobs = -2\n"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n"},
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"unknown key", "[parser]\nlookahead = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			if _, err := LoadConfig(path, ""); !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[parser\n")
	_, err := LoadConfig(path, "")
	if err == nil || errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestCombineDependsOnOrder(t *testing.T) {
	a, b := DigestOf([]byte("a")), DigestOf([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine must depend on the order of parts")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("Combine must be deterministic")
	}
	if !(Digest{}).IsZero() || a.IsZero() {
		t.Fatal("IsZero mismatch")
	}
	if DigestUint(1) == DigestUint(2) {
		t.Fatal("DigestUint collision")
	}
}
