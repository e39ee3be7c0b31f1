package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfigInvalid marks a config file that parsed but holds unusable values.
var ErrConfigInvalid = errors.New("invalid config")

// Config mirrors oath.toml.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-"`
}

type ParserConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Jobs ограничивает параллелизм; 0 значит GOMAXPROCS
	Jobs int `toml:"jobs"`
}

type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig returns the values used when no oath.toml exists.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{MaxDiagnostics: 100},
		Output: OutputConfig{Color: "auto", Format: "pretty"},
	}
}

var (
	colorModes    = []string{"auto", "on", "off"}
	outputFormats = []string{"pretty", "short", "json", "yaml"}
)

// LoadConfig reads path over the defaults. An empty path searches upward from
// startDir; no file found yields the defaults.
func LoadConfig(path, startDir string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		found, ok, err := FindConfig(startDir)
		if err != nil {
			return cfg, err
		}
		if !ok {
			return cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrConfigInvalid)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Parser.MaxDiagnostics < 0 {
		return fmt.Errorf("parser.max_diagnostics must be non-negative, got %d: %w", c.Parser.MaxDiagnostics, ErrConfigInvalid)
	}
	if c.Parser.Jobs < 0 {
		return fmt.Errorf("parser.jobs must be non-negative, got %d: %w", c.Parser.Jobs, ErrConfigInvalid)
	}
	if !oneOf(c.Output.Color, colorModes) {
		return fmt.Errorf("output.color must be one of %s, got %q: %w", strings.Join(colorModes, "|"), c.Output.Color, ErrConfigInvalid)
	}
	if !oneOf(c.Output.Format, outputFormats) {
		return fmt.Errorf("output.format must be one of %s, got %q: %w", strings.Join(outputFormats, "|"), c.Output.Format, ErrConfigInvalid)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
