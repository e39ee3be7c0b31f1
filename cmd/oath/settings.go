package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"oath/internal/diagfmt"
	"oath/internal/driver"
	"oath/internal/project"
)

// settings is oath.toml with command-line flags applied on top.
type settings struct {
	cfg            project.Config
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	cache          bool
}

// loadSettings reads the config for target and overrides it with every flag
// the user set explicitly.
func loadSettings(cmd *cobra.Command, target string) (settings, error) {
	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := project.LoadConfig(configPath, target)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	s := settings{
		cfg:            cfg,
		color:          cfg.Output.Color,
		maxDiagnostics: cfg.Parser.MaxDiagnostics,
		jobs:           cfg.Parser.Jobs,
		cache:          cfg.Cache.Enabled,
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if flags.Changed("color") {
		if s.color, err = flags.GetString("color"); err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if f := flags.Lookup("cache"); f != nil && f.Changed {
		if s.cache, err = flags.GetBool("cache"); err != nil {
			return s, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return s, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	return s, nil
}

// useColor resolves the color mode for the stream f.
func (s settings) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

// format picks the output format: the --format flag when set, otherwise the
// configured one when this command supports it, otherwise allowed[0].
func (s settings) format(flags *pflag.FlagSet, allowed ...string) (string, error) {
	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return "", fmt.Errorf("failed to get format flag: %w", err)
		}
		v = strings.ToLower(v)
		if !slices.Contains(allowed, v) {
			return "", fmt.Errorf("unknown format: %s (expected %s)", v, strings.Join(allowed, "|"))
		}
		return v, nil
	}
	if slices.Contains(allowed, s.cfg.Output.Format) {
		return s.cfg.Output.Format, nil
	}
	return allowed[0], nil
}

func (s settings) driverOptions() (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Timings:        s.timings,
	}
	if s.cache {
		cache, err := driver.OpenDiskCache("oath", s.cfg.Cache.Dir)
		if err != nil {
			return opts, fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func (s settings) prettyOpts(f *os.File) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:   s.useColor(f),
		Context: 2,
	}
}
