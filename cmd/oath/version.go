package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"oath/internal/version"
)

type versionOptions struct {
	color       bool
	showHash    bool
	showMessage bool
	showDate    bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

const versionTagline = "every parse keeps its word"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show oath build fingerprints",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("message", false, "include git commit message")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd, ".")
	if err != nil {
		return err
	}
	format, err := s.format(cmd.Flags(), "pretty", "json")
	if err != nil {
		return err
	}
	opts := versionOptions{color: s.useColor(os.Stdout)}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fmt.Errorf("failed to get full flag: %w", err)
	}
	for name, dst := range map[string]*bool{"hash": &opts.showHash, "message": &opts.showMessage, "date": &opts.showDate} {
		v, err := cmd.Flags().GetBool(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v || full
	}

	if format == "json" {
		return renderVersionJSON(cmd.OutOrStdout(), version.Current(), opts)
	}
	renderVersionPretty(cmd.OutOrStdout(), version.Current(), opts)
	return nil
}

func renderVersionPretty(out io.Writer, info version.Info, opts versionOptions) {
	fmt.Fprintf(out, "oath %s: %s\n", version.Colored(info.Version, opts.color), versionTagline)
	var extra []string
	if opts.showHash {
		extra = append(extra, "commit:  "+version.OrUnknown(info.GitCommit))
	}
	if opts.showMessage {
		extra = append(extra, "message: "+version.OrUnknown(info.GitMessage))
	}
	if opts.showDate {
		extra = append(extra, "built:   "+version.OrUnknown(info.BuildDate))
	}
	if len(extra) == 0 {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
		return
	}
	fmt.Fprintln(out, strings.Join(extra, "\n"))
}

func renderVersionJSON(out io.Writer, info version.Info, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "oath",
		Version: info.Version,
		Tagline: versionTagline,
	}
	if opts.showHash {
		payload.GitCommit = version.OrUnknown(info.GitCommit)
	}
	if opts.showMessage {
		payload.GitMessage = version.OrUnknown(info.GitMessage)
	}
	if opts.showDate {
		payload.BuildDate = version.OrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
