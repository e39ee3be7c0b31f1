package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oath/internal/diagfmt"
	"oath/internal/driver"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.oath",
	Short: "Print an oath source file colored by declaration kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	s, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}
	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.Len() > 0 && !s.quiet {
		if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.FileSet, result.Interner, s.prettyOpts(os.Stderr)); err != nil {
			return err
		}
	}
	return diagfmt.FormatHighlighted(os.Stdout, result.File, result.Highlights, s.useColor(os.Stdout))
}
