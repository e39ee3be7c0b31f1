package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oath/internal/diagfmt"
	"oath/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.oath",
	Short: "Tokenize an oath source file",
	Long:  `Tokenize breaks an oath source file into token trees; groups are printed nested`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	s, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	format, err := s.format(cmd.Flags(), "pretty", "json")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(filePath, s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.FileSet, result.Interner, s.prettyOpts(os.Stderr)); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Trees, result.Interner)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Trees, result.Interner)
	}
}
