package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"oath/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "oath",
	Short:         "Oath language front end",
	Long:          `Oath tokenizes, parses and diagnoses oath source files`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errHasErrors signals a finished run that reported error diagnostics.
var errHasErrors = errors.New("diagnostics contain errors")

// main registers subcommands and persistent flags and executes the root command.
// Any error exits with status 1; errHasErrors exits silently.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to oath.toml (default: searched upward from the input)")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHasErrors) {
			rootCmd.PrintErrln("error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
