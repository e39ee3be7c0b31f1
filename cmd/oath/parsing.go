package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"oath/internal/ast"
	"oath/internal/diagfmt"
	"oath/internal/driver"
	"oath/internal/observ"
	"oath/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.oath|directory>",
	Short: "Parse an oath source file or directory and output the syntax tree",
	Long:  `Parse analyzes an oath source file or all *.oath files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	s, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	format, err := s.format(cmd.Flags(), "pretty", "json", "yaml")
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if result.Bag.Len() > 0 {
			if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.FileSet, result.Interner, s.prettyOpts(os.Stderr)); err != nil {
				return err
			}
		}
		if s.timings {
			fmt.Fprint(os.Stderr, driver.TimingSummary(result.File.Path, result.Timing))
		}
		return writeTree(os.Stdout, format, result.Tree, result.Interner)
	}

	fs, in, results, err := driver.ParseDir(cmd.Context(), filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	prettyOpts := s.prettyOpts(os.Stderr)
	reports := make([]*observ.Report, 0, len(results))
	for _, r := range results {
		if r.Bag.Len() > 0 {
			if err := diagfmt.Pretty(os.Stderr, r.Bag.Items(), fs, in, prettyOpts); err != nil {
				return err
			}
		}
		reports = append(reports, r.Timing)
	}
	if s.timings {
		total := observ.Aggregate(reports...)
		fmt.Fprint(os.Stderr, driver.TimingSummary(filePath, &total))
	}

	switch format {
	case "json", "yaml":
		output := make(map[string]*ast.DumpNode, len(results))
		for _, r := range results {
			output[displayPath(fs, r.FileID, r.Path)] = ast.Dump(r.Tree, in)
		}
		if format == "yaml" {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(output); err != nil {
				return err
			}
			return enc.Close()
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	default:
		for idx, r := range results {
			if !s.quiet {
				fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(fs, r.FileID, r.Path))
			}
			if r.Tree != nil {
				if err := diagfmt.FormatASTPretty(os.Stdout, r.Tree, in); err != nil {
					return err
				}
			}
			if !s.quiet && idx < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
	}
	return nil
}

func writeTree(w io.Writer, format string, tree *ast.SyntaxTree, in *source.Interner) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(w, tree, in)
	case "yaml":
		return diagfmt.FormatASTYAML(w, tree, in)
	default:
		return diagfmt.FormatASTPretty(w, tree, in)
	}
}

func displayPath(fs *source.FileSet, id source.FileID, fallback string) string {
	if file := fs.Get(id); file != nil {
		return file.FormatPath("relative", fs.BaseDir())
	}
	return fallback
}
