package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"oath/internal/diag"
	"oath/internal/diagfmt"
	"oath/internal/driver"
	"oath/internal/observ"
	"oath/internal/source"
)

var diagCmd = &cobra.Command{
	Use:     "diagnose [flags] <file.oath|directory>",
	Aliases: []string{"diag"},
	Short:   "Run diagnostics on an oath source file or directory",
	Long:    `Run diagnostics to find token and syntax errors in an oath source file or all *.oath files within a directory`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDiagnose,
}

// init registers the diagnose flags: output format, concurrency, cache,
// progress UI, note/fix inclusion and path display.
func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("cache", false, "reuse diagnostics of unchanged files from the disk cache")
	diagCmd.Flags().String("ui", "off", "show a progress view for directories (auto|on|off)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	diagCmd.Flags().Bool("preview", false, "show fix previews (implies --suggest)")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

type diagOutput struct {
	format string
	pretty diagfmt.PrettyOpts
	json   diagfmt.JSONOpts
	notes  bool
}

func readDiagOutput(cmd *cobra.Command, s settings) (diagOutput, error) {
	flags := cmd.Flags()
	format, err := s.format(flags, "pretty", "short", "json")
	if err != nil {
		return diagOutput{}, err
	}
	withNotes, err := flags.GetBool("with-notes")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := flags.GetBool("suggest")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := flags.GetBool("preview")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return diagOutput{}, fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	paths := source.PathAuto
	if fullPath {
		paths = source.PathAbsolute
	}
	showFixes := suggest || preview
	return diagOutput{
		format: format,
		notes:  withNotes,
		pretty: diagfmt.PrettyOpts{
			Color:       s.useColor(os.Stdout),
			Context:     2,
			Paths:       paths,
			ShowNotes:   withNotes,
			ShowFixes:   showFixes,
			ShowPreview: preview,
		},
		json: diagfmt.JSONOpts{
			IncludePositions: true,
			Paths:            paths,
			IncludeNotes:     withNotes,
			IncludeFixes:     showFixes,
			IncludePreviews:  preview,
		},
	}, nil
}

// runDiagnose diagnoses a file or a directory, prints the diagnostics in the
// chosen format and returns errHasErrors when any of them is an error.
func runDiagnose(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	s, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	out, err := readDiagOutput(cmd, s)
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return diagnoseFile(cmd.Context(), filePath, opts, out, s)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	return diagnoseDir(cmd.Context(), filePath, opts, out, s, shouldUseTUI(mode))
}

func diagnoseFile(ctx context.Context, path string, opts driver.Options, out diagOutput, s settings) error {
	result, err := driver.Diagnose(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}
	if result.CacheErr != nil && !s.quiet {
		fmt.Fprintf(os.Stderr, "warning: cache: %v\n", result.CacheErr)
	}

	diags := result.Bag.Items()
	switch out.format {
	case "short":
		err = diagfmt.Short(os.Stdout, diags, result.FileSet, result.Interner, out.notes)
	case "json":
		err = diagfmt.JSON(os.Stdout, diags, result.FileSet, result.Interner, out.json)
	default:
		err = diagfmt.Pretty(os.Stdout, diags, result.FileSet, result.Interner, out.pretty)
	}
	if err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if s.timings {
		fmt.Fprint(os.Stderr, driver.TimingSummary(result.File.Path, result.Timing))
	}
	if result.Bag.HasErrors() {
		return errHasErrors
	}
	return nil
}

func diagnoseDir(ctx context.Context, dir string, opts driver.Options, out diagOutput, s settings, withUI bool) error {
	var (
		fs      *source.FileSet
		in      *source.Interner
		results []driver.DiagnoseDirResult
		err     error
	)
	if withUI {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return fmt.Errorf("diagnosis failed: %w", listErr)
		}
		err = runWithUI("diagnose "+dir, files, func(sink driver.ProgressSink) error {
			runOpts := opts
			runOpts.Progress = sink
			fs, in, results, err = driver.DiagnoseDir(ctx, dir, runOpts)
			return err
		})
	} else {
		fs, in, results, err = driver.DiagnoseDir(ctx, dir, opts)
	}
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	hasErrors := false
	bags := make([]*diag.Bag, 0, len(results))
	reports := make([]*observ.Report, 0, len(results))
	for _, r := range results {
		if r.Bag.HasErrors() {
			hasErrors = true
		}
		if r.CacheErr != nil && !s.quiet {
			fmt.Fprintf(os.Stderr, "warning: cache: %s: %v\n", r.Path, r.CacheErr)
		}
		bags = append(bags, r.Bag)
		reports = append(reports, r.Timing)
	}

	switch out.format {
	case "short":
		err = diagfmt.Short(os.Stdout, driver.MergeBags(bags...).Items(), fs, in, out.notes)
	case "json":
		err = writeDirJSON(os.Stdout, results, fs, in, out.json)
	default:
		err = writeDirPretty(os.Stdout, results, fs, in, out.pretty, s.quiet)
	}
	if err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if s.timings {
		total := observ.Aggregate(reports...)
		fmt.Fprint(os.Stderr, driver.TimingSummary(dir, &total))
	}
	if hasErrors {
		return errHasErrors
	}
	return nil
}

func writeDirPretty(w io.Writer, results []driver.DiagnoseDirResult, fs *source.FileSet, in *source.Interner, opts diagfmt.PrettyOpts, quiet bool) error {
	first := true
	for _, r := range results {
		// без --quiet печатаем заголовок даже для чистых файлов
		if quiet && r.Bag.Len() == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		if !quiet {
			fmt.Fprintf(w, "== %s ==\n", displayPath(fs, r.FileID, r.Path))
		}
		if err := diagfmt.Pretty(w, r.Bag.Items(), fs, in, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeDirJSON(w io.Writer, results []driver.DiagnoseDirResult, fs *source.FileSet, in *source.Interner, opts diagfmt.JSONOpts) error {
	output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
	for _, r := range results {
		output[displayPath(fs, r.FileID, r.Path)] = diagfmt.BuildDiagnosticsOutput(r.Bag.Items(), fs, in, opts)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
