package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"oath/internal/diag"
	"oath/internal/source"
)

type palette struct {
	err, warn, info, gutter, caret, note, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
		fix:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.caret, p.note, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строки контекста с подчёркиванием ^~~~ по Span, затем notes и fixes.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, in *source.Interner, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i := range diags {
		if err := prettyOne(w, &diags[i], fs, in, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, in *source.Interner, opts PrettyOpts, pal palette) error {
	file := fs.Get(d.Primary.File)
	if file == nil {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), d.Code.ID(), d.Message(in))
		return err
	}
	start := d.Primary.Start.LineCol()
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file, fs, opts.Paths), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity), d.Code.ID(), d.Message(in)); err != nil {
		return err
	}
	if err := writeSnippet(w, file, d.Primary, opts.Context, pal); err != nil {
		return err
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			loc := note.Span.Start.LineCol()
			path := "?"
			if nf := fs.Get(note.Span.File); nf != nil {
				path = formatPath(nf, fs, opts.Paths)
			}
			if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), path, loc.Line, loc.Col, note.Msg); err != nil {
				return err
			}
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			if err := writeFix(w, fs, i, fix, opts, pal); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSnippet prints the primary line with a caret underline and up to ctx lines around it.
func writeSnippet(w io.Writer, file *source.File, sp source.Span, ctx int8, pal palette) error {
	line := sp.Start.Line
	first := line
	if ctx > 0 {
		first = line - min(line, uint32(ctx))
	}
	last := min(line+uint32(max(ctx, 0)), file.LineCount()-1)
	width := len(fmt.Sprint(last + 1))

	for l := first; l <= last; l++ {
		text := file.GetLine(l + 1)
		if _, err := fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, l+1), text); err != nil {
			return err
		}
		if l != line {
			continue
		}
		pad, marks := caretLayout(text, sp)
		if _, err := fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""), pad, pal.caret.Sprint(marks)); err != nil {
			return err
		}
	}
	return nil
}

// caretLayout measures the underline in display columns; columns in spans count bytes.
func caretLayout(text string, sp source.Span) (string, string) {
	startCol := min(int(sp.Start.Col), len(text))
	endCol := len(text)
	if sp.End.Line == sp.Start.Line {
		endCol = min(int(sp.End.Col), len(text))
	}
	var pad strings.Builder
	for _, r := range text[:startCol] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	n := runewidth.StringWidth(text[startCol:max(endCol, startCol)])
	if n <= 1 {
		return pad.String(), "^"
	}
	return pad.String(), "^" + strings.Repeat("~", n-1)
}

func writeFix(w io.Writer, fs *source.FileSet, idx int, fix diag.Fix, opts PrettyOpts, pal palette) error {
	if _, err := fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", idx+1), fix.Title); err != nil {
		return err
	}
	for _, edit := range fix.Edits {
		start, end := fs.Resolve(edit.Span)
		if _, err := fmt.Fprintf(w, "    edit %d:%d-%d:%d apply=%q\n", start.Line, start.Col, end.Line, end.Col, edit.NewText); err != nil {
			return err
		}
		if !opts.ShowPreview {
			continue
		}
		before, after, ok := previewEdit(fs, edit)
		if !ok {
			continue
		}
		fmt.Fprintln(w, "    preview:")
		for _, l := range before {
			fmt.Fprintf(w, "      - %s\n", l)
		}
		for _, l := range after {
			fmt.Fprintf(w, "      + %s\n", l)
		}
	}
	return nil
}

// Short печатает однострочную форму, как golden-вывод.
func Short(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, in *source.Interner, includeNotes bool) error {
	out := diag.FormatShortDiagnostics(diags, fs, in, includeNotes)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
