package diagfmt

import (
	"encoding/json"
	"io"

	"oath/internal/diag"
	"oath/internal/source"
)

// LocationJSON is a file plus an optional 1-based range.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root object of `--format json`.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	in   *source.Interner
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) LocationJSON {
	var loc LocationJSON
	if f := b.fs.Get(span.File); f != nil {
		loc.File = formatPath(f, b.fs, b.opts.Paths)
	}
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (b jsonBuilder) fix(fix diag.Fix) FixJSON {
	fj := FixJSON{Title: fix.Title}
	for _, edit := range fix.Edits {
		ej := FixEditJSON{Location: b.location(edit.Span), NewText: edit.NewText}
		if b.opts.IncludePreviews {
			ej.BeforeLines, ej.AfterLines, _ = previewEdit(b.fs, edit)
		}
		fj.Edits = append(fj.Edits, ej)
	}
	return fj
}

func (b jsonBuilder) diagnostic(d *diag.Diagnostic) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message(b.in),
		Location: b.location(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, note := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: b.location(note.Span)})
		}
	}
	if b.opts.IncludeFixes {
		for _, fix := range d.Fixes {
			dj.Fixes = append(dj.Fixes, b.fix(fix))
		}
	}
	return dj
}

// BuildDiagnosticsOutput builds the JSON document without encoding it.
// opts.Max > 0 keeps only the first Max diagnostics.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, fs *source.FileSet, in *source.Interner, opts JSONOpts) DiagnosticsOutput {
	if opts.Max > 0 && opts.Max < len(diags) {
		diags = diags[:opts.Max]
	}
	b := jsonBuilder{fs: fs, in: in, opts: opts}
	out := make([]DiagnosticJSON, 0, len(diags))
	for i := range diags {
		out = append(out, b.diagnostic(&diags[i]))
	}
	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// JSON encodes diagnostics as an indented DiagnosticsOutput.
func JSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, in *source.Interner, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(diags, fs, in, opts))
}
