package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"oath/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs, in, diags := sampleDiagnostic("test.oath")
	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, Paths: source.PathBasename, IncludeNotes: true, IncludeFixes: true, IncludePreviews: true}
	if err := JSON(&buf, diags, fs, in, opts); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2001" || d.Message != "expected `;`" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Location.File != "test.oath" || d.Location.StartLine != 2 || d.Location.StartCol != 11 || d.Location.EndCol != 12 {
		t.Fatalf("unexpected location %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "statement ends here" {
		t.Fatalf("unexpected notes %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("unexpected fixes %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != ";" {
		t.Fatalf("new_text = %q", edit.NewText)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "  let x = 1;" {
		t.Fatalf("after_lines = %q", edit.AfterLines)
	}
}

func TestJSONOmitsOptionalParts(t *testing.T) {
	fs, in, diags := sampleDiagnostic("test.oath")
	out := BuildDiagnosticsOutput(diags, fs, in, JSONOpts{})
	d := out.Diagnostics[0]
	if d.Location.StartLine != 0 || d.Notes != nil || d.Fixes != nil {
		t.Fatalf("expected bare diagnostic, got %+v", d)
	}
}

func TestJSONMax(t *testing.T) {
	fs, in, diags := sampleDiagnostic("test.oath")
	diags = append(diags, diags[0], diags[0])
	out := BuildDiagnosticsOutput(diags, fs, in, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
}
