package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"oath/internal/source"
)

// oneLine is a diagnostic or note flattened to "sev CODE path:line:col message".
type oneLine struct {
	sev  string
	code string
	path string
	at   source.LineCol
	msg  string
}

func (l oneLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.at.Line, l.at.Col, l.msg)
}

func compareLines(a, b oneLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.at.Line, b.at.Line),
		cmp.Compare(a.at.Col, b.at.Col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.msg, b.msg),
	)
}

// FormatGoldenDiagnostics renders diagnostics one per line, sorted by path and
// position so the output is stable for golden files.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, in *source.Interner, includeNotes bool) string {
	lines := flatten(diags, fs, in, includeNotes)
	slices.SortStableFunc(lines, compareLines)
	return join(lines)
}

// FormatShortDiagnostics renders the same one-line form for CLI short output,
// keeping the order of diags.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, in *source.Interner, includeNotes bool) string {
	return join(flatten(diags, fs, in, includeNotes))
}

func flatten(diags []Diagnostic, fs *source.FileSet, in *source.Interner, includeNotes bool) []oneLine {
	if fs == nil {
		return nil
	}
	lines := make([]oneLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		if l, ok := lineAt(fs, d.Primary); ok {
			l.sev, l.code, l.msg = d.Severity.Label(), d.Code.ID(), singleLine(d.Message(in))
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			if l, ok := lineAt(fs, note.Span); ok {
				l.sev, l.code, l.msg = "note", d.Code.ID(), singleLine(note.Msg)
				lines = append(lines, l)
			}
		}
	}
	return lines
}

func lineAt(fs *source.FileSet, span source.Span) (oneLine, bool) {
	file := fs.Get(span.File)
	if file == nil {
		return oneLine{}, false
	}
	start, _ := fs.Resolve(span)
	path := strings.TrimPrefix(file.FormatPath(source.PathRelative, fs.BaseDir()), "./")
	return oneLine{path: path, at: start}, true
}

func join(lines []oneLine) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// singleLine folds line breaks so a message never spans rows.
func singleLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
