package diagfmt

import (
	"strings"

	"oath/internal/diag"
	"oath/internal/source"
)

// previewEdit returns the whole lines touched by edit before and after
// applying it. ok is false when the edit does not fit its file.
func previewEdit(fs *source.FileSet, edit diag.FixEdit) (before, after []string, ok bool) {
	if fs == nil {
		return nil, nil, false
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return nil, nil, false
	}

	first, last := edit.Span.Start.Line, max(edit.Span.End.Line, edit.Span.Start.Line)
	blockStart := file.LineStart(first)
	blockEnd := max(file.LineStart(last+1), blockStart)
	from, to := file.Offset(edit.Span.Start), file.Offset(edit.Span.End)
	if from < blockStart || to < from || to > blockEnd {
		return nil, nil, false
	}

	block := string(file.Content[blockStart:blockEnd])
	relFrom, relTo := from-blockStart, to-blockStart
	patched := block[:relFrom] + edit.NewText + block[relTo:]
	return previewLines(block), previewLines(patched), true
}

func previewLines(s string) []string {
	if s == "" {
		return nil
	}
	// хвостовой \n не даёт пустой строки в превью
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
