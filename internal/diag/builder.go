package diag

import "oath/internal/source"

func New(sev Severity, code Code, primary source.Span, args ...Arg) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Args: args}
}

func NewError(code Code, primary source.Span, args ...Arg) Diagnostic {
	return New(SevError, code, primary, args...)
}

func NewWarning(code Code, primary source.Span, args ...Arg) Diagnostic {
	return New(SevWarning, code, primary, args...)
}

// WithNote returns a copy with one more note. The copy never aliases d.Notes.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes[:len(d.Fixes):len(d.Fixes)], Fix{Title: title, Edits: edits})
	return d
}
