package diag

import "oath/internal/source"

// DedupReporter forwards each distinct diagnostic once. Two reports are the
// same when code, severity, primary span and rendered arguments match; notes
// and fixes are not compared.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	text string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, args []Arg, notes []Note, fixes []Fix) {
	if r == nil || r.next == nil {
		return
	}
	// идентификаторы сравниваются по StrID, интернер не нужен
	key := dedupKey{code: code, sev: sev, span: primary, text: Diagnostic{Code: code, Args: args}.Message(nil)}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, primary, args, notes, fixes)
}
