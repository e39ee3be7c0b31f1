package parser

import (
	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/source"
)

// Context is the per-unit state every scope shares: interner, diagnostics and highlights.
type Context struct {
	Interner   *source.Interner
	Reporter   diag.Reporter
	Highlights highlight.Highlighter
	// MaxErrors stops reporting errors after the limit; 0 means unlimited.
	MaxErrors uint

	errors       uint
	lastExpected source.Span
	hasExpected  bool
}

// NewContext builds a context; nil collaborators are replaced by inert ones.
func NewContext(in *source.Interner, r diag.Reporter, h highlight.Highlighter) *Context {
	if in == nil {
		in = source.NewInterner()
	}
	if r == nil {
		r = diag.NopReporter{}
	}
	if h == nil {
		h = highlight.Nop{}
	}
	return &Context{Interner: in, Reporter: r, Highlights: h}
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (c *Context) Enough() bool {
	if c.MaxErrors == 0 {
		return false
	}
	return c.errors >= c.MaxErrors
}

// Errors returns the number of errors reported through this context.
func (c *Context) Errors() uint {
	return c.errors
}

func (c *Context) report(sev diag.Severity, code diag.Code, sp source.Span, args []diag.Arg, fixes []diag.Fix) {
	if c.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		if c.Enough() {
			return
		}
		c.errors++
	}
	c.Reporter.Report(code, sev, sp, args, nil, fixes)
}

// expected reports "expected {desc}" once per position; further expectations
// failing at the same token are a cascade of the first.
func (c *Context) expected(sp source.Span, desc string, fixes []diag.Fix) {
	if c.hasExpected && c.lastExpected.File == sp.File && c.lastExpected.Start == sp.Start {
		return
	}
	c.expectedSkipped(sp, desc, fixes)
}

// expectedSkipped reports "expected {desc}" over tokens recovery dropped. A
// skipped run always gets its own diagnostic, even when an expectation has
// already failed at its first token.
func (c *Context) expectedSkipped(sp source.Span, desc string, fixes []diag.Fix) {
	c.lastExpected, c.hasExpected = sp, true
	c.report(diag.SevError, diag.SynExpected, sp, []diag.Arg{diag.Str(desc)}, fixes)
}

// Highlight forwards to the highlight sink, if any.
func (c *Context) Highlight(sp source.Span, col highlight.Color) {
	if c.Highlights != nil {
		c.Highlights.Highlight(sp, col)
	}
}
