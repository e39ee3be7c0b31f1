package parser

import (
	"oath/internal/highlight"
	"oath/internal/source"
)

// Try is a recoverable parse result. A failure still carries the zero value
// of T and a zero-width span at the point of failure.
type Try[T any] struct {
	value T
	ok    bool
	at    source.Span
}

func Success[T any](v T) Try[T] {
	return Try[T]{value: v, ok: true}
}

func Failure[T any](at source.Span) Try[T] {
	return Try[T]{at: at}
}

// Get returns the value and whether parsing succeeded.
func (t Try[T]) Get() (T, bool) { return t.value, t.ok }

// Value returns the parsed value or the zero placeholder.
func (t Try[T]) Value() T { return t.value }

func (t Try[T]) OK() bool { return t.ok }

// OptionSpan is the span of a successful value that has one.
func (t Try[T]) OptionSpan() (source.Span, bool) {
	if !t.ok {
		return source.Span{}, false
	}
	return spanOf(t.value)
}

// Span is the value's span, or the failure point.
func (t Try[T]) Span() source.Span {
	if sp, ok := t.OptionSpan(); ok {
		return sp
	}
	return t.at
}

// Highlight forwards to a successful value.
func (t Try[T]) Highlight(h highlight.Highlighter, c highlight.Color) {
	if !t.ok {
		return
	}
	if hv, ok := any(t.value).(highlight.Highlightable); ok {
		hv.Highlight(h, c)
	}
}

func spanOf(v any) (source.Span, bool) {
	switch s := v.(type) {
	case source.OptionSpanned:
		return s.OptionSpan()
	case source.Spanned:
		return s.Span(), true
	}
	return source.Span{}, false
}
