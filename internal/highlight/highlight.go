// Package highlight records (span, color) pairs emitted while parsing.
// Highlighting is best-effort and never affects parse results.
package highlight

import (
	"oath/internal/source"
)

// Color is a semantic highlight class.
type Color uint8

const (
	// Green marks declared type, struct, trait and module names.
	Green Color = iota
	// Blue marks function names.
	Blue
	// Cyan marks field, parameter and binding names.
	Cyan
	// Yellow marks attribute names and contract keywords.
	Yellow
)

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Yellow:
		return "yellow"
	}
	return "unknown"
}

// Item is one recorded highlight.
type Item struct {
	Span  source.Span
	Color Color
}

// Highlighter accepts highlight requests.
type Highlighter interface {
	Highlight(sp source.Span, c Color)
}

// Highlightable values forward a color to whichever of their spans should carry it.
type Highlightable interface {
	Highlight(h Highlighter, c Color)
}

// Sink is an append-only highlight list. The zero value is ready to use.
type Sink struct {
	items []Item
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Highlight(sp source.Span, c Color) {
	if s == nil {
		return
	}
	s.items = append(s.items, Item{Span: sp, Color: c})
}

// Items returns the recorded highlights in emission order.
func (s *Sink) Items() []Item {
	if s == nil {
		return nil
	}
	return s.items
}

func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Collect drains the sink.
func (s *Sink) Collect() []Item {
	if s == nil {
		return nil
	}
	out := s.items
	s.items = nil
	return out
}

// Nop drops every request.
type Nop struct{}

func (Nop) Highlight(source.Span, Color) {}

// Spanned highlights the full span of v.
func Spanned(h Highlighter, v source.Spanned, c Color) {
	if h == nil {
		return
	}
	h.Highlight(v.Span(), c)
}

// Opt forwards to v when present.
func Opt[T Highlightable](h Highlighter, v *T, c Color) {
	if v == nil {
		return
	}
	(*v).Highlight(h, c)
}

// Each forwards to every element.
func Each[T Highlightable](h Highlighter, items []T, c Color) {
	for _, it := range items {
		it.Highlight(h, c)
	}
}
