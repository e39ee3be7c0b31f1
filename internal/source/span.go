package source

import (
	"fmt"
)

// Span is a half-open range [Start, End) inside one file.
// Invariant: Start <= End.
type Span struct {
	File  FileID
	Start Position // включительно
	End   Position // не включительно
}

// Spanned is implemented by everything that always covers some source.
type Spanned interface {
	Span() Span
}

// OptionSpanned is implemented by values that may cover nothing,
// e.g. a failed parse or an empty list.
type OptionSpanned interface {
	OptionSpan() (Span, bool)
}

// FromStartEnd builds a span, swapping the ends if they are reversed.
func FromStartEnd(file FileID, start, end Position) Span {
	if end.Less(start) {
		start, end = end, start
	}
	return Span{File: file, Start: start, End: end}
}

// FromStartLen builds a single-line span of n columns beginning at start.
func FromStartLen(file FileID, start Position, n uint32) Span {
	return Span{File: file, Start: start, End: start.Advance(n)}
}

// FromEndLen builds a single-line span of n columns ending at end.
// The start saturates at column 0.
func FromEndLen(file FileID, end Position, n uint32) Span {
	start := end
	if n > end.Col {
		start.Col = 0
	} else {
		start.Col = end.Col - n
	}
	return Span{File: file, Start: start, End: end}
}

// ZeroAt is an empty span located at pos.
func ZeroAt(file FileID, pos Position) Span {
	return Span{File: file, Start: pos, End: pos}
}

func (s Span) Span() Span { return s }

func (s Span) OptionSpan() (Span, bool) { return s, true }

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Line reports the line of a single-line span.
func (s Span) Line() (uint32, bool) {
	if s.Start.Line != s.End.Line {
		return 0, false
	}
	return s.Start.Line, true
}

// Len reports the width of a single-line span.
func (s Span) Len() (uint32, bool) {
	if s.Start.Line != s.End.Line {
		return 0, false
	}
	return s.End.Col - s.Start.Col, true
}

// Contains reports whether pos falls inside [Start, End).
func (s Span) Contains(pos Position) bool {
	return !pos.Less(s.Start) && pos.Less(s.End)
}

// Join returns the minimal span covering both s and other.
// Spans from different files are not joined.
func (s Span) Join(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = minPos(s.Start, other.Start)
	s.End = maxPos(s.End, other.End)
	return s
}

// Cover is the historical name of Join.
func (s Span) Cover(other Span) Span {
	return s.Join(other)
}

// StartSpan / EndSpan are the zero-width spans at either edge.
func (s Span) StartSpan() Span { return ZeroAt(s.File, s.Start) }
func (s Span) EndSpan() Span   { return ZeroAt(s.File, s.End) }

func (s Span) String() string {
	return fmt.Sprintf("%d:%s-%s", s.File, s.Start, s.End)
}

// JoinAll folds Join over spans. ok is false for an empty input.
func JoinAll(spans ...Span) (Span, bool) {
	if len(spans) == 0 {
		return Span{}, false
	}
	out := spans[0]
	for _, sp := range spans[1:] {
		out = out.Join(sp)
	}
	return out, true
}

// JoinOptional joins present spans and skips absent ones.
func JoinOptional(items ...OptionSpanned) (Span, bool) {
	var (
		out Span
		has bool
	)
	for _, it := range items {
		if it == nil {
			continue
		}
		sp, ok := it.OptionSpan()
		if !ok {
			continue
		}
		if !has {
			out, has = sp, true
			continue
		}
		out = out.Join(sp)
	}
	return out, has
}
