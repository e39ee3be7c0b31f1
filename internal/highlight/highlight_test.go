package highlight

import (
	"testing"

	"oath/internal/source"
)

type name struct{ sp source.Span }

func (n name) Highlight(h Highlighter, c Color) { h.Highlight(n.sp, c) }

func TestSinkOrderAndCollect(t *testing.T) {
	s := NewSink()
	a := source.FromStartLen(0, source.Pos(0, 0), 1)
	b := source.FromStartLen(0, source.Pos(0, 4), 2)
	s.Highlight(b, Blue)
	s.Highlight(a, Green)

	items := s.Collect()
	if len(items) != 2 || items[0] != (Item{Span: b, Color: Blue}) || items[1].Color != Green {
		t.Fatalf("emission order must be kept: %+v", items)
	}
	if s.Len() != 0 {
		t.Fatalf("collect must drain")
	}
}

func TestPassThroughHelpers(t *testing.T) {
	s := NewSink()
	sp := source.FromStartLen(0, source.Pos(1, 0), 3)

	Opt[name](s, nil, Cyan)
	if s.Len() != 0 {
		t.Fatalf("absent value must not highlight")
	}
	n := name{sp: sp}
	Opt(s, &n, Cyan)
	Each(s, []name{n, n}, Yellow)
	Spanned(s, sp, Green)

	want := []Color{Cyan, Yellow, Yellow, Green}
	items := s.Items()
	if len(items) != len(want) {
		t.Fatalf("want %d items, got %d", len(want), len(items))
	}
	for i, c := range want {
		if items[i].Color != c || items[i].Span != sp {
			t.Fatalf("item %d: %+v", i, items[i])
		}
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	var s *Sink
	s.Highlight(source.Span{}, Green)
	if s.Items() != nil || s.Collect() != nil || s.Len() != 0 {
		t.Fatalf("nil sink must be inert")
	}
}
