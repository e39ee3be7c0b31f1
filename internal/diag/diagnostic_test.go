package diag

import (
	"testing"

	"oath/internal/source"
)

func TestRenderTemplates(t *testing.T) {
	in := source.NewInterner()
	foo := in.Intern("foo")

	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"expected", NewError(SynExpected, source.Span{}, Str("an item")), "expected an item"},
		{"cannot be put on", NewError(SynCannotBePutOn, source.Span{}, Str("`raw`"), Str("a module")), "`raw` cannot be put on a module"},
		{"double", NewError(SynDouble, source.Span{}, Str("`pub`")), "double `pub`"},
		{"ident arg", NewError(SemaDoesntExist, source.Span{}, Ident(foo)), "`foo` doesn't exist in this context"},
		{"no placeholders", NewError(TokUnknownToken, source.Span{}), "unknown token"},
		{"missing arg", NewError(SynCannotBePutOn, source.Span{}, Str("`raw`")), "`raw` cannot be put on ?"},
		{"unclosed", NewError(TokUnclosed, source.Span{}, Str("`(`")), "unclosed `(`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Message(in); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{TokUnclosed, "TOK1002"},
		{SynExpected, "SYN2001"},
		{SemaDoesntExist, "SEM3001"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d: want %s, got %s", tt.code, tt.want, got)
		}
	}
}

func TestBagCollectBySeverity(t *testing.T) {
	b := NewBag(10)
	b.PushError(SynExpected, source.Span{}, Str("a"))
	b.PushWarning(SynDouble, source.Span{}, Str("b"))
	b.PushError(SynExpected, source.Span{}, Str("c"))

	errs := b.CollectErrors()
	if len(errs) != 2 || errs[0].Message(nil) != "expected a" || errs[1].Message(nil) != "expected c" {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if b.Len() != 1 {
		t.Fatalf("warning should stay in the bag, len=%d", b.Len())
	}
	if again := b.CollectErrors(); len(again) != 0 {
		t.Fatalf("errors must be drained, got %d", len(again))
	}
	warns := b.CollectWarnings()
	if len(warns) != 1 || b.Len() != 0 {
		t.Fatalf("warnings not drained: %d left=%d", len(warns), b.Len())
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 5; i++ {
		b.PushError(TokUnknownToken, source.Span{})
	}
	if b.Len() != 2 || !b.Full() {
		t.Fatalf("bag must stop at its cap, len=%d", b.Len())
	}
	if NewBag(0).Cap() == 0 {
		t.Fatalf("zero max should mean unlimited")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	late := source.FromStartLen(0, source.Pos(3, 0), 1)
	early := source.FromStartLen(0, source.Pos(1, 2), 1)
	b.PushWarning(SynDouble, late, Str("x"))
	b.PushError(SynExpected, early, Str("y"))
	b.PushError(SynExpected, early, Str("y"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("dedup failed: %d", len(items))
	}
	if items[0].Primary != early {
		t.Fatalf("sort failed: %v", items[0].Primary)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.FromStartLen(0, source.Pos(0, 0), 2)
	ReportError(r, SynExpected, sp, Str("`;`")).Emit()
	ReportError(r, SynExpected, sp, Str("`;`")).Emit()
	ReportError(r, SynExpected, sp, Str("`,`")).WithNote(sp, "here").Emit()
	if bag.Len() != 2 {
		t.Fatalf("want 2 diagnostics, got %d", bag.Len())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Fatalf("note lost")
	}
}
