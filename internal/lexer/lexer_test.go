package lexer

import (
	"strings"
	"testing"

	"oath/internal/diag"
	"oath/internal/source"
	"oath/internal/token"
)

func tokenize(t *testing.T, src string) (*Output, *diag.Bag, *source.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oath", []byte(src))
	bag := diag.NewBag(100)
	in := source.NewInterner()
	out := Tokenize(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}, Interner: in})
	return out, bag, in
}

func messages(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Message(nil))
	}
	return out
}

func kinds(trees []token.Tree) string {
	parts := make([]string, 0, len(trees))
	for _, tr := range trees {
		switch tr.Kind {
		case token.TreeIdent:
			parts = append(parts, "ident")
		case token.TreeKeyword:
			parts = append(parts, tr.Keyword.String())
		case token.TreePunct:
			parts = append(parts, tr.Punct.String())
		case token.TreeLiteral:
			parts = append(parts, "lit")
		case token.TreeGroup:
			parts = append(parts, tr.Group.Delim.Open()+kinds(tr.Group.Trees)+tr.Group.Delim.Close())
		}
	}
	return strings.Join(parts, " ")
}

func TestTokenizeShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"struct", "struct F { f: int, g: bool }", "struct ident {ident : ident , ident : ident}"},
		{"nested groups", "f(a[1], {b})", "ident (ident [lit] , {ident})"},
		{"angles are puncts", "Vec<Vec<int>>", "ident < ident < ident >>"},
		{"longest punct", "a >>= b :: c", "ident >>= ident :: ident"},
		{"comments", "a // line\n/* block /* nested */ */ b", "ident ident"},
		{"keywords", "pub raw con fn mod use", "pub raw con fn mod use"},
		{"field access on int", "1.foo", "lit . ident"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, bag, _ := tokenize(t, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %v", messages(bag))
			}
			if got := kinds(out.Trees); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	out, _, _ := tokenize(t, "fn a(\n  b)")
	if len(out.Trees) != 3 {
		t.Fatalf("want 3 trees, got %d", len(out.Trees))
	}
	g := out.Trees[2]
	if !g.IsGroup(token.Parens) {
		t.Fatalf("third tree must be a parens group")
	}
	if g.Group.Open != source.FromStartLen(0, source.Pos(0, 4), 1) {
		t.Fatalf("open span %v", g.Group.Open)
	}
	if g.Group.Close != source.FromStartLen(0, source.Pos(1, 3), 1) {
		t.Fatalf("close span %v", g.Group.Close)
	}
	if g.Span != g.Group.Open.Join(g.Group.Close) {
		t.Fatalf("group span must join its delimiters")
	}
	if inner := g.Group.Trees[0].Span; inner != source.FromStartLen(0, source.Pos(1, 2), 1) {
		t.Fatalf("inner ident span %v", inner)
	}
	eof := out.EndOfFileSpan()
	if eof.Start != source.Pos(1, 4) || !eof.Empty() {
		t.Fatalf("eof span %v", eof)
	}
}

func TestTokenizeDelimiterErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		shape string
		diags []string
	}{
		{"unclosed at eof", "fn (", "fn ()", []string{"unclosed `(`"}},
		{"unopened", "a ) b", "ident ident", []string{"unopened `)`"}},
		{"mismatched closes inner", "{ ( }", "{()}", []string{"unclosed `(`"}},
		{"two unclosed", "[ {", "[{}]", []string{"unclosed `{`", "unclosed `[`"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, bag, _ := tokenize(t, tt.src)
			if got := kinds(out.Trees); got != tt.shape {
				t.Fatalf("shape: want %q, got %q", tt.shape, got)
			}
			got := messages(bag)
			if strings.Join(got, "|") != strings.Join(tt.diags, "|") {
				t.Fatalf("diags: want %v, got %v", tt.diags, got)
			}
		})
	}
}

func TestUnclosedGroupEndsAtEOF(t *testing.T) {
	out, bag, _ := tokenize(t, "(a")
	g := out.Trees[0].Group
	if g.Close != out.EndOfFileSpan() {
		t.Fatalf("unclosed group must close at eof, got %v", g.Close)
	}
	notes := bag.Items()[0].Notes
	if len(notes) != 1 || notes[0].Msg != "file ends here" || notes[0].Span != out.EndOfFileSpan() {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestUnclosedByOuterCloserNotesIt(t *testing.T) {
	_, bag, _ := tokenize(t, "{ ( }")
	if bag.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", messages(bag))
	}
	notes := bag.Items()[0].Notes
	if len(notes) != 1 || notes[0].Msg != "closed here by `}`" || notes[0].Span != source.FromStartLen(0, source.Pos(0, 4), 1) {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tests := []struct {
		src    string
		kind   token.LitKind
		raw    string
		suffix string
	}{
		{"42", token.LitInt, "42", ""},
		{"1_000u32", token.LitInt, "1_000", "u32"},
		{"0xff", token.LitInt, "0xff", ""},
		{"0b1010i8", token.LitInt, "0b1010", "i8"},
		{"3.14", token.LitFloat, "3.14", ""},
		{"1e-3", token.LitFloat, "1e-3", ""},
		{".5f32", token.LitFloat, ".5", "f32"},
		{`"hi \"there\""`, token.LitStr, `hi \"there\"`, ""},
		{`'a'`, token.LitChar, "a", ""},
		{`'\n'`, token.LitChar, `\n`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out, bag, in := tokenize(t, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %v", messages(bag))
			}
			if len(out.Trees) != 1 || !out.Trees[0].IsLiteral() {
				t.Fatalf("want one literal, got %q", kinds(out.Trees))
			}
			lit := out.Trees[0].Lit
			if lit.Kind != tt.kind || lit.Raw != tt.raw {
				t.Fatalf("want %v %q, got %v %q", tt.kind, tt.raw, lit.Kind, lit.Raw)
			}
			suffix := ""
			if lit.Suffix != source.NoStrID {
				suffix = in.MustLookup(lit.Suffix)
			}
			if suffix != tt.suffix {
				t.Fatalf("suffix: want %q, got %q", tt.suffix, suffix)
			}
		})
	}
}

func TestTokenizeLexicalErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"abc`, "unterminated string"},
		{"\"ab\ncd\"", "unterminated string"},
		{`'a`, "unterminated char"},
		{"/* open", "unterminated block comment"},
		{"0x", "malformed number"},
		{"1e+", "malformed number"},
		{"a $ b", "unknown token"},
		{"a ~~~ b", "unknown token"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, bag, _ := tokenize(t, tt.src)
			got := messages(bag)
			if len(got) == 0 || got[0] != tt.want {
				t.Fatalf("want %q first, got %v", tt.want, got)
			}
		})
	}
}

func TestUnknownRunCoalesces(t *testing.T) {
	out, bag, _ := tokenize(t, "a $$$ b")
	if bag.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", messages(bag))
	}
	if got := bag.Items()[0].Primary; got != source.FromStartLen(0, source.Pos(0, 2), 3) {
		t.Fatalf("span %v", got)
	}
	if kinds(out.Trees) != "ident ident" {
		t.Fatalf("unknown runs must be dropped, got %q", kinds(out.Trees))
	}
}

func TestIdentNFC(t *testing.T) {
	// "é" как e + combining acute и как предсоставленный символ
	out, _, in := tokenize(t, "e\u0301 \u00e9")
	if len(out.Trees) != 2 {
		t.Fatalf("want 2 idents, got %q", kinds(out.Trees))
	}
	if out.Trees[0].Ident != out.Trees[1].Ident {
		t.Fatalf("NFC forms must intern to one id: %q vs %q",
			in.MustLookup(out.Trees[0].Ident), in.MustLookup(out.Trees[1].Ident))
	}
}

func TestOutputStream(t *testing.T) {
	out, _, _ := tokenize(t, "a b")
	if out.PeekIsEmpty() || len(out.Trees) != 2 {
		t.Fatalf("fresh stream must have 2 trees")
	}
	out.Next()
	out.Next()
	if _, ok := out.Next(); ok || !out.PeekIsEmpty() {
		t.Fatalf("stream must be exhausted")
	}
}
