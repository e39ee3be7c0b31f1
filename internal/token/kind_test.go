package token_test

import (
	"testing"

	"oath/internal/source"
	"oath/internal/token"
)

func TestMatchPunctLongestFirst(t *testing.T) {
	cases := []struct {
		src  string
		want token.Punct
		n    int
	}{
		{">>= x", token.ShrAssign, 3},
		{">> x", token.Shr, 2},
		{">= x", token.GtEq, 2},
		{"> x", token.Gt, 1},
		{"::a", token.ColonColon, 2},
		{":a", token.Colon, 1},
		{"->", token.Arrow, 2},
		{"@@", token.At, 1},
	}
	for _, tc := range cases {
		got, n, ok := token.MatchPunct([]byte(tc.src))
		if !ok || got != tc.want || n != tc.n {
			t.Errorf("MatchPunct(%q) = %v,%d,%v want %v,%d", tc.src, got, n, ok, tc.want, tc.n)
		}
	}
	if _, _, ok := token.MatchPunct([]byte("$")); ok {
		t.Error("'$' is not a punct")
	}
}

func TestPunctTableRoundTrip(t *testing.T) {
	for _, p := range token.Puncts() {
		got, n, ok := token.MatchPunct([]byte(p.String()))
		if !ok || got != p || n != len(p.String()) {
			t.Fatalf("punct %q does not round-trip: got %v", p.String(), got)
		}
	}
}

func TestSplitGt(t *testing.T) {
	cases := map[token.Punct]token.Punct{
		token.Shr:       token.Gt,
		token.GtEq:      token.Assign,
		token.ShrAssign: token.GtEq,
	}
	for p, want := range cases {
		rest, ok := p.SplitGt()
		if !ok || rest != want {
			t.Errorf("%v.SplitGt() = %v,%v want %v", p, rest, ok, want)
		}
		if !p.IsGtClass() {
			t.Errorf("%v must be gt-class", p)
		}
	}
	if !token.Gt.IsGtClass() {
		t.Error("'>' is gt-class")
	}
	if _, ok := token.Lt.SplitGt(); ok {
		t.Error("'<' must not split")
	}
}

func TestTreePredicates(t *testing.T) {
	sp := source.Span{}
	kw := token.NewKeyword(token.KwFn, sp)
	if !kw.IsKeyword(token.KwFn) || kw.IsKeyword(token.KwLet) || kw.IsIdent() {
		t.Fatal("keyword predicates")
	}
	p := token.NewPunct(token.Comma, sp)
	if !p.IsPunct(token.Comma) || p.IsPunct(token.Semicolon) {
		t.Fatal("punct predicates")
	}
	g := token.NewGroup(&token.Group{Delim: token.Braces, Trees: []token.Tree{kw, p}})
	if !g.IsGroup(token.Braces) || g.IsGroup(token.Parens) {
		t.Fatal("group predicates")
	}
	if g.Count() != 4 {
		t.Fatalf("Count = %d, want 4", g.Count())
	}
	if g.Describe() != "`{`" || kw.Describe() != "`fn`" {
		t.Fatalf("Describe = %q, %q", g.Describe(), kw.Describe())
	}
}
