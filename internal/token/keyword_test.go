package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Keyword{
		"fn":      KwFn,
		"struct":  KwStruct,
		"mod":     KwMod,
		"use":     KwUse,
		"pub":     KwPub,
		"raw":     KwRaw,
		"con":     KwCon,
		"package": KwPackage,
		"promise": KwPromise,
		"require": KwRequire,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "STRUCT", "Mod", // регистр важен
		"int", "bool", "str", // имена типов: Ident
		"identifier", "functional",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordTableRoundTrip(t *testing.T) {
	for _, kw := range Keywords() {
		got, ok := LookupKeyword(kw.String())
		if !ok || got != kw {
			t.Fatalf("keyword %v does not round-trip through its lexeme", kw)
		}
	}
}
