package ast

import (
	"math/rand"
	"strings"
	"testing"

	"oath/internal/parser"
	"oath/internal/token"
)

// leadTokens is one source snippet per kind of first token.
func leadTokens() []string {
	var out []string
	for _, kw := range token.Keywords() {
		out = append(out, kw.String())
	}
	for _, p := range token.Puncts() {
		out = append(out, p.String())
	}
	return append(out, "x", "1", "\"s\"", "'c'", "()", "{}", "[]")
}

func TestFallbackExclusivity(t *testing.T) {
	type detecting interface {
		Detecting(p *parser.Parser) []string
	}
	enums := map[string]detecting{
		"item kind":    itemKinds,
		"statement":    stmts,
		"primary":      primaries,
		"type":         types,
		"path segment": segments,
	}
	for _, lead := range leadTokens() {
		for name, e := range enums {
			env := makeTestParser(t, lead)
			if got := e.Detecting(env.p); len(got) > 1 {
				t.Errorf("%s: %q detected by %v", name, lead, got)
			}
		}
	}
}

func checkDetectConsistency[T any](t *testing.T, name string, r parser.Rule[T]) {
	t.Helper()
	for _, lead := range leadTokens() {
		env := makeTestParser(t, lead+" x")
		before := env.p.Consumed()
		if !r.Detect(env.p) {
			if env.p.Consumed() != before {
				t.Errorf("%s: Detect consumed on %q", name, lead)
			}
			if _, ok, _ := parser.OptionParse(env.p, r); ok || env.p.Consumed() != before {
				t.Errorf("%s: OptionParse took %q without detecting it", name, lead)
			}
			continue
		}
		r.Parse(env.p)
		if env.p.Consumed() == before {
			t.Errorf("%s: Parse consumed nothing on %q", name, lead)
		}
	}
}

func TestDetectParseConsistency(t *testing.T) {
	checkDetectConsistency[*Item](t, "item", ItemRule{})
	checkDetectConsistency[*Attr](t, "attr", AttrRule{})
	checkDetectConsistency[Modifier](t, "modifier", ModifierRule{})
	checkDetectConsistency[*Mod](t, "mod", ModRule{})
	checkDetectConsistency[*Use](t, "use", UseRule{})
	checkDetectConsistency[*UseTree](t, "use tree", UseTreeRule{})
	checkDetectConsistency[*Path](t, "path", PathRule{})
	checkDetectConsistency[*Struct](t, "struct", StructRule{})
	checkDetectConsistency[*Field](t, "field", FieldRule{})
	checkDetectConsistency[*Trait](t, "trait", TraitRule{})
	checkDetectConsistency[*Fn](t, "fn", FnRule{})
	checkDetectConsistency[*Param](t, "param", ParamRule{})
	checkDetectConsistency[*GenericParam](t, "generic param", GenericParamRule{})
	checkDetectConsistency[*Bounds](t, "bounds", BoundsRule{})
	checkDetectConsistency[*ContractSegment](t, "contract", ContractSegmentRule{})
	checkDetectConsistency[Type](t, "type", TypeRule{})
	checkDetectConsistency[*Block](t, "block", BlockRule{})
	checkDetectConsistency[Stmt](t, "statement", StmtRule{})
	checkDetectConsistency[Expr](t, "expression", ExprRule{})
}

var wellFormed = []string{
	"struct F { f: int, g: bool }",
	"mod m { use a::{b, c as d}; pub fn f() {} }",
	"#[attr(1, x)] trait T<U: A>: B { fn f(mut x: &U) -> [U] promise x { x } }",
	"fn f<T = A>(x: Vec<Vec<T>>, y: (T, int)) -> T require x > 0 { let z: T = x.y[0] as T; if z { z } else { y } }",
	"fn g() { while a < b { a += 1; } return f(a, (b,), -c * !d); }",
}

func TestSpanContainment(t *testing.T) {
	for _, src := range wellFormed {
		env, tree := parseSource(t, src)
		env.noDiagnostics(t)
		root := Dump(tree, env.in)
		if env.text(root.Loc()) != src {
			t.Fatalf("root span = %q", env.text(root.Loc()))
		}
		root.Walk(func(n *DumpNode, _ int) {
			if n.Error {
				t.Errorf("%s: error node %s at %s", src, n.Kind, n.Span)
			}
			var prev *DumpNode
			for _, c := range n.Children {
				if c.Loc().Start.Less(n.Loc().Start) || n.Loc().End.Less(c.Loc().End) {
					t.Errorf("%s: %s %s escapes %s %s", src, c.Kind, c.Span, n.Kind, n.Span)
				}
				if prev != nil && c.Loc().Start.Less(prev.Loc().End) {
					t.Errorf("%s: %s %s overlaps %s %s", src, c.Kind, c.Span, prev.Kind, prev.Span)
				}
				prev = c
			}
		})
	}
}

func TestMalformedTerminates(t *testing.T) {
	inputs := []string{
		")))", "<<<", ">>>", "fn fn fn", "struct {", "#", "#[", "use ::;", "mod", "trait T: {",
		"fn f<T(x) {}", "fn f() { let }", "fn f() { if }", "fn f() { a.; }", "struct S { a: <, }",
		"fn f(x: Vec<int) {}", "pub", "pub pub", "fn f() -> { }", "{ } ; ; ;", "@@@",
	}
	rnd := rand.New(rand.NewSource(1))
	leads := leadTokens()
	for i := 0; i < 200; i++ {
		n := rnd.Intn(30)
		parts := make([]string, n)
		for j := range parts {
			parts[j] = leads[rnd.Intn(len(leads))]
		}
		inputs = append(inputs, strings.Join(parts, " "))
	}
	for _, src := range inputs {
		env, tree := parseSource(t, src)
		if !env.p.IsEmpty() {
			t.Fatalf("%q: input not fully consumed", src)
		}
		if Dump(tree, env.in) == nil {
			t.Fatalf("%q: dump is nil", src)
		}
	}
}
