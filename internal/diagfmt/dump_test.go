package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"oath/internal/ast"
	"oath/internal/highlight"
	"oath/internal/lexer"
	"oath/internal/parser"
	"oath/internal/source"
)

func tokenize(t *testing.T, src string) (*source.File, *source.Interner, *lexer.Output) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.oath", []byte(src)))
	in := source.NewInterner()
	return file, in, lexer.Tokenize(file, lexer.Options{Interner: in})
}

func parseTree(t *testing.T, src string) (*ast.SyntaxTree, *source.Interner) {
	t.Helper()
	_, in, out := tokenize(t, src)
	tree := ast.Parse(parser.New(parser.NewContext(in, nil, nil), out))
	if tree == nil {
		t.Fatalf("nil tree for %q", src)
	}
	return tree, in
}

func TestBuildTokensOutput(t *testing.T) {
	_, in, out := tokenize(t, "f(a, 1)")
	got := BuildTokensOutput(out.Trees, in)
	if len(got) != 2 {
		t.Fatalf("expected 2 top-level trees, got %d", len(got))
	}
	if got[0].Kind != "Ident" || got[0].Text != "f" || got[0].Span != "1:1-1:2" {
		t.Fatalf("unexpected ident %+v", got[0])
	}
	group := got[1]
	if group.Kind != "Group" || group.Text != "()" || len(group.Children) != 3 {
		t.Fatalf("unexpected group %+v", group)
	}
	wantText := []string{"a", ",", "Int 1"}
	for i, want := range wantText {
		if group.Children[i].Text != want {
			t.Errorf("child %d text = %q, want %q", i, group.Children[i].Text, want)
		}
	}
}

func TestFormatTokensPrettyIndents(t *testing.T) {
	_, in, out := tokenize(t, "f(a)")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, out.Trees, in); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "  3:   Ident") {
		t.Fatalf("nested token is not indented: %q", lines[2])
	}
}

func TestFormatASTPretty(t *testing.T) {
	tree, in := parseTree(t, "struct S { a: int }")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, tree, in); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"SyntaxTree (span:",
		"└─ Item (span: 1:1-1:20)",
		"Struct (span: 1:1-1:20)",
		"Ident S (span: 1:8-1:9)",
		"Ident a (span: 1:12-1:13)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<error>") {
		t.Errorf("well-formed input produced error nodes:\n%s", out)
	}
}

func TestFormatASTJSONAndYAML(t *testing.T) {
	tree, in := parseTree(t, "fn f() {}")

	var jsonBuf bytes.Buffer
	if err := FormatASTJSON(&jsonBuf, tree, in); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	var root ast.DumpNode
	if err := json.Unmarshal(jsonBuf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Kind != "SyntaxTree" || len(root.Children) != 1 || root.Children[0].Kind != "Item" {
		t.Fatalf("unexpected root %+v", root)
	}

	var yamlBuf bytes.Buffer
	if err := FormatASTYAML(&yamlBuf, tree, in); err != nil {
		t.Fatalf("FormatASTYAML: %v", err)
	}
	for _, want := range []string{"kind: SyntaxTree", "kind: Fn", "text: f"} {
		if !strings.Contains(yamlBuf.String(), want) {
			t.Errorf("expected %q in:\n%s", want, yamlBuf.String())
		}
	}
}

func TestFormatHighlighted(t *testing.T) {
	file, _, _ := tokenize(t, "struct S {}")
	name := source.FromStartEnd(file.ID, source.Pos(0, 7), source.Pos(0, 8))
	items := []highlight.Item{
		{Span: name, Color: highlight.Green},
		// перекрывающийся span пропускается
		{Span: source.FromStartEnd(file.ID, source.Pos(0, 7), source.Pos(0, 11)), Color: highlight.Blue},
	}

	var plain bytes.Buffer
	if err := FormatHighlighted(&plain, file, items, false); err != nil {
		t.Fatalf("FormatHighlighted: %v", err)
	}
	if plain.String() != "struct S {}" {
		t.Fatalf("plain output = %q", plain.String())
	}

	var colored bytes.Buffer
	if err := FormatHighlighted(&colored, file, items, true); err != nil {
		t.Fatalf("FormatHighlighted: %v", err)
	}
	got := colored.String()
	if !strings.HasPrefix(got, "struct \x1b[32mS\x1b[") || !strings.HasSuffix(got, "m {}") {
		t.Fatalf("colored output = %q", got)
	}
}
