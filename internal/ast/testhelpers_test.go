package ast

import (
	"fmt"
	"strings"
	"testing"

	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/lexer"
	"oath/internal/parser"
	"oath/internal/source"
)

type testEnv struct {
	p    *parser.Parser
	bag  *diag.Bag
	hl   *highlight.Sink
	in   *source.Interner
	file *source.File
}

func makeTestParser(t *testing.T, src string) testEnv {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.oath", []byte(src)))
	bag := diag.NewBag(100)
	in := source.NewInterner()
	hl := highlight.NewSink()
	out := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, Interner: in})
	ctx := parser.NewContext(in, diag.BagReporter{Bag: bag}, hl)
	return testEnv{p: parser.New(ctx, out), bag: bag, hl: hl, in: in, file: file}
}

func parseSource(t *testing.T, src string) (testEnv, *SyntaxTree) {
	t.Helper()
	env := makeTestParser(t, src)
	tree := Parse(env.p)
	if tree == nil {
		t.Fatalf("Parse returned nil for %q", src)
	}
	return env, tree
}

func diagnosticsSummary(bag *diag.Bag, in *source.Interner) string {
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message(in))
	}
	return strings.Join(lines, "; ")
}

func (e testEnv) text(sp source.Span) string {
	return e.file.Text(sp)
}

func (e testEnv) ident(t *testing.T, id parser.Try[parser.Ident]) string {
	t.Helper()
	v, ok := id.Get()
	if !ok {
		t.Fatalf("ident is a failure")
	}
	return e.in.MustLookup(v.Name)
}

func (e testEnv) noDiagnostics(t *testing.T) {
	t.Helper()
	if e.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(e.bag, e.in))
	}
}

func itemKind[T ItemKind](t *testing.T, it *Item) T {
	t.Helper()
	kind, ok := it.Kind.Get()
	if !ok {
		t.Fatalf("item has no kind")
	}
	v, ok := kind.(T)
	if !ok {
		t.Fatalf("item kind is %T", kind)
	}
	return v
}

// fnBody parses `fn t() { body }` and returns the body statements.
func fnBody(t *testing.T, body string) (testEnv, []Stmt) {
	t.Helper()
	env, tree := parseSource(t, "fn t() { "+body+" }")
	if len(tree.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(tree.Items))
	}
	fn := itemKind[*Fn](t, tree.Items[0])
	b, ok := fn.Body.Get()
	if !ok {
		t.Fatalf("fn body missing: %s", diagnosticsSummary(env.bag, env.in))
	}
	return env, b.Stmts()
}

// sexpr renders an expression in prefix form.
func (e testEnv) sexpr(x Expr) string {
	switch x := x.(type) {
	case *Literal:
		return x.Lit.Raw
	case *Bool:
		return fmt.Sprint(x.Value)
	case *PathExpr:
		return e.text(x.Loc)
	case *Paren:
		return "(paren " + e.sexpr(x.Inner) + ")"
	case *Tuple:
		parts := []string{"tuple"}
		for _, el := range x.Elems.Value.Value().Items {
			parts = append(parts, e.sexpr(el))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Unary:
		return "(" + x.Op.String() + " " + e.sexprTry(x.Operand) + ")"
	case *Binary:
		return "(" + x.Op.String() + " " + e.sexpr(x.Lhs) + " " + e.sexprTry(x.Rhs) + ")"
	case *Cast:
		return "(as " + e.sexpr(x.Expr) + " " + e.text(x.Type.Span()) + ")"
	case *Call:
		parts := []string{"call", e.sexpr(x.Callee)}
		for _, a := range x.Args.Value.Value().Items {
			parts = append(parts, e.sexpr(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Member:
		return "(. " + e.sexpr(x.Recv) + " " + e.text(x.Name.Span()) + ")"
	case *Index:
		return "(index " + e.sexpr(x.Recv) + " " + e.sexprTry(x.Index.Value) + ")"
	case *Block:
		return "{...}"
	case *If:
		return "(if " + e.sexprTry(x.Cond) + ")"
	case *While:
		return "(while " + e.sexprTry(x.Cond) + ")"
	case *Return:
		if x.Value == nil {
			return "(return)"
		}
		return "(return " + e.sexpr(x.Value) + ")"
	}
	return fmt.Sprintf("<%T>", x)
}

func (e testEnv) sexprTry(x parser.Try[Expr]) string {
	v, ok := x.Get()
	if !ok {
		return "<missing>"
	}
	return e.sexpr(v)
}
