package parser

import (
	"fmt"
	"strings"
	"testing"

	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/lexer"
	"oath/internal/source"
	"oath/internal/token"
)

type testEnv struct {
	p    *Parser
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
	ctx := NewContext(in, diag.BagReporter{Bag: bag}, hl)
	return testEnv{p: New(ctx, out), bag: bag, hl: hl, in: in, file: file}
}

func diagnosticsSummary(bag *diag.Bag, in *source.Interner) string {
	if bag == nil {
		return "<nil bag>"
	}
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

func (e testEnv) name(id Ident) string {
	return e.in.MustLookup(id.Name)
}

// cutRule parses `!` followed by a required ident; without the ident it cuts.
type cutRule struct{}

func (cutRule) Desc() string { return "a bang ident" }

func (cutRule) Detect(p *Parser) bool { return p.AtPunct(token.Bang) }

func (cutRule) Parse(p *Parser) (Try[Ident], Exit) {
	p.Next()
	return Require[Ident](p, IdentRule{})
}

// wordEnum: ident | keyword fn | fallback garbage.
func wordEnum() *Enum[string] {
	e := &Enum[string]{
		Name: "a word",
		Variants: []Variant[string]{
			Case("ident", IdentRule{}, func(Ident) string { return "ident" }),
			Case("fn", Keyword(token.KwFn), func(Tok) string { return "fn" }),
		},
	}
	e.Fallback = func(p *Parser) (string, Exit) {
		SkipGarbage[string](p, e)
		return "garbage", Complete
	}
	return e
}
