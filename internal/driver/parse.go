package driver

import (
	"fmt"

	"oath/internal/ast"
	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/lexer"
	"oath/internal/observ"
	"oath/internal/parser"
	"oath/internal/source"
)

type ParseResult struct {
	FileSet    *source.FileSet
	File       *source.File
	Interner   *source.Interner
	Tree       *ast.SyntaxTree
	Bag        *diag.Bag
	Highlights []highlight.Item
	Timing     *observ.Report
}

// Parse loads path and parses it into a syntax tree.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	timer := newTimer(opts.Timings)
	phase := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(phase, "")
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), source.NewInterner(), opts, timer)
}

// ParseSource parses in-memory content registered under name.
func ParseSource(name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fs.Get(fileID), source.NewInterner(), opts, newTimer(opts.Timings))
}

func parseFile(fs *source.FileSet, file *source.File, in *source.Interner, opts Options, timer *observ.Timer) (*ParseResult, error) {
	maxErrors, err := opts.maxErrors()
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	// лексер и парсер пишут в один bag, повторы отбрасываются сразу
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	phase := timer.Begin("tokenize")
	out := lexer.Tokenize(file, lexer.Options{Reporter: reporter, Interner: in})
	timer.End(phase, fmt.Sprintf("%d tokens", out.Count()))

	phase = timer.Begin("parse")
	sink := highlight.NewSink()
	ctx := parser.NewContext(in, reporter, sink)
	ctx.MaxErrors = maxErrors
	tree := ast.Parse(parser.New(ctx, out))
	timer.End(phase, fmt.Sprintf("%d items", len(tree.Items)))

	return &ParseResult{
		FileSet:    fs,
		File:       file,
		Interner:   in,
		Tree:       tree,
		Bag:        bag,
		Highlights: sink.Collect(),
		Timing:     timingReport(timer),
	}, nil
}
