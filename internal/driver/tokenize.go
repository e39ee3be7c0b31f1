package driver

import (
	"oath/internal/diag"
	"oath/internal/lexer"
	"oath/internal/source"
	"oath/internal/token"
)

type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Trees    []token.Tree
	Bag      *diag.Bag
}

// Tokenize loads path and builds its token trees.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), source.NewInterner(), maxDiagnostics), nil
}

// TokenizeSource tokenizes in-memory content registered under name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fs.Get(fileID), source.NewInterner(), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, in *source.Interner, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	out := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, Interner: in})
	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Interner: in,
		Trees:    out.Trees,
		Bag:      bag,
	}
}
