package driver

import (
	"arkoi/internal/diag"
	"arkoi/internal/lexer"
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// TokenizeResult holds the token stream of one file.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Tokens   []token.Token
	Bag      *diag.Bag
}

// Tokenize scans one file to exhaustion, collecting lexical
// diagnostics along the way.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	interner := source.NewInterner()
	lx := lexer.New(file, interner, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Tokens:   lx.ScanAll(),
		Bag:      bag,
	}, nil
}
