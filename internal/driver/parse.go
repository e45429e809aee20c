package driver

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/lexer"
	"arkoi/internal/parser"
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// ParseResult holds the parse tree of one file.
type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Builder  *ast.Builder
	FileID   ast.FileID
	Bag      *diag.Bag
}

// Parse lexes and parses one file. Lexical errors halt before
// parsing; the bag then contains only the lexer's diagnostics.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	interner := source.NewInterner()
	builder := ast.NewBuilder(ast.Hints{})

	lx := lexer.New(file, interner, lexer.Options{Reporter: reporter})
	tokens := lx.ScanAll()

	res := &ParseResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Builder:  builder,
		Bag:      bag,
	}
	if lx.ErrorCount() > 0 {
		return res, nil
	}

	parsed := parser.ParseFile(file, token.NewStream(tokens), builder, parser.Options{
		Reporter: reporter,
	})
	res.FileID = parsed.File
	return res, nil
}
