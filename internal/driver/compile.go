package driver

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/lexer"
	"arkoi/internal/parser"
	"arkoi/internal/sema"
	"arkoi/internal/source"
	"arkoi/internal/symbols"
	"arkoi/internal/token"
	"arkoi/internal/types"
)

// Stage names one pass of the front end. Stages run in strict
// sequence; a stage whose error list is non-empty halts the pipeline,
// so the diagnostics a caller receives never mix across stages.
type Stage uint8

const (
	StageNone Stage = iota
	StageLex
	StageParse
	StageResolve
	StageCheck
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	case StageCheck:
		return "check"
	default:
		return "none"
	}
}

// Options configures one compilation.
type Options struct {
	MaxDiagnostics int  // cap on collected diagnostics, 0 for unlimited
	MaxErrors      uint // per-stage error budget, 0 for unlimited
}

// Result bundles everything the pipeline produced. The tree is
// returned even on failure so a caller may inspect partial output;
// Failed names the stage that stopped the pipeline, or StageNone.
type Result struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Tokens   []token.Token
	Builder  *ast.Builder
	ASTFile  ast.FileID
	Symbols  *symbols.Result
	Types    *types.Interner
	Sema     *sema.Result
	Bag      *diag.Bag
	Failed   Stage
}

// OK reports whether every stage ran with zero errors.
func (r *Result) OK() bool {
	return r.Failed == StageNone
}

// Compile runs the whole front end over one file on disk.
func Compile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(fs, fs.Get(fileID), opts), nil
}

// CompileSource runs the whole front end over in-memory source text.
// The name is only used for diagnostics.
func CompileSource(name string, src []byte, opts Options) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return compileFile(fs, fs.Get(fileID), opts)
}

func compileFile(fs *source.FileSet, file *source.File, opts Options) *Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	interner := source.NewInterner()

	res := &Result{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Bag:      bag,
	}

	// Lexing runs to exhaustion before parsing starts, so lexical
	// errors gate the parse instead of leaking into it.
	lx := lexer.New(file, interner, lexer.Options{Reporter: reporter})
	res.Tokens = lx.ScanAll()
	if lx.ErrorCount() > 0 {
		res.Failed = StageLex
		return res
	}

	res.Builder = ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseFile(file, token.NewStream(res.Tokens), res.Builder, parser.Options{
		MaxErrors: opts.MaxErrors,
		Reporter:  reporter,
	})
	res.ASTFile = parsed.File
	if parsed.Errors > 0 {
		res.Failed = StageParse
		return res
	}

	table := symbols.NewTable(symbols.Hints{}, interner)
	res.Symbols = symbols.Resolve(res.Builder, res.ASTFile, table, symbols.Options{
		MaxErrors: opts.MaxErrors,
		Reporter:  reporter,
	})
	if res.Symbols.Errors > 0 {
		res.Failed = StageResolve
		return res
	}

	res.Types = types.NewInterner()
	res.Sema = sema.Check(res.Builder, res.ASTFile, res.Symbols, res.Types, sema.Options{
		MaxErrors: opts.MaxErrors,
		Reporter:  reporter,
	})
	if res.Sema.Errors > 0 {
		res.Failed = StageCheck
	}
	return res
}
