package symbols

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// Options configures error reporting during resolution.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Resolver drives scope management and declaration/lookup routines for
// one program. It embeds the default walker so that node kinds it does
// not care about fall through to plain child traversal.
type Resolver struct {
	ast.Walker
	table *Table
	opts  Options
	res   *Result
	stack []ScopeID
}

func (r *Resolver) currentScope() ScopeID {
	return r.stack[len(r.stack)-1]
}

// isGlobal reports whether declarations land in the global scope.
func (r *Resolver) isGlobal() bool {
	return len(r.stack) == 1
}

func (r *Resolver) enter(kind ScopeKind, span source.Span) ScopeID {
	scope := r.table.Scopes.New(kind, r.currentScope(), span)
	r.stack = append(r.stack, scope)
	return scope
}

func (r *Resolver) leave() {
	if len(r.stack) <= 1 {
		panic("symbols: popped the global scope")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// declare installs a symbol into the current scope. The global scope
// never allows a name twice; local scopes shadow freely, a repeated
// name in the same scope simply replaces the previous entry.
func (r *Resolver) declare(name source.StringID, span source.Span, kind SymbolKind, decl SymbolDecl) (SymbolID, bool) {
	scopeID := r.currentScope()
	scope := r.table.Scopes.Get(scopeID)

	if existing, ok := scope.Names[name]; ok && scope.Kind == ScopeGlobal {
		r.reportDuplicate(name, span, existing)
		return NoSymbolID, false
	}

	id := r.table.Symbols.New(Symbol{
		Name: name,
		Span: span,
		Kind: kind,
		Decl: decl,
	})
	scope.Names[name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, true
}

// declareGlobal is declare targeting the root scope regardless of the
// current stack depth. Function names always live there.
func (r *Resolver) declareGlobal(name source.StringID, span source.Span, kind SymbolKind, decl SymbolDecl) (SymbolID, bool) {
	scope := r.table.Scopes.Get(r.table.Global)
	if existing, ok := scope.Names[name]; ok {
		r.reportDuplicate(name, span, existing)
		return NoSymbolID, false
	}
	id := r.table.Symbols.New(Symbol{
		Name: name,
		Span: span,
		Kind: kind,
		Decl: decl,
	})
	scope.Names[name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, true
}

// lookup walks the scope stack innermost-out; the first match wins.
func (r *Resolver) lookup(name source.StringID) SymbolID {
	for i := len(r.stack) - 1; i >= 0; i-- {
		scope := r.table.Scopes.Get(r.stack[i])
		if id, ok := scope.Names[name]; ok {
			return id
		}
	}
	return NoSymbolID
}

func (r *Resolver) reportDuplicate(name source.StringID, span source.Span, existing SymbolID) {
	text := r.table.Strings.MustLookup(name)
	b := r.beginReport(diag.ResNameAlreadyUsed, span, "the name '"+text+"' is already used")
	if b == nil {
		return
	}
	if sym := r.table.Symbols.Get(existing); sym != nil && !sym.Span.Empty() {
		b.WithLabel(sym.Span, "first declared here")
	}
	b.Emit()
}

func (r *Resolver) report(code diag.Code, sp source.Span, msg string) {
	if b := r.beginReport(code, sp, msg); b != nil {
		b.Emit()
	}
}

func (r *Resolver) beginReport(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	enough := r.opts.Enough()
	r.opts.CurrentErrors++
	if r.opts.Reporter == nil || enough {
		return nil
	}
	return diag.ReportError(r.opts.Reporter, code, sp, msg)
}
