// Package analyzer implements the semantic analysis core: the Comptime
// Classifier, Expression Analyzer, Binary/Unary Operator Analyzer, Block
// Analyzer, Declaration/Assignment Analyzer, Conditional & Loop Analyzer,
// and Array Analyzer. One file per concern, splitting the analyzer by
// responsibility rather than by node kind.
package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// Analyzer is the public entry point. A fresh Analyzer (and the walker it
// creates per call) owns its own SymbolTable and Sink: each invocation
// starts from a clean scope stack and an empty diagnostic list, so
// separate runs never observe each other's state.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the semantic core over a parsed Program and returns the
// run's Sink: every diagnostic recorded during the walk, in traversal
// order, stamped with a fresh RunID. An empty Sink indicates success.
// Callers that only need the diagnostics can call .All() on the result;
// internal/report consumes the RunID too.
func (a *Analyzer) Analyze(prog *ast.Program) *diagnostics.Sink {
	w := newWalker()
	w.analyzeProgram(prog)
	return w.sink
}

// labelFrame is one entry of the label stack: the bare label name plus
// the loop node it marks, so break/continue can be resolved even
// through intervening conditionals.
type labelFrame struct {
	name string
	loop ast.Node
}

// walker carries all per-run mutable state: the symbol table, the
// diagnostic sink, the label stack, loop nesting depth, and the
// currently enclosing function's declared return type. It also carries
// two scratch fields, target/result, used only as the save/restore
// channel through which analyzeExpr threads a target type across the
// Visitor's double dispatch (see expressions.go); every entry point that
// mutates them restores the caller's values before returning, so nested
// calls never observe a stale target.
type walker struct {
	table *symbols.SymbolTable
	sink *diagnostics.Sink
	labels []labelFrame

	loopDepth int
	returnType typesystem.Type // nil outside any function body

	target typesystem.Type
	result typesystem.Type
}

func newWalker() *walker {
	return &walker{
		table: symbols.New(),
		sink: diagnostics.NewSink(),
	}
}

func (w *walker) addError(d *diagnostics.DiagnosticError) {
	w.sink.Add(d)
}

// analyzeProgram makes two passes over the top level: the first declares
// every top-level function's signature so forward references and mutual
// recursion resolve regardless of declaration order, the second analyzes
// every statement (including each function's body) in source order.
func (w *walker) analyzeProgram(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FunctionDecl); ok {
			w.declareFunctionSignature(fn)
		}
	}
	for _, stmt := range prog.Statements {
		w.analyzeStmt(stmt)
	}
}

func (w *walker) declareFunctionSignature(fn *ast.FunctionDecl) {
	params := make([]typesystem.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = w.resolveType(p.Type)
	}
	sig := typesystem.Function{Params: params, Return: w.resolveType(fn.ReturnType)}
	if err := w.table.Declare(symbols.Symbol{
		Name: fn.Name,
		Type: sig,
		Mutability: symbols.Val,
		Init: symbols.Initialized,
		DefinedAt: fn.Token.Pos,
	}); err != nil {
		w.addError(diagnostics.NewError(diagnostics.Redeclaration, fn.Token.Pos, "function redeclared: "+fn.Name))
	}
}
