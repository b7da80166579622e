package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// analyzeStmt dispatches any Statement through the Visitor's double
// dispatch; it is the single call site analyzeProgram and every block
// analyzer use to walk a statement list.
func (w *walker) analyzeStmt(s ast.Statement) {
	if s == nil {
		return
	}
	s.Accept(w)
}

func (w *walker) VisitProgram(p *ast.Program) {
	for _, s := range p.Statements {
		w.analyzeStmt(s)
	}
}

// declareParameter binds a function parameter as an initialized val in
// the function's scope (parameters are never undef, never
// reassignable).
func (w *walker) declareParameter(p *ast.Parameter) {
	t := w.resolveType(p.Type)
	if err := w.table.Declare(symbols.Symbol{
		Name: p.Name,
		Type: t,
		Mutability: symbols.Val,
		Init: symbols.Initialized,
		DefinedAt: p.Token.Pos,
	}); err != nil {
		w.addError(diagnostics.NewError(diagnostics.Redeclaration, p.Token.Pos, "parameter redeclared: "+p.Name))
	}
}

func (w *walker) VisitParameter(p *ast.Parameter) {
	w.declareParameter(p)
}

// VisitFunctionDecl analyzes a function body against its own declared
// return type. A top-level function's own name was already bound by
// declareFunctionSignature during analyzeProgram's hoisting pass, so
// forward and mutually recursive calls resolve regardless of source
// order; this method only opens the parameter scope and walks the body.
// A nested FunctionDecl is not hoisted, and its name is not bound in any
// scope.
func (w *walker) VisitFunctionDecl(f *ast.FunctionDecl) {
	savedReturn := w.returnType
	w.returnType = w.resolveType(f.ReturnType)

	w.table.WithScope(func() {
		for _, p := range f.Params {
			w.declareParameter(p)
		}
		w.analyzeStmt(f.Body)
	})

	w.returnType = savedReturn
}

func (w *walker) VisitExpressionStatement(s *ast.ExpressionStatement) {
	w.analyzeExpr(s.Expression, nil)
}

// analyzeReturn validates `return [expr]` against the enclosing
// function's declared return type (dual-capability
// contract): a return's value is checked against returnType regardless
// of any outer block target, since returning exits the function rather
// than contributing to the block's own value.
func (w *walker) analyzeReturn(s *ast.ReturnStmt) {
	if s.Value == nil {
		if w.returnType != nil && w.returnType != typesystem.Void {
			w.addError(diagnostics.NewError(diagnostics.TypeMismatch, s.Token.Pos,
				"missing return value for non-void function"))
		}
		return
	}
	valueType := w.analyzeExpr(s.Value, w.returnType)
	if w.returnType != nil {
		w.checkAssignable(s.Token.Pos, valueType, w.returnType)
	}
}

func (w *walker) VisitReturnStmt(s *ast.ReturnStmt) {
	w.analyzeReturn(s)
}

// VisitAssignTerminator handles a bare `-> expr` reached outside a
// block's dedicated Terminator slot (analyzeTerminator in blocks.go
// handles the normal case directly); kept for Visitor exhaustiveness.
func (w *walker) VisitAssignTerminator(s *ast.AssignTerminator) {
	w.analyzeExpr(s.Value, w.target)
}
