package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitExpressionBlock implements the Block Analyzer: every statement
// ahead of the terminator is analyzed first and in lexical
// order, then the terminator is analyzed with the block's own target as
// its context — never the other way around, since a later statement's
// diagnostics must never be attributed to the terminator's position.
// The scope introduced here is released on every path via WithScope,
// including when the block's contents carry diagnostics but don't abort.
func (w *walker) VisitExpressionBlock(b *ast.ExpressionBlock) {
	target := w.target
	w.requireRuntimeContext(b, target, b.GetToken().Pos)

	var result typesystem.Type
	w.table.WithScope(func() {
		for _, s := range b.Statements {
			w.analyzeStmt(s)
		}
		result = w.analyzeTerminator(b.Terminator, target)
	})
	w.result = result
}

// analyzeTerminator resolves the one of four terminator forms a block may
// end in (dual `->`/`return` contract, extended to
// break/continue for loop-expression bodies).
func (w *walker) analyzeTerminator(term ast.Statement, target typesystem.Type) typesystem.Type {
	switch t := term.(type) {
	case nil:
		return typesystem.Void
	case *ast.AssignTerminator:
		val := w.analyzeExpr(t.Value, target)
		return w.checkAssignable(t.Token.Pos, val, target)
	case *ast.ReturnStmt:
		w.analyzeReturn(t)
		return typesystem.Unknown
	case *ast.BreakStmt:
		w.VisitBreakStmt(t)
		return typesystem.Unknown
	case *ast.ContinueStmt:
		w.VisitContinueStmt(t)
		return typesystem.Unknown
	default:
		return typesystem.Unknown
	}
}

// VisitBlockStatement is the statement-block form: it introduces a scope
// and produces no value.
func (w *walker) VisitBlockStatement(b *ast.BlockStatement) {
	w.table.WithScope(func() {
		for _, s := range b.Statements {
			w.analyzeStmt(s)
		}
	})
}
