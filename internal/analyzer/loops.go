package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitWhileLoop implements the statement-form `while cond {... }`.
// WhileLoop also satisfies Expression syntactically (its body never
// contributes a value), so when used in expression position it simply
// resolves to void.
func (w *walker) VisitWhileLoop(s *ast.WhileLoop) {
	condType := w.analyzeExpr(s.Condition, typesystem.Bool)
	if condType != typesystem.Unknown && condType != typesystem.Bool {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, s.Condition.GetToken().Pos,
			"while condition must be bool"))
	}

	w.loopDepth++
	w.analyzeStmt(s.Body)
	w.loopDepth--

	w.result = typesystem.Void
}

// VisitForLoop implements both the for-in statement and for-in
// expression forms. Range iteration (`a..b`) yields an i64
// loop variable unless annotated; array iteration yields the array's
// element type. The expression form collects `->` values into an
// inferred-size array, skips `continue`d iterations, and stops at
// `break`; its element type must be resolvable from either an outer
// array target or a concrete type of the body's own `->` value —
// otherwise LoopExpressionRequiresType fires, since an unresolved
// comptime element type can never settle on its own.
func (w *walker) VisitForLoop(e *ast.ForLoop) {
	loopVarType := w.resolveForLoopVarType(e)
	if e.LoopVarType != nil {
		loopVarType = w.resolveType(e.LoopVarType)
	}

	var result typesystem.Type
	w.table.WithScope(func() {
		w.declareSymbol(e.Token.Pos, e.LoopVar, loopVarType, symbols.Val, symbols.Initialized)

		w.loopDepth++
		if e.IsExpression {
			result = w.analyzeForExpression(e, loopVarType)
		} else {
			w.analyzeStmt(e.Body)
			result = typesystem.Void
		}
		w.loopDepth--
	})
	w.result = result
}

func (w *walker) resolveForLoopVarType(e *ast.ForLoop) typesystem.Type {
	if e.Iterable != nil {
		iterType := w.analyzeExpr(e.Iterable, nil)
		switch t := iterType.(type) {
		case typesystem.Array:
			return t.Elem
		}
		switch iterType {
		case typesystem.ComptimeArrayInt:
			return typesystem.ComptimeInt
		case typesystem.ComptimeArrayFloat:
			return typesystem.ComptimeFloat
		case typesystem.Unknown:
			return typesystem.Unknown
		}
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Iterable.GetToken().Pos,
			"for-in requires an array"))
		return typesystem.Unknown
	}

	startType := w.analyzeExpr(e.RangeStart, typesystem.I64)
	endType := w.analyzeExpr(e.RangeEnd, typesystem.I64)
	if startType != typesystem.Unknown && !typesystem.IsInteger(startType) {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.RangeStart.GetToken().Pos,
			"range bound must be an integer"))
	}
	if endType != typesystem.Unknown && !typesystem.IsInteger(endType) {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.RangeEnd.GetToken().Pos,
			"range bound must be an integer"))
	}
	return typesystem.I64
}

func (w *walker) analyzeForExpression(e *ast.ForLoop, loopVarType typesystem.Type) typesystem.Type {
	body, ok := e.Body.(*ast.ExpressionBlock)
	if !ok {
		return typesystem.Unknown
	}

	var elemTarget typesystem.Type
	if arr, ok := w.target.(typesystem.Array); ok {
		elemTarget = arr.Elem
	}

	elemResult := w.analyzeLoopBody(body, elemTarget)

	if elemResult == typesystem.Void {
		// Every path through the body was break/continue; nothing
		// typed the element, so an outer target is mandatory.
		if elemTarget == nil {
			w.addError(diagnostics.NewError(diagnostics.LoopExpressionRequiresType, e.Token.Pos,
				"loop expression's element type cannot be inferred").
				WithHint(": [_]<type>"))
			return typesystem.Unknown
		}
		return typesystem.Array{Elem: elemTarget, Len: -1, Inferred: true}
	}

	if elemTarget == nil && typesystem.IsComptime(elemResult) {
		w.addError(diagnostics.NewError(diagnostics.LoopExpressionRequiresType, e.Token.Pos,
			"loop expression's element type cannot be inferred").
			WithHint(": [_]<type>"))
		return typesystem.Unknown
	}

	finalElem := elemResult
	if elemTarget != nil {
		finalElem = elemTarget
	}
	return typesystem.Array{Elem: finalElem, Len: -1, Inferred: true}
}

// analyzeLoopBody walks a loop-expression body block directly rather
// than through VisitExpressionBlock, so the element's missing-context
// diagnostic is the loop-specific LoopExpressionRequiresType rather than
// the block analyzer's generic MissingRuntimeContext.
func (w *walker) analyzeLoopBody(body *ast.ExpressionBlock, elemTarget typesystem.Type) typesystem.Type {
	var elemResult typesystem.Type
	w.table.WithScope(func() {
		for _, s := range body.Statements {
			w.analyzeStmt(s)
		}
		switch t := body.Terminator.(type) {
		case *ast.AssignTerminator:
			val := w.analyzeExpr(t.Value, elemTarget)
			if elemTarget != nil {
				elemResult = w.checkAssignable(t.Token.Pos, val, elemTarget)
			} else {
				elemResult = val
			}
		case *ast.BreakStmt:
			w.VisitBreakStmt(t)
			elemResult = typesystem.Void
		case *ast.ContinueStmt:
			w.VisitContinueStmt(t)
			elemResult = typesystem.Void
		default:
			elemResult = typesystem.Unknown
		}
	})
	return elemResult
}
