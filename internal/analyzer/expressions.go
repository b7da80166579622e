package analyzer

import (
	"strconv"
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/token"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// analyzeExpr is the Expression Analyzer's entry point :
// analyze(node, target) -> Type. target is the context propagated from
// an outer construct (declaration annotation, parameter, assignment
// target, branch context); it may be nil when no outer context exists.
//
// target/result are threaded through the walker's scratch fields rather
// than passed to Accept directly, because ast.Visitor's methods are
// void — an Accept-then-read-back-from-state idiom that still presents
// a bidirectional analyze(node, target) -> Type signature to callers.
// Each call saves and restores the caller's target/result so recursive
// calls never leak state across siblings.
func (w *walker) analyzeExpr(e ast.Expression, target typesystem.Type) typesystem.Type {
	if e == nil {
		return typesystem.Unknown
	}
	savedTarget, savedResult := w.target, w.result
	w.target = target
	e.Accept(w)
	result := w.result
	w.target, w.result = savedTarget, savedResult

	if result == nil {
		result = typesystem.Unknown
	}
	e.SetResolvedType(result)
	return result
}

func (w *walker) VisitIntLiteral(e *ast.IntLiteral) {
	if w.target != nil && isConcreteNumeric(w.target) {
		committed, err := typesystem.Commit(typesystem.ComptimeInt, w.target, e.Value)
		if err != nil {
			w.addError(diagnostics.NewError(diagnostics.LiteralOverflow, e.Token.Pos, err.Error()))
			w.result = typesystem.Unknown
			return
		}
		w.result = committed
		return
	}
	w.result = typesystem.ComptimeInt
}

func (w *walker) VisitFloatLiteral(e *ast.FloatLiteral) {
	if w.target != nil && isConcreteNumeric(w.target) && typesystem.IsFloat(w.target) {
		committed, err := typesystem.Commit(typesystem.ComptimeFloat, w.target, e.Value)
		if err != nil {
			w.addError(diagnostics.NewError(diagnostics.LiteralOverflow, e.Token.Pos, err.Error()))
			w.result = typesystem.Unknown
			return
		}
		w.result = committed
		return
	}
	w.result = typesystem.ComptimeFloat
}

func (w *walker) VisitBoolLiteral(e *ast.BoolLiteral) {
	w.result = typesystem.Bool
}

func (w *walker) VisitStringLiteral(e *ast.StringLiteral) {
	w.result = typesystem.String
}

func (w *walker) VisitUndefExpr(e *ast.UndefExpr) {
	// Legal only as the direct value of a mut declaration; that case is
	// intercepted in declarations.go before reaching analyzeExpr. Seeing
	// it here means undef appeared somewhere else, which the grammar
	// shouldn't produce; resolve to Unknown defensively.
	w.result = typesystem.Unknown
}

// VisitIdentifier resolves a name to its symbol's type. A symbol left
// untyped by its declaration (a val/mut with no annotation and
// a comptime-typed value keeps that comptime type, "flexible" across
// every use site rather than committed once) adapts to the current
// target here, the same way a literal would, except no range check is
// possible since the identifier's value isn't known statically.
func (w *walker) VisitIdentifier(e *ast.Identifier) {
	sym, err := w.table.Lookup(e.Name)
	if err != nil {
		w.addError(diagnostics.NewError(diagnostics.Undefined, e.Token.Pos, "undefined: "+e.Name))
		w.result = typesystem.Unknown
		return
	}
	if sym.Init == symbols.Deferred {
		w.addError(diagnostics.NewError(diagnostics.UseOfUninitialized, e.Token.Pos, "use of uninitialized variable: "+e.Name))
		w.result = typesystem.Unknown
		return
	}
	if typesystem.IsComptime(sym.Type) && w.target != nil && isConcreteNumeric(w.target) && typesystem.CanCoerce(sym.Type, w.target) {
		committed, _ := typesystem.Commit(sym.Type, w.target, nil)
		w.result = committed
		return
	}
	w.result = sym.Type
}

func (w *walker) VisitParenExpr(e *ast.ParenExpr) {
	w.result = w.analyzeExpr(e.Inner, w.target)
}

// VisitAnnotatedExpression implements `expr : T`: the acknowledgment
// that makes an otherwise-rejected precision-losing coercion legal, if
// and only if T equals the outer target. Without an
// outer target the annotation has nothing to acknowledge and is itself
// illegal.
func (w *walker) VisitAnnotatedExpression(e *ast.AnnotatedExpression) {
	outerTarget := w.target
	annotated := w.resolveType(e.Type)

	if outerTarget == nil {
		w.addError(diagnostics.NewError(diagnostics.AnnotationWithoutLeftType, e.Token.Pos,
			"type annotation has no outer expected type to acknowledge").
			WithHint("remove the annotation or supply an explicit declared type"))
		w.analyzeExpr(e.Expression, annotated)
		w.result = typesystem.Unknown
		return
	}

	if !typesystem.Equal(annotated, outerTarget) {
		w.addError(diagnostics.NewError(diagnostics.AnnotationMismatch, e.Token.Pos,
			"annotation "+annotated.String()+" does not match expected type "+outerTarget.String()).
			WithHint(": " + outerTarget.String()))
		w.analyzeExpr(e.Expression, annotated)
		w.result = typesystem.Unknown
		return
	}

	w.analyzeExpr(e.Expression, annotated)
	w.result = annotated
}

// VisitCallExpr resolves the callee, analyzes each argument against its
// parameter's type, and returns the callee's declared return type.
func (w *walker) VisitCallExpr(e *ast.CallExpr) {
	calleeType := w.analyzeExpr(e.Callee, nil)
	fn, ok := calleeType.(typesystem.Function)
	if !ok {
		if calleeType != typesystem.Unknown {
			w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "callee is not a function"))
		}
		for _, arg := range e.Arguments {
			w.analyzeExpr(arg, nil)
		}
		w.result = typesystem.Unknown
		return
	}

	for i, arg := range e.Arguments {
		var paramType typesystem.Type
		if i < len(fn.Params) {
			paramType = fn.Params[i]
			w.checkArrayAliasing(arg, paramType)
		}
		argType := w.analyzeExpr(arg, paramType)
		if paramType != nil {
			w.checkAssignable(arg.GetToken().Pos, argType, paramType)
		}
	}
	w.result = fn.Return
}

func isConcreteNumeric(t typesystem.Type) bool {
	return typesystem.IsNumeric(t) && !typesystem.IsComptime(t)
}

// checkAssignable implements the precision-loss acknowledgment rule
// generically: safe coercions are silently accepted; a
// dangerous coercion that was not already resolved by an explicit `: T`
// annotation (whose Visit method returns a type equal to target on
// success) is reported as PrecisionLossRequiresAck with the exact hint
// text. Returns the type downstream code should treat the expression as
// having — target on success, Unknown on failure, so a single diagnostic
// never cascades.
func (w *walker) checkAssignable(pos token.Position, resultType, target typesystem.Type) typesystem.Type {
	if target == nil || resultType == typesystem.Unknown || target == typesystem.Unknown {
		return resultType
	}
	if typesystem.Equal(resultType, target) {
		return target
	}

	if targetArr, ok := target.(typesystem.Array); ok {
		if resultArr, ok := resultType.(typesystem.Array); ok {
			return w.checkArrayAssignable(pos, resultArr, targetArr)
		}
	}

	if typesystem.CanCoerce(resultType, target) {
		return target
	}
	w.addError(diagnostics.NewError(diagnostics.PrecisionLossRequiresAck, pos,
		"implicit "+resultType.String()+" to "+target.String()+" coercion loses precision").
		WithHint(": " + target.String()))
	return typesystem.Unknown
}

// checkArrayAssignable implements the array-specific corners of the
// coercion lattice (array operations): an element type
// mismatch is always ArrayElementTypeMismatch; a size mismatch between
// two fully concrete (non-inferred) lengths is ArraySizeMismatch; a
// mismatch where the target or source was declared with an inferred
// size ([_]T) but both sides have since settled on a concrete length is
// reported distinctly as InferredSizeToConcreteMismatch, since the fix
// (drop the explicit size, or make both explicit) differs from a plain
// size typo.
func (w *walker) checkArrayAssignable(pos token.Position, resultArr, targetArr typesystem.Array) typesystem.Type {
	if !typesystem.Equal(resultArr.Elem, targetArr.Elem) && !typesystem.CanCoerce(resultArr.Elem, targetArr.Elem) {
		w.addError(diagnostics.NewError(diagnostics.ArrayElementTypeMismatch, pos,
			"array element type "+resultArr.Elem.String()+" does not match "+targetArr.Elem.String()))
		return typesystem.Unknown
	}
	if resultArr.Inferred || targetArr.Inferred {
		if resultArr.Len != -1 && targetArr.Len != -1 && resultArr.Len != targetArr.Len {
			w.addError(diagnostics.NewError(diagnostics.InferredSizeToConcreteMismatch, pos,
				"inferred-size array does not match the concrete size already established here"))
			return typesystem.Unknown
		}
		return targetArr
	}
	if resultArr.Len != targetArr.Len {
		w.addError(diagnostics.NewError(diagnostics.ArraySizeMismatch, pos,
			"array of size "+strconv.Itoa(resultArr.Len)+" does not match expected size "+strconv.Itoa(targetArr.Len)))
		return typesystem.Unknown
	}
	return targetArr
}
