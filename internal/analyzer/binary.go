package analyzer

import (
	"strings"
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitBinaryOp dispatches to the operator-family rules below. Both
// operands are analyzed with the outer target forwarded first; each
// family then applies its own coercion and context rules on top of that.
func (w *walker) VisitBinaryOp(e *ast.BinaryOp) {
	target := w.target
	left := w.analyzeExpr(e.Left, target)
	right := w.analyzeExpr(e.Right, target)

	switch e.Operator {
	case "+", "-", "*":
		w.result = w.analyzeArithmetic(e, left, right, target)
	case "/":
		w.result = w.analyzeFloatDiv(e, left, right, target)
	case "\\":
		w.result = w.analyzeIntDiv(e, left, right, target)
	case "%":
		w.result = w.analyzeModulo(e, left, right, target)
	case "==", "!=", "<", "<=", ">", ">=":
		w.result = w.analyzeComparison(e, left, right, target)
	case "&&", "||":
		w.result = w.analyzeLogical(e, left, right)
	default:
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "unknown operator: "+e.Operator))
		w.result = typesystem.Unknown
	}
}

// analyzeArithmetic implements + - *.
func (w *walker) analyzeArithmetic(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	if left == typesystem.Unknown || right == typesystem.Unknown {
		return typesystem.Unknown
	}

	if left == typesystem.String || right == typesystem.String {
		if e.Operator == "+" && left == typesystem.String && right == typesystem.String {
			return typesystem.String
		}
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos,
			"operator "+e.Operator+" is not defined for string and "+otherOperand(left, right, typesystem.String).String()))
		return typesystem.Unknown
	}

	if !typesystem.IsNumeric(left) || !typesystem.IsNumeric(right) {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "arithmetic requires numeric operands"))
		return typesystem.Unknown
	}

	return w.reconcileNumericPair(e, left, right, target)
}

// reconcileNumericPair applies the shared comptime/concrete reconciliation
// rules used by arithmetic, integer division, modulo, and (for non-string
// operands) comparison.
func (w *walker) reconcileNumericPair(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	bothComptime := typesystem.IsComptime(left) && typesystem.IsComptime(right)
	if bothComptime {
		return typesystem.UnifyComptime(left, right)
	}

	leftComptime := typesystem.IsComptime(left)
	rightComptime := typesystem.IsComptime(right)
	if leftComptime != rightComptime {
		// One comptime, one concrete: commit the comptime side against
		// the concrete sibling's type, re-analyzing its node rather than
		// just taking the concrete type, so a literal that's out of
		// range for it still gets range-checked here.
		concrete := left
		comptimeNode := e.Right
		if leftComptime {
			concrete = right
			comptimeNode = e.Left
		}
		if w.analyzeExpr(comptimeNode, concrete) == typesystem.Unknown {
			return typesystem.Unknown
		}
		return concrete
	}

	// Both concrete.
	if typesystem.Equal(left, right) {
		return left
	}

	// Mixed concrete: legal only under an explicit concrete target both
	// sides coerce into.
	if target != nil && isConcreteNumeric(target) && typesystem.CanCoerce(left, target) && typesystem.CanCoerce(right, target) {
		return target
	}

	w.addError(diagnostics.NewError(diagnostics.MixedConcreteRequiresContext, e.Token.Pos,
		"mixed concrete types "+left.String()+" and "+right.String()+" require an explicit target type").
		WithHint(mixedConcreteHint(left, right)))
	return typesystem.Unknown
}

// analyzeFloatDiv implements `/`: the result type must be a
// float, and a mixed-concrete or concrete operand always needs an
// explicit concrete float target.
func (w *walker) analyzeFloatDiv(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	if left == typesystem.Unknown || right == typesystem.Unknown {
		return typesystem.Unknown
	}
	if !typesystem.IsNumeric(left) || !typesystem.IsNumeric(right) {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "division requires numeric operands"))
		return typesystem.Unknown
	}

	bothComptime := typesystem.IsComptime(left) && typesystem.IsComptime(right)
	if bothComptime {
		if target != nil && typesystem.IsFloat(target) && !typesystem.IsComptime(target) {
			return target
		}
		return typesystem.ComptimeFloat
	}

	if target == nil || !typesystem.IsFloat(target) || typesystem.IsComptime(target) {
		w.addError(diagnostics.NewError(diagnostics.FloatDivRequiresFloatTarget, e.Token.Pos,
			"float division requires an explicit concrete float target").
			WithHint(": f64"))
		return typesystem.Unknown
	}
	return target
}

// analyzeIntDiv implements `\`: both operands must be
// integers; comptime is preserved only when both sides are comptime.
func (w *walker) analyzeIntDiv(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	return w.analyzeIntegerOp(e, left, right, target)
}

// analyzeModulo implements `%`, which shares int division's operand
// rules.
func (w *walker) analyzeModulo(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	return w.analyzeIntegerOp(e, left, right, target)
}

func (w *walker) analyzeIntegerOp(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	if left == typesystem.Unknown || right == typesystem.Unknown {
		return typesystem.Unknown
	}
	if !typesystem.IsInteger(left) || !typesystem.IsInteger(right) {
		w.addError(diagnostics.NewError(diagnostics.IntDivRequiresIntegers, e.Token.Pos,
			"integer division and modulo require integer operands"))
		return typesystem.Unknown
	}
	return w.reconcileNumericPair(e, left, right, target)
}

// analyzeComparison implements the six comparison operators:
// numeric operands share arithmetic's coercion rules; non-numeric
// operands must match exactly; incomparable kinds are rejected.
func (w *walker) analyzeComparison(e *ast.BinaryOp, left, right, target typesystem.Type) typesystem.Type {
	if left == typesystem.Unknown || right == typesystem.Unknown {
		return typesystem.Bool
	}

	if typesystem.IsNumeric(left) && typesystem.IsNumeric(right) {
		result := w.reconcileNumericPair(e, left, right, target)
		if result == typesystem.Unknown {
			return typesystem.Unknown
		}
		return typesystem.Bool
	}

	if typesystem.Equal(left, right) {
		return typesystem.Bool
	}

	w.addError(diagnostics.NewError(diagnostics.IncomparableTypes, e.Token.Pos,
		"cannot compare "+left.String()+" and "+right.String()))
	return typesystem.Unknown
}

// analyzeLogical implements && and ||: both operands must be bool;
// evaluation is left-then-right short-circuit, which is a runtime
// evaluation-order property outside this analyzer's concern — it only
// checks types.
func (w *walker) analyzeLogical(e *ast.BinaryOp, left, right typesystem.Type) typesystem.Type {
	ok := true
	if left != typesystem.Unknown && left != typesystem.Bool {
		w.addError(diagnostics.NewError(diagnostics.LogicalOperandNotBool, e.Left.GetToken().Pos, "left operand of "+e.Operator+" must be bool"))
		ok = false
	}
	if right != typesystem.Unknown && right != typesystem.Bool {
		w.addError(diagnostics.NewError(diagnostics.LogicalOperandNotBool, e.Right.GetToken().Pos, "right operand of "+e.Operator+" must be bool"))
		ok = false
	}
	if !ok {
		return typesystem.Unknown
	}
	return typesystem.Bool
}

func otherOperand(left, right, exclude typesystem.Type) typesystem.Type {
	if typesystem.Equal(left, exclude) {
		return right
	}
	return left
}

// mixedConcreteHint enumerates the concrete numeric types both operands
// could be annotated to, for the MixedConcreteRequiresContext hint.
func mixedConcreteHint(left, right typesystem.Type) string {
	candidates := []typesystem.Type{typesystem.I32, typesystem.I64, typesystem.F32, typesystem.F64}
	var viable []string
	for _, c := range candidates {
		if typesystem.CanCoerce(left, c) && typesystem.CanCoerce(right, c) {
			viable = append(viable, ": "+c.String())
		}
	}
	if len(viable) == 0 {
		return ""
	}
	return strings.Join(viable, " or ")
}
