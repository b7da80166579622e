package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitUnaryOp implements `-x` (numeric, same type) and `!x` (bool,
// result bool).
func (w *walker) VisitUnaryOp(e *ast.UnaryOp) {
	operand := w.analyzeExpr(e.Operand, w.target)

	switch e.Operator {
	case "-":
		if operand == typesystem.Unknown {
			w.result = typesystem.Unknown
			return
		}
		if !typesystem.IsNumeric(operand) {
			w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "unary - requires a numeric operand"))
			w.result = typesystem.Unknown
			return
		}
		w.result = operand
	case "!":
		if operand == typesystem.Unknown {
			w.result = typesystem.Unknown
			return
		}
		if operand != typesystem.Bool {
			w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "unary ! requires a bool operand"))
			w.result = typesystem.Unknown
			return
		}
		w.result = typesystem.Bool
	default:
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "unknown unary operator: "+e.Operator))
		w.result = typesystem.Unknown
	}
}
