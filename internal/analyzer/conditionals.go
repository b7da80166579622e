package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitConditionalExpr implements if/else(if) chains. The classifier
// always treats a conditional as Runtime, the simpler uniform rule: any
// value-producing site built from a conditional needs an explicit type,
// even when every branch happens to be a literal. So the
// MissingRuntimeContext check that matters here happens one level up,
// wherever this conditional is the value being declared, returned, or
// assigned — not in this method.
func (w *walker) VisitConditionalExpr(e *ast.ConditionalExpr) {
	target := w.target

	condType := w.analyzeExpr(e.Condition, typesystem.Bool)
	if condType != typesystem.Unknown && condType != typesystem.Bool {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Condition.GetToken().Pos,
			"if condition must be bool"))
	}

	consType := w.analyzeExpr(e.Consequence, target)

	altType := typesystem.Type(typesystem.Void)
	if e.Alternative != nil {
		altType = w.analyzeExpr(e.Alternative, target)
	}

	if target != nil {
		w.result = target
		return
	}
	if typesystem.Equal(consType, altType) {
		w.result = consType
		return
	}
	w.result = typesystem.Unknown
}
