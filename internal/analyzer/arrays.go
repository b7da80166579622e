package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// VisitArrayLiteral implements `[e1, e2,...]`. With an outer array
// target, every element is analyzed against the target's element type
// directly. Without one, elements must agree on a single type — comptime
// elements unify the way binary operands do, a nested array with
// inconsistent inner lengths is reported as MultiDimMismatch rather than
// the generic element-type mismatch, since the fix (make every row the
// same length) is different from a plain type error.
func (w *walker) VisitArrayLiteral(e *ast.ArrayLiteral) {
	target := w.target
	var elemTarget typesystem.Type
	if arr, ok := target.(typesystem.Array); ok {
		elemTarget = arr.Elem
	}

	if len(e.Elements) == 0 {
		if elemTarget == nil {
			w.addError(diagnostics.NewError(diagnostics.EmptyArrayRequiresContext, e.Token.Pos,
				"empty array literal requires an explicit element type").
				WithHint(": [0]<type>"))
			w.result = typesystem.Unknown
			return
		}
		w.result = typesystem.Array{Elem: elemTarget, Len: 0, Inferred: false}
		return
	}

	unified := w.analyzeExpr(e.Elements[0], elemTarget)
	for _, el := range e.Elements[1:] {
		t := w.analyzeExpr(el, elemTarget)
		if elemTarget != nil {
			w.checkAssignable(el.GetToken().Pos, t, elemTarget)
			continue
		}
		if typesystem.IsComptime(unified) && typesystem.IsComptime(t) {
			unified = typesystem.UnifyComptime(unified, t)
			continue
		}
		if typesystem.Equal(unified, t) {
			continue
		}
		uArr, uIsArr := unified.(typesystem.Array)
		tArr, tIsArr := t.(typesystem.Array)
		if uIsArr && tIsArr && typesystem.Equal(uArr.Elem, tArr.Elem) && uArr.Len != tArr.Len {
			w.addError(diagnostics.NewError(diagnostics.MultiDimMismatch, el.GetToken().Pos,
				"nested array rows have inconsistent length"))
			continue
		}
		w.addError(diagnostics.NewError(diagnostics.ArrayElementTypeMismatch, el.GetToken().Pos,
			"array element type "+t.String()+" does not match "+unified.String()))
	}

	elem := unified
	if elemTarget != nil {
		elem = elemTarget
	}
	if arr, ok := target.(typesystem.Array); ok && !arr.Inferred && arr.Len != len(e.Elements) {
		w.addError(diagnostics.NewError(diagnostics.ArraySizeMismatch, e.Token.Pos,
			"array literal size does not match the declared array size"))
		w.result = typesystem.Unknown
		return
	}

	w.result = typesystem.Array{Elem: elem, Len: len(e.Elements), Inferred: false}
}

// VisitIndexExpr implements `base[index]`.
func (w *walker) VisitIndexExpr(e *ast.IndexExpr) {
	baseType := w.analyzeExpr(e.Base, nil)
	idxType := w.analyzeExpr(e.Index, typesystem.I64)
	if idxType != typesystem.Unknown && !typesystem.IsInteger(idxType) {
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Index.GetToken().Pos,
			"array index must be an integer"))
	}

	if arr, ok := baseType.(typesystem.Array); ok {
		w.result = arr.Elem
		return
	}
	switch baseType {
	case typesystem.ComptimeArrayInt:
		w.result = typesystem.ComptimeInt
	case typesystem.ComptimeArrayFloat:
		w.result = typesystem.ComptimeFloat
	case typesystem.Unknown:
		w.result = typesystem.Unknown
	default:
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "indexing requires an array"))
		w.result = typesystem.Unknown
	}
}

// VisitArrayCopyExpr implements the explicit `base[..]` copy, the only
// legal way to pass, bind or assign a concrete array's contents without
// aliasing the original (see checkArrayAliasing).
func (w *walker) VisitArrayCopyExpr(e *ast.ArrayCopyExpr) {
	baseType := w.analyzeExpr(e.Base, w.target)
	switch baseType.(type) {
	case typesystem.Array:
		w.result = baseType
		return
	}
	switch baseType {
	case typesystem.ComptimeArrayInt, typesystem.ComptimeArrayFloat, typesystem.Unknown:
		w.result = baseType
	default:
		w.addError(diagnostics.NewError(diagnostics.TypeMismatch, e.Token.Pos, "[..] copy requires an array"))
		w.result = typesystem.Unknown
	}
}

// VisitPropertyAccess implements `base.length`, the only defined
// property.
func (w *walker) VisitPropertyAccess(e *ast.PropertyAccess) {
	baseType := w.analyzeExpr(e.Base, nil)
	if e.Property != "length" {
		w.addError(diagnostics.NewError(diagnostics.PropertyOnNonArray, e.Token.Pos,
			"unknown property: "+e.Property))
		w.result = typesystem.Unknown
		return
	}

	switch baseType.(type) {
	case typesystem.Array:
		w.result = typesystem.I64
		return
	}
	switch baseType {
	case typesystem.ComptimeArrayInt, typesystem.ComptimeArrayFloat:
		w.result = typesystem.ComptimeInt
	case typesystem.Unknown:
		w.result = typesystem.Unknown
	default:
		w.addError(diagnostics.NewError(diagnostics.PropertyOnNonArray, e.Token.Pos,
			".length requires an array"))
		w.result = typesystem.Unknown
	}
}
