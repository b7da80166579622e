package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// resolveType turns a syntactic TypeNode (as produced by the external
// parser) into a typesystem.Type. Hexen's type universe is closed and
// finite, so this is a direct structural translation with no
// symbol lookup, unlike a language with user-defined named types.
func (w *walker) resolveType(t ast.TypeNode) typesystem.Type {
	if t == nil {
		return nil
	}
	switch n := t.(type) {
	case *ast.NamedType:
		switch n.Name {
		case "i32":
			return typesystem.I32
		case "i64":
			return typesystem.I64
		case "f32":
			return typesystem.F32
		case "f64":
			return typesystem.F64
		case "bool":
			return typesystem.Bool
		case "string":
			return typesystem.String
		case "void":
			return typesystem.Void
		default:
			return typesystem.Unknown
		}
	case *ast.ArrayTypeNode:
		length := n.Len
		if n.Inferred {
			length = -1
		}
		return typesystem.Array{
			Elem: w.resolveType(n.Elem),
			Len: length,
			Inferred: n.Inferred,
		}
	case *ast.FuncTypeNode:
		params := make([]typesystem.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = w.resolveType(p)
		}
		return typesystem.Function{Params: params, Return: w.resolveType(n.Return)}
	default:
		return typesystem.Unknown
	}
}

// Unused Visit methods for TypeNode kinds: TypeNode is always resolved
// directly via resolveType, never walked through Accept. They exist only
// to satisfy ast.Visitor's exhaustiveness.
func (w *walker) VisitNamedType(*ast.NamedType) {}
func (w *walker) VisitArrayTypeNode(*ast.ArrayTypeNode) {}
func (w *walker) VisitFuncTypeNode(*ast.FuncTypeNode) {}
