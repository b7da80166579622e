package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/token"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// Classification is the Comptime Classifier's result.
type Classification int

const (
	CompileTime Classification = iota
	Runtime
)

// Classify decides whether a subtree is compile-time-evaluable or
// runtime-evaluable. It is a pure function of the subtree and the
// environment's existing symbol typings: it performs no side effects and
// emits no diagnostics. Block and declaration analyzers call it through
// requireRuntimeContext; it must never be merged with error reporting.
func Classify(node ast.Node, table *symbols.SymbolTable) Classification {
	if isRuntimeNode(node, table) {
		return Runtime
	}
	return CompileTime
}

func isRuntimeNode(node ast.Node, table *symbols.SymbolTable) bool {
	if node == nil {
		return false
	}
	switch n := node.(type) {
	case *ast.CallExpr:
		return true
	case *ast.ConditionalExpr:
		return true
	case *ast.ForLoop:
		return true
	case *ast.WhileLoop:
		return true
	case *ast.Identifier:
		sym, err := table.Lookup(n.Name)
		if err != nil {
			return false
		}
		return !typesystem.IsComptime(sym.Type)
	case *ast.ArrayCopyExpr:
		if isConcreteArray(n.Base, table) {
			return true
		}
		return isRuntimeNode(n.Base, table)
	case *ast.PropertyAccess:
		if n.Property == "length" && isConcreteArray(n.Base, table) {
			return true
		}
		return isRuntimeNode(n.Base, table)
	case *ast.BinaryOp:
		return isRuntimeNode(n.Left, table) || isRuntimeNode(n.Right, table)
	case *ast.UnaryOp:
		return isRuntimeNode(n.Operand, table)
	case *ast.ParenExpr:
		return isRuntimeNode(n.Inner, table)
	case *ast.AnnotatedExpression:
		return isRuntimeNode(n.Expression, table)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			if isRuntimeNode(el, table) {
				return true
			}
		}
		return false
	case *ast.IndexExpr:
		return isRuntimeNode(n.Base, table) || isRuntimeNode(n.Index, table)
	case *ast.ExpressionBlock:
		for _, s := range n.Statements {
			if isRuntimeNode(s, table) {
				return true
			}
		}
		return isRuntimeNode(n.Terminator, table)
	case *ast.AssignTerminator:
		return isRuntimeNode(n.Value, table)
	case *ast.ReturnStmt:
		return isRuntimeNode(n.Value, table)
	case *ast.ValDecl:
		return isRuntimeNode(n.Value, table)
	case *ast.MutDecl:
		return isRuntimeNode(n.Value, table)
	case *ast.AssignStmt:
		return isRuntimeNode(n.Value, table)
	case *ast.ExpressionStatement:
		return isRuntimeNode(n.Expression, table)
	default:
		return false
	}
}

// requireRuntimeContext implements the block/declaration analyzers'
// shared missing-context rule: a value-producing site with no explicit
// target type is fine as long as node classifies CompileTime; a
// Runtime-classified node needs an explicit type to resolve its value,
// since there's no literal to fall back on.
func (w *walker) requireRuntimeContext(node ast.Node, target typesystem.Type, pos token.Position) bool {
	if target != nil {
		return true
	}
	if Classify(node, w.table) == CompileTime {
		return true
	}
	w.addError(diagnostics.NewError(diagnostics.MissingRuntimeContext, pos,
		"runtime-dependent value requires an explicit type").
		WithHint(": <type>"))
	return false
}

// isConcreteArray reports whether expr's statically-known type (from
// already-declared symbol types) is a concrete (non-comptime) array.
// Only identifiers are resolvable without running the full bidirectional
// analysis; anything else is treated conservatively as "not (yet) known
// to be concrete", matching the classifier's role as a lightweight,
// side-effect-free predicate rather than a second type checker.
func isConcreteArray(expr ast.Expression, table *symbols.SymbolTable) bool {
	id, ok := expr.(*ast.Identifier)
	if !ok {
		return false
	}
	sym, err := table.Lookup(id.Name)
	if err != nil {
		return false
	}
	_, isArray := sym.Type.(typesystem.Array)
	return isArray
}
