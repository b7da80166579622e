package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/symbols"
	"github.com/hexen-lang/hexen/internal/token"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

func (w *walker) declareSymbol(pos token.Position, name string, t typesystem.Type, mut symbols.Mutability, init symbols.InitState) {
	if err := w.table.Declare(symbols.Symbol{Name: name, Type: t, Mutability: mut, Init: init, DefinedAt: pos}); err != nil {
		w.addError(diagnostics.NewError(diagnostics.Redeclaration, pos, "redeclared in this scope: "+name))
	}
}

// checkArrayAliasing implements the concrete-array copy discipline: a
// bare identifier of concrete array type flowing directly into a new
// binding, an assignment, or a call argument would alias the existing
// array rather than copy it, so the source must be wrapped in an explicit
// base[..] copy; ArrayCopyExpr is the only way to opt in. Identifiers
// whose array element type is still comptime are exempt.
func (w *walker) checkArrayAliasing(value ast.Expression, target typesystem.Type) {
	if target == nil {
		return
	}
	if _, isArray := target.(typesystem.Array); !isArray {
		return
	}
	id, isIdent := value.(*ast.Identifier)
	if !isIdent {
		return
	}
	sym, err := w.table.Lookup(id.Name)
	if err != nil {
		return
	}
	if srcArr, isArray := sym.Type.(typesystem.Array); !isArray || typesystem.IsComptime(srcArr.Elem) {
		return
	}
	w.addError(diagnostics.NewError(diagnostics.ConcreteArrayCopyRequired, value.GetToken().Pos,
		"assigning an array variable aliases it; copy explicitly").
		WithHint("append [..]"))
}

// VisitValDecl implements `val name [: T] = expr`. A val can
// never be declared undef — unlike mut, it has no deferred-initialization
// escape hatch, since it would then have no assignment left to satisfy it.
func (w *walker) VisitValDecl(d *ast.ValDecl) {
	if _, isUndef := d.Value.(*ast.UndefExpr); isUndef {
		w.addError(diagnostics.NewError(diagnostics.ValUndef, d.Token.Pos,
			"val cannot be declared undef; it has no later assignment to initialize it"))
		declared := typesystem.Unknown
		if d.TypeAnnotation != nil {
			declared = w.resolveType(d.TypeAnnotation)
		}
		w.declareSymbol(d.Token.Pos, d.Name, declared, symbols.Val, symbols.Initialized)
		return
	}

	var target typesystem.Type
	if d.TypeAnnotation != nil {
		target = w.resolveType(d.TypeAnnotation)
		w.checkArrayAliasing(d.Value, target)
	} else {
		w.requireRuntimeContext(d.Value, nil, d.Token.Pos)
	}

	valueType := w.analyzeExpr(d.Value, target)
	finalType := valueType
	if target != nil {
		finalType = w.checkAssignable(d.Token.Pos, valueType, target)
	}
	w.declareSymbol(d.Token.Pos, d.Name, finalType, symbols.Val, symbols.Initialized)
}

// VisitMutDecl implements `mut name : T = expr` or `mut name : T = undef`
//. undef requires an explicit type annotation, since there is
// no initializer left to infer one from.
func (w *walker) VisitMutDecl(d *ast.MutDecl) {
	if _, isUndef := d.Value.(*ast.UndefExpr); isUndef {
		if d.TypeAnnotation == nil {
			w.addError(diagnostics.NewError(diagnostics.MutUndefRequiresType, d.Token.Pos,
				"mut declared undef requires an explicit type annotation"))
			w.declareSymbol(d.Token.Pos, d.Name, typesystem.Unknown, symbols.Mut, symbols.Deferred)
			return
		}
		w.declareSymbol(d.Token.Pos, d.Name, w.resolveType(d.TypeAnnotation), symbols.Mut, symbols.Deferred)
		return
	}

	if d.TypeAnnotation == nil && isBareComptimeLiteral(d.Value) {
		w.addError(diagnostics.NewError(diagnostics.MutUndefRequiresType, d.Token.Pos,
			"mut initialized from a bare literal requires an explicit type annotation"))
		w.analyzeExpr(d.Value, nil)
		w.declareSymbol(d.Token.Pos, d.Name, typesystem.Unknown, symbols.Mut, symbols.Initialized)
		return
	}

	var target typesystem.Type
	if d.TypeAnnotation != nil {
		target = w.resolveType(d.TypeAnnotation)
		w.checkArrayAliasing(d.Value, target)
	} else {
		w.requireRuntimeContext(d.Value, nil, d.Token.Pos)
	}

	valueType := w.analyzeExpr(d.Value, target)
	finalType := valueType
	if target != nil {
		finalType = w.checkAssignable(d.Token.Pos, valueType, target)
	}
	w.declareSymbol(d.Token.Pos, d.Name, finalType, symbols.Mut, symbols.Initialized)
}

// isBareComptimeLiteral reports whether e is an int or float literal
// written directly as a declaration's value, the one comptime shape with
// no identifier or operator around it to hang a later commit off of.
func isBareComptimeLiteral(e ast.Expression) bool {
	switch e.(type) {
	case *ast.IntLiteral, *ast.FloatLiteral:
		return true
	default:
		return false
	}
}

// VisitAssignStmt implements `name = expr` reassignment: only legal
// against a mut binding; the value is checked against the
// binding's already-fixed type, and a successful assignment clears any
// deferred-initialization state.
func (w *walker) VisitAssignStmt(s *ast.AssignStmt) {
	sym, err := w.table.Lookup(s.Name)
	if err != nil {
		w.addError(diagnostics.NewError(diagnostics.Undefined, s.Token.Pos, "undefined: "+s.Name))
		w.analyzeExpr(s.Value, nil)
		return
	}
	if sym.Mutability != symbols.Mut {
		w.addError(diagnostics.NewError(diagnostics.ImmutableAssignment, s.Token.Pos,
			"cannot assign to val binding: "+s.Name))
		w.analyzeExpr(s.Value, sym.Type)
		return
	}

	w.checkArrayAliasing(s.Value, sym.Type)
	valueType := w.analyzeExpr(s.Value, sym.Type)
	w.checkAssignable(s.Token.Pos, valueType, sym.Type)
	_ = w.table.MarkInitialized(s.Name)
}
