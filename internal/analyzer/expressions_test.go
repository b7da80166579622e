package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/typesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleComptimeIdentifierAdaptsPerUseSite(t *testing.T) {
	idA := ident("size")
	idB := ident("size")

	diags := analyzeTree(
		valDecl("size", nil, intLit(5)),
		valDecl("a", namedType("i32"), idA),
		valDecl("b", namedType("i64"), idB),
	)

	require.Empty(t, diags)
	assert.Equal(t, typesystem.I32, idA.ResolvedType())
	assert.Equal(t, typesystem.I64, idB.ResolvedType())
}

func TestAnnotationWithoutOuterTypeIsIllegal(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", nil, &ast.AnnotatedExpression{Expression: intLit(5), Type: namedType("i32")}),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.AnnotationWithoutLeftType, diags[0].Code)
}

func TestAnnotationMismatchAgainstOuterType(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", namedType("i64"), &ast.AnnotatedExpression{Expression: intLit(5), Type: namedType("i32")}),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.AnnotationMismatch, diags[0].Code)
}

func TestAnnotationAcknowledgesPrecisionLoss(t *testing.T) {
	diags := analyzeTree(
		fn("f", []*ast.Parameter{param("p", namedType("f64"))}, namedType("void"), block(
			valDecl("x", namedType("i32"), &ast.AnnotatedExpression{Expression: ident("p"), Type: namedType("i32")}),
		)),
	)

	assert.Empty(t, diags)
}

func TestPrecisionLossWithoutAcknowledgmentIsRejected(t *testing.T) {
	diags := analyzeTree(
		fn("f", []*ast.Parameter{param("p", namedType("f64"))}, namedType("void"), block(
			valDecl("x", namedType("i32"), ident("p")),
		)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.PrecisionLossRequiresAck, diags[0].Code)
	assert.Equal(t, ": i32", diags[0].Hint)
}

func TestSafeWideningCoercionNeedsNoAcknowledgment(t *testing.T) {
	diags := analyzeTree(
		fn("f", []*ast.Parameter{param("p", namedType("i32"))}, namedType("void"), block(
			valDecl("x", namedType("i64"), ident("p")),
		)),
	)

	assert.Empty(t, diags)
}

func TestUndefinedIdentifierReported(t *testing.T) {
	diags := analyzeTree(exprStmt(ident("nope")))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Undefined, diags[0].Code)
}

func TestCallArgumentCheckedAgainstParameterType(t *testing.T) {
	diags := analyzeTree(
		fn("takesF64", []*ast.Parameter{param("p", namedType("f64"))}, namedType("void"), block()),
		exprStmt(callExpr(ident("takesF64"), intLit(5))),
	)

	assert.Empty(t, diags)
}

func TestCallArgumentMismatchReported(t *testing.T) {
	diags := analyzeTree(
		fn("takesI32", []*ast.Parameter{param("p", namedType("i32"))}, namedType("void"), block()),
		fn("g", []*ast.Parameter{param("p", namedType("f64"))}, namedType("void"), block(
			exprStmt(callExpr(ident("takesI32"), ident("p"))),
		)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.PrecisionLossRequiresAck, diags[0].Code)
}

func TestCallOnNonFunctionReported(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", namedType("i32"), intLit(5)),
		exprStmt(callExpr(ident("x"))),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.TypeMismatch, diags[0].Code)
}
