package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValCannotBeDeclaredUndef(t *testing.T) {
	diags := analyzeTree(valDecl("x", namedType("i32"), undef()))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.ValUndef, diags[0].Code)
}

func TestMutUndefWithoutTypeRequiresAnnotation(t *testing.T) {
	diags := analyzeTree(mutDecl("x", nil, undef()))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.MutUndefRequiresType, diags[0].Code)
}

func TestMutUndefWithTypeIsDeferredUntilAssigned(t *testing.T) {
	diags := analyzeTree(
		mutDecl("x", namedType("i32"), undef()),
		exprStmt(ident("x")),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.UseOfUninitialized, diags[0].Code)
}

func TestMutWithBareIntLiteralWithoutTypeRequiresAnnotation(t *testing.T) {
	diags := analyzeTree(mutDecl("x", nil, intLit(42)))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.MutUndefRequiresType, diags[0].Code)
}

func TestMutWithBareFloatLiteralWithoutTypeRequiresAnnotation(t *testing.T) {
	diags := analyzeTree(mutDecl("x", nil, floatLit(1.5)))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.MutUndefRequiresType, diags[0].Code)
}

func TestMutWithAnnotatedLiteralIsFine(t *testing.T) {
	diags := analyzeTree(mutDecl("x", namedType("i32"), intLit(42)))
	assert.Empty(t, diags)
}

func TestMutUndefAssignedBeforeUseIsFine(t *testing.T) {
	diags := analyzeTree(
		mutDecl("x", namedType("i32"), undef()),
		assignStmt("x", intLit(5)),
		exprStmt(ident("x")),
	)

	assert.Empty(t, diags)
}

func TestReassigningValIsRejected(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", namedType("i32"), intLit(5)),
		assignStmt("x", intLit(6)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.ImmutableAssignment, diags[0].Code)
}

func TestReassigningMutIsFine(t *testing.T) {
	diags := analyzeTree(
		mutDecl("x", namedType("i32"), intLit(5)),
		assignStmt("x", intLit(6)),
	)

	assert.Empty(t, diags)
}

func TestRedeclarationInSameScopeReported(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", namedType("i32"), intLit(5)),
		valDecl("x", namedType("i64"), intLit(6)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Redeclaration, diags[0].Code)
}

func TestBareArrayAssignmentRequiresExplicitCopy(t *testing.T) {
	diags := analyzeTree(
		mutDecl("arr", arrayType(namedType("i32"), 3, false), arrayLit(intLit(1), intLit(2), intLit(3))),
		valDecl("alias", arrayType(namedType("i32"), 3, false), ident("arr")),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.ConcreteArrayCopyRequired, diags[0].Code)
}

func TestExplicitArrayCopyIsAccepted(t *testing.T) {
	diags := analyzeTree(
		mutDecl("arr", arrayType(namedType("i32"), 3, false), arrayLit(intLit(1), intLit(2), intLit(3))),
		valDecl("copy", arrayType(namedType("i32"), 3, false), arrayCopy(ident("arr"))),
	)

	assert.Empty(t, diags)
}
