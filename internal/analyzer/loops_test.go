package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhileConditionMustBeBool(t *testing.T) {
	diags := analyzeTree(whileLoop(intLit(1), block()))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.TypeMismatch, diags[0].Code)
}

func TestWhileLoopBodyRunsInItsOwnScope(t *testing.T) {
	diags := analyzeTree(
		whileLoop(boolLit(true), block(valDecl("x", namedType("i32"), intLit(1)))),
		exprStmt(ident("x")),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Undefined, diags[0].Code)
}

func TestForInRangeBindsI64LoopVariable(t *testing.T) {
	idx := ident("i")
	diags := analyzeTree(
		&ast.ForLoop{
			LoopVar:    "i",
			RangeStart: intLit(0),
			RangeEnd:   intLit(10),
			Body:       block(exprStmt(idx)),
		},
	)

	require.Empty(t, diags)
}

func TestForInArrayIterationYieldsElementType(t *testing.T) {
	diags := analyzeTree(
		mutDecl("arr", arrayType(namedType("i32"), 3, false), arrayLit(intLit(1), intLit(2), intLit(3))),
		&ast.ForLoop{
			LoopVar:  "v",
			Iterable: ident("arr"),
			Body:     block(valDecl("doubled", namedType("i32"), ident("v"))),
		},
	)

	require.Empty(t, diags)
}

func TestForExpressionWithoutResolvableElementTypeRequiresAnnotation(t *testing.T) {
	diags := analyzeTree(
		valDecl("xs", nil, &ast.ForLoop{
			LoopVar:      "i",
			RangeStart:   intLit(0),
			RangeEnd:     intLit(3),
			IsExpression: true,
			Body:         exprBlock(breakStmt("")),
		}),
	)

	assert.True(t, hasCode(diags, diagnostics.LoopExpressionRequiresType))
}

func TestForExpressionCollectsValuesWithOuterTarget(t *testing.T) {
	diags := analyzeTree(
		valDecl("xs", arrayType(namedType("i64"), -1, true), &ast.ForLoop{
			LoopVar:      "i",
			RangeStart:   intLit(0),
			RangeEnd:     intLit(3),
			IsExpression: true,
			Body:         exprBlock(assignTerm(ident("i"))),
		}),
	)

	assert.Empty(t, diags)
}
