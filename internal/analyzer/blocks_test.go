package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionBlockWithComptimeTerminatorNeedsNoContext(t *testing.T) {
	diags := analyzeTree(
		valDecl("x", nil, exprBlock(assignTerm(intLit(5)))),
	)
	assert.Empty(t, diags)
}

func TestExpressionBlockWithRuntimeTerminatorRequiresExplicitType(t *testing.T) {
	diags := analyzeTree(
		fn("f", []*ast.Parameter{param("p", namedType("i32"))}, namedType("void"), block(
			exprStmt(exprBlock(assignTerm(ident("p")))),
		)),
	)

	assert.True(t, hasCode(diags, diagnostics.MissingRuntimeContext))
}

func TestExpressionBlockStatementsAnalyzedBeforeTerminator(t *testing.T) {
	// the redeclaration inside the block must be reported before the
	// terminator is ever reached, since statements run first
	diags := analyzeTree(
		valDecl("x", namedType("i64"), exprBlock(
			assignTerm(intLit(1)),
			valDecl("y", namedType("i32"), intLit(1)),
			valDecl("y", namedType("i32"), intLit(2)),
		)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Redeclaration, diags[0].Code)
}

func TestBlockScopeDoesNotLeakOutward(t *testing.T) {
	diags := analyzeTree(
		exprStmt(exprBlock(assignTerm(intLit(1)), valDecl("local", namedType("i32"), intLit(1)))),
		exprStmt(ident("local")),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Undefined, diags[0].Code)
}
