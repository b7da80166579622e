package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeOnEmptyProgramProducesNoDiagnostics(t *testing.T) {
	sink := New().Analyze(&ast.Program{})
	assert.True(t, sink.Empty())
}

func TestAnalyzeStampsEachRunWithAFreshRunID(t *testing.T) {
	first := New().Analyze(&ast.Program{})
	second := New().Analyze(&ast.Program{})

	assert.NotEmpty(t, first.RunID)
	assert.NotEmpty(t, second.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSeparateRunsDoNotShareSymbolTableState(t *testing.T) {
	progA := &ast.Program{Statements: []ast.Statement{valDecl("x", namedType("i32"), intLit(1))}}
	progB := &ast.Program{Statements: []ast.Statement{valDecl("x", namedType("i64"), intLit(2))}}

	diagsA := New().Analyze(progA).All()
	diagsB := New().Analyze(progB).All()

	assert.Empty(t, diagsA)
	assert.Empty(t, diagsB)
}

func TestForwardFunctionReferencesResolveRegardlessOfOrder(t *testing.T) {
	diags := analyzeTree(
		fn("caller", nil, namedType("i64"), block(
			returnStmt(callExpr(ident("callee"))),
		)),
		fn("callee", nil, namedType("i64"), block(
			returnStmt(intLit(1)),
		)),
	)

	assert.Empty(t, diags)
}

func TestMutualRecursionResolves(t *testing.T) {
	diags := analyzeTree(
		fn("isEven", []*ast.Parameter{param("n", namedType("i64"))}, namedType("bool"), block(
			returnStmt(callExpr(ident("isOdd"), ident("n"))),
		)),
		fn("isOdd", []*ast.Parameter{param("n", namedType("i64"))}, namedType("bool"), block(
			returnStmt(callExpr(ident("isEven"), ident("n"))),
		)),
	)

	assert.Empty(t, diags)
}

func TestDuplicateTopLevelFunctionNameReportsRedeclaration(t *testing.T) {
	diags := analyzeTree(
		fn("f", nil, namedType("void"), block()),
		fn("f", nil, namedType("void"), block()),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Redeclaration, diags[0].Code)
}

func TestAnalysisIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	build := func() *ast.Program {
		return &ast.Program{Statements: []ast.Statement{
			valDecl("x", namedType("i32"), undef()),
			exprStmt(ident("y")),
		}}
	}

	first := New().Analyze(build()).All()
	second := New().Analyze(build()).All()

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, codesOf(first), codesOf(second))
}

func TestFunctionParameterScopeDoesNotLeakToSiblingFunctions(t *testing.T) {
	diags := analyzeTree(
		fn("f", []*ast.Parameter{param("p", namedType("i32"))}, namedType("void"), block()),
		fn("g", nil, namedType("void"), block(
			exprStmt(ident("p")),
		)),
	)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.Undefined, diags[0].Code)
}
