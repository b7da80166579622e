package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryMinusOnNumericIsLegal(t *testing.T) {
	diags := analyzeTree(valDecl("x", namedType("i32"), unaryOp("-", intLit(5))))
	assert.Empty(t, diags)
}

func TestUnaryMinusOnBoolRejected(t *testing.T) {
	diags := analyzeTree(valDecl("x", nil, unaryOp("-", boolLit(true))))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.TypeMismatch, diags[0].Code)
}

func TestUnaryNotOnBoolIsLegal(t *testing.T) {
	diags := analyzeTree(valDecl("x", nil, unaryOp("!", boolLit(true))))
	assert.Empty(t, diags)
}

func TestUnaryNotOnNonBoolRejected(t *testing.T) {
	diags := analyzeTree(valDecl("x", nil, unaryOp("!", intLit(1))))

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.TypeMismatch, diags[0].Code)
}
