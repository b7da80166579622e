package analyzer

import (
	"testing"

	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
)

// analyzeTree runs the full Analyzer over a hand-built program and returns
// its diagnostics. Plays the role a source-driven analyzeSource helper
// would, except the tree is constructed directly since concrete-syntax
// parsing is out of scope for this module.
func analyzeTree(stmts ...ast.Statement) []*diagnostics.DiagnosticError {
	prog := &ast.Program{Statements: stmts}
	sink := New().Analyze(prog)
	return sink.All()
}

func codesOf(diags []*diagnostics.DiagnosticError) []diagnostics.ErrorCode {
	out := make([]diagnostics.ErrorCode, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func hasCode(diags []*diagnostics.DiagnosticError, code diagnostics.ErrorCode) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func ident(name string) *ast.Identifier           { return &ast.Identifier{Name: name} }
func intLit(v int64) *ast.IntLiteral               { return &ast.IntLiteral{Value: v} }
func floatLit(v float64) *ast.FloatLiteral         { return &ast.FloatLiteral{Value: v} }
func boolLit(v bool) *ast.BoolLiteral              { return &ast.BoolLiteral{Value: v} }
func strLit(v string) *ast.StringLiteral           { return &ast.StringLiteral{Value: v} }
func namedType(name string) *ast.NamedType         { return &ast.NamedType{Name: name} }
func undef() *ast.UndefExpr                        { return &ast.UndefExpr{} }

func arrayType(elem ast.TypeNode, length int, inferred bool) *ast.ArrayTypeNode {
	return &ast.ArrayTypeNode{Elem: elem, Len: length, Inferred: inferred}
}

func valDecl(name string, typ ast.TypeNode, value ast.Expression) *ast.ValDecl {
	return &ast.ValDecl{Name: name, TypeAnnotation: typ, Value: value}
}

func mutDecl(name string, typ ast.TypeNode, value ast.Expression) *ast.MutDecl {
	return &ast.MutDecl{Name: name, TypeAnnotation: typ, Value: value}
}

func assignStmt(name string, value ast.Expression) *ast.AssignStmt {
	return &ast.AssignStmt{Name: name, Value: value}
}

func exprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Statements: stmts}
}

func exprBlock(terminator ast.Statement, stmts ...ast.Statement) *ast.ExpressionBlock {
	return &ast.ExpressionBlock{Statements: stmts, Terminator: terminator}
}

func assignTerm(v ast.Expression) *ast.AssignTerminator {
	return &ast.AssignTerminator{Value: v}
}

func binOp(op string, left, right ast.Expression) *ast.BinaryOp {
	return &ast.BinaryOp{Operator: op, Left: left, Right: right}
}

func unaryOp(op string, operand ast.Expression) *ast.UnaryOp {
	return &ast.UnaryOp{Operator: op, Operand: operand}
}

func fn(name string, params []*ast.Parameter, returnType ast.TypeNode, body *ast.BlockStatement) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, Params: params, ReturnType: returnType, Body: body}
}

func param(name string, typ ast.TypeNode) *ast.Parameter {
	return &ast.Parameter{Name: name, Type: typ}
}

func callExpr(callee ast.Expression, args ...ast.Expression) *ast.CallExpr {
	return &ast.CallExpr{Callee: callee, Arguments: args}
}

func returnStmt(v ast.Expression) *ast.ReturnStmt {
	return &ast.ReturnStmt{Value: v}
}

func arrayLit(elems ...ast.Expression) *ast.ArrayLiteral {
	return &ast.ArrayLiteral{Elements: elems}
}

func arrayCopy(base ast.Expression) *ast.ArrayCopyExpr {
	return &ast.ArrayCopyExpr{Base: base}
}

func indexExpr(base, idx ast.Expression) *ast.IndexExpr {
	return &ast.IndexExpr{Base: base, Index: idx}
}

func propertyAccess(base ast.Expression, prop string) *ast.PropertyAccess {
	return &ast.PropertyAccess{Base: base, Property: prop}
}

func whileLoop(cond ast.Expression, body *ast.BlockStatement) *ast.WhileLoop {
	return &ast.WhileLoop{Condition: cond, Body: body}
}

func breakStmt(label string) *ast.BreakStmt       { return &ast.BreakStmt{Label: label} }
func continueStmt(label string) *ast.ContinueStmt { return &ast.ContinueStmt{Label: label} }

func labeledStmt(label string, loop ast.Statement) *ast.LabeledStmt {
	return &ast.LabeledStmt{Label: label, Loop: loop}
}

func conditional(cond ast.Expression, cons *ast.ExpressionBlock, alt ast.Expression) *ast.ConditionalExpr {
	return &ast.ConditionalExpr{Condition: cond, Consequence: cons, Alternative: alt}
}
