// Package ast defines the syntax tree the semantic core consumes and
// decorates. Concrete-syntax parsing is an external
// collaborator; this package only defines the node shapes a front-end
// must produce and the analyzer must walk.
//
// Node kinds are modeled as a closed set of tagged-variant structs rather
// than an open class hierarchy, dispatched through the Visitor
// interface's double-dispatch pattern.
package ast

import (
	"github.com/hexen-lang/hexen/internal/token"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node with no resolved value type of its own.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that the Expression Analyzer assigns exactly one
// resolved type to (invariant 4). typeSlot provides the storage;
// every concrete expression type embeds it.
type Expression interface {
	Node
	expressionNode()
	ResolvedType() typesystem.Type
	SetResolvedType(typesystem.Type)
}

// typeSlot is embedded by every Expression implementation to carry its
// single resolved type once analysis completes.
type typeSlot struct {
	resolved typesystem.Type
}

func (s *typeSlot) ResolvedType() typesystem.Type { return s.resolved }
func (s *typeSlot) SetResolvedType(t typesystem.Type) { s.resolved = t }

// Program is the root node produced for one compilation unit.
type Program struct {
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) GetToken() token.Token { return token.Token{} }
func (p *Program) TokenLiteral() string { return "program" }

// Parameter is a function parameter: a name and a declared type.
type Parameter struct {
	Token token.Token
	Name string
	Type TypeNode
}

func (p *Parameter) GetToken() token.Token { return p.Token }
func (p *Parameter) TokenLiteral() string { return "parameter" }
func (p *Parameter) Accept(v Visitor) { v.VisitParameter(p) }

// FunctionDecl is a top-level (or nested) function declaration.
type FunctionDecl struct {
	Token token.Token
	Name string
	Params []*Parameter
	ReturnType TypeNode
	Body *BlockStatement
}

func (f *FunctionDecl) GetToken() token.Token { return f.Token }
func (f *FunctionDecl) TokenLiteral() string { return "function" }
func (f *FunctionDecl) statementNode() {}
func (f *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(f) }

// ValDecl is `val name [: T] = expr`.
type ValDecl struct {
	Token token.Token
	Name string
	TypeAnnotation TypeNode // nil if absent
	Value Expression
}

func (d *ValDecl) GetToken() token.Token { return d.Token }
func (d *ValDecl) TokenLiteral() string { return "val_decl" }
func (d *ValDecl) statementNode() {}
func (d *ValDecl) Accept(v Visitor) { v.VisitValDecl(d) }

// MutDecl is `mut name : T = expr`. TypeAnnotation is
// mandatory whenever Value is UndefExpr or a bare comptime literal.
type MutDecl struct {
	Token token.Token
	Name string
	TypeAnnotation TypeNode // nil if absent
	Value Expression
}

func (d *MutDecl) GetToken() token.Token { return d.Token }
func (d *MutDecl) TokenLiteral() string { return "mut_decl" }
func (d *MutDecl) statementNode() {}
func (d *MutDecl) Accept(v Visitor) { v.VisitMutDecl(d) }

// AssignStmt is `name = expr` reassignment of a mut binding.
type AssignStmt struct {
	Token token.Token
	Name string
	Value Expression
}

func (s *AssignStmt) GetToken() token.Token { return s.Token }
func (s *AssignStmt) TokenLiteral() string { return "assign_stmt" }
func (s *AssignStmt) statementNode() {}
func (s *AssignStmt) Accept(v Visitor) { v.VisitAssignStmt(s) }

// ReturnStmt is `return expr`, validated against the enclosing function's
// declared return type (dual-capability contract).
type ReturnStmt struct {
	Token token.Token
	Value Expression // nil for bare `return`
}

func (s *ReturnStmt) GetToken() token.Token { return s.Token }
func (s *ReturnStmt) TokenLiteral() string { return "return_stmt" }
func (s *ReturnStmt) statementNode() {}
func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }

// AssignTerminator is the `-> expr` form: it contributes the enclosing
// expression block's value.
type AssignTerminator struct {
	Token token.Token
	Value Expression
}

func (s *AssignTerminator) GetToken() token.Token { return s.Token }
func (s *AssignTerminator) TokenLiteral() string { return "assign_terminator" }
func (s *AssignTerminator) statementNode() {}
func (s *AssignTerminator) Accept(v Visitor) { v.VisitAssignTerminator(s) }

// BlockStatement is a statement block `{ s1... sn }`: introduces a scope,
// produces no value.
type BlockStatement struct {
	Token token.Token
	Statements []Statement
}

func (b *BlockStatement) GetToken() token.Token { return b.Token }
func (b *BlockStatement) TokenLiteral() string { return "block" }
func (b *BlockStatement) statementNode() {}
func (b *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(b) }

// ExpressionStatement wraps an expression used in statement position
// (e.g. a bare call for its side effects).
type ExpressionStatement struct {
	Token token.Token
	Expression Expression
}

func (s *ExpressionStatement) GetToken() token.Token { return s.Token }
func (s *ExpressionStatement) TokenLiteral() string { return "expression_stmt" }
func (s *ExpressionStatement) statementNode() {}
func (s *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(s) }

// LabeledStmt is `'name loop` — a label scoped to a single loop's lexical
// extent.
type LabeledStmt struct {
	Token token.Token
	Label string
	Loop Statement // *ForLoop or *WhileLoop
}

func (s *LabeledStmt) GetToken() token.Token { return s.Token }
func (s *LabeledStmt) TokenLiteral() string { return "labeled_stmt" }
func (s *LabeledStmt) statementNode() {}
func (s *LabeledStmt) Accept(v Visitor) { v.VisitLabeledStmt(s) }

// BreakStmt is `break ['label]`.
type BreakStmt struct {
	Token token.Token
	Label string // "" if unlabeled
}

func (s *BreakStmt) GetToken() token.Token { return s.Token }
func (s *BreakStmt) TokenLiteral() string { return "break" }
func (s *BreakStmt) statementNode() {}
func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }

// ContinueStmt is `continue ['label]`.
type ContinueStmt struct {
	Token token.Token
	Label string // "" if unlabeled
}

func (s *ContinueStmt) GetToken() token.Token { return s.Token }
func (s *ContinueStmt) TokenLiteral() string { return "continue" }
func (s *ContinueStmt) statementNode() {}
func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }
