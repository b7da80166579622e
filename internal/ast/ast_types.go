package ast

import "github.com/hexen-lang/hexen/internal/token"

// TypeNode is the syntactic (unresolved) representation of a type
// annotation, as produced by the (external) parser. The Declaration and
// Expression analyzers resolve a TypeNode into a typesystem.Type.
type TypeNode interface {
	Node
	typeNode()
}

// NamedType is a primitive type name: i32, i64, f32, f64, bool, string,
// void.
type NamedType struct {
	Token token.Token
	Name string
}

func (t *NamedType) GetToken() token.Token { return t.Token }
func (t *NamedType) TokenLiteral() string { return t.Name }
func (t *NamedType) typeNode() {}
func (t *NamedType) Accept(v Visitor) { v.VisitNamedType(t) }

// ArrayTypeNode is `[N]T` (Len >= 0) or `[_]T` (Inferred).
type ArrayTypeNode struct {
	Token token.Token
	Elem TypeNode
	Len int
	Inferred bool
}

func (t *ArrayTypeNode) GetToken() token.Token { return t.Token }
func (t *ArrayTypeNode) TokenLiteral() string { return "array_type" }
func (t *ArrayTypeNode) typeNode() {}
func (t *ArrayTypeNode) Accept(v Visitor) { v.VisitArrayTypeNode(t) }

// FuncTypeNode is `(T1,..., Tn) -> R`.
type FuncTypeNode struct {
	Token token.Token
	Params []TypeNode
	Return TypeNode
}

func (t *FuncTypeNode) GetToken() token.Token { return t.Token }
func (t *FuncTypeNode) TokenLiteral() string { return "func_type" }
func (t *FuncTypeNode) typeNode() {}
func (t *FuncTypeNode) Accept(v Visitor) { v.VisitFuncTypeNode(t) }
