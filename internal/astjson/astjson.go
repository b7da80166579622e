// Package astjson decodes the JSON-encoded syntax tree cmd/hexen reads
// from stdin or a file into internal/ast nodes. Concrete-syntax parsing
// is out of scope for this module, so this is the thin
// substitute front end: a fixed wire format produced by whatever
// upstream tool already has a real Hexen parser.
//
// The wire format mirrors the node shapes in internal/ast directly: a
// "kind" discriminator per node plus only the fields that kind uses.
// ast.Expression/ast.Statement are interfaces, so they can't be
// json.Unmarshaled directly — every node is first decoded into a flat
// envelope (wireNode) and then built into the matching concrete ast type
// by kind.
package astjson

import (
	"encoding/json"
	"fmt"
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/token"
)

type wirePos struct {
	Line int `json:"line"`
	Column int `json:"column"`
}

func (p wirePos) toPosition() token.Position {
	return token.Position{Line: p.Line, Column: p.Column}
}

func (p wirePos) token(lexeme string) token.Token {
	return token.Token{Lexeme: lexeme, Pos: p.toPosition()}
}

// wireNode is the flat envelope every node decodes into first. Only the
// fields relevant to a given "kind" are populated; the rest are left at
// their zero value.
type wireNode struct {
	Kind string `json:"kind"`
	Pos wirePos `json:"pos"`

	Name string `json:"name,omitempty"`
	Operator string `json:"operator,omitempty"`
	Property string `json:"property,omitempty"`
	Label string `json:"label,omitempty"`

	IntValue int64 `json:"value_int,omitempty"`
	FloatValue float64 `json:"value_float,omitempty"`
	BoolValue bool `json:"value_bool,omitempty"`
	StringValue string `json:"value_string,omitempty"`

	IsExpression bool `json:"is_expression,omitempty"`
	Inferred bool `json:"inferred,omitempty"`
	Len int `json:"len,omitempty"`

	Left json.RawMessage `json:"left,omitempty"`
	Right json.RawMessage `json:"right,omitempty"`
	Operand json.RawMessage `json:"operand,omitempty"`
	Inner json.RawMessage `json:"inner,omitempty"`
	Base json.RawMessage `json:"base,omitempty"`
	Index json.RawMessage `json:"index,omitempty"`
	Callee json.RawMessage `json:"callee,omitempty"`
	Condition json.RawMessage `json:"condition,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	Iterable json.RawMessage `json:"iterable,omitempty"`
	RangeStart json.RawMessage `json:"range_start,omitempty"`
	RangeEnd json.RawMessage `json:"range_end,omitempty"`
	Consequence json.RawMessage `json:"consequence,omitempty"`
	Alternative json.RawMessage `json:"alternative,omitempty"`
	Body json.RawMessage `json:"body,omitempty"`
	Loop json.RawMessage `json:"loop,omitempty"`
	Terminator json.RawMessage `json:"terminator,omitempty"`

	Type json.RawMessage `json:"type,omitempty"`
	TypeAnnotation json.RawMessage `json:"type_annotation,omitempty"`
	LoopVarType json.RawMessage `json:"loop_var_type,omitempty"`
	ReturnType json.RawMessage `json:"return_type,omitempty"`
	Elem json.RawMessage `json:"elem,omitempty"`

	Elements []json.RawMessage `json:"elements,omitempty"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
	Statements []json.RawMessage `json:"statements,omitempty"`
	Params []json.RawMessage `json:"params,omitempty"`
	ParamTypes []json.RawMessage `json:"param_types,omitempty"`
}

// Decode parses a JSON-encoded Program, the single entry point cmd/hexen
// calls after reading its input.
func Decode(data []byte) (*ast.Program, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	stmts, err := decodeStatements(w.Statements)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

func decodeStatements(raw []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(raw))
	for _, r := range raw {
		s, err := decodeStatement(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeExpressions(raw []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(raw))
	for _, r := range raw {
		e, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func unmarshalNode(raw json.RawMessage) (wireNode, error) {
	var w wireNode
	if len(raw) == 0 {
		return w, nil
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("decoding node: %w", err)
	}
	return w, nil
}

func decodeOptionalExpression(raw json.RawMessage) (ast.Expression, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	return decodeExpression(raw)
}

func decodeExpression(raw json.RawMessage) (ast.Expression, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	w, err := unmarshalNode(raw)
	if err != nil {
		return nil, err
	}

	switch w.Kind {
	case "identifier":
		return &ast.Identifier{Token: w.Pos.token(w.Name), Name: w.Name}, nil
	case "literal_int":
		return &ast.IntLiteral{Token: w.Pos.token(w.Name), Value: w.IntValue}, nil
	case "literal_float":
		return &ast.FloatLiteral{Token: w.Pos.token(w.Name), Value: w.FloatValue}, nil
	case "literal_bool":
		return &ast.BoolLiteral{Token: w.Pos.token(w.Name), Value: w.BoolValue}, nil
	case "literal_string":
		return &ast.StringLiteral{Token: w.Pos.token(w.Name), Value: w.StringValue}, nil
	case "undef":
		return &ast.UndefExpr{Token: w.Pos.token("undef")}, nil
	case "paren":
		inner, err := decodeExpression(w.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Token: w.Pos.token("("), Inner: inner}, nil
	case "type_annotated":
		inner, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		t, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		return &ast.AnnotatedExpression{Token: w.Pos.token(":"), Expression: inner, Type: t}, nil
	case "binary_op":
		left, err := decodeExpression(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Token: w.Pos.token(w.Operator), Operator: w.Operator, Left: left, Right: right}, nil
	case "unary_op":
		operand, err := decodeExpression(w.Operand)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: w.Pos.token(w.Operator), Operator: w.Operator, Operand: operand}, nil
	case "call":
		callee, err := decodeExpression(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(w.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Token: w.Pos.token("call"), Callee: callee, Arguments: args}, nil
	case "array_literal":
		elems, err := decodeExpressions(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Token: w.Pos.token("["), Elements: elems}, nil
	case "index":
		base, err := decodeExpression(w.Base)
		if err != nil {
			return nil, err
		}
		idx, err := decodeExpression(w.Index)
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{Token: w.Pos.token("["), Base: base, Index: idx}, nil
	case "array_copy":
		base, err := decodeExpression(w.Base)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayCopyExpr{Token: w.Pos.token("[..]"), Base: base}, nil
	case "property_access":
		base, err := decodeExpression(w.Base)
		if err != nil {
			return nil, err
		}
		return &ast.PropertyAccess{Token: w.Pos.token("."), Base: base, Property: w.Property}, nil
	case "conditional":
		cond, err := decodeExpression(w.Condition)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExpression(w.Consequence)
		if err != nil {
			return nil, err
		}
		consBlock, ok := cons.(*ast.ExpressionBlock)
		if cons != nil && !ok {
			return nil, fmt.Errorf("conditional consequence must be an expression block")
		}
		alt, err := decodeOptionalExpression(w.Alternative)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpr{Token: w.Pos.token("if"), Condition: cond, Consequence: consBlock, Alternative: alt}, nil
	case "expression_block":
		stmts, err := decodeStatements(w.Statements)
		if err != nil {
			return nil, err
		}
		var term ast.Statement
		if len(w.Terminator) > 0 {
			term, err = decodeStatement(w.Terminator)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ExpressionBlock{Token: w.Pos.token("{"), Statements: stmts, Terminator: term}, nil
	case "for_loop":
		return decodeForLoop(w)
	case "while_loop":
		cond, err := decodeExpression(w.Condition)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		blockBody, ok := body.(*ast.BlockStatement)
		if body != nil && !ok {
			return nil, fmt.Errorf("while body must be a block statement")
		}
		return &ast.WhileLoop{Token: w.Pos.token("while"), Condition: cond, Body: blockBody}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind: %q", w.Kind)
	}
}

func decodeForLoop(w wireNode) (*ast.ForLoop, error) {
	var loopVarType ast.TypeNode
	var err error
	if len(w.LoopVarType) > 0 {
		loopVarType, err = decodeType(w.LoopVarType)
		if err != nil {
			return nil, err
		}
	}
	rangeStart, err := decodeOptionalExpression(w.RangeStart)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := decodeOptionalExpression(w.RangeEnd)
	if err != nil {
		return nil, err
	}
	iterable, err := decodeOptionalExpression(w.Iterable)
	if err != nil {
		return nil, err
	}
	body, err := decodeStatement(w.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{
		Token: w.Pos.token("for"),
		LoopVar: w.Name,
		LoopVarType: loopVarType,
		RangeStart: rangeStart,
		RangeEnd: rangeEnd,
		Iterable: iterable,
		IsExpression: w.IsExpression,
		Body: body,
	}, nil
}

func decodeStatement(raw json.RawMessage) (ast.Statement, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	w, err := unmarshalNode(raw)
	if err != nil {
		return nil, err
	}

	switch w.Kind {
	case "val_decl":
		t, value, err := decodeDeclParts(w)
		if err != nil {
			return nil, err
		}
		return &ast.ValDecl{Token: w.Pos.token("val"), Name: w.Name, TypeAnnotation: t, Value: value}, nil
	case "mut_decl":
		t, value, err := decodeDeclParts(w)
		if err != nil {
			return nil, err
		}
		return &ast.MutDecl{Token: w.Pos.token("mut"), Name: w.Name, TypeAnnotation: t, Value: value}, nil
	case "assign_stmt":
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Token: w.Pos.token("="), Name: w.Name, Value: value}, nil
	case "return_stmt":
		value, err := decodeOptionalExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Token: w.Pos.token("return"), Value: value}, nil
	case "assign_terminator":
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.AssignTerminator{Token: w.Pos.token("->"), Value: value}, nil
	case "block":
		stmts, err := decodeStatements(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Token: w.Pos.token("{"), Statements: stmts}, nil
	case "expression_stmt":
		expr, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: w.Pos.token("expr"), Expression: expr}, nil
	case "labeled_stmt":
		loop, err := decodeStatement(w.Loop)
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStmt{Token: w.Pos.token("'" + w.Label), Label: w.Label, Loop: loop}, nil
	case "break":
		return &ast.BreakStmt{Token: w.Pos.token("break"), Label: w.Label}, nil
	case "continue":
		return &ast.ContinueStmt{Token: w.Pos.token("continue"), Label: w.Label}, nil
	case "function":
		return decodeFunctionDecl(w)
	case "for_loop":
		return decodeForLoop(w)
	case "while_loop":
		cond, err := decodeExpression(w.Condition)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		blockBody, ok := body.(*ast.BlockStatement)
		if body != nil && !ok {
			return nil, fmt.Errorf("while body must be a block statement")
		}
		return &ast.WhileLoop{Token: w.Pos.token("while"), Condition: cond, Body: blockBody}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind: %q", w.Kind)
	}
}

func decodeDeclParts(w wireNode) (ast.TypeNode, ast.Expression, error) {
	var t ast.TypeNode
	var err error
	if len(w.TypeAnnotation) > 0 {
		t, err = decodeType(w.TypeAnnotation)
		if err != nil {
			return nil, nil, err
		}
	}
	value, err := decodeExpression(w.Value)
	if err != nil {
		return nil, nil, err
	}
	return t, value, nil
}

func decodeFunctionDecl(w wireNode) (*ast.FunctionDecl, error) {
	params := make([]*ast.Parameter, 0, len(w.Params))
	for _, raw := range w.Params {
		pw, err := unmarshalNode(raw)
		if err != nil {
			return nil, err
		}
		pt, err := decodeType(pw.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Parameter{Token: pw.Pos.token(pw.Name), Name: pw.Name, Type: pt})
	}
	var returnType ast.TypeNode
	var err error
	if len(w.ReturnType) > 0 {
		returnType, err = decodeType(w.ReturnType)
		if err != nil {
			return nil, err
		}
	}
	bodyStmt, err := decodeStatement(w.Body)
	if err != nil {
		return nil, err
	}
	body, ok := bodyStmt.(*ast.BlockStatement)
	if bodyStmt != nil && !ok {
		return nil, fmt.Errorf("function body must be a block statement")
	}
	return &ast.FunctionDecl{Token: w.Pos.token(w.Name), Name: w.Name, Params: params, ReturnType: returnType, Body: body}, nil
}

func decodeType(raw json.RawMessage) (ast.TypeNode, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	w, err := unmarshalNode(raw)
	if err != nil {
		return nil, err
	}
	switch w.Kind {
	case "type_named":
		return &ast.NamedType{Token: w.Pos.token(w.Name), Name: w.Name}, nil
	case "type_array":
		elem, err := decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayTypeNode{Token: w.Pos.token("["), Elem: elem, Len: w.Len, Inferred: w.Inferred}, nil
	case "type_func":
		params := make([]ast.TypeNode, 0, len(w.ParamTypes))
		for _, raw := range w.ParamTypes {
			pt, err := decodeType(raw)
			if err != nil {
				return nil, err
			}
			params = append(params, pt)
		}
		ret, err := decodeType(w.ReturnType)
		if err != nil {
			return nil, err
		}
		return &ast.FuncTypeNode{Token: w.Pos.token("("), Params: params, Return: ret}, nil
	default:
		return nil, fmt.Errorf("unknown type kind: %q", w.Kind)
	}
}
