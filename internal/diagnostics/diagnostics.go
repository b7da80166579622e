// Package diagnostics implements the Diagnostic Sink: an append-only
// collector of structured diagnostics with source positions. Analyzers
// never raise exceptions to control flow; they append to a Sink and
// continue with a best-effort type.
package diagnostics

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/hexen-lang/hexen/internal/token"
)

// ErrorCode enumerates the diagnostic kinds the analyzer can raise.
type ErrorCode string

const (
	Undefined ErrorCode = "Undefined"
	Redeclaration ErrorCode = "Redeclaration"
	UseOfUninitialized ErrorCode = "UseOfUninitialized"
	ValUndef ErrorCode = "ValUndef"
	MutUndefRequiresType ErrorCode = "MutUndefRequiresType"
	ImmutableAssignment ErrorCode = "ImmutableAssignment"
	TypeMismatch ErrorCode = "TypeMismatch"
	PrecisionLossRequiresAck ErrorCode = "PrecisionLossRequiresAck"
	AnnotationMismatch ErrorCode = "AnnotationMismatch"
	AnnotationWithoutLeftType ErrorCode = "AnnotationWithoutLeftType"
	MixedConcreteRequiresContext ErrorCode = "MixedConcreteRequiresContext"
	FloatDivRequiresFloatTarget ErrorCode = "FloatDivRequiresFloatTarget"
	IntDivRequiresIntegers ErrorCode = "IntDivRequiresIntegers"
	IncomparableTypes ErrorCode = "IncomparableTypes"
	LogicalOperandNotBool ErrorCode = "LogicalOperandNotBool"
	LiteralOverflow ErrorCode = "LiteralOverflow"
	MissingRuntimeContext ErrorCode = "MissingRuntimeContext"
	LoopExpressionRequiresType ErrorCode = "LoopExpressionRequiresType"
	BreakOutsideLoop ErrorCode = "BreakOutsideLoop"
	ContinueOutsideLoop ErrorCode = "ContinueOutsideLoop"
	UnknownLabel ErrorCode = "UnknownLabel"
	ArraySizeMismatch ErrorCode = "ArraySizeMismatch"
	ArrayElementTypeMismatch ErrorCode = "ArrayElementTypeMismatch"
	EmptyArrayRequiresContext ErrorCode = "EmptyArrayRequiresContext"
	PropertyOnNonArray ErrorCode = "PropertyOnNonArray"
	MultiDimMismatch ErrorCode = "MultiDimMismatch"
	InferredSizeToConcreteMismatch ErrorCode = "InferredSizeToConcreteMismatch"
	ConcreteArrayCopyRequired      ErrorCode = "ConcreteArrayCopyRequired"
)

// DiagnosticError is the structured diagnostic: kind, message, source
// position, and an optional hint naming the concrete fix.
type DiagnosticError struct {
	Code ErrorCode
	Message string
	Pos token.Position
	Hint string
}

func NewError(code ErrorCode, pos token.Position, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Message: message, Pos: pos}
}

// WithHint returns a copy of the diagnostic carrying the given hint.
func (d *DiagnosticError) WithHint(hint string) *DiagnosticError {
	cp := *d
	cp.Hint = hint
	return &cp
}

func (d *DiagnosticError) Error() string {
	if d.Hint != "" {
		return fmt.Sprintf("%s: %s [%s] (hint: %s)", d.Pos, d.Message, d.Code, d.Hint)
	}
	return fmt.Sprintf("%s: %s [%s]", d.Pos, d.Message, d.Code)
}

// Sink is an append-only collector of diagnostics, fresh per analysis
// run. RunID correlates a batch of diagnostics with an external report
// or log line (see internal/report).
type Sink struct {
	RunID string
	diags []*DiagnosticError
}

// NewSink creates an empty sink stamped with a fresh run id.
func NewSink() *Sink {
	return &Sink{RunID: uuid.NewString()}
}

// Add appends a diagnostic. Analyzers call this instead of returning an
// error, keeping error reporting orthogonal to analysis control flow.
func (s *Sink) Add(d *DiagnosticError) {
	s.diags = append(s.diags, d)
}

// All returns every diagnostic recorded so far, in append (traversal)
// order.
func (s *Sink) All() []*DiagnosticError {
	return s.diags
}

// Empty reports whether no diagnostics have been recorded.
func (s *Sink) Empty() bool {
	return len(s.diags) == 0
}
