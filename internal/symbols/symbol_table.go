// Package symbols implements the Symbol Table: a lexically
// scoped mapping from names to (type, mutability, initialization-state).
package symbols

import (
	"github.com/hexen-lang/hexen/internal/token"
	"github.com/hexen-lang/hexen/internal/typesystem"
)

// Mutability distinguishes val (write-once) from mut (reassignable)
// bindings (invariant 1).
type Mutability int

const (
	Val Mutability = iota
	Mut
)

// InitState tracks whether a mut binding declared `= undef` has received
// its first assignment yet (invariant 3).
type InitState int

const (
	Initialized InitState = iota
	Deferred
)

// Symbol is one name binding's record.
type Symbol struct {
	Name string
	Type typesystem.Type
	Mutability Mutability
	Init InitState
	DefinedAt token.Position
}

type scope struct {
	names map[string]*Symbol
}

func newScope() *scope {
	return &scope{names: make(map[string]*Symbol)}
}

// SymbolTable is a stack of lexical scopes. A fresh table is created per
// analysis run; EnterScope()/ExitScope() bracket a scope so that
// exiting discards its symbols with no cross-scope leakage.
type SymbolTable struct {
	scopes []*scope
}

// New creates a symbol table with a single, empty top-level scope.
func New() *SymbolTable {
	return &SymbolTable{scopes: []*scope{newScope()}}
}

// EnterScope pushes a fresh, empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, newScope())
}

// ExitScope pops the innermost scope, discarding its symbols.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) == 0 {
		return
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// WithScope runs fn inside a freshly entered scope and guarantees the
// scope is exited on every return path, including when fn records
// diagnostics but does not abort (bracketed resource
// acquisition requirement).
func (st *SymbolTable) WithScope(fn func()) {
	st.EnterScope()
	defer st.ExitScope()
	fn()
}

// Depth reports the number of scopes currently on the stack (1 means only
// the top-level scope remains — used by tests to assert scope discipline,
// property 3).
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// RedeclarationError reports that name is already bound in the current
// (innermost) scope.
type RedeclarationError struct{ Name string }

func (e *RedeclarationError) Error() string { return "redeclared in this scope: " + e.Name }

// UndefinedError reports that no scope on the stack binds name.
type UndefinedError struct{ Name string }

func (e *UndefinedError) Error() string { return "undefined: " + e.Name }

// Declare binds name in the innermost scope. Redeclaring a name already
// present in that same scope fails with RedeclarationError (shadowing a
// name from an outer scope is allowed and is not a redeclaration).
func (st *SymbolTable) Declare(sym Symbol) error {
	top := st.scopes[len(st.scopes)-1]
	if _, exists := top.names[sym.Name]; exists {
		return &RedeclarationError{Name: sym.Name}
	}
	s := sym
	top.names[sym.Name] = &s
	return nil
}

// Lookup searches scopes from innermost to outermost and returns the
// first match.
func (st *SymbolTable) Lookup(name string) (*Symbol, error) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i].names[name]; ok {
			return sym, nil
		}
	}
	return nil, &UndefinedError{Name: name}
}

// MarkInitialized transitions a deferred symbol to initialized on its
// first assignment. The symbol is mutated in place so all references
// sharing the same *Symbol observe the change.
func (st *SymbolTable) MarkInitialized(name string) error {
	sym, err := st.Lookup(name)
	if err != nil {
		return err
	}
	sym.Init = Initialized
	return nil
}
