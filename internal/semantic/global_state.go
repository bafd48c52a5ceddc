package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// GlobalState is the insert-if-absent registry of spec §4.3: constants,
// types, and functions, keyed by name. Insertion of an already-present
// name is a domain-specific "already exists" error and the new
// declaration is discarded; the caller (the statement analyzer) decides
// what to do with that error.
type GlobalState struct {
	constants map[string]ast.Constant
	types     map[types.TypeName]ast.Type
	functions map[string]types.Function
}

func NewGlobalState() *GlobalState {
	return &GlobalState{
		constants: make(map[string]ast.Constant),
		types:     make(map[types.TypeName]ast.Type),
		functions: make(map[string]types.Function),
	}
}

// InsertConstant records c, or returns ConstantAlreadyExist if its name
// is already registered.
func (g *GlobalState) InsertConstant(c ast.Constant) *SemanticError {
	name := c.Name.Fragment
	if _, exists := g.constants[name]; exists {
		e := newError(ConstantAlreadyExist, name, c.Name.Ident)
		return &e
	}
	g.constants[name] = c
	return nil
}

// GetConstant returns a copy of the registered constant, if any. A
// shallow value copy is sufficient to avoid aliasing (spec §4.3):
// Constant and its nested ConstantExpression tree are never mutated
// after being inserted.
func (g *GlobalState) GetConstant(name string) (ast.Constant, bool) {
	c, ok := g.constants[name]
	return c, ok
}

// InsertType records t under name, or returns TypeAlreadyExist.
func (g *GlobalState) InsertType(name types.TypeName, t ast.Type, loc ast.Ident) *SemanticError {
	if _, exists := g.types[name]; exists {
		e := newError(TypeAlreadyExist, string(name), loc)
		return &e
	}
	g.types[name] = t
	return nil
}

// GetType returns the registered type for name, if any.
func (g *GlobalState) GetType(name types.TypeName) (ast.Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// InsertFunction records f's signature, or returns FunctionAlreadyExist.
func (g *GlobalState) InsertFunction(f types.Function) *SemanticError {
	name := f.InnerName.Fragment
	if _, exists := g.functions[name]; exists {
		e := newError(FunctionAlreadyExist, name, f.InnerName.Ident)
		return &e
	}
	g.functions[name] = f
	return nil
}

// GetFunction returns the registered signature for name, if any.
func (g *GlobalState) GetFunction(name string) (types.Function, bool) {
	f, ok := g.functions[name]
	return f, ok
}
