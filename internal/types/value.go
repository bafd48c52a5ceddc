package types

import (
	"fmt"
	"strings"

	"github.com/semcore-lang/semcore/pkg/ast"
)

// Value is a runtime variable binding (spec §3). InnerName is unique
// across the owning function's whole block tree, not just the block
// that declares it.
type Value struct {
	InnerName InnerValueName
	InnerType ast.Type
	Mutable   bool
	Alloca    bool
	Malloc    bool
}

// NewValue builds a freshly-bound Value; alloca/malloc default false per
// §4.5.3 step 4, the only site that constructs one today.
func NewValue(name InnerValueName, t ast.Type, mutable bool) Value {
	return Value{InnerName: name, InnerType: t, Mutable: mutable}
}

// Function is a call-site signature (spec §3): the name, result type,
// and ordered parameter types recorded by GlobalState. It deliberately
// does not carry the body; ast.FunctionStatement is the declaration-time
// node with the body, this is what survives into GlobalState.functions
// and into FunctionDeclaration/Call instructions.
type Function struct {
	InnerName  ast.FunctionName
	InnerType  ast.Type
	Parameters []ast.Type
}

// SignatureOf extracts a Function from a full declaration (§4.5.1 Pass B).
func SignatureOf(f ast.FunctionStatement) Function {
	params := make([]ast.Type, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.ParameterType
	}
	return Function{InnerName: f.Name, InnerType: f.ResultType, Parameters: params}
}

func (v Value) String() string {
	return fmt.Sprintf("%s %s", v.InnerType, v.InnerName)
}

func (f Function) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s) -> %s", f.InnerName.Fragment, strings.Join(params, ", "), f.InnerType)
}
