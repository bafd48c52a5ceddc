package types

import (
	"fmt"

	"github.com/semcore-lang/semcore/pkg/ast"
)

// Register is a virtual SSA destination number, monotonically minted
// per function (spec glossary: "Register").
type Register uint64

// ExprValueKind discriminates ExpressionResult's value: either the most
// recently materialized Register, or a PrimitiveValue that was never
// materialized (spec §3, §4.4 "literals are folded into operator
// instructions without being materialized to a register").
type ExprValueKind int

const (
	ExprValueRegister ExprValueKind = iota
	ExprValuePrimitive
)

// ExpressionResult is the value produced by analyzing any expression.
type ExpressionResult struct {
	ExprType  ast.Type
	ValueKind ExprValueKind
	Register  Register
	Primitive ast.PrimitiveValue
}

func RegisterResult(t ast.Type, r Register) ExpressionResult {
	return ExpressionResult{ExprType: t, ValueKind: ExprValueRegister, Register: r}
}

func PrimitiveResult(v ast.PrimitiveValue) ExpressionResult {
	return ExpressionResult{ExprType: v.GetType(), ValueKind: ExprValuePrimitive, Primitive: v}
}

func (r ExpressionResult) String() string {
	if r.ValueKind == ExprValueRegister {
		return fmt.Sprintf("%%%d:%s", r.Register, r.ExprType)
	}
	return fmt.Sprintf("%s:%s", r.Primitive, r.ExprType)
}
