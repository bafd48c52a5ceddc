// Package codegen defines the consumer interface the semantic analyzer
// emits into (spec §6, glossary "Codegen sink") and the concrete sinks
// this repository ships.
package codegen

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// Sink is the backend-facing consumer of emitted semantic instructions.
// Implementors must accept the full SemanticInstruction variant set
// (spec §6); Dispatch calls exactly one of these methods per recorded
// instruction, in the same left-to-right order the Driver appended them
// to a BlockState's buffer.
type Sink interface {
	// Declarations.
	Types(s ast.StructTypes)
	Constant(c ast.Constant)
	FunctionDeclaration(fn types.Function)

	// Function bodies.
	FunctionStatement(fn types.Function)

	// Values.
	LetBinding(v types.Value, result types.ExpressionResult)
	Binding(v types.Value, result types.ExpressionResult)
	Call(fn types.Function, args []types.ExpressionResult, register types.Register)

	// Expressions.
	ExpressionValue(v types.Value, register types.Register)
	ExpressionConst(c ast.Constant, register types.Register)
	ExpressionStructValue(v types.Value, attrIdx int, register types.Register)
	ExpressionOperation(op ast.ExpressionOperations, lhs, rhs types.ExpressionResult, register types.Register)

	// Control.
	ConditionExpression(lhs, rhs types.ExpressionResult, cmp ast.Condition, register types.Register)
	LogicCondition(leftReg, rightReg types.Register, op ast.LogicCondition, register types.Register)
	IfConditionExpression(result types.ExpressionResult, begin, endOrElse types.LabelName)
	IfConditionLogic(begin, endOrElse types.LabelName, register types.Register)
	JumpTo(label types.LabelName)
	SetLabel(label types.LabelName)
	ExpressionFunctionReturn(result types.ExpressionResult)
	ExpressionFunctionReturnWithLabel(result types.ExpressionResult)
	JumpFunctionReturn(result types.ExpressionResult)
	IfFunctionReturn(result types.ExpressionResult)
}

// Dispatch replays a recorded instruction stream into sink, in order.
// This is how a BlockState tree (retained in full after analysis, spec
// §3 Lifecycle) is finally handed to a backend: the Driver builds the
// SemanticInstruction slices directly on each BlockState, and Dispatch
// is the single place that unpacks the tagged union into sink calls.
func Dispatch(sink Sink, instructions []types.SemanticInstruction) {
	for _, instr := range instructions {
		dispatchOne(sink, instr)
	}
}

func dispatchOne(sink Sink, instr types.SemanticInstruction) {
	switch instr.Kind {
	case types.InstrExpressionValue:
		sink.ExpressionValue(*instr.Value, instr.Register)
	case types.InstrExpressionConst:
		sink.ExpressionConst(*instr.Constant, instr.Register)
	case types.InstrExpressionStructValue:
		sink.ExpressionStructValue(*instr.Value, instr.StructAttrIdx, instr.Register)
	case types.InstrExpressionOperation:
		sink.ExpressionOperation(instr.Operation.Op, instr.Operation.Lhs, instr.Operation.Rhs, instr.Register)
	case types.InstrLetBinding:
		sink.LetBinding(*instr.Value, *instr.LetResult)
	case types.InstrBinding:
		sink.Binding(*instr.Value, *instr.LetResult)
	case types.InstrCall:
		sink.Call(instr.Call.Function, instr.Call.Args, instr.Call.Register)
	case types.InstrConditionExpression:
		sink.ConditionExpression(instr.Condition.Lhs, instr.Condition.Rhs, instr.Condition.Cmp, instr.Condition.Register)
	case types.InstrLogicCondition:
		sink.LogicCondition(instr.Logic.LeftRegister, instr.Logic.RightRegister, instr.Logic.Op, instr.Logic.Register)
	case types.InstrIfConditionExpression:
		sink.IfConditionExpression(instr.IfCondExpr.Result, instr.IfCondExpr.Begin, instr.IfCondExpr.EndOrElse)
	case types.InstrIfConditionLogic:
		sink.IfConditionLogic(instr.IfCondLogic.Begin, instr.IfCondLogic.EndOrElse, instr.IfCondLogic.Register)
	case types.InstrJumpTo:
		sink.JumpTo(instr.Label)
	case types.InstrSetLabel:
		sink.SetLabel(instr.Label)
	case types.InstrExpressionFunctionReturn:
		sink.ExpressionFunctionReturn(*instr.FunctionResult)
	case types.InstrExpressionFunctionReturnWithLabel:
		sink.ExpressionFunctionReturnWithLabel(*instr.FunctionResult)
	case types.InstrJumpFunctionReturn:
		sink.JumpFunctionReturn(*instr.FunctionResult)
	case types.InstrFunctionDeclaration:
		sink.FunctionDeclaration(*instr.Function)
	case types.InstrTypeDeclaration:
		sink.Types(*instr.Struct)
	case types.InstrConstantDeclaration:
		sink.Constant(*instr.Constant)
	case types.InstrFunctionStatement:
		sink.FunctionStatement(*instr.Function)
	}
}
