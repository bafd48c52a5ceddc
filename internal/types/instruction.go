package types

import "github.com/semcore-lang/semcore/pkg/ast"

// InstructionKind discriminates SemanticInstruction (spec §3's emitted
// stream tagged variant). A BlockState's shared log is a
// []SemanticInstruction in left-to-right emission order.
type InstructionKind int

const (
	InstrExpressionValue InstructionKind = iota
	InstrExpressionConst
	InstrExpressionStructValue
	InstrExpressionOperation
	InstrLetBinding
	InstrBinding
	InstrCall
	InstrConditionExpression
	InstrLogicCondition
	InstrIfConditionExpression
	InstrIfConditionLogic
	InstrJumpTo
	InstrSetLabel
	InstrExpressionFunctionReturn
	InstrExpressionFunctionReturnWithLabel
	InstrJumpFunctionReturn
	InstrFunctionDeclaration
	InstrTypeDeclaration
	InstrConstantDeclaration
	InstrFunctionStatement
)

// ExpressionOperation is the `op(lhs, rhs)` payload of InstrExpressionOperation.
type ExpressionOperation struct {
	Op  ast.ExpressionOperations
	Lhs ExpressionResult
	Rhs ExpressionResult
}

// CallInstruction is the payload of InstrCall: §4.5.5 emits this even
// when the function returns None.
type CallInstruction struct {
	Function Function
	Args     []ExpressionResult
	Register Register
}

// ConditionExpressionInstruction is one comparison leaf (§4.5.6).
type ConditionExpressionInstruction struct {
	Lhs      ExpressionResult
	Rhs      ExpressionResult
	Cmp      ast.Condition
	Register Register
}

// LogicConditionInstruction combines two already-emitted comparison
// results with AND/OR (§4.5.6).
type LogicConditionInstruction struct {
	LeftRegister  Register
	RightRegister Register
	Op            ast.LogicCondition
	Register      Register
}

// IfConditionExpressionInstruction lowers a single-expression if condition.
type IfConditionExpressionInstruction struct {
	Result    ExpressionResult
	Begin     LabelName
	EndOrElse LabelName
}

// IfConditionLogicInstruction lowers a logic-tree if condition; the
// condition's combined result already sits in Register.
type IfConditionLogicInstruction struct {
	Begin     LabelName
	EndOrElse LabelName
	Register  Register
}

// SemanticInstruction is one emitted unit (spec §3). Exactly one payload
// field is meaningful, selected by Kind, following the same tagged-struct
// pattern as pkg/ast since Go has no native sum types.
type SemanticInstruction struct {
	Kind InstructionKind

	Value          *Value
	Constant       *ast.Constant
	StructAttrIdx  int
	Operation      *ExpressionOperation
	LetResult      *ExpressionResult
	Call           *CallInstruction
	Condition      *ConditionExpressionInstruction
	Logic          *LogicConditionInstruction
	IfCondExpr     *IfConditionExpressionInstruction
	IfCondLogic    *IfConditionLogicInstruction
	Label          LabelName
	FunctionResult *ExpressionResult
	Function       *Function
	Struct         *ast.StructTypes
	Register       Register
}

func ExpressionValueInstr(v Value, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionValue, Value: &v, Register: reg}
}

func ExpressionConstInstr(c ast.Constant, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionConst, Constant: &c, Register: reg}
}

func ExpressionStructValueInstr(v Value, attrIndex int, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionStructValue, Value: &v, StructAttrIdx: attrIndex, Register: reg}
}

func ExpressionOperationInstr(op ast.ExpressionOperations, lhs, rhs ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionOperation, Operation: &ExpressionOperation{Op: op, Lhs: lhs, Rhs: rhs}}
}

func LetBindingInstr(v Value, result ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrLetBinding, Value: &v, LetResult: &result}
}

func BindingInstr(v Value, result ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrBinding, Value: &v, LetResult: &result}
}

func CallInstr(fn Function, args []ExpressionResult, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrCall, Call: &CallInstruction{Function: fn, Args: args, Register: reg}}
}

func ConditionExpressionInstr(lhs, rhs ExpressionResult, cmp ast.Condition, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrConditionExpression, Condition: &ConditionExpressionInstruction{Lhs: lhs, Rhs: rhs, Cmp: cmp, Register: reg}}
}

func LogicConditionInstr(leftReg, rightReg Register, op ast.LogicCondition, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrLogicCondition, Logic: &LogicConditionInstruction{LeftRegister: leftReg, RightRegister: rightReg, Op: op, Register: reg}}
}

func IfConditionExpressionInstr(result ExpressionResult, begin, endOrElse LabelName) SemanticInstruction {
	return SemanticInstruction{Kind: InstrIfConditionExpression, IfCondExpr: &IfConditionExpressionInstruction{Result: result, Begin: begin, EndOrElse: endOrElse}}
}

func IfConditionLogicInstr(begin, endOrElse LabelName, reg Register) SemanticInstruction {
	return SemanticInstruction{Kind: InstrIfConditionLogic, IfCondLogic: &IfConditionLogicInstruction{Begin: begin, EndOrElse: endOrElse, Register: reg}}
}

func JumpToInstr(label LabelName) SemanticInstruction {
	return SemanticInstruction{Kind: InstrJumpTo, Label: label}
}

func SetLabelInstr(label LabelName) SemanticInstruction {
	return SemanticInstruction{Kind: InstrSetLabel, Label: label}
}

func ExpressionFunctionReturnInstr(result ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionFunctionReturn, FunctionResult: &result}
}

func ExpressionFunctionReturnWithLabelInstr(result ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrExpressionFunctionReturnWithLabel, FunctionResult: &result}
}

func JumpFunctionReturnInstr(result ExpressionResult) SemanticInstruction {
	return SemanticInstruction{Kind: InstrJumpFunctionReturn, FunctionResult: &result}
}

func FunctionDeclarationInstr(fn Function) SemanticInstruction {
	return SemanticInstruction{Kind: InstrFunctionDeclaration, Function: &fn}
}

func TypeDeclarationInstr(s ast.StructTypes) SemanticInstruction {
	return SemanticInstruction{Kind: InstrTypeDeclaration, Struct: &s}
}

func ConstantDeclarationInstr(c ast.Constant) SemanticInstruction {
	return SemanticInstruction{Kind: InstrConstantDeclaration, Constant: &c}
}

// FunctionStatementInstr marks the start of a function body (spec §6's
// separate `function_statement(fn)` sink operation, grouped under
// "Function bodies" rather than "Declarations").
func FunctionStatementInstr(fn Function) SemanticInstruction {
	return SemanticInstruction{Kind: InstrFunctionStatement, Function: &fn}
}
