package types

import "fmt"

// String renders one instruction on a single line. The text codegen sink
// (and with it the `disassemble` CLI subcommand) renders instructions
// with its own line formats rather than through this method.
func (i SemanticInstruction) String() string {
	switch i.Kind {
	case InstrExpressionValue:
		return fmt.Sprintf("%%%d = load %s %s", i.Register, i.Value.InnerType, i.Value.InnerName)
	case InstrExpressionConst:
		return fmt.Sprintf("%%%d = const %s", i.Register, i.Constant.Name.Fragment)
	case InstrExpressionStructValue:
		return fmt.Sprintf("%%%d = field %s[%d]", i.Register, i.Value.InnerName, i.StructAttrIdx)
	case InstrExpressionOperation:
		return fmt.Sprintf("%s %s, %s", i.Operation.Op, i.Operation.Lhs, i.Operation.Rhs)
	case InstrLetBinding:
		return fmt.Sprintf("let %s %s = %s", i.Value.InnerType, i.Value.InnerName, i.LetResult)
	case InstrBinding:
		return fmt.Sprintf("%s = %s", i.Value.InnerName, i.LetResult)
	case InstrCall:
		return fmt.Sprintf("%%%d = call %s(%v)", i.Call.Register, i.Call.Function.InnerName.Fragment, i.Call.Args)
	case InstrConditionExpression:
		return fmt.Sprintf("%%%d = cmp %s %s, %s", i.Condition.Register, i.Condition.Cmp, i.Condition.Lhs, i.Condition.Rhs)
	case InstrLogicCondition:
		return fmt.Sprintf("%%%d = %s %%%d, %%%d", i.Logic.Register, i.Logic.Op, i.Logic.LeftRegister, i.Logic.RightRegister)
	case InstrIfConditionExpression:
		return fmt.Sprintf("if %s goto %s else %s", i.IfCondExpr.Result, i.IfCondExpr.Begin, i.IfCondExpr.EndOrElse)
	case InstrIfConditionLogic:
		return fmt.Sprintf("if %%%d goto %s else %s", i.IfCondLogic.Register, i.IfCondLogic.Begin, i.IfCondLogic.EndOrElse)
	case InstrJumpTo:
		return fmt.Sprintf("jump %s", i.Label)
	case InstrSetLabel:
		return fmt.Sprintf("%s:", i.Label)
	case InstrExpressionFunctionReturn:
		return fmt.Sprintf("return %s", i.FunctionResult)
	case InstrExpressionFunctionReturnWithLabel:
		return fmt.Sprintf("return.label %s", i.FunctionResult)
	case InstrJumpFunctionReturn:
		return fmt.Sprintf("jump.return %s", i.FunctionResult)
	case InstrFunctionDeclaration:
		return fmt.Sprintf("declare fn %s -> %s", i.Function.InnerName.Fragment, i.Function.InnerType)
	case InstrTypeDeclaration:
		return fmt.Sprintf("declare type %s", i.Struct.Name.Fragment)
	case InstrConstantDeclaration:
		return fmt.Sprintf("declare const %s", i.Constant.Name.Fragment)
	case InstrFunctionStatement:
		return fmt.Sprintf("fn %s {", i.Function)
	default:
		return fmt.Sprintf("SemanticInstruction(%d)", int(i.Kind))
	}
}
