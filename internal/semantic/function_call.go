package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// AnalyzeFunctionCall resolves a call against GlobalState.functions (spec
// §4.5.5). Every argument is analyzed and checked against the declared
// parameter type; a mismatch records FunctionParameterTypeWrong, excludes
// that argument from the emitted call, and continues checking the rest. A
// Call instruction is emitted unconditionally, even when the function has
// no declared return type, so the call's side effect is never lost from
// the stream.
func (d *Driver) AnalyzeFunctionCall(block *BlockState, call ast.FunctionCall) (*types.ExpressionResult, bool) {
	fn, ok := d.Global.GetFunction(call.Name.Fragment)
	if !ok {
		d.addError(newError(FunctionNotFound, call.Name.Fragment, call.Name.Ident))
		return nil, false
	}

	args := make([]types.ExpressionResult, 0, len(call.Parameters))
	for i, paramExpr := range call.Parameters {
		result, ok := d.AnalyzeExpression(block, paramExpr)
		if !ok {
			continue
		}
		if i < len(fn.Parameters) && !fn.Parameters[i].Equals(result.ExprType) {
			d.addError(newError(FunctionParameterTypeWrong, fn.Parameters[i].Name(), paramExpr.Location()))
			continue
		}
		args = append(args, *result)
	}

	reg := block.IncRegister()
	block.Emit(types.CallInstr(fn, args, reg))
	result := types.RegisterResult(fn.InnerType, reg)
	return &result, true
}
