package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// loopLabels carries the jump targets break/continue resolve to while
// walking a loop body, threaded down through nested if bodies so a
// break/continue inside an if always targets the enclosing loop (spec
// §4.5.8).
type loopLabels struct {
	begin types.LabelName
	end   types.LabelName
}

// AnalyzeFunctionBody drives a function's top-level statement list
// against its own fresh root BlockState (spec §4.5.2). Expression and
// Return statements are both terminal here: either flips return_is_called
// and emits the function's actual return instruction, picking
// ExpressionFunctionReturnWithLabel over ExpressionFunctionReturn when an
// earlier nested return already set manual_return on this body.
func (d *Driver) AnalyzeFunctionBody(root *BlockState, fn types.Function, body []ast.Statement) {
	returnIsCalled := false
	for _, stmt := range body {
		switch stmt.Kind {
		case ast.StmtLetBinding:
			d.analyzeLetBinding(root, *stmt.LetBinding)
		case ast.StmtBinding:
			d.analyzeBinding(root, *stmt.Binding)
		case ast.StmtFunctionCall:
			d.AnalyzeFunctionCall(root, *stmt.Call)
		case ast.StmtIf:
			d.analyzeIfStatement(root, fn, *stmt.If, nil, "")
		case ast.StmtLoop:
			d.analyzeLoop(root, fn, stmt.Loop)
		case ast.StmtExpression, ast.StmtReturn:
			expr := stmt.Expr
			if stmt.Kind == ast.StmtReturn {
				expr = stmt.Return
			}
			result, ok := d.AnalyzeExpression(root, *expr)
			if !ok {
				continue
			}
			if !result.ExprType.Equals(fn.InnerType) {
				d.addError(newError(WrongReturnType, result.ExprType.String(), expr.Location()))
			}
			returnIsCalled = true
			if root.ManualReturn() {
				root.Emit(types.ExpressionFunctionReturnWithLabelInstr(*result))
			} else {
				root.Emit(types.ExpressionFunctionReturnInstr(*result))
			}
		}
	}
	if !returnIsCalled {
		d.addError(newError(ReturnNotFound, fn.InnerName.Fragment, fn.InnerName.Ident))
	}
}

// analyzeNestedBody drives a statement list belonging to an if-arm or a
// loop body, sharing the dispatch for the common kinds with the function
// body walker but replacing terminal-return handling with the nested
// control-flow rules of spec §4.5.7/§4.5.8: a `return` jumps to the
// function's return point and marks the body manually-returned rather
// than emitting the return instruction in place, and break/continue jump
// to the enclosing loop's labels when one is active.
func (d *Driver) analyzeNestedBody(block *BlockState, fn types.Function, body []ast.Statement, loop *loopLabels) {
	for _, stmt := range body {
		switch stmt.Kind {
		case ast.StmtLetBinding:
			d.analyzeLetBinding(block, *stmt.LetBinding)
		case ast.StmtBinding:
			d.analyzeBinding(block, *stmt.Binding)
		case ast.StmtFunctionCall:
			d.AnalyzeFunctionCall(block, *stmt.Call)
		case ast.StmtIf:
			d.analyzeIfStatement(block, fn, *stmt.If, loop, "")
		case ast.StmtLoop:
			d.analyzeLoop(block, fn, stmt.Loop)
		case ast.StmtExpression:
			d.AnalyzeExpression(block, *stmt.Expr)
		case ast.StmtReturn:
			result, ok := d.AnalyzeExpression(block, *stmt.Return)
			if !ok {
				continue
			}
			block.Emit(types.JumpFunctionReturnInstr(*result))
			block.SetReturn()
		case ast.StmtContinue:
			if loop != nil {
				block.Emit(types.JumpToInstr(loop.begin))
			}
		case ast.StmtBreak:
			if loop != nil {
				block.Emit(types.JumpToInstr(loop.end))
			}
		}
	}
}

// analyzeLetBinding implements spec §4.5.3.
func (d *Driver) analyzeLetBinding(block *BlockState, lb ast.LetBinding) {
	result, ok := d.AnalyzeExpression(block, lb.Value)
	if !ok {
		return
	}
	if lb.ValueType != nil && !lb.ValueType.Equals(result.ExprType) {
		d.addError(newError(WrongLetType, lb.Name.Fragment, lb.Location()))
		return
	}

	var candidate string
	if existing, ok := block.GetValueName(lb.Name.Fragment); ok {
		candidate = string(existing.InnerName)
	} else {
		candidate = lb.Name.Fragment
	}
	innerName := block.GetNextInnerName(candidate)

	value := types.NewValue(innerName, result.ExprType, lb.Mutable)
	block.SetValueName(lb.Name.Fragment, value)
	block.SetInnerValueName(innerName)
	block.Emit(types.LetBindingInstr(value, *result))
}

// analyzeBinding implements spec §4.5.4.
func (d *Driver) analyzeBinding(block *BlockState, b ast.Binding) {
	result, ok := d.AnalyzeExpression(block, b.Value)
	if !ok {
		return
	}
	value, ok := block.GetValueName(b.Name.Fragment)
	if !ok {
		d.addError(newError(ValueNotFound, b.Name.Fragment, b.Location()))
		return
	}
	if !value.Mutable {
		d.addError(newError(ValueIsNotMutable, b.Name.Fragment, b.Location()))
		return
	}
	block.Emit(types.BindingInstr(value, *result))
}
