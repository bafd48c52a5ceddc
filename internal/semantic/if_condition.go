package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// analyzeIfStatement lowers `if`/`else`/`else if` (spec §4.5.7). loop is
// non-nil when this if sits inside a loop body, so break/continue inside
// it still target the enclosing loop's labels. labelEnd, when non-empty,
// is inherited from an enclosing `else if` chain so every arm converges
// on the same end label; an empty labelEnd means this is the head of the
// chain and mints its own `if_end`.
func (d *Driver) analyzeIfStatement(parent *BlockState, fn types.Function, stmt ast.IfStatement, loop *loopLabels, labelEnd types.LabelName) {
	if stmt.HasElse() && stmt.HasElseIf() {
		d.addError(newError(IfElseDuplicated, "if-condition", stmt.Location()))
	}

	ifBody := NewBlockState(parent)
	labelBegin := ifBody.GetAndSetNextLabel(labelIfBegin)
	labelElse := ifBody.GetAndSetNextLabel(labelIfElse)
	end := labelEnd
	if end == "" {
		end = ifBody.GetAndSetNextLabel(labelIfEnd)
	}

	isElse := stmt.HasElse() || stmt.HasElseIf()
	target := end
	if isElse {
		target = labelElse
	}

	switch stmt.Condition.Kind {
	case ast.IfConditionSingle:
		result, ok := d.AnalyzeExpression(ifBody, *stmt.Condition.Single)
		if ok {
			ifBody.Emit(types.IfConditionExpressionInstr(*result, labelBegin, target))
		}
	case ast.IfConditionLogicKind:
		reg, ok := d.AnalyzeLogicCondition(ifBody, *stmt.Condition.Logic)
		if ok {
			ifBody.Emit(types.IfConditionLogicInstr(labelBegin, target, reg))
		}
	}

	ifBody.Emit(types.SetLabelInstr(labelBegin))
	d.analyzeNestedBody(ifBody, fn, stmt.Body, loop)
	ifBody.Emit(types.JumpToInstr(end))

	if isElse {
		ifBody.Emit(types.SetLabelInstr(labelElse))
		elseBody := NewBlockState(parent)
		if stmt.HasElse() {
			d.analyzeNestedBody(elseBody, fn, stmt.ElseStatement, loop)
			elseBody.Emit(types.JumpToInstr(end))
		} else {
			d.analyzeIfStatement(parent, fn, *stmt.ElseIfStatement, loop, end)
		}
	}

	ifBody.Emit(types.SetLabelInstr(end))
}
