package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// AnalyzeConditionLeaf evaluates one `lhs CMP rhs` leaf of a condition
// tree (spec §4.5.6). Both sides must resolve, be primitive, and share a
// type; a mismatch records ConditionExpressionWrongType, a non-primitive
// operand records ConditionExpressionNotSupported, and either way the
// leaf is abandoned without emitting ConditionExpression.
func (d *Driver) AnalyzeConditionLeaf(block *BlockState, c ast.ExpressionCondition) (types.Register, bool) {
	lhs, ok := d.AnalyzeExpression(block, c.Left)
	if !ok {
		return 0, false
	}
	rhs, ok := d.AnalyzeExpression(block, c.Right)
	if !ok {
		return 0, false
	}
	if lhs.ExprType.Kind != ast.TypePrimitive || rhs.ExprType.Kind != ast.TypePrimitive {
		d.addError(newError(ConditionExpressionNotSupported, lhs.ExprType.String(), c.Location()))
		return 0, false
	}
	if !lhs.ExprType.Equals(rhs.ExprType) {
		d.addError(newError(ConditionExpressionWrongType, lhs.ExprType.String(), c.Location()))
		return 0, false
	}
	reg := block.IncRegister()
	block.Emit(types.ConditionExpressionInstr(*lhs, *rhs, c.Condition, reg))
	return reg, true
}

// AnalyzeLogicCondition walks a binary tree of comparison leaves joined
// by AND/OR, emitting one ConditionExpression per leaf and one
// LogicCondition per internal node (spec §4.5.6). It returns the register
// holding the final combined boolean result.
func (d *Driver) AnalyzeLogicCondition(block *BlockState, tree ast.ExpressionLogicCondition) (types.Register, bool) {
	leftReg, ok := d.AnalyzeConditionLeaf(block, tree.Left)
	if !ok {
		return 0, false
	}
	if tree.Right == nil {
		return leftReg, true
	}
	rightReg, ok := d.AnalyzeLogicCondition(block, *tree.Right.Right)
	if !ok {
		return 0, false
	}
	reg := block.IncRegister()
	block.Emit(types.LogicConditionInstr(leftReg, rightReg, tree.Right.Logic, reg))
	return reg, true
}
