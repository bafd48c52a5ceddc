package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// AnalyzeExpression folds expr per operator precedence then evaluates it
// left to right (spec §4.4), emitting into block's instruction buffer.
// It returns (nil, false) when any leaf fails to resolve, per the
// "None propagates upward" recovery policy of spec §7.
func (d *Driver) AnalyzeExpression(block *BlockState, expr ast.Expression) (*types.ExpressionResult, bool) {
	folded := Fold(expr, d.MaxPriorityLevel)
	left, ok := d.evalLeaf(block, folded.Value, folded.Location())
	if !ok {
		return nil, false
	}
	return d.continueChain(block, *left, folded.Operation)
}

// continueChain walks the right spine left to right: each tail node
// contributes one more operator application, with the previous result
// as the new left operand (spec §4.4 "Operator application").
func (d *Driver) continueChain(block *BlockState, left types.ExpressionResult, tail *ast.ExpressionOperationTail) (*types.ExpressionResult, bool) {
	if tail == nil {
		return &left, true
	}
	right := tail.Right
	rightValue, ok := d.evalLeaf(block, right.Value, right.Location())
	if !ok {
		return nil, false
	}
	if !left.ExprType.Equals(rightValue.ExprType) {
		d.addError(newError(WrongExpressionType, left.ExprType.String(), right.Location()))
	}
	block.Emit(types.ExpressionOperationInstr(tail.Operation, left, *rightValue))
	next := types.RegisterResult(rightValue.ExprType, block.CurrentRegister())
	return d.continueChain(block, next, right.Operation)
}

// evalLeaf evaluates one folded leaf (spec §4.4 "Leaf evaluation").
func (d *Driver) evalLeaf(block *BlockState, v ast.ExpressionValue, loc ast.Ident) (*types.ExpressionResult, bool) {
	switch v.Kind {
	case ast.EVValueName:
		return d.evalValueName(block, *v.ValueName)
	case ast.EVPrimitiveValue:
		result := types.PrimitiveResult(*v.Primitive)
		return &result, true
	case ast.EVFunctionCall:
		return d.AnalyzeFunctionCall(block, *v.Call)
	case ast.EVStructValue:
		return d.evalStructValue(block, *v.StructValue)
	case ast.EVExpression:
		return d.AnalyzeExpression(block, *v.Sub)
	default:
		return nil, false
	}
}

func (d *Driver) evalValueName(block *BlockState, name ast.ValueName) (*types.ExpressionResult, bool) {
	if val, ok := block.GetValueName(name.Fragment); ok {
		reg := block.IncRegister()
		block.Emit(types.ExpressionValueInstr(val, reg))
		result := types.RegisterResult(val.InnerType, reg)
		return &result, true
	}
	if c, ok := d.Global.GetConstant(name.Fragment); ok {
		reg := block.IncRegister()
		block.Emit(types.ExpressionConstInstr(c, reg))
		result := types.RegisterResult(c.ConstantType, reg)
		return &result, true
	}
	d.addError(newError(ValueNotFound, name.Fragment, name.Ident))
	return nil, false
}

func (d *Driver) evalStructValue(block *BlockState, ref ast.StructValueRef) (*types.ExpressionResult, bool) {
	val, ok := block.GetValueName(ref.Name.Fragment)
	if !ok {
		d.addError(newError(ValueNotFound, ref.Name.Fragment, ref.Name.Ident))
		return nil, false
	}
	st, ok := val.InnerType.GetStruct()
	if !ok {
		d.addError(newError(ValueNotFound, ref.Name.Fragment, ref.Name.Ident))
		return nil, false
	}
	attrType, ok := st.GetAttributeType(ref.Attribute.Fragment)
	if !ok {
		d.addError(newError(ValueNotFound, ref.Attribute.Fragment, ref.Attribute))
		return nil, false
	}
	index := st.GetAttributeIndex(ref.Attribute.Fragment)
	reg := block.IncRegister()
	block.Emit(types.ExpressionStructValueInstr(val, index, reg))
	result := types.RegisterResult(attrType, reg)
	return &result, true
}
