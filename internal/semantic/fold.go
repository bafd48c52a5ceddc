package semantic

import "github.com/semcore-lang/semcore/pkg/ast"

// Fold rewrites expr's tree so that higher-priority binary operators
// form deeper leaves, leaving only the right spine carrying operators
// (spec §4.4). It walks priority levels from maxPriority down to 0,
// folding one level at a time; this mirrors fetch_op_priority /
// expression_operations_priority in the source this was distilled from
// exactly, since the algorithm itself (not just its result) is part of
// the specified behavior (spec §8: "folding a folded tree yields the
// same tree").
func Fold(expr ast.Expression, maxPriority int) ast.Expression {
	data := expr
	for p := maxPriority; p >= 0; p-- {
		data = fetchOpPriority(data, p)
	}
	return data
}

func fetchOpPriority(data ast.Expression, priorityLevel int) ast.Expression {
	if data.Operation == nil {
		return data
	}
	op := data.Operation.Operation
	right := data.Operation.Right
	if right.Operation == nil {
		return data
	}
	nextOp := right.Operation.Operation
	nextExpr := right.Operation.Right

	if op.Priority() == priorityLevel {
		folded := ast.SubExpressionValue(ast.Expression{
			Value: data.Value,
			Operation: &ast.ExpressionOperationTail{
				Operation: op,
				Right:     &ast.Expression{Value: right.Value},
			},
		})
		newRight := fetchOpPriority(*nextExpr, priorityLevel)
		return ast.Expression{
			Value:     folded,
			Operation: &ast.ExpressionOperationTail{Operation: nextOp, Right: &newRight},
		}
	}

	newRight := fetchOpPriority(*right, priorityLevel)
	return ast.Expression{
		Value:     data.Value,
		Operation: &ast.ExpressionOperationTail{Operation: op, Right: &newRight},
	}
}
