package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/semcore-lang/semcore/pkg/ast"
)

// TestMainJSONRoundTrip exercises spec §6's requirement that serializing
// an AST document and deserializing it again is equality-preserving, the
// same property this repo's CLI relies on when it decodes an AST JSON
// file produced by an external parser.
func TestMainJSONRoundTrip(t *testing.T) {
	point := ast.StructTypes{
		Name: ast.NewIdent("Point"),
		Attributes: []ast.StructAttribute{
			{AttrName: ast.NewIdent("x"), AttrType: ast.PrimitiveT(ast.I32)},
			{AttrName: ast.NewIdent("y"), AttrType: ast.PrimitiveT(ast.I32)},
		},
	}

	fn := ast.FunctionStatement{
		Name: ast.NewFunctionName(ast.NewIdent("manhattan")),
		Parameters: []ast.FunctionParameter{
			{Name: ast.NewParameterName(ast.NewIdent("p")), ParameterType: ast.StructT(point)},
		},
		ResultType: ast.PrimitiveT(ast.I32),
		Body: []ast.Statement{
			ast.LetBindingStmt(ast.LetBinding{
				Name:    ast.NewValueName(ast.NewIdent("total")),
				Mutable: true,
				Value: ast.Expression{
					Value: ast.StructValueOf(ast.StructValueRef{
						Name:      ast.NewValueName(ast.NewIdent("p")),
						Attribute: ast.NewIdent("x"),
					}),
					Operation: &ast.ExpressionOperationTail{
						Operation: ast.OpPlus,
						Right: &ast.Expression{Value: ast.StructValueOf(ast.StructValueRef{
							Name:      ast.NewValueName(ast.NewIdent("p")),
							Attribute: ast.NewIdent("y"),
						})},
					},
				},
			}),
			ast.IfStmt(ast.IfStatement{
				Condition: ast.SingleCondition(ast.Expression{Value: ast.PrimitiveValueOf(ast.BoolValue(true))}),
				Body:      []ast.Statement{ast.BreakStmt()},
				ElseIfStatement: &ast.IfStatement{
					Condition: ast.SingleCondition(ast.Expression{Value: ast.PrimitiveValueOf(ast.BoolValue(false))}),
					Body:      []ast.Statement{ast.ContinueStmt()},
				},
			}),
			ast.LoopStmt([]ast.Statement{ast.BreakStmt()}),
			ast.ReturnStmt(ast.Expression{Value: ast.ValueNameValue(ast.NewValueName(ast.NewIdent("total")))}),
		},
	}

	main := ast.Main{
		ast.TypesStmt(point),
		ast.ConstantStmt(ast.Constant{
			Name:          ast.NewConstantName(ast.NewIdent("Origin")),
			ConstantType:  ast.PrimitiveT(ast.I32),
			ConstantValue: ast.ConstantExpression{Value: ast.ConstantLiteral(ast.I32Value(0))},
		}),
		ast.FunctionStmt(fn),
	}

	data, err := json.Marshal(main)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var roundTripped ast.Main
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	data2, err := json.Marshal(roundTripped)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if string(data) != string(data2) {
		t.Fatalf("round trip not equality-preserving:\nfirst:  %s\nsecond: %s", data, data2)
	}
}

func TestPrimitiveValueGetType(t *testing.T) {
	cases := []struct {
		v    ast.PrimitiveValue
		want ast.PrimitiveType
	}{
		{ast.I32Value(1), ast.I32},
		{ast.BoolValue(true), ast.Bool},
		{ast.StringValue("x"), ast.String},
		{ast.F64Value(1.5), ast.F64},
	}
	for _, c := range cases {
		if got := c.v.GetType().Primitive; got != c.want {
			t.Errorf("GetType() of %v = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestTypeEqualsStructural(t *testing.T) {
	a := ast.ArrayT(ast.PrimitiveT(ast.I32), 3)
	b := ast.ArrayT(ast.PrimitiveT(ast.I32), 3)
	c := ast.ArrayT(ast.PrimitiveT(ast.I32), 4)

	if !a.Equals(b) {
		t.Error("identical array types should be Equals")
	}
	if a.Equals(c) {
		t.Error("arrays of different length should not be Equals")
	}
}
