package codegen

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// JSONSink builds the `disassemble --json` instruction-trace document
// incrementally with sjson, one instruction at a time, rather than
// building a Go struct and marshaling it once at the end. This is the
// deliberately untyped counterpart to pkg/ast's strongly-typed
// encoding/json schema (SPEC_FULL.md §11): the trace format is a
// write-mostly, append-only log that downstream tooling queries with
// gjson paths, not a schema callers unmarshal back into Go types.
type JSONSink struct {
	doc string
	err error
}

func NewJSONSink() *JSONSink {
	return &JSONSink{doc: `{"instructions":[]}`}
}

// Err returns the first error encountered while building the document,
// if any. sjson.Set only fails on malformed paths, which cannot happen
// here since paths are constant strings; it is checked anyway rather
// than ignored.
func (s *JSONSink) Err() error { return s.err }

// JSON returns the accumulated document.
func (s *JSONSink) JSON() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.doc, nil
}

// Query runs a gjson path against the accumulated document, for test
// assertions and CLI inspection that don't want a full unmarshal.
func (s *JSONSink) Query(path string) gjson.Result {
	return gjson.Get(s.doc, path)
}

func (s *JSONSink) append(fields map[string]any) {
	if s.err != nil {
		return
	}
	doc, err := sjson.Set(s.doc, "instructions.-1", fields)
	if err != nil {
		s.err = err
		return
	}
	s.doc = doc
}

func resultFields(r types.ExpressionResult) map[string]any {
	if r.ValueKind == types.ExprValueRegister {
		return map[string]any{"type": r.ExprType.String(), "register": uint64(r.Register)}
	}
	return map[string]any{"type": r.ExprType.String(), "primitive": r.Primitive.String()}
}

func (s *JSONSink) Types(st ast.StructTypes) {
	s.append(map[string]any{"kind": "type", "name": st.Name.Fragment})
}

func (s *JSONSink) Constant(c ast.Constant) {
	s.append(map[string]any{"kind": "constant", "name": c.Name.Fragment, "type": c.ConstantType.String()})
}

func (s *JSONSink) FunctionDeclaration(fn types.Function) {
	s.append(map[string]any{"kind": "function_declaration", "name": fn.InnerName.Fragment, "result_type": fn.InnerType.String()})
}

func (s *JSONSink) FunctionStatement(fn types.Function) {
	s.append(map[string]any{"kind": "function_statement", "name": fn.InnerName.Fragment})
}

func (s *JSONSink) LetBinding(v types.Value, result types.ExpressionResult) {
	s.append(map[string]any{"kind": "let_binding", "name": string(v.InnerName), "type": v.InnerType.String(), "value": resultFields(result)})
}

func (s *JSONSink) Binding(v types.Value, result types.ExpressionResult) {
	s.append(map[string]any{"kind": "binding", "name": string(v.InnerName), "value": resultFields(result)})
}

func (s *JSONSink) Call(fn types.Function, args []types.ExpressionResult, register types.Register) {
	argFields := make([]map[string]any, len(args))
	for i, a := range args {
		argFields[i] = resultFields(a)
	}
	s.append(map[string]any{"kind": "call", "function": fn.InnerName.Fragment, "args": argFields, "register": uint64(register)})
}

func (s *JSONSink) ExpressionValue(v types.Value, register types.Register) {
	s.append(map[string]any{"kind": "expression_value", "name": string(v.InnerName), "register": uint64(register)})
}

func (s *JSONSink) ExpressionConst(c ast.Constant, register types.Register) {
	s.append(map[string]any{"kind": "expression_const", "name": c.Name.Fragment, "register": uint64(register)})
}

func (s *JSONSink) ExpressionStructValue(v types.Value, attrIdx int, register types.Register) {
	s.append(map[string]any{"kind": "expression_struct_value", "name": string(v.InnerName), "attr_index": attrIdx, "register": uint64(register)})
}

func (s *JSONSink) ExpressionOperation(op ast.ExpressionOperations, lhs, rhs types.ExpressionResult, register types.Register) {
	s.append(map[string]any{"kind": "expression_operation", "op": op.String(), "lhs": resultFields(lhs), "rhs": resultFields(rhs), "register": uint64(register)})
}

func (s *JSONSink) ConditionExpression(lhs, rhs types.ExpressionResult, cmp ast.Condition, register types.Register) {
	s.append(map[string]any{"kind": "condition_expression", "cmp": cmp.String(), "lhs": resultFields(lhs), "rhs": resultFields(rhs), "register": uint64(register)})
}

func (s *JSONSink) LogicCondition(leftReg, rightReg types.Register, op ast.LogicCondition, register types.Register) {
	s.append(map[string]any{"kind": "logic_condition", "op": op.String(), "left_register": uint64(leftReg), "right_register": uint64(rightReg), "register": uint64(register)})
}

func (s *JSONSink) IfConditionExpression(result types.ExpressionResult, begin, endOrElse types.LabelName) {
	s.append(map[string]any{"kind": "if_condition_expression", "result": resultFields(result), "begin": string(begin), "end_or_else": string(endOrElse)})
}

func (s *JSONSink) IfConditionLogic(begin, endOrElse types.LabelName, register types.Register) {
	s.append(map[string]any{"kind": "if_condition_logic", "begin": string(begin), "end_or_else": string(endOrElse), "register": uint64(register)})
}

func (s *JSONSink) JumpTo(label types.LabelName) {
	s.append(map[string]any{"kind": "jump_to", "label": string(label)})
}

func (s *JSONSink) SetLabel(label types.LabelName) {
	s.append(map[string]any{"kind": "set_label", "label": string(label)})
}

func (s *JSONSink) ExpressionFunctionReturn(result types.ExpressionResult) {
	s.append(map[string]any{"kind": "expression_function_return", "result": resultFields(result)})
}

func (s *JSONSink) ExpressionFunctionReturnWithLabel(result types.ExpressionResult) {
	s.append(map[string]any{"kind": "expression_function_return_with_label", "result": resultFields(result)})
}

func (s *JSONSink) JumpFunctionReturn(result types.ExpressionResult) {
	s.append(map[string]any{"kind": "jump_function_return", "result": resultFields(result)})
}

func (s *JSONSink) IfFunctionReturn(result types.ExpressionResult) {
	s.append(map[string]any{"kind": "if_function_return", "result": resultFields(result)})
}
