package codegen

import (
	"fmt"

	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// TextSink renders one line per instruction, the backend the
// `disassemble` CLI subcommand drives (spec §10/§11). It plays the role
// the original's illustrative `dummy.rs` Backend plays: a minimal,
// complete Sink that proves the interface is implementable without
// pulling in a real code generator.
type TextSink struct {
	lines []string
}

func NewTextSink() *TextSink { return &TextSink{} }

// Lines returns the rendered instruction stream, in emission order.
func (s *TextSink) Lines() []string { return s.lines }

func (s *TextSink) emit(format string, args ...any) {
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

func (s *TextSink) Types(st ast.StructTypes) {
	s.emit("declare type %s", st.Name.Fragment)
}

func (s *TextSink) Constant(c ast.Constant) {
	s.emit("declare const %s %s", c.ConstantType, c.Name.Fragment)
}

func (s *TextSink) FunctionDeclaration(fn types.Function) {
	s.emit("declare fn %s", fn)
}

func (s *TextSink) FunctionStatement(fn types.Function) {
	s.emit("fn %s {", fn)
}

func (s *TextSink) LetBinding(v types.Value, result types.ExpressionResult) {
	s.emit("  %%%s = alloca %s", v.InnerName, v.InnerType)
	s.emit("  store %s, ptr %%%s", result, v.InnerName)
}

func (s *TextSink) Binding(v types.Value, result types.ExpressionResult) {
	s.emit("  store %s, ptr %%%s", result, v.InnerName)
}

func (s *TextSink) Call(fn types.Function, args []types.ExpressionResult, register types.Register) {
	s.emit("  %%%d = call %s(%v)", register, fn.InnerName.Fragment, args)
}

func (s *TextSink) ExpressionValue(v types.Value, register types.Register) {
	s.emit("  %%%d = load %s, ptr %%%s", register, v.InnerType, v.InnerName)
}

func (s *TextSink) ExpressionConst(c ast.Constant, register types.Register) {
	s.emit("  %%%d = const %s", register, c.Name.Fragment)
}

func (s *TextSink) ExpressionStructValue(v types.Value, attrIdx int, register types.Register) {
	s.emit("  %%%d = field %s[%d]", register, v.InnerName, attrIdx)
}

func (s *TextSink) ExpressionOperation(op ast.ExpressionOperations, lhs, rhs types.ExpressionResult, register types.Register) {
	s.emit("  %%%d = %s %s, %s", register, op, lhs, rhs)
}

func (s *TextSink) ConditionExpression(lhs, rhs types.ExpressionResult, cmp ast.Condition, register types.Register) {
	s.emit("  %%%d = cmp %s %s, %s", register, cmp, lhs, rhs)
}

func (s *TextSink) LogicCondition(leftReg, rightReg types.Register, op ast.LogicCondition, register types.Register) {
	s.emit("  %%%d = %s %%%d, %%%d", register, op, leftReg, rightReg)
}

func (s *TextSink) IfConditionExpression(result types.ExpressionResult, begin, endOrElse types.LabelName) {
	s.emit("  if %s goto %s else %s", result, begin, endOrElse)
}

func (s *TextSink) IfConditionLogic(begin, endOrElse types.LabelName, register types.Register) {
	s.emit("  if %%%d goto %s else %s", register, begin, endOrElse)
}

func (s *TextSink) JumpTo(label types.LabelName) { s.emit("  jump %s", label) }

func (s *TextSink) SetLabel(label types.LabelName) { s.emit("%s:", label) }

func (s *TextSink) ExpressionFunctionReturn(result types.ExpressionResult) {
	s.emit("  return %s", result)
}

func (s *TextSink) ExpressionFunctionReturnWithLabel(result types.ExpressionResult) {
	s.emit("  return.label %s", result)
}

func (s *TextSink) JumpFunctionReturn(result types.ExpressionResult) {
	s.emit("  jump.return %s", result)
}

func (s *TextSink) IfFunctionReturn(result types.ExpressionResult) {
	s.emit("  if.return %s", result)
}
