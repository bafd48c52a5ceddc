package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

// analyzeLoop lowers a loop body (spec §4.5.8): a dedicated child block
// state, a begin/end label pair threaded down into nested if bodies so
// break/continue anywhere inside resolve to this loop, and an
// unconditional jump into the loop before its first iteration.
func (d *Driver) analyzeLoop(parent *BlockState, fn types.Function, body []ast.Statement) {
	loopBody := NewBlockState(parent)
	begin := loopBody.GetAndSetNextLabel(labelLoopBeg)
	end := loopBody.GetAndSetNextLabel(labelLoopEnd)

	loopBody.Emit(types.JumpToInstr(begin))
	loopBody.Emit(types.SetLabelInstr(begin))
	d.analyzeNestedBody(loopBody, fn, body, &loopLabels{begin: begin, end: end})
	loopBody.Emit(types.SetLabelInstr(end))
}
