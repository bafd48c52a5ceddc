package semantic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semcore-lang/semcore/internal/types"
)

// BlockState is a lexical-scope node (spec §3, §4.2): a local name table,
// a register counter and label set shared with ancestors, and an
// instruction buffer. The tree is owned top-down (parent.children holds
// the child); the parent pointer back up is the only non-owning edge,
// which in Go is simply a plain pointer since there is no Rc<RefCell<>>
// cycle-safety concern to work around (spec §9's design note).
type BlockState struct {
	parent   *BlockState
	children []*BlockState

	values             map[string]types.Value
	innerValuesName    map[types.InnerValueName]struct{}
	labels             map[types.LabelName]struct{}
	lastRegisterNumber uint64
	manualReturn       bool

	// log is shared by every BlockState in one function's tree, the
	// same way last_register_number/labels are kept in sync with
	// ancestors: the original source buffers only expression-leaf
	// instructions per-block (in a RefCell-guarded SemanticStack) and
	// calls the rest straight through to the codegen sink inline, two
	// mechanisms that happen to interleave into one coherent stream.
	// Go has no borrow-checker reason to split them, so every
	// instruction — expression-leaf and control alike — is appended
	// here directly, in true chronological emission order, which is
	// what spec §8's literal instruction-sequence scenarios require.
	log *[]types.SemanticInstruction
}

// NewBlockState creates a block state under parent (nil for a function
// root). It is appended to parent.children immediately: block states are
// retained for post-analysis inspection, never destroyed (spec §3
// Lifecycle).
func NewBlockState(parent *BlockState) *BlockState {
	bs := &BlockState{
		parent: parent,
		values: make(map[string]types.Value),
	}
	if parent != nil {
		bs.lastRegisterNumber = parent.lastRegisterNumber
		bs.manualReturn = parent.manualReturn
		bs.innerValuesName = cloneInnerSet(parent.innerValuesName)
		bs.labels = cloneLabelSet(parent.labels)
		bs.log = parent.log
		parent.children = append(parent.children, bs)
	} else {
		bs.innerValuesName = make(map[types.InnerValueName]struct{})
		bs.labels = make(map[types.LabelName]struct{})
		bs.log = new([]types.SemanticInstruction)
	}
	return bs
}

func cloneInnerSet(src map[types.InnerValueName]struct{}) map[types.InnerValueName]struct{} {
	dst := make(map[types.InnerValueName]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

func cloneLabelSet(src map[types.LabelName]struct{}) map[types.LabelName]struct{} {
	dst := make(map[types.LabelName]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

// SetRegister sets the local counter and recursively sets every
// ancestor's counter to the same value (spec §4.2).
func (bs *BlockState) SetRegister(n uint64) {
	bs.lastRegisterNumber = n
	if bs.parent != nil {
		bs.parent.SetRegister(n)
	}
}

// IncRegister mints the next register: set_register(current + 1),
// returning the freshly minted value.
func (bs *BlockState) IncRegister() types.Register {
	bs.SetRegister(bs.lastRegisterNumber + 1)
	return types.Register(bs.lastRegisterNumber)
}

// CurrentRegister returns the last minted register without incrementing.
func (bs *BlockState) CurrentRegister() types.Register {
	return types.Register(bs.lastRegisterNumber)
}

// SetInnerValueName inserts n into this state and every ancestor.
func (bs *BlockState) SetInnerValueName(n types.InnerValueName) {
	bs.innerValuesName[n] = struct{}{}
	if bs.parent != nil {
		bs.parent.SetInnerValueName(n)
	}
}

// IsInnerValueNameExist is a recursive lookup toward the root, true on
// the first hit. It walks the live ancestor chain rather than trusting
// the copy taken at construction, since a sibling block created earlier
// may have registered names in a shared ancestor afterward.
func (bs *BlockState) IsInnerValueNameExist(n types.InnerValueName) bool {
	if _, ok := bs.innerValuesName[n]; ok {
		return true
	}
	if bs.parent != nil {
		return bs.parent.IsInnerValueNameExist(n)
	}
	return false
}

// GetValueName is a recursive lookup in values toward the root; it
// returns the closest enclosing binding, i.e. shadowing-aware.
func (bs *BlockState) GetValueName(name string) (types.Value, bool) {
	if v, ok := bs.values[name]; ok {
		return v, true
	}
	if bs.parent != nil {
		return bs.parent.GetValueName(name)
	}
	return types.Value{}, false
}

// SetValueName inserts into the current BlockState.values only (spec
// §4.5.3 step 5); it does not propagate to ancestors, unlike names and
// labels.
func (bs *BlockState) SetValueName(name string, v types.Value) {
	bs.values[name] = v
}

// nextSuffixed applies the `.k -> .k+1`, else `+".0"` discipline shared
// by inner-name and label minting (spec §4.2).
func nextSuffixed(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx >= 0 {
		if n, err := strconv.Atoi(name[idx+1:]); err == nil {
			return fmt.Sprintf("%s.%d", name[:idx], n+1)
		}
	}
	return name + ".0"
}

// GetNextInnerName returns candidate unchanged if free, otherwise the
// first `.0`, `.1`, … suffix (computed from candidate's own suffix, if
// it has one) that is not already registered (spec §4.2).
func (bs *BlockState) GetNextInnerName(candidate string) types.InnerValueName {
	name := candidate
	for bs.IsInnerValueNameExist(types.InnerValueName(name)) {
		name = nextSuffixed(name)
	}
	return types.InnerValueName(name)
}

// isLabelNameExist mirrors IsInnerValueNameExist for the label namespace.
func (bs *BlockState) isLabelNameExist(n types.LabelName) bool {
	if _, ok := bs.labels[n]; ok {
		return true
	}
	if bs.parent != nil {
		return bs.parent.isLabelNameExist(n)
	}
	return false
}

// setLabelName claims n: inserts into this state and every ancestor.
func (bs *BlockState) setLabelName(n types.LabelName) {
	bs.labels[n] = struct{}{}
	if bs.parent != nil {
		bs.parent.setLabelName(n)
	}
}

// GetAndSetNextLabel claims and returns base if free, otherwise the
// first free `base.0`, `base.1`, … suffix, using the same discipline as
// GetNextInnerName but in the independent label namespace (spec §4.2).
func (bs *BlockState) GetAndSetNextLabel(base string) types.LabelName {
	name := base
	for bs.isLabelNameExist(types.LabelName(name)) {
		name = nextSuffixed(name)
	}
	label := types.LabelName(name)
	bs.setLabelName(label)
	return label
}

// SetReturn sets manual_return in this state and every ancestor (spec
// §4.2, glossary "Manual return").
func (bs *BlockState) SetReturn() {
	bs.manualReturn = true
	if bs.parent != nil {
		bs.parent.SetReturn()
	}
}

// ManualReturn reports whether a return was emitted from a nested
// control-flow context under this block.
func (bs *BlockState) ManualReturn() bool { return bs.manualReturn }

// Emit appends instr to the shared per-function log, in true emission
// order, regardless of which block in the tree produced it.
func (bs *BlockState) Emit(instr types.SemanticInstruction) {
	*bs.log = append(*bs.log, instr)
}

// Instructions returns the full emitted instruction stream for this
// block's function, in chronological emission order.
func (bs *BlockState) Instructions() []types.SemanticInstruction { return *bs.log }

// Children returns the block states nested directly under this one.
func (bs *BlockState) Children() []*BlockState { return bs.children }
