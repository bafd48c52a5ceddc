package semantic

import (
	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

const (
	labelIfBegin  = "if_begin"
	labelIfEnd    = "if_end"
	labelIfElse   = "if_else"
	labelLoopBeg  = "loop_begin"
	labelLoopEnd  = "loop_end"
)

// Driver is the statement analyzer / top-level walk of spec §4.5: it
// owns the GlobalState and the accumulated error list, and drives
// analysis of an entire Main program (spec §3's "State<T: Codegen>" in
// the original). It is not safe for concurrent use; the analyzer is
// single-threaded by design (spec §5).
//
// Instructions are buffered, never pushed to a Sink inline: top-level
// declarations accumulate in TopLevel, and each function body's
// instructions accumulate in its root BlockState's shared log, in true
// chronological emission order (spec §3's block states are "retained...
// for post-analysis inspection"). A caller replays the full stream into
// a chosen codegen.Sink once analysis completes, via Instructions() and
// codegen.Dispatch.
type Driver struct {
	Global           *GlobalState
	Errors           []SemanticError
	MaxPriorityLevel int

	TopLevel []types.SemanticInstruction

	// Roots holds the root BlockState of every analyzed function body,
	// keyed by function name, retained for post-analysis inspection
	// per spec §3's Lifecycle ("never destroyed before the analyzer
	// result is consumed").
	Roots map[string]*BlockState

	// order preserves Pass C's function analysis order so Instructions()
	// can replay function bodies deterministically.
	order []string
}

// NewDriver constructs a Driver. maxPriority overrides
// ast.MaxPriorityLevel (SPEC_FULL.md §10/§12's configurable knob); pass
// ast.MaxPriorityLevel for the default.
func NewDriver(maxPriority int) *Driver {
	return &Driver{
		Global:           NewGlobalState(),
		MaxPriorityLevel: maxPriority,
		Roots:            make(map[string]*BlockState),
	}
}

// Instructions concatenates the whole emitted stream in analysis order:
// Pass A/B declarations, then each function's instructions in the exact
// chronological order they were emitted during its body walk (spec §5's
// ordering guarantee, and the literal sequences of spec §8's scenarios).
func (d *Driver) Instructions() []types.SemanticInstruction {
	out := append([]types.SemanticInstruction{}, d.TopLevel...)
	for _, name := range d.order {
		out = append(out, d.Roots[name].Instructions()...)
	}
	return out
}

func (d *Driver) addError(err SemanticError) {
	d.Errors = append(d.Errors, err)
}

// Run analyzes an entire program via the three-pass top-level walk
// (spec §4.5.1) and returns whether it completed without errors. Pass C
// always runs, even if Pass A/B recorded errors; use RunWithOptions to
// gate that behavior.
func (d *Driver) Run(main ast.Main) bool {
	return d.run(main, true)
}

// RunWithOptions is Run with the CLI's --config continue-past-errors
// knob: when continuePastDeclarationErrors is false and Pass A/B
// recorded any error, Pass C is skipped entirely rather than analyzing
// function bodies against a GlobalState missing some of its declarations.
func (d *Driver) RunWithOptions(main ast.Main, continuePastDeclarationErrors bool) bool {
	return d.run(main, continuePastDeclarationErrors)
}

func (d *Driver) run(main ast.Main, continuePastDeclarationErrors bool) bool {
	// Pass A: imports, types.
	for _, stmt := range main {
		if stmt.Kind == ast.MainTypes {
			d.passAType(*stmt.Types)
		}
	}
	// Pass B: constants, function signatures.
	for _, stmt := range main {
		switch stmt.Kind {
		case ast.MainConstant:
			d.passBConstant(*stmt.Constant)
		case ast.MainFunction:
			d.passBFunction(*stmt.Function)
		}
	}
	if !continuePastDeclarationErrors && len(d.Errors) > 0 {
		return false
	}
	// Pass C: function bodies.
	for _, stmt := range main {
		if stmt.Kind == ast.MainFunction {
			d.passCFunctionBody(*stmt.Function)
		}
	}
	return len(d.Errors) == 0
}

func (d *Driver) passAType(s ast.StructTypes) {
	name := types.TypeName(s.Name.Fragment)
	if err := d.Global.InsertType(name, ast.StructT(s), s.Name); err != nil {
		d.addError(*err)
		return
	}
	d.TopLevel = append(d.TopLevel, types.TypeDeclarationInstr(s))
}

func (d *Driver) passBConstant(c ast.Constant) {
	if _, ok := d.resolveType(c.ConstantType, c.Name.Ident); !ok {
		return
	}
	if err := d.Global.InsertConstant(c); err != nil {
		d.addError(*err)
		return
	}
	d.TopLevel = append(d.TopLevel, types.ConstantDeclarationInstr(c))
}

func (d *Driver) passBFunction(f ast.FunctionStatement) {
	ok := true
	if _, resultOk := d.resolveType(f.ResultType, f.Name.Ident); !resultOk {
		ok = false
	}
	for _, p := range f.Parameters {
		if _, paramOk := d.resolveType(p.ParameterType, p.Name.Ident); !paramOk {
			ok = false
		}
	}
	if !ok {
		return
	}
	sig := types.SignatureOf(f)
	if err := d.Global.InsertFunction(sig); err != nil {
		d.addError(*err)
		return
	}
	d.TopLevel = append(d.TopLevel, types.FunctionDeclarationInstr(sig))
}

// passCFunctionBody analyzes one function body against a fresh root
// BlockState (spec §4.5.1 Pass C), emitting a FunctionStatement marker
// before walking the body so a consuming Sink can group the instructions
// that follow under this function.
func (d *Driver) passCFunctionBody(f ast.FunctionStatement) {
	sig, ok := d.Global.GetFunction(f.Name.Fragment)
	if !ok {
		// Pass B failed to register this signature; nothing to analyze.
		return
	}
	root := NewBlockState(nil)
	d.Roots[f.Name.Fragment] = root
	d.order = append(d.order, f.Name.Fragment)
	root.Emit(types.FunctionStatementInstr(sig))
	d.AnalyzeFunctionBody(root, sig, f.Body)
}

// resolveType checks that t (or its struct/array element, recursively)
// names a type GlobalState.types already knows about. Primitive types
// are always resolvable; struct types must have been recorded in Pass A.
func (d *Driver) resolveType(t ast.Type, loc ast.Ident) (ast.Type, bool) {
	switch t.Kind {
	case ast.TypePrimitive:
		return t, true
	case ast.TypeStruct:
		name := types.TypeName(t.Name())
		if _, ok := d.Global.GetType(name); !ok {
			d.addError(newError(TypeNotFound, t.Name(), loc))
			return ast.Type{}, false
		}
		return t, true
	case ast.TypeArray:
		if t.ArrayOf == nil {
			d.addError(newError(TypeNotFound, t.Name(), loc))
			return ast.Type{}, false
		}
		if _, ok := d.resolveType(*t.ArrayOf, loc); !ok {
			return ast.Type{}, false
		}
		return t, true
	default:
		d.addError(newError(TypeNotFound, t.Name(), loc))
		return ast.Type{}, false
	}
}
