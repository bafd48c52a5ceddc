package semantic

import (
	"testing"

	"github.com/semcore-lang/semcore/internal/types"
	"github.com/semcore-lang/semcore/pkg/ast"
)

func TestBlockStateRegisterSharedWithAncestors(t *testing.T) {
	root := NewBlockState(nil)
	child := NewBlockState(root)

	if got := child.IncRegister(); got != 1 {
		t.Fatalf("child.IncRegister() = %d, want 1", got)
	}
	if got := root.CurrentRegister(); got != 1 {
		t.Fatalf("root.CurrentRegister() = %d, want 1 (register counter must propagate to ancestors)", got)
	}

	grandchild := NewBlockState(child)
	if got := grandchild.CurrentRegister(); got != 1 {
		t.Fatalf("grandchild inherited CurrentRegister() = %d, want 1", got)
	}
}

func TestBlockStateInnerNameSuffixing(t *testing.T) {
	root := NewBlockState(nil)
	first := root.GetNextInnerName("x")
	root.SetInnerValueName(first)
	if first != "x" {
		t.Fatalf("first inner name = %q, want \"x\"", first)
	}

	second := root.GetNextInnerName("x")
	root.SetInnerValueName(second)
	if second != "x.0" {
		t.Fatalf("second inner name = %q, want \"x.0\"", second)
	}

	third := root.GetNextInnerName("x")
	if third != "x.1" {
		t.Fatalf("third inner name = %q, want \"x.1\"", third)
	}
}

func TestBlockStateInnerNameVisibleToChild(t *testing.T) {
	root := NewBlockState(nil)
	root.SetInnerValueName("taken")
	child := NewBlockState(root)

	if !child.IsInnerValueNameExist("taken") {
		t.Fatal("child should see a name registered on its parent before the child was created")
	}
}

func TestBlockStateLabelSuffixing(t *testing.T) {
	root := NewBlockState(nil)
	a := root.GetAndSetNextLabel("if_begin")
	b := root.GetAndSetNextLabel("if_begin")
	if a != "if_begin" || b != "if_begin.0" {
		t.Fatalf("labels = %q, %q, want \"if_begin\", \"if_begin.0\"", a, b)
	}
}

func TestBlockStateValueNameLookupIsShadowingAware(t *testing.T) {
	root := NewBlockState(nil)
	root.SetValueName("x", types.NewValue("x", ast.PrimitiveT(ast.I32), false))

	child := NewBlockState(root)
	child.SetValueName("x", types.NewValue("x.0", ast.PrimitiveT(ast.Bool), true))

	v, ok := child.GetValueName("x")
	if !ok || v.InnerName != "x.0" {
		t.Fatalf("child lookup = %+v, want the block's own shadowing binding", v)
	}

	rv, ok := root.GetValueName("x")
	if !ok || rv.InnerName != "x" {
		t.Fatalf("root lookup = %+v, want the original binding untouched by the child's shadow", rv)
	}
}

func TestBlockStateEmitSharesLogAcrossTree(t *testing.T) {
	root := NewBlockState(nil)
	child := NewBlockState(root)
	grandchild := NewBlockState(child)

	root.Emit(types.JumpToInstr("a"))
	grandchild.Emit(types.JumpToInstr("b"))
	child.Emit(types.JumpToInstr("c"))

	got := root.Instructions()
	if len(got) != 3 {
		t.Fatalf("len(root.Instructions()) = %d, want 3", len(got))
	}
	want := []types.LabelName{"a", "b", "c"}
	for i, w := range want {
		if got[i].Label != w {
			t.Errorf("instruction %d label = %q, want %q (chronological emission order across blocks)", i, got[i].Label, w)
		}
	}

	if len(child.Instructions()) != 3 {
		t.Fatal("every block in the tree must see the same shared log")
	}
}

func TestBlockStateManualReturnPropagatesUpward(t *testing.T) {
	root := NewBlockState(nil)
	child := NewBlockState(root)
	nested := NewBlockState(child)

	nested.SetReturn()

	if !root.ManualReturn() {
		t.Error("SetReturn on a nested block must mark the function root as manual-return")
	}
	if !child.ManualReturn() {
		t.Error("SetReturn on a nested block must mark every ancestor")
	}
}
