package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/semcore-lang/semcore/internal/codegen"
	"github.com/semcore-lang/semcore/internal/config"
	"github.com/semcore-lang/semcore/pkg/ast"
)

func writeASTFixture(t *testing.T, main ast.Main) string {
	t.Helper()
	data, err := json.Marshal(main)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "program.ast.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func oneFunctionMain() ast.Main {
	fn := ast.FunctionStatement{
		Name:       ast.NewFunctionName(ast.NewIdent("answer")),
		ResultType: ast.PrimitiveT(ast.I32),
		Body: []ast.Statement{
			ast.ReturnStmt(ast.Expression{Value: ast.PrimitiveValueOf(ast.I32Value(42))}),
		},
	}
	return ast.Main{ast.FunctionStmt(fn)}
}

func TestLoadMainRoundTripsFixture(t *testing.T) {
	path := writeASTFixture(t, oneFunctionMain())

	main, err := loadMain(path)
	if err != nil {
		t.Fatalf("loadMain: %v", err)
	}
	if len(main) != 1 || main[0].Kind != ast.MainFunction {
		t.Fatalf("loadMain() = %+v, want one function declaration", main)
	}
}

func TestLoadMainMissingFile(t *testing.T) {
	if _, err := loadMain(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("loadMain of a nonexistent file should error")
	}
}

func TestRunDriverAnalyzesFixtureWithoutErrors(t *testing.T) {
	path := writeASTFixture(t, oneFunctionMain())
	cfg := config.Default(ast.MaxPriorityLevel)

	driver, err := runDriver(path, cfg)
	if err != nil {
		t.Fatalf("runDriver: %v", err)
	}
	if len(driver.Errors) != 0 {
		t.Fatalf("driver.Errors = %v, want none", driver.Errors)
	}

	sink := codegen.NewTextSink()
	codegen.Dispatch(sink, driver.Instructions())
	if len(sink.Lines()) == 0 {
		t.Fatal("expected at least one rendered instruction line")
	}
}

func TestRunDriverAccumulatesErrorsOnBadReference(t *testing.T) {
	fn := ast.FunctionStatement{
		Name:       ast.NewFunctionName(ast.NewIdent("broken")),
		ResultType: ast.PrimitiveT(ast.I32),
		Body: []ast.Statement{
			ast.ReturnStmt(ast.Expression{Value: ast.ValueNameValue(ast.NewValueName(ast.NewIdent("missing")))}),
		},
	}
	path := writeASTFixture(t, ast.Main{ast.FunctionStmt(fn)})
	cfg := config.Default(ast.MaxPriorityLevel)

	driver, err := runDriver(path, cfg)
	if err != nil {
		t.Fatalf("runDriver: %v", err)
	}
	if len(driver.Errors) == 0 {
		t.Fatal("expected an accumulated error for an undeclared value reference")
	}
}
