package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semcore-lang/semcore/internal/codegen"
	"github.com/semcore-lang/semcore/internal/config"
	"github.com/semcore-lang/semcore/internal/errors"
	"github.com/semcore-lang/semcore/internal/semantic"
	"github.com/semcore-lang/semcore/pkg/ast"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze an AST document and print the emitted instruction stream",
	Long: `Read a pre-parsed AST document (JSON) and run the full three-pass
semantic analysis over it, printing the resulting instruction stream and
any accumulated errors.

Example:
  semcorec analyze program.ast.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// loadMain reads and decodes an AST JSON document from path.
func loadMain(path string) (ast.Main, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var main ast.Main
	if err := json.Unmarshal(data, &main); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return main, nil
}

// loadAnalysisConfig resolves the effective config: a --config file if
// given, otherwise the built-in default.
func loadAnalysisConfig() (config.Config, error) {
	if configPath == "" {
		if verbose {
			fmt.Fprintln(os.Stderr, "using built-in default configuration")
		}
		return config.Default(ast.MaxPriorityLevel), nil
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loading configuration from %s\n", configPath)
	}
	return config.Load(configPath, ast.MaxPriorityLevel)
}

// runDriver loads file, runs the analyzer with cfg, and returns the
// driver (with its accumulated errors and instruction stream) plus the
// filename for error reporting.
func runDriver(file string, cfg config.Config) (*semantic.Driver, error) {
	main, err := loadMain(file)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loaded %d top-level declaration(s) from %s\n", len(main), file)
	}
	driver := semantic.NewDriver(cfg.MaxPriorityLevel)
	driver.RunWithOptions(main, cfg.ContinuePastDeclarationErrors)
	if verbose {
		fmt.Fprintf(os.Stderr, "analysis emitted %d instruction(s), %d error(s)\n", len(driver.Instructions()), len(driver.Errors))
	}
	return driver, nil
}

// printSemanticErrors formats and writes a driver's accumulated errors
// to stderr using internal/errors, since SemanticError carries only a
// source-less Ident location (spec §7's `{kind, value, location}`).
func printSemanticErrors(file string, errs []semantic.SemanticError) {
	compilerErrors := make([]*errors.CompilerError, len(errs))
	for i, e := range errs {
		pos := errors.Position{Line: e.Location.Line, Column: 1}
		msg := fmt.Sprintf("%s: %s", e.Kind, e.Value)
		compilerErrors[i] = errors.NewCompilerError(pos, msg, "", file)
	}
	fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
	fmt.Fprintln(os.Stderr)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	file := args[0]
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	driver, err := runDriver(file, cfg)
	if err != nil {
		return err
	}

	sink := codegen.NewTextSink()
	codegen.Dispatch(sink, driver.Instructions())
	for _, line := range sink.Lines() {
		fmt.Println(line)
	}

	if len(driver.Errors) > 0 {
		printSemanticErrors(file, driver.Errors)
		return fmt.Errorf("analysis failed with %d error(s)", len(driver.Errors))
	}
	return nil
}
