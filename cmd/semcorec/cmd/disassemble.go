package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semcore-lang/semcore/internal/codegen"
)

var disassembleJSON bool

var disassembleCmd = &cobra.Command{
	Use:   "disassemble [file]",
	Short: "Analyze an AST document and pretty-print its instruction stream",
	Long: `Run the same analysis as "analyze", then render the full emitted
instruction stream one instruction per line. With --json, render a trace
document instead (see internal/codegen.JSONSink), queryable with gjson
paths downstream.

Example:
  semcorec disassemble program.ast.json
  semcorec disassemble --json program.ast.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDisassemble,
}

func init() {
	disassembleCmd.Flags().BoolVar(&disassembleJSON, "json", false, "emit a JSON instruction trace instead of text")
	rootCmd.AddCommand(disassembleCmd)
}

func runDisassemble(_ *cobra.Command, args []string) error {
	file := args[0]
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}
	if disassembleJSON {
		cfg.Format = "json"
	}

	driver, err := runDriver(file, cfg)
	if err != nil {
		return err
	}

	instructions := driver.Instructions()

	if cfg.Format == "json" {
		sink := codegen.NewJSONSink()
		codegen.Dispatch(sink, instructions)
		doc, err := sink.JSON()
		if err != nil {
			return fmt.Errorf("building json trace: %w", err)
		}
		fmt.Println(doc)
	} else {
		sink := codegen.NewTextSink()
		codegen.Dispatch(sink, instructions)
		for _, line := range sink.Lines() {
			fmt.Println(line)
		}
	}

	if len(driver.Errors) > 0 {
		printSemanticErrors(file, driver.Errors)
		return fmt.Errorf("analysis failed with %d error(s)", len(driver.Errors))
	}
	return nil
}
