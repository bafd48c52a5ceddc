package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Analyze an AST document and report only pass/fail",
	Long: `Run the same three-pass semantic analysis as "analyze" but without
printing the instruction stream; exits nonzero if any error was
accumulated. Intended for CI gating.

Example:
  semcorec check program.ast.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	file := args[0]
	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	driver, err := runDriver(file, cfg)
	if err != nil {
		return err
	}

	if len(driver.Errors) > 0 {
		printSemanticErrors(file, driver.Errors)
		return fmt.Errorf("check failed with %d error(s)", len(driver.Errors))
	}

	fmt.Printf("%s: ok\n", file)
	return nil
}
