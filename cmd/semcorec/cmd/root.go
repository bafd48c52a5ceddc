package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configPath is the --config flag shared by every subcommand.
var configPath string

// verbose is the --verbose/-v flag shared by every subcommand.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "semcorec",
	Short: "Semantic analyzer for the semcore language",
	Long: `semcorec runs the semantic analysis pass of a semcore front-end:
block-scoped symbol resolution, expression and statement analysis, and
lowering to a linearized semantic-instruction stream.

It consumes a pre-parsed AST document (JSON) rather than source text; it
has no lexer or parser of its own.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
