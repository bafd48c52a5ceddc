// Command semcorec runs the semantic analyzer over a pre-parsed AST
// document and prints its emitted instruction stream or error list.
package main

import (
	"os"

	"github.com/semcore-lang/semcore/cmd/semcorec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
