// Command tephra drives the tephra lexer/parser-combinator toolkit's
// sample grammars from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/tephra-go/tephra/cmd/tephra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
