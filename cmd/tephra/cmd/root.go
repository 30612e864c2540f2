package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tephra",
	Short: "Driver for the tephra lexer/parser-combinator toolkit",
	Long: `tephra is a Go toolkit for building hand-rolled lexers and recursive
parsers over them: a position/span-tracking source model, a pluggable
Scanner-driven Lexer, and a library of parser combinators with structured,
source-anchored diagnostics.

This command line drives the toolkit's two sample grammars (abc, a tiny
three-token-pattern grammar, and colorexpr, a small call-oriented
expression language) so the lexer, the combinators, and the diagnostic
renderer can be exercised without writing Go.`,
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
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
