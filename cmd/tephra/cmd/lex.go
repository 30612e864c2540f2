package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lexGrammarName string
	lexEvalExpr    string
	lexShowSpans   bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source text under a sample grammar",
	Long: `Tokenize source text and print the resulting token stream.

This command is useful for exercising a Scanner and the Lexer built on
top of it without writing any Go.

Examples:
  # Tokenize a file under the colorexpr grammar
  tephra lex --grammar colorexpr script.cx

  # Tokenize an inline expression
  tephra lex -e "rgb(255, 0, 0)"

  # Show source spans alongside each token
  tephra lex --show-spans -e "abc"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVar(&lexGrammarName, "grammar", "colorexpr", "sample grammar to tokenize under (abc, colorexpr)")
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline text instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowSpans, "show-spans", false, "show each token's source span")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, name, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing %s under %q (%d bytes)\n---\n", name, lexGrammarName, len(input))
	}

	tokens, err := lexGrammar(lexGrammarName, input)
	if err != nil {
		return err
	}

	for _, t := range tokens {
		if lexShowSpans {
			fmt.Printf("%-20s %s\n", t.name, t.span)
		} else {
			fmt.Println(t.name)
		}
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", len(tokens))
	}
	return nil
}
