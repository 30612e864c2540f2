package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tephra-go/tephra/internal/source"
)

var (
	parseGrammarName string
	parseEvalExpr    string
	parseColor       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source text under a sample grammar and dump the result",
	Long: `Parse source text with a sample grammar's entry parser and print the
resulting tree, or a rendered diagnostic if the parse fails.

If no file is provided, reads from stdin. Use -e to parse a single inline
expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseGrammarName, "grammar", "colorexpr", "sample grammar to parse under (abc, colorexpr)")
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline text instead of reading a file")
	parseCmd.Flags().BoolVar(&parseColor, "color", false, "colorize a failure diagnostic")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	dump, err := parseGrammar(parseGrammarName, input)
	if err != nil {
		src := source.New(input)
		fmt.Fprintln(os.Stderr, renderParseFailure(err, src, parseColor))
		return fmt.Errorf("parsing failed")
	}

	fmt.Println(dump)
	return nil
}
