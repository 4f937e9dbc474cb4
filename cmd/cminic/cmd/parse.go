package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/errors"
	"github.com/cminic/cminic/lexer"
	"github.com/cminic/cminic/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()

	reporter := errors.New()
	l := lexer.New(f, filename, reporter)
	p := parser.New(l, reporter)

	program, _ := p.ParseProgram(context.Background())

	ast.Print(os.Stdout, program)

	for _, rec := range reporter.Records() {
		fmt.Fprintln(os.Stderr, rec.Format())
	}
	if reporter.Count() > 0 {
		fmt.Fprintf(os.Stderr, "%d error(s)\n", reporter.Count())
	}

	return nil
}
