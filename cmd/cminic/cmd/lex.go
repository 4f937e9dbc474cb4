package cmd

import (
	"fmt"
	"os"

	"github.com/cminic/cminic/errors"
	"github.com/cminic/cminic/lexer"
	"github.com/spf13/cobra"
)

var (
	lexShowType   bool
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()

	reporter := errors.New()
	l := lexer.New(f, filename, reporter)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Println("---")
	}

	tokenCount := 0
	for {
		tok := l.Peek()
		if lexOnlyErrors && tok.Type != lexer.ILLEGAL {
			if tok.Type == lexer.EOF {
				break
			}
			l.Advance()
			continue
		}

		tokenCount++
		printToken(tok)

		if tok.Type == lexer.EOF {
			break
		}
		l.Advance()
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		fmt.Printf("Errors: %d\n", reporter.Count())
	}

	for _, rec := range reporter.Records() {
		fmt.Fprintln(os.Stderr, rec.Format())
	}
	if reporter.Count() > 0 {
		fmt.Fprintf(os.Stderr, "%d error(s)\n", reporter.Count())
	}

	return nil
}

func printToken(tok lexer.Token) {
	line := ""
	if lexShowType {
		line += fmt.Sprintf("[%-8s]", tok.Type)
	}
	switch tok.Type {
	case lexer.EOF:
		line += " EOF"
	default:
		line += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if lexShowPos {
		line += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(line)
}
