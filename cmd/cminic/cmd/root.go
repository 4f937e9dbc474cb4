package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cminic",
	Short: "A lexer and parser for a small C-like language",
	Long: `cminic tokenizes and parses a small, explicitly scoped subset of C:
top-level declarations and function definitions with int/char/void types,
one-dimensional arrays, if/else, while, compound statements, and the usual
expression precedence chain.

It stops at the AST: no semantic analysis, no code generation, no
interpretation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
