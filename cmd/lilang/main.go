/*
File   : lilang/cmd/lilang/main.go

Package main wires the lilang front-end (lexer -> parser -> sema) into
a cobra command tree. This is the spec's "external collaborator,
contract-only" driver: every subcommand below only ever calls
lexer.Lex, parser.Parse, and sema.Analyze, then renders whatever those
three pure functions returned. Grounded on the teacher's main/main.go
(single driver dispatching on a mode) and repl/repl.go (readline +
fatih/color interactive loop); restructured onto github.com/spf13/cobra
per SPEC_FULL.md's DOMAIN STACK section, since the teacher's own
main.go is a flat os.Args switch rather than a command tree.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

const (
	version = "v0.1.0"
	author  = "lilang contributors"
	license = "MIT"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lilang",
		Short:         "lilang front-end: lex, parse, and type-check lilang source",
		Long:          "lilang runs the lexer, recursive-descent parser, and semantic analyzer over a lilang source file and reports diagnostics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newASTCmd())
	root.AddCommand(newReplCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readSource(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return src, nil
}
