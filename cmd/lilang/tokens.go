/*
File   : lilang/cmd/lilang/tokens.go

`lilang tokens <file>` prints the raw token stream, one per line,
including COMMENT tokens (the lexer preserves them; only the parser
skips them transparently — spec.md §4.1). Useful for inspecting how the
state machine classified a given source file independent of parsing.
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilang/lexer"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream produced by the lexer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks, errs := lexer.Lex(src)
			out := cmd.OutOrStdout()
			for _, t := range toks {
				fmt.Fprintln(out, t.String())
			}
			if !errs.Empty() {
				fmt.Fprint(out, errs.Render())
				return fmt.Errorf("%d lexical error(s)", errs.Len())
			}
			return nil
		},
	}
}
