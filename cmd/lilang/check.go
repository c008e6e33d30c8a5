/*
File   : lilang/cmd/lilang/check.go

`lilang check <file>` runs the full pipeline and prints accumulated
diagnostics. Exit status is non-zero exactly when any phase's error
list is non-empty (spec.md §7: "a successful compile is defined as all
three error lists empty").
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilang/ast"
	"lilang/lexer"
	"lilang/parser"
	"lilang/report"
	"lilang/sema"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Lex, parse, and type-check a lilang source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			_, diags, ok := runPipeline(src)
			if !ok {
				cmd.OutOrStdout().Write([]byte(diags.Render()))
				return fmt.Errorf("%d error(s) found in %s", diags.Len(), args[0])
			}
			cyanColor.Fprintln(cmd.OutOrStdout(), "OK: no lexical, syntax, or semantic errors")
			return nil
		},
	}
}

// runPipeline runs the three pure phases in sequence and merges their
// diagnostics in the order the pipeline produced them (spec.md §2: the
// lexer is consumed once, fully, before the parser starts; the parser
// fully builds the AST before analysis starts).
func runPipeline(src []byte) (*ast.File, report.List, bool) {
	toks, lexErrs := lexer.Lex(src)
	file, parseErrs := parser.Parse(toks)
	semErrs := sema.Analyze(file)

	var all report.List
	all.Append(lexErrs)
	all.Append(parseErrs)
	all.Append(semErrs)
	return file, all, all.Empty()
}
