/*
File   : lilang/cmd/lilang/ast.go

`lilang ast <file>` runs the full pipeline and prints the resulting
tree with a printingVisitor, annotating every expression with the Obj
semantic analysis attached to it (or leaving it blank where no Obj was
attached; BadExpr nodes are always printed without one).
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the type-annotated AST of a lilang source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			file, diags, ok := runPipeline(src)

			pv := &printingVisitor{}
			file.Accept(pv)
			fmt.Fprint(cmd.OutOrStdout(), pv.buf.String())

			if !ok {
				fmt.Fprint(cmd.OutOrStdout(), diags.Render())
				return fmt.Errorf("%d error(s) found in %s", diags.Len(), args[0])
			}
			return nil
		},
	}
}
