/*
File   : lilang/cmd/lilang/repl.go

`lilang repl` is an interactive line-at-a-time front-end session.
Grounded on the teacher's repl/repl.go: the same github.com/chzyer/readline
line editor (history, cursor movement) and github.com/fatih/color
palette, restructured so each line is lexed, parsed, and analyzed
instead of evaluated — this front-end performs no code generation
(spec.md §1), so there is no result to print, only the diagnostics and
the Obj each expression resolved to.
*/
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lilang/lexer"
	"lilang/parser"
	"lilang/sema"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
)

const (
	replPrompt = "lilang >>> "
	replLine   = "----------------------------------------------------------------"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive lex/parse/analyze session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(cmd.OutOrStdout())
			return nil
		},
	}
}

func printReplBanner(w io.Writer) {
	blueColor.Fprintln(w, replLine)
	greenColor.Fprintln(w, "lilang front-end REPL")
	blueColor.Fprintln(w, replLine)
	yellowColor.Fprintf(w, "Version: %s | %s\n", version, license)
	blueColor.Fprintln(w, replLine)
	cyanColor.Fprintln(w, "Type a declaration or statement and press enter.")
	cyanColor.Fprintln(w, "Each line is lexed, parsed, and type-checked standalone — no state is kept between lines.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintln(w, replLine)
}

// runRepl drives one interactive session. Every line is treated as a
// standalone program fragment: lexed, parsed, and analyzed fresh, with
// no scope or declarations carried over from the previous line — the
// front-end has no notion of incremental compilation.
func runRepl(w io.Writer) {
	printReplBanner(w)

	rl, err := readline.New(replPrompt)
	if err != nil {
		redColor.Fprintf(w, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return
		}
		rl.SaveHistory(line)

		evalReplLine(w, line)
	}
}

func evalReplLine(w io.Writer, line string) {
	toks, lexErrs := lexer.Lex([]byte(line))
	if !lexErrs.Empty() {
		redColor.Fprint(w, lexErrs.Render())
		return
	}

	file, parseErrs := parser.Parse(toks)
	if !parseErrs.Empty() {
		redColor.Fprint(w, parseErrs.Render())
		return
	}

	semErrs := sema.Analyze(file)
	pv := &printingVisitor{}
	file.Accept(pv)
	yellowColor.Fprint(w, pv.buf.String())

	if !semErrs.Empty() {
		redColor.Fprint(w, semErrs.Render())
	}
}
