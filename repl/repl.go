/*
File    : condeval/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for
// condition expressions. It keeps the teacher's readline-driven loop and
// colored-output conventions, reworked so each input line is a condition
// expression evaluated against one shared eval.State rather than a
// Go-Mix program evaluated against one shared lexical scope.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomsbuild/condeval/eval"
	"github.com/gomsbuild/condeval/parser"
	"github.com/gomsbuild/condeval/state"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
   ___ ___  _ _  ___  ___ _  _   _   _
  / __/ _ \| ' \|   \| __| \/ /\| |_| |
 | (_| (_) | .` + "`" + ` | |) | _|| \/\  _  |
  \___\___/|_|_|_|__/|___|_|  |_| |_|
`

// Repl runs the interactive loop: each line is parsed and evaluated as
// a condition against the shared state.
type Repl struct {
	Options parser.Options
	State   *state.State
	Prompt  string
}

// New creates a Repl evaluating under opts against st.
func New(opts parser.Options, st *state.State) *Repl {
	return &Repl{Options: opts, State: st, Prompt: "condeval >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Evaluate MSBuild-style condition expressions interactively.")
	cyanColor.Fprintln(w, "Type a condition and press enter. Type '.set Name=Value' to define a property.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user exits or input ends.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "Good bye!")
			return
		}
		rl.SaveHistory(line)

		if rest, ok := strings.CutPrefix(line, ".set "); ok {
			r.handleSet(out, rest)
			continue
		}

		r.evalOne(out, line)
	}
}

func (r *Repl) handleSet(out io.Writer, assignment string) {
	eq := strings.IndexByte(assignment, '=')
	if eq < 0 {
		redColor.Fprintf(out, "usage: .set Name=Value\n")
		return
	}
	name := strings.TrimSpace(assignment[:eq])
	value := assignment[eq+1:]
	r.State.SetProperty(name, value)
	cyanColor.Fprintf(out, "%s = %q\n", name, value)
}

func (r *Repl) evalOne(out io.Writer, text string) {
	node, err := parser.Parse(text, r.Options, func(key string, args ...interface{}) {
		yellowColor.Fprintf(out, "warning: %s\n", key)
	})
	if err != nil {
		redColor.Fprintf(out, "%v\n", err)
		return
	}

	result, err := eval.Evaluate(node, r.State)
	if err != nil {
		redColor.Fprintf(out, "%v\n", err)
		return
	}

	if result {
		greenColor.Fprintf(out, "%t\n", result)
	} else {
		yellowColor.Fprintf(out, "%t\n", result)
	}
}
