/*
File : curlang/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for curlang. It is an
// adapter over the core evaluator: lines not beginning with '{' are
// wrapped as anonymous zero-parameter blocks, and a leading ':' followed
// by a word defines a top-level user function from the rest of the line,
// matching the core's informative REPL adapter contract.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/curlang/curlang/builtins"
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the interactive session's cosmetic configuration — banner,
// version, prompt — independent of any one evaluator instance.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New returns a Repl with the given banner, version string and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    strings.Repeat("-", 60),
		Prompt:  prompt,
	}
}

// printBanner shows the startup banner and usage hints.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "curlang "+r.Version)
	cyanColor.Fprintln(w, "Type an expression and press enter. ':name { ... ;}' defines a function.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop against a fresh evaluator seeded with
// the reference native registry, until '.exit' or EOF.
func (r *Repl) Start(w io.Writer, cfg *builtins.Config) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	e := eval.New()
	e.Out = w
	builtins.RegisterAll(e.Registry, cfg)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}
		rl.SaveHistory(line)
		r.eval(w, e, line)
	}
}

// eval runs one REPL line through the wrapping/definition adapter and
// reports its outcome, recovering from any panic so one bad line never
// ends the session.
func (r *Repl) eval(w io.Writer, e *eval.Evaluator, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "runtime panic: %v\n", rec)
		}
	}()

	if strings.HasPrefix(line, ":") {
		r.evalDefinition(w, e, line)
		return
	}

	if !strings.HasPrefix(line, "{") {
		line = "{ " + line + " ; }"
	}
	v, err := e.Run(line)
	if err != nil {
		redColor.Fprintf(w, "error: %v\n", err)
		return
	}
	yellowColor.Fprintln(w, builtins.FormatValue(v))
}

// evalDefinition handles the ":name { ... }" top-level function form.
func (r *Repl) evalDefinition(w io.Writer, e *eval.Evaluator, line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, ":"))
	name, body, ok := strings.Cut(rest, " ")
	if !ok || strings.TrimSpace(body) == "" {
		redColor.Fprintln(w, "error: expected ':name { ... ; }'")
		return
	}
	lambda, err := parser.Parse(strings.TrimSpace(body))
	if err != nil {
		redColor.Fprintf(w, "error: %v\n", err)
		return
	}
	e.Registry.RegisterUser(name, lambda)
	greenColor.Fprintf(w, "defined %s\n", name)
}
