// Package repl implements Lox's interactive Read-Eval-Print Loop: a
// banner, a chzyer/readline session for history and line editing, and
// fatih/color-tinted output, wired to one persistent Interpreter so
// definitions from one line are visible to the next. The Reporter is reset
// (not rebuilt) between lines, so one mistyped line can't corrupt state
// but earlier variable bindings survive.
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxi/internal/interpreter"
	"github.com/akashmaji946/loxi/internal/parser"
	"github.com/akashmaji946/loxi/internal/reporter"
	"github.com/akashmaji946/loxi/internal/resolver"
	"github.com/akashmaji946/loxi/internal/scanner"
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

// Repl is a single interactive session: a banner plus the prompt shown on
// every line.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	greenColor.Fprintln(w, r.Banner)
	cyanColor.Fprintf(w, "loxi %s - type an expression, or Ctrl-D to exit\n", r.Version)
}

// Start runs the loop until EOF (Ctrl-D) or an empty line. reader is
// accepted for symmetry with callers that plumb an explicit input source
// (e.g. a TCP connection in serve mode); readline itself always reads from
// the process's controlling terminal when reader is os.Stdin.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		HistoryFile: "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	rep := reporter.New()
	interp := interpreter.New(nil, writer)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C: cancel the current line, re-prompt.
			continue
		}
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		rep.Reset()
		r.evalLine(writer, line, rep, interp)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, rep *reporter.Reporter, interp *interpreter.Interpreter) {
	toks := scanner.New(line, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if rep.HadError() {
		for _, msg := range rep.Errors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}

	depths := resolver.New(rep).Resolve(stmts)
	if rep.HadError() {
		for _, msg := range rep.Errors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}
	interp.SetDepths(depths)

	if rtErr := interp.Interpret(stmts); rtErr != nil {
		redColor.Fprintln(writer, rtErr.Error())
	}
}
