// Command loxi is the Lox interpreter's command-line driver: the thin
// wrapper the core package set is deliberately silent on (scan -> parse ->
// resolve -> evaluate is all library code; this file owns argv parsing,
// exit codes, and wiring stdin/stdout/stderr to that pipeline).
//
// Flag-style dispatch on os.Args, fatih/color-tinted diagnostics, and a
// `serve <port>` subcommand handing each TCP connection its own REPL
// session on its own goroutine. Exit-code precedence (usage, then static
// errors, then runtime errors) and the "Usage: plox [script]" wording
// follow the canonical Lox CLI contract.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/interpreter"
	"github.com/akashmaji946/loxi/internal/parser"
	"github.com/akashmaji946/loxi/internal/reporter"
	"github.com/akashmaji946/loxi/internal/repl"
	"github.com/akashmaji946/loxi/internal/resolver"
	"github.com/akashmaji946/loxi/internal/scanner"
)

const version = "v0.1.0"

var banner = `
 _            _
| | _____  __(_)
| |/ _ \ \/ /| |
| | (_) >  < | |
|_|\___/_/\_\|_|
`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 1 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
	}

	if len(args) >= 1 && args[0] == "serve" {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: loxi serve <port>")
			os.Exit(64)
		}
		serve(args[1])
		return
	}

	if len(args) >= 1 && args[0] == "--print-ast" {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: loxi --print-ast <script>")
			os.Exit(64)
		}
		os.Exit(printAST(args[1]))
	}

	switch len(args) {
	case 0:
		repl.New(banner, version, "> ").Start(os.Stdin, os.Stdout)
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Println("Usage: plox [script]")
		os.Exit(64)
	}
}

// runFile executes one script to completion and returns the exit code the
// CLI contract assigns it: 65 if any static error was reported, 70 if
// execution reported a runtime error, 0 otherwise. Static errors take
// precedence over runtime errors, since a runtime error can only be
// observed once static analysis has already passed.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 64
	}

	rep := reporter.New()
	toks := scanner.New(string(source), rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()

	if !rep.HadError() {
		depths := resolver.New(rep).Resolve(stmts)
		if !rep.HadError() {
			interp := interpreter.New(depths, os.Stdout)
			if rtErr := interp.Interpret(stmts); rtErr != nil {
				fmt.Fprintln(os.Stderr, rtErr.Error())
				return 70
			}
			return 0
		}
	}

	for _, msg := range rep.Errors() {
		fmt.Fprintln(os.Stderr, msg)
	}
	return 65
}

// printAST parses a script and prints its parenthesized form instead of
// running it — a debugging aid for inspecting what the parser produced
// without stepping through the evaluator. Static errors are reported the
// same way runFile reports them, with the same exit code.
func printAST(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 64
	}

	rep := reporter.New()
	toks := scanner.New(string(source), rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if !rep.HadError() {
		resolver.New(rep).Resolve(stmts)
	}
	if rep.HadError() {
		for _, msg := range rep.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	printer := &ast.Printer{}
	fmt.Print(printer.PrintStmts(stmts))
	return 0
}

// serve starts a TCP listener and hands each connection its own REPL
// session on its own goroutine, so concurrent clients each get an
// independent interpreter and variable namespace.
func serve(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("loxi REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.New(banner, version, "> ").Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

func showHelp() {
	cyanColor.Println("loxi - a Lox interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	fmt.Println("  loxi                  start the interactive REPL")
	fmt.Println("  loxi <script>         execute a Lox source file")
	fmt.Println("  loxi serve <port>     start a REPL server on the given TCP port")
	fmt.Println("  loxi --print-ast <f>  print a script's parsed form instead of running it")
	fmt.Println("  loxi --help           show this message")
	fmt.Println("  loxi --version        show version information")
}

func showVersion() {
	cyanColor.Printf("loxi %s\n", version)
}
