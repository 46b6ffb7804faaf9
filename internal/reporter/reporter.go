// Package reporter implements the interpreter's error sink: an explicit
// value threaded through the scanner, parser and resolver instead of the
// package-level had_error flag the source language uses. This keeps every
// stage re-entrant (the REPL resets one Reporter per line) while still
// letting one run accumulate the maximum number of errors, per the scanner
// and parser's "don't stop at the first mistake" contracts.
package reporter

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/token"
)

// Reporter accumulates static (scan/parse/resolve) errors for one run and
// formats them per the canonical Lox wording.
type Reporter struct {
	hadError bool
	errors   []string
}

func New() *Reporter {
	return &Reporter{}
}

// Error reports a message anchored to a bare line number (used by the
// scanner, which has no token to point at).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a message anchored to a token, formatting the
// "at end" / "at 'lexeme'" location the way the canonical test suite
// expects.
func (r *Reporter) TokenError(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	r.hadError = true
	r.errors = append(r.errors, fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
}

// HadError reports whether any static error has been recorded.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// Errors returns the accumulated error lines, in report order.
func (r *Reporter) Errors() []string {
	return r.errors
}

// Reset clears the accumulated error state, used by the REPL so a bad line
// does not poison the ones that follow it.
func (r *Reporter) Reset() {
	r.hadError = false
	r.errors = nil
}
