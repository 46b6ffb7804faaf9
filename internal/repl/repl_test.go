package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// session feeds lines (already newline-joined) into a Repl as if typed at
// the prompt, terminated by end of input (which the REPL handles like
// Ctrl-D), and returns everything written to the session's output.
func session(t *testing.T, lines string) string {
	t.Helper()
	var out bytes.Buffer
	r := New("banner", "v0.0.0-test", "> ")
	err := r.Start(strings.NewReader(lines+"\n"), &out)
	require.NoError(t, err)
	return out.String()
}

func TestRepl_EvaluatesExpressionStatements(t *testing.T) {
	out := session(t, `print 1 + 2;`)
	assert.Contains(t, out, "3\n")
}

func TestRepl_BindingsPersistAcrossLines(t *testing.T) {
	out := session(t, "var x = 10;\nprint x + 5;")
	assert.Contains(t, out, "15\n")
}

func TestRepl_ReturnInsideGuardedBlockStillWorksPerLine(t *testing.T) {
	out := session(t, "fun fib(n) { if (n < 2) { return n; } return fib(n - 1) + fib(n - 2); }\nprint fib(10);")
	assert.Contains(t, out, "55\n")
}

func TestRepl_ParseErrorIsReportedAndSessionContinues(t *testing.T) {
	out := session(t, "1 +;\nprint 2 + 2;")
	assert.Contains(t, out, "4\n")
}

func TestRepl_RuntimeErrorIsReportedAndSessionContinues(t *testing.T) {
	out := session(t, "print 1/0;\nprint 9;")
	assert.Contains(t, out, "Cannot divide by zero.")
	assert.Contains(t, out, "9\n")
}

func TestRepl_EmptyLineExits(t *testing.T) {
	var out bytes.Buffer
	r := New("banner", "v0.0.0-test", "> ")
	err := r.Start(strings.NewReader("\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Good bye!")
}
