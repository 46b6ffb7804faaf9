package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxi/internal/parser"
	"github.com/akashmaji946/loxi/internal/reporter"
	"github.com/akashmaji946/loxi/internal/resolver"
	"github.com/akashmaji946/loxi/internal/scanner"
)

// run scans, parses, resolves and interprets src, returning whatever was
// written by `print` and the runtime error (if any). Fails the test if
// static errors were reported, since every scenario below is valid Lox.
func run(t *testing.T, src string) (string, *RuntimeError) {
	t.Helper()
	rep := reporter.New()
	toks := scanner.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	require.False(t, rep.HadError(), "unexpected static errors: %v", rep.Errors())

	depths := resolver.New(rep).Resolve(stmts)
	require.False(t, rep.HadError(), "unexpected resolution errors: %v", rep.Errors())

	var buf bytes.Buffer
	interp := New(depths, &buf)
	err := interp.Interpret(stmts)
	return buf.String(), err
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.Nil(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_BlockShadowingDoesNotLeak(t *testing.T) {
	out, err := run(t, `var a = "hi"; { var a = "bye"; print a; } print a;`)
	require.Nil(t, err)
	assert.Equal(t, "bye\nhi\n", out)
}

func TestInterpret_ClosureCapturesByReference(t *testing.T) {
	out, err := run(t, `
		fun make(n) { fun inc() { n = n + 1; return n; } return inc; }
		var c = make(10);
		print c();
		print c();
	`)
	require.Nil(t, err)
	assert.Equal(t, "11\n12\n", out)
}

func TestInterpret_SuperCallsParentMethod(t *testing.T) {
	out, err := run(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); print "B"; } }
		B().greet();
	`)
	require.Nil(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestInterpret_InitializerBindsThis(t *testing.T) {
	out, err := run(t, `class P { init(x) { this.x = x; } } print P(7).x;`)
	require.Nil(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "print 1/0;")
	require.NotNil(t, err)
	assert.Equal(t, "Cannot divide by zero.", err.Message)
	assert.Equal(t, 1, err.Token.Line)
}

func TestInterpret_UninitializedVariableIsNil(t *testing.T) {
	out, err := run(t, "var x; print x;")
	require.Nil(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestInterpret_StringPlusNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `"a" + 1;`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Operands must be two numbers or two strings.")
}

func TestInterpret_ParenthesesPreserveResult(t *testing.T) {
	out1, err1 := run(t, "print 2 + 3 * 4;")
	out2, err2 := run(t, "print ((2) + ((3 * 4)));")
	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, out1, out2)
}

func TestInterpret_LogicalAndOrShortCircuit(t *testing.T) {
	out, err := run(t, `
		print nil and "unreached";
		print false or "fallback";
		print "first" or "unreached";
	`)
	require.Nil(t, err)
	assert.Equal(t, "nil\nfallback\nfirst\n", out)
}

func TestInterpret_DoubleNegationLaws(t *testing.T) {
	out, err := run(t, `
		print -(-5);
		print !!0;
		print !!nil;
	`)
	require.Nil(t, err)
	assert.Equal(t, "5\ntrue\nfalse\n", out)
}

func TestInterpret_FieldsShadowMethodsOfSameName(t *testing.T) {
	out, err := run(t, `
		class Box { value() { return "method"; } }
		var b = Box();
		print b.value();
		b.value = "field";
		print b.value;
	`)
	require.Nil(t, err)
	assert.Equal(t, "method\nfield\n", out)
}

func TestInterpret_NegativeZeroStringifiesWithSign(t *testing.T) {
	out, err := run(t, `print -0.0; print 0.0;`)
	require.Nil(t, err)
	assert.Equal(t, "-0\n0\n", out)
}

func TestInterpret_ClockIsCallableWithZeroArity(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.Nil(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Expected 2 arguments but got 1.")
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Can only call functions and classes.")
}

func TestInterpret_ReturnInsideNestedBlockUnwindsToCall(t *testing.T) {
	out, err := run(t, `fun f() { { return 1; } return 2; } print f();`)
	require.Nil(t, err)
	assert.Equal(t, "1\n", out)
}

func TestInterpret_ReturnInsideGuardedIfUnwindsToCall(t *testing.T) {
	out, err := run(t, `
		fun fib(n) { if (n < 2) { return n; } return fib(n - 1) + fib(n - 2); }
		print fib(10);
	`)
	require.Nil(t, err)
	assert.Equal(t, "55\n", out)
}

func TestInterpret_ReturnInsideWhileBodyBlockUnwindsToCall(t *testing.T) {
	out, err := run(t, `
		fun firstPastFive(n) {
			var i = 0;
			while (i < n) {
				if (i > 5) { return i; }
				i = i + 1;
			}
			return -1;
		}
		print firstPastFive(10);
	`)
	require.Nil(t, err)
	assert.Equal(t, "6\n", out)
}
