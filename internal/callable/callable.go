// Package callable defines the callable contract every invokable Lox value
// (native functions, user functions, classes) implements, plus the single
// native builtin the language ships with: clock.
//
// Interpreter is a narrow seam interface that callable and class call back
// through instead of importing the evaluator directly, which would create
// an import cycle: internal/class needs to ask "now run this function
// body" without internal/callable or internal/class importing
// internal/interpreter, which imports them both.
package callable

import (
	"time"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/environment"
	"github.com/akashmaji946/loxi/internal/loxvalue"
)

// Interpreter is the minimal capability a Callable needs from the
// interpreter to run a user function's body: execute a statement list
// against a given environment and report its control-flow result (the
// returned value, or Nil if execution fell off the end). This is the only
// boundary where a `return` stops unwinding — a plain nested block must
// let it keep propagating to its enclosing call.
type Interpreter interface {
	ExecuteFunctionBody(statements []ast.Stmt, env *environment.Environment) loxvalue.Value
}

// Callable is implemented by every value that can appear as a Call
// expression's callee.
type Callable interface {
	loxvalue.Value
	Arity() int
	Call(interp Interpreter, args []loxvalue.Value) loxvalue.Value
}

// Native wraps a Go function as a zero-overhead Lox builtin.
type Native struct {
	Name string
	Ar   int
	Fn   func(args []loxvalue.Value) loxvalue.Value
}

func (n *Native) Type() string { return "native-function" }
func (n *Native) String() string {
	return "<native fn>"
}
func (n *Native) Arity() int { return n.Ar }
func (n *Native) Call(_ Interpreter, args []loxvalue.Value) loxvalue.Value {
	return n.Fn(args)
}

// Clock is Lox's one standard-library function: wall-clock time in
// milliseconds, with zero arity.
var Clock = &Native{
	Name: "clock",
	Ar:   0,
	Fn: func([]loxvalue.Value) loxvalue.Value {
		return loxvalue.Number(float64(time.Now().UnixMilli()))
	},
}

// Globals returns the name->Callable table of every native builtin, for
// the interpreter to seed its global environment with.
func Globals() map[string]*Native {
	return map[string]*Native{
		Clock.Name: Clock,
	}
}
