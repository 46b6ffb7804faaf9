// Package class implements Lox's callable data model beyond native
// functions: user-defined functions (with closures and method binding),
// classes (with single inheritance), and instances.
//
// Instances hold only fields; methods are looked up through the class
// chain (self, then superclass) and bound on demand via Bind, so a
// closure -> instance -> method reference cycle never forms — the
// instance itself never stores a bound method.
package class

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/callable"
	"github.com/akashmaji946/loxi/internal/environment"
	"github.com/akashmaji946/loxi/internal/loxvalue"
)

// LoxFunction is a user-defined function value: its declaration plus the
// environment captured at the point of definition (the closure).
type LoxFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *LoxFunction) Type() string { return "function" }
func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
func (f *LoxFunction) Arity() int { return len(f.Declaration.Params) }

// Call binds each argument to its parameter in a fresh scope chained off
// the closure, then runs the body. An initializer always yields `this`
// (read back out of hop 0 of the closure), regardless of whether the
// return was explicit or by fall-through.
func (f *LoxFunction) Call(interp callable.Interpreter, args []loxvalue.Value) loxvalue.Value {
	env := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	result := interp.ExecuteFunctionBody(f.Declaration.Body, env)
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	return result
}

// Bind produces a new function value whose captured environment is a
// fresh scope, parented on f's original closure, that defines `this` as
// instance. This is what turns an unbound method into the value a `Get`
// expression returns.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &LoxFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

var _ callable.Callable = (*LoxFunction)(nil)
