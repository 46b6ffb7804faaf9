// Package interpreter implements Lox's tree-walking evaluator: the final
// stage of the scan -> parse -> resolve -> evaluate pipeline, executing a
// resolved statement list directly against a chain of environment.Environment
// scopes.
//
// Interpreter holds the current scope, an output writer, and the
// registered builtins, and dispatches through the ast.ExprVisitor/
// ast.StmtVisitor pair rather than a type switch. Variable lookups consult
// the resolver's hop-count table before falling back to a dynamic global
// search.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/callable"
	"github.com/akashmaji946/loxi/internal/environment"
	"github.com/akashmaji946/loxi/internal/loxvalue"
	"github.com/akashmaji946/loxi/internal/token"
)

// RuntimeError is a failure discovered during evaluation rather than during
// parsing or resolution: a type mismatch, an undefined name, division by
// zero, wrong call arity. Carries the offending token so callers can report
// a line number the way static errors do.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// returnSignal is the panic payload ReturnStmt uses to unwind out of a
// function body. It is only ever recovered in ExecuteFunctionBody, the
// function-call boundary — a plain block (ExecuteBlock) lets it keep
// propagating, so a return nested inside an if/while/block unwinds all the
// way to the call that is actually returning, not just its own block.
type returnSignal struct {
	value loxvalue.Value
}

// Interpreter walks a resolved program. Globals is the outermost scope
// (seeded with the native builtins); env is the scope currently in effect,
// swapped out for the duration of a block or call and restored afterward.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	depths  map[ast.Expr]int
	out     io.Writer
}

// New builds an Interpreter whose global scope carries every native
// builtin and whose variable lookups consult depths, the resolver's
// hop-count table. out defaults to os.Stdout when nil.
func New(depths map[ast.Expr]int, out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	globals := environment.New()
	for name, fn := range callable.Globals() {
		globals.Define(name, fn)
	}
	return &Interpreter{Globals: globals, env: globals, depths: depths, out: out}
}

// SetDepths swaps in a freshly resolved hop-count table without disturbing
// globals or the current environment. The REPL calls this once per line,
// since each line is resolved independently but variable bindings must
// persist across lines.
func (i *Interpreter) SetDepths(depths map[ast.Expr]int) {
	i.depths = depths
}

// Interpret executes a resolved program top to bottom. A *RuntimeError
// aborts the run and is returned to the caller; nothing else panics out of
// Interpret.
func (i *Interpreter) Interpret(statements []ast.Stmt) (err *RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(*RuntimeError); ok {
				err = rtErr
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range statements {
		i.execute(stmt)
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) {
	stmt.Accept(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) loxvalue.Value {
	return expr.Accept(i).(loxvalue.Value)
}

// ExecuteBlock runs statements against env, restoring the interpreter's
// previous environment when it returns or a panic unwinds through it. A
// returnSignal panicked by a nested ReturnStmt is deliberately NOT
// recovered here: it must keep propagating past every enclosing block
// (if/while bodies, `{ }` blocks) until it reaches ExecuteFunctionBody, the
// call that is actually returning.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		i.execute(stmt)
	}
}

// ExecuteFunctionBody runs a function or method body against env and
// reports its control-flow result: the value a nested ReturnStmt
// panicked with, or Nil if execution fell off the end. It implements
// callable.Interpreter, the seam class.LoxFunction.Call uses to run a
// user function's body without internal/class importing this package.
// This is the one place a returnSignal is recovered, so a return nested
// arbitrarily deep inside blocks/if/while still unwinds to its own
// function call and no further.
func (i *Interpreter) ExecuteFunctionBody(statements []ast.Stmt, env *environment.Environment) (result loxvalue.Value) {
	result = loxvalue.Nil{}
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				result = sig.value
				return
			}
			panic(r)
		}
	}()

	i.ExecuteBlock(statements, env)
	return result
}

// lookUpVariable resolves name per the resolver's hop count when one was
// recorded for expr, otherwise falls back to a dynamic search starting at
// globals — the behavior for every reference the resolver left unbound
// because it names a global.
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) loxvalue.Value {
	if distance, ok := i.depths[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme)
	}
	if v, ok := i.Globals.Get(name.Lexeme); ok {
		return v
	}
	panic(&RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)})
}

func runtimeErr(tok token.Token, format string, a ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, a...)}
}

// stringify renders a value exactly as `print`/the REPL echo it; every
// loxvalue.Value already implements its own canonical String(), so this is
// a thin, explicit seam rather than a type switch, kept here for callers
// that want one name for "the thing print writes".
func stringify(v loxvalue.Value) string {
	return v.String()
}

var (
	_ ast.ExprVisitor      = (*Interpreter)(nil)
	_ ast.StmtVisitor      = (*Interpreter)(nil)
	_ callable.Interpreter = (*Interpreter)(nil)
)
