// Package resolver implements the static resolution pass: a walk over the
// parsed statement list that computes, for every Variable, Assign, This
// and Super expression, the hop count between its scope and the scope
// that introduces the name. The result is a side table the interpreter
// consults instead of searching the environment chain dynamically.
//
// The resolver is, architecturally, one more implementation of
// ast.ExprVisitor/ast.StmtVisitor alongside the interpreter and the
// printer — it just accumulates into a depth table and a scope stack
// instead of producing a runtime value.
package resolver

import (
	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/reporter"
	"github.com/akashmaji946/loxi/internal/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver performs the static pre-pass. Depths is keyed by expression
// node identity (see the ast package doc comment on why a bare pointer key
// is sufficient).
type Resolver struct {
	reporter *reporter.Reporter
	scopes   []map[string]bool
	depths   map[ast.Expr]int

	currentFunction functionType
	currentClass    classType
}

func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{reporter: rep, depths: make(map[ast.Expr]int)}
}

// Resolve walks every statement and returns the populated depth table.
func (r *Resolver) Resolve(statements []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(statements)
	return r.depths
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-out; a hit records the
// hop count for expr, a miss leaves expr unrecorded (it is global).
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
