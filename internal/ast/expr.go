// Package ast defines the Lox abstract syntax tree: expression and
// statement node variants, plus the Visitor interfaces that the resolver,
// interpreter, and printer walk them with. Accept(visitor) any returns a
// value so the same node can be walked by visitors that need to produce a
// result (interpreter, printer) and ones that only need the walk for its
// side effects (resolver).
//
// Every concrete node type is used only behind a pointer (*Literal, not
// Literal), so pointer identity — which is exactly what Go's interface
// equality compares for pointer-shaped dynamic types — doubles as the
// stable per-node identity the resolver's depth table requires. Two
// Variable nodes with the same name parsed at different source positions
// are always distinct map keys because they are always distinct
// allocations.
package ast

import "github.com/akashmaji946/loxi/internal/token"

// Expr is implemented by every expression node.
type Expr interface {
	Accept(v ExprVisitor) any
}

// ExprVisitor is implemented once per AST consumer (interpreter, resolver,
// printer).
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) any
	VisitVariableExpr(e *Variable) any
	VisitAssignExpr(e *Assign) any
	VisitUnaryExpr(e *Unary) any
	VisitBinaryExpr(e *Binary) any
	VisitLogicalExpr(e *Logical) any
	VisitGroupingExpr(e *Grouping) any
	VisitCallExpr(e *Call) any
	VisitGetExpr(e *Get) any
	VisitSetExpr(e *Set) any
	VisitThisExpr(e *This) any
	VisitSuperExpr(e *Super) any
}

// Literal is a compile-time constant: a number, string, bool, or nil.
type Literal struct {
	Value any // float64, string, bool, or nil
}

func (e *Literal) Accept(v ExprVisitor) any { return v.VisitLiteralExpr(e) }

// Variable is an identifier read.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) any { return v.VisitVariableExpr(e) }

// Assign writes a value to an already-declared name.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) any { return v.VisitAssignExpr(e) }

// Unary is a prefix operator: `!` or `-`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) Accept(v ExprVisitor) any { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic, comparison, or equality operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Accept(v ExprVisitor) any { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, kept distinct from Binary because both
// short-circuit instead of always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Accept(v ExprVisitor) any { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) any { return v.VisitGroupingExpr(e) }

// Call is a function or class invocation. Paren carries the line used for
// runtime arity/target errors.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *Call) Accept(v ExprVisitor) any { return v.VisitCallExpr(e) }

// Get reads a property off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) Accept(v ExprVisitor) any { return v.VisitGetExpr(e) }

// Set writes a property on an instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) any { return v.VisitSetExpr(e) }

// This is the `this` keyword, resolved like any other variable reference.
type This struct {
	Keyword token.Token
}

func (e *This) Accept(v ExprVisitor) any { return v.VisitThisExpr(e) }

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) Accept(v ExprVisitor) any { return v.VisitSuperExpr(e) }
