package ast

import "github.com/akashmaji946/loxi/internal/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) any
}

// StmtVisitor is implemented once per AST consumer (interpreter, resolver,
// printer).
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) any
	VisitPrintStmt(s *PrintStmt) any
	VisitVarStmt(s *VarStmt) any
	VisitBlockStmt(s *BlockStmt) any
	VisitIfStmt(s *IfStmt) any
	VisitWhileStmt(s *WhileStmt) any
	VisitFunctionStmt(s *FunctionStmt) any
	VisitReturnStmt(s *ReturnStmt) any
	VisitClassStmt(s *ClassStmt) any
}

// ExpressionStmt evaluates an expression for its side effects, discarding
// the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) any { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its stringified form.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) any { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer; an absent
// initializer defines the name bound to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) Accept(v StmtVisitor) any { return v.VisitVarStmt(s) }

// BlockStmt introduces a fresh lexical scope around a statement list.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) any { return v.VisitBlockStmt(s) }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) Accept(v StmtVisitor) any { return v.VisitIfStmt(s) }

// WhileStmt also backs the desugared `for` loop (see parser.forStatement).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) any { return v.VisitWhileStmt(s) }

// FunctionStmt is both a top-level `fun` declaration and a class method.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) any { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the enclosing function call. Value is nil for a bare
// `return;`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) Accept(v StmtVisitor) any { return v.VisitReturnStmt(s) }

// ClassStmt declares a class, its optional superclass, and its methods.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if no `< Superclass` clause
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) any { return v.VisitClassStmt(s) }
