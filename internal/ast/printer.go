package ast

import (
	"fmt"
	"strings"
)

// Printer renders a parsed program back to a parenthesized, Lisp-like
// textual form — a debugging aid, not part of the language's observable
// behavior. It is a third AST-walking visitor alongside the interpreter
// and the resolver, producing output a human can read back in one line
// per expression.
type Printer struct{}

// Print renders a single expression.
func (p *Printer) Print(e Expr) string {
	return fmt.Sprint(e.Accept(p))
}

// PrintStmts renders a whole parsed program, one line per top-level
// statement.
func (p *Printer) PrintStmts(statements []Stmt) string {
	var b strings.Builder
	for _, s := range statements {
		b.WriteString(fmt.Sprint(s.Accept(p)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(e.Accept(p)))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitLiteralExpr(e *Literal) any {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprint(e.Value)
}

func (p *Printer) VisitVariableExpr(e *Variable) any { return e.Name.Lexeme }

func (p *Printer) VisitAssignExpr(e *Assign) any {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitUnaryExpr(e *Unary) any {
	return p.parenthesize(e.Op.Lexeme, e.Right)
}

func (p *Printer) VisitBinaryExpr(e *Binary) any {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitLogicalExpr(e *Logical) any {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitGroupingExpr(e *Grouping) any {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitCallExpr(e *Call) any {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
}

func (p *Printer) VisitGetExpr(e *Get) any {
	return p.parenthesize("get "+e.Name.Lexeme, e.Object)
}

func (p *Printer) VisitSetExpr(e *Set) any {
	return p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value)
}

func (p *Printer) VisitThisExpr(e *This) any { return "this" }

func (p *Printer) VisitSuperExpr(e *Super) any {
	return fmt.Sprintf("(super %s)", e.Method.Lexeme)
}

func (p *Printer) VisitExpressionStmt(s *ExpressionStmt) any {
	return p.parenthesize("expr", s.Expression)
}

func (p *Printer) VisitPrintStmt(s *PrintStmt) any {
	return p.parenthesize("print", s.Expression)
}

func (p *Printer) VisitVarStmt(s *VarStmt) any {
	if s.Initializer == nil {
		return fmt.Sprintf("(var %s)", s.Name.Lexeme)
	}
	return p.parenthesize("var "+s.Name.Lexeme, s.Initializer)
}

func (p *Printer) VisitBlockStmt(s *BlockStmt) any {
	var b strings.Builder
	b.WriteString("(block")
	for _, stmt := range s.Statements {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(stmt.Accept(p)))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitIfStmt(s *IfStmt) any {
	if s.ElseBranch == nil {
		return fmt.Sprintf("(if %s %s)", fmt.Sprint(s.Condition.Accept(p)), fmt.Sprint(s.ThenBranch.Accept(p)))
	}
	return fmt.Sprintf("(if %s %s %s)", fmt.Sprint(s.Condition.Accept(p)), fmt.Sprint(s.ThenBranch.Accept(p)), fmt.Sprint(s.ElseBranch.Accept(p)))
}

func (p *Printer) VisitWhileStmt(s *WhileStmt) any {
	return fmt.Sprintf("(while %s %s)", fmt.Sprint(s.Condition.Accept(p)), fmt.Sprint(s.Body.Accept(p)))
}

func (p *Printer) VisitFunctionStmt(s *FunctionStmt) any {
	names := make([]string, len(s.Params))
	for i, param := range s.Params {
		names[i] = param.Lexeme
	}
	return fmt.Sprintf("(fun %s(%s) <%d statements>)", s.Name.Lexeme, strings.Join(names, " "), len(s.Body))
}

func (p *Printer) VisitReturnStmt(s *ReturnStmt) any {
	if s.Value == nil {
		return "(return)"
	}
	return p.parenthesize("return", s.Value)
}

func (p *Printer) VisitClassStmt(s *ClassStmt) any {
	if s.Superclass == nil {
		return fmt.Sprintf("(class %s <%d methods>)", s.Name.Lexeme, len(s.Methods))
	}
	return fmt.Sprintf("(class %s < %s <%d methods>)", s.Name.Lexeme, s.Superclass.Name.Lexeme, len(s.Methods))
}

var (
	_ ExprVisitor = (*Printer)(nil)
	_ StmtVisitor = (*Printer)(nil)
)
