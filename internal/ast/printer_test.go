package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxi/internal/token"
)

func TestPrinter_BinaryExpression(t *testing.T) {
	expr := &Binary{
		Left:  &Unary{Op: token.New(token.Minus, "-", nil, 1), Right: &Literal{Value: 123.0}},
		Op:    token.New(token.Star, "*", nil, 1),
		Right: &Grouping{Expression: &Literal{Value: 45.67}},
	}
	p := &Printer{}
	assert.Equal(t, "(* (- 123) (group 45.67))", p.Print(expr))
}

func TestPrinter_NilLiteral(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "nil", p.Print(&Literal{Value: nil}))
}

func TestPrinter_VarAndPrintStatements(t *testing.T) {
	stmts := []Stmt{
		&VarStmt{Name: token.New(token.Identifier, "a", nil, 1), Initializer: &Literal{Value: 1.0}},
		&PrintStmt{Expression: &Variable{Name: token.New(token.Identifier, "a", nil, 2)}},
	}
	p := &Printer{}
	out := p.PrintStmts(stmts)
	assert.Equal(t, "(var a 1)\n(print a)\n", out)
}

func TestPrinter_IfWithoutElse(t *testing.T) {
	stmt := &IfStmt{
		Condition:  &Literal{Value: true},
		ThenBranch: &PrintStmt{Expression: &Literal{Value: 1.0}},
	}
	p := &Printer{}
	assert.Equal(t, "(if true (print 1))", fmt.Sprint(stmt.Accept(p)))
}
