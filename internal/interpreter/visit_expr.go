package interpreter

import (
	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/callable"
	"github.com/akashmaji946/loxi/internal/class"
	"github.com/akashmaji946/loxi/internal/loxvalue"
	"github.com/akashmaji946/loxi/internal/token"
)

func (i *Interpreter) VisitLiteralExpr(e *ast.Literal) any {
	return literalToValue(e.Value)
}

func literalToValue(v any) loxvalue.Value {
	switch val := v.(type) {
	case nil:
		return loxvalue.Nil{}
	case bool:
		return loxvalue.Bool(val)
	case float64:
		return loxvalue.Number(val)
	case string:
		return loxvalue.String(val)
	default:
		return loxvalue.Nil{}
	}
}

func (i *Interpreter) VisitGroupingExpr(e *ast.Grouping) any {
	return i.evaluate(e.Expression)
}

func (i *Interpreter) VisitVariableExpr(e *ast.Variable) any {
	return i.lookUpVariable(e.Name, e)
}

func (i *Interpreter) VisitAssignExpr(e *ast.Assign) any {
	value := i.evaluate(e.Value)
	if distance, ok := i.depths[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
	} else if !i.Globals.Assign(e.Name.Lexeme, value) {
		panic(runtimeErr(e.Name, "Undefined variable '%s'.", e.Name.Lexeme))
	}
	return value
}

func (i *Interpreter) VisitUnaryExpr(e *ast.Unary) any {
	right := i.evaluate(e.Right)
	switch e.Op.Kind {
	case token.Minus:
		num, ok := right.(loxvalue.Number)
		if !ok {
			panic(runtimeErr(e.Op, "Operand must be a number."))
		}
		return -num
	case token.Bang:
		return loxvalue.Bool(!loxvalue.Truthy(right))
	}
	panic(runtimeErr(e.Op, "Unknown unary operator '%s'.", e.Op.Lexeme))
}

func (i *Interpreter) VisitLogicalExpr(e *ast.Logical) any {
	left := i.evaluate(e.Left)
	if e.Op.Kind == token.Or {
		if loxvalue.Truthy(left) {
			return left
		}
	} else {
		if !loxvalue.Truthy(left) {
			return left
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitBinaryExpr(e *ast.Binary) any {
	left := i.evaluate(e.Left)
	right := i.evaluate(e.Right)

	switch e.Op.Kind {
	case token.Plus:
		if ln, ok := left.(loxvalue.Number); ok {
			if rn, ok := right.(loxvalue.Number); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(loxvalue.String); ok {
			if rs, ok := right.(loxvalue.String); ok {
				return ls + rs
			}
		}
		panic(runtimeErr(e.Op, "Operands must be two numbers or two strings."))
	case token.Minus:
		ln, rn := numberOperands(i, e.Op, left, right)
		return ln - rn
	case token.Star:
		ln, rn := numberOperands(i, e.Op, left, right)
		return ln * rn
	case token.Slash:
		ln, rn := numberOperands(i, e.Op, left, right)
		if rn == 0 {
			panic(runtimeErr(e.Op, "Cannot divide by zero."))
		}
		return ln / rn
	case token.Greater:
		ln, rn := numberOperands(i, e.Op, left, right)
		return loxvalue.Bool(ln > rn)
	case token.GreaterEqual:
		ln, rn := numberOperands(i, e.Op, left, right)
		return loxvalue.Bool(ln >= rn)
	case token.Less:
		ln, rn := numberOperands(i, e.Op, left, right)
		return loxvalue.Bool(ln < rn)
	case token.LessEqual:
		ln, rn := numberOperands(i, e.Op, left, right)
		return loxvalue.Bool(ln <= rn)
	case token.EqualEqual:
		return loxvalue.Bool(loxvalue.Equal(left, right))
	case token.BangEqual:
		return loxvalue.Bool(!loxvalue.Equal(left, right))
	}
	panic(runtimeErr(e.Op, "Unknown binary operator '%s'.", e.Op.Lexeme))
}

func numberOperands(i *Interpreter, op token.Token, left, right loxvalue.Value) (loxvalue.Number, loxvalue.Number) {
	ln, lok := left.(loxvalue.Number)
	rn, rok := right.(loxvalue.Number)
	if !lok || !rok {
		panic(runtimeErr(op, "Operands must be numbers."))
	}
	return ln, rn
}

func (i *Interpreter) VisitCallExpr(e *ast.Call) any {
	callee := i.evaluate(e.Callee)

	args := make([]loxvalue.Value, len(e.Args))
	for idx, arg := range e.Args {
		args[idx] = i.evaluate(arg)
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		panic(runtimeErr(e.Paren, "Can only call functions and classes."))
	}
	if len(args) != fn.Arity() {
		panic(runtimeErr(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}

func (i *Interpreter) VisitGetExpr(e *ast.Get) any {
	object := i.evaluate(e.Object)
	instance, ok := object.(*class.LoxInstance)
	if !ok {
		panic(runtimeErr(e.Name, "Only instances have properties."))
	}
	value, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		panic(runtimeErr(e.Name, "Undefined property '%s'.", e.Name.Lexeme))
	}
	return value
}

func (i *Interpreter) VisitSetExpr(e *ast.Set) any {
	object := i.evaluate(e.Object)
	instance, ok := object.(*class.LoxInstance)
	if !ok {
		panic(runtimeErr(e.Name, "Only instances have fields."))
	}
	value := i.evaluate(e.Value)
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (i *Interpreter) VisitThisExpr(e *ast.This) any {
	return i.lookUpVariable(e.Keyword, e)
}

func (i *Interpreter) VisitSuperExpr(e *ast.Super) any {
	distance := i.depths[e]
	superclass := i.env.GetAt(distance, "super").(*class.LoxClass)
	instance := i.env.GetAt(distance-1, "this").(*class.LoxInstance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		panic(runtimeErr(e.Method, "Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.Bind(instance)
}
