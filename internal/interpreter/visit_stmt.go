package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/class"
	"github.com/akashmaji946/loxi/internal/environment"
	"github.com/akashmaji946/loxi/internal/loxvalue"
)

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	i.evaluate(s.Expression)
	return nil
}

func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) any {
	value := i.evaluate(s.Expression)
	fmt.Fprintln(i.out, stringify(value))
	return nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) any {
	var value loxvalue.Value = loxvalue.Nil{}
	if s.Initializer != nil {
		value = i.evaluate(s.Initializer)
	}
	i.env.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) any {
	i.ExecuteBlock(s.Statements, environment.NewEnclosed(i.env))
	return nil
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) any {
	if loxvalue.Truthy(i.evaluate(s.Condition)) {
		i.execute(s.ThenBranch)
	} else if s.ElseBranch != nil {
		i.execute(s.ElseBranch)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) any {
	for loxvalue.Truthy(i.evaluate(s.Condition)) {
		i.execute(s.Body)
	}
	return nil
}

func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) any {
	fn := &class.LoxFunction{Declaration: s, Closure: i.env, IsInitializer: false}
	i.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) any {
	var value loxvalue.Value = loxvalue.Nil{}
	if s.Value != nil {
		value = i.evaluate(s.Value)
	}
	panic(returnSignal{value: value})
}

func (i *Interpreter) VisitClassStmt(s *ast.ClassStmt) any {
	var superclass *class.LoxClass
	if s.Superclass != nil {
		value := i.evaluate(s.Superclass)
		sc, ok := value.(*class.LoxClass)
		if !ok {
			panic(runtimeErr(s.Superclass.Name, "Superclass must be a class."))
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, loxvalue.Nil{})

	methodClosure := i.env
	if s.Superclass != nil {
		methodClosure = environment.NewEnclosed(i.env)
		methodClosure.Define("super", superclass)
	}

	methods := make(map[string]*class.LoxFunction, len(s.Methods))
	for _, method := range s.Methods {
		fn := &class.LoxFunction{
			Declaration:   method,
			Closure:       methodClosure,
			IsInitializer: method.Name.Lexeme == "init",
		}
		methods[method.Name.Lexeme] = fn
	}

	loxClass := &class.LoxClass{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	i.env.Assign(s.Name.Lexeme, loxClass)
	return nil
}
