package resolver

import "github.com/akashmaji946/loxi/internal/ast"

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) any {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) any {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) any {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) any {
	if r.currentFunction == fnNone {
		r.reporter.TokenError(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == fnInitializer {
			r.reporter.TokenError(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) any {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.TokenError(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declaration := fnMethod
		if method.Name.Lexeme == "init" {
			declaration = fnInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}
