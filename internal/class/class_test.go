package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxi/internal/ast"
	"github.com/akashmaji946/loxi/internal/callable"
	"github.com/akashmaji946/loxi/internal/environment"
	"github.com/akashmaji946/loxi/internal/loxvalue"
	"github.com/akashmaji946/loxi/internal/token"
)

// fakeInterp runs a function body by simply evaluating it as "return the
// value of the first ReturnStmt that is bare or returns a number/string
// literal, else Nil" — enough to exercise binding/call plumbing without
// pulling in the full interpreter.
type fakeInterp struct{}

func (fakeInterp) ExecuteFunctionBody(statements []ast.Stmt, env *environment.Environment) loxvalue.Value {
	for _, stmt := range statements {
		if ret, ok := stmt.(*ast.ReturnStmt); ok {
			if ret.Value == nil {
				return loxvalue.Nil{}
			}
			if v, ok := ret.Value.(*ast.Literal); ok {
				switch val := v.Value.(type) {
				case float64:
					return loxvalue.Number(val)
				case string:
					return loxvalue.String(val)
				}
			}
		}
	}
	return loxvalue.Nil{}
}

func newFunc(name string, params []string, isInit bool) *LoxFunction {
	paramToks := make([]token.Token, len(params))
	for i, p := range params {
		paramToks[i] = token.New(token.Identifier, p, nil, 1)
	}
	return &LoxFunction{
		Declaration: &ast.FunctionStmt{
			Name:   token.New(token.Identifier, name, nil, 1),
			Params: paramToks,
			Body:   []ast.Stmt{&ast.ReturnStmt{Value: &ast.Literal{Value: 7.0}}},
		},
		Closure:       environment.New(),
		IsInitializer: isInit,
	}
}

func TestLoxFunction_CallReturnsBodyResult(t *testing.T) {
	fn := newFunc("greet", nil, false)
	result := fn.Call(fakeInterp{}, nil)
	assert.Equal(t, loxvalue.Number(7), result)
}

func TestLoxFunction_BindDefinesThisInNewClosure(t *testing.T) {
	class := &LoxClass{Name: "Box", Methods: map[string]*LoxFunction{}}
	instance := NewInstance(class)
	fn := newFunc("getBox", nil, false)

	bound := fn.Bind(instance)
	assert.NotSame(t, fn.Closure, bound.Closure)
	assert.Equal(t, instance, bound.Closure.GetAt(0, "this"))
}

func TestLoxFunction_InitializerAlwaysReturnsThis(t *testing.T) {
	class := &LoxClass{Name: "Point", Methods: map[string]*LoxFunction{}}
	instance := NewInstance(class)
	init := newFunc("init", []string{"x"}, true)
	bound := init.Bind(instance)

	result := bound.Call(fakeInterp{}, []loxvalue.Value{loxvalue.Number(1)})
	assert.Equal(t, instance, result)
}

func TestLoxClass_FindMethodSearchesSuperclassChain(t *testing.T) {
	greetA := newFunc("greet", nil, false)
	a := &LoxClass{Name: "A", Methods: map[string]*LoxFunction{"greet": greetA}}
	b := &LoxClass{Name: "B", Superclass: a, Methods: map[string]*LoxFunction{}}

	found, ok := b.FindMethod("greet")
	require.True(t, ok)
	assert.Same(t, greetA, found)

	_, ok = b.FindMethod("missing")
	assert.False(t, ok)
}

func TestLoxClass_CallConstructsInstanceAndRunsInit(t *testing.T) {
	init := newFunc("init", []string{"x"}, true)
	class := &LoxClass{Name: "Point", Methods: map[string]*LoxFunction{"init": init}}

	result := class.Call(fakeInterp{}, []loxvalue.Value{loxvalue.Number(3)})
	instance, ok := result.(*LoxInstance)
	require.True(t, ok)
	assert.Equal(t, class, instance.Class)
}

func TestLoxInstance_GetFieldTakesPrecedenceOverMethod(t *testing.T) {
	method := newFunc("x", nil, false)
	class := &LoxClass{Name: "C", Methods: map[string]*LoxFunction{"x": method}}
	instance := NewInstance(class)
	instance.Set("x", loxvalue.Number(42))

	v, ok := instance.Get("x")
	require.True(t, ok)
	assert.Equal(t, loxvalue.Number(42), v)
}

func TestLoxInstance_GetMethodBindsToInstance(t *testing.T) {
	method := newFunc("greet", nil, false)
	class := &LoxClass{Name: "C", Methods: map[string]*LoxFunction{"greet": method}}
	instance := NewInstance(class)

	v, ok := instance.Get("greet")
	require.True(t, ok)
	bound, ok := v.(*LoxFunction)
	require.True(t, ok)
	assert.Equal(t, instance, bound.Closure.GetAt(0, "this"))
}

func TestLoxInstance_GetMissingReturnsFalse(t *testing.T) {
	class := &LoxClass{Name: "C", Methods: map[string]*LoxFunction{}}
	instance := NewInstance(class)
	_, ok := instance.Get("nope")
	assert.False(t, ok)
}

var _ callable.Interpreter = fakeInterp{}
